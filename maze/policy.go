package maze

import "github.com/katalvlaran/labyrinth/render"

const (
	canvasPadding   = 40
	minCellSize     = 20
	youngAge        = 4
	youngPathWidth  = 35
	olderPathWidth  = 25
	defaultMinRatio = 0.3
)

var gridSizes = map[Difficulty][2]int{
	Easy:   {5, 7},
	Medium: {7, 9},
	Hard:   {9, 12},
}

var minRatios = map[Difficulty]float64{
	Easy:   0.3,
	Medium: 0.4,
	Hard:   0.5,
}

// GridSize returns rows and cols for d and age.
func GridSize(d Difficulty, age int) (rows, cols int) {
	if age <= youngAge && d == Easy {
		return 4, 5
	}
	sz, ok := gridSizes[d]
	if !ok {
		sz = gridSizes[Medium]
	}
	return sz[0], sz[1]
}

// MinRatio returns the minimum solution ratio for d.
func MinRatio(d Difficulty) float64 {
	if r, ok := minRatios[d]; ok {
		return r
	}
	return defaultMinRatio
}

// PathWidth returns the stroke width for the player's age.
func PathWidth(age int) int {
	if age <= youngAge {
		return youngPathWidth
	}
	return olderPathWidth
}

// ComputeLayout fits a rows×cols grid into a width×height canvas and centres it.
func ComputeLayout(width, height, rows, cols int) render.Layout {
	cs := min(floorDiv(width-canvasPadding, cols), floorDiv(height-canvasPadding, rows))
	cs = max(cs, minCellSize)
	return render.Layout{
		CellSize: cs,
		OffsetX:  floorDiv(width-cols*cs, 2),
		OffsetY:  floorDiv(height-rows*cs, 2),
	}
}

// floorDiv divides rounding toward negative infinity; b must be positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
