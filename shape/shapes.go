package shape

import "github.com/katalvlaran/labyrinth/grid"

// addSpan activates width cells of row r starting at column start, clipped to the grid.
func (m *Mask) addSpan(r, start, width int) {
	for c := start; c < start+width; c++ {
		m.Add(grid.Coord{Row: r, Col: c})
	}
}

// progress returns r/max(n-1, 1) as a float in [0,1].
func progress(r, n int) float64 {
	return float64(r) / float64(max(n-1, 1))
}

// TriangleMask widens linearly from a one-cell apex in row 0 to the full
// width in the last row.
func TriangleMask(rows, cols int) *Mask {
	m := NewMask(rows, cols)
	for r := 0; r < rows; r++ {
		width := max(1, int(float64(cols)*progress(r, rows)))
		m.addSpan(r, (cols-width)/2, width)
	}
	return m
}

// TreeMask stacks a canopy that widens from 30% to 100% of the width on top
// of a fixed-width trunk occupying the bottom quarter of the rows.
func TreeMask(rows, cols int) *Mask {
	m := NewMask(rows, cols)
	trunkWidth := max(2, cols/5)
	trunkHeight := max(2, rows/4)
	canopyRows := rows - trunkHeight

	for r := 0; r < canopyRows; r++ {
		p := progress(r, canopyRows)
		width := max(2, int(float64(cols)*0.3+float64(cols)*0.7*p))
		m.addSpan(r, (cols-width)/2, width)
	}
	trunkStart := (cols - trunkWidth) / 2
	for r := max(canopyRows, 0); r < rows; r++ {
		m.addSpan(r, trunkStart, trunkWidth)
	}
	return m
}

// MountainMask is widest at the base and narrows to 30% of the width at the
// peak row, centred on the middle column.
func MountainMask(rows, cols int) *Mask {
	m := NewMask(rows, cols)
	peakCol := cols / 2
	for r := 0; r < rows; r++ {
		inv := 1.0 - progress(r, rows)
		width := max(1, int(float64(cols)*(1.0-inv*0.7)))
		m.addSpan(r, peakCol-width/2, width)
	}
	return m
}

// DiamondMask peaks at the middle row and tapers symmetrically toward the
// first and last rows.
func DiamondMask(rows, cols int) *Mask {
	m := NewMask(rows, cols)
	mid := rows / 2
	for r := 0; r < rows; r++ {
		dist := r - mid
		if dist < 0 {
			dist = -dist
		}
		frac := 1.0 - float64(dist)/float64(max(mid, 1))
		width := max(1, int(float64(cols)*frac))
		m.addSpan(r, (cols-width)/2, width)
	}
	return m
}

// CircleMask keeps the cells whose centre lies inside a disk of radius
// min(rows,cols)/2 - 0.5 around the grid centre.
func CircleMask(rows, cols int) *Mask {
	m := NewMask(rows, cols)
	cr, cc := float64(rows)/2, float64(cols)/2
	radius := float64(min(rows, cols))/2 - 0.5
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			dr := float64(r) - cr + 0.5
			dc := float64(c) - cc + 0.5
			if dr*dr+dc*dc <= radius*radius {
				m.Add(grid.Coord{Row: r, Col: c})
			}
		}
	}
	return m
}
