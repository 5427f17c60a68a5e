package maze

import (
	"math/rand"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/shape"
)

// defaultEndpoints returns the farthest pair among the first and last active
// cells and the active corners of the active bounding box. Without a mask
// the grid corners are used.
func defaultEndpoints(mask *shape.Mask, rows, cols int) (start, end grid.Coord) {
	if mask == nil {
		return grid.Coord{}, grid.Coord{Row: rows - 1, Col: cols - 1}
	}
	coords := mask.Coords()
	start, end = coords[0], coords[len(coords)-1]

	minR, maxR, minC, maxC, _ := mask.Bounds()
	candidates := []grid.Coord{start, end}
	for _, c := range coords {
		if (c.Row == minR || c.Row == maxR) && (c.Col == minC || c.Col == maxC) {
			candidates = append(candidates, c)
		}
	}

	best := 0
	for _, a := range candidates {
		for _, b := range candidates {
			if d := a.Manhattan(b); d > best {
				best = d
				start, end = a, b
			}
		}
	}
	return start, end
}

// positionCandidates groups the active cells (row-major) by named position.
func positionCandidates(coords []grid.Coord) map[Position][]grid.Coord {
	out := make(map[Position][]grid.Coord, len(Positions))
	if len(coords) == 0 {
		return out
	}
	minR, maxR := coords[0].Row, coords[0].Row
	minC, maxC := coords[0].Col, coords[0].Col
	for _, c := range coords {
		minR, maxR = min(minR, c.Row), max(maxR, c.Row)
		minC, maxC = min(minC, c.Col), max(maxC, c.Col)
	}
	midR, midC := (minR+maxR)/2, (minC+maxC)/2

	for _, c := range coords {
		if c.Row == minR {
			out[Top] = append(out[Top], c)
			if c.Col <= midC {
				out[TopLeft] = append(out[TopLeft], c)
			}
			if c.Col >= midC {
				out[TopRight] = append(out[TopRight], c)
			}
		}
		if c.Row == maxR {
			out[Bottom] = append(out[Bottom], c)
			if c.Col <= midC {
				out[BottomLeft] = append(out[BottomLeft], c)
			}
			if c.Col >= midC {
				out[BottomRight] = append(out[BottomRight], c)
			}
		}
		if c.Col == minC {
			out[Left] = append(out[Left], c)
		}
		if c.Col == maxC {
			out[Right] = append(out[Right], c)
		}
		if abs(c.Row-midR) <= 1 && abs(c.Col-midC) <= 1 {
			out[Center] = append(out[Center], c)
		}
	}
	return out
}

// pinEndpoints applies the named positions, drawing from rng. The end never
// coincides with the chosen start; an empty candidate list keeps the default.
// A start pinned onto the default end moves the end to the farthest cell.
func pinEndpoints(rng *rand.Rand, coords []grid.Coord, startPos, endPos Position, start, end grid.Coord) (grid.Coord, grid.Coord) {
	if startPos == "" && endPos == "" {
		return start, end
	}
	cands := positionCandidates(coords)
	if startPos != "" {
		if list := cands[startPos]; len(list) > 0 {
			start = list[rng.Intn(len(list))]
		}
	}
	if endPos != "" {
		list := make([]grid.Coord, 0, len(cands[endPos]))
		for _, c := range cands[endPos] {
			if c != start {
				list = append(list, c)
			}
		}
		if len(list) > 0 {
			end = list[rng.Intn(len(list))]
		}
	}
	if start == end {
		end = farthest(coords, start)
	}
	return start, end
}

// farthest returns the first active cell at maximum Manhattan distance from c.
func farthest(coords []grid.Coord, c grid.Coord) grid.Coord {
	best, out := -1, c
	for _, o := range coords {
		if d := o.Manhattan(c); d > best {
			best, out = d, o
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
