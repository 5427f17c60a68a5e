package solve

import (
	"errors"

	"github.com/katalvlaran/labyrinth/grid"
)

// Sentinel errors for solving.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("solve: grid is nil")

	// ErrOutOfBounds is returned when start or end lies outside the grid.
	ErrOutOfBounds = errors.New("solve: coordinate out of bounds")
)

// Result holds the outcome of a BFS traversal:
//   - Order: cells visited, in visit sequence.
//   - Depth: hop count from the start for every reached cell.
//   - Parent: predecessor of every reached cell except the start.
type Result struct {
	Start  grid.Coord
	Order  []grid.Coord
	Depth  map[grid.Coord]int
	Parent map[grid.Coord]grid.Coord
}

// Reached reports whether dest was discovered by the traversal.
func (r *Result) Reached(dest grid.Coord) bool {
	_, ok := r.Depth[dest]
	return ok
}

// PathTo reconstructs the path from the start cell to dest.
// Returns an empty, non-nil slice if dest was not reached.
func (r *Result) PathTo(dest grid.Coord) []grid.Coord {
	if !r.Reached(dest) {
		return []grid.Coord{}
	}
	path := make([]grid.Coord, 0, r.Depth[dest]+1)
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
