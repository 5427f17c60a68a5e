package solve

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// walker encapsulates mutable BFS state.
type walker struct {
	grid   *grid.Grid
	queue  []grid.Coord
	target *grid.Coord
	res    *Result
}

// BFS runs breadth-first search on g from start over removed walls.
// Returns ErrGridNil or ErrOutOfBounds for invalid input.
func BFS(g *grid.Grid, start grid.Coord) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	w := newWalker(g, start, nil)
	w.loop()

	return w.res, nil
}

// Path returns the shortest start→end cell path in g, inclusive of both ends.
// When end cannot be reached it returns an empty slice and a nil error.
func Path(g *grid.Grid, start, end grid.Coord) ([]grid.Coord, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !g.InBounds(end) {
		return nil, fmt.Errorf("%w: end %v", ErrOutOfBounds, end)
	}
	w := newWalker(g, start, &end)
	w.loop()

	return w.res.PathTo(end), nil
}

func newWalker(g *grid.Grid, start grid.Coord, target *grid.Coord) *walker {
	n := g.Size()
	w := &walker{
		grid:   g,
		queue:  make([]grid.Coord, 0, n),
		target: target,
		res: &Result{
			Start:  start,
			Order:  make([]grid.Coord, 0, n),
			Depth:  make(map[grid.Coord]int, n),
			Parent: make(map[grid.Coord]grid.Coord, n),
		},
	}
	w.res.Depth[start] = 0
	w.queue = append(w.queue, start)

	return w
}

// loop processes the queue until it drains or the target is dequeued.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, cur)
		if w.target != nil && cur == *w.target {
			return
		}
		depth := w.res.Depth[cur]
		for _, nbr := range w.grid.Passages(cur) {
			if _, seen := w.res.Depth[nbr]; seen {
				continue
			}
			w.res.Depth[nbr] = depth + 1
			w.res.Parent[nbr] = cur
			w.queue = append(w.queue, nbr)
		}
	}
}
