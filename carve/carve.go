package carve

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/shape"
	"github.com/katalvlaran/labyrinth/solve"
)

// Carve carves a perfect maze of rows×cols cells seeded at start.
//
// Without WithEnd only one attempt is made. With WithEnd the solution is
// computed after each attempt; with WithMinRatio(r>0) attempts repeat until
// the ratio reaches r or MaxAttempts is exhausted.
//
// If start is not an active cell, carving is seeded at the first active cell
// in row-major order and start stays disconnected (empty Solution).
func Carve(rows, cols int, start grid.Coord, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", grid.ErrBadDimensions, rows, cols)
	}

	active := rows * cols
	if o.Mask != nil {
		if o.Mask.Rows() != rows || o.Mask.Cols() != cols {
			return nil, fmt.Errorf("%w: mask %d×%d, grid %d×%d",
				ErrMaskMismatch, o.Mask.Rows(), o.Mask.Cols(), rows, cols)
		}
		active = o.Mask.Size()
		if active == 0 {
			return nil, shape.ErrEmptyMask
		}
	}
	if !inside(rows, cols, start) {
		return nil, fmt.Errorf("%w: start %s", grid.ErrOutOfBounds, start)
	}
	if o.End != nil && !inside(rows, cols, *o.End) {
		return nil, fmt.Errorf("%w: end %s", grid.ErrOutOfBounds, *o.End)
	}

	seed := start
	if !o.Mask.Has(start) {
		seed = o.Mask.Coords()[0]
	}
	gated := o.End != nil && o.MinRatio > 0

	res := &Result{Active: active}
	for attempt := 1; attempt <= o.MaxAttempts; attempt++ {
		g, err := grid.New(rows, cols)
		if err != nil {
			return nil, err
		}
		carveTree(g, o.Mask, seed, o.Rand)
		res.Grid, res.Attempts = g, attempt

		if o.End == nil {
			res.QualityMet = true
			return res, nil
		}
		sol, err := solve.Path(g, start, *o.End)
		if err != nil {
			return nil, err
		}
		res.Solution = sol
		res.Ratio = float64(len(sol)) / float64(active)
		if !gated || res.Ratio >= o.MinRatio {
			res.QualityMet = true
			return res, nil
		}
	}

	o.Logger.WithFields(logrus.Fields{
		"rows":      rows,
		"cols":      cols,
		"attempts":  res.Attempts,
		"ratio":     res.Ratio,
		"min_ratio": o.MinRatio,
	}).Warn("carve: solution ratio below target, keeping last attempt")

	return res, nil
}

// carveTree runs the explicit-stack randomized DFS on g.
// Inactive cells are marked visited first so they never join the frontier.
func carveTree(g *grid.Grid, mask *shape.Mask, seed grid.Coord, rng *rand.Rand) {
	if mask != nil {
		for i := 0; i < g.Size(); i++ {
			c := g.Coordinate(i)
			if !mask.Has(c) {
				g.MarkVisited(c)
			}
		}
	}

	g.MarkVisited(seed)
	stack := []grid.Coord{seed}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		next := g.Neighbors(cur)
		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		n := next[rng.Intn(len(next))]
		// cur and n are adjacent and in bounds.
		_ = g.RemoveWall(cur, n)
		g.MarkVisited(n)
		stack = append(stack, n)
	}
}

func inside(rows, cols int, c grid.Coord) bool {
	return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
}
