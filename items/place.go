package items

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/labyrinth/grid"
)

// Place selects up to req.Count cells according to req.Rule and returns
// them as items. A nil rng uses a fixed default stream.
func Place(rng *rand.Rand, req Request) ([]Item, error) {
	if req.Rule != Collect && req.Rule != Avoid {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, string(req.Rule))
	}
	if req.Count < 0 {
		return nil, fmt.Errorf("%w: count %d", ErrOptionViolation, req.Count)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultRNGSeed))
	}

	onPath := mapset.New[grid.Coord]()
	for _, c := range req.Solution {
		onPath.Put(c)
	}

	var candidates []grid.Coord
	switch req.Rule {
	case Collect:
		for _, c := range req.Solution {
			if c != req.Start && c != req.End {
				candidates = append(candidates, c)
			}
		}
	case Avoid:
		for _, c := range activeCells(req) {
			if !onPath.Has(c) {
				candidates = append(candidates, c)
			}
		}
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	n := min(req.Count, len(candidates))

	out := make([]Item, 0, n)
	for _, c := range candidates[:n] {
		out = append(out, Item{
			Point:      req.Layout.Center(c),
			Cell:       c,
			Marker:     req.Marker,
			OnSolution: onPath.Has(c),
		})
	}
	return out, nil
}

// activeCells lists the avoid-rule universe in row-major order.
func activeCells(req Request) []grid.Coord {
	if req.Mask != nil {
		return req.Mask.Coords()
	}
	cells := make([]grid.Coord, 0, req.Rows*req.Cols)
	for r := 0; r < req.Rows; r++ {
		for c := 0; c < req.Cols; c++ {
			cells = append(cells, grid.Coord{Row: r, Col: c})
		}
	}
	return cells
}
