package carve

import (
	"fmt"

	"github.com/spakin/disjoint"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/shape"
)

// VerifySpanningTree checks that the open walls of g form exactly one tree
// spanning the active cells of mask (nil mask: every cell).
//
// Each active cell gets a disjoint-set element. Every open wall is unioned
// once (scanning Right and Bottom only); joining two cells that already share
// a root is a cycle. An open wall touching an inactive cell is a leak. More
// than one root at the end means the active region is split.
func VerifySpanningTree(g *grid.Grid, mask *shape.Mask) error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", ErrDisconnected)
	}
	if mask != nil && (mask.Rows() != g.Rows() || mask.Cols() != g.Cols()) {
		return fmt.Errorf("%w: mask %d×%d, grid %d×%d",
			ErrMaskMismatch, mask.Rows(), mask.Cols(), g.Rows(), g.Cols())
	}

	sets := make(map[grid.Coord]*disjoint.Element, g.Size())
	for i := 0; i < g.Size(); i++ {
		c := g.Coordinate(i)
		if mask.Has(c) {
			sets[c] = disjoint.NewElement()
		}
	}

	for i := 0; i < g.Size(); i++ {
		c := g.Coordinate(i)
		_, active := sets[c]
		for _, d := range grid.Directions {
			n := c.Step(d)
			if !g.InBounds(n) || g.HasWall(c, d) {
				continue
			}
			_, nActive := sets[n]
			if !active || !nActive {
				return fmt.Errorf("%w: %s→%s", ErrLeak, c, n)
			}
			if d != grid.Right && d != grid.Bottom {
				continue
			}
			if sets[c].Find() == sets[n].Find() {
				return fmt.Errorf("%w: closing %s→%s", ErrCycle, c, n)
			}
			disjoint.Union(sets[c], sets[n])
		}
	}

	roots := make(map[*disjoint.Element]struct{})
	for _, e := range sets {
		roots[e.Find()] = struct{}{}
	}
	if len(roots) > 1 {
		return fmt.Errorf("%w: %d components", ErrDisconnected, len(roots))
	}

	return nil
}
