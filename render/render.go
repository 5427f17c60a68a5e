package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/shape"
)

// Walls returns one segment per standing wall of every active cell.
// A nil mask treats every cell as active.
func Walls(g *grid.Grid, mask *shape.Mask, l Layout) []Segment {
	cs := float64(l.CellSize)
	segs := make([]Segment, 0, g.Size()*2)
	for i := 0; i < g.Size(); i++ {
		c := g.Coordinate(i)
		if !mask.Has(c) {
			continue
		}
		o := l.Origin(c)
		tl := o
		tr := Point{X: o.X + cs, Y: o.Y}
		br := Point{X: o.X + cs, Y: o.Y + cs}
		bl := Point{X: o.X, Y: o.Y + cs}
		if g.HasWall(c, grid.Top) {
			segs = append(segs, Segment{tl, tr})
		}
		if g.HasWall(c, grid.Right) {
			segs = append(segs, Segment{tr, br})
		}
		if g.HasWall(c, grid.Bottom) {
			segs = append(segs, Segment{bl, br})
		}
		if g.HasWall(c, grid.Left) {
			segs = append(segs, Segment{tl, bl})
		}
	}
	return segs
}

// Corridors returns centre-to-centre segments for every open passage between
// two active cells, followed by a zero-length dot at each active centre.
func Corridors(g *grid.Grid, mask *shape.Mask, l Layout) []Segment {
	segs := make([]Segment, 0, g.Size()*2)
	for i := 0; i < g.Size(); i++ {
		c := g.Coordinate(i)
		if !mask.Has(c) {
			continue
		}
		for _, d := range []grid.Direction{grid.Right, grid.Bottom} {
			n := c.Step(d)
			if !g.InBounds(n) || g.HasWall(c, d) || !mask.Has(n) {
				continue
			}
			segs = append(segs, Segment{l.Center(c), l.Center(n)})
		}
	}
	for i := 0; i < g.Size(); i++ {
		c := g.Coordinate(i)
		if !mask.Has(c) {
			continue
		}
		p := l.Center(c)
		segs = append(segs, Segment{p, p})
	}
	return segs
}

// Strokes dispatches to Walls or Corridors.
func Strokes(style Style, g *grid.Grid, mask *shape.Mask, l Layout) ([]Segment, error) {
	switch style {
	case StyleWalls:
		return Walls(g, mask, l), nil
	case StyleCorridor:
		return Corridors(g, mask, l), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, string(style))
}

// SolutionPolyline maps each cell of path to its centre.
func SolutionPolyline(path []grid.Coord, l Layout) []Point {
	pts := make([]Point, len(path))
	for i, c := range path {
		pts[i] = l.Center(c)
	}
	return pts
}

// SolutionSegments returns the len(path)-1 centre-to-centre hit-test segments.
// Empty for paths shorter than two cells.
func SolutionSegments(path []grid.Coord, l Layout) []Segment {
	if len(path) < 2 {
		return []Segment{}
	}
	segs := make([]Segment, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		segs = append(segs, Segment{l.Center(path[i-1]), l.Center(path[i])})
	}
	return segs
}

// PathData encodes segments as space-separated "M x y L x y" commands.
func PathData(segs []Segment) string {
	var b strings.Builder
	for i, s := range segs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("M ")
		writePoint(&b, s.Start)
		b.WriteString(" L ")
		writePoint(&b, s.End)
	}
	return b.String()
}

// PolylineData encodes pts as "M x0 y0 L x1 y1 ...". Empty input yields "".
func PolylineData(pts []Point) string {
	var b strings.Builder
	for i, p := range pts {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		writePoint(&b, p)
	}
	return b.String()
}

func writePoint(b *strings.Builder, p Point) {
	b.WriteString(FormatNumber(p.X))
	b.WriteByte(' ')
	b.WriteString(FormatNumber(p.Y))
}

// FormatNumber prints v in its shortest decimal form ("60", "12.5").
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
