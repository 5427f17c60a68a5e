package organic

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/katalvlaran/labyrinth/render"
)

// Defaults used for zero-valued Options fields.
const (
	DefaultWidth     = 600
	DefaultHeight    = 500
	DefaultPathWidth = 35
	DefaultTurns     = 4
	DefaultMargin    = 60

	jitterX = 80.0
	jitterY = 40.0
)

const defaultRNGSeed int64 = 1

// ErrOptionViolation is returned for negative or degenerate options.
var ErrOptionViolation = errors.New("organic: invalid option supplied")

// Options configures Generate. Zero fields take the package defaults.
type Options struct {
	Width, Height int
	PathWidth     int
	Turns         int
	Margin        int
}

// Path is a generated organic path.
type Path struct {
	SVGPath       string
	PathWidth     int
	Start, End    render.Point
	ControlPoints []render.Point
	Segments      []render.Segment
	CanvasWidth   int
	CanvasHeight  int
}

// Generate builds an organic path using rng. A nil rng uses a fixed default stream.
func Generate(rng *rand.Rand, opts Options) (*Path, error) {
	o, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultRNGSeed))
	}

	sx, sy := float64(o.Margin), float64(o.Height-o.Margin)
	ex, ey := float64(o.Width-o.Margin), float64(o.Margin)

	pts := make([]render.Point, 0, o.Turns+2)
	pts = append(pts, render.Point{X: sx, Y: sy})
	for i := 0; i < o.Turns; i++ {
		t := float64(i+1) / float64(o.Turns+1)
		dx := rng.Float64()*2*jitterX - jitterX
		dy := rng.Float64()*2*jitterY - jitterY
		pts = append(pts, render.Point{
			X: sx + (ex-sx)*t + dx,
			Y: sy + (ey-sy)*t + dy,
		})
	}
	pts = append(pts, render.Point{X: ex, Y: ey})

	rounded := make([]render.Point, len(pts))
	for i, p := range pts {
		rounded[i] = round1(p)
	}
	segs := make([]render.Segment, 0, len(pts)-1)
	for i := 1; i < len(rounded); i++ {
		segs = append(segs, render.Segment{Start: rounded[i-1], End: rounded[i]})
	}

	return &Path{
		SVGPath:       curveData(pts),
		PathWidth:     o.PathWidth,
		Start:         rounded[0],
		End:           rounded[len(rounded)-1],
		ControlPoints: rounded,
		Segments:      segs,
		CanvasWidth:   o.Width,
		CanvasHeight:  o.Height,
	}, nil
}

func (o Options) resolve() (Options, error) {
	if o.Width < 0 || o.Height < 0 || o.PathWidth < 0 || o.Turns < 0 || o.Margin < 0 {
		return o, fmt.Errorf("%w: negative value in %+v", ErrOptionViolation, o)
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.PathWidth == 0 {
		o.PathWidth = DefaultPathWidth
	}
	if o.Turns == 0 {
		o.Turns = DefaultTurns
	}
	if o.Margin == 0 {
		o.Margin = DefaultMargin
	}
	if 2*o.Margin >= o.Width || 2*o.Margin >= o.Height {
		return o, fmt.Errorf("%w: margin %d leaves no room in %d×%d",
			ErrOptionViolation, o.Margin, o.Width, o.Height)
	}
	return o, nil
}

// curveData emits the quadratic-through-midpoints path for pts (len ≥ 2).
func curveData(pts []render.Point) string {
	var b strings.Builder
	b.WriteString("M ")
	writePair(&b, pts[0])
	for i := 1; i < len(pts)-1; i++ {
		mid := render.Point{
			X: (pts[i].X + pts[i+1].X) / 2,
			Y: (pts[i].Y + pts[i+1].Y) / 2,
		}
		b.WriteString(" Q ")
		writePair(&b, pts[i])
		b.WriteByte(' ')
		writePair(&b, mid)
	}
	b.WriteString(" L ")
	writePair(&b, pts[len(pts)-1])
	return b.String()
}

func writePair(b *strings.Builder, p render.Point) {
	b.WriteString(strconv.FormatFloat(p.X, 'f', 1, 64))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(p.Y, 'f', 1, 64))
}

func round1(p render.Point) render.Point {
	return render.Point{X: math.Round(p.X*10) / 10, Y: math.Round(p.Y*10) / 10}
}
