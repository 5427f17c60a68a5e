package trace

import (
	"math"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
)

// DefaultEndRadius is the completion radius around the end point, in screen pixels.
const DefaultEndRadius = 30.0

// Validator tests screen points against solution segments.
type Validator struct {
	Segments  []render.Segment
	Tolerance float64
	Scale     float64
	Offset    render.Point
}

// Fit returns the uniform scale and centring offset that letterbox a
// canvasW×canvasH canvas into a viewW×viewH view. A view with no width
// yields the identity transform.
func Fit(canvasW, canvasH int, viewW, viewH float64) (scale float64, offset render.Point) {
	if viewW <= 0 || canvasW <= 0 || canvasH <= 0 {
		return 1, render.Point{}
	}
	scale = min(viewW/float64(canvasW), viewH/float64(canvasH))
	offset = render.Point{
		X: (viewW - float64(canvasW)*scale) / 2,
		Y: (viewH - float64(canvasH)*scale) / 2,
	}
	return scale, offset
}

// FromResult builds a Validator for r shown in a viewW×viewH view.
func FromResult(r *maze.Result, tolerance, viewW, viewH float64) Validator {
	scale, offset := Fit(r.CanvasWidth, r.CanvasHeight, viewW, viewH)
	return Validator{
		Segments:  r.Segments,
		Tolerance: tolerance,
		Scale:     scale,
		Offset:    offset,
	}
}

// ToScreen maps a canvas point into screen coordinates.
func (v Validator) ToScreen(p render.Point) render.Point {
	return render.Point{X: p.X*v.Scale + v.Offset.X, Y: p.Y*v.Scale + v.Offset.Y}
}

// MinimumDistance returns the distance from p to the nearest segment,
// or +Inf when there are no segments.
func (v Validator) MinimumDistance(p render.Point) float64 {
	best := math.Inf(1)
	for _, s := range v.Segments {
		ts := render.Segment{Start: v.ToScreen(s.Start), End: v.ToScreen(s.End)}
		best = min(best, p.DistToSegment(ts))
	}
	return best
}

// OnPath reports whether p is within Tolerance of the path.
func (v Validator) OnPath(p render.Point) bool {
	return v.MinimumDistance(p) <= v.Tolerance
}

// NearEnd reports whether p is within radius of the canvas point end.
func (v Validator) NearEnd(p, end render.Point, radius float64) bool {
	return p.Dist(v.ToScreen(end)) <= radius
}
