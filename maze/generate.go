package maze

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/carve"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/items"
	"github.com/katalvlaran/labyrinth/render"
	"github.com/katalvlaran/labyrinth/shape"
)

// resolved holds Params after validation.
type resolved struct {
	difficulty Difficulty
	kind       shape.Kind
	style      render.Style
	rule       items.Rule
	startPos   Position
	endPos     Position
	rows, cols int
}

// resolve validates p and applies the size policy.
func resolve(p Params) (resolved, error) {
	var (
		r   resolved
		err error
	)
	if r.difficulty, err = ParseDifficulty(p.Difficulty); err != nil {
		return r, configErr(err)
	}
	if r.kind, err = shape.ParseKind(p.Shape); err != nil {
		return r, configErr(err)
	}
	if r.style, err = render.ParseStyle(p.Style); err != nil {
		return r, configErr(err)
	}
	if p.ItemRule != "" {
		if r.rule, err = items.ParseRule(p.ItemRule); err != nil {
			return r, configErr(err)
		}
	}
	if p.ItemCount < 0 {
		return r, configErr(fmt.Errorf("%w: item count %d", items.ErrOptionViolation, p.ItemCount))
	}
	if r.startPos, err = ParsePosition(p.StartPosition); err != nil {
		return r, configErr(err)
	}
	if r.endPos, err = ParsePosition(p.EndPosition); err != nil {
		return r, configErr(err)
	}
	if p.CanvasWidth <= 0 || p.CanvasHeight <= 0 {
		return r, configErr(fmt.Errorf("%w: canvas %d×%d", grid.ErrBadDimensions, p.CanvasWidth, p.CanvasHeight))
	}
	if p.Rows < 0 || p.Cols < 0 {
		return r, configErr(fmt.Errorf("%w: got %d×%d", grid.ErrBadDimensions, p.Rows, p.Cols))
	}

	if p.Rows > 0 && p.Cols > 0 {
		r.rows, r.cols = p.Rows, p.Cols
	} else {
		r.rows, r.cols = GridSize(r.difficulty, p.Age)
	}
	return r, nil
}

// Generate builds a maze described by p.
func Generate(p Params, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	r, err := resolve(p)
	if err != nil {
		return nil, err
	}
	layout := ComputeLayout(p.CanvasWidth, p.CanvasHeight, r.rows, r.cols)

	mask, err := shape.Build(r.kind, r.rows, r.cols)
	if err != nil {
		return nil, configErr(err)
	}
	if o.Strict && mask != nil && !mask.Connected() {
		return nil, configErr(fmt.Errorf("%w: %s %d×%d", shape.ErrDisconnected, r.kind, r.rows, r.cols))
	}

	start, end := defaultEndpoints(mask, r.rows, r.cols)
	active := mask.Coords()
	if mask == nil {
		active = shape.Full(r.rows, r.cols).Coords()
	}
	start, end = pinEndpoints(o.Rand, active, r.startPos, r.endPos, start, end)

	carved, err := carve.Carve(r.rows, r.cols, start,
		carve.WithRand(o.Rand),
		carve.WithMask(mask),
		carve.WithEnd(end),
		carve.WithMinRatio(MinRatio(r.difficulty)),
		carve.WithMaxAttempts(o.MaxAttempts),
		carve.WithLogger(o.Logger),
	)
	if err != nil {
		return nil, configErr(err)
	}
	solution := carved.Solution
	if len(solution) == 0 && o.Strict {
		return nil, fmt.Errorf("%w: %s→%s", ErrUnreachableEndpoint, start, end)
	}

	strokes, err := render.Strokes(r.style, carved.Grid, mask, layout)
	if err != nil {
		return nil, configErr(err)
	}

	res := &Result{
		MazeType:      mazeType(r.style, r.kind),
		SVGPath:       render.PathData(strokes),
		SolutionPath:  render.PolylineData(render.SolutionPolyline(solution, layout)),
		PathWidth:     PathWidth(p.Age),
		CellSize:      layout.CellSize,
		GridRows:      r.rows,
		GridCols:      r.cols,
		StartPoint:    layout.Center(start),
		EndPoint:      layout.Center(end),
		Segments:      render.SolutionSegments(solution, layout),
		CanvasWidth:   p.CanvasWidth,
		CanvasHeight:  p.CanvasHeight,
		Complexity:    string(r.difficulty),
		Shape:         string(r.kind),
		ItemRule:      string(r.rule),
		Attempts:      carved.Attempts,
		SolutionRatio: carved.Ratio,
		QualityMet:    carved.QualityMet,
		Start:         start,
		End:           end,
		Solution:      solution,
		Strokes:       strokes,
		Layout:        layout,
	}

	if r.rule != "" && p.ItemCount > 0 && p.ItemMarker != "" && len(solution) > 0 {
		placed, err := items.Place(o.Rand, items.Request{
			Rule:     r.rule,
			Count:    p.ItemCount,
			Marker:   p.ItemMarker,
			Solution: solution,
			Start:    start,
			End:      end,
			Mask:     mask,
			Rows:     r.rows,
			Cols:     r.cols,
			Layout:   layout,
		})
		if err != nil {
			return nil, configErr(err)
		}
		res.Items = placed
	}

	id, err := uuid.NewRandomFromReader(o.Rand)
	if err != nil {
		return nil, fmt.Errorf("maze: drawing id: %w", err)
	}
	res.ID = id.String()

	o.Logger.WithFields(logrus.Fields{
		"id":        res.ID,
		"maze_type": res.MazeType,
		"rows":      r.rows,
		"cols":      r.cols,
		"attempts":  res.Attempts,
		"ratio":     res.SolutionRatio,
	}).Debug("maze generated")

	return res, nil
}

func mazeType(style render.Style, kind shape.Kind) string {
	if style == render.StyleCorridor {
		return "corridor_" + string(kind)
	}
	if kind == shape.Rect {
		return "grid"
	}
	return "shaped_" + string(kind)
}

func configErr(err error) error {
	return fmt.Errorf("%w: %w", ErrConfiguration, err)
}
