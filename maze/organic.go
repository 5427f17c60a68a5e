package maze

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/organic"
)

// OrganicType is the MazeType of results built by Organic.
const OrganicType = "organic"

// Organic builds a wall-free curved path sized to p's canvas.
// Only Age, Difficulty, CanvasWidth, CanvasHeight and Turns are consulted.
func Organic(p Params, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	d, err := ParseDifficulty(p.Difficulty)
	if err != nil {
		return nil, configErr(err)
	}

	path, err := organic.Generate(o.Rand, organic.Options{
		Width:     p.CanvasWidth,
		Height:    p.CanvasHeight,
		PathWidth: PathWidth(p.Age),
		Turns:     p.Turns,
	})
	if err != nil {
		return nil, configErr(err)
	}

	id, err := uuid.NewRandomFromReader(o.Rand)
	if err != nil {
		return nil, fmt.Errorf("maze: drawing id: %w", err)
	}

	res := &Result{
		ID:            id.String(),
		MazeType:      OrganicType,
		SVGPath:       path.SVGPath,
		PathWidth:     path.PathWidth,
		StartPoint:    path.Start,
		EndPoint:      path.End,
		Segments:      path.Segments,
		CanvasWidth:   path.CanvasWidth,
		CanvasHeight:  path.CanvasHeight,
		Complexity:    string(d),
		ControlPoints: path.ControlPoints,
		QualityMet:    true,
	}
	o.Logger.WithFields(logrus.Fields{
		"id":     res.ID,
		"points": len(res.ControlPoints),
	}).Debug("organic path generated")

	return res, nil
}
