package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/labyrinth/grid"
)

// ErrUnknownStyle is returned for a style name other than walls or corridor.
var ErrUnknownStyle = errors.New("render: unknown style")

// Style selects how the maze structure is stroked.
type Style string

const (
	// StyleWalls draws the standing walls.
	StyleWalls Style = "walls"
	// StyleCorridor draws the open passages between cell centres.
	StyleCorridor Style = "corridor"
)

// ParseStyle maps a case-insensitive name to a Style. Empty means StyleWalls.
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case "", StyleWalls:
		return StyleWalls, nil
	case StyleCorridor:
		return StyleCorridor, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStyle, s)
}

// Point is a canvas position in pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment is a straight stroke between two points.
type Segment struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// Len returns the Euclidean length of s.
func (s Segment) Len() float64 {
	return s.Start.Dist(s.End)
}

// Layout maps grid cells onto the canvas.
type Layout struct {
	CellSize int `json:"cell_size"`
	OffsetX  int `json:"offset_x"`
	OffsetY  int `json:"offset_y"`
}

// Origin returns the top-left corner of cell c.
func (l Layout) Origin(c grid.Coord) Point {
	return Point{
		X: float64(l.OffsetX + c.Col*l.CellSize),
		Y: float64(l.OffsetY + c.Row*l.CellSize),
	}
}

// Center returns the centre of cell c, using integer half cell size.
func (l Layout) Center(c grid.Coord) Point {
	half := l.CellSize / 2
	return Point{
		X: float64(l.OffsetX + c.Col*l.CellSize + half),
		Y: float64(l.OffsetY + c.Row*l.CellSize + half),
	}
}
