package items

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/render"
	"github.com/katalvlaran/labyrinth/shape"
)

// defaultRNGSeed seeds the stream used when Place receives a nil RNG.
const defaultRNGSeed int64 = 1

var (
	// ErrUnknownRule is returned for a rule other than collect or avoid.
	ErrUnknownRule = errors.New("items: unknown rule")
	// ErrOptionViolation is returned for a negative item count.
	ErrOptionViolation = errors.New("items: invalid request")
)

// Rule decides where items go relative to the solution.
type Rule string

const (
	// Collect places items on the solution.
	Collect Rule = "collect"
	// Avoid places items off the solution.
	Avoid Rule = "avoid"
)

// ParseRule maps a case-insensitive name to a Rule.
func ParseRule(s string) (Rule, error) {
	switch r := Rule(strings.ToLower(strings.TrimSpace(s))); r {
	case Collect, Avoid:
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRule, s)
}

// Item is one placed marker. The pixel position is the cell centre.
type Item struct {
	render.Point
	Cell       grid.Coord `json:"-"`
	Marker     string     `json:"emoji"`
	OnSolution bool       `json:"on_solution"`
}

// Request carries everything Place needs.
type Request struct {
	Rule   Rule
	Count  int
	Marker string

	Solution   []grid.Coord
	Start, End grid.Coord

	// Mask restricts avoid candidates; nil means all Rows×Cols cells.
	Mask       *shape.Mask
	Rows, Cols int

	Layout render.Layout
}
