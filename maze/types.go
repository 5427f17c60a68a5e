package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/carve"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/items"
	"github.com/katalvlaran/labyrinth/render"
)

const defaultRNGSeed int64 = 1

// Sentinel errors.
var (
	// ErrConfiguration wraps every parameter rejected by Generate.
	ErrConfiguration = errors.New("maze: invalid configuration")
	// ErrUnknownDifficulty is returned for a difficulty other than easy, medium or hard.
	ErrUnknownDifficulty = errors.New("maze: unknown difficulty")
	// ErrUnknownPosition is returned for an unrecognised start/end position name.
	ErrUnknownPosition = errors.New("maze: unknown position")
	// ErrUnreachableEndpoint is returned in strict mode when no solution exists.
	ErrUnreachableEndpoint = errors.New("maze: end is unreachable from start")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
)

// Difficulty selects the grid size and the solution quality target.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ParseDifficulty maps a case-insensitive name to a Difficulty. Empty means Easy.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return Easy, nil
	case Easy, Medium, Hard:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// Position names a region of the active area used to pin start or end.
type Position string

const (
	Top         Position = "top"
	Bottom      Position = "bottom"
	Left        Position = "left"
	Right       Position = "right"
	TopLeft     Position = "top_left"
	TopRight    Position = "top_right"
	BottomLeft  Position = "bottom_left"
	BottomRight Position = "bottom_right"
	Center      Position = "center"
)

// Positions lists every named position.
var Positions = []Position{Top, Bottom, Left, Right, TopLeft, TopRight, BottomLeft, BottomRight, Center}

// ParsePosition maps a name to a Position. Empty means "not pinned" and returns "".
func ParsePosition(s string) (Position, error) {
	p := Position(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return "", nil
	}
	for _, known := range Positions {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPosition, s)
}

// Params is the caller-facing description of a maze.
type Params struct {
	Difficulty string `json:"difficulty" yaml:"difficulty"`
	Age        int    `json:"age" yaml:"age"`
	Shape      string `json:"shape" yaml:"shape"`

	CanvasWidth  int `json:"canvas_width" yaml:"canvas_width"`
	CanvasHeight int `json:"canvas_height" yaml:"canvas_height"`

	// Rows and Cols override the difficulty policy when both are positive.
	Rows int `json:"rows,omitempty" yaml:"rows"`
	Cols int `json:"cols,omitempty" yaml:"cols"`

	Style string `json:"style" yaml:"style"`

	// Items are placed only when ItemRule, ItemMarker and ItemCount > 0 are all set.
	ItemRule   string `json:"item_rule,omitempty" yaml:"item_rule"`
	ItemCount  int    `json:"item_count,omitempty" yaml:"item_count"`
	ItemMarker string `json:"item_marker,omitempty" yaml:"item_marker"`

	StartPosition string `json:"start_position,omitempty" yaml:"start_position"`
	EndPosition   string `json:"end_position,omitempty" yaml:"end_position"`

	// Turns is used by Organic only; zero means the organic default.
	Turns int `json:"turns,omitempty" yaml:"turns"`
}

// DefaultParams returns an easy rectangular 600×500 wall maze for age 4.
func DefaultParams() Params {
	return Params{
		Difficulty:   string(Easy),
		Age:          4,
		Shape:        "rect",
		CanvasWidth:  600,
		CanvasHeight: 500,
		Style:        string(render.StyleWalls),
	}
}

// Option configures Generate and Organic.
type Option func(*Options)

// Options holds generation settings that are not part of the maze description.
type Options struct {
	Rand        *rand.Rand
	Logger      logrus.FieldLogger
	Strict      bool
	MaxAttempts int

	err error
}

// DefaultOptions returns a seed-1 RNG, a discarding logger, lenient mode and
// the carve retry budget.
func DefaultOptions() Options {
	return Options{
		Rand:        rand.New(rand.NewSource(defaultRNGSeed)),
		Logger:      carve.DiscardLogger(),
		MaxAttempts: carve.DefaultMaxAttempts,
	}
}

// WithRand provides the caller's RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed creates a deterministic RNG. Seed 0 maps to the default seed.
func WithSeed(seed int64) Option {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithLogger routes diagnostics to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStrict rejects disconnected masks and unreachable ends.
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// WithMaxAttempts sets the carve retry budget; n < 1 is an ErrOptionViolation.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxAttempts must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxAttempts = n
	}
}

// Result is the complete description of one generated maze.
// It is created once by Generate or Organic and never modified afterwards.
type Result struct {
	ID           string           `json:"id"`
	MazeType     string           `json:"maze_type"`
	SVGPath      string           `json:"svg_path"`
	SolutionPath string           `json:"solution_path"`
	PathWidth    int              `json:"path_width"`
	CellSize     int              `json:"cell_size,omitempty"`
	GridRows     int              `json:"grid_rows,omitempty"`
	GridCols     int              `json:"grid_cols,omitempty"`
	StartPoint   render.Point     `json:"start_point"`
	EndPoint     render.Point     `json:"end_point"`
	Segments     []render.Segment `json:"segments"`
	CanvasWidth  int              `json:"canvas_width"`
	CanvasHeight int              `json:"canvas_height"`
	Complexity   string           `json:"complexity"`
	Shape        string           `json:"shape,omitempty"`
	ItemRule     string           `json:"item_rule,omitempty"`
	Items        []items.Item     `json:"items,omitempty"`

	ControlPoints []render.Point `json:"control_points,omitempty"`

	Attempts      int     `json:"attempts,omitempty"`
	SolutionRatio float64 `json:"solution_ratio,omitempty"`
	QualityMet    bool    `json:"quality_met"`

	Start    grid.Coord       `json:"-"`
	End      grid.Coord       `json:"-"`
	Solution []grid.Coord     `json:"-"`
	Strokes  []render.Segment `json:"-"`
	Layout   render.Layout    `json:"-"`
}

// Difficulty returns the parsed complexity, or Easy when it is not recognised.
func (r *Result) Difficulty() Difficulty {
	d, err := ParseDifficulty(r.Complexity)
	if err != nil {
		return Easy
	}
	return d
}
