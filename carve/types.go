package carve

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/shape"
)

// DefaultMaxAttempts is the carve retry budget used by the quality gate.
const DefaultMaxAttempts = 20

// defaultRNGSeed is the seed used when no RNG option is supplied.
const defaultRNGSeed int64 = 1

// Sentinel errors for carving and verification.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("carve: invalid option supplied")
	// ErrMaskMismatch is returned when the mask dimensions differ from the grid.
	ErrMaskMismatch = errors.New("carve: mask dimensions do not match grid")
	// ErrCycle indicates an opened wall closing a loop.
	ErrCycle = errors.New("carve: open walls contain a cycle")
	// ErrLeak indicates an opened wall leading out of the active region.
	ErrLeak = errors.New("carve: open wall leaves the active region")
	// ErrDisconnected indicates active cells not joined to the rest.
	ErrDisconnected = errors.New("carve: active cells are not connected")
)

// Option configures Carve via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Carve.
type Option func(*CarveOptions)

// CarveOptions holds the parameters of one Carve call.
type CarveOptions struct {
	// Rand drives neighbour choice. Never shared across goroutines.
	Rand *rand.Rand

	// Mask restricts carving to active cells; nil means every cell.
	Mask *shape.Mask

	// End, if non-nil, is solved after every attempt.
	End *grid.Coord

	// MinRatio is the minimum len(solution)/active accepted by the quality
	// gate. Zero disables the gate.
	MinRatio float64

	// MaxAttempts bounds the number of carves.
	MaxAttempts int

	// Logger receives quality-gate diagnostics.
	Logger logrus.FieldLogger

	err error
}

// DefaultOptions returns CarveOptions with a seed-1 RNG, no mask, no end,
// the gate disabled, DefaultMaxAttempts and a discarding logger.
func DefaultOptions() CarveOptions {
	return CarveOptions{
		Rand:        rand.New(rand.NewSource(defaultRNGSeed)),
		MaxAttempts: DefaultMaxAttempts,
		Logger:      DiscardLogger(),
	}
}

// DiscardLogger returns a logrus logger that writes nowhere.
func DiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// WithRand provides the caller's RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("carve: WithRand(nil)")
	}
	return func(o *CarveOptions) {
		o.Rand = r
	}
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) Option {
	return func(o *CarveOptions) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithMask restricts carving to the active cells of m. A nil mask keeps every cell active.
func WithMask(m *shape.Mask) Option {
	return func(o *CarveOptions) {
		o.Mask = m
	}
}

// WithEnd sets the end cell solved after each attempt.
func WithEnd(end grid.Coord) Option {
	return func(o *CarveOptions) {
		o.End = &end
	}
}

// WithMinRatio sets the quality-gate threshold.
//
//	0 < r ≤ 1: gate enabled (needs WithEnd)
//	r == 0:    gate disabled
//	otherwise: ErrOptionViolation
func WithMinRatio(r float64) Option {
	return func(o *CarveOptions) {
		if r < 0 || r > 1 {
			o.err = fmt.Errorf("%w: MinRatio must be in [0,1] (%g)", ErrOptionViolation, r)
			return
		}
		o.MinRatio = r
	}
}

// WithMaxAttempts sets the retry budget; n < 1 is an ErrOptionViolation.
func WithMaxAttempts(n int) Option {
	return func(o *CarveOptions) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxAttempts must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxAttempts = n
	}
}

// WithLogger routes diagnostics to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *CarveOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the outcome of Carve.
type Result struct {
	// Grid is the accepted (or last) carved grid.
	Grid *grid.Grid
	// Solution is the start→end path on Grid; nil without WithEnd,
	// empty when the end is unreachable.
	Solution []grid.Coord
	// Attempts is the number of carves performed (1..MaxAttempts).
	Attempts int
	// Active is the number of active cells.
	Active int
	// Ratio is len(Solution)/Active for the returned grid.
	Ratio float64
	// QualityMet is false only when the gate was enabled and never satisfied.
	QualityMet bool
}
