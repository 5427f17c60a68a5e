package shape

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/labyrinth/grid"
)

// Sentinel errors for mask construction.
var (
	// ErrUnknownShape indicates an unsupported shape name.
	ErrUnknownShape = errors.New("shape: unknown shape")
	// ErrEmptyMask indicates a mask with zero active cells.
	ErrEmptyMask = errors.New("shape: mask has no active cells")
	// ErrDisconnected indicates a mask whose active cells are not 4-connected.
	ErrDisconnected = errors.New("shape: mask is not connected")
)

// Kind names a maze silhouette.
type Kind string

const (
	Rect     Kind = "rect"
	Triangle Kind = "triangle"
	Tree     Kind = "tree"
	Mountain Kind = "mountain"
	Diamond  Kind = "diamond"
	Circle   Kind = "circle"
)

// Func maps grid dimensions to a mask.
type Func func(rows, cols int) *Mask

var registry = map[Kind]Func{
	Triangle: TriangleMask,
	Tree:     TreeMask,
	Mountain: MountainMask,
	Diamond:  DiamondMask,
	Circle:   CircleMask,
}

// Kinds returns every supported shape, Rect first.
func Kinds() []Kind {
	return []Kind{Rect, Triangle, Tree, Mountain, Diamond, Circle}
}

// ParseKind resolves a shape name (case-insensitive). The empty string means Rect.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if k == "" {
		return Rect, nil
	}
	if k == Rect {
		return k, nil
	}
	if _, ok := registry[k]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

// Build returns the mask for kind on a rows×cols grid.
// Rect yields (nil, nil): no mask, every cell active.
// Returns grid.ErrBadDimensions for non-positive dimensions, ErrUnknownShape
// for unsupported kinds and ErrEmptyMask when the silhouette is empty.
func Build(kind Kind, rows, cols int) (*Mask, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", grid.ErrBadDimensions, rows, cols)
	}
	if kind == Rect || kind == "" {
		return nil, nil
	}
	fn, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, kind)
	}
	m := fn(rows, cols)
	if m.Size() == 0 {
		return nil, fmt.Errorf("%w: %s on %d×%d", ErrEmptyMask, kind, rows, cols)
	}
	return m, nil
}
