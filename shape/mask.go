package shape

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/labyrinth/grid"
)

// Mask is the set of active cells of a rows×cols grid.
// Coordinates outside the grid are never stored.
type Mask struct {
	rows, cols int
	cells      mapset.Set[grid.Coord]
}

// NewMask returns an empty mask for a rows×cols grid.
func NewMask(rows, cols int) *Mask {
	return &Mask{rows: rows, cols: cols, cells: mapset.New[grid.Coord]()}
}

// Full returns a mask with every cell of a rows×cols grid active.
func Full(rows, cols int) *Mask {
	m := NewMask(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			m.cells.Put(grid.Coord{Row: r, Col: c})
		}
	}
	return m
}

// Rows returns the grid height the mask was built for.
func (m *Mask) Rows() int { return m.rows }

// Cols returns the grid width the mask was built for.
func (m *Mask) Cols() int { return m.cols }

// Add activates c. Out-of-bounds coordinates are ignored.
func (m *Mask) Add(c grid.Coord) {
	if c.Row < 0 || c.Row >= m.rows || c.Col < 0 || c.Col >= m.cols {
		return
	}
	m.cells.Put(c)
}

// Has reports whether c is active. A nil mask treats every cell as active.
func (m *Mask) Has(c grid.Coord) bool {
	if m == nil {
		return true
	}
	return m.cells.Has(c)
}

// Size returns the number of active cells. A nil mask reports zero.
func (m *Mask) Size() int {
	if m == nil {
		return 0
	}
	return m.cells.Size()
}

// Coords returns the active cells in row-major order.
func (m *Mask) Coords() []grid.Coord {
	if m == nil {
		return nil
	}
	out := make([]grid.Coord, 0, m.cells.Size())
	m.cells.Each(func(c grid.Coord) {
		out = append(out, c)
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// RowCount returns the number of active cells in row r.
func (m *Mask) RowCount(r int) int {
	n := 0
	for c := 0; c < m.cols; c++ {
		if m.cells.Has(grid.Coord{Row: r, Col: c}) {
			n++
		}
	}
	return n
}

// Bounds returns the bounding box of the active cells. ok is false for an empty mask.
func (m *Mask) Bounds() (minRow, maxRow, minCol, maxCol int, ok bool) {
	if m.Size() == 0 {
		return 0, 0, 0, 0, false
	}
	minRow, minCol = m.rows, m.cols
	maxRow, maxCol = -1, -1
	m.cells.Each(func(c grid.Coord) {
		minRow = min(minRow, c.Row)
		maxRow = max(maxRow, c.Row)
		minCol = min(minCol, c.Col)
		maxCol = max(maxCol, c.Col)
	})
	return minRow, maxRow, minCol, maxCol, true
}

// Equal reports whether m and o have the same dimensions and active cells.
func (m *Mask) Equal(o *Mask) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols || m.Size() != o.Size() {
		return false
	}
	same := true
	m.cells.Each(func(c grid.Coord) {
		if !o.cells.Has(c) {
			same = false
		}
	})
	return same
}
