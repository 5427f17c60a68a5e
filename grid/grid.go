package grid

import (
	"fmt"
	"strings"
)

// New constructs a rows×cols Grid with every wall standing and no cell visited.
// Returns ErrBadDimensions if rows or cols is not positive.
// Complexity: O(R×C) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, rows, cols)
	}
	cells := make([]Cell, rows*cols)
	for i := range cells {
		cells[i].Walls = [4]bool{true, true, true, true}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols.
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Index maps c to its row-major index: Row*Cols + Col.
// The caller must ensure c is in bounds.
func (g *Grid) Index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// Cell returns a copy of the cell at c, or false if c is out of bounds.
func (g *Grid) Cell(c Coord) (Cell, bool) {
	if !g.InBounds(c) {
		return Cell{}, false
	}
	return g.cells[g.Index(c)], true
}

// HasWall reports whether the wall on side d of c is standing.
// Out-of-bounds cells report every wall as standing.
func (g *Grid) HasWall(c Coord, d Direction) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.cells[g.Index(c)].Walls[d]
}

// MarkVisited sets the visited flag of c. Out-of-bounds coordinates are ignored.
func (g *Grid) MarkVisited(c Coord) {
	if g.InBounds(c) {
		g.cells[g.Index(c)].Visited = true
	}
}

// Visited reports the visited flag of c; out-of-bounds cells count as visited
// so they never enter a carving frontier.
func (g *Grid) Visited(c Coord) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.cells[g.Index(c)].Visited
}

// Neighbors returns the in-bounds, not-yet-visited 4-adjacent cells of c
// in Top/Right/Bottom/Left order. Intended for carving only.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range Directions {
		n := c.Step(d)
		if g.InBounds(n) && !g.cells[g.Index(n)].Visited {
			out = append(out, n)
		}
	}
	return out
}

// DirectionTo returns the side of a that faces b, or false if the two cells
// are not 4-adjacent.
func DirectionTo(a, b Coord) (Direction, bool) {
	for _, d := range Directions {
		if a.Step(d) == b {
			return d, true
		}
	}
	return 0, false
}

// RemoveWall clears the wall between 4-adjacent cells a and b, updating both
// cells so the pair stays consistent.
// Returns ErrOutOfBounds if either cell is outside the grid and
// ErrInvalidAdjacency if they are not 4-adjacent.
// Complexity: O(1).
func (g *Grid) RemoveWall(a, b Coord) error {
	if !g.InBounds(a) || !g.InBounds(b) {
		return fmt.Errorf("%w: %v–%v in %d×%d", ErrOutOfBounds, a, b, g.rows, g.cols)
	}
	d, ok := DirectionTo(a, b)
	if !ok {
		return fmt.Errorf("%w: %v–%v", ErrInvalidAdjacency, a, b)
	}
	g.cells[g.Index(a)].Walls[d] = false
	g.cells[g.Index(b)].Walls[d.Opposite()] = false

	return nil
}

// Open reports whether a and b are 4-adjacent and the wall between them is removed.
func (g *Grid) Open(a, b Coord) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	d, ok := DirectionTo(a, b)
	if !ok {
		return false
	}
	return !g.cells[g.Index(a)].Walls[d]
}

// passageOrder is the neighbour order used by wall-driven traversals.
var passageOrder = [4]Direction{Top, Bottom, Left, Right}

// Passages returns the in-bounds neighbours of c reachable through a removed
// wall, in Top/Bottom/Left/Right order.
// Complexity: O(1).
func (g *Grid) Passages(c Coord) []Coord {
	if !g.InBounds(c) {
		return nil
	}
	cell := g.cells[g.Index(c)]
	out := make([]Coord, 0, 4)
	for _, d := range passageOrder {
		if cell.Walls[d] {
			continue
		}
		n := c.Step(d)
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// String draws the grid with ASCII box characters, one text row per cell row
// plus the wall rows between them.
func (g *Grid) String() string {
	var sb strings.Builder

	sb.WriteString("+")
	for c := 0; c < g.cols; c++ {
		if g.HasWall(Coord{0, c}, Top) {
			sb.WriteString("---+")
		} else {
			sb.WriteString("   +")
		}
	}
	sb.WriteString("\n")

	for r := 0; r < g.rows; r++ {
		if g.HasWall(Coord{r, 0}, Left) {
			sb.WriteString("|")
		} else {
			sb.WriteString(" ")
		}
		for c := 0; c < g.cols; c++ {
			if g.HasWall(Coord{r, c}, Right) {
				sb.WriteString("   |")
			} else {
				sb.WriteString("    ")
			}
		}
		sb.WriteString("\n+")
		for c := 0; c < g.cols; c++ {
			if g.HasWall(Coord{r, c}, Bottom) {
				sb.WriteString("---+")
			} else {
				sb.WriteString("   +")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
