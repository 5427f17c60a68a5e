// Package grid defines core types and sentinel errors for the maze board.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates a non-positive row or column count.
	ErrBadDimensions = errors.New("grid: rows and cols must be positive")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrInvalidAdjacency indicates a wall operation on cells that are not 4-adjacent.
	ErrInvalidAdjacency = errors.New("grid: cells are not 4-adjacent")
)

// Direction names one side of a cell.
type Direction int

const (
	// Top is the wall toward row-1.
	Top Direction = iota
	// Right is the wall toward col+1.
	Right
	// Bottom is the wall toward row+1.
	Bottom
	// Left is the wall toward col-1.
	Left
)

// Directions lists all sides in the fixed Top/Right/Bottom/Left order.
var Directions = [4]Direction{Top, Right, Bottom, Left}

// deltas is indexed by Direction: {dRow, dCol}.
var deltas = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Opposite returns the side facing d on the neighbouring cell.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the row and column offset of the neighbour across d.
func (d Direction) Delta() (dRow, dCol int) {
	return deltas[d][0], deltas[d][1]
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Coord identifies a cell by row and column.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Step returns the coordinate one cell away in direction d.
func (c Coord) Step(d Direction) Coord {
	dr, dc := d.Delta()
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Manhattan returns |Δrow| + |Δcol| between c and o.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Cell holds the wall flags and the carving visited flag of one grid cell.
// Walls is indexed by Direction.
type Cell struct {
	Walls   [4]bool
	Visited bool
}

// HasWall reports whether the wall on side d is still standing.
func (c Cell) HasWall(d Direction) bool {
	return c.Walls[d]
}

// Grid is a fixed-size rows×cols board stored row-major.
// Cells are owned by the Grid; accessors hand out copies.
type Grid struct {
	rows, cols int
	cells      []Cell
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
