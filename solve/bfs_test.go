package solve_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/solve"
)

// openAll removes every interior wall of g.
func openAll(t *testing.T, g *grid.Grid) {
	t.Helper()
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cur := grid.Coord{Row: r, Col: c}
			for _, d := range []grid.Direction{grid.Right, grid.Bottom} {
				n := cur.Step(d)
				if g.InBounds(n) {
					if err := g.RemoveWall(cur, n); err != nil {
						t.Fatalf("RemoveWall: %v", err)
					}
				}
			}
		}
	}
}

// carveChain opens walls along a consecutive sequence of cells.
func carveChain(t *testing.T, g *grid.Grid, cells ...grid.Coord) {
	t.Helper()
	for i := 1; i < len(cells); i++ {
		if err := g.RemoveWall(cells[i-1], cells[i]); err != nil {
			t.Fatalf("RemoveWall(%v,%v): %v", cells[i-1], cells[i], err)
		}
	}
}

// TestPath_Errors verifies that invalid inputs are rejected.
func TestPath_Errors(t *testing.T) {
	if _, err := solve.Path(nil, grid.Coord{}, grid.Coord{}); !errors.Is(err, solve.ErrGridNil) {
		t.Errorf("nil grid: want ErrGridNil, got %v", err)
	}
	g, _ := grid.New(2, 2)
	if _, err := solve.Path(g, grid.Coord{Row: -1}, grid.Coord{}); !errors.Is(err, solve.ErrOutOfBounds) {
		t.Errorf("bad start: want ErrOutOfBounds, got %v", err)
	}
	if _, err := solve.Path(g, grid.Coord{}, grid.Coord{Row: 2}); !errors.Is(err, solve.ErrOutOfBounds) {
		t.Errorf("bad end: want ErrOutOfBounds, got %v", err)
	}
	if _, err := solve.BFS(nil, grid.Coord{}); !errors.Is(err, solve.ErrGridNil) {
		t.Errorf("BFS nil grid: want ErrGridNil, got %v", err)
	}
}

// TestPath_FollowsCorridor checks a hand-carved S-shaped corridor.
func TestPath_FollowsCorridor(t *testing.T) {
	g, _ := grid.New(3, 3)
	want := []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 1, Col: 1}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}
	carveChain(t, g, want...)

	got, err := solve.Path(g, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 2, Col: 2})
	if err != nil {
		t.Fatalf("Path error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Path = %v; want %v", got, want)
	}
	for i := 1; i < len(got); i++ {
		if !g.Open(got[i-1], got[i]) {
			t.Errorf("step %v→%v crosses a wall", got[i-1], got[i])
		}
	}
}

// TestPath_Unreachable returns an empty path without error.
func TestPath_Unreachable(t *testing.T) {
	g, _ := grid.New(2, 3)
	carveChain(t, g, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 0, Col: 1})

	got, err := solve.Path(g, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 1, Col: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Path = %v; want empty non-nil slice", got)
	}
}

// TestPath_StartIsEnd yields a single-cell path.
func TestPath_StartIsEnd(t *testing.T) {
	g, _ := grid.New(2, 2)
	c := grid.Coord{Row: 1, Col: 1}
	got, _ := solve.Path(g, c, c)
	if !reflect.DeepEqual(got, []grid.Coord{c}) {
		t.Errorf("Path = %v; want [%v]", got, c)
	}
}

// TestPath_TieBreakByEnqueueOrder pins the choice among equal-length paths.
func TestPath_TieBreakByEnqueueOrder(t *testing.T) {
	g, _ := grid.New(2, 2)
	openAll(t, g)
	got, _ := solve.Path(g, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 1, Col: 1})
	want := []grid.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Path = %v; want %v (Bottom before Right)", got, want)
	}
}

// TestBFS_DepthsOnOpenGrid checks Manhattan depths on a wall-free grid.
func TestBFS_DepthsOnOpenGrid(t *testing.T) {
	g, _ := grid.New(3, 4)
	openAll(t, g)
	start := grid.Coord{Row: 1, Col: 1}
	res, err := solve.BFS(g, start)
	if err != nil {
		t.Fatalf("BFS error: %v", err)
	}
	if len(res.Order) != g.Size() {
		t.Fatalf("visited %d cells; want %d", len(res.Order), g.Size())
	}
	if res.Order[0] != start {
		t.Errorf("first visited = %v; want %v", res.Order[0], start)
	}
	for i := 0; i < g.Size(); i++ {
		c := g.Coordinate(i)
		if res.Depth[c] != c.Manhattan(start) {
			t.Errorf("Depth[%v] = %d; want %d", c, res.Depth[c], c.Manhattan(start))
		}
		if p := res.PathTo(c); len(p) != res.Depth[c]+1 {
			t.Errorf("len(PathTo(%v)) = %d; want %d", c, len(p), res.Depth[c]+1)
		}
	}
	if _, hasParent := res.Parent[start]; hasParent {
		t.Error("start must have no parent")
	}
}
