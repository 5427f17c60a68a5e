package items_test

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/items"
	"github.com/katalvlaran/labyrinth/render"
	"github.com/katalvlaran/labyrinth/shape"
)

var layout = render.Layout{CellSize: 40, OffsetX: 10, OffsetY: 20}

// snake is a solution through a 3×3 grid visiting six cells.
var snake = []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 2, Col: 1}}

func TestPlace_Collect(t *testing.T) {
	got, err := items.Place(rand.New(rand.NewSource(5)), items.Request{
		Rule: items.Collect, Count: 3, Marker: "⭐",
		Solution: snake, Start: snake[0], End: snake[len(snake)-1],
		Rows: 3, Cols: 3, Layout: layout,
	})
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, it := range got {
		assert.True(t, it.OnSolution)
		assert.NotEqual(t, snake[0], it.Cell)
		assert.NotEqual(t, snake[len(snake)-1], it.Cell)
		assert.Contains(t, snake, it.Cell)
		assert.Equal(t, layout.Center(it.Cell), it.Point)
		assert.Equal(t, "⭐", it.Marker)
	}
}

func TestPlace_CollectCappedByInterior(t *testing.T) {
	got, err := items.Place(nil, items.Request{
		Rule: items.Collect, Count: 10, Marker: "x",
		Solution: snake, Start: snake[0], End: snake[len(snake)-1],
		Layout: layout,
	})
	require.NoError(t, err)
	assert.Len(t, got, len(snake)-2)
}

func TestPlace_AvoidUnderFill(t *testing.T) {
	// 3 cells of a 3×3 grid are off the snake: (1,0), (1,1), (2,0).
	// Dropping (1,0) from the mask leaves two candidates for four requested items.
	m := shape.Full(3, 3)
	sub := shape.NewMask(3, 3)
	for _, c := range m.Coords() {
		if c != (grid.Coord{Row: 1, Col: 0}) {
			sub.Add(c)
		}
	}
	got, err := items.Place(rand.New(rand.NewSource(1)), items.Request{
		Rule: items.Avoid, Count: 4, Marker: "🔥",
		Solution: snake, Start: snake[0], End: snake[len(snake)-1],
		Mask: sub, Rows: 3, Cols: 3, Layout: layout,
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	cells := []grid.Coord{got[0].Cell, got[1].Cell}
	assert.ElementsMatch(t, []grid.Coord{{Row: 1, Col: 1}, {Row: 2, Col: 0}}, cells)
	for _, it := range got {
		assert.False(t, it.OnSolution)
	}
}

func TestPlace_AvoidWithoutMask(t *testing.T) {
	got, err := items.Place(rand.New(rand.NewSource(9)), items.Request{
		Rule: items.Avoid, Count: 3, Solution: snake,
		Start: snake[0], End: snake[len(snake)-1],
		Rows: 3, Cols: 3, Layout: layout,
	})
	require.NoError(t, err)
	cells := make([]grid.Coord, 0, len(got))
	for _, it := range got {
		cells = append(cells, it.Cell)
	}
	assert.ElementsMatch(t, []grid.Coord{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 0}}, cells)
}

func TestPlace_Deterministic(t *testing.T) {
	req := items.Request{
		Rule: items.Collect, Count: 2, Solution: snake,
		Start: snake[0], End: snake[len(snake)-1], Layout: layout,
	}
	a, err := items.Place(rand.New(rand.NewSource(77)), req)
	require.NoError(t, err)
	b, err := items.Place(rand.New(rand.NewSource(77)), req)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPlace_Errors(t *testing.T) {
	_, err := items.Place(nil, items.Request{Rule: "steal", Count: 1})
	assert.ErrorIs(t, err, items.ErrUnknownRule)

	_, err = items.Place(nil, items.Request{Rule: items.Collect, Count: -1})
	assert.ErrorIs(t, err, items.ErrOptionViolation)

	got, err := items.Place(nil, items.Request{Rule: items.Avoid, Count: 0, Rows: 2, Cols: 2})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseRule(t *testing.T) {
	r, err := items.ParseRule(" Collect ")
	require.NoError(t, err)
	assert.Equal(t, items.Collect, r)

	r, err = items.ParseRule("avoid")
	require.NoError(t, err)
	assert.Equal(t, items.Avoid, r)

	_, err = items.ParseRule("")
	assert.ErrorIs(t, err, items.ErrUnknownRule)
}

func TestItem_JSONShape(t *testing.T) {
	it := items.Item{
		Point:      render.Point{X: 50, Y: 60},
		Cell:       grid.Coord{Row: 1, Col: 1},
		Marker:     "🍎",
		OnSolution: true,
	}
	raw, err := json.Marshal(it)
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":50,"y":60,"emoji":"🍎","on_solution":true}`, string(raw))
}
