package carve_test

import (
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/carve"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/shape"
)

// openWalls counts removed interior walls, each counted once.
func openWalls(g *grid.Grid) int {
	n := 0
	for i := 0; i < g.Size(); i++ {
		c := g.Coordinate(i)
		for _, d := range []grid.Direction{grid.Right, grid.Bottom} {
			if g.InBounds(c.Step(d)) && !g.HasWall(c, d) {
				n++
			}
		}
	}
	return n
}

func TestCarve_FullGridIsSpanningTree(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		res, err := carve.Carve(5, 7, grid.Coord{}, carve.WithSeed(seed))
		require.NoError(t, err)
		require.NoError(t, carve.VerifySpanningTree(res.Grid, nil), "seed %d", seed)
		assert.Equal(t, 35-1, openWalls(res.Grid), "seed %d: a tree has n-1 edges", seed)
		assert.Equal(t, 1, res.Attempts)
		assert.True(t, res.QualityMet)
		assert.Nil(t, res.Solution, "no end configured")
		for i := 0; i < res.Grid.Size(); i++ {
			assert.True(t, res.Grid.Visited(res.Grid.Coordinate(i)))
		}
	}
}

func TestCarve_Deterministic(t *testing.T) {
	a, err := carve.Carve(9, 12, grid.Coord{}, carve.WithSeed(42), carve.WithEnd(grid.Coord{Row: 8, Col: 11}))
	require.NoError(t, err)
	b, err := carve.Carve(9, 12, grid.Coord{}, carve.WithRand(rand.New(rand.NewSource(42))),
		carve.WithEnd(grid.Coord{Row: 8, Col: 11}))
	require.NoError(t, err)
	assert.Equal(t, a.Grid.String(), b.Grid.String())
	assert.Equal(t, a.Solution, b.Solution)
}

func TestCarve_QualityGate(t *testing.T) {
	end := grid.Coord{Row: 8, Col: 11}
	for seed := int64(1); seed <= 40; seed++ {
		res, err := carve.Carve(9, 12, grid.Coord{},
			carve.WithSeed(seed), carve.WithEnd(end), carve.WithMinRatio(0.5))
		require.NoError(t, err)
		require.LessOrEqual(t, res.Attempts, carve.DefaultMaxAttempts)
		require.NotEmpty(t, res.Solution)
		assert.Equal(t, grid.Coord{}, res.Solution[0])
		assert.Equal(t, end, res.Solution[len(res.Solution)-1])
		assert.InDelta(t, float64(len(res.Solution))/108, res.Ratio, 1e-12)
		if res.QualityMet {
			assert.GreaterOrEqual(t, res.Ratio, 0.5, "seed %d", seed)
		} else {
			assert.Equal(t, carve.DefaultMaxAttempts, res.Attempts, "seed %d", seed)
		}
	}
}

func TestCarve_ShortfallIsLogged(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	// start == end: ratio is 1/9 on every attempt.
	res, err := carve.Carve(3, 3, grid.Coord{},
		carve.WithSeed(7),
		carve.WithEnd(grid.Coord{}),
		carve.WithMinRatio(1),
		carve.WithMaxAttempts(3),
		carve.WithLogger(logger))
	require.NoError(t, err)
	assert.False(t, res.QualityMet)
	assert.Equal(t, 3, res.Attempts)
	assert.Equal(t, []grid.Coord{{}}, res.Solution)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, 3, entry.Data["attempts"])
}

func TestCarve_MaskedRegion(t *testing.T) {
	m := shape.TriangleMask(9, 12)
	start := m.Coords()[0]
	coords := m.Coords()
	end := coords[len(coords)-1]

	res, err := carve.Carve(9, 12, start, carve.WithSeed(3), carve.WithMask(m), carve.WithEnd(end))
	require.NoError(t, err)
	require.NoError(t, carve.VerifySpanningTree(res.Grid, m))
	assert.Equal(t, m.Size(), res.Active)
	assert.Equal(t, m.Size()-1, openWalls(res.Grid))

	for i := 0; i < res.Grid.Size(); i++ {
		c := res.Grid.Coordinate(i)
		if m.Has(c) {
			continue
		}
		for _, d := range grid.Directions {
			assert.True(t, res.Grid.HasWall(c, d), "inactive %v lost wall %v", c, d)
		}
	}
	for _, c := range res.Solution {
		assert.True(t, m.Has(c), "solution crosses inactive %v", c)
	}
}

func TestCarve_InactiveStartIsUnreachable(t *testing.T) {
	m := shape.TriangleMask(6, 6)
	require.False(t, m.Has(grid.Coord{}))

	res, err := carve.Carve(6, 6, grid.Coord{},
		carve.WithMask(m), carve.WithEnd(grid.Coord{Row: 5, Col: 5}))
	require.NoError(t, err)
	assert.Empty(t, res.Solution)
	assert.NoError(t, carve.VerifySpanningTree(res.Grid, m))
}

func TestCarve_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows int
		cols int
		opts []carve.Option
		want error
	}{
		{"ZeroRows", 0, 4, nil, grid.ErrBadDimensions},
		{"MaskMismatch", 4, 4, []carve.Option{carve.WithMask(shape.Full(3, 4))}, carve.ErrMaskMismatch},
		{"EmptyMask", 3, 3, []carve.Option{carve.WithMask(shape.NewMask(3, 3))}, shape.ErrEmptyMask},
		{"EndOutOfBounds", 3, 3, []carve.Option{carve.WithEnd(grid.Coord{Row: 3, Col: 0})}, grid.ErrOutOfBounds},
		{"RatioAboveOne", 3, 3, []carve.Option{carve.WithMinRatio(1.5)}, carve.ErrOptionViolation},
		{"RatioNegative", 3, 3, []carve.Option{carve.WithMinRatio(-0.1)}, carve.ErrOptionViolation},
		{"ZeroAttempts", 3, 3, []carve.Option{carve.WithMaxAttempts(0)}, carve.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := carve.Carve(tc.rows, tc.cols, grid.Coord{}, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, res)
		})
	}

	_, err := carve.Carve(3, 3, grid.Coord{Row: -1})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	assert.Panics(t, func() { carve.WithRand(nil) })
}

func TestVerifySpanningTree_Failures(t *testing.T) {
	t.Run("Disconnected", func(t *testing.T) {
		g, _ := grid.New(2, 2)
		assert.ErrorIs(t, carve.VerifySpanningTree(g, nil), carve.ErrDisconnected)
	})

	t.Run("Cycle", func(t *testing.T) {
		g, _ := grid.New(2, 2)
		require.NoError(t, g.RemoveWall(grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 0, Col: 1}))
		require.NoError(t, g.RemoveWall(grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 1, Col: 0}))
		require.NoError(t, g.RemoveWall(grid.Coord{Row: 0, Col: 1}, grid.Coord{Row: 1, Col: 1}))
		require.NoError(t, g.RemoveWall(grid.Coord{Row: 1, Col: 0}, grid.Coord{Row: 1, Col: 1}))
		assert.ErrorIs(t, carve.VerifySpanningTree(g, nil), carve.ErrCycle)
	})

	t.Run("Leak", func(t *testing.T) {
		g, _ := grid.New(2, 2)
		m := shape.NewMask(2, 2)
		m.Add(grid.Coord{Row: 0, Col: 0})
		m.Add(grid.Coord{Row: 0, Col: 1})
		require.NoError(t, g.RemoveWall(grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 0, Col: 1}))
		require.NoError(t, g.RemoveWall(grid.Coord{Row: 0, Col: 1}, grid.Coord{Row: 1, Col: 1}))
		assert.ErrorIs(t, carve.VerifySpanningTree(g, m), carve.ErrLeak)
	})

	t.Run("MaskMismatch", func(t *testing.T) {
		g, _ := grid.New(2, 2)
		assert.ErrorIs(t, carve.VerifySpanningTree(g, shape.Full(3, 3)), carve.ErrMaskMismatch)
	})
}
