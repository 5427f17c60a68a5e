package maze_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/labyrinth/maze"
)

// BenchmarkGenerate_HardTree measures a full hard shaped maze with items.
func BenchmarkGenerate_HardTree(b *testing.B) {
	p := maze.DefaultParams()
	p.Difficulty, p.Age, p.Shape = "hard", 7, "tree"
	p.ItemRule, p.ItemCount, p.ItemMarker = "collect", 5, "*"
	rng := rand.New(rand.NewSource(1))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = maze.Generate(p, maze.WithRand(rng))
	}
}
