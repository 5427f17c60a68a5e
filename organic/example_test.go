package organic_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/labyrinth/organic"
)

// ExampleGenerate shows the fixed anchors of a default organic path.
func ExampleGenerate() {
	p, err := organic.Generate(rand.New(rand.NewSource(1)), organic.Options{Turns: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.Start, p.End)
	fmt.Println(len(p.ControlPoints), len(p.Segments), p.PathWidth)
	// Output:
	// {60 440} {540 60}
	// 4 3 35
}
