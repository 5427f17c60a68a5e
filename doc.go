// Package labyrinth is a procedural maze generator for finger-tracing games:
// a few parameters in, a guaranteed-solvable maze description out.
//
// 🚀 What is labyrinth?
//
//	A deterministic, allocation-light toolkit that brings together:
//		• Grid model: cells with wall flags, consistent wall removal
//		• Shape masks: triangle, tree, mountain, diamond and circle silhouettes
//		• Carving: randomized DFS spanning trees with a solution-length gate
//		• Solving: BFS with parent reconstruction
//		• Rendering: wall or corridor strokes, solution polyline, SVG path data
//		• Items: collectibles on the solution, hazards off it
//		• Organic paths: wall-free curves for the youngest players
//		• Tracing: hit-testing a finger trace against the solution
//		• Auditing: flagging playable-but-poor mazes
//
// ✨ Why labyrinth?
//
//   - Reproducible – every random choice flows from one caller-owned *rand.Rand
//   - Always solvable – perfect mazes, the solution is computed, not guessed
//   - Renderer-agnostic – plain segments in canvas pixels, SVG strings on top
//   - Quiet by default – logrus logging only when a logger is supplied
//
// Packages:
//
//	grid/    - Coord, Direction, Cell, Grid
//	shape/   - Mask and the silhouette functions
//	carve/   - Carve, quality gate, VerifySpanningTree
//	solve/   - BFS, Path
//	render/  - Layout, Walls, Corridors, solution geometry, path data
//	items/   - Place (collect / avoid)
//	maze/    - Params, Generate, Organic, Result
//	organic/ - curved path generator
//	trace/   - Validator, Session, Fit
//	audit/   - Check, Summary
//	cmd/labyrinth - batch generator writing JSON, SVG previews and a manifest
//
// Quick example:
//
//	r, err := maze.Generate(maze.DefaultParams(), maze.WithSeed(42))
//	if err != nil { ... }
//	fmt.Println(r.MazeType, r.SVGPath)
//
// A 2×2 perfect maze, as grid.Grid.String draws it:
//
//	+---+---+
//	|       |
//	+---+   +
//	|       |
//	+---+---+
//
//	go install github.com/katalvlaran/labyrinth/cmd/labyrinth@latest
package labyrinth
