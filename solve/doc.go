// Package solve finds shortest cell paths through a carved maze with
// breadth-first search over wall-flag adjacency.
//
// What
//
//   - BFS(g, start) explores every cell reachable from start through removed
//     walls and returns visit order, hop depth and parent links.
//   - Result.PathTo(dest) rebuilds the start→dest path from parent links.
//   - Path(g, start, end) is the solver entry point: BFS with an early stop at
//     end, returning the path or an empty slice when end is unreachable.
//
// Determinism
//
//	Neighbours are enqueued in grid.Passages order (Top, Bottom, Left,
//	Right). Ties among equal-length paths are therefore broken by enqueue
//	order and never by chance; on a spanning tree the path is unique anyway.
//
// Complexity (V = cells, E = open walls)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGridNil      if the grid pointer is nil.
//   - ErrOutOfBounds  if start (or end) lies outside the grid.
//
// An unreachable end is not an error: Path returns an empty slice and callers
// that need a solution must check its length.
package solve
