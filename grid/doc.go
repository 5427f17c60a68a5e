// Package grid models a rectangular maze board as a 2D array of cells,
// each owning four wall flags and a visited flag.
//
// What:
//
//   - Grid is created once with fixed rows×cols and never resized.
//   - Every cell starts with all four walls standing (Top, Right, Bottom, Left).
//   - RemoveWall(a, b) clears the wall pair between two 4-adjacent cells in a
//     single call, so the two flags can never disagree.
//   - Neighbors(c) lists unvisited in-bounds neighbours (used while carving).
//   - Passages(c) lists neighbours reachable through removed walls (used once
//     carving is done).
//
// Why:
//
//   - Carvers need a cheap "visited" frontier query.
//   - Solvers and renderers need wall-driven adjacency only.
//
// Complexity:
//
//   - New:        O(R×C) time and memory.
//   - Neighbors:  O(1).
//   - RemoveWall: O(1).
//   - Passages:   O(1).
//
// Errors:
//
//   - ErrBadDimensions:    rows or cols is not positive.
//   - ErrOutOfBounds:      a coordinate lies outside the grid.
//   - ErrInvalidAdjacency: RemoveWall called on cells that are not 4-adjacent.
package grid
