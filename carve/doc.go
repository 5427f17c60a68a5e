// Package carve builds perfect mazes: it carves a uniform-choice randomized
// depth-first spanning tree through the active cells of a grid and, on
// request, keeps re-carving until the solution is long enough.
//
// What:
//
//   - Carve(rows, cols, start, opts...) returns a freshly carved grid.Grid,
//     the start→end solution (when an end is configured) and quality stats.
//   - Carving runs on an explicit stack seeded at start: pick a uniformly
//     random unvisited active neighbour of the top cell, remove the wall,
//     push it; otherwise pop. Every active cell is visited exactly once, so
//     the open walls form a spanning tree over the active region.
//   - Quality gate: with WithEnd and WithMinRatio(r>0), an attempt is
//     accepted once len(solution)/active ≥ r. After MaxAttempts (default 20)
//     the last attempt is returned with QualityMet=false and a warning is
//     logged. This is accepted degradation, not failure.
//   - VerifySpanningTree checks the tree property with a union-find.
//
// Determinism:
//
//	All randomness flows through the caller's *rand.Rand (WithRand/WithSeed).
//	No package-level RNG is used. A fresh Grid is built for every attempt,
//	so no visited flag leaks from one attempt into the next.
//
// Complexity:
//
//   - One attempt: O(R×C) time and memory.
//   - Carve:       O(MaxAttempts × R×C) worst case.
//
// Options:
//
//   - WithRand(r) / WithSeed(s): randomness source.
//   - WithMask(m):               restrict carving to active cells.
//   - WithEnd(c):                solve start→c after every attempt.
//   - WithMinRatio(r):           minimum solution ratio in [0,1].
//   - WithMaxAttempts(n):        retry budget (n ≥ 1).
//   - WithLogger(l):             logrus logger for shortfall warnings.
//
// Errors:
//
//   - grid.ErrBadDimensions, grid.ErrOutOfBounds for bad sizes or endpoints.
//   - ErrMaskMismatch:    mask built for different dimensions.
//   - shape.ErrEmptyMask: mask with no active cell.
//   - ErrOptionViolation: invalid option value.
//   - ErrCycle, ErrLeak, ErrDisconnected from VerifySpanningTree.
package carve
