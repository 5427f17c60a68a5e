// Package maze composes the lower-level packages into one call that turns a
// handful of parameters into a complete, solvable maze description.
//
// Generate resolves Params, then:
//
//  1. picks the grid size from the difficulty/age policy (or explicit Rows/Cols);
//  2. computes the canvas layout (cell size and centring offsets);
//  3. builds the shape mask (shape.Build; rect means no mask);
//  4. chooses start and end cells (farthest corners, or named positions);
//  5. carves with the difficulty's minimum solution ratio (carve.Carve);
//  6. renders strokes, the solution polyline and hit-test segments (render);
//  7. optionally places items (items.Place);
//  8. draws the Result ID from the same RNG.
//
// Policy:
//
//	difficulty  grid   min ratio
//	easy        5×7    0.3   (4×5 when age ≤ 4)
//	medium      7×9    0.4
//	hard        9×12   0.5
//
//	cell size  = max(min((W-40)/cols, (H-40)/rows), 20)
//	offset     = ((W - cols·cs)/2, (H - rows·cs)/2)
//	path width = 35 when age ≤ 4, else 25
//
// Endpoints for shaped mazes use the farthest Manhattan pair among the first
// and last active cells (row-major) and the active cells sitting on corners
// of the active bounding box. This is a cheap approximation of the true
// farthest pair and is kept as such.
//
// Determinism: the caller's RNG is consumed in a fixed order (start choice,
// end choice, carving, item shuffle, ID), so equal Params and equal seeds
// yield equal Results, ID included.
//
// Errors:
//
//	Every rejected parameter surfaces as ErrConfiguration wrapping the precise
//	cause (grid.ErrBadDimensions, shape.ErrUnknownShape, render.ErrUnknownStyle,
//	items.ErrUnknownRule, ErrUnknownDifficulty, ErrUnknownPosition, ...).
//	An unreachable end is not an error unless WithStrict is set, in which case
//	Generate returns ErrUnreachableEndpoint. A missed quality target is never
//	an error: Result.QualityMet reports it.
package maze
