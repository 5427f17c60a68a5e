// Package shape builds active-cell masks that carve a silhouette out of a
// rectangular maze grid.
//
// What:
//
//   - Mask is a set of in-bounds grid.Coord values; only active cells take
//     part in carving, solving and rendering.
//   - Triangle, Tree, Mountain, Diamond and Circle approximate their
//     silhouettes with per-row scanline widths (or a discrete disk).
//   - Rect is the absence of a mask: every cell is active.
//
// Determinism:
//
//	Every shape function is pure: the same (rows, cols) always yields an
//	equal Mask. Coords() returns cells in row-major order.
//
// Complexity:
//
//   - Shape functions: O(R×C) time, O(active) memory.
//   - Components:      O(active) time and memory.
//
// Errors:
//
//   - ErrUnknownShape:  Build/ParseKind received an unsupported name.
//   - ErrEmptyMask:     the requested shape has no active cell.
//   - ErrDisconnected:  reserved for callers that require a connected mask.
//
// Very small grids (1×1, 2×2) are the caller's responsibility; a mask may be
// valid yet useless for start/end selection there.
package shape
