// Package items places marker items (collectibles or hazards) on the cells
// of a solved maze.
//
// Rules:
//
//   - collect: candidates are the solution cells except the start and end,
//     so a player tracing the solution picks every item up.
//   - avoid:   candidates are the active cells that are not on the solution,
//     listed row-major before shuffling, so the solution never crosses one.
//
// The candidates are shuffled with the caller's RNG and the first
// min(Count, len(candidates)) are kept. Under-fill is silent: asking for four
// hazards when only two cells qualify yields two items.
//
// Complexity: O(R×C) for avoid, O(len(solution)) for collect.
package items
