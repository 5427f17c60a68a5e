// Package audit flags generated mazes that are technically valid but poor
// to play: solutions that are too short, endpoints too close together, a
// start hidden under the status bar, too few collectibles, corridor mazes
// with hardly any branches, or items clipped by the canvas edge.
//
// Check never fails; it returns the list of issues found (possibly empty).
// Summary folds many checks into counts per kind and per difficulty.
package audit
