// Package render turns a carved grid.Grid into stroke geometry: line
// segments in canvas pixels, plus SVG path-data strings built from them.
//
// Two styles are supported:
//
//   - Walls:    every standing wall of every active cell becomes one segment,
//     emitted per cell in Top, Right, Bottom, Left order. Shared walls
//     appear twice (once per side); renderers draw them on top of each other.
//   - Corridor: a segment between the centres of two active cells whose
//     shared wall is removed, scanning Right and Bottom only so every
//     passage is drawn once, followed by a zero-length "dot" segment at the
//     centre of every active cell. Drawn with a wide round-capped stroke the
//     dots give corridor junctions their round look.
//
// The solution path is rendered as a centre-to-centre polyline.
//
// Geometry:
//
//	Layout{CellSize, OffsetX, OffsetY} places cell (r,c) with its top-left
//	corner at (OffsetX + c·cs, OffsetY + r·cs) and its centre at that corner
//	plus cs/2 (integer division). All coordinates are whole pixels.
//
// Path data:
//
//	PathData joins segments as "M x1 y1 L x2 y2" separated by single spaces;
//	PolylineData emits "M x0 y0 L x1 y1 L ...". Numbers print in their
//	shortest form, so whole pixels carry no decimal point.
//
// Complexity: O(R×C) for Walls/Corridors, O(len(path)) for the solution.
package render
