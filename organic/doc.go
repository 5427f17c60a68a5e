// Package organic generates a single gently winding path for the youngest
// players: no walls, no dead ends, just a wide curve to trace.
//
// The path starts at the bottom-left margin and ends at the top-right margin.
// Turns intermediate control points are spread evenly along that diagonal
// and jittered by a uniform offset of up to ±80px horizontally and ±40px
// vertically. The SVG path data runs a quadratic Bézier through every
// control point, landing on the midpoint of the next leg, and closes with
// a straight line to the end:
//
//	M p0 Q p1 mid(p1,p2) Q p2 mid(p2,p3) ... L pN
//
// Hit-test segments join consecutive control points. Path numbers print
// with one decimal; exported points are rounded to 0.1px.
package organic
