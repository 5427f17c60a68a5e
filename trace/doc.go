// Package trace hit-tests a player's finger trace against a generated maze.
//
// A Validator holds the solution segments in canvas coordinates together
// with the view transform (uniform scale plus letterbox offset) that maps
// canvas pixels onto the screen. Touch points arrive in screen coordinates.
//
//	screen = canvas·Scale + Offset
//
// A point is on the path when its distance to the nearest transformed
// segment is at most Tolerance. The trace is complete once a point lands
// within Radius (default 30) of the transformed end point.
//
// Session accumulates a trace and tracks whether the player has left the
// path and whether the end was reached. Sessions are not safe for
// concurrent use.
package trace
