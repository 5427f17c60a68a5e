package render

import "math"

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// DistToSegment returns the distance from p to the closest point of s.
// A zero-length segment degrades to point distance.
func (p Point) DistToSegment(s Segment) float64 {
	dx, dy := s.End.X-s.Start.X, s.End.Y-s.Start.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return p.Dist(s.Start)
	}
	t := ((p.X-s.Start.X)*dx + (p.Y-s.Start.Y)*dy) / lenSq
	t = max(0, min(1, t))
	return p.Dist(Point{X: s.Start.X + t*dx, Y: s.Start.Y + t*dy})
}
