package trace

import "github.com/katalvlaran/labyrinth/render"

// Status is the outcome of adding one point to a Session.
type Status struct {
	OnPath    bool
	Completed bool
}

// Session tracks one attempt at tracing a maze.
type Session struct {
	validator Validator
	end       render.Point
	radius    float64

	points    []render.Point
	offPath   int
	completed bool
}

// NewSession starts a trace toward end (canvas coordinates).
// A non-positive radius uses DefaultEndRadius.
func NewSession(v Validator, end render.Point, radius float64) *Session {
	if radius <= 0 {
		radius = DefaultEndRadius
	}
	return &Session{validator: v, end: end, radius: radius}
}

// Add records p. Points arriving after completion are ignored.
func (s *Session) Add(p render.Point) Status {
	if s.completed {
		return Status{OnPath: true, Completed: true}
	}
	s.points = append(s.points, p)
	st := Status{OnPath: s.validator.OnPath(p)}
	if !st.OnPath {
		s.offPath++
	}
	if s.validator.NearEnd(p, s.end, s.radius) {
		s.completed = true
	}
	st.Completed = s.completed
	return st
}

// Points returns the recorded trace.
func (s *Session) Points() []render.Point { return s.points }

// OffPath returns how many recorded points missed the path.
func (s *Session) OffPath() int { return s.offPath }

// Completed reports whether the end was reached.
func (s *Session) Completed() bool { return s.completed }

// Reset clears the trace so the player can start over.
func (s *Session) Reset() {
	s.points = nil
	s.offPath = 0
	s.completed = false
}
