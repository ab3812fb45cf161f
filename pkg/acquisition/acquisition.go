// Package acquisition collects a control polygon point by point.
//
// It is input-device agnostic: the viewer translates mouse buttons into
// Add (left), Pop (middle) and Finish (right) calls.
package acquisition

import (
	"errors"

	"github.com/kpango/glg"

	"github.com/gucio321/bezierdraw/pkg/bezier"
)

var (
	ErrNotAcquiring = errors.New("acquisition already finished")
	ErrNoPoints     = errors.New("cannot finish acquisition without points")
)

// Session is a single polygon acquisition.
type Session struct {
	points bezier.Polygon
	done   bool
}

func NewSession() *Session {
	return &Session{}
}

// Add appends a point to the polygon.
func (s *Session) Add(p bezier.Point) error {
	if s.done {
		return ErrNotAcquiring
	}

	s.points = append(s.points, p)
	glg.Debugf("point %d acquired: %v", len(s.points), p)

	return nil
}

// Pop removes the last acquired point. It does nothing if there are no points.
func (s *Session) Pop() error {
	if s.done {
		return ErrNotAcquiring
	}

	if len(s.points) == 0 {
		return nil
	}

	s.points = s.points[:len(s.points)-1]

	return nil
}

// Finish stops the acquisition.
// At least one point is required, so the polygon has a valid degree.
func (s *Session) Finish() error {
	if s.done {
		return ErrNotAcquiring
	}

	if len(s.points) == 0 {
		return ErrNoPoints
	}

	s.done = true
	glg.Infof("acquisition finished with %d points (degree %d)", len(s.points), s.points.Degree())

	return nil
}

// Done reports whether Finish was called successfully.
func (s *Session) Done() bool {
	return s.done
}

// Len returns number of points acquired so far.
func (s *Session) Len() int {
	return len(s.points)
}

// Polygon returns a copy of the points acquired so far.
func (s *Session) Polygon() bezier.Polygon {
	result := make(bezier.Polygon, len(s.points))
	copy(result, s.points)

	return result
}
