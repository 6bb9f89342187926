package spline

import (
	"github.com/npillmayer/bezedit"
	"github.com/npillmayer/bezedit/hobby"
)

// NewSmooth creates a spline through knots, placing the handles with Hobby's
// algorithm at standard tension. Handles are clamped in x to their bounding
// knots; for knots with increasing x the result is a smooth function of x.
func NewSmooth(knots []bezedit.Point) (*Spline, error) {
	handles, err := hobby.FindControls(knots, 1.0)
	if err != nil {
		return nil, err
	}
	values := make([]bezedit.Point, 0, 3*len(handles)+1)
	for k, h := range handles {
		values = append(values, knots[k],
			clampBetween(h.Post, knots[k], knots[k+1]),
			clampBetween(h.Pre, knots[k], knots[k+1]))
	}
	values = append(values, knots[len(knots)-1])
	return New(values)
}

// Smooth replaces the handles of a complete spline by Hobby's choice for the
// current knots. Tension is clamped to [3/4, 4]. Locked handles keep their
// position.
func (s *Spline) Smooth(tension float64) error {
	if s.spans == nil {
		return ErrIncomplete
	}
	knots := s.Knots()
	handles, err := hobby.FindControls(knots, tension)
	if err != nil {
		return err
	}
	for k, h := range handles {
		if i := 3*k + 1; !s.pts[i].locked {
			s.setValue(i, clampBetween(h.Post, knots[k], knots[k+1]))
		}
		if i := 3*k + 2; !s.pts[i].locked {
			s.setValue(i, clampBetween(h.Pre, knots[k], knots[k+1]))
		}
	}
	tracer().Debugf("smoothed %d spans with tension %g", len(handles), tension)
	s.buildSpans()
	return nil
}

// clampBetween clamps the x-coordinate of handle h to the x-range of its
// segment a–b.
func clampBetween(h, a, b bezedit.Point) bezedit.Point {
	lo, hi := a.X(), b.X()
	if lo > hi {
		lo, hi = hi, lo
	}
	return h.WithX(bezedit.Clamp(h.X(), lo, hi))
}
