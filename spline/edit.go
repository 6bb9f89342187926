package spline

import (
	"fmt"
	"math"

	"github.com/npillmayer/bezedit"
)

// MoveKnot drags knot k to loc.
//
// The new x-position is kept at least the knot buffer away from the
// neighbouring knots. The first and last knot are additionally kept inside
// the viewport's x-range, if a viewport is attached. The knot's own handles
// are translated along with it, which preserves the tangent on both sides.
// If the knot comes too close to the far handle of a neighbouring span, that
// handle is pushed ahead of it; a locked far handle stops the knot instead.
//
// Moving a locked knot is a no-op. Locked handles are not moved by the
// cascade either.
func (s *Spline) MoveKnot(k int, loc bezedit.Point) error {
	if err := s.checkEdit(k, Knot); err != nil {
		return err
	}
	if s.pts[k].locked {
		tracer().Debugf("knot #%d is locked, ignoring move", k)
		return nil
	}
	loc = loc.WithX(s.clampKnotX(k, loc.X()))
	old := s.pts[k].value
	if loc == old {
		return nil
	}
	v := loc.Sub(old)
	tracer().Debugf("moving knot #%d from %s to %s", k, old, loc)
	s.setValue(k, loc)
	touched := []int{k}
	if !s.IsFirstKnot(k) {
		if lead := k - 2; loc.X() < s.pts[lead].value.X()+s.buffer {
			tracer().Debugf("knot #%d pushes handle #%d", k, lead)
			touched = append(touched, s.placeControl(lead, s.pts[lead].value.WithX(loc.X()-s.buffer))...)
		}
	}
	if !s.IsLastKnot(k) {
		if trail := k + 2; loc.X() > s.pts[trail].value.X()-s.buffer {
			tracer().Debugf("knot #%d pushes handle #%d", k, trail)
			touched = append(touched, s.placeControl(trail, s.pts[trail].value.WithX(loc.X()+s.buffer))...)
		}
	}
	for _, h := range []int{k - 1, k + 1} {
		if h < 0 || h >= len(s.pts) || s.pts[h].locked {
			continue
		}
		p := s.pts[h].value.Add(v)
		p = p.WithX(s.clampControlX(h, p.X()))
		s.setValue(h, p)
		touched = append(touched, h)
	}
	s.rebuild(touched...)
	return nil
}

// MoveControlPoint drags handle i to loc.
//
// The x-position is clamped to the handle's bounding knots. If the knot on
// the handle's inner side is continuous, the opposite handle is rotated
// around that knot to stay collinear, keeping its distance from the knot.
// The rotated handle is x-clamped as well, which may bend the tangent when
// it would otherwise cross its far knot.
//
// Moving a locked handle is a no-op, and a locked opposite handle is left
// alone.
func (s *Spline) MoveControlPoint(i int, loc bezedit.Point) error {
	if err := s.checkEdit(i, LeadControl, TrailControl); err != nil {
		return err
	}
	if s.pts[i].locked {
		tracer().Debugf("handle #%d is locked, ignoring move", i)
		return nil
	}
	s.rebuild(s.placeControl(i, loc)...)
	return nil
}

// placeControl moves handle i to loc, subject to x-clamping and continuity.
// It returns the positions of all points changed.
func (s *Spline) placeControl(i int, loc bezedit.Point) []int {
	if s.pts[i].locked {
		return nil
	}
	loc = loc.WithX(s.clampControlX(i, loc.X()))
	if loc == s.pts[i].value {
		return nil
	}
	tracer().Debugf("moving handle #%d from %s to %s", i, s.pts[i].value, loc)
	s.setValue(i, loc)
	touched := []int{i}
	opp, knot, ok := s.opposite(i)
	if !ok || !s.pts[knot].continuous || s.pts[opp].locked {
		return touched
	}
	kv := s.pts[knot].value
	if loc.Equal(kv) {
		// no direction to mirror
		return touched
	}
	rho := bezedit.Distance(s.pts[opp].value, kv)
	theta := bezedit.Angle(loc, kv)
	mirrored := kv.Add(bezedit.Polar(rho, theta))
	mirrored = mirrored.WithX(s.clampControlX(opp, mirrored.X()))
	tracer().Debugf("handle #%d mirrors to %s", opp, mirrored)
	s.setValue(opp, mirrored)
	return append(touched, opp)
}

// clampControlX keeps x between the bounding knots of handle i.
func (s *Spline) clampControlX(i int, x float64) float64 {
	lo, hi := math.Inf(-1), math.Inf(1)
	if k := s.PrevKnot(i); k >= 0 {
		lo = s.pts[k].value.X()
	}
	if k := s.NextKnot(i); k >= 0 {
		hi = s.pts[k].value.X()
	}
	return bezedit.Clamp(x, lo, hi)
}

// clampKnotX keeps x at least one buffer away from the neighbouring knots
// and from locked far handles, which cannot be pushed. End knots stay
// inside the viewport.
func (s *Spline) clampKnotX(k int, x float64) float64 {
	lo, hi := math.Inf(-1), math.Inf(1)
	if s.vp != nil {
		if s.IsFirstKnot(k) {
			lo = s.vp.min.X() + s.buffer
		}
		if s.IsLastKnot(k) {
			hi = s.vp.max.X() - s.buffer
		}
	}
	if p := s.PrevKnot(k); p >= 0 {
		lo = s.pts[p].value.X() + s.buffer
	}
	if n := s.NextKnot(k); n >= 0 {
		hi = s.pts[n].value.X() - s.buffer
	}
	if lead := k - 2; !s.IsFirstKnot(k) && s.pts[lead].locked {
		lo = math.Max(lo, s.pts[lead].value.X()+s.buffer)
	}
	if trail := k + 2; !s.IsLastKnot(k) && s.pts[trail].locked {
		hi = math.Min(hi, s.pts[trail].value.X()-s.buffer)
	}
	return bezedit.Clamp(x, lo, hi)
}

// setValue writes a value and keeps the pixel cache in sync.
func (s *Spline) setValue(i int, v bezedit.Point) {
	s.pts[i].value = v
	if s.vp != nil {
		s.pts[i].px = s.vp.ToPixel(v)
	}
}

// checkEdit validates an interactive edit of point i.
func (s *Spline) checkEdit(i int, kinds ...Kind) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	if !hasKind(s.pts[i], kinds) {
		if kinds[0] == Knot {
			return fmt.Errorf("%w: #%d is a %s", ErrNotAKnot, i, s.pts[i].kind)
		}
		return fmt.Errorf("%w: #%d is a knot", ErrNotAControlPoint, i)
	}
	if s.spans == nil {
		return ErrIncomplete
	}
	return nil
}

// SetContinuous switches tangent continuity for knot k. Handles are not
// moved; continuity is enforced on the next handle edit.
func (s *Spline) SetContinuous(k int, on bool) error {
	if err := s.checkIndex(k); err != nil {
		return err
	}
	if s.pts[k].kind != Knot {
		return fmt.Errorf("%w: #%d is a %s", ErrNotAKnot, k, s.pts[k].kind)
	}
	s.pts[k].continuous = on
	return nil
}

// SetLocked locks or unlocks control point i against interactive edits.
func (s *Spline) SetLocked(i int, on bool) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.pts[i].locked = on
	return nil
}

// DragTo is the pixel-space edit: it converts px to a value through the
// viewport and moves point i there. Locked points are ignored.
func (s *Spline) DragTo(i int, px bezedit.Point) error {
	if s.vp == nil {
		return ErrNoViewport
	}
	if err := s.checkIndex(i); err != nil {
		return err
	}
	if s.pts[i].locked {
		tracer().Debugf("point #%d is locked, ignoring drag", i)
		return nil
	}
	v := s.vp.ToValue(px)
	if s.pts[i].kind == Knot {
		return s.MoveKnot(i, v)
	}
	return s.MoveControlPoint(i, v)
}
