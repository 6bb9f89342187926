package spline

import (
	"fmt"

	"github.com/npillmayer/bezedit"
)

// Kind is the role of a control point within a spline.
type Kind int8

// Kinds of control points. Points not (yet) owned by a spline are Unassigned.
const (
	Unassigned Kind = iota
	Knot
	LeadControl
	TrailControl
)

func (k Kind) String() string {
	switch k {
	case Knot:
		return "knot"
	case LeadControl:
		return "lead"
	case TrailControl:
		return "trail"
	}
	return "unassigned"
}

// kindAt derives the kind of the control point at sequence position i.
func kindAt(i int) Kind {
	switch i % 3 {
	case 0:
		return Knot
	case 1:
		return LeadControl
	default:
		return TrailControl
	}
}

// ControlPoint is one node of a spline's control point sequence.
//
// Value is the authoritative model-space coordinate. Pixel is derived from it
// through the spline's viewport, if one is attached.
type ControlPoint struct {
	kind       Kind
	value      bezedit.Point
	px         bezedit.Point
	continuous bool // knots only: keep adjacent handles collinear
	locked     bool // reject interactive edits
}

// Kind returns the role of the control point.
func (cp ControlPoint) Kind() Kind {
	return cp.kind
}

// Value returns the model-space coordinate.
func (cp ControlPoint) Value() bezedit.Point {
	return cp.value
}

// Pixel returns the cached display-space coordinate. It is (0,0) as long as
// the owning spline has no viewport.
func (cp ControlPoint) Pixel() bezedit.Point {
	return cp.px
}

// IsContinuous is true for knots which enforce tangent continuity.
func (cp ControlPoint) IsContinuous() bool {
	return cp.kind == Knot && cp.continuous
}

// IsLocked is true if interactive edits of this point are rejected.
func (cp ControlPoint) IsLocked() bool {
	return cp.locked
}

// IsKnot is a predicate.
func (cp ControlPoint) IsKnot() bool {
	return cp.kind == Knot
}

// IsControl is true for lead and trail handles.
func (cp ControlPoint) IsControl() bool {
	return cp.kind == LeadControl || cp.kind == TrailControl
}

func (cp ControlPoint) String() string {
	s := fmt.Sprintf("%s%s", cp.kind, cp.value)
	if cp.IsContinuous() {
		s += "~"
	}
	if cp.locked {
		s += "!"
	}
	return s
}

// --- Navigation ------------------------------------------------------------

// nextOfKind scans forward from position i for the nearest point of one of
// the given kinds. Returns -1 if there is none.
func (s *Spline) nextOfKind(i int, kinds ...Kind) int {
	for j := i + 1; j < len(s.pts); j++ {
		if hasKind(s.pts[j], kinds) {
			return j
		}
	}
	return -1
}

// prevOfKind scans backward from position i for the nearest point of one of
// the given kinds. Returns -1 if there is none.
func (s *Spline) prevOfKind(i int, kinds ...Kind) int {
	for j := i - 1; j >= 0; j-- {
		if hasKind(s.pts[j], kinds) {
			return j
		}
	}
	return -1
}

func hasKind(cp ControlPoint, kinds []Kind) bool {
	for _, k := range kinds {
		if cp.kind == k {
			return true
		}
	}
	return false
}

// NextKnot returns the position of the nearest knot after i, or -1.
func (s *Spline) NextKnot(i int) int {
	return s.nextOfKind(i, Knot)
}

// PrevKnot returns the position of the nearest knot before i, or -1.
func (s *Spline) PrevKnot(i int) int {
	return s.prevOfKind(i, Knot)
}

// NextControl returns the position of the nearest handle after i, or -1.
func (s *Spline) NextControl(i int) int {
	return s.nextOfKind(i, LeadControl, TrailControl)
}

// PrevControl returns the position of the nearest handle before i, or -1.
func (s *Spline) PrevControl(i int) int {
	return s.prevOfKind(i, LeadControl, TrailControl)
}

// IsFirstKnot is true if position i is the knot starting the spline.
func (s *Spline) IsFirstKnot(i int) bool {
	return s.pts[i].kind == Knot && s.PrevKnot(i) < 0
}

// IsLastKnot is true if position i is the knot ending the spline.
func (s *Spline) IsLastKnot(i int) bool {
	return s.pts[i].kind == Knot && s.NextKnot(i) < 0
}

// opposite finds, for the handle at position i, the knot on its inner side
// and the handle on the other side of that knot. ok is false for the very
// first and last handle of a spline, which have no opposite.
func (s *Spline) opposite(i int) (opp int, knot int, ok bool) {
	switch s.pts[i].kind {
	case TrailControl:
		knot = s.NextKnot(i)
		if knot < 0 {
			return -1, -1, false
		}
		opp = s.nextOfKind(knot, LeadControl)
	case LeadControl:
		knot = s.PrevKnot(i)
		if knot < 0 {
			return -1, -1, false
		}
		opp = s.prevOfKind(knot, TrailControl)
	default:
		return -1, -1, false
	}
	// the neighbour must be adjacent to the knot, not a handle of a farther span
	if opp < 0 || (opp != knot+1 && opp != knot-1) {
		return -1, knot, false
	}
	return opp, knot, true
}
