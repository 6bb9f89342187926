package hobby

import (
	"errors"
	"fmt"

	"github.com/npillmayer/bezedit"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hobby'
func tracer() tracing.Trace {
	return tracing.Select("hobby")
}

var (
	// ErrTooFewKnots indicates the knot count is insufficient for solving.
	ErrTooFewKnots = errors.New("path has too few knots")
	// ErrInvalidKnot indicates a knot coordinate contains NaN/Inf.
	ErrInvalidKnot = errors.New("path has invalid knot coordinate")
	// ErrDegenerateSegment indicates two consecutive knots collapse to one point.
	ErrDegenerateSegment = errors.New("path has degenerate segment")
)

// Handles are the two control points of the segment between two
// consecutive knots: Post leaves the first knot, Pre enters the second one.
type Handles struct {
	Post bezedit.Point
	Pre  bezedit.Point
}

// path is a solver view onto a sequence of knots.
type path struct {
	z       []bezedit.Point
	tension float64 // 1/tension, used throughout the equations
}

func (p *path) n() int {
	return len(p.z)
}

func (p *path) last() int {
	return len(p.z) - 1
}

func (p *path) delta(i int) bezedit.Point {
	return p.z[i+1] - p.z[i]
}

func (p *path) d(i int) float64 {
	return p.delta(i).Abs()
}

// Turning angle at z.i. Zero at both ends of an open path.
func (p *path) psi(i int) float64 {
	if i <= 0 || i >= p.last() {
		return 0
	}
	return reduceAngle(p.delta(i).Angle() - p.delta(i-1).Angle())
}

// Validate checks if a sequence of knots is solvable by Hobby interpolation.
func Validate(knots []bezedit.Point) error {
	if len(knots) < 2 {
		return fmt.Errorf("%w: open path needs at least 2 knots, got %d", ErrTooFewKnots, len(knots))
	}
	for i, z := range knots {
		if !z.IsFinite() {
			return fmt.Errorf("%w at knot %d", ErrInvalidKnot, i)
		}
	}
	for i := 0; i < len(knots)-1; i++ {
		if (knots[i+1] - knots[i]).Abs() <= _epsilon {
			return fmt.Errorf("%w between knots %d and %d", ErrDegenerateSegment, i, i+1)
		}
	}
	return nil
}

// FindControls finds Hobby-spline control points for an open path through
// knots. Tension is applied to every join; it is adapted to lie between 3/4
// and 4, 1.0 being MetaFont's default.
//
// The result holds len(knots)-1 entries, one per segment.
func FindControls(knots []bezedit.Point, tension float64) ([]Handles, error) {
	if err := Validate(knots); err != nil {
		tracer().Errorf("cannot find controls: %v", err)
		return nil, err
	}
	p := &path{z: knots, tension: recip(clampTension(tension))}
	theta := solveOpenPath(p)
	handles := setControls(p, theta)
	tracer().Debugf("controls for %d knots: %s", p.n(), AsString(knots, handles))
	return handles, nil
}

// MustFindControls is a helper which panics on validation errors.
func MustFindControls(knots []bezedit.Point, tension float64) []Handles {
	h, err := FindControls(knots, tension)
	if err != nil {
		panic(err)
	}
	return h
}

func clampTension(t float64) float64 {
	if t < 0 {
		t = -t
	}
	return bezedit.Clamp(t, 0.75, 4.0)
}
