package spline

import (
	"fmt"
	"math"

	"github.com/npillmayer/bezedit"
	"github.com/npillmayer/bezedit/polyn"
)

// Axis selects the x- or y-polynomial of a span.
type Axis int

// Axes of a span.
const (
	AxisX Axis = iota
	AxisY
)

// Solver selects the strategy for inverting x(t).
type Solver int

// NewtonOnly is plain Newton iteration with a fixed budget. It never fails,
// but may return a poor estimate where x(t) is flat. NewtonBisection keeps a
// bracket on [0,1] and falls back to bisection whenever a Newton step would
// leave it.
const (
	NewtonOnly Solver = iota
	NewtonBisection
)

func (sv Solver) String() string {
	if sv == NewtonBisection {
		return "newton+bisection"
	}
	return "newton"
}

// Span is a cubic Bézier segment between two knots. It holds snapshots of
// its four control points, taken when it was built, and the derived power
// basis polynomials
//
//	P(t) = A t³ + B t² + C t + D,  t ∈ [0,1]
//
// for both axes. Spans are immutable: the owning spline replaces a span
// whenever one of its control points changes.
type Span struct {
	p       [4]bezedit.Point
	x, y    polyn.Polynomial // P(t) per axis
	dx, dy  polyn.Polynomial // P'(t)
	ddx     polyn.Polynomial // P''(t)
	ddy     polyn.Polynomial
	solver  Solver
	maxIter int
}

// NewSpan builds a span from four control points, using the default solver
// settings.
func NewSpan(pts [4]bezedit.Point) *Span {
	return buildSpan(pts, NewtonOnly, DefaultMaxIterations)
}

func buildSpan(pts [4]bezedit.Point, solver Solver, maxIter int) *Span {
	s := &Span{p: pts, solver: solver, maxIter: maxIter}
	s.x = bezierToPower(pts[0].X(), pts[1].X(), pts[2].X(), pts[3].X())
	s.y = bezierToPower(pts[0].Y(), pts[1].Y(), pts[2].Y(), pts[3].Y())
	s.dx = s.x.Derivative()
	s.dy = s.y.Derivative()
	s.ddx = s.dx.Derivative()
	s.ddy = s.dy.Derivative()
	return s
}

// Standard conversion from Bernstein to power basis:
//
//	A = -p0 + 3p1 - 3p2 + p3
//	B = 3p0 - 6p1 + 3p2
//	C = -3p0 + 3p1
//	D = p0
func bezierToPower(p0, p1, p2, p3 float64) polyn.Polynomial {
	a := -p0 + 3*p1 - 3*p2 + p3
	b := 3*p0 - 6*p1 + 3*p2
	c := -3*p0 + 3*p1
	return polyn.Cubic(a, b, c, p0)
}

func (s *Span) poly(axis Axis) (polyn.Polynomial, polyn.Polynomial) {
	if axis == AxisX {
		return s.x, s.dx
	}
	return s.y, s.dy
}

// Coefficients returns A, B, C, D of the polynomial for an axis.
func (s *Span) Coefficients(axis Axis) (float64, float64, float64, float64) {
	p, _ := s.poly(axis)
	return p.Coeff(3), p.Coeff(2), p.Coeff(1), p.Coeff(0)
}

// Points returns the control point snapshots the span was built from.
func (s *Span) Points() [4]bezedit.Point {
	return s.p
}

// Solve evaluates P(t) - offset for an axis.
func (s *Span) Solve(t float64, axis Axis, offset float64) float64 {
	p, _ := s.poly(axis)
	return p.Eval(t) - offset
}

// SolvePrime evaluates P'(t) = 3At² + 2Bt + C for an axis.
func (s *Span) SolvePrime(t float64, axis Axis) float64 {
	_, d := s.poly(axis)
	return d.Eval(t)
}

// SolveDoublePrime evaluates P''(t) = 6At + 2B for an axis.
func (s *Span) SolveDoublePrime(t float64, axis Axis) float64 {
	if axis == AxisX {
		return s.ddx.Eval(t)
	}
	return s.ddy.Eval(t)
}

// At returns the curve point for parameter t.
func (s *Span) At(t float64) bezedit.Point {
	return bezedit.P(s.x.Eval(t), s.y.Eval(t))
}

// TOfX finds the curve parameter t with x(t) = x, starting with a guess of
// t = 0.5 and using the span's iteration budget.
func (s *Span) TOfX(x float64) float64 {
	return s.TOfXFrom(x, DefaultGuess, s.maxIter)
}

// TOfXFrom finds the curve parameter t with x(t) = x, starting at guess.
// Iteration stops when successive estimates differ by less than
// ConvergenceThreshold or after maxIter steps. The last estimate is returned
// in either case; non-convergence is not an error.
//
// The start of the domain maps to t = 0 and the end to t = 1 without
// iterating.
func (s *Span) TOfXFrom(x, guess float64, maxIter int) float64 {
	if x == s.StartX() {
		return 0
	}
	if x == s.StopX() {
		return 1
	}
	if maxIter < 1 {
		maxIter = 1
	}
	if s.solver == NewtonBisection {
		return s.newtonBisection(x, guess, maxIter)
	}
	return s.newton(x, guess, maxIter)
}

func (s *Span) newton(x, t float64, maxIter int) float64 {
	for iter := 1; ; iter++ {
		f := s.Solve(t, AxisX, x)
		fprime := s.SolvePrime(t, AxisX)
		next := t - f/fprime
		if math.Abs(next-t) < ConvergenceThreshold {
			return next
		}
		if iter >= maxIter {
			tracer().Debugf("t(x=%g) did not converge after %d iterations, t = %g", x, iter, next)
			return next
		}
		t = next
	}
}

func (s *Span) newtonBisection(x, t float64, maxIter int) float64 {
	lo, hi := 0.0, 1.0
	flo := s.Solve(lo, AxisX, x)
	if t <= lo || t >= hi {
		t = (lo + hi) / 2
	}
	for iter := 1; ; iter++ {
		f := s.Solve(t, AxisX, x)
		if f == 0 {
			return t
		}
		if (f < 0) == (flo < 0) {
			lo, flo = t, f
		} else {
			hi = t
		}
		fprime := s.SolvePrime(t, AxisX)
		next := t - f/fprime
		if fprime == 0 || math.IsNaN(next) || next <= lo || next >= hi {
			next = (lo + hi) / 2
		}
		if math.Abs(next-t) < ConvergenceThreshold {
			return next
		}
		if iter >= maxIter {
			tracer().Debugf("t(x=%g) did not converge after %d iterations, t = %g", x, iter, next)
			return next
		}
		t = next
	}
}

// PositionAtX returns y at x.
func (s *Span) PositionAtX(x float64) float64 {
	return s.Solve(s.TOfX(x), AxisY, 0)
}

// VelocityAtX returns dy/dt at x.
func (s *Span) VelocityAtX(x float64) float64 {
	return s.SolvePrime(s.TOfX(x), AxisY)
}

// AccelAtX returns d²y/dt² at x.
func (s *Span) AccelAtX(x float64) float64 {
	return s.SolveDoublePrime(s.TOfX(x), AxisY)
}

// Domain returns the x-range [p0.x, p3.x] of the span.
func (s *Span) Domain() (float64, float64) {
	return s.StartX(), s.StopX()
}

// ContainsX is an inclusive range test on the span's domain.
func (s *Span) ContainsX(x float64) bool {
	return x >= s.StartX() && x <= s.StopX()
}

// StartX is the x-coordinate of the first knot.
func (s *Span) StartX() float64 {
	return s.p[0].X()
}

// StopX is the x-coordinate of the last knot.
func (s *Span) StopX() float64 {
	return s.p[3].X()
}

// RangeX is the width of the domain.
func (s *Span) RangeX() float64 {
	return s.StopX() - s.StartX()
}

// StartY is the y-coordinate of the first knot.
func (s *Span) StartY() float64 {
	return s.p[0].Y()
}

// StopY is the y-coordinate of the last knot.
func (s *Span) StopY() float64 {
	return s.p[3].Y()
}

// ExtentY samples the span at n+1 equidistant x-positions and returns the
// smallest and largest y found.
func (s *Span) ExtentY(n int) (float64, float64) {
	if n < 1 {
		n = 1
	}
	min, max := math.Inf(1), math.Inf(-1)
	inc := s.RangeX() / float64(n)
	for i := 0; i <= n; i++ {
		x := s.StartX() + float64(i)*inc
		if i == n {
			x = s.StopX()
		}
		y := s.PositionAtX(x)
		min, max = math.Min(min, y), math.Max(max, y)
	}
	return min, max
}

func (s *Span) String() string {
	return fmt.Sprintf("span[%s %s %s %s]", s.p[0], s.p[1], s.p[2], s.p[3])
}
