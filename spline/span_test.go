package spline

import (
	"math"
	"testing"

	"github.com/npillmayer/bezedit"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func diagonal() *Span {
	return NewSpan([4]bezedit.Point{
		bezedit.P(0, 0), bezedit.P(12.5, 12.5), bezedit.P(37.5, 37.5), bezedit.P(50, 50),
	})
}

func TestSpanCoefficients(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	span := diagonal()
	a, b, c, d := span.Coefficients(AxisX)
	assert.Equal(t, -25.0, a)
	assert.Equal(t, 37.5, b)
	assert.Equal(t, 37.5, c)
	assert.Equal(t, 0.0, d)
	assert.Equal(t, 25.0, span.Solve(0.5, AxisX, 0))
	assert.Equal(t, 20.0, span.Solve(0.5, AxisY, 5))
	assert.Equal(t, 56.25, span.SolvePrime(0.5, AxisY))
	assert.Equal(t, 0.0, span.SolveDoublePrime(0.5, AxisY))
	assert.Equal(t, 75.0, span.SolveDoublePrime(0, AxisX))
	assert.Equal(t, bezedit.P(25, 25), span.At(0.5))
}

func TestSpanDomain(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	span := diagonal()
	lo, hi := span.Domain()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 50.0, hi)
	assert.True(t, span.ContainsX(0))
	assert.True(t, span.ContainsX(50))
	assert.False(t, span.ContainsX(50.001))
	assert.False(t, span.ContainsX(-0.001))
	assert.Equal(t, 50.0, span.RangeX())
	assert.Equal(t, 0.0, span.StartY())
	assert.Equal(t, 50.0, span.StopY())
}

func TestTOfX(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	span := diagonal()
	assert.Equal(t, 0.0, span.TOfX(0))
	assert.Equal(t, 1.0, span.TOfX(50))
	assert.InDelta(t, 0.5, span.TOfX(25), 1e-9)
	for x := 1.0; x < 50; x += 7 {
		tt := span.TOfX(x)
		assert.InDelta(t, x, span.Solve(tt, AxisX, 0), 1e-6, "x=%g", x)
	}
}

func TestTOfXAtShiftedDomain(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	span := NewSpan([4]bezedit.Point{
		bezedit.P(-20, 3), bezedit.P(-10, 3), bezedit.P(10, 3), bezedit.P(20, 3),
	})
	assert.Equal(t, 0.0, span.TOfX(-20))
	assert.Equal(t, 1.0, span.TOfX(20))
	assert.InDelta(t, 0.5, span.TOfX(0), 1e-9)
}

func TestPositionAtX(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	span := diagonal()
	assert.Equal(t, 0.0, span.PositionAtX(0))
	assert.Equal(t, 50.0, span.PositionAtX(50))
	assert.InDelta(t, 30.0, span.PositionAtX(30), 1e-6)
	assert.InDelta(t, 56.25, span.VelocityAtX(25), 1e-6)
	assert.InDelta(t, 0.0, span.AccelAtX(25), 1e-6)
}

// x(t) = 400t³ - 600t² + 300t has x'(0.5) = 0, which is where plain Newton starts.
func flatSpan(solver Solver) *Span {
	return buildSpan([4]bezedit.Point{
		bezedit.P(0, 0), bezedit.P(100, 0), bezedit.P(0, 0), bezedit.P(100, 0),
	}, solver, DefaultMaxIterations)
}

func TestNewtonOnlyIsBestEffort(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	span := flatSpan(NewtonOnly)
	assert.NotPanics(t, func() {
		span.TOfX(20)
		span.PositionAtX(20)
	})
}

func TestNewtonBisection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	span := flatSpan(NewtonBisection)
	tt := span.TOfX(20)
	assert.InDelta(t, 0.0783, tt, 1e-3)
	assert.InDelta(t, 20.0, span.Solve(tt, AxisX, 0), 1e-3)
	tt = span.TOfX(50)
	assert.False(t, math.IsNaN(tt))
	assert.InDelta(t, 0.5, tt, 0.05)
	assert.Equal(t, "newton+bisection", NewtonBisection.String())
	assert.Equal(t, "newton", NewtonOnly.String())
}

func TestTOfXFromRespectsBudget(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	span := diagonal()
	// one step from t=0.5 towards x=10 is not enough to get there
	tt := span.TOfXFrom(10, 0.5, 1)
	assert.Greater(t, math.Abs(span.Solve(tt, AxisX, 10)), 1e-3)
	tt = span.TOfXFrom(10, 0.5, 15)
	assert.InDelta(t, 0.0, span.Solve(tt, AxisX, 10), 1e-6)
}

func TestSpanExtentY(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	span := NewSpan([4]bezedit.Point{
		bezedit.P(0, 0), bezedit.P(10, 40), bezedit.P(20, 40), bezedit.P(30, 0),
	})
	lo, hi := span.ExtentY(100)
	assert.Equal(t, 0.0, lo)
	assert.InDelta(t, 30.0, hi, 1e-3)
}

func TestMicroScaleSpan(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	flat := NewSpan([4]bezedit.Point{
		bezedit.P(0, 0), bezedit.P(1, 3e-8), bezedit.P(2, 6e-8), bezedit.P(3, 9e-8),
	})
	assert.InDelta(t, 9e-8, flat.PositionAtX(3), 1e-20)
	assert.InDelta(t, 4.5e-8, flat.PositionAtX(1.5), 1e-20)
	narrow := NewSpan([4]bezedit.Point{
		bezedit.P(0, 0), bezedit.P(1e-8, 1), bezedit.P(2e-8, 2), bezedit.P(3e-8, 3),
	})
	assert.InDelta(t, 1.5, narrow.PositionAtX(1.5e-8), 1e-9)
	assert.InDelta(t, 3.0, narrow.PositionAtX(3e-8), 1e-12)
	_, _, c, _ := narrow.Coefficients(AxisX)
	assert.InDelta(t, 3e-8, c, 1e-22)
}

func TestTOfXOutsideDomain(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// x(t) = 40 + 30t on [40,70]
	span := NewSpan([4]bezedit.Point{
		bezedit.P(40, 1), bezedit.P(50, 1), bezedit.P(60, 1), bezedit.P(70, 1),
	})
	assert.Equal(t, 0.0, span.TOfX(40))
	assert.Equal(t, 1.0, span.TOfX(70))
	// x = 0 is no shortcut for a span not starting at 0
	assert.InDelta(t, -4.0/3, span.TOfX(0), 1e-9)
	s := MustNew(span.p[:])
	assert.Equal(t, Undefined, s.PositionAtX(0))
}
