package spline

import (
	"errors"
	"testing"

	"github.com/npillmayer/bezedit"
	"github.com/npillmayer/bezedit/hobby"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func peak() []bezedit.Point {
	return []bezedit.Point{bezedit.P(0, 0), bezedit.P(50, 50), bezedit.P(100, 0)}
}

func TestNewSmooth(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, err := NewSmooth(peak())
	require.NoError(t, err)
	require.Equal(t, 7, s.Len())
	assert.Equal(t, peak(), s.Knots())
	assert.InDelta(t, 0.0, value(t, s, 1).X(), 1e-9)
	assert.InDelta(t, 27.6142, value(t, s, 1).Y(), 1e-3)
	assert.InDelta(t, 22.3858, value(t, s, 2).X(), 1e-3)
	assert.InDelta(t, 50.0, value(t, s, 2).Y(), 1e-9)
	assert.InDelta(t, 50.0, value(t, s, 4).Y(), 1e-9)
	assert.InDelta(t, 100.0, value(t, s, 2).X()+value(t, s, 4).X(), 1e-9)
	assert.InDelta(t, 50.0, s.PositionAtX(50), 1e-9)
	assert.InDelta(t, 0.0, s.VelocityAtX(50), 1e-9)
	for _, cp := range s.ControlPoints() {
		assert.GreaterOrEqual(t, cp.Value().X(), 0.0)
		assert.LessOrEqual(t, cp.Value().X(), 100.0)
	}
}

func TestNewSmoothRejectsBadKnots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := NewSmooth(peak()[:1])
	assert.True(t, errors.Is(err, hobby.ErrTooFewKnots))
	_, err = NewSmooth([]bezedit.Point{bezedit.P(0, 0), bezedit.P(0, 0)})
	assert.True(t, errors.Is(err, hobby.ErrDegenerateSegment))
}

func TestSmooth(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := tent(t)
	require.NoError(t, s.SetLocked(1, true))
	require.NoError(t, s.Smooth(1.0))
	assert.Equal(t, bezedit.P(12.5, 12.5), value(t, s, 1))
	assert.InDelta(t, 22.3858, value(t, s, 2).X(), 1e-3)
	assert.InDelta(t, 50.0, value(t, s, 2).Y(), 1e-9)
	assert.InDelta(t, 50.0, s.PositionAtX(50), 1e-9)
	r, err := Reserve(3)
	require.NoError(t, err)
	assert.True(t, errors.Is(r.Smooth(1.0), ErrIncomplete))
}
