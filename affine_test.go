package bezedit

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineOrder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// scale first, then translate
	m := Scaling(2, 3).Combine(Translation(P(1, 1)))
	assert.True(t, m.Transform(P(1, 1)).Equal(P(3, 4)), "got %v", m.Transform(P(1, 1)))
	// translate first, then scale
	n := Translation(P(1, 1)).Combine(Scaling(2, 3))
	assert.True(t, n.Transform(P(1, 1)).Equal(P(4, 6)), "got %v", n.Transform(P(1, 1)))
}

func TestInvert(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := Translation(P(10, -10)).Combine(Scaling(4, -2)).Combine(Translation(P(0, 200)))
	inv, err := m.Invert()
	require.NoError(t, err)
	for _, p := range []Point{P(0, 0), P(10, -10), P(55.5, 17), P(-3, 110)} {
		q := inv.Transform(m.Transform(p))
		assert.True(t, q.Equal(p), "round trip of %v gave %v", p, q)
	}
	id := m.Combine(inv)
	assert.True(t, id.Transform(P(7, 8)).Equal(P(7, 8)))
}

func TestInvertSingular(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := Scaling(0, 1).Invert()
	if !errors.Is(err, ErrSingularTransform) {
		t.Fatalf("expected ErrSingularTransform, got %v", err)
	}
}

func TestIdentity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, "[1,0,0|0,1,0|0,0,1]", Identity().String())
	assert.Equal(t, P(2, -3), Identity().Transform(P(2, -3)))
}
