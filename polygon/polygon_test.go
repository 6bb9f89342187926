package polygon

import (
	"testing"

	"github.com/npillmayer/bezedit"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(bezedit.P(0, 0)).Knot(bezedit.P(1, 3)).Knot(bezedit.P(3, 0)).Cycle()
	L().Infof("pg = %s", AsString(pg))
	if pg.N() != 3 {
		t.Fail()
	}
	assert.Equal(t, "(0,0) -- (1,3) -- (3,0) -- cycle", AsString(pg))
	assert.InDelta(t, 4.5, pg.Area(), 1e-12)
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(bezedit.P(0, 5), bezedit.P(4, 1))
	L().Infof("box = %s", AsString(box))
	if box.N() != 4 {
		t.Fail()
	}
	min, max := box.Bounds()
	assert.Equal(t, bezedit.P(0, 1), min)
	assert.Equal(t, bezedit.P(4, 5), max)
	assert.InDelta(t, 16.0, box.Area(), 1e-12)
	assert.True(t, box.Contains(bezedit.P(2, 2)))
	assert.False(t, box.Contains(bezedit.P(5, 2)))
}

func TestOpenPolygon(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := FromPoints([]bezedit.Point{bezedit.P(0, 0), bezedit.P(10, 20), bezedit.P(30, -5)})
	assert.False(t, pg.IsCycle())
	assert.Equal(t, 0.0, pg.Area())
	assert.False(t, pg.Contains(bezedit.P(10, 5)))
	assert.True(t, pg.Hull().Contains(bezedit.P(10, 5)))
	min, max := pg.Bounds()
	assert.Equal(t, bezedit.P(0, -5), min)
	assert.Equal(t, bezedit.P(30, 20), max)
	emin, emax := NullPolygon().Bounds()
	assert.Equal(t, bezedit.Origin, emin)
	assert.Equal(t, bezedit.Origin, emax)
}

func TestOverlaps(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	view := Box(bezedit.P(0, 0), bezedit.P(100, 100))
	inside := FromPoints([]bezedit.Point{bezedit.P(10, 10), bezedit.P(20, 50), bezedit.P(40, 10)})
	far := FromPoints([]bezedit.Point{bezedit.P(200, 10), bezedit.P(220, 50), bezedit.P(240, 10)})
	flat := FromPoints([]bezedit.Point{bezedit.P(-10, 50), bezedit.P(30, 50), bezedit.P(60, 50)})
	assert.True(t, Overlaps(inside, view))
	assert.False(t, Overlaps(far, view))
	assert.True(t, Overlaps(flat, view), "collinear polygons fall back to bounding boxes")
	assert.False(t, Overlaps(NullPolygon(), view))
}

func TestIntersection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Box(bezedit.P(0, 0), bezedit.P(10, 10))
	b := Box(bezedit.P(5, 5), bezedit.P(15, 15))
	is := Intersection(a, b)
	if assert.Len(t, is, 1) {
		assert.InDelta(t, 25.0, is[0].Area(), 1e-9)
	}
	c := Box(bezedit.P(20, 20), bezedit.P(30, 30))
	assert.Empty(t, Intersection(a, c))
}

func TestConvexHull(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// (4,2) is a dent in the polygon, not a corner of the hull
	pg := FromPoints([]bezedit.Point{bezedit.P(0, 0), bezedit.P(2, 8), bezedit.P(4, 2), bezedit.P(10, 0)})
	h := pg.Hull()
	assert.True(t, h.IsCycle())
	assert.Equal(t, "(0,0) -- (10,0) -- (2,8) -- cycle", AsString(h))
	assert.InDelta(t, 40.0, h.Area(), 1e-9)
	assert.True(t, h.Contains(bezedit.P(3.5, 3.75)))
	assert.False(t, pg.Hull().Contains(bezedit.P(11, 1)))
	line := FromPoints([]bezedit.Point{bezedit.P(0, 0), bezedit.P(1, 1), bezedit.P(1, 1), bezedit.P(3, 3)})
	assert.Equal(t, 2, line.Hull().N())
	assert.Equal(t, 4, pg.N(), "hull leaves the polygon alone")
}

func TestOverlapsConcave(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := FromPoints([]bezedit.Point{bezedit.P(0, 0), bezedit.P(2, 8), bezedit.P(4, 2), bezedit.P(10, 0)})
	view := Box(bezedit.P(3.45, 3.7), bezedit.P(3.55, 3.8))
	assert.True(t, Overlaps(pg, view))
}
