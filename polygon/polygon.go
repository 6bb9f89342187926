/*
Package polygon implements control polygons: the polylines through a
spline's knots and handles. By the convex hull property every Bézier span
lies within the hull of its control polygon, which makes polygons a cheap
stand-in for curves when computing bounds or deciding visibility.

Clipping is delegated to github.com/akavel/polyclip-go.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"math"
	"sort"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/bezedit"
	"github.com/npillmayer/schuko/tracing"
)

// L traces to the polygon tracer.
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// Polygon is a sequence of vertices, either open or closed (cyclic).
// Build one with NullPolygon() and successive calls to Knot().
type Polygon struct {
	contour polyclip.Contour
	cycle   bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls.
//
//	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{}
}

// FromPoints creates an open polygon from a sequence of points.
func FromPoints(pts []bezedit.Point) *Polygon {
	pg := &Polygon{contour: make(polyclip.Contour, 0, len(pts))}
	for _, p := range pts {
		pg.Knot(p)
	}
	return pg
}

// Box creates a closed, axis-aligned rectangle from two opposite corners.
func Box(p1, p2 bezedit.Point) *Polygon {
	minx, maxx := math.Min(p1.X(), p2.X()), math.Max(p1.X(), p2.X())
	miny, maxy := math.Min(p1.Y(), p2.Y()), math.Max(p1.Y(), p2.Y())
	return NullPolygon().
		Knot(bezedit.P(minx, miny)).Knot(bezedit.P(maxx, miny)).
		Knot(bezedit.P(maxx, maxy)).Knot(bezedit.P(minx, maxy)).Cycle()
}

// Knot appends a vertex. Part of builder functionality.
func (pg *Polygon) Knot(p bezedit.Point) *Polygon {
	pg.contour.Add(pt(p))
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the number of vertices.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// Pt returns vertex i.
func (pg *Polygon) Pt(i int) bezedit.Point {
	return bezedit.P(pg.contour[i].X, pg.contour[i].Y)
}

// Bounds returns the lower left and upper right corner of the bounding box.
// An empty polygon has bounds (0,0)-(0,0).
func (pg *Polygon) Bounds() (bezedit.Point, bezedit.Point) {
	if pg.N() == 0 {
		return bezedit.Origin, bezedit.Origin
	}
	bb := pg.contour.BoundingBox()
	return bezedit.P(bb.Min.X, bb.Min.Y), bezedit.P(bb.Max.X, bb.Max.Y)
}

// Area is the enclosed area of a closed polygon. Open polygons have no area.
func (pg *Polygon) Area() float64 {
	if !pg.cycle || pg.N() < 3 {
		return 0
	}
	var a float64
	for i := range pg.contour {
		p, q := pg.contour[i], pg.contour[(i+1)%pg.N()]
		a += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(a) / 2
}

// Contains checks if p lies inside a closed polygon.
func (pg *Polygon) Contains(p bezedit.Point) bool {
	if !pg.cycle || pg.N() < 3 {
		return false
	}
	return pg.contour.Contains(pt(p))
}

// Hull returns the convex hull of pg's vertices as a closed polygon, in
// counter-clockwise order. Collinear vertices are dropped, so the hull of
// points on a line has two vertices and no area.
func (pg *Polygon) Hull() *Polygon {
	pts := pg.contour.Clone()
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	if len(pts) < 3 {
		return &Polygon{contour: pts, cycle: true}
	}
	// Andrew's monotone chain
	hull := make(polyclip.Contour, 0, 2*len(pts))
	for _, p := range pts { // lower hull
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- { // upper hull
		p := pts[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return &Polygon{contour: hull[:len(hull)-1], cycle: true}
}

// cross is the z-component of (a-o) × (b-o); positive for a left turn.
func cross(o, a, b polyclip.Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// Overlaps checks if the regions of two polygons intersect. Polygons without
// area, e.g. collinear control points, are compared by their bounding boxes.
func Overlaps(a, b *Polygon) bool {
	if a.N() == 0 || b.N() == 0 {
		return false
	}
	amin, amax := a.Bounds()
	bmin, bmax := b.Bounds()
	if amax.X() < bmin.X() || bmax.X() < amin.X() || amax.Y() < bmin.Y() || bmax.Y() < amin.Y() {
		return false
	}
	ha, hb := a.Hull(), b.Hull()
	if bezedit.Is0(ha.Area()) || bezedit.Is0(hb.Area()) {
		return true
	}
	is := Intersection(ha, hb)
	L().Debugf("intersection of %s and %s has %d contours", AsString(a), AsString(b), len(is))
	return len(is) > 0
}

// Intersection clips a against b. Both are treated as closed. The result may
// consist of several disjoint polygons, or none at all.
func Intersection(a, b *Polygon) []*Polygon {
	subject := polyclip.Polygon{a.contour}
	clipping := polyclip.Polygon{b.contour}
	result := subject.Construct(polyclip.INTERSECTION, clipping)
	pgs := make([]*Polygon, 0, len(result))
	for _, c := range result {
		if len(c) > 0 {
			pgs = append(pgs, &Polygon{contour: c, cycle: true})
		}
	}
	return pgs
}

// AsString returns a polygon in MetaPost-like notation.
func AsString(pg *Polygon) string {
	var sb strings.Builder
	for i := 0; i < pg.N(); i++ {
		if i > 0 {
			sb.WriteString(" -- ")
		}
		sb.WriteString(pg.Pt(i).String())
	}
	if pg.cycle {
		sb.WriteString(" -- cycle")
	}
	return sb.String()
}

// String is the Stringer for polygons.
func (pg *Polygon) String() string {
	return fmt.Sprintf("polygon[%s]", AsString(pg))
}

func pt(p bezedit.Point) polyclip.Point {
	return polyclip.Point{X: p.X(), Y: p.Y()}
}
