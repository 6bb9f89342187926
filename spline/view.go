package spline

import (
	"errors"
	"fmt"

	"github.com/npillmayer/bezedit"
	"github.com/npillmayer/bezedit/polygon"
)

// ErrEmptyViewport indicates a viewport with zero extent on one axis.
var ErrEmptyViewport = errors.New("viewport must have positive extent")

// Viewport maps the value rectangle [min.x,max.x]×[min.y,max.y] onto a pixel
// area of width×height, with the y-axis pointing down. A viewport is
// immutable.
type Viewport struct {
	min, max      bezedit.Point
	width, height float64
	toPx, toVal   bezedit.AT
}

// NewViewport creates a viewport showing the value rectangle spanned by min
// and max on a pixel area of size width×height.
func NewViewport(min, max bezedit.Point, width, height float64) (*Viewport, error) {
	rx, ry := max.X()-min.X(), max.Y()-min.Y()
	if rx <= 0 || ry <= 0 || width <= 0 || height <= 0 {
		tracer().Errorf("cannot create viewport %s..%s on %gx%g", min, max, width, height)
		return nil, fmt.Errorf("%w: %s..%s on %gx%g", ErrEmptyViewport, min, max, width, height)
	}
	toPx := bezedit.Translation(min.Neg()).
		Combine(bezedit.Scaling(width/rx, -height/ry)).
		Combine(bezedit.Translation(bezedit.P(0, height)))
	toVal, err := toPx.Invert()
	if err != nil {
		return nil, err
	}
	return &Viewport{
		min:    min,
		max:    max,
		width:  width,
		height: height,
		toPx:   toPx,
		toVal:  toVal,
	}, nil
}

// ToPixel maps a value to pixel coordinates.
func (vp *Viewport) ToPixel(v bezedit.Point) bezedit.Point {
	return vp.toPx.Transform(v)
}

// ToValue maps pixel coordinates to a value.
func (vp *Viewport) ToValue(px bezedit.Point) bezedit.Point {
	return vp.toVal.Transform(px)
}

// ValueRange returns the lower left and upper right corner of the value
// rectangle.
func (vp *Viewport) ValueRange() (bezedit.Point, bezedit.Point) {
	return vp.min, vp.max
}

// Size returns the pixel area's width and height.
func (vp *Viewport) Size() (float64, float64) {
	return vp.width, vp.height
}

// Visible is true if span may show up in the viewport. It tests the convex
// hull of the span's control points, which encloses the curve, against the
// value rectangle; a span close to a corner may therefore be reported
// visible although the curve itself misses the rectangle.
func (vp *Viewport) Visible(span *Span) bool {
	pts := span.Points()
	return polygon.Overlaps(polygon.FromPoints(pts[:]), polygon.Box(vp.min, vp.max))
}

func (vp *Viewport) String() string {
	return fmt.Sprintf("viewport[%s..%s @ %gx%g]", vp.min, vp.max, vp.width, vp.height)
}

// SetViewport attaches a viewport to the spline and refreshes the pixel
// position of every control point. A nil viewport detaches the current one;
// pixel positions are then left as they are.
func (s *Spline) SetViewport(vp *Viewport) *Spline {
	s.vp = vp
	if vp != nil {
		for i := range s.pts {
			s.pts[i].px = vp.ToPixel(s.pts[i].value)
		}
	}
	return s
}

// Viewport returns the attached viewport, or nil.
func (s *Spline) Viewport() *Viewport {
	return s.vp
}

// VisibleSpans returns the indices of the spans visible in the attached
// viewport. Without a viewport every span counts as visible.
func (s *Spline) VisibleSpans() []int {
	var visible []int
	for k, span := range s.spans {
		if s.vp == nil || s.vp.Visible(span) {
			visible = append(visible, k)
		}
	}
	return visible
}
