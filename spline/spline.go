package spline

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/bezedit"
	"github.com/npillmayer/bezedit/polygon"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'spline'
func tracer() tracing.Trace {
	return tracing.Select("spline")
}

var (
	// ErrIndexOutOfRange indicates a control point, knot or span index outside the spline.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrPointCount indicates a control point sequence not of length 3n+1, n ≥ 1.
	ErrPointCount = errors.New("control point count must be 3n+1 with n ≥ 1")
	// ErrNotAKnot indicates a knot operation on a handle.
	ErrNotAKnot = errors.New("control point is not a knot")
	// ErrNotAControlPoint indicates a handle operation on a knot.
	ErrNotAControlPoint = errors.New("control point is not a handle")
	// ErrIncomplete indicates an edit of a spline with unset coordinates.
	ErrIncomplete = errors.New("spline has unset control point coordinates")
	// ErrNoViewport indicates a pixel-space operation on a spline without viewport.
	ErrNoViewport = errors.New("spline has no viewport")
)

// Undefined is returned by curve queries for x outside of every span. It is
// not a valid ordinate; callers check the domain if they need to tell.
var Undefined = -1e6

// DefaultKnotBuffer is the minimum x-distance kept between adjacent knots.
var DefaultKnotBuffer = 5.0

// DefaultMaxIterations is the Newton iteration budget per query.
var DefaultMaxIterations = 15

// DefaultGuess is the start value of t for Newton iteration.
var DefaultGuess = 0.5

// ConvergenceThreshold ends Newton iteration once successive estimates of t
// are closer than this.
var ConvergenceThreshold = 1.5e-5

// extentSamples is the number of samples per span for MinY/MaxY.
const extentSamples = 500

// Spline is a piecewise-cubic Bézier curve. It owns its control points and
// the spans derived from them.
type Spline struct {
	pts     []ControlPoint
	spans   []*Span
	xset    []bool // coordinate received during incremental construction
	yset    []bool
	buffer  float64
	maxIter int
	solver  Solver
	vp      *Viewport
}

func newSpline(n int) *Spline {
	s := &Spline{
		pts:     make([]ControlPoint, n),
		xset:    make([]bool, n),
		yset:    make([]bool, n),
		buffer:  DefaultKnotBuffer,
		maxIter: DefaultMaxIterations,
		solver:  NewtonOnly,
	}
	for i := range s.pts {
		s.pts[i].kind = kindAt(i)
		s.pts[i].continuous = s.pts[i].kind == Knot
	}
	return s
}

// New creates a spline from a sequence of control point values. The
// sequence has to have length 3n+1 for n spans. Kinds are assigned by
// position, and every knot starts out continuous.
func New(values []bezedit.Point) (*Spline, error) {
	if len(values) < 4 || (len(values)-1)%3 != 0 {
		tracer().Errorf("cannot create spline from %d points", len(values))
		return nil, fmt.Errorf("%w: got %d", ErrPointCount, len(values))
	}
	s := newSpline(len(values))
	for i, v := range values {
		s.pts[i].value = v
		s.xset[i], s.yset[i] = true, true
	}
	s.buildSpans()
	return s, nil
}

// MustNew is like New, but panics on error.
func MustNew(values []bezedit.Point) *Spline {
	s, err := New(values)
	if err != nil {
		panic(err)
	}
	return s
}

// Reserve creates a spline for knotCount knots, with all coordinates unset.
// Clients fill in coordinates with SetX and SetY; spans are built as soon
// as every point has received both coordinates.
func Reserve(knotCount int) (*Spline, error) {
	if knotCount < 2 {
		tracer().Errorf("cannot reserve spline for %d knots", knotCount)
		return nil, fmt.Errorf("%w: %d knots", ErrPointCount, knotCount)
	}
	return newSpline(3*(knotCount-1) + 1), nil
}

// SetX sets the x-coordinate of control point i. It is a programmatic edit:
// locks are ignored and no constraints are applied.
func (s *Spline) SetX(i int, x float64) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.xset[i] = true
	s.assign(i, s.pts[i].value.WithX(x))
	return nil
}

// SetY sets the y-coordinate of control point i. See SetX.
func (s *Spline) SetY(i int, y float64) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.yset[i] = true
	s.assign(i, s.pts[i].value.WithY(y))
	return nil
}

// SetValue sets control point i to v. It is meant for external drivers:
// locks are ignored, no constraints are applied, and the pixel cache is
// refreshed.
func (s *Spline) SetValue(i int, v bezedit.Point) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.xset[i], s.yset[i] = true, true
	s.assign(i, v)
	return nil
}

// assign writes a value and builds or rebuilds the spans concerned.
func (s *Spline) assign(i int, v bezedit.Point) {
	wasComplete := s.spans != nil
	s.setValue(i, v)
	if wasComplete {
		s.rebuild(i)
	} else if s.IsComplete() {
		s.buildSpans()
	}
}

// IsComplete is true once every control point has both coordinates.
func (s *Spline) IsComplete() bool {
	for i := range s.pts {
		if !s.xset[i] || !s.yset[i] {
			return false
		}
	}
	return true
}

func (s *Spline) checkIndex(i int) error {
	if i < 0 || i >= len(s.pts) {
		tracer().Errorf("control point index %d not in [0,%d)", i, len(s.pts))
		return fmt.Errorf("%w: control point %d of %d", ErrIndexOutOfRange, i, len(s.pts))
	}
	return nil
}

// --- Spans -----------------------------------------------------------------

func (s *Spline) spanPoints(k int) [4]bezedit.Point {
	var pts [4]bezedit.Point
	for j := range pts {
		pts[j] = s.pts[3*k+j].value
	}
	return pts
}

func (s *Spline) buildSpans() {
	n := (len(s.pts) - 1) / 3
	s.spans = make([]*Span, n)
	for k := range s.spans {
		s.spans[k] = buildSpan(s.spanPoints(k), s.solver, s.maxIter)
	}
	tracer().Debugf("built %d spans", n)
}

// spansOf lists the spans control point i belongs to.
func spansOf(i, spanCount int) []int {
	var ks []int
	if i%3 == 0 && i > 0 {
		ks = append(ks, i/3-1)
	}
	if i/3 < spanCount {
		ks = append(ks, i/3)
	}
	return ks
}

// rebuild replaces every span containing one of the given control points.
func (s *Spline) rebuild(touched ...int) {
	if s.spans == nil {
		return
	}
	done := make(map[int]bool)
	for _, i := range touched {
		for _, k := range spansOf(i, len(s.spans)) {
			if !done[k] {
				s.spans[k] = buildSpan(s.spanPoints(k), s.solver, s.maxIter)
				done[k] = true
			}
		}
	}
}

// SpanCount is the number of spans (knots - 1).
func (s *Spline) SpanCount() int {
	return (len(s.pts) - 1) / 3
}

// KnotCount is the number of knots.
func (s *Spline) KnotCount() int {
	return s.SpanCount() + 1
}

// Len is the number of control points, knots included.
func (s *Spline) Len() int {
	return len(s.pts)
}

// Span returns span #i. Spans are replaced on edits, so a span obtained
// before an edit keeps describing the curve as it was.
func (s *Spline) Span(i int) (*Span, error) {
	if s.spans == nil {
		return nil, ErrIncomplete
	}
	if i < 0 || i >= len(s.spans) {
		tracer().Errorf("span index %d not in [0,%d)", i, len(s.spans))
		return nil, fmt.Errorf("%w: span %d of %d", ErrIndexOutOfRange, i, len(s.spans))
	}
	return s.spans[i], nil
}

// Spans returns all spans in order, or nil for an incomplete spline.
func (s *Spline) Spans() []*Span {
	if s.spans == nil {
		return nil
	}
	spans := make([]*Span, len(s.spans))
	copy(spans, s.spans)
	return spans
}

// ControlPoints returns a copy of the control point sequence.
func (s *Spline) ControlPoints() []ControlPoint {
	pts := make([]ControlPoint, len(s.pts))
	copy(pts, s.pts)
	return pts
}

// ControlPoint returns control point i.
func (s *Spline) ControlPoint(i int) (ControlPoint, error) {
	if err := s.checkIndex(i); err != nil {
		return ControlPoint{}, err
	}
	return s.pts[i], nil
}

// Knots returns the values of all knots in order.
func (s *Spline) Knots() []bezedit.Point {
	knots := make([]bezedit.Point, 0, s.KnotCount())
	for i := 0; i < len(s.pts); i += 3 {
		knots = append(knots, s.pts[i].value)
	}
	return knots
}

// --- Queries ---------------------------------------------------------------

func (s *Spline) spanContainingX(x float64) *Span {
	for _, span := range s.spans {
		if span.ContainsX(x) {
			return span
		}
	}
	return nil
}

// PositionAtX returns the curve's y at x, or Undefined.
func (s *Spline) PositionAtX(x float64) float64 {
	if span := s.spanContainingX(x); span != nil {
		return span.PositionAtX(x)
	}
	return Undefined
}

// VelocityAtX returns dy/dt at x, or Undefined.
func (s *Spline) VelocityAtX(x float64) float64 {
	if span := s.spanContainingX(x); span != nil {
		return span.VelocityAtX(x)
	}
	return Undefined
}

// AccelAtX returns d²y/dt² at x, or Undefined.
func (s *Spline) AccelAtX(x float64) float64 {
	if span := s.spanContainingX(x); span != nil {
		return span.AccelAtX(x)
	}
	return Undefined
}

// CurvePoints samples the curve at n+1 equidistant x-positions from StartX
// to StopX. The result is nil for n < 1 or an incomplete spline.
func (s *Spline) CurvePoints(n int) []bezedit.Point {
	if n < 1 || len(s.spans) == 0 {
		return nil
	}
	start, stop := s.StartX(), s.StopX()
	inc := (stop - start) / float64(n)
	pts := make([]bezedit.Point, n+1)
	for i := range pts {
		x := start + float64(i)*inc
		if i == n {
			x = stop
		}
		pts[i] = bezedit.P(x, s.PositionAtX(x))
	}
	return pts
}

// StartX is the x-coordinate of the first knot, 0 for an incomplete spline.
func (s *Spline) StartX() float64 {
	if len(s.spans) == 0 {
		return 0
	}
	return s.spans[0].StartX()
}

// StopX is the x-coordinate of the last knot, 0 for an incomplete spline.
func (s *Spline) StopX() float64 {
	if len(s.spans) == 0 {
		return 0
	}
	return s.spans[len(s.spans)-1].StopX()
}

// RangeX is StopX - StartX.
func (s *Spline) RangeX() float64 {
	return s.StopX() - s.StartX()
}

// StartY is the y-coordinate of the first knot, 0 for an incomplete spline.
func (s *Spline) StartY() float64 {
	if len(s.spans) == 0 {
		return 0
	}
	return s.spans[0].StartY()
}

// StopY is the y-coordinate of the last knot, 0 for an incomplete spline.
func (s *Spline) StopY() float64 {
	if len(s.spans) == 0 {
		return 0
	}
	return s.spans[len(s.spans)-1].StopY()
}

// ExtentY returns the smallest and largest y of the curve, found by sampling
// every span. Both are 0 for an incomplete spline.
func (s *Spline) ExtentY() (float64, float64) {
	if len(s.spans) == 0 {
		return 0, 0
	}
	min, max := math.Inf(1), math.Inf(-1)
	for _, span := range s.spans {
		lo, hi := span.ExtentY(extentSamples)
		min, max = math.Min(min, lo), math.Max(max, hi)
	}
	return min, max
}

// MinY is the smallest y of the curve. See ExtentY.
func (s *Spline) MinY() float64 {
	min, _ := s.ExtentY()
	return min
}

// MaxY is the largest y of the curve. See ExtentY.
func (s *Spline) MaxY() float64 {
	_, max := s.ExtentY()
	return max
}

// RangeY is MaxY - MinY.
func (s *Spline) RangeY() float64 {
	min, max := s.ExtentY()
	return max - min
}

// ControlPolygon returns the open polygon through all control points.
func (s *Spline) ControlPolygon() *polygon.Polygon {
	pts := make([]bezedit.Point, len(s.pts))
	for i, cp := range s.pts {
		pts[i] = cp.value
	}
	return polygon.FromPoints(pts)
}

// Bounds returns a box enclosing the whole curve: the bounding box of the
// control polygon.
func (s *Spline) Bounds() (bezedit.Point, bezedit.Point) {
	return s.ControlPolygon().Bounds()
}

// --- Settings --------------------------------------------------------------

// SetKnotBuffer sets the minimum x-distance kept between adjacent knots
// when dragging knots.
func (s *Spline) SetKnotBuffer(b float64) *Spline {
	s.buffer = math.Abs(b)
	return s
}

// KnotBuffer returns the minimum knot distance.
func (s *Spline) KnotBuffer() float64 {
	return s.buffer
}

// SetMaxIterations sets the Newton iteration budget per query.
func (s *Spline) SetMaxIterations(n int) *Spline {
	if n < 1 {
		n = 1
	}
	s.maxIter = n
	if s.spans != nil {
		s.buildSpans()
	}
	return s
}

// SetSolver selects the strategy for inverting x(t).
func (s *Spline) SetSolver(sv Solver) *Spline {
	s.solver = sv
	if s.spans != nil {
		s.buildSpans()
	}
	return s
}

func (s *Spline) String() string {
	return fmt.Sprintf("spline[%d spans: %s]", s.SpanCount(), polygon.AsString(s.ControlPolygon()))
}
