/*
Package bezedit implements the numeric basics for an interactive editor of
piecewise-cubic Bézier splines: points, affine transformations and
tolerance helpers. The spline engine itself lives in package spline.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bezedit

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bezedit'
func tracer() tracing.Trace {
	return tracing.Select("bezedit")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Clamp returns n restricted to [lo,hi]. Bounds are not checked for lo ≤ hi;
// lo wins if they cross.
func Clamp(n, lo, hi float64) float64 {
	if n > hi {
		n = hi
	}
	if n < lo {
		n = lo
	}
	return n
}

// === Point Data Type =======================================================

// Point is a 2D point or vector in model space. It is a value type: every
// operation returns a new point and leaves its receiver untouched.
type Point complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// Pretty Stringer for simple points.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Point as a complex number.
func (p Point) C() complex128 {
	return complex128(p)
}

// P is a quick notation for contructing a point from floats.
func P(x, y float64) Point {
	return Point(complex(x, y))
}

// Polar creates a vector of length rho and direction theta (radians,
// counter-clockwise from the positive x-axis).
func Polar(rho, theta float64) Point {
	return Point(cmplx.Rect(rho, theta))
}

// F is a quick notation for getting float values from a point.
func (p Point) F() (float64, float64) {
	return real(p), imag(p)
}

// X is the x-part of a point.
func (p Point) X() float64 {
	return real(p)
}

// Y is the y-part of a point.
func (p Point) Y() float64 {
	return imag(p)
}

// WithX returns a copy of p with the x-part replaced.
func (p Point) WithX(x float64) Point {
	return P(x, p.Y())
}

// WithY returns a copy of p with the y-part replaced.
func (p Point) WithY(y float64) Point {
	return P(p.X(), y)
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return p + q
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return p - q
}

// Neg returns -p.
func (p Point) Neg() Point {
	return -p
}

// Scaled returns a new point scaled by factor a.
func (p Point) Scaled(a float64) Point {
	return P(p.X()*a, p.Y()*a)
}

// Abs is the length of p, interpreted as a vector.
func (p Point) Abs() float64 {
	return cmplx.Abs(p.C())
}

// Angle is the direction of p, interpreted as a vector, in radians within
// [-π,π]. The zero vector has angle 0.
func (p Point) Angle() float64 {
	return cmplx.Phase(p.C())
}

// Distance returns the euclidian distance between a and b.
func Distance(a, b Point) float64 {
	return (b - a).Abs()
}

// Angle returns the direction of the vector from a to b.
func Angle(a, b Point) float64 {
	return (b - a).Angle()
}

// IsFinite is false if any part of p is NaN or ±Inf.
func (p Point) IsFinite() bool {
	x, y := p.F()
	return !(math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0))
}

// Equal compares two points with tolerance ε.
func (p Point) Equal(p2 Point) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}
