package polyn

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestCubicHorner(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := Cubic(1, -2, 3, -4) // t³ - 2t² + 3t - 4
	assert.Equal(t, 3, p.Degree())
	assert.Equal(t, []int{0, 1, 2, 3}, p.Exponents())
	assert.Equal(t, -4.0, p.Eval(0))
	assert.Equal(t, -2.0, p.Eval(1))
	assert.Equal(t, 2.0, p.Eval(2))
	assert.InDelta(t, 0.125-0.5+1.5-4, p.Eval(0.5), 1e-12)
	assert.Equal(t, "-4 + 3t - 2t^2 + 1t^3", p.String())
}

func TestDerivative(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := Cubic(2, 3, 4, 5)
	d := p.Derivative() // 6t² + 6t + 4
	assert.Equal(t, 6.0, d.Coeff(2))
	assert.Equal(t, 6.0, d.Coeff(1))
	assert.Equal(t, 4.0, d.Coeff(0))
	dd := d.Derivative() // 12t + 6
	assert.Equal(t, 1, dd.Degree())
	assert.Equal(t, 30.0, dd.Eval(2))
	ddd := dd.Derivative().Derivative()
	assert.Equal(t, 0, ddd.Degree())
	assert.Equal(t, 0.0, ddd.Eval(7))
}

func TestTinyCoefficientsAreKept(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := Cubic(0, 0, 3e-8, 0)
	assert.Equal(t, 1, p.Degree())
	assert.Equal(t, 3e-8, p.Coeff(1))
	assert.InDelta(t, 1.5e-8, p.Eval(0.5), 1e-22)
	d := p.Derivative()
	assert.Equal(t, 3e-8, d.Eval(0.5))
	assert.Equal(t, 3, Cubic(1e-20, 0, 0, 0).Degree())
}

func TestZeroTermsAreNotPrinted(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, "1 + 2t^3", Cubic(2, 0, 0, 1).String())
	assert.Equal(t, "0", NewConstantPolynomial(0).String())
}

func TestZeroValue(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var zero Polynomial
	assert.Equal(t, 0.0, zero.Eval(3))
	assert.Equal(t, 0, zero.Degree())
	assert.Equal(t, 0.0, zero.Coeff(2))
}
