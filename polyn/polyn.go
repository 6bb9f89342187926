// Package polyn is for arithmetic with polynomials in one variable.
/*
BSD 3-Clause License

Copyright (c) 2017–21, Norbert Pillmayer.

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package polyn

import (
	"bytes"
	"fmt"
	"sort"
)

// Cubic creates P(t) = a t³ + b t² + c t + d. Coefficients are stored as
// given, however small.
func Cubic(a, b, c, d float64) Polynomial {
	p := NewConstantPolynomial(d)
	p.SetTerm(1, c)
	p.SetTerm(2, b)
	p.SetTerm(3, a)
	return p
}

// Polynomial is a type for polynomials in one variable
//
//	c + a.1 t + a.2 t² + ... a.n tⁿ .
//
// We store the coefficients only, keyed by exponent. Index 0 is the constant
// term. A Polynomial shares its term map with copies of the struct value.
type Polynomial struct {
	terms map[int]float64
}

// NewConstantPolynomial creates a Polynomial consisting of just a constant term.
func NewConstantPolynomial(c float64) Polynomial {
	p := Polynomial{}
	p.checkTerms()
	p.terms[0] = c
	return p
}

func (p *Polynomial) checkTerms() {
	if p.terms == nil {
		p.terms = make(map[int]float64)
	}
}

// SetTerm sets the coefficient for a term a.i within a Polynomial.
// For i=0, sets the constant term.
func (p Polynomial) SetTerm(i int, scale float64) Polynomial {
	p.checkTerms()
	p.terms[i] = scale
	return p
}

// Coeff gets the coefficient for term # i.
//
// Example:
//
//	p = t + 3t²
//
// ⇒
//
//	coeff(2) = 3
func (p Polynomial) Coeff(i int) float64 {
	if p.terms == nil {
		return 0.0
	}
	return p.terms[i]
}

// Exponents returns the exponents of all terms present, ascending.
func (p Polynomial) Exponents() []int {
	exps := make([]int, 0, len(p.terms))
	for i := range p.terms {
		exps = append(exps, i)
	}
	sort.Ints(exps)
	return exps
}

// Degree is the highest exponent with a non-zero coefficient.
// Constant polynomials have degree 0. There is no tolerance: a coefficient
// of 1e-20 still counts.
func (p Polynomial) Degree() int {
	deg := 0
	for i, c := range p.terms {
		if i > deg && c != 0 {
			deg = i
		}
	}
	return deg
}

// Derivative returns dP/dt.
func (p Polynomial) Derivative() Polynomial {
	d := NewConstantPolynomial(0.0)
	for i, c := range p.terms {
		if i > 0 {
			d.terms[i-1] = float64(i) * c
		}
	}
	return d
}

// Eval evaluates P(t) by Horner's rule.
func (p Polynomial) Eval(t float64) float64 {
	deg := p.Degree()
	r := p.Coeff(deg)
	for i := deg - 1; i >= 0; i-- {
		r = r*t + p.Coeff(i)
	}
	return r
}

// String creates a readable string representation for a Polynomial, with
// terms in ascending order.
func (p Polynomial) String() string {
	var buffer bytes.Buffer
	for k, i := range p.Exponents() {
		c := p.Coeff(i)
		if c == 0 && i > 0 {
			continue
		}
		if i == 0 {
			buffer.WriteString(fmt.Sprintf("%g", c))
			continue
		}
		if k > 0 {
			if c < 0 {
				buffer.WriteString(" - ")
				c = -c
			} else {
				buffer.WriteString(" + ")
			}
		}
		switch i {
		case 1:
			buffer.WriteString(fmt.Sprintf("%gt", c))
		default:
			buffer.WriteString(fmt.Sprintf("%gt^%d", c, i))
		}
	}
	return buffer.String()
}
