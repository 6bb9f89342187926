package hobby

import "math"

// Solve the tridiagonal system for the outgoing angles theta.i, relative to
// the chord delta.i. Both ends have curl 1.
func solveOpenPath(p *path) []float64 {
	n := p.n()
	theta := make([]float64, n)
	if n == 2 { // curl-curl on a single segment is a straight line
		return theta
	}
	u := make([]float64, n)
	v := make([]float64, n)
	startOpen(p, u, v)
	buildEqs(p, u, v)
	endOpen(p, theta, u, v)
	return theta
}

func startOpen(p *path, u, v []float64) {
	a, b := p.tension, p.tension
	c := square(a) * 1.0 / square(b)
	u[0] = ((3-a)*c + b) / (a*c + 3 - b)
	v[0] = -u[0] * p.psi(1)
	tracer().Debugf("u.0 = %.4g, v.0 = %.4g", u[0], v[0])
}

func buildEqs(p *path, u, v []float64) {
	for i := 1; i < p.last(); i++ {
		a0, a1 := p.tension, p.tension
		b1, b2 := p.tension, p.tension
		A := a0 / (square(b1) * p.d(i-1))
		B := (3 - a0) / (square(b1) * p.d(i-1))
		C := (3 - b2) / (square(a1) * p.d(i))
		D := b2 / (square(a1) * p.d(i))
		t := B - u[i-1]*A + C
		u[i] = D / t
		v[i] = (-B*p.psi(i) - D*p.psi(i+1) - A*v[i-1]) / t
		tracer().Debugf("u.%d = %.4g, v.%d = %.4g", i, u[i], i, v[i])
	}
}

func endOpen(p *path, theta, u, v []float64) {
	last := p.last()
	a, b := p.tension, p.tension
	c := square(b) * 1.0 / square(a)
	u[last] = (b*c + 3 - a) / ((3-b)*c + a)
	if den := u[last-1] - u[last]; math.Abs(den) > _epsilon {
		theta[last] = v[last-1] / den
	}
	for i := last - 1; i >= 0; i-- {
		theta[i] = v[i] - u[i]*theta[i+1]
		tracer().Debugf("theta.%d = %.4g", i, rad2deg(theta[i]))
	}
}

func setControls(p *path, theta []float64) []Handles {
	handles := make([]Handles, p.last())
	for i := 0; i < p.last(); i++ {
		phi := -p.psi(i+1) - theta[i+1]
		p2, p3 := controlPoints(phi, theta[i], p.tension, p.tension, p.delta(i))
		handles[i] = Handles{
			Post: p.z[i] + p2,
			Pre:  p.z[i+1] - p3,
		}
	}
	return handles
}
