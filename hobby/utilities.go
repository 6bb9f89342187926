package hobby

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/bezedit"
)

const _epsilon = 0.0000001

func hobbyParamsAlphaBeta(theta, phi float64) (float64, float64) {
	constA := 1.41421356     // sqrt(2) -- empiric constants, as explained by J.Hobby
	constB := 0.0625         // 1/16
	constC := 0.38196601125  // (3 - sqrt(5)) / 2
	constCC := 0.61803398875 // 1 - c
	st, ct := math.Sincos(theta) // in-angle
	sf, cf := math.Sincos(phi)   // out-angle
	alpha := constA * (st - constB*sf) * (sf - constB*st) * (ct - cf)
	beta := 1 + constCC*ct + constC*cf
	return alpha, beta
}

func hobbyParamsRhoSigma(alpha, beta float64) (float64, float64) {
	rho := (2 + alpha) / beta
	sigma := (2 - alpha) / beta
	return rho, sigma
}

// Unit-less direction vectors: the chord rotated by theta and by -phi.
func cunitvecs(theta, phi float64, dvec bezedit.Point) (bezedit.Point, bezedit.Point) {
	st, ct := math.Sincos(theta)
	sf, cf := math.Sincos(phi)
	dx, dy := dvec.F()
	uv1 := bezedit.P(dx*ct-dy*st, dx*st+dy*ct)
	uv2 := bezedit.P(dx*cf+dy*sf, -dx*sf+dy*cf)
	return uv1, uv2
}

// Calculate control point offsets between z.i and z.[i+1].
func controlPoints(phi, theta, a, b float64, dvec bezedit.Point) (bezedit.Point, bezedit.Point) {
	alpha, beta := hobbyParamsAlphaBeta(theta, phi)
	rho, sigma := hobbyParamsRhoSigma(alpha, beta)
	uv1, uv2 := cunitvecs(theta, phi, dvec)
	return uv1.Scaled(a / 3 * rho), uv2.Scaled(b / 3 * sigma)
}

// Reduce an angle to fit into -pi .. pi.
func reduceAngle(a float64) float64 {
	if math.Abs(a) > math.Pi {
		if a > 0 {
			a -= 2 * math.Pi
		} else {
			a += 2 * math.Pi
		}
	}
	return a
}

// Return 1/a for a.
func recip(a float64) float64 {
	if math.IsNaN(a) {
		return 1.0
	}
	return 1.0 / a
}

func square(a float64) float64 {
	return a * a
}

func rad2deg(a float64) float64 {
	return a * 180 / math.Pi
}

// AsString returns knots and handles in MetaFont-like notation, e.g.
//
//	(0,0) .. controls (0.0000,27.6142) and (22.3858,50.0000)
//	  .. (50,50)
//
// handles may be nil, in which case only the knots are listed.
func AsString(knots []bezedit.Point, handles []Handles) string {
	var sb strings.Builder
	for i, z := range knots {
		if i > 0 {
			if i-1 < len(handles) {
				sb.WriteString(fmt.Sprintf(" and %s\n  .. ", ptstring(handles[i-1].Pre, true)))
			} else {
				sb.WriteString(" .. ")
			}
		}
		sb.WriteString(ptstring(z, false))
		if i < len(handles) {
			sb.WriteString(fmt.Sprintf(" .. controls %s", ptstring(handles[i].Post, true)))
		}
	}
	return sb.String()
}

func ptstring(p bezedit.Point, iscontrol bool) string {
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f)", round(p.X()), round(p.Y()))
	}
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
