package harmonica

import (
	"math"

	vec3d "github.com/flywave/go3d/float64/vec3"
)

// cm is the magnetic constant mu_0 / (4 pi) in T m / A.
const cm = 1e-7

// The magnetic field of a uniformly magnetized prism follows from the
// second derivatives of the inverse-distance volume integral, evaluated
// in closed form at the eight prism vertices (Nagy 1966, Blakely 1995).
// Vertex terms use shifted coordinates (vertex minus observation point)
// and alternate sign with vertex parity. Observation points on a prism
// face, edge or vertex resolve to the finite values of safeLog and
// atan2; no extra singularity handling is applied.

// MagneticField returns the three components of the magnetic field of a
// single prism at a single observation point, in tesla. The
// magnetization is given in A/m.
func MagneticField(easting, northing, upward float64, prism Prism, magnetization vec3d.T) (be, bn, bu float64) {
	var uee, unn, uuu, uen, ueu, unu float64
	for i := 0; i < 2; i++ {
		x := prism[i] - easting
		for j := 0; j < 2; j++ {
			y := prism[2+j] - northing
			for k := 0; k < 2; k++ {
				z := prism[4+k] - upward
				r := math.Sqrt(x*x + y*y + z*z)
				s := -1.0
				if (i+j+k)%2 == 1 {
					s = 1.0
				}
				uee -= s * math.Atan2(y*z, x*r)
				unn -= s * math.Atan2(x*z, y*r)
				uuu -= s * math.Atan2(x*y, z*r)
				uen += s * safeLog(z, y, x, r)
				ueu += s * safeLog(y, x, z, r)
				unu += s * safeLog(x, y, z, r)
			}
		}
	}
	me, mn, mu := magnetization[0], magnetization[1], magnetization[2]
	be = cm * (me*uee + mn*uen + mu*ueu)
	bn = cm * (me*uen + mn*unn + mu*unu)
	bu = cm * (me*ueu + mn*unu + mu*uuu)
	return be, bn, bu
}

// MagneticEasting returns the easting component of the magnetic field of
// a single prism at a single observation point, in tesla.
func MagneticEasting(easting, northing, upward float64, prism Prism, magnetization vec3d.T) float64 {
	var uee, uen, ueu float64
	for i := 0; i < 2; i++ {
		x := prism[i] - easting
		for j := 0; j < 2; j++ {
			y := prism[2+j] - northing
			for k := 0; k < 2; k++ {
				z := prism[4+k] - upward
				r := math.Sqrt(x*x + y*y + z*z)
				s := -1.0
				if (i+j+k)%2 == 1 {
					s = 1.0
				}
				uee -= s * math.Atan2(y*z, x*r)
				uen += s * safeLog(z, y, x, r)
				ueu += s * safeLog(y, x, z, r)
			}
		}
	}
	return cm * (magnetization[0]*uee + magnetization[1]*uen + magnetization[2]*ueu)
}

// MagneticNorthing returns the northing component of the magnetic field
// of a single prism at a single observation point, in tesla.
func MagneticNorthing(easting, northing, upward float64, prism Prism, magnetization vec3d.T) float64 {
	var uen, unn, unu float64
	for i := 0; i < 2; i++ {
		x := prism[i] - easting
		for j := 0; j < 2; j++ {
			y := prism[2+j] - northing
			for k := 0; k < 2; k++ {
				z := prism[4+k] - upward
				r := math.Sqrt(x*x + y*y + z*z)
				s := -1.0
				if (i+j+k)%2 == 1 {
					s = 1.0
				}
				unn -= s * math.Atan2(x*z, y*r)
				uen += s * safeLog(z, y, x, r)
				unu += s * safeLog(x, y, z, r)
			}
		}
	}
	return cm * (magnetization[0]*uen + magnetization[1]*unn + magnetization[2]*unu)
}

// MagneticUpward returns the upward component of the magnetic field of a
// single prism at a single observation point, in tesla.
func MagneticUpward(easting, northing, upward float64, prism Prism, magnetization vec3d.T) float64 {
	var ueu, unu, uuu float64
	for i := 0; i < 2; i++ {
		x := prism[i] - easting
		for j := 0; j < 2; j++ {
			y := prism[2+j] - northing
			for k := 0; k < 2; k++ {
				z := prism[4+k] - upward
				r := math.Sqrt(x*x + y*y + z*z)
				s := -1.0
				if (i+j+k)%2 == 1 {
					s = 1.0
				}
				uuu -= s * math.Atan2(x*y, z*r)
				ueu += s * safeLog(y, x, z, r)
				unu += s * safeLog(x, y, z, r)
			}
		}
	}
	return cm * (magnetization[0]*ueu + magnetization[1]*unu + magnetization[2]*uuu)
}

// safeLog evaluates log(x + r) for r = sqrt(x*x + p*p + q*q) without
// losing precision when x is negative and |x| is close to r, using
// log(x + r) = log(p*p + q*q) - log(r - x). On the singular half-axis
// (r == 0 or p == q == 0 with x < 0) it returns 0, which cancels in the
// vertex sums.
func safeLog(x, p, q, r float64) float64 {
	if r == 0 {
		return 0
	}
	if x < 0 {
		rest := p*p + q*q
		if rest == 0 {
			return 0
		}
		return math.Log(rest) - math.Log(r-x)
	}
	return math.Log(x + r)
}
