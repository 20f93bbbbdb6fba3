// Package cosmo converts redshifts to cosmological distances under a flat
// Lambda-CDM cosmology, for placing catalog bursts at physical distances.
package cosmo

import (
	"fmt"
	"math"
)

// speedOfLightKms is c in km/s, keeping H0 in its customary km/s/Mpc units.
const speedOfLightKms = 2.998e5

// Cosmology holds the background parameters of the distance integrals.
type Cosmology struct {
	// H0 is the Hubble constant at z = 0 in km/s/Mpc.
	H0 float64
	// OmegaM is the matter density.
	OmegaM float64
	// OmegaL is the dark-energy density.
	OmegaL float64
	// OmegaK is the curvature density; 0 means flat.
	OmegaK float64
}

// Default returns the fiducial cosmology used by the catalog scripts.
func Default() Cosmology {
	return Cosmology{H0: 71.0, OmegaM: 0.3, OmegaL: 0.7, OmegaK: 0.0}
}

// Distance holds the comoving and luminosity distances in Mpc.
type Distance struct {
	Comoving   float64
	Luminosity float64
}

// e is the dimensionless Hubble parameter E(z).
func (c Cosmology) e(z float64) float64 {
	return math.Sqrt(c.OmegaM*math.Pow(1+z, 3) + c.OmegaK*math.Pow(1+z, 2) + c.OmegaL)
}

// Distances returns the comoving and luminosity distances to redshift z.
// The comoving distance is the line-of-sight integral of c / (H0 E(z')),
// evaluated with composite Simpson; the luminosity distance follows as
// (1 + z) times the comoving distance.
func (c Cosmology) Distances(z float64) (Distance, error) {
	if z < 0 {
		return Distance{}, fmt.Errorf("cosmo: redshift %g must be >= 0", z)
	}
	if c.H0 <= 0 {
		return Distance{}, fmt.Errorf("cosmo: H0 %g must be > 0", c.H0)
	}

	comoving := speedOfLightKms / c.H0 * simpson(func(zp float64) float64 {
		return 1.0 / c.e(zp)
	}, 0, z, 10000)

	return Distance{
		Comoving:   comoving,
		Luminosity: comoving * (1 + z),
	}, nil
}

// simpson is composite Simpson's rule over [a, b] with n panels (n is
// rounded up to even).
func simpson(f func(float64) float64, a, b float64, n int) float64 {
	if a == b {
		return 0
	}
	if n%2 == 1 {
		n++
	}

	h := (b - a) / float64(n)
	sum := f(a) + f(b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 1 {
			sum += 4 * f(x)
		} else {
			sum += 2 * f(x)
		}
	}
	return sum * h / 3
}
