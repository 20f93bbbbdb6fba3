package synchrotron

import (
	"fmt"
	"math"
)

// segment is one power-law piece of the spectrum, F(nu) = coeff * nu^exponent.
// The coefficients are chosen so that adjacent segments agree exactly at the
// shared break frequency.
type segment struct {
	exponent float64
	coeff    float64
}

// flux returns the spectral flux density at freq, assuming freq lies inside
// the segment's domain.
func (s segment) flux(freq float64) float64 {
	return s.coeff * math.Pow(freq, s.exponent)
}

// integrate returns the definite integral of the segment's power law over
// [lower, upper]. Both bounds must lie inside the segment's domain; the
// caller is responsible for the partitioning that guarantees this.
func (s segment) integrate(lower, upper float64) (float64, error) {
	ep1 := s.exponent + 1
	if ep1 == 0 {
		return 0, fmt.Errorf("%w: power-law index %g integrates to a logarithm",
			ErrDegenerateExponent, s.exponent)
	}
	return s.coeff / ep1 * (math.Pow(upper, ep1) - math.Pow(lower, ep1)), nil
}

// segments returns the regime's three power-law pieces in ascending frequency
// order, split at (BreakLow, BreakHigh). Implements equations 7 and 8 of
// Sari et al. (1998).
func segments(p Params, r Regime) ([3]segment, error) {
	fp, p1, p2 := p.PeakFlux, p.BreakLow, p.BreakHigh
	idx := p.SpectralIndex

	switch r {
	case SlowCooling:
		// p1 = nu_m, p2 = nu_c.
		return [3]segment{
			{exponent: 1.0 / 3.0, coeff: fp * math.Pow(p1, -1.0/3.0)},
			{exponent: -(idx - 1) / 2, coeff: fp * math.Pow(p1, (idx-1)/2)},
			{
				exponent: -idx / 2,
				coeff:    fp * math.Pow(p2/p1, -(idx-1)/2) * math.Pow(p2, idx/2),
			},
		}, nil
	case FastCooling:
		// p1 = nu_c, p2 = nu_m.
		return [3]segment{
			{exponent: 1.0 / 3.0, coeff: fp * math.Pow(p1, -1.0/3.0)},
			{exponent: -1.0 / 2.0, coeff: fp * math.Sqrt(p1)},
			{
				exponent: -idx / 2,
				coeff:    fp * math.Pow(p2/p1, -1.0/2.0) * math.Pow(p2, idx/2),
			},
		}, nil
	default:
		return [3]segment{}, fmt.Errorf("%w: unknown regime %d", ErrInvalidParameter, int(r))
	}
}
