package synchrotron

import "fmt"

// Evaluate returns the spectral flux density at the observing frequency for
// the given regime, in erg / s / cm^2 / Hz. Implements equation 7 (slow
// cooling) and equation 8 (fast cooling) of Sari et al. (1998); the three
// branches are continuous at both break frequencies by construction.
func Evaluate(p Params, r Regime, freq float64) (float64, error) {
	if err := p.validate(); err != nil {
		return 0, err
	}
	if freq <= 0 {
		return 0, fmt.Errorf("%w: frequency %g must be > 0 Hz", ErrInvalidParameter, freq)
	}

	segs, err := segments(p, r)
	if err != nil {
		return 0, err
	}

	switch {
	case freq <= p.BreakLow:
		return segs[0].flux(freq), nil
	case freq < p.BreakHigh:
		return segs[1].flux(freq), nil
	default:
		return segs[2].flux(freq), nil
	}
}
