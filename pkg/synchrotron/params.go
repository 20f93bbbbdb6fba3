package synchrotron

import "fmt"

// Regime selects which ordering of the characteristic break frequencies
// applies and, with it, which three-segment spectral shape.
type Regime int

const (
	// SlowCooling orders the breaks as synchrotron < cooling
	// (BreakLow = nu_m, BreakHigh = nu_c).
	SlowCooling Regime = iota
	// FastCooling orders the breaks as cooling < synchrotron
	// (BreakLow = nu_c, BreakHigh = nu_m).
	FastCooling
)

func (r Regime) String() string {
	switch r {
	case SlowCooling:
		return "slow-cooling"
	case FastCooling:
		return "fast-cooling"
	default:
		return fmt.Sprintf("Regime(%d)", int(r))
	}
}

// Params bundles the characteristic break frequencies, peak flux, and
// spectral index describing one epoch of the afterglow evolution.
// Units:
//   - PeakFlux: erg / s / cm^2 / Hz
//   - BreakLow, BreakHigh: Hz, ascending; which physical break each slot
//     holds depends on the Regime and is never reordered here
//   - SpectralIndex: dimensionless electron distribution index p
type Params struct {
	PeakFlux      float64
	BreakLow      float64
	BreakHigh     float64
	SpectralIndex float64
}

// NewParams validates and returns a parameter bundle. The peak flux and
// both break frequencies must be positive and the breaks must already be
// in ascending order for the caller's regime.
func NewParams(peakFlux, breakLow, breakHigh, spectralIndex float64) (Params, error) {
	p := Params{
		PeakFlux:      peakFlux,
		BreakLow:      breakLow,
		BreakHigh:     breakHigh,
		SpectralIndex: spectralIndex,
	}
	if err := p.validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

func (p Params) validate() error {
	if p.PeakFlux <= 0 {
		return fmt.Errorf("%w: peak flux %g must be > 0", ErrInvalidParameter, p.PeakFlux)
	}
	if p.BreakLow <= 0 || p.BreakHigh <= 0 {
		return fmt.Errorf("%w: break frequencies (%g, %g) must be > 0 Hz",
			ErrInvalidParameter, p.BreakLow, p.BreakHigh)
	}
	if p.BreakLow >= p.BreakHigh {
		return fmt.Errorf("%w: break frequencies (%g, %g) must be ascending",
			ErrInvalidParameter, p.BreakLow, p.BreakHigh)
	}
	return nil
}

// Band is a closed frequency interval [Lower, Upper] in Hz.
type Band struct {
	Lower float64
	Upper float64
}

func (b Band) validate() error {
	if b.Lower <= 0 || b.Upper <= 0 {
		return fmt.Errorf("%w: bounds (%g, %g) must be > 0 Hz",
			ErrInvalidInterval, b.Lower, b.Upper)
	}
	if b.Lower > b.Upper {
		return fmt.Errorf("%w: bounds (%g, %g) are in reverse order",
			ErrInvalidInterval, b.Lower, b.Upper)
	}
	return nil
}
