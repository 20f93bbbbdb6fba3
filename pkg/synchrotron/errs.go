package synchrotron

import "errors"

var (
	// ErrInvalidParameter indicates a non-positive model parameter,
	// a non-positive query frequency, or break frequencies stored out
	// of ascending order for the chosen regime.
	ErrInvalidParameter = errors.New("synchrotron: invalid parameter")

	// ErrInvalidInterval indicates an integration band with inverted
	// bounds or a non-positive bound.
	ErrInvalidInterval = errors.New("synchrotron: invalid interval")

	// ErrDegenerateExponent indicates a spectral index for which a
	// segment's power law integrates to a logarithm rather than the
	// closed form implemented here (exponent+1 == 0).
	ErrDegenerateExponent = errors.New("synchrotron: degenerate exponent")
)
