// Package synchrotron implements the analytical afterglow spectrum of
// Sari, Piran & Narayan (1998), https://arxiv.org/abs/astro-ph/9712005.
//
// The spectrum is a three-segment piecewise power law in frequency whose
// shape depends on the cooling regime (slow or fast). The package provides
// the pointwise spectral flux density (Evaluate) and the exact closed-form
// band-integrated flux (Integrate). The self-absorption regime is ignored
// since it affects neither the optical nor the X-ray radiation of interest.
//
// All functions are pure and safe for concurrent use; a Params value may be
// shared across goroutines.
package synchrotron
