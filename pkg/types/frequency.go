package types

import "fmt"

// planckKeVs is Planck's constant in keV seconds.
const planckKeVs = 4.135667696e-18

// Frequency is a float64 wrapper representing an observing frequency in Hz.
type Frequency float64

// FromKeV returns the frequency of a photon with the given energy in keV,
// the unit used by X-ray instruments such as Swift's XRT.
func FromKeV(keV float64) Frequency {
	return Frequency(keV / planckKeVs)
}

// KeV returns the photon energy in keV.
func (f Frequency) KeV() float64 { return float64(f) * planckKeVs }

// Hz returns the raw frequency value.
func (f Frequency) Hz() float64 { return float64(f) }

// Humanized returns a human-readable string with automatic unit
// (Hz, kHz, MHz, GHz, THz, PHz, EHz).
func (f Frequency) Humanized() string {
	v := float64(f)
	switch {
	case v >= 1e18:
		return fmt.Sprintf("%.3f EHz", v/1e18)
	case v >= 1e15:
		return fmt.Sprintf("%.3f PHz", v/1e15)
	case v >= 1e12:
		return fmt.Sprintf("%.3f THz", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("%.3f GHz", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.3f MHz", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.3f kHz", v/1e3)
	default:
		return fmt.Sprintf("%.3f Hz", v)
	}
}
