// Package afterglow implements the afterglow exposure model of the
// observing-campaign manager: given a reference observation of a transient
// and the hardware of a follow-up telescope, it predicts the transient's
// magnitude at a later epoch and the exposure length needed to reach a
// desired signal-to-noise ratio.
package afterglow

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrZeroEfficiency indicates a telescope with zero efficiency,
	// which would require an infinite exposure.
	ErrZeroEfficiency = errors.New("afterglow: telescope efficiency is zero")

	// ErrInvalidEpoch indicates an observation time at or before the
	// transient's trigger time, where the temporal power law is
	// undefined.
	ErrInvalidEpoch = errors.New("afterglow: epoch not after trigger")
)

// openFilterEfficiency is the throughput of the open (no-filter)
// configuration that telescope efficiencies are calibrated against.
const openFilterEfficiency = 0.00929728

// referenceSNR is the signal-to-noise ratio at which telescope
// efficiencies are defined.
const referenceSNR = 5.0

// Transient describes a fading source as a temporal and spectral power law.
type Transient struct {
	// TriggerTime is the burst trigger in seconds on the caller's clock.
	TriggerTime float64
	// TemporalIndex is the decay index, typically denoted alpha.
	TemporalIndex float64
	// SpectralIndex is the spectral slope, typically denoted beta.
	SpectralIndex float64
	// EBV is the line-of-sight dust extinction E(B-V).
	EBV float64
}

// RefParams is the reference observation the model extrapolates from.
type RefParams struct {
	Filter Filter
	// Time is seconds since trigger at the reference observation.
	Time float64
	// Magnitude measured at the reference observation.
	Magnitude float64
}

// Model predicts magnitudes and exposure lengths for follow-up
// observations of a transient.
type Model struct {
	Transient Transient
	Hardware  Hardware
	Ref       RefParams
	// DesiredSNR is the target signal-to-noise ratio.
	DesiredSNR float64
	// Correction is an optional multiplicative fudge factor on the
	// exposure length; zero means none.
	Correction float64
}

// SNRDependence returns the exposure scaling for the desired SNR. Noise is
// assumed purely Poisson, so the required exposure grows with SNR squared.
func (m *Model) SNRDependence() float64 {
	return math.Pow(m.DesiredSNR/referenceSNR, 2.0)
}

// HardwareDependence returns the exposure scaling due to filter and
// telescope efficiencies.
func (m *Model) HardwareDependence() (float64, error) {
	if m.Hardware.Telescope.Efficiency == 0 {
		return 0, ErrZeroEfficiency
	}
	return (m.Hardware.Filter.Efficiency / openFilterEfficiency) /
		m.Hardware.Telescope.Efficiency, nil
}

// ZeroPointDependence returns the flux scaling between the observing
// filter's zero point and the reference filter's.
func (m *Model) ZeroPointDependence() float64 {
	return m.Hardware.Filter.ZeroPoint / m.Ref.Filter.ZeroPoint
}

// TemporalDependence returns the fade factor at the given time (seconds on
// the same clock as the trigger time).
func (m *Model) TemporalDependence(t float64) (float64, error) {
	since := t - m.Transient.TriggerTime
	if since <= 0 {
		return 0, fmt.Errorf("%w: %g s", ErrInvalidEpoch, t)
	}
	return math.Pow(since/m.Ref.Time, m.Transient.TemporalIndex), nil
}

// SpectralDependence returns the flux scaling between the observing
// filter's frequency and the reference filter's.
func (m *Model) SpectralDependence() float64 {
	return math.Pow(m.Hardware.Filter.Frequency/m.Ref.Filter.Frequency,
		m.Transient.SpectralIndex)
}

// ExtinctionDependence returns the dust-extinction term in magnitudes for
// the extinguished power-law model, after Cardelli et al. (1989). rv is the
// V-band extinction coefficient, conventionally 3.1.
func (m *Model) ExtinctionDependence(rv float64) float64 {
	x := 1.0 / m.Hardware.Filter.Wavelength(true)
	y := x - 1.82
	var a, b float64

	switch {
	// Infrared
	case 0.3 <= x && x <= 1.1:
		a = 0.574 * math.Pow(x, 1.61)
		b = -0.527 * math.Pow(x, 1.61)

	// Optical / NIR
	case 1.1 < x && x <= 3.3:
		a = 1 + 0.17699*y - 0.50447*math.Pow(y, 2) - 0.02427*math.Pow(y, 3) +
			0.72085*math.Pow(y, 4) + 0.01979*math.Pow(y, 5) -
			0.7753*math.Pow(y, 6) + 0.32999*math.Pow(y, 7)
		b = 1.41338*y + 2.28305*math.Pow(y, 2) + 1.07233*math.Pow(y, 3) -
			5.38434*math.Pow(y, 4) - 0.62251*math.Pow(y, 5) +
			5.3026*math.Pow(y, 6) - 2.09002*math.Pow(y, 7)
	}

	return rv * m.Transient.EBV * (a + b/rv)
}

// Magnitude extrapolates the transient's magnitude to the given time using
// the reference observation and the model dependences.
func (m *Model) Magnitude(t float64) (float64, error) {
	temporal, err := m.TemporalDependence(t)
	if err != nil {
		return 0, err
	}

	return m.Ref.Magnitude -
		2.5*(math.Log10(temporal)+
			math.Log10(m.SpectralDependence())-
			math.Log10(m.ZeroPointDependence())) +
		m.ExtinctionDependence(3.1), nil
}

// ExposureLength returns the exposure in seconds needed to reach the
// desired SNR at the given time.
func (m *Model) ExposureLength(t float64) (float64, error) {
	mag, err := m.Magnitude(t)
	if err != nil {
		return 0, err
	}
	return m.ExposureLengthAt(mag)
}

// ExposureLengthAt returns the exposure in seconds needed to reach the
// desired SNR at a known magnitude.
func (m *Model) ExposureLengthAt(magnitude float64) (float64, error) {
	hardware, err := m.HardwareDependence()
	if err != nil {
		return 0, err
	}

	correction := m.Correction
	if correction == 0 {
		correction = 1.0
	}

	return m.SNRDependence() * hardware *
		math.Pow(10.0, (magnitude-20.0)/2.5) * correction, nil
}
