package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequency_Humanized(t *testing.T) {
	cases := []struct {
		f    Frequency
		want string
	}{
		{450, "450.000 Hz"},
		{2.5e3, "2.500 kHz"},
		{9.1e7, "91.000 MHz"},
		{1.4e9, "1.400 GHz"},
		{5.45e14, "545.000 THz"},
		{1e16, "10.000 PHz"},
		{2.42e18, "2.420 EHz"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.f.Humanized())
	}
}

func TestFrequency_KeVRoundTrip(t *testing.T) {
	// Soft end of the XRT band.
	f := FromKeV(0.3)
	assert.InEpsilon(t, 7.254e16, f.Hz(), 1e-3)
	assert.InEpsilon(t, 0.3, f.KeV(), 1e-12)

	// Hard end.
	assert.InEpsilon(t, 2.418e18, FromKeV(10).Hz(), 1e-3)
}
