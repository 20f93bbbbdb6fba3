package synchrotron

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// simpsonLog integrates f over [lower, upper] with composite Simpson in
// log-frequency space. The integrand must be smooth over the interval, so
// callers split at the break frequencies first. Test-only cross-check; the
// production path is closed-form.
func simpsonLog(f func(float64) float64, lower, upper float64, n int) float64 {
	a, b := math.Log(lower), math.Log(upper)
	h := (b - a) / float64(n)

	g := func(u float64) float64 {
		nu := math.Exp(u)
		return f(nu) * nu
	}

	sum := g(a) + g(b)
	for i := 1; i < n; i++ {
		u := a + float64(i)*h
		if i%2 == 1 {
			sum += 4 * g(u)
		} else {
			sum += 2 * g(u)
		}
	}
	return sum * h / 3
}

// numericIntegral cross-checks Integrate by summing Simpson panels split at
// the break frequencies.
func numericIntegral(t *testing.T, p Params, r Regime, lower, upper float64) float64 {
	t.Helper()

	f := func(nu float64) float64 {
		v, err := Evaluate(p, r, nu)
		require.NoError(t, err)
		return v
	}

	edges := []float64{lower}
	for _, brk := range []float64{p.BreakLow, p.BreakHigh} {
		if lower < brk && brk < upper {
			edges = append(edges, brk)
		}
	}
	edges = append(edges, upper)

	var total float64
	for i := 0; i+1 < len(edges); i++ {
		total += simpsonLog(f, edges[i], edges[i+1], 4096)
	}
	return total
}

func TestIntegrate_SingleSegmentBands(t *testing.T) {
	p := slowParams(t)

	cases := []struct {
		name string
		band Band
	}{
		{"below both breaks", Band{1e12, 1e13}},
		{"between breaks", Band{3e14, 3e15}},
		{"above both breaks", Band{1e17, 1e18}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Integrate(p, SlowCooling, tc.band)
			require.NoError(t, err)
			want := numericIntegral(t, p, SlowCooling, tc.band.Lower, tc.band.Upper)
			assert.InEpsilon(t, want, got, 1e-8)
		})
	}
}

func TestIntegrate_SpansAllThreeSegments(t *testing.T) {
	for _, regime := range []Regime{SlowCooling, FastCooling} {
		p := slowParams(t)
		band := Band{1e12, 1e18}

		got, err := Integrate(p, regime, band)
		require.NoError(t, err)

		// Must equal the sum of the per-segment pieces ...
		var sum float64
		for _, piece := range []Band{{1e12, 1e14}, {1e14, 1e16}, {1e16, 1e18}} {
			part, err := Integrate(p, regime, piece)
			require.NoError(t, err)
			sum += part
		}
		assert.InEpsilon(t, sum, got, 1e-12, "%s segment sum", regime)

		// ... and the high-precision numeric integral of the same spectrum.
		want := numericIntegral(t, p, regime, band.Lower, band.Upper)
		assert.InEpsilon(t, want, got, 1e-8, "%s numeric cross-check", regime)
	}
}

func TestIntegrate_AdditivityAtSplitPoints(t *testing.T) {
	p := slowParams(t)
	band := Band{1e13, 1e17}

	whole, err := Integrate(p, SlowCooling, band)
	require.NoError(t, err)

	// Includes both break frequencies as split points.
	splits := []float64{2e13, 1e14, 7e14, 1e16, 5e16}
	for _, m := range splits {
		left, err := Integrate(p, SlowCooling, Band{band.Lower, m})
		require.NoError(t, err)
		right, err := Integrate(p, SlowCooling, Band{m, band.Upper})
		require.NoError(t, err)

		assert.InEpsilon(t, whole, left+right, 1e-12, "split at %g Hz", m)
	}
}

func TestIntegrate_FastCooling_StraddlesLowerBreakOnly(t *testing.T) {
	p := fastParams(t) // nu_c = 1e14 Hz, nu_m = 1e16 Hz

	got, err := Integrate(p, FastCooling, Band{1e13, 1e15})
	require.NoError(t, err)

	below, err := Integrate(p, FastCooling, Band{1e13, 1e14})
	require.NoError(t, err)
	above, err := Integrate(p, FastCooling, Band{1e14, 1e15})
	require.NoError(t, err)

	assert.InEpsilon(t, below+above, got, 1e-12)

	want := numericIntegral(t, p, FastCooling, 1e13, 1e15)
	assert.InEpsilon(t, want, got, 1e-8)
}

func TestIntegrate_ZeroWidthBand(t *testing.T) {
	p := slowParams(t)

	for _, x := range []float64{1e12, 1e14, 5e15, 1e16, 1e18} {
		got, err := Integrate(p, SlowCooling, Band{x, x})
		require.NoError(t, err)
		assert.Zero(t, got, "at %g Hz", x)
	}
}

func TestIntegrate_PeakFluxScalesLinearly(t *testing.T) {
	p := slowParams(t)
	doubled := p
	doubled.PeakFlux *= 2

	one, err := Integrate(p, SlowCooling, Band{1e12, 1e18})
	require.NoError(t, err)
	two, err := Integrate(doubled, SlowCooling, Band{1e12, 1e18})
	require.NoError(t, err)

	assert.InEpsilon(t, 2*one, two, 1e-12)
}

// TestIntegrate_MatchesDerivativeOfEvaluate checks the fundamental theorem
// of calculus: the integral over a narrow band divided by its width must
// approach the pointwise flux density. This pins the middle-segment exponent
// to equation 7 of Sari et al. (1998); the evaluator and the integrator
// cannot drift apart without tripping it.
func TestIntegrate_MatchesDerivativeOfEvaluate(t *testing.T) {
	for _, regime := range []Regime{SlowCooling, FastCooling} {
		p := slowParams(t)

		for _, nu := range []float64{3e12, 2e14, 8e15, 4e16, 2e17} {
			const h = 1e-6
			lo, hi := nu*(1-h), nu*(1+h)

			area, err := Integrate(p, regime, Band{lo, hi})
			require.NoError(t, err)
			point, err := Evaluate(p, regime, nu)
			require.NoError(t, err)

			assert.InEpsilon(t, point, area/(hi-lo), 1e-6,
				"%s derivative at %g Hz", regime, nu)
		}
	}
}

func TestIntegrate_DegenerateExponent(t *testing.T) {
	// p = 2 collapses the high-frequency segment's integrand to 1/nu.
	p, err := NewParams(1.0, 1e14, 1e16, 2.0)
	require.NoError(t, err)
	_, err = Integrate(p, SlowCooling, Band{1e17, 1e18})
	require.ErrorIs(t, err, ErrDegenerateExponent)

	// p = 3 does the same to the slow-cooling middle segment.
	p, err = NewParams(1.0, 1e14, 1e16, 3.0)
	require.NoError(t, err)
	_, err = Integrate(p, SlowCooling, Band{3e14, 3e15})
	require.ErrorIs(t, err, ErrDegenerateExponent)

	// Fast cooling's middle segment is a fixed -1/2 law, so p = 3 only
	// matters above nu_m there.
	_, err = Integrate(p, FastCooling, Band{3e14, 3e15})
	require.NoError(t, err)
}

func TestIntegrate_InvalidIntervals(t *testing.T) {
	p := slowParams(t)

	_, err := Integrate(p, SlowCooling, Band{10, 5})
	require.ErrorIs(t, err, ErrInvalidInterval)

	_, err = Integrate(p, SlowCooling, Band{0, 1e15})
	require.ErrorIs(t, err, ErrInvalidInterval)

	_, err = Integrate(p, SlowCooling, Band{-1e14, 1e15})
	require.ErrorIs(t, err, ErrInvalidInterval)
}

func TestPartition_SubBandAssignment(t *testing.T) {
	const b1, b2 = 1e14, 1e16

	cases := []struct {
		name   string
		lo, hi float64
		want   []subBand
	}{
		{"inside segment 1", 1e12, 1e13, []subBand{{1e12, 1e13, 0}}},
		{"inside segment 2", 3e14, 3e15, []subBand{{3e14, 3e15, 1}}},
		{"inside segment 3", 1e17, 1e18, []subBand{{1e17, 1e18, 2}}},
		{"straddles first break", 1e13, 1e15, []subBand{{1e13, b1, 0}, {b1, 1e15, 1}}},
		{"straddles second break", 1e15, 1e17, []subBand{{1e15, b2, 1}, {b2, 1e17, 2}}},
		{"straddles both", 1e13, 1e17, []subBand{{1e13, b1, 0}, {b1, b2, 1}, {b2, 1e17, 2}}},
		{"starts on first break", b1, 1e15, []subBand{{b1, 1e15, 1}}},
		{"ends on second break", 1e15, b2, []subBand{{1e15, b2, 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, partition(tc.lo, tc.hi, b1, b2))
		})
	}
}
