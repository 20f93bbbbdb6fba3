package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/astrodyl/afterglow/pkg/afterglow"
	"github.com/astrodyl/afterglow/pkg/catalog"
	"github.com/astrodyl/afterglow/pkg/cosmo"
	"github.com/astrodyl/afterglow/pkg/synchrotron"
	"github.com/astrodyl/afterglow/pkg/types"
)

func main() {
	root := &cobra.Command{
		Use:   "afterglow",
		Short: "GRB afterglow spectral modeling and observing-campaign tool",
		Long: `The afterglow tool models gamma-ray-burst afterglows with the analytical
synchrotron framework of Sari, Piran & Narayan (1998): pointwise spectra,
exact band-integrated fluxes, follow-up magnitudes and exposure lengths,
and GRB catalog utilities.

Examples:
  afterglow spectrum --peak 1.0 --break-low 1e14 --break-high 1e16 --index 2.5
  afterglow band --lower 0.3 --upper 10 --kev --regime fast
  afterglow exposure --hardware hardware.yaml --filter R --telescope PROMPT-5
  afterglow grbs table.txt --min-confidence 0.9
  afterglow distance 1.5`,
	}

	root.AddCommand(spectrumCmd(), bandCmd(), exposureCmd(), grbsCmd(), distanceCmd())

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// modelOpts are the spectral parameters shared by the spectrum and band
// subcommands. Defaults describe a typical slow-cooling optical epoch.
type modelOpts struct {
	peak      float64
	breakLow  float64
	breakHigh float64
	index     float64
	regime    string
}

func (o *modelOpts) bind(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&o.peak, "peak", 1.0, "peak flux density (erg/s/cm^2/Hz)")
	cmd.Flags().Float64Var(&o.breakLow, "break-low", 1e14, "lower break frequency (Hz)")
	cmd.Flags().Float64Var(&o.breakHigh, "break-high", 1e16, "upper break frequency (Hz)")
	cmd.Flags().Float64Var(&o.index, "index", 2.5, "electron distribution index p")
	cmd.Flags().StringVar(&o.regime, "regime", "slow", "cooling regime: slow or fast")
}

func (o *modelOpts) build() (synchrotron.Params, synchrotron.Regime, error) {
	params, err := synchrotron.NewParams(o.peak, o.breakLow, o.breakHigh, o.index)
	if err != nil {
		return synchrotron.Params{}, 0, err
	}

	switch o.regime {
	case "slow":
		return params, synchrotron.SlowCooling, nil
	case "fast":
		return params, synchrotron.FastCooling, nil
	default:
		return synchrotron.Params{}, 0, fmt.Errorf("unknown regime %q (want slow or fast)", o.regime)
	}
}

type spectrumRow struct {
	Frequency float64 `json:"frequency_hz"`
	Flux      float64 `json:"flux_density"`
}

func spectrumCmd() *cobra.Command {
	var (
		o        modelOpts
		from, to float64
		points   int
		csvPath  string
		jsonPath string
	)

	cmd := &cobra.Command{
		Use:   "spectrum",
		Short: "Sample the spectral flux density over a log-spaced frequency grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, regime, err := o.build()
			if err != nil {
				return err
			}
			if from <= 0 || to <= 0 || from >= to {
				return fmt.Errorf("frequency grid [%g, %g] must be positive and ascending", from, to)
			}
			if points < 2 {
				return fmt.Errorf("points must be >= 2")
			}

			rows := make([]spectrumRow, 0, points)
			step := math.Log10(to/from) / float64(points-1)
			for i := 0; i < points; i++ {
				freq := from * math.Pow(10, float64(i)*step)
				flux, err := synchrotron.Evaluate(params, regime, freq)
				if err != nil {
					return err
				}
				rows = append(rows, spectrumRow{Frequency: freq, Flux: flux})
			}

			tw := newTable()
			fmt.Fprintln(tw, "FREQUENCY\tENERGY (keV)\tFLUX (erg/s/cm^2/Hz)")
			for _, r := range rows {
				f := types.Frequency(r.Frequency)
				fmt.Fprintf(tw, "%s\t%.4g\t%.6g\n", f.Humanized(), f.KeV(), r.Flux)
			}
			tw.Flush()

			if csvPath != "" {
				header := []string{"frequency_hz", "flux_density"}
				err := writeCSV(csvPath, header, rows, func(r spectrumRow) []string {
					return []string{fmtFloat(r.Frequency), fmtFloat(r.Flux)}
				})
				if err != nil {
					return err
				}
			}
			if jsonPath != "" {
				if err := writeJSON(jsonPath, rows); err != nil {
					return err
				}
			}
			return nil
		},
	}

	o.bind(cmd)
	cmd.Flags().Float64Var(&from, "from", 1e12, "grid start frequency (Hz)")
	cmd.Flags().Float64Var(&to, "to", 1e18, "grid end frequency (Hz)")
	cmd.Flags().IntVar(&points, "points", 61, "number of grid points")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write the sampled spectrum to a CSV file")
	cmd.Flags().StringVar(&jsonPath, "json", "", "write the sampled spectrum to a JSON file")
	return cmd
}

func bandCmd() *cobra.Command {
	var (
		o            modelOpts
		lower, upper float64
		keV          bool
	)

	cmd := &cobra.Command{
		Use:   "band",
		Short: "Integrate the spectrum over a frequency band in closed form",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, regime, err := o.build()
			if err != nil {
				return err
			}

			band := synchrotron.Band{Lower: lower, Upper: upper}
			if keV {
				band.Lower = types.FromKeV(lower).Hz()
				band.Upper = types.FromKeV(upper).Hz()
			}

			flux, err := synchrotron.Integrate(params, regime, band)
			if err != nil {
				return err
			}

			fmt.Printf("regime:          %s\n", regime)
			fmt.Printf("band:            %s - %s\n",
				types.Frequency(band.Lower).Humanized(), types.Frequency(band.Upper).Humanized())
			fmt.Printf("integrated flux: %.6g erg/s/cm^2\n", flux)
			return nil
		},
	}

	o.bind(cmd)
	cmd.Flags().Float64Var(&lower, "lower", 7.25e16, "lower band edge")
	cmd.Flags().Float64Var(&upper, "upper", 2.42e18, "upper band edge")
	cmd.Flags().BoolVar(&keV, "kev", false, "interpret band edges as keV instead of Hz")
	return cmd
}

type exposureRow struct {
	Time      float64 `json:"seconds_since_trigger"`
	Magnitude float64 `json:"magnitude"`
	Exposure  float64 `json:"exposure_s"`
}

func exposureCmd() *cobra.Command {
	var (
		hardwarePath      string
		filterName        string
		telescopeName     string
		refFilterName     string
		refTime, refMag   float64
		alpha, beta, ebv  float64
		snr, correction   float64
		start, stop       float64
		steps             int
		csvPath, jsonPath string
	)

	cmd := &cobra.Command{
		Use:   "exposure",
		Short: "Model follow-up magnitudes and exposure lengths for a transient",
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, err := afterglow.LoadDefinitions(hardwarePath)
			if err != nil {
				return err
			}
			hw, err := defs.Hardware(filterName, telescopeName)
			if err != nil {
				return err
			}
			refFilter, err := defs.Filter(refFilterName)
			if err != nil {
				return err
			}
			if start <= 0 || stop <= start {
				return fmt.Errorf("time range [%g, %g] must be positive and ascending", start, stop)
			}
			if steps < 2 {
				return fmt.Errorf("steps must be >= 2")
			}

			model := &afterglow.Model{
				Transient: afterglow.Transient{
					TriggerTime:   0,
					TemporalIndex: alpha,
					SpectralIndex: beta,
					EBV:           ebv,
				},
				Hardware:   hw,
				Ref:        afterglow.RefParams{Filter: refFilter, Time: refTime, Magnitude: refMag},
				DesiredSNR: snr,
				Correction: correction,
			}

			rows := make([]exposureRow, 0, steps)
			step := math.Log10(stop/start) / float64(steps-1)
			for i := 0; i < steps; i++ {
				t := start * math.Pow(10, float64(i)*step)
				mag, err := model.Magnitude(t)
				if err != nil {
					return err
				}
				exp, err := model.ExposureLengthAt(mag)
				if err != nil {
					return err
				}
				rows = append(rows, exposureRow{Time: t, Magnitude: mag, Exposure: exp})
			}

			tw := newTable()
			fmt.Fprintln(tw, "T+ (s)\tMAGNITUDE\tEXPOSURE (s)")
			for _, r := range rows {
				fmt.Fprintf(tw, "%.0f\t%.3f\t%.1f\n", r.Time, r.Magnitude, r.Exposure)
			}
			tw.Flush()

			if csvPath != "" {
				header := []string{"seconds_since_trigger", "magnitude", "exposure_s"}
				err := writeCSV(csvPath, header, rows, func(r exposureRow) []string {
					return []string{fmtFloat(r.Time), fmtFloat(r.Magnitude), fmtFloat(r.Exposure)}
				})
				if err != nil {
					return err
				}
			}
			if jsonPath != "" {
				if err := writeJSON(jsonPath, rows); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&hardwarePath, "hardware", "hardware.yaml", "hardware definitions YAML file")
	cmd.Flags().StringVar(&filterName, "filter", "R", "observing filter name")
	cmd.Flags().StringVar(&telescopeName, "telescope", "PROMPT-5", "observing telescope name")
	cmd.Flags().StringVar(&refFilterName, "ref-filter", "V", "reference observation filter name")
	cmd.Flags().Float64Var(&refTime, "ref-time", 600, "reference observation time since trigger (s)")
	cmd.Flags().Float64Var(&refMag, "ref-mag", 17.0, "reference observation magnitude")
	cmd.Flags().Float64Var(&alpha, "alpha", -1.1, "temporal decay index")
	cmd.Flags().Float64Var(&beta, "beta", -0.8, "spectral index")
	cmd.Flags().Float64Var(&ebv, "ebv", 0.0, "dust extinction E(B-V)")
	cmd.Flags().Float64Var(&snr, "snr", 10.0, "desired signal-to-noise ratio")
	cmd.Flags().Float64Var(&correction, "correction", 0, "exposure correction factor (0 = none)")
	cmd.Flags().Float64Var(&start, "start", 600, "first epoch, seconds since trigger")
	cmd.Flags().Float64Var(&stop, "stop", 86400, "last epoch, seconds since trigger")
	cmd.Flags().IntVar(&steps, "steps", 10, "number of epochs on a log-spaced grid")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write the timeline to a CSV file")
	cmd.Flags().StringVar(&jsonPath, "json", "", "write the timeline to a JSON file")
	return cmd
}

func grbsCmd() *cobra.Command {
	var (
		comment       string
		minConfidence float64
		offAxisOnly   bool
	)

	cmd := &cobra.Command{
		Use:   "grbs <table>",
		Short: "Parse a Liao et al. (2024) jet-structure table and list its bursts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := catalog.ReadLines(args[0])
			if err != nil {
				return err
			}
			events, err := catalog.ParseEvents(lines, comment)
			if err != nil {
				return err
			}

			kept := 0
			tw := newTable()
			fmt.Fprintln(tw, "GRB\tVIEWING (deg)\tOPENING (deg)\tRATIO\tCONFIDENCE")
			for _, ev := range events {
				if ev.OffAxisConfidence < minConfidence {
					continue
				}
				if offAxisOnly && ev.Ratio.Val <= 1 {
					continue
				}
				kept++
				fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%.2f\n",
					ev.ID, ev.Viewing, ev.Opening, ev.Ratio.Val, ev.OffAxisConfidence)
			}
			tw.Flush()

			fmt.Printf("\n%d of %d bursts pass the cuts\n", kept, len(events))
			return nil
		},
	}

	cmd.Flags().StringVar(&comment, "comment", "#", "comment character in the table")
	cmd.Flags().Float64Var(&minConfidence, "min-confidence", 0, "minimum off-axis confidence to keep")
	cmd.Flags().BoolVar(&offAxisOnly, "off-axis", false, "keep only bursts viewed outside the jet cone")
	return cmd
}

func distanceCmd() *cobra.Command {
	var h0, omegaM, omegaL, omegaK float64

	cmd := &cobra.Command{
		Use:   "distance <redshift>",
		Short: "Convert a redshift to comoving and luminosity distances",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("redshift %q: %w", args[0], err)
			}

			c := cosmo.Cosmology{H0: h0, OmegaM: omegaM, OmegaL: omegaL, OmegaK: omegaK}
			d, err := c.Distances(z)
			if err != nil {
				return err
			}

			fmt.Printf("comoving distance at z = %g:    %.2f Mpc\n", z, d.Comoving)
			fmt.Printf("luminosity distance at z = %g:  %.2f Mpc\n", z, d.Luminosity)
			return nil
		},
	}

	cmd.Flags().Float64Var(&h0, "h0", 71.0, "Hubble constant at z = 0 (km/s/Mpc)")
	cmd.Flags().Float64Var(&omegaM, "omega-m", 0.3, "matter density")
	cmd.Flags().Float64Var(&omegaL, "omega-l", 0.7, "dark-energy density")
	cmd.Flags().Float64Var(&omegaK, "omega-k", 0.0, "curvature density (0 = flat)")
	return cmd
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeCSV[T any](path string, header []string, rows []T, record func(T) []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.Write(record(r)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
