// Package obstime represents observation timestamps as Modified Julian
// Dates, the time scale used throughout GRB catalogs and XRT products.
package obstime

import (
	"fmt"
	"math"
	"time"
)

// layout is the UTC timestamp format used by the catalog files,
// e.g. "2009-06-18 08:28:29.0".
const layout = "2006-01-02 15:04:05.0"

// epoch is the MJD zero point: 1858-11-17 00:00:00 UTC.
var epoch = time.Date(1858, time.November, 17, 0, 0, 0, 0, time.UTC)

// Time is an observation timestamp backed by a Modified Julian Date.
type Time struct {
	mjd float64
}

// FromMJD returns the Time for a Modified Julian Date.
func FromMJD(mjd float64) Time {
	return Time{mjd: mjd}
}

// FromUTC converts a wall-clock time to an observation Time.
func FromUTC(t time.Time) Time {
	return Time{mjd: t.UTC().Sub(epoch).Seconds() / 86400.0}
}

// ParseUTC parses a catalog timestamp like "2009-06-18 08:28:29.0".
func ParseUTC(s string) (Time, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return Time{}, fmt.Errorf("obstime: parse %q: %w", s, err)
	}
	return FromUTC(t), nil
}

// MJD returns the Modified Julian Date.
func (t Time) MJD() float64 { return t.mjd }

// UTC returns the wall-clock time corresponding to the MJD.
func (t Time) UTC() time.Time {
	return epoch.Add(time.Duration(t.mjd * 86400.0 * float64(time.Second)))
}

// Sub returns t - other in days, rounded to 5 decimal places (a bit under
// one second), matching the catalog precision.
func (t Time) Sub(other Time) float64 {
	return math.Round((t.mjd-other.mjd)*1e5) / 1e5
}

func (t Time) String() string {
	return fmt.Sprintf("MJD %.5f", t.mjd)
}
