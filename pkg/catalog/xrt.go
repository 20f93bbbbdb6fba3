package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Swift XRT data-mode markers as they appear in light-curve files from
// https://www.swift.ac.uk/xrt_products/.
const (
	markerWT = "WT"
	markerPC = "PC_incbad"
)

// Point is one light-curve sample: time since trigger and source count
// rate, each with 1-sigma errors stored as magnitudes.
type Point struct {
	Time      float64
	TimeLower float64
	TimeUpper float64

	Rate      float64
	RateLower float64
	RateUpper float64
}

// LightCurve is the ordered samples of one XRT data mode.
type LightCurve struct {
	Points []Point
}

// XRT holds a parsed XRT light-curve file, split by data mode. Swift's XRT
// records the same quantities in multiple modes (windowed timing for bright
// phases, photon counting for faint ones).
type XRT struct {
	Event          string
	WindowedTiming LightCurve
	PhotonCounting LightCurve
}

// ParseXRT parses the standard XRT light-curve text format for the named
// event. Mode sections are introduced by "!WT" and "!PC_incbad" marker
// lines; rows starting with READ, NO, or ! are control lines or manually
// excluded data and are skipped.
func ParseXRT(event string, lines []string) (*XRT, error) {
	wtStart, pcStart := -1, -1
	for i, line := range lines {
		if !strings.HasPrefix(line, "!") {
			continue
		}
		switch strings.TrimSpace(strings.TrimPrefix(line, "!")) {
		case markerWT:
			wtStart = i + 1
		case markerPC:
			pcStart = i + 1
		}
	}
	if wtStart < 0 || pcStart < 0 {
		return nil, fmt.Errorf("%w: event %s needs both %s and %s sections",
			ErrMissingMode, event, markerWT, markerPC)
	}

	x := &XRT{Event: event}
	var err error
	if x.WindowedTiming, err = parseMode(lines, wtStart, pcStart); err != nil {
		return nil, fmt.Errorf("event %s %s: %w", event, markerWT, err)
	}
	if x.PhotonCounting, err = parseMode(lines, pcStart, len(lines)); err != nil {
		return nil, fmt.Errorf("event %s %s: %w", event, markerPC, err)
	}
	return x, nil
}

// parseMode parses the rows of one data-mode section.
//
// Column schema: time, time positive error, time negative error, source
// count rate, rate positive error, rate negative error. Negative errors
// are stored in the file with their sign; only the magnitude is kept.
func parseMode(lines []string, start, stop int) (LightCurve, error) {
	var lc LightCurve
	for i := start; i < stop; i++ {
		row := lines[i]
		if row == "" || strings.HasPrefix(row, "READ") ||
			strings.HasPrefix(row, "NO") || strings.HasPrefix(row, "!") {
			continue
		}

		cols := strings.Fields(row)
		if len(cols) < 6 {
			return LightCurve{}, fmt.Errorf("%w: line %d has %d of 6 columns",
				ErrBadRow, i+1, len(cols))
		}

		vals := make([]float64, 6)
		for j := 0; j < 6; j++ {
			v, err := strconv.ParseFloat(cols[j], 64)
			if err != nil {
				return LightCurve{}, fmt.Errorf("%w: line %d field %q", ErrBadRow, i+1, cols[j])
			}
			vals[j] = v
		}

		lc.Points = append(lc.Points, Point{
			Time:      vals[0],
			TimeUpper: math.Abs(vals[1]),
			TimeLower: math.Abs(vals[2]),
			Rate:      vals[3],
			RateUpper: math.Abs(vals[4]),
			RateLower: math.Abs(vals[5]),
		})
	}
	return lc, nil
}
