package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/astrodyl/afterglow/pkg/bounded"
)

// Event is one gamma-ray burst from the Liao et al. (2024) jet-structure
// tables: a viewing angle and a jet opening angle (degrees, asymmetric
// bounds), their ratio, and the off-axis classification confidence.
type Event struct {
	ID      string
	Viewing bounded.Value
	Opening bounded.Value
	// Ratio is Viewing / Opening with bounds propagated in quadrature;
	// a ratio above 1 places the line of sight outside the jet cone.
	Ratio             bounded.Value
	OffAxisConfidence float64
}

// Liao table columns (tab-separated).
const (
	colID         = 0
	colViewing    = 3
	colOpening    = 4
	colConfidence = 5
	minColumns    = 6
)

// ParseEvent parses one tab-separated table row.
func ParseEvent(line string) (Event, error) {
	cols := strings.Split(line, "\t")
	if len(cols) < minColumns {
		return Event{}, fmt.Errorf("%w: %d of %d columns", ErrBadRow, len(cols), minColumns)
	}

	viewing, err := parseAngle(cols[colViewing])
	if err != nil {
		return Event{}, fmt.Errorf("viewing angle: %w", err)
	}
	opening, err := parseAngle(cols[colOpening])
	if err != nil {
		return Event{}, fmt.Errorf("opening angle: %w", err)
	}
	confidence, err := strconv.ParseFloat(strings.TrimSpace(cols[colConfidence]), 64)
	if err != nil {
		return Event{}, fmt.Errorf("%w: confidence %q", ErrBadRow, cols[colConfidence])
	}

	ratio, err := viewing.Div(opening)
	if err != nil {
		return Event{}, fmt.Errorf("%w: angle ratio: %v", ErrBadRow, err)
	}

	return Event{
		ID:                strings.TrimSpace(cols[colID]),
		Viewing:           viewing,
		Opening:           opening,
		Ratio:             ratio,
		OffAxisConfidence: confidence,
	}, nil
}

// ParseEvents parses a whole table, skipping lines that start with the
// comment character and empty lines.
func ParseEvents(lines []string, comment string) ([]Event, error) {
	var events []Event
	for i, line := range lines {
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, comment) {
			continue
		}
		ev, err := ParseEvent(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// parseAngle parses an angle field of the form "3.2 +0.4 -0.1" into a
// bounded value. The sign conventions of the table (explicit plus on the
// upper bound, minus on the lower) are normalized away.
func parseAngle(field string) (bounded.Value, error) {
	parts := strings.Fields(strings.ReplaceAll(field, "+", ""))
	if len(parts) != 3 {
		return bounded.Value{}, fmt.Errorf("%w: angle %q", ErrBadRow, field)
	}

	vals := make([]float64, 3)
	for i, s := range parts {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return bounded.Value{}, fmt.Errorf("%w: angle component %q", ErrBadRow, s)
		}
		vals[i] = v
	}
	return bounded.New(vals[0], vals[2], vals[1]), nil
}
