package catalog

import "errors"

var (
	// ErrBadRow indicates a table row with too few columns or an
	// unparseable numeric field.
	ErrBadRow = errors.New("catalog: malformed row")

	// ErrMissingMode indicates an XRT light-curve file without a
	// windowed-timing or photon-counting section marker.
	ErrMissingMode = errors.New("catalog: missing data mode")
)
