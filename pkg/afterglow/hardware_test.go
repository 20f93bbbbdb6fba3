package afterglow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hardwareYAML = `filters:
  - name: V
    frequency: 5.45e14
    efficiency: 0.00106
    zero_point: 3636.0
  - name: R
    frequency: 4.68e14
    efficiency: 0.00142
    zero_point: 3064.0
telescopes:
  - name: PROMPT-5
    efficiency: 0.8
  - name: PROMPT-6
    efficiency: 0.75
`

func writeDefinitions(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hardware.yaml")
	require.NoError(t, os.WriteFile(path, []byte(hardwareYAML), 0o644))
	return path
}

func TestLoadDefinitions(t *testing.T) {
	defs, err := LoadDefinitions(writeDefinitions(t))
	require.NoError(t, err)

	require.Len(t, defs.Filters, 2)
	require.Len(t, defs.Telescopes, 2)

	f, err := defs.Filter("R")
	require.NoError(t, err)
	assert.InDelta(t, 4.68e14, f.Frequency, 1e2)
	assert.InDelta(t, 3064.0, f.ZeroPoint, 1e-9)

	_, err = defs.Filter("K")
	require.Error(t, err)

	hw, err := defs.Hardware("V", "PROMPT-6")
	require.NoError(t, err)
	assert.Equal(t, "V", hw.Filter.Name)
	assert.InDelta(t, 0.75, hw.Telescope.Efficiency, 1e-12)

	_, err = defs.Hardware("V", "Hubble")
	require.Error(t, err)
}

func TestLoadDefinitions_BadFile(t *testing.T) {
	_, err := LoadDefinitions(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("filters: {not a list"), 0o644))
	_, err = LoadDefinitions(path)
	require.Error(t, err)
}

func TestFilter_Wavelength(t *testing.T) {
	v := Filter{Name: "V", Frequency: 5.45e14}

	assert.InDelta(t, 5.501e-7, v.Wavelength(false), 1e-10)
	assert.InDelta(t, 0.5501, v.Wavelength(true), 1e-4)
}
