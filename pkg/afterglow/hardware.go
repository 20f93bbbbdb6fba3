package afterglow

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Filter is an optical filter mounted on a telescope.
type Filter struct {
	Name string `yaml:"name"`
	// Frequency is the filter's effective central frequency in Hz.
	Frequency float64 `yaml:"frequency"`
	// Efficiency is the filter throughput in [0, 1].
	Efficiency float64 `yaml:"efficiency"`
	// ZeroPoint is the photometric zero point flux of the filter.
	ZeroPoint float64 `yaml:"zero_point"`
}

// Wavelength returns the filter's central wavelength in meters, or in
// micrometers when micro is true.
func (f Filter) Wavelength(micro bool) float64 {
	w := 2.998e8 / f.Frequency
	if micro {
		return w * 1e6
	}
	return w
}

// Telescope describes an observing telescope. Efficiency is defined as the
// inverse exposure time needed to reach SNR 5 at the limiting magnitude.
type Telescope struct {
	Name       string  `yaml:"name"`
	Efficiency float64 `yaml:"efficiency"`
}

// Hardware pairs the filter and telescope used for an observation.
type Hardware struct {
	Filter    Filter
	Telescope Telescope
}

// Definitions is a named set of filters and telescopes, typically loaded
// once per campaign from a YAML file.
type Definitions struct {
	Filters    []Filter    `yaml:"filters"`
	Telescopes []Telescope `yaml:"telescopes"`
}

// LoadDefinitions reads a YAML hardware-definition file.
func LoadDefinitions(path string) (*Definitions, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("afterglow: %w", err)
	}

	var defs Definitions
	if err := yaml.Unmarshal(raw, &defs); err != nil {
		return nil, fmt.Errorf("afterglow: parse %s: %w", path, err)
	}
	return &defs, nil
}

// Filter returns the named filter definition.
func (d *Definitions) Filter(name string) (Filter, error) {
	for _, f := range d.Filters {
		if f.Name == name {
			return f, nil
		}
	}
	return Filter{}, fmt.Errorf("afterglow: unknown filter %q", name)
}

// Telescope returns the named telescope definition.
func (d *Definitions) Telescope(name string) (Telescope, error) {
	for _, tel := range d.Telescopes {
		if tel.Name == name {
			return tel, nil
		}
	}
	return Telescope{}, fmt.Errorf("afterglow: unknown telescope %q", name)
}

// Hardware assembles a Hardware value from named definitions.
func (d *Definitions) Hardware(filterName, telescopeName string) (Hardware, error) {
	f, err := d.Filter(filterName)
	if err != nil {
		return Hardware{}, err
	}
	tel, err := d.Telescope(telescopeName)
	if err != nil {
		return Hardware{}, err
	}
	return Hardware{Filter: f, Telescope: tel}, nil
}
