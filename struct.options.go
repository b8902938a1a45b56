package side

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// output units for the three accumulation rasters
const (
	UnitCells = "cells" // number of upslope grid cells
	UnitSCA   = "sca"   // specific catchment area
	UnitTCA   = "tca"   // total catchment area
)

// Options holds the routing parameters recognized by the evaluators.
type Options struct {
	HExp     float64 `yaml:"hexp"`     // MDInf dispersion exponent; >=10 degenerates to single-direction routing
	Unit     string  `yaml:"unit"`     // cells, sca or tca
	CaThresh float64 `yaml:"cathresh"` // channel initiation threshold, in Unit
}

// DefaultOptions returns cell-count output with no dispersion bias.
func DefaultOptions() *Options { return &Options{HExp: 1, Unit: UnitCells} }

// LoadOptions reads an Options yaml file; omitted fields keep their
// defaults.
func LoadOptions(fp string) (*Options, error) {
	o := DefaultOptions()
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("LoadOptions: %v", err)
	}
	if err := yaml.Unmarshal(b, o); err != nil {
		return nil, fmt.Errorf("LoadOptions: %v", err)
	}
	if err := o.Check(); err != nil {
		return nil, fmt.Errorf("LoadOptions: %v", err)
	}
	return o, nil
}

// Check rejects unrecognized output units.
func (o *Options) Check() error {
	switch o.Unit {
	case UnitCells, UnitSCA, UnitTCA:
		return nil
	default:
		return fmt.Errorf("unknown output unit %q", o.Unit)
	}
}

// seed returns the stream-cell seeding constant and the scaled
// channel-initiation threshold for the configured output unit.
func (o *Options) seed(cw float64) (initial, thresh float64) {
	switch o.Unit {
	case UnitSCA:
		return cw, o.CaThresh * cw
	case UnitTCA:
		return cw * cw, o.CaThresh * cw * cw
	default: // cell count
		return 1, o.CaThresh
	}
}
