package config

import (
	_ "embed"
)

//go:embed defaults/colorgrid.yaml
var defaultColorGridYAML []byte

// DefaultColorGridConfig returns the default Color Grid configuration.
func DefaultColorGridConfig() ColorGridConfig {
	return ColorGridConfig{
		Grid: GridConfig{
			Height: 8,
			Width:  11,
		},
		Timer: TimerConfig{
			Duration:  30,
			Min:       10,
			Max:       1000,
			Step:      10,
			CadenceMS: 100,
		},
	}
}
