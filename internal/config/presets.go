package config

import (
	"sort"

	"github.com/san-kum/modharm/internal/render"
)

var presets = map[string]*Config{
	"classic": {
		Base: 2, Modulus: 9,
		Mode:  int(render.ModeOscilloscope),
		Width: 80, Height: 24, IntervalMs: 50,
	},
	"orbit": {
		Base: 5, Modulus: 8191,
		Mode:  int(render.ModeLissajous),
		Width: 80, Height: 30, IntervalMs: 40,
	},
	"storm": {
		Base: 7, Modulus: 1999,
		Mode:  int(render.ModePlasma),
		Width: 100, Height: 32, IntervalMs: 30,
	},
	"drift": {
		Base: 3, Modulus: 257,
		Mode:  int(render.ModePlasma),
		Width: 80, Height: 24, IntervalMs: 120,
	},
}

// GetPreset returns a copy of the named preset with caps filled from
// defaults, or nil when no such preset exists.
func GetPreset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	if cfg.MaxSequence == 0 {
		cfg.MaxSequence = Default().MaxSequence
	}
	if cfg.MaxPartials == 0 {
		cfg.MaxPartials = Default().MaxPartials
	}
	return &cfg
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
