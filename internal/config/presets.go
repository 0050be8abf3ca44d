package config

import "sort"

var Presets = map[string]map[string]*Config{
	"beats": {
		"a440": DefaultConfig(),
		"unison": preset(func(c *Config) {
			c.Beats.F2 = 440
		}),
		"wide": preset(func(c *Config) {
			c.Beats.F2 = 460
			c.Beats.NumPoints = 10000
		}),
		"lopsided": preset(func(c *Config) {
			c.Beats.A1 = 5
		}),
		"slow": preset(func(c *Config) {
			c.Beats.F2 = 441
			c.Beats.TEnd = 3
			c.Beats.NumPoints = 15000
		}),
	},
	"rings": {
		"hene": DefaultConfig(),
		"green": preset(func(c *Config) {
			c.Rings.Lambda = 532e-9
		}),
		"sodium": preset(func(c *Config) {
			c.Rings.Lambda = 589.3e-9
		}),
		"flat": preset(func(c *Config) {
			c.Rings.RLens = 1.0
		}),
		"center": preset(func(c *Config) {
			c.Rings.HalfExtent = 0.001
			c.Rings.Resolution = 500
		}),
	},
}

func preset(apply func(*Config)) *Config {
	c := DefaultConfig()
	apply(c)
	return c
}

// GetPreset returns a deep copy of the named preset, or nil.
func GetPreset(experiment, name string) *Config {
	experimentPresets, ok := Presets[experiment]
	if !ok {
		return nil
	}
	cfg, ok := experimentPresets[name]
	if !ok {
		return nil
	}
	c := *cfg
	c.Sweep.Deltas = append([]float64(nil), cfg.Sweep.Deltas...)
	c.Sweep.AmplitudePairs = make([][]float64, len(cfg.Sweep.AmplitudePairs))
	for i, pair := range cfg.Sweep.AmplitudePairs {
		c.Sweep.AmplitudePairs[i] = append([]float64(nil), pair...)
	}
	return &c
}

func ListPresets(experiment string) []string {
	experimentPresets, ok := Presets[experiment]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(experimentPresets))
	for name := range experimentPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
