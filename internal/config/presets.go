package config

import "sort"

var presets = map[string]func() *Config{
	"quick": func() *Config {
		cfg := DefaultConfig()
		cfg.Screen.Width, cfg.Screen.Height = 16, 16
		cfg.Object.Steps = 4
		return cfg
	},
	"image": func() *Config {
		cfg := DefaultConfig()
		cfg.Screen.Width, cfg.Screen.Height = 128, 128
		cfg.Quantities = []string{"intensity", "redshift"}
		return cfg
	},
	"spectrum": func() *Config {
		cfg := DefaultConfig()
		cfg.Screen.Width, cfg.Screen.Height = 1, 1
		cfg.Screen.FOV = 0.05
		cfg.Emitter = "thermal-synchrotron"
		cfg.Spectro.Kind = "log"
		cfg.Spectro.NSamples = 32
		cfg.Spectro.NuMin, cfg.Spectro.NuMax = 1e10, 1e13
		cfg.Quantities = []string{"spectrum", "binspectrum"}
		return cfg
	},
	"polarized": func() *Config {
		cfg := DefaultConfig()
		cfg.Screen.Width, cfg.Screen.Height = 32, 32
		cfg.Emitter = "polarized-disk"
		cfg.Polarized = true
		cfg.Quantities = []string{"spectrum", "stokesq", "stokesu", "stokesv"}
		return cfg
	},
}

// GetPreset returns a named preset configuration, or nil.
func GetPreset(name string) *Config {
	fn, ok := presets[name]
	if !ok {
		return nil
	}
	return fn()
}

// ListPresets returns the available preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
