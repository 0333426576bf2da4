// Package config loads and saves scan scenarios.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/lumet/internal/radiative"
)

const (
	DefaultWidth    = 32
	DefaultHeight   = 32
	DefaultFOV      = 0.4
	DefaultDistance = 100.0
	DefaultRadius   = 10.0
	DefaultSteps    = 8
	DefaultFreqObs  = 2.3e11
	DefaultChannels = 16
)

type Config struct {
	Metric        string             `yaml:"metric"`
	Emitter       string             `yaml:"emitter"`
	EmitterParams map[string]float64 `yaml:"emitter_params"`
	OpticallyThin bool               `yaml:"optically_thin"`
	Doppler       bool               `yaml:"doppler"`
	FreqObs       float64            `yaml:"freq_obs"`
	Quantities    []string           `yaml:"quantities"`
	Polarized     bool               `yaml:"polarized"`
	Workers       int                `yaml:"workers"`
	Screen        ScreenConfig       `yaml:"screen"`
	Object        ObjectConfig       `yaml:"object"`
	Spectro       SpectroConfig      `yaml:"spectrometer"`
	Units         UnitsConfig        `yaml:"units"`
}

type ScreenConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	FOV      float64 `yaml:"fov"`
	Distance float64 `yaml:"distance"`
}

type ObjectConfig struct {
	Radius   float64   `yaml:"radius"`
	Velocity []float64 `yaml:"velocity"` // spatial beta, 3 components
	Steps    int       `yaml:"steps"`
}

type SpectroConfig struct {
	Kind     string  `yaml:"kind"`
	NSamples int     `yaml:"nsamples"`
	NuMin    float64 `yaml:"numin"`
	NuMax    float64 `yaml:"numax"`
}

type UnitsConfig struct {
	Intensity   string  `yaml:"intensity"`
	Spectrum    string  `yaml:"spectrum"`
	BinSpectrum string  `yaml:"binspectrum"`
	MassSun     float64 `yaml:"mass_sun"`
	DistanceKpc float64 `yaml:"distance_kpc"`
}

func DefaultConfig() *Config {
	return &Config{
		Metric:        "minkowski",
		Emitter:       "powerlaw",
		OpticallyThin: true,
		Doppler:       true,
		FreqObs:       DefaultFreqObs,
		Quantities:    []string{"intensity"},
		Screen: ScreenConfig{
			Width:    DefaultWidth,
			Height:   DefaultHeight,
			FOV:      DefaultFOV,
			Distance: DefaultDistance,
		},
		Object: ObjectConfig{
			Radius: DefaultRadius,
			Steps:  DefaultSteps,
		},
		Spectro: SpectroConfig{
			Kind:     "uniform",
			NSamples: DefaultChannels,
			NuMin:    1e11,
			NuMax:    1e12,
		},
		Units: UnitsConfig{MassSun: 4e6, DistanceKpc: 8},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var quantityNames = map[string]radiative.Quantity{
	"intensity":    radiative.QuantityIntensity,
	"time":         radiative.QuantityEmissionTime,
	"mindistance":  radiative.QuantityMinDistance,
	"firstdmin":    radiative.QuantityFirstDMin,
	"redshift":     radiative.QuantityRedshift,
	"spectrum":     radiative.QuantitySpectrum,
	"stokesq":      radiative.QuantityStokesQ,
	"stokesu":      radiative.QuantityStokesU,
	"stokesv":      radiative.QuantityStokesV,
	"binspectrum":  radiative.QuantityBinSpectrum,
	"impactcoords": radiative.QuantityImpactCoords,
}

// ParseQuantities maps quantity names to the engine bitmask.
func (c *Config) ParseQuantities() (radiative.Quantity, error) {
	q := radiative.QuantityNone
	for _, name := range c.Quantities {
		bit, ok := quantityNames[name]
		if !ok {
			return 0, fmt.Errorf("unknown quantity: %s", name)
		}
		q |= bit
	}
	return q, nil
}
