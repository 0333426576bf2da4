// Package scene wires named metrics, emitters and spectrometers into
// runnable scenes.
package scene

import (
	"fmt"
	"sort"

	"github.com/san-kum/lumet/internal/emitters"
	"github.com/san-kum/lumet/internal/geometry"
	"github.com/san-kum/lumet/internal/radiative"
	"github.com/san-kum/lumet/internal/spectro"
)

// Registry maps names to component factories.
type Registry struct {
	metrics       map[string]func() geometry.Metric
	emitters      map[string]func() radiative.Model
	spectrometers map[string]func(n int, numin, numax float64) *spectro.Spectrometer
}

func NewRegistry() *Registry {
	r := &Registry{
		metrics:       make(map[string]func() geometry.Metric),
		emitters:      make(map[string]func() radiative.Model),
		spectrometers: make(map[string]func(int, float64, float64) *spectro.Spectrometer),
	}

	r.metrics["minkowski"] = func() geometry.Metric {
		return geometry.NewMinkowski(geometry.KindCartesian)
	}
	r.metrics["minkowski-spherical"] = func() geometry.Metric {
		return geometry.NewMinkowski(geometry.KindSpherical)
	}

	r.emitters["uniform"] = func() radiative.Model { return emitters.NewUniform() }
	r.emitters["powerlaw"] = func() radiative.Model { return emitters.NewPowerLaw() }
	r.emitters["blackbody"] = func() radiative.Model { return emitters.NewBlackbody() }
	r.emitters["thermal-synchrotron"] = func() radiative.Model { return emitters.NewThermalSynchrotron() }
	r.emitters["polarized-disk"] = func() radiative.Model { return emitters.NewPolarizedDisk() }

	r.spectrometers["uniform"] = spectro.NewUniform
	r.spectrometers["log"] = spectro.NewLog

	return r
}

// Metric instantiates a metric by name.
func (r *Registry) Metric(name string) (geometry.Metric, error) {
	fn, ok := r.metrics[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric: %s", name)
	}
	return fn(), nil
}

// Emitter instantiates an emission model by name and applies params.
func (r *Registry) Emitter(name string, params map[string]float64) (radiative.Model, error) {
	fn, ok := r.emitters[name]
	if !ok {
		return nil, fmt.Errorf("unknown emitter: %s", name)
	}
	m := fn()
	if len(params) > 0 {
		c, ok := m.(radiative.Configurable)
		if !ok {
			return nil, fmt.Errorf("emitter %s takes no parameters", name)
		}
		for k, v := range params {
			if err := c.SetParam(k, v); err != nil {
				return nil, fmt.Errorf("emitter %s: %w", name, err)
			}
		}
	}
	return m, nil
}

// Spectrometer instantiates a channel set by kind.
func (r *Registry) Spectrometer(kind string, n int, numin, numax float64) (*spectro.Spectrometer, error) {
	fn, ok := r.spectrometers[kind]
	if !ok {
		return nil, fmt.Errorf("unknown spectrometer kind: %s", kind)
	}
	return fn(n, numin, numax), nil
}

func (r *Registry) ListMetrics() []string  { return sortedKeys(r.metrics) }
func (r *Registry) ListEmitters() []string { return sortedKeys(r.emitters) }
func (r *Registry) ListSpectrometers() []string {
	return sortedKeys(r.spectrometers)
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
