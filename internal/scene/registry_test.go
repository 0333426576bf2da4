package scene

import (
	"sort"
	"testing"

	"github.com/san-kum/lumet/internal/emitters"
	"github.com/san-kum/lumet/internal/geometry"
	"github.com/san-kum/lumet/internal/radiative"
)

func TestRegistryMetric(t *testing.T) {
	r := NewRegistry()

	m, err := r.Metric("minkowski")
	if err != nil {
		t.Fatal(err)
	}
	if m.CoordKind() != geometry.KindCartesian {
		t.Errorf("kind = %v, want cartesian", m.CoordKind())
	}

	m, err = r.Metric("minkowski-spherical")
	if err != nil {
		t.Fatal(err)
	}
	if m.CoordKind() != geometry.KindSpherical {
		t.Errorf("kind = %v, want spherical", m.CoordKind())
	}

	if _, err := r.Metric("kerr"); err == nil {
		t.Error("expected error for unknown metric")
	}
}

func TestRegistryEmitter(t *testing.T) {
	r := NewRegistry()

	m, err := r.Emitter("powerlaw", map[string]float64{"slope": -2})
	if err != nil {
		t.Fatal(err)
	}
	p, ok := m.(*emitters.PowerLaw)
	if !ok {
		t.Fatalf("wrong type %T", m)
	}
	if p.Slope != -2 {
		t.Errorf("slope = %v, want param applied", p.Slope)
	}

	if _, err := r.Emitter("powerlaw", map[string]float64{"nope": 1}); err == nil {
		t.Error("expected error for unknown param")
	}
	if _, err := r.Emitter("darkmatter", nil); err == nil {
		t.Error("expected error for unknown emitter")
	}
}

func TestRegistryEmitterFreshInstances(t *testing.T) {
	r := NewRegistry()

	if _, err := r.Emitter("powerlaw", map[string]float64{"coef": 9}); err != nil {
		t.Fatal(err)
	}
	b, err := r.Emitter("powerlaw", nil)
	if err != nil {
		t.Fatal(err)
	}
	if b.(*emitters.PowerLaw).Coef == 9 {
		t.Error("emitter instances share state")
	}
}

func TestRegistrySpectrometer(t *testing.T) {
	r := NewRegistry()

	s, err := r.Spectrometer("uniform", 8, 1e11, 1e12)
	if err != nil {
		t.Fatal(err)
	}
	if s.NSamples() != 8 {
		t.Errorf("nsamples = %d", s.NSamples())
	}

	if _, err := r.Spectrometer("chirped", 8, 1e11, 1e12); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestRegistryEmittersBindable(t *testing.T) {
	r := NewRegistry()
	for _, name := range r.ListEmitters() {
		m, err := r.Emitter(name, nil)
		if err != nil {
			t.Fatalf("emitter %s: %v", name, err)
		}
		// Binding resolves capabilities; every registered model must
		// come out with a usable source, derived defaults included.
		src := radiative.Bind(m, true)
		h := &radiative.Hit{Photon: make([]float64, 8)}
		if got := src.Emission(1e12, 1, h); got < 0 {
			t.Errorf("emitter %s: negative emission %v", name, got)
		}
	}
}

func TestRegistryListsSorted(t *testing.T) {
	r := NewRegistry()
	for _, list := range [][]string{r.ListMetrics(), r.ListEmitters(), r.ListSpectrometers()} {
		if !sort.StringsAreSorted(list) {
			t.Errorf("list not sorted: %v", list)
		}
		if len(list) == 0 {
			t.Error("empty list")
		}
	}
}
