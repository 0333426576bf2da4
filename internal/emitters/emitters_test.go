package emitters

import (
	"math"
	"testing"

	"github.com/san-kum/lumet/internal/radiative"
	"github.com/san-kum/lumet/internal/units"
)

func TestPowerLawEmission(t *testing.T) {
	p := NewPowerLaw()
	p.Coef = 2
	p.Slope = -1

	got := p.Emission(1e10, 0.5, nil)
	want := 2 * 1e-10 * 0.5
	if math.Abs(got-want)/want > 1e-12 {
		t.Errorf("emission = %v, want %v", got, want)
	}
}

func TestPowerLawCapabilities(t *testing.T) {
	caps := radiative.Resolve(NewPowerLaw())
	if caps != radiative.CapEmission {
		t.Errorf("caps = %v, want emission only", caps)
	}
}

func TestPlanck(t *testing.T) {
	// Wien displacement: B_nu at 6000 K peaks near 3.52e14 Hz.
	peak := 5.879e10 * 6000
	below := Planck(peak/10, 6000)
	at := Planck(peak, 6000)
	above := Planck(peak*10, 6000)
	if at <= below || at <= above {
		t.Errorf("Planck not peaked: %v, %v, %v", below, at, above)
	}

	// Rayleigh-Jeans limit: B_nu -> 2 nu^2 kT / c^2 at low frequency.
	nu := 1e9
	rj := 2 * nu * nu * units.Boltzmann * 6000 /
		(units.LightSpeed * units.LightSpeed)
	got := Planck(nu, 6000)
	if math.Abs(got-rj)/rj > 1e-3 {
		t.Errorf("low-frequency Planck = %v, want RJ limit %v", got, rj)
	}
}

func TestBlackbodyOpaque(t *testing.T) {
	b := NewBlackbody()
	if got := b.Transmission(1e14, 1, nil); got != 0 {
		t.Errorf("transmission = %v, want 0 for an opaque surface", got)
	}

	caps := radiative.Resolve(b)
	want := radiative.CapEmissionBand | radiative.CapTransmission
	if caps != want {
		t.Errorf("caps = %v, want %v", caps, want)
	}

	// Band emission is dsem-independent: surface brightness, not a
	// volume emissivity.
	inu1 := make([]float64, 2)
	inu2 := make([]float64, 2)
	nu := []float64{1e13, 1e14}
	b.EmissionBand(inu1, nu, 1, nil)
	b.EmissionBand(inu2, nu, 100, nil)
	for i := range inu1 {
		if inu1[i] != inu2[i] {
			t.Errorf("channel %d emission depends on dsem", i)
		}
		if inu1[i] <= 0 {
			t.Errorf("channel %d emission = %v, want positive", i, inu1[i])
		}
	}
}

func TestThermalSynchrotron(t *testing.T) {
	s := NewThermalSynchrotron()

	nu := []float64{1e10, 1e11, 1e12}
	inu := make([]float64, 3)
	taunu := make([]float64, 3)
	s.RadiativeQ(inu, taunu, nu, 1, nil)

	for i := range nu {
		if !(inu[i] > 0) || math.IsInf(inu[i], 0) {
			t.Errorf("inu[%d] = %v, want finite positive", i, inu[i])
		}
		if taunu[i] <= 0 || taunu[i] > 1 {
			t.Errorf("taunu[%d] = %v, want in (0, 1]", i, taunu[i])
		}
	}

	// Emission scales linearly with the path length.
	inu2 := make([]float64, 3)
	taunu2 := make([]float64, 3)
	s.RadiativeQ(inu2, taunu2, nu, 2, nil)
	for i := range nu {
		if math.Abs(inu2[i]-2*inu[i])/inu2[i] > 1e-12 {
			t.Errorf("inu[%d] not linear in dsem", i)
		}
		if taunu2[i] > taunu[i] {
			t.Errorf("taunu[%d] grew with path length", i)
		}
	}
}

func TestThermalSynchrotronSelfAbsorption(t *testing.T) {
	s := NewThermalSynchrotron()
	s.NumberDensity = 1e20 // dense enough to be opaque at low frequency

	nu := []float64{1e9}
	inu := make([]float64, 1)
	taunu := make([]float64, 1)
	s.RadiativeQ(inu, taunu, nu, 1e11, nil)
	if taunu[0] > 1e-3 {
		t.Errorf("taunu = %v, want strong self-absorption", taunu[0])
	}
}

func TestPolarizedDisk(t *testing.T) {
	d := NewPolarizedDisk()
	d.Fraction = 0.5
	d.Angle = math.Pi / 4 // EVPA 45 degrees: pure U

	c := radiative.NewTransferCoefs(2)
	d.RadiativeQPol(c, []float64{1e11, 1e12}, 2, nil)

	for i := 0; i < 2; i++ {
		if c.I[i] != 2 {
			t.Errorf("I[%d] = %v, want emissivity*dsem", i, c.I[i])
		}
		if math.Abs(c.Q[i]) > 1e-12 {
			t.Errorf("Q[%d] = %v, want 0 at 45 degrees", i, c.Q[i])
		}
		if math.Abs(c.U[i]-1) > 1e-12 {
			t.Errorf("U[%d] = %v, want fraction*I", i, c.U[i])
		}
		if c.V[i] != 0 {
			t.Errorf("V[%d] = %v, want no circular polarization", i, c.V[i])
		}
	}

	// Polarized intensity never exceeds total intensity.
	p := math.Hypot(c.Q[0], c.U[0])
	if p > c.I[0] {
		t.Errorf("polarized %v exceeds total %v", p, c.I[0])
	}
}

func TestSetParam(t *testing.T) {
	models := []radiative.Model{
		NewPowerLaw(), NewBlackbody(), NewThermalSynchrotron(),
		NewPolarizedDisk(), NewUniform(),
	}
	for _, m := range models {
		c, ok := m.(radiative.Configurable)
		if !ok {
			t.Fatalf("%s not configurable", m.Kind())
		}
		if err := c.SetParam("no-such-param", 1); err == nil {
			t.Errorf("%s accepted an unknown param", m.Kind())
		}
		// Every advertised param must round-trip.
		for name, v := range c.Params() {
			if err := c.SetParam(name, v+1); err != nil {
				t.Errorf("%s rejected its own param %s: %v", m.Kind(), name, err)
			}
		}
	}
}

func TestUniformBareDefaults(t *testing.T) {
	src := radiative.Bind(NewUniform(), true)
	if src.Capabilities() != 0 {
		t.Errorf("caps = %v, want none", src.Capabilities())
	}
	h := &radiative.Hit{Photon: make([]float64, 8)}
	if got := src.Emission(1e12, 0.25, h); got != 0.25 {
		t.Errorf("emission = %v, want dsem", got)
	}
}
