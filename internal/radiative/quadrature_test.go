package radiative

import (
	"math"
	"testing"
)

type constModel struct{ baseModel }

func (constModel) Emission(nu, dsem float64, _ *Hit) float64 { return 4 }

type linearModel struct{ baseModel }

func (linearModel) Emission(nu, dsem float64, _ *Hit) float64 { return nu }

func TestIntegrateEmissionConstant(t *testing.T) {
	s := Bind(constModel{}, true)
	h := &Hit{Photon: make([]float64, 8)}

	// The trapezoid rule is exact for constants, so refinement stops
	// after the first halving.
	got := s.IntegrateEmission(1, 3, 1, h)
	if got != 8 {
		t.Errorf("integral = %v, want 8", got)
	}
}

func TestIntegrateEmissionReversedBounds(t *testing.T) {
	s := Bind(constModel{}, true)
	h := &Hit{Photon: make([]float64, 8)}

	if got := s.IntegrateEmission(3, 1, 1, h); got != 8 {
		t.Errorf("integral = %v, want bounds swapped", got)
	}
}

func TestIntegrateEmissionLinear(t *testing.T) {
	s := Bind(linearModel{}, true)
	h := &Hit{Photon: make([]float64, 8)}

	// Integral of nu over [2, 6] is 16; the trapezoid rule is exact for
	// linear integrands too.
	got := s.IntegrateEmission(2, 6, 1, h)
	if math.Abs(got-16) > 1e-9 {
		t.Errorf("integral = %v, want 16", got)
	}
}

func TestIntegrateEmissionCurvatureTolerance(t *testing.T) {
	s := Bind(quadModel{}, true)
	h := &Hit{Photon: make([]float64, 8)}

	// Integral of nu^2 over [0, 3] is 9; the iteration stops at 1%
	// relative agreement between successive refinements.
	got := s.IntegrateEmission(0, 3, 1, h)
	if math.Abs(got-9) > 0.09*9 {
		t.Errorf("integral = %v, want within tolerance of 9", got)
	}
}

type quadModel struct{ baseModel }

func (quadModel) Emission(nu, dsem float64, _ *Hit) float64 { return nu * nu }

func TestIntegrateEmissionBand(t *testing.T) {
	s := Bind(constModel{}, true)
	h := &Hit{Photon: make([]float64, 8)}

	boundaries := []float64{1, 2, 4}
	indices := []int{0, 1, 1, 2}
	out := make([]float64, 2)
	s.IntegrateEmissionBand(out, boundaries, indices, 1, h)

	if out[0] != 4 {
		t.Errorf("bin 0 = %v, want 4", out[0])
	}
	if out[1] != 8 {
		t.Errorf("bin 1 = %v, want 8", out[1])
	}
}
