package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinkowskiCartesianScalarProd(t *testing.T) {
	m := NewMinkowski(KindCartesian)
	pos := []float64{0, 0, 0, 0}

	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"timelike unit", []float64{1, 0, 0, 0}, []float64{1, 0, 0, 0}, -1},
		{"spacelike unit", []float64{0, 1, 0, 0}, []float64{0, 1, 0, 0}, 1},
		{"null vector", []float64{1, 0, 0, 1}, []float64{1, 0, 0, 1}, 0},
		{"mixed", []float64{2, 1, 1, 1}, []float64{1, 1, 0, 0}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, m.ScalarProd(pos, tt.a, tt.b), 1e-12)
		})
	}
}

func TestMinkowskiSphericalScalarProd(t *testing.T) {
	m := NewMinkowski(KindSpherical)
	pos := []float64{0, 2, math.Pi / 2, 0} // r=2 on the equator

	// g_theta_theta = r^2, g_phi_phi = r^2 sin^2(theta).
	theta := []float64{0, 0, 1, 0}
	assert.InDelta(t, 4, m.ScalarProd(pos, theta, theta), 1e-12)

	phi := []float64{0, 0, 0, 1}
	assert.InDelta(t, 4, m.ScalarProd(pos, phi, phi), 1e-12)

	pole := []float64{0, 2, 0, 0} // sin(theta) = 0
	assert.InDelta(t, 0, m.ScalarProd(pole, phi, phi), 1e-12)
}

func TestMinkowskiUnspecifiedKind(t *testing.T) {
	m := NewMinkowski(KindUnspecified)
	assert.Equal(t, KindCartesian, m.CoordKind())
}

func TestStaticObserverNormalized(t *testing.T) {
	for _, kind := range []CoordKind{KindCartesian, KindSpherical} {
		m := NewMinkowski(kind)
		u := m.StaticObserver()
		pos := []float64{0, 1, 1, 1}
		assert.InDelta(t, -1, m.ScalarProd(pos, u[:], u[:]), 1e-12)
	}
}

func TestDeltaMax(t *testing.T) {
	cart := NewMinkowski(KindCartesian)
	sph := NewMinkowski(KindSpherical)

	// Inside rMax the step is capped.
	d, err := DeltaMax(cart, []float64{0, 1, 2, 2}, 10, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 0.25, d)

	// Outside it grows with the radius.
	d, err = DeltaMax(cart, []float64{0, 30, 0, 40}, 10, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 25.0, d)

	d, err = DeltaMax(sph, []float64{0, 50, 0, 0}, 10, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 25.0, d)

	_, err = DeltaMax(nil, []float64{0, 0, 0, 0}, 10, 0.25)
	assert.ErrorIs(t, err, ErrNoMetric)

	_, err = DeltaMax(unknownKindMetric{}, []float64{0, 0, 0, 0}, 10, 0.25)
	assert.ErrorIs(t, err, ErrCoordKind)
}

type unknownKindMetric struct{}

func (unknownKindMetric) ScalarProd(pos, a, b []float64) float64 { return 0 }
func (unknownKindMetric) CoordKind() CoordKind                   { return KindUnspecified }

func TestCoordKindString(t *testing.T) {
	assert.Equal(t, "cartesian", KindCartesian.String())
	assert.Equal(t, "spherical", KindSpherical.String())
	assert.Equal(t, "unspecified", KindUnspecified.String())
}
