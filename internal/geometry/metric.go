package geometry

import (
	"errors"
	"math"
)

// CoordKind selects the spatial coordinate system of a metric.
type CoordKind int

const (
	KindUnspecified CoordKind = iota
	KindCartesian             // t, x, y, z
	KindSpherical             // t, r, theta, phi
)

func (k CoordKind) String() string {
	switch k {
	case KindCartesian:
		return "cartesian"
	case KindSpherical:
		return "spherical"
	}
	return "unspecified"
}

var (
	// ErrNoMetric indicates a geometric helper was invoked without a metric.
	ErrNoMetric = errors.New("geometry: no metric set")

	// ErrCoordKind indicates a coordinate system the helper cannot handle.
	ErrCoordKind = errors.New("geometry: unsupported coordinate kind")
)

// Metric computes scalar products of 4-vectors at a spacetime position.
type Metric interface {
	// ScalarProd returns g_mu_nu a^mu b^nu at position pos.
	ScalarProd(pos, a, b []float64) float64
	CoordKind() CoordKind
}

// DeltaMax bounds the integration step for a photon at coord: within
// rMax of the centre of mass the step is capped at deltaInside, outside
// it scales with the radius.
func DeltaMax(m Metric, coord []float64, rMax, deltaInside float64) (float64, error) {
	if m == nil {
		return 0, ErrNoMetric
	}
	var rr float64
	switch m.CoordKind() {
	case KindSpherical:
		rr = coord[1]
	case KindCartesian:
		rr = math.Sqrt(coord[1]*coord[1] + coord[2]*coord[2] + coord[3]*coord[3])
	default:
		return 0, ErrCoordKind
	}
	if rr < rMax {
		return deltaInside, nil
	}
	return rr * 0.5, nil
}
