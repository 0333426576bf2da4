package geometry

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Minkowski is the flat spacetime metric, signature (-,+,+,+), in either
// Cartesian or spherical coordinates.
type Minkowski struct {
	kind CoordKind
}

// NewMinkowski returns a flat metric in the given coordinate kind;
// KindUnspecified falls back to Cartesian.
func NewMinkowski(kind CoordKind) *Minkowski {
	if kind == KindUnspecified {
		kind = KindCartesian
	}
	return &Minkowski{kind: kind}
}

func (m *Minkowski) CoordKind() CoordKind { return m.kind }

// Tensor returns the metric tensor g_mu_nu at position x.
func (m *Minkowski) Tensor(x []float64) *mat.SymDense {
	g := mat.NewSymDense(4, nil)
	g.SetSym(0, 0, -1)
	switch m.kind {
	case KindSpherical:
		r, theta := x[1], x[2]
		st := math.Sin(theta)
		g.SetSym(1, 1, 1)
		g.SetSym(2, 2, r*r)
		g.SetSym(3, 3, r*r*st*st)
	default:
		g.SetSym(1, 1, 1)
		g.SetSym(2, 2, 1)
		g.SetSym(3, 3, 1)
	}
	return g
}

func (m *Minkowski) ScalarProd(pos, a, b []float64) float64 {
	return mat.Inner(mat.NewVecDense(4, a), m.Tensor(pos), mat.NewVecDense(4, b))
}

// StaticObserver returns the 4-velocity of an observer at rest, u = (1,0,0,0),
// which is unit-normalized for this metric at any position.
func (m *Minkowski) StaticObserver() [4]float64 {
	return [4]float64{1, 0, 0, 0}
}
