package emitters

import (
	"fmt"
	"math"

	"github.com/san-kum/lumet/internal/radiative"
)

// PowerLaw is an optically thin medium with emission coefficient
// j(nu) = Coef * nu^Slope. Emission returns the per-segment emissivity
// j*dsem; it overrides only the scalar operation, so band emission and
// both radiativeQ variants run on the derived defaults.
type PowerLaw struct {
	Coef  float64
	Slope float64
}

func NewPowerLaw() *PowerLaw { return &PowerLaw{Coef: 1, Slope: -0.7} }

func (*PowerLaw) Kind() string { return "powerlaw" }

func (p *PowerLaw) Emission(nu, dsem float64, _ *radiative.Hit) float64 {
	return p.Coef * math.Pow(nu, p.Slope) * dsem
}

func (p *PowerLaw) Params() map[string]float64 {
	return map[string]float64{"coef": p.Coef, "slope": p.Slope}
}

func (p *PowerLaw) SetParam(name string, v float64) error {
	switch name {
	case "coef":
		p.Coef = v
	case "slope":
		p.Slope = v
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
