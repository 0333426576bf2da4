package emitters

import (
	"fmt"
	"math"

	"github.com/san-kum/lumet/internal/radiative"
	"github.com/san-kum/lumet/internal/units"
)

// Blackbody is an opaque surface radiating a Planck spectrum at its
// temperature. It overrides band emission and transmission; the surface
// blocks everything behind it.
type Blackbody struct {
	Temperature float64 // K
}

func NewBlackbody() *Blackbody { return &Blackbody{Temperature: 6000} }

func (*Blackbody) Kind() string { return "blackbody" }

func (b *Blackbody) EmissionBand(inu, nu []float64, _ float64, _ *radiative.Hit) {
	for i, f := range nu {
		inu[i] = Planck(f, b.Temperature)
	}
}

func (b *Blackbody) Transmission(_, _ float64, _ *radiative.Hit) float64 { return 0 }

func (b *Blackbody) Params() map[string]float64 {
	return map[string]float64{"temperature": b.Temperature}
}

func (b *Blackbody) SetParam(name string, v float64) error {
	if name != "temperature" {
		return fmt.Errorf("unknown param: %s", name)
	}
	b.Temperature = v
	return nil
}

// Planck returns the blackbody specific intensity B_nu(T) in SI.
func Planck(nu, t float64) float64 {
	x := units.Planck * nu / (units.Boltzmann * t)
	return 2 * units.Planck * nu * nu * nu /
		(units.LightSpeed * units.LightSpeed) / math.Expm1(x)
}
