package emitters

import (
	"fmt"
	"math"

	"github.com/san-kum/lumet/internal/radiative"
)

// PolarizedDisk emits channel-flat, linearly polarized light at a fixed
// polarization fraction and electric-vector position angle. It overrides
// polarized radiativeQ only; the unpolarized variant, band and scalar
// emission, and transmission all derive from it.
type PolarizedDisk struct {
	Emissivity float64 // per unit proper length
	Fraction   float64 // linear polarization fraction, 0..1
	Angle      float64 // EVPA, radians
	AlphaI     float64 // absorption coefficient per slab
}

func NewPolarizedDisk() *PolarizedDisk {
	return &PolarizedDisk{Emissivity: 1, Fraction: 0.3}
}

func (*PolarizedDisk) Kind() string { return "polarized-disk" }

func (d *PolarizedDisk) RadiativeQPol(c *radiative.TransferCoefs, nu []float64, dsem float64, _ *radiative.Hit) {
	for i := range nu {
		inu := d.Emissivity * dsem
		c.I[i] = inu
		c.Q[i] = d.Fraction * inu * math.Cos(2*d.Angle)
		c.U[i] = d.Fraction * inu * math.Sin(2*d.Angle)
		c.V[i] = 0
		c.AlphaI[i] = d.AlphaI
		c.AlphaQ[i], c.AlphaU[i], c.AlphaV[i] = 0, 0, 0
		c.RotQ[i], c.RotU[i], c.RotV[i] = 0, 0, 0
	}
}

func (d *PolarizedDisk) Params() map[string]float64 {
	return map[string]float64{
		"emissivity": d.Emissivity,
		"fraction":   d.Fraction,
		"angle":      d.Angle,
		"alphai":     d.AlphaI,
	}
}

func (d *PolarizedDisk) SetParam(name string, v float64) error {
	switch name {
	case "emissivity":
		d.Emissivity = v
	case "fraction":
		d.Fraction = v
	case "angle":
		d.Angle = v
	case "alphai":
		d.AlphaI = v
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
