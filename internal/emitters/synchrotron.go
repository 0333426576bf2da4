package emitters

import (
	"fmt"
	"math"

	"github.com/san-kum/lumet/internal/mathx"
	"github.com/san-kum/lumet/internal/radiative"
	"github.com/san-kum/lumet/internal/units"
)

// ThermalSynchrotron is a relativistic thermal electron gas in a
// magnetic field, using the standard approximate emissivity
//
//	j(nu) = sqrt(2) pi e^2 n nu_s / (3 c K2(1/theta_e)) * x exp(-x^(1/3))
//
// with x = nu/nu_s and nu_s = (2/9) nu_c theta_e^2. Absorption follows
// Kirchhoff's law against the Planck function at the electron
// temperature. The model overrides unpolarized radiativeQ only.
type ThermalSynchrotron struct {
	NumberDensity float64 // electrons / m^3
	Temperature   float64 // K
	MagneticField float64 // T
}

func NewThermalSynchrotron() *ThermalSynchrotron {
	return &ThermalSynchrotron{
		NumberDensity: 1e12,
		Temperature:   1e11,
		MagneticField: 1e-3,
	}
}

func (*ThermalSynchrotron) Kind() string { return "thermal-synchrotron" }

func (s *ThermalSynchrotron) RadiativeQ(inu, taunu, nu []float64, dsem float64, _ *radiative.Hit) {
	thetaE := units.Boltzmann * s.Temperature /
		(units.ElectronMass * units.LightSpeed * units.LightSpeed)
	nuCyclotron := units.ElectronCharge * s.MagneticField /
		(2 * math.Pi * units.ElectronMass)
	nuS := 2.0 / 9.0 * nuCyclotron * thetaE * thetaE
	k2 := mathx.BesselK(2, 1/thetaE)
	amp := math.Sqrt2 * math.Pi * units.ElectronCharge * units.ElectronCharge *
		s.NumberDensity * nuS / (3 * units.LightSpeed * k2)

	for i, f := range nu {
		x := f / nuS
		j := amp * x * math.Exp(-math.Cbrt(x))
		alpha := j / Planck(f, s.Temperature)
		inu[i] = j * dsem
		taunu[i] = math.Exp(-alpha * dsem)
	}
}

func (s *ThermalSynchrotron) Params() map[string]float64 {
	return map[string]float64{
		"density":     s.NumberDensity,
		"temperature": s.Temperature,
		"bfield":      s.MagneticField,
	}
}

func (s *ThermalSynchrotron) SetParam(name string, v float64) error {
	switch name {
	case "density":
		s.NumberDensity = v
	case "temperature":
		s.Temperature = v
	case "bfield":
		s.MagneticField = v
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
