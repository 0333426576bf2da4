// Package units converts observables between unit systems. Converters
// are optional per-quantity post-processing closures; absent means
// identity.
package units

import (
	"errors"
	"fmt"
	"math"
)

// Physical constants, SI.
const (
	LightSpeed     = 2.99792458e8   // m/s
	Planck         = 6.62607015e-34 // J.s
	Boltzmann      = 1.380649e-23   // J/K
	ElectronMass   = 9.1093837015e-31 // kg
	ElectronCharge = 1.602176634e-19  // C

	Kiloparsec = 3.0856775814913673e19 // m
	SunMass    = 1.98892e30            // kg
	SunRadius  = 6.955e8               // m

	// GOverC2 converts a mass in kg to its geometrical length GM/c^2 in m.
	GOverC2 = 7.426138e-28 // m/kg
)

// ErrUnknownUnit indicates a unit string absent from the conversion tables.
var ErrUnknownUnit = errors.New("units: unknown unit")

// Converter rescales one observable value before storage.
type Converter func(float64) float64

// Identity passes a value through unchanged.
func Identity(x float64) float64 { return x }

// LengthFactor returns the factor converting geometrical lengths
// (GM/c^2 = 1) to unit, for a central mass in solar masses seen from a
// distance in kiloparsec. Angular units divide by that distance.
func LengthFactor(unit string, massSun, distanceKpc float64) (float64, error) {
	distance := distanceKpc * Kiloparsec
	fact := massSun * SunMass * GOverC2
	switch unit {
	case "", "geometrical":
		return 1, nil
	case "m":
	case "km":
		fact *= 1e-3
	case "sun radius":
		fact *= 1 / SunRadius
	case "rad":
		fact *= 1 / distance
	case "degree":
		fact *= 180 / (distance * math.Pi)
	case "arcmin":
		fact *= 1.08e4 / (distance * math.Pi)
	case "arcsec":
		fact *= 6.48e5 / (distance * math.Pi)
	case "mas":
		fact *= 6.48e8 / (distance * math.Pi)
	case "uas":
		fact *= 6.48e11 / (distance * math.Pi)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
	return fact, nil
}

// LengthConverter wraps LengthFactor into a Converter.
func LengthConverter(unit string, massSun, distanceKpc float64) (Converter, error) {
	fact, err := LengthFactor(unit, massSun, distanceKpc)
	if err != nil {
		return nil, err
	}
	return func(x float64) float64 { return x * fact }, nil
}

// IntensityConverter converts specific intensity from SI
// (J.m-2.s-1.sr-1.Hz-1).
func IntensityConverter(unit string) (Converter, error) {
	switch unit {
	case "", "si", "J.m-2.s-1.sr-1.Hz-1":
		return Identity, nil
	case "cgs", "erg.cm-2.s-1.sr-1.Hz-1":
		return func(x float64) float64 { return x * 1e3 }, nil
	case "Jy.sr-1":
		return func(x float64) float64 { return x * 1e26 }, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
}

// BinSpectrumConverter converts band-integrated intensity from SI
// (J.m-2.s-1.sr-1).
func BinSpectrumConverter(unit string) (Converter, error) {
	switch unit {
	case "", "si", "J.m-2.s-1.sr-1":
		return Identity, nil
	case "cgs", "erg.cm-2.s-1.sr-1":
		return func(x float64) float64 { return x * 1e3 }, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
}
