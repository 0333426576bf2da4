// Package emitters provides emission models for the radiative-transfer
// engine.
//
// Each model implements some subset of the five radiative operations;
// the resolver in [radiative.Bind] derives the rest:
//
//   - [Uniform]: implements nothing, pure derived defaults
//   - [PowerLaw]: scalar emission only
//   - [Blackbody]: band emission + transmission (opaque surface)
//   - [ThermalSynchrotron]: unpolarized radiativeQ
//   - [PolarizedDisk]: polarized radiativeQ
//
// Models also implement [radiative.Configurable] for runtime parameter
// adjustment.
package emitters
