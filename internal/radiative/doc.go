// Package radiative computes radiative-transfer observables at ray-object
// intersections in curved spacetime.
//
// The package defines the fundamental types of the per-hit observable
// engine:
//
//   - [Hit]: one ray-object intersection event
//   - [Source]: an emission model bound to its resolved capability set
//   - [Engine]: converts a Hit into redshift-corrected observables
//   - [Observables]: the sparse record of requested output slots
//
// An emission model implements any subset of the five radiative
// operations (scalar emission, band emission, unpolarized and polarized
// radiativeQ, transmission); [Bind] resolves which operations are genuine
// and derives the rest through a bounded fallback chain.
//
// # Example
//
//	src := radiative.Bind(emitters.NewPowerLaw(), true)
//	eng := radiative.NewEngine(geometry.NewMinkowski(geometry.KindCartesian))
//	err := eng.ProcessHit(src, ray, hit, data)
//
// # Thread Safety
//
// A Source is immutable after Bind and safe to share across goroutines.
// Rays and Observables rows are owned by a single goroutine at a time.
package radiative
