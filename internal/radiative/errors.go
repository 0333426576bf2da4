package radiative

import "errors"

// Faults raised by the engine. All are fatal for the current ray; the
// engine never retries.
var (
	// ErrNoMetric indicates a geometry-dependent computation was invoked
	// without a metric attached.
	ErrNoMetric = errors.New("radiative: no metric attached to engine")

	// ErrIncompatibleOptions indicates impact-coordinate output was
	// requested together with a polarization-basis hit state; the two
	// photon-state layouts are mutually exclusive.
	ErrIncompatibleOptions = errors.New("radiative: impact coordinates are incompatible with parallel transport")

	// ErrNoSpectrometer indicates a spectral quantity was requested on a
	// ray that carries no spectrometer.
	ErrNoSpectrometer = errors.New("radiative: spectral quantity requested without a spectrometer")
)

// HitError wraps a fault with the photon position it occurred at.
type HitError struct {
	Position [4]float64
	Wrapped  error
}

func (e *HitError) Error() string { return e.Wrapped.Error() }

func (e *HitError) Unwrap() error { return e.Wrapped }
