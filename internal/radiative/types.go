package radiative

// Hit is one ray-object intersection event: the photon state at the
// intersection, the kinematic state of the matter it hit, and the
// coordinate-time extent of the crossing. A Hit lives for a single
// engine call.
type Hit struct {
	// Photon holds the photon 4-position and 4-velocity (8 scalars), or
	// 16 scalars when the ray carries a parallel-transported polarization
	// basis (two additional 4-vectors).
	Photon []float64
	// Object holds the emitting matter's 4-position and 4-velocity.
	Object [8]float64
	// Dt is the coordinate time crossed during this hit.
	Dt float64
}

// Extended reports whether the photon state carries a polarization basis.
func (h *Hit) Extended() bool { return len(h.Photon) > 8 }

// Position returns the photon 4-position.
func (h *Hit) Position() []float64 { return h.Photon[0:4] }

// Velocity returns the photon 4-velocity.
func (h *Hit) Velocity() []float64 { return h.Photon[4:8] }

// ObjectVelocity returns the matter 4-velocity.
func (h *Hit) ObjectVelocity() []float64 { return h.Object[4:8] }

// Metric supplies the scalar product of two 4-vectors at a position.
// Geometry formulas live elsewhere; the engine only needs this much.
type Metric interface {
	ScalarProd(pos, a, b []float64) float64
}

// Spectrometer is an immutable ordered set of frequency channels.
// ChannelIndices pairs entries of ChannelBoundaries into bins, two
// indices per channel.
type Spectrometer interface {
	NSamples() int
	Midpoints() []float64
	NBoundaries() int
	ChannelBoundaries() []float64
	ChannelIndices() []int
}

// AllChannels addresses a ray's broadband transmission instead of a
// single spectral channel.
const AllChannels = -1

// Ray is the engine's view of the photon being traced: observer-frame
// frequency, spectrometer binding, and the transmission/polarization
// track the engine attenuates hit after hit. Transmit folds one more
// absorbing segment into the track (multiplicative, so transmission only
// ever decreases along a ray).
type Ray interface {
	ObserverFrequency() float64
	Spectrometer() Spectrometer
	Transmission(channel int) float64
	Transmit(channel int, t float64)
	ParallelTransport() bool
	Transfer(c *TransferCoefs)
}

// Model is a physical emission model. It implements at least one of
// [ScalarEmitter], [BandEmitter], [RadiativeEmitter], [PolarizedEmitter]
// or [Absorber]; the resolver derives whatever it leaves out.
type Model interface {
	Kind() string
}

// ScalarEmitter provides specific intensity at a single emitted
// frequency over a proper path length dsem.
type ScalarEmitter interface {
	Model
	Emission(nu, dsem float64, h *Hit) float64
}

// BandEmitter fills inu with specific intensity at each frequency of nu.
type BandEmitter interface {
	Model
	EmissionBand(inu, nu []float64, dsem float64, h *Hit)
}

// RadiativeEmitter fills per-channel specific intensity and transmission.
type RadiativeEmitter interface {
	Model
	RadiativeQ(inu, taunu, nu []float64, dsem float64, h *Hit)
}

// PolarizedEmitter fills the full per-channel Stokes emission, absorption
// and rotation coefficients.
type PolarizedEmitter interface {
	Model
	RadiativeQPol(c *TransferCoefs, nu []float64, dsem float64, h *Hit)
}

// Absorber provides the fraction of intensity surviving absorption at an
// emitted frequency over a proper path length dsem.
type Absorber interface {
	Model
	Transmission(nu, dsem float64, h *Hit) float64
}

// Configurable exposes runtime-adjustable model parameters.
type Configurable interface {
	Params() map[string]float64
	SetParam(name string, value float64) error
}

// Capability identifies which radiative operations a model genuinely
// implements.
type Capability uint8

const (
	CapEmission Capability = 1 << iota
	CapEmissionBand
	CapRadiativeQ
	CapRadiativeQPol
	CapTransmission
)

// Has reports whether c includes every bit of want.
func (c Capability) Has(want Capability) bool { return c&want == want }

func (c Capability) String() string {
	if c == 0 {
		return "none"
	}
	names := []struct {
		bit  Capability
		name string
	}{
		{CapEmission, "emission"},
		{CapEmissionBand, "emission-band"},
		{CapRadiativeQ, "radiativeq"},
		{CapRadiativeQPol, "radiativeq-pol"},
		{CapTransmission, "transmission"},
	}
	s := ""
	for _, n := range names {
		if c&n.bit == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += n.name
	}
	return s
}

// Declarer lets a model narrow its capability set below what its method
// set suggests. A type that inherits radiative methods through embedding
// uses this to opt back into the derived defaults.
type Declarer interface {
	Capabilities() Capability
}
