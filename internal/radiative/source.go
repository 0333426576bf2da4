package radiative

import "math"

// Source binds an emission model to the transfer engine. Bind resolves
// once, up front, which of the five radiative operations the model
// genuinely implements; every operation the model lacks is derived from
// the ones it has. The derivation chain is bounded (at most three
// delegations) and never revisits an operation, so any non-empty subset
// of overrides terminates in a leaf computation.
//
// A Source is immutable after Bind and safe for concurrent use as long
// as the underlying model is.
type Source struct {
	model Model
	caps  Capability
	thin  bool
}

// Bind resolves the capability set of m and attaches the optical-depth
// regime: an optically thin source emits per unit length and transmits
// light through, a thick one radiates from its surface and blocks it.
func Bind(m Model, opticallyThin bool) *Source {
	return &Source{model: m, caps: Resolve(m), thin: opticallyThin}
}

// Resolve reports the operations m genuinely implements. A model may
// narrow the result by declaring its capability set explicitly (see
// [Declarer]).
func Resolve(m Model) Capability {
	var caps Capability
	if _, ok := m.(ScalarEmitter); ok {
		caps |= CapEmission
	}
	if _, ok := m.(BandEmitter); ok {
		caps |= CapEmissionBand
	}
	if _, ok := m.(RadiativeEmitter); ok {
		caps |= CapRadiativeQ
	}
	if _, ok := m.(PolarizedEmitter); ok {
		caps |= CapRadiativeQPol
	}
	if _, ok := m.(Absorber); ok {
		caps |= CapTransmission
	}
	if d, ok := m.(Declarer); ok {
		caps &= d.Capabilities()
	}
	return caps
}

// Model returns the bound emission model.
func (s *Source) Model() Model { return s.model }

// Capabilities returns the resolved genuine-operation set.
func (s *Source) Capabilities() Capability { return s.caps }

// Defaults reports which of the band, unpolarized and polarized
// operations run on derived implementations for this source.
func (s *Source) Defaults() Capability {
	var d Capability
	if !s.caps.Has(CapEmissionBand) {
		d |= CapEmissionBand
	}
	if !s.caps.Has(CapRadiativeQ) {
		d |= CapRadiativeQ
	}
	if !s.caps.Has(CapRadiativeQPol) {
		d |= CapRadiativeQPol
	}
	return d
}

// OpticallyThin reports the optical-depth regime of the source.
func (s *Source) OpticallyThin() bool { return s.thin }

// Transmission returns the fraction of intensity surviving absorption at
// emitted frequency nu over proper length dsem. Without a genuine
// override the opacity is taken from the unpolarized radiativeQ path;
// with nothing to derive it from, a thin source transmits everything and
// a thick one nothing.
func (s *Source) Transmission(nu, dsem float64, h *Hit) float64 {
	if s.caps.Has(CapTransmission) {
		return s.model.(Absorber).Transmission(nu, dsem, h)
	}
	if s.caps&(CapRadiativeQ|CapRadiativeQPol) != 0 {
		var inu, taunu [1]float64
		s.RadiativeQ(inu[:], taunu[:], []float64{nu}, dsem, h)
		return taunu[0]
	}
	if s.thin {
		return 1
	}
	return 0
}

// Emission returns specific intensity at a single emitted frequency.
// The last-resort fallback is uniform unit emission: per unit length
// (dsem) in the thin regime, unit intensity in the thick regime.
func (s *Source) Emission(nu, dsem float64, h *Hit) float64 {
	if s.caps.Has(CapEmission) {
		return s.model.(ScalarEmitter).Emission(nu, dsem, h)
	}
	if s.caps&(CapEmissionBand|CapRadiativeQ|CapRadiativeQPol) != 0 {
		var inu [1]float64
		s.EmissionBand(inu[:], []float64{nu}, dsem, h)
		return inu[0]
	}
	if s.thin {
		return dsem
	}
	return 1
}

// EmissionBand fills inu with specific intensity at each frequency of
// nu, preferring a genuine band override, then either radiativeQ variant
// with the extra outputs discarded, then element-wise scalar emission.
func (s *Source) EmissionBand(inu, nu []float64, dsem float64, h *Hit) {
	if s.caps.Has(CapEmissionBand) {
		s.model.(BandEmitter).EmissionBand(inu, nu, dsem, h)
		return
	}
	if s.caps.Has(CapRadiativeQ) {
		taunu := make([]float64, len(nu))
		s.model.(RadiativeEmitter).RadiativeQ(inu, taunu, nu, dsem, h)
		return
	}
	if s.caps.Has(CapRadiativeQPol) {
		c := NewTransferCoefs(len(nu))
		s.model.(PolarizedEmitter).RadiativeQPol(c, nu, dsem, h)
		copy(inu, c.I)
		return
	}
	for i, f := range nu {
		inu[i] = s.Emission(f, dsem, h)
	}
}

// RadiativeQ fills per-channel specific intensity and transmission. When
// the model is genuinely polarized the opacity derives from its
// absorption coefficient as exp(-alphaI); otherwise intensity comes from
// the emission band and opacity from Transmission per channel.
func (s *Source) RadiativeQ(inu, taunu, nu []float64, dsem float64, h *Hit) {
	if s.caps.Has(CapRadiativeQ) {
		s.model.(RadiativeEmitter).RadiativeQ(inu, taunu, nu, dsem, h)
		return
	}
	if s.caps.Has(CapRadiativeQPol) {
		c := NewTransferCoefs(len(nu))
		s.model.(PolarizedEmitter).RadiativeQPol(c, nu, dsem, h)
		copy(inu, c.I)
		for i := range taunu {
			taunu[i] = math.Exp(-c.AlphaI[i])
		}
		return
	}
	s.EmissionBand(inu, nu, dsem, h)
	for i, f := range nu {
		taunu[i] = s.Transmission(f, dsem, h)
	}
}

// RadiativeQPol fills the full polarized coefficient set. The derived
// default is unpolarized: Q=U=V=0, the absorption coefficient follows
// from the channel opacity, and every other coefficient vanishes. The
// opacity floor at 0.1 keeps -ln from blowing up on nearly opaque
// channels.
func (s *Source) RadiativeQPol(c *TransferCoefs, nu []float64, dsem float64, h *Hit) {
	if s.caps.Has(CapRadiativeQPol) {
		s.model.(PolarizedEmitter).RadiativeQPol(c, nu, dsem, h)
		return
	}
	taunu := make([]float64, len(nu))
	s.RadiativeQ(c.I, taunu, nu, dsem, h)
	for i, tau := range taunu {
		c.Q[i], c.U[i], c.V[i] = 0, 0, 0
		if tau < 0.1 {
			c.AlphaI[i] = math.Inf(1)
		} else {
			c.AlphaI[i] = -math.Log(tau)
		}
		c.AlphaQ[i], c.AlphaU[i], c.AlphaV[i] = 0, 0, 0
		c.RotQ[i], c.RotU[i], c.RotV[i] = 0, 0, 0
	}
}
