package radiative

import "math"

// Sentinel marks a slot that has not been written yet.
const Sentinel = math.MaxFloat64

const impactSize = 16

// Converter rescales one observable value before storage. A nil
// Converter is the identity.
type Converter func(float64) float64

// Quantity is a bitmask of physical quantities.
type Quantity uint32

const (
	QuantityIntensity Quantity = 1 << iota
	QuantityEmissionTime
	QuantityMinDistance
	QuantityFirstDMin
	QuantityRedshift
	QuantityNBCrossEqPlane
	QuantitySpectrum
	QuantityStokesQ
	QuantityStokesU
	QuantityStokesV
	QuantityBinSpectrum
	QuantityImpactCoords
	QuantityUser1
	QuantityUser2
	QuantityUser3
	QuantityUser4
	QuantityUser5

	QuantityNone Quantity = 0
)

// Observables is the sparse record of requested output slots for one
// image position. Every non-nil slice is a live slot into caller-owned
// storage: scalar slots read and write element 0, per-channel slots
// space channel i at i*Offset, and the impact-coordinate slot occupies
// 16 contiguous elements. Advancing re-slices every active slot, which
// is how one record walks an image row pixel by pixel.
type Observables struct {
	Intensity      []float64
	Time           []float64
	Distance       []float64
	FirstDMin      []float64
	Redshift       []float64
	NBCrossEqPlane []float64
	Spectrum       []float64
	StokesQ        []float64
	StokesU        []float64
	StokesV        []float64
	BinSpectrum    []float64
	ImpactCoords   []float64
	User1          []float64
	User2          []float64
	User3          []float64
	User4          []float64
	User5          []float64

	// Offset is the element spacing between successive spectral channels
	// of the per-channel slots (the image-plane size, for an image cube).
	// Zero means 1.
	Offset int

	IntensityConverter   Converter
	SpectrumConverter    Converter
	BinSpectrumConverter Converter

	firstDMinFound bool
}

func (o *Observables) stride() int {
	if o.Offset > 0 {
		return o.Offset
	}
	return 1
}

// Init resets every active slot for a fresh ray: additive slots to zero,
// time/distance/first-dmin and impact coordinates to the sentinel.
func (o *Observables) Init(nbnuobs int) {
	if o.Intensity != nil {
		o.Intensity[0] = 0
	}
	if o.Time != nil {
		o.Time[0] = Sentinel
	}
	if o.Distance != nil {
		o.Distance[0] = Sentinel
	}
	if o.FirstDMin != nil {
		o.FirstDMin[0] = Sentinel
		o.firstDMinFound = false
	}
	if o.Redshift != nil {
		o.Redshift[0] = 0
	}
	if o.NBCrossEqPlane != nil {
		o.NBCrossEqPlane[0] = 0
	}
	st := o.stride()
	for _, s := range [][]float64{o.Spectrum, o.StokesQ, o.StokesU, o.StokesV, o.BinSpectrum} {
		if s == nil {
			continue
		}
		for i := 0; i < nbnuobs; i++ {
			s[i*st] = 0
		}
	}
	if o.ImpactCoords != nil {
		for i := 0; i < impactSize; i++ {
			o.ImpactCoords[i] = Sentinel
		}
	}
	for _, s := range [][]float64{o.User1, o.User2, o.User3, o.User4, o.User5} {
		if s != nil {
			s[0] = 0
		}
	}
}

// Advance moves every active slot k positions along the image row (the
// impact-coordinate slot by 16k, since it stores two 8-element blocks).
// Advancing by k then by m lands where a single advance by k+m would.
func (o *Observables) Advance(k int) {
	adv := func(s []float64, n int) []float64 {
		if s == nil {
			return nil
		}
		return s[n:]
	}
	o.Intensity = adv(o.Intensity, k)
	o.Time = adv(o.Time, k)
	o.Distance = adv(o.Distance, k)
	o.FirstDMin = adv(o.FirstDMin, k)
	o.Redshift = adv(o.Redshift, k)
	o.NBCrossEqPlane = adv(o.NBCrossEqPlane, k)
	o.Spectrum = adv(o.Spectrum, k)
	o.StokesQ = adv(o.StokesQ, k)
	o.StokesU = adv(o.StokesU, k)
	o.StokesV = adv(o.StokesV, k)
	o.BinSpectrum = adv(o.BinSpectrum, k)
	o.ImpactCoords = adv(o.ImpactCoords, impactSize*k)
	o.User1 = adv(o.User1, k)
	o.User2 = adv(o.User2, k)
	o.User3 = adv(o.User3, k)
	o.User4 = adv(o.User4, k)
	o.User5 = adv(o.User5, k)
}

// Quantities reports which physical quantities are requested, derived
// purely from which slots are active.
func (o *Observables) Quantities() Quantity {
	q := QuantityNone
	set := func(s []float64, bit Quantity) {
		if s != nil {
			q |= bit
		}
	}
	set(o.Intensity, QuantityIntensity)
	set(o.Time, QuantityEmissionTime)
	set(o.Distance, QuantityMinDistance)
	set(o.FirstDMin, QuantityFirstDMin)
	set(o.Redshift, QuantityRedshift)
	set(o.NBCrossEqPlane, QuantityNBCrossEqPlane)
	set(o.Spectrum, QuantitySpectrum)
	set(o.StokesQ, QuantityStokesQ)
	set(o.StokesU, QuantityStokesU)
	set(o.StokesV, QuantityStokesV)
	set(o.BinSpectrum, QuantityBinSpectrum)
	set(o.ImpactCoords, QuantityImpactCoords)
	set(o.User1, QuantityUser1)
	set(o.User2, QuantityUser2)
	set(o.User3, QuantityUser3)
	set(o.User4, QuantityUser4)
	set(o.User5, QuantityUser5)
	return q
}
