package radiative

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Engine turns ray-object intersections into accumulated observables.
// It is stateless apart from its configuration and safe to share across
// goroutines.
type Engine struct {
	// Metric supplies the scalar product for the redshift factor.
	Metric Metric
	// Doppler toggles redshift; when false the redshift factor is forced
	// to 1 regardless of the metric and 4-velocities.
	Doppler bool
}

// NewEngine returns an engine with redshift enabled.
func NewEngine(m Metric) *Engine {
	return &Engine{Metric: m, Doppler: true}
}

// ProcessHit computes every requested observable for one intersection
// and folds it into data, updating the ray's transmission track along
// the way. Accumulation is additive, so successive hits along one ray
// compose. A nil or empty data record makes the call a no-op.
//
// Per hit: the redshift factor ggred = nu_obs/nu_em comes from the
// metric scalar product of the photon 4-momentum with the matter
// 4-velocity; dsem = dt/tdot * ggredm1 is the proper path length in the
// emitter frame. Specific intensities pick up ggred^3 (I_nu/nu^3 is
// Lorentz invariant); binned spectra integrate flux over a band and pick
// up one more power.
func (e *Engine) ProcessHit(src *Source, ray Ray, h *Hit, data *Observables) error {
	if data == nil || data.Quantities() == QuantityNone {
		return nil
	}

	freqObs := ray.ObserverFrequency()
	spr := ray.Spectrometer()
	nbnuobs := 0
	var nuobs []float64
	if spr != nil {
		nbnuobs = spr.NSamples()
		nuobs = spr.Midpoints()
	}
	dlambda := h.Dt / h.Photon[4]

	ggredm1 := 1.0
	if e.Doppler {
		if e.Metric == nil {
			return e.fault(h, ErrNoMetric)
		}
		ggredm1 = -e.Metric.ScalarProd(h.Photon[0:4], h.Object[4:8], h.Photon[4:8])
	}
	ggred := 1 / ggredm1
	dsem := dlambda * ggredm1

	if data.Redshift != nil {
		data.Redshift[0] = ggred
	}
	if data.Time != nil {
		data.Time[0] = h.Photon[0]
	}
	if data.ImpactCoords != nil && data.ImpactCoords[0] == Sentinel {
		if h.Extended() {
			return e.fault(h, ErrIncompatibleOptions)
		}
		copy(data.ImpactCoords[0:8], h.Object[:])
		copy(data.ImpactCoords[8:16], h.Photon[0:8])
	}

	if data.Intensity != nil {
		inc := src.Emission(freqObs*ggredm1, dsem, h) *
			ray.Transmission(AllChannels) * ggred * ggred * ggred
		if data.IntensityConverter != nil {
			inc = data.IntensityConverter(inc)
		}
		data.Intensity[0] += inc
	}

	if data.BinSpectrum != nil {
		if spr == nil {
			return e.fault(h, ErrNoSpectrometer)
		}
		st := data.stride()
		boundaries := make([]float64, spr.NBoundaries())
		floats.ScaleTo(boundaries, ggredm1, spr.ChannelBoundaries())
		binned := make([]float64, nbnuobs)
		src.IntegrateEmissionBand(binned, boundaries, spr.ChannelIndices(), dsem, h)
		ggred4 := ggred * ggred * ggred * ggred
		for i := 0; i < nbnuobs; i++ {
			inc := binned[i] * ray.Transmission(i) * ggred4
			if data.BinSpectrumConverter != nil {
				inc = data.BinSpectrumConverter(inc)
			}
			data.BinSpectrum[i*st] += inc
			if data.Spectrum == nil {
				// Otherwise the spectrum branch below owns the
				// per-channel transmission update.
				ray.Transmit(i, src.Transmission(nuobs[i]*ggredm1, dsem, h))
			}
		}
	}

	if data.Spectrum != nil || data.StokesQ != nil || data.StokesU != nil || data.StokesV != nil {
		if spr == nil {
			return e.fault(h, ErrNoSpectrometer)
		}
		st := data.stride()
		nuem := make([]float64, nbnuobs)
		floats.ScaleTo(nuem, ggredm1, nuobs)
		ggred3 := ggred * ggred * ggred

		if ray.ParallelTransport() {
			c := NewTransferCoefs(nbnuobs)
			src.RadiativeQPol(c, nuem, dsem, h)
			ray.Transfer(c)
			add := func(slot, vals []float64) {
				if slot == nil {
					return
				}
				for i := 0; i < nbnuobs; i++ {
					inc := vals[i] * ggred3
					if data.SpectrumConverter != nil {
						inc = data.SpectrumConverter(inc)
					}
					slot[i*st] += inc
				}
			}
			add(data.Spectrum, c.I)
			add(data.StokesQ, c.Q)
			add(data.StokesU, c.U)
			add(data.StokesV, c.V)
		} else {
			inu := make([]float64, nbnuobs)
			taunu := make([]float64, nbnuobs)
			src.RadiativeQ(inu, taunu, nuem, dsem, h)
			for i := 0; i < nbnuobs; i++ {
				if data.Spectrum != nil {
					inc := inu[i] * ray.Transmission(i) * ggred3
					if data.SpectrumConverter != nil {
						inc = data.SpectrumConverter(inc)
					}
					data.Spectrum[i*st] += inc
				}
				ray.Transmit(i, taunu[i])
			}
		}
	}

	ray.Transmit(AllChannels, src.Transmission(freqObs*ggredm1, dsem, h))
	return nil
}

func (e *Engine) fault(h *Hit, err error) error {
	var pos [4]float64
	copy(pos[:], h.Photon[0:4])
	return &HitError{Position: pos, Wrapped: err}
}

// Redshift returns the redshift factor nu_obs/nu_em for a hit without
// accumulating anything.
func (e *Engine) Redshift(h *Hit) (float64, error) {
	if !e.Doppler {
		return 1, nil
	}
	if e.Metric == nil {
		return math.NaN(), e.fault(h, ErrNoMetric)
	}
	return 1 / -e.Metric.ScalarProd(h.Photon[0:4], h.Object[4:8], h.Photon[4:8]), nil
}
