// Package photon implements the per-ray radiative state: observer-frame
// frequency, spectrometer binding, and the transmission/polarization
// track the transfer engine attenuates hit after hit. A Ray is owned by
// exactly one goroutine; rays never share state with each other.
package photon

import (
	"math"

	"github.com/san-kum/lumet/internal/radiative"
)

// Ray satisfies radiative.Ray.
type Ray struct {
	freqObs  float64
	spec     radiative.Spectrometer
	parallel bool

	transmission float64   // broadband
	channels     []float64 // per-channel

	// Accumulated Stokes state, allocated when polarization is enabled.
	sI, sQ, sU, sV []float64
}

// NewRay returns a fully transmitting, unpolarized ray. spec may be nil
// for rays that only carry broadband quantities.
func NewRay(freqObs float64, spec radiative.Spectrometer) *Ray {
	r := &Ray{freqObs: freqObs, spec: spec, transmission: 1}
	if spec != nil {
		r.channels = make([]float64, spec.NSamples())
		for i := range r.channels {
			r.channels[i] = 1
		}
	}
	return r
}

// EnablePolarization switches the ray to polarized transport: the ray
// starts tracking a per-channel Stokes state and reports a
// parallel-transported basis to the engine.
func (r *Ray) EnablePolarization() {
	r.parallel = true
	n := len(r.channels)
	buf := make([]float64, 4*n)
	r.sI, r.sQ, r.sU, r.sV = buf[0:n], buf[n:2*n], buf[2*n:3*n], buf[3*n:4*n]
}

func (r *Ray) ObserverFrequency() float64            { return r.freqObs }
func (r *Ray) Spectrometer() radiative.Spectrometer  { return r.spec }
func (r *Ray) ParallelTransport() bool               { return r.parallel }

// Transmission returns the fraction of intensity surviving the path
// integrated so far, broadband for radiative.AllChannels.
func (r *Ray) Transmission(channel int) float64 {
	if channel == radiative.AllChannels {
		return r.transmission
	}
	return r.channels[channel]
}

// Transmit folds one more absorbing segment into the track. The update
// is multiplicative: transmission only ever decreases along a ray.
func (r *Ray) Transmit(channel int, t float64) {
	if channel == radiative.AllChannels {
		r.transmission *= t
		return
	}
	r.channels[channel] *= t
}

// StokesState returns the accumulated Stokes parameters for a channel.
func (r *Ray) StokesState(channel int) (i, q, u, v float64) {
	return r.sI[channel], r.sQ[channel], r.sU[channel], r.sV[channel]
}

// Transfer advances the polarized transfer state through one emitting
// slab. Faraday rotation (RotV) turns the slab's linear polarization in
// the Q-U plane and the conversion coefficients (RotQ, RotU) mix U-V and
// V-Q; the rotated contribution is then attenuated by the transmission
// accumulated upstream of the slab. The coefficient arrays are updated
// in place to the contribution seen by the observer, and the per-channel
// transmission picks up the slab's own opacity exp(-alphaI). Slab
// self-absorption of its own emission is neglected (thin-slab step).
func (r *Ray) Transfer(c *radiative.TransferCoefs) {
	for i := range c.I {
		q, u, v := c.Q[i], c.U[i], c.V[i]
		if rot := c.RotV[i]; rot != 0 {
			cr, sr := math.Cos(2*rot), math.Sin(2*rot)
			q, u = q*cr-u*sr, q*sr+u*cr
		}
		if rot := c.RotQ[i]; rot != 0 {
			cr, sr := math.Cos(rot), math.Sin(rot)
			u, v = u*cr-v*sr, u*sr+v*cr
		}
		if rot := c.RotU[i]; rot != 0 {
			cr, sr := math.Cos(rot), math.Sin(rot)
			v, q = v*cr-q*sr, v*sr+q*cr
		}

		through := r.channels[i]
		c.I[i] *= through
		c.Q[i] = q * through
		c.U[i] = u * through
		c.V[i] = v * through

		r.sI[i] += c.I[i]
		r.sQ[i] += c.Q[i]
		r.sU[i] += c.U[i]
		r.sV[i] += c.V[i]

		r.channels[i] *= math.Exp(-c.AlphaI[i])
	}
}
