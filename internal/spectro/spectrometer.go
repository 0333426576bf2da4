// Package spectro provides spectrometer channel sets: immutable ordered
// frequency boundaries with per-bin index pairs.
package spectro

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Spectrometer holds nsamples channels delimited by nsamples+1
// increasing frequency boundaries.
type Spectrometer struct {
	boundaries []float64
	midpoints  []float64
	indices    []int
}

// NewUniform returns a spectrometer with channels spaced uniformly in
// frequency over [numin, numax].
func NewUniform(nsamples int, numin, numax float64) *Spectrometer {
	b := make([]float64, nsamples+1)
	floats.Span(b, numin, numax)
	return fromBoundaries(b)
}

// NewLog returns a spectrometer with channels spaced uniformly in log
// frequency over [numin, numax].
func NewLog(nsamples int, numin, numax float64) *Spectrometer {
	b := make([]float64, nsamples+1)
	floats.Span(b, math.Log10(numin), math.Log10(numax))
	for i, v := range b {
		b[i] = math.Pow(10, v)
	}
	return fromBoundaries(b)
}

func fromBoundaries(b []float64) *Spectrometer {
	n := len(b) - 1
	mid := make([]float64, n)
	idx := make([]int, 2*n)
	for i := 0; i < n; i++ {
		mid[i] = 0.5 * (b[i] + b[i+1])
		idx[2*i], idx[2*i+1] = i, i+1
	}
	return &Spectrometer{boundaries: b, midpoints: mid, indices: idx}
}

func (s *Spectrometer) NSamples() int                { return len(s.midpoints) }
func (s *Spectrometer) Midpoints() []float64         { return s.midpoints }
func (s *Spectrometer) NBoundaries() int             { return len(s.boundaries) }
func (s *Spectrometer) ChannelBoundaries() []float64 { return s.boundaries }
func (s *Spectrometer) ChannelIndices() []int        { return s.indices }
