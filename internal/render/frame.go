package render

import (
	"image"
	"image/color"

	"github.com/san-kum/lumet/internal/radiative"
)

// Frame is the backing storage for one scan: a flat array per requested
// quantity, image-plane ordered (row-major), with spectral cubes storing
// channel c of pixel p at c*npix + p.
type Frame struct {
	Width, Height, Channels int

	Intensity    []float64
	Time         []float64
	MinDistance  []float64
	FirstDMin    []float64
	Redshift     []float64
	Spectrum     []float64
	StokesQ      []float64
	StokesU      []float64
	StokesV      []float64
	BinSpectrum  []float64
	ImpactCoords []float64
}

func newFrame(w, h, channels int, q radiative.Quantity) *Frame {
	f := &Frame{Width: w, Height: h, Channels: channels}
	npix := w * h
	alloc := func(bit radiative.Quantity, n int) []float64 {
		if q&bit == 0 {
			return nil
		}
		return make([]float64, n)
	}
	f.Intensity = alloc(radiative.QuantityIntensity, npix)
	f.Time = alloc(radiative.QuantityEmissionTime, npix)
	f.MinDistance = alloc(radiative.QuantityMinDistance, npix)
	f.FirstDMin = alloc(radiative.QuantityFirstDMin, npix)
	f.Redshift = alloc(radiative.QuantityRedshift, npix)
	f.Spectrum = alloc(radiative.QuantitySpectrum, channels*npix)
	f.StokesQ = alloc(radiative.QuantityStokesQ, channels*npix)
	f.StokesU = alloc(radiative.QuantityStokesU, channels*npix)
	f.StokesV = alloc(radiative.QuantityStokesV, channels*npix)
	f.BinSpectrum = alloc(radiative.QuantityBinSpectrum, channels*npix)
	f.ImpactCoords = alloc(radiative.QuantityImpactCoords, 16*npix)
	return f
}

// row returns an observable record anchored at pixel 0. All slots share
// the image-plane channel stride, so advancing the record walks the
// frame pixel by pixel.
func (f *Frame) row() radiative.Observables {
	return radiative.Observables{
		Intensity:    f.Intensity,
		Time:         f.Time,
		Distance:     f.MinDistance,
		FirstDMin:    f.FirstDMin,
		Redshift:     f.Redshift,
		Spectrum:     f.Spectrum,
		StokesQ:      f.StokesQ,
		StokesU:      f.StokesU,
		StokesV:      f.StokesV,
		BinSpectrum:  f.BinSpectrum,
		ImpactCoords: f.ImpactCoords,
		Offset:       f.Width * f.Height,
	}
}

// SpectrumAt gathers the differential spectrum of one pixel.
func (f *Frame) SpectrumAt(i, j int) []float64 {
	return f.cubeAt(f.Spectrum, i, j)
}

// BinSpectrumAt gathers the binned spectrum of one pixel.
func (f *Frame) BinSpectrumAt(i, j int) []float64 {
	return f.cubeAt(f.BinSpectrum, i, j)
}

func (f *Frame) cubeAt(cube []float64, i, j int) []float64 {
	if cube == nil {
		return nil
	}
	npix := f.Width * f.Height
	p := j*f.Width + i
	out := make([]float64, f.Channels)
	for c := 0; c < f.Channels; c++ {
		out[c] = cube[c*npix+p]
	}
	return out
}

// GrayImage renders the intensity plane normalized to its maximum.
func (f *Frame) GrayImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
	if f.Intensity == nil {
		return img
	}
	max := 0.0
	for _, v := range f.Intensity {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return img
	}
	for j := 0; j < f.Height; j++ {
		for i := 0; i < f.Width; i++ {
			v := f.Intensity[j*f.Width+i] / max
			img.SetGray(i, j, color.Gray{Y: uint8(v*255 + 0.5)})
		}
	}
	return img
}
