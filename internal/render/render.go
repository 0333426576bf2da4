// Package render scans an image grid of rays against an emitting sphere
// in flat spacetime and accumulates per-pixel observables through the
// radiative-transfer engine. Rays are straight lines: geodesic
// integration in curved spacetimes happens elsewhere, the scan only
// needs hit records. Pixels are independent; rows fan out across a
// worker pool once the source's capability set has been resolved, so no
// two goroutines ever contend on shared state.
package render

import (
	"context"
	"math"
	"runtime"
	"sync"

	"github.com/san-kum/lumet/internal/photon"
	"github.com/san-kum/lumet/internal/radiative"
)

// Options configures one scan.
type Options struct {
	Width, Height int
	FOV           float64    // full horizontal field of view, radians
	Distance      float64    // observer distance from the sphere centre
	Radius        float64    // sphere radius
	Beta          [3]float64 // sphere matter velocity, fraction of c
	Steps         int        // hits per ray crossing
	FreqObs       float64
	Polarized     bool
	Workers       int
	Quantities    radiative.Quantity

	IntensityConverter   radiative.Converter
	SpectrumConverter    radiative.Converter
	BinSpectrumConverter radiative.Converter
}

// Renderer drives the engine over an image grid.
type Renderer struct {
	engine *radiative.Engine
	source *radiative.Source
	spec   radiative.Spectrometer // may be nil
	opts   Options
}

func New(engine *radiative.Engine, source *radiative.Source, spec radiative.Spectrometer, opts Options) *Renderer {
	if opts.Steps <= 0 {
		opts.Steps = 1
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	return &Renderer{engine: engine, source: source, spec: spec, opts: opts}
}

// Render scans every pixel and returns the accumulated frame.
func (r *Renderer) Render(ctx context.Context) (*Frame, error) {
	channels := 0
	if r.spec != nil {
		channels = r.spec.NSamples()
	}
	frame := newFrame(r.opts.Width, r.opts.Height, channels, r.opts.Quantities)

	rows := make(chan int)
	done := make(chan struct{})
	errs := make([]error, r.opts.Workers)
	var once sync.Once
	var wg sync.WaitGroup
	for w := 0; w < r.opts.Workers; w++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			for j := range rows {
				if err := r.renderRow(j, frame); err != nil {
					errs[idx] = err
					// Unblock the feeder: with every worker gone
					// nobody would receive the remaining rows.
					once.Do(func() { close(done) })
					return
				}
			}
		}(w)
	}

	var cancelled error
feed:
	for j := 0; j < r.opts.Height; j++ {
		select {
		case <-ctx.Done():
			cancelled = ctx.Err()
			break feed
		case <-done:
			break feed
		case rows <- j:
		}
	}
	close(rows)
	wg.Wait()

	if cancelled != nil {
		return frame, cancelled
	}
	for _, err := range errs {
		if err != nil {
			return frame, err
		}
	}
	return frame, nil
}

func (r *Renderer) renderRow(j int, frame *Frame) error {
	data := frame.row()
	data.IntensityConverter = r.opts.IntensityConverter
	data.SpectrumConverter = r.opts.SpectrumConverter
	data.BinSpectrumConverter = r.opts.BinSpectrumConverter
	data.Advance(j * frame.Width)

	for i := 0; i < frame.Width; i++ {
		data.Init(frame.Channels)
		if err := r.renderPixel(i, j, &data); err != nil {
			return err
		}
		data.Advance(1)
	}
	return nil
}

func (r *Renderer) renderPixel(i, j int, data *radiative.Observables) error {
	dir := r.pixelDir(i, j)

	// A straight ray has exactly one minimum of the distance to the
	// sphere centre, so it is both the overall and the first one.
	if data.Distance != nil || data.FirstDMin != nil {
		d := closestApproach(r.opts.Distance, dir)
		if data.Distance != nil && d < data.Distance[0] {
			data.Distance[0] = d
		}
		if data.FirstDMin != nil && data.FirstDMin[0] == radiative.Sentinel {
			data.FirstDMin[0] = d
		}
	}

	t0, t1, hit := intersectSphere(r.opts.Distance, dir, r.opts.Radius)
	if !hit {
		return nil
	}

	ray := photon.NewRay(r.opts.FreqObs, r.spec)
	if r.opts.Polarized {
		ray.EnablePolarization()
	}
	u := fourVelocity(r.opts.Beta)

	seg := (t1 - t0) / float64(r.opts.Steps)
	for k := 0; k < r.opts.Steps; k++ {
		tm := t0 + (float64(k)+0.5)*seg
		h := r.hitAt(tm, dir, u)
		h.Dt = seg
		if err := r.engine.ProcessHit(r.source, ray, h, data); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) pixelDir(i, j int) [3]float64 {
	w, h := float64(r.opts.Width), float64(r.opts.Height)
	ax := (float64(i) + 0.5 - w/2) / w * r.opts.FOV
	ay := (float64(j) + 0.5 - h/2) / w * r.opts.FOV
	d := [3]float64{math.Tan(ax), math.Tan(ay), -1}
	return normalize(d)
}

// hitAt builds the hit record at path parameter tm along the ray. The
// photon 4-velocity is the null vector (1, -dir): dir marches from the
// camera into the scene, while the physical momentum points from the
// emitter toward the observer, which is the sign the redshift scalar
// product needs. A polarized ray carries two transverse basis vectors on
// top of the 8 kinematic scalars.
func (r *Renderer) hitAt(tm float64, dir [3]float64, u [4]float64) *radiative.Hit {
	pos := [3]float64{
		tm * dir[0],
		tm * dir[1],
		r.opts.Distance + tm*dir[2],
	}
	n := 8
	if r.opts.Polarized {
		n = 16
	}
	ph := make([]float64, n)
	ph[0] = tm
	ph[1], ph[2], ph[3] = pos[0], pos[1], pos[2]
	ph[4] = 1
	ph[5], ph[6], ph[7] = -dir[0], -dir[1], -dir[2]
	if r.opts.Polarized {
		e1, e2 := transverseBasis(dir)
		ph[9], ph[10], ph[11] = e1[0], e1[1], e1[2]
		ph[13], ph[14], ph[15] = e2[0], e2[1], e2[2]
	}

	h := &radiative.Hit{Photon: ph}
	h.Object[0] = tm
	h.Object[1], h.Object[2], h.Object[3] = pos[0], pos[1], pos[2]
	h.Object[4], h.Object[5], h.Object[6], h.Object[7] = u[0], u[1], u[2], u[3]
	return h
}

// intersectSphere solves |o + t*dir| = radius for an observer at
// (0, 0, distance); both roots must be in front of the observer.
func intersectSphere(distance float64, dir [3]float64, radius float64) (t0, t1 float64, ok bool) {
	b := distance * dir[2]
	c := distance*distance - radius*radius
	disc := b*b - c
	if disc <= 0 {
		return 0, 0, false
	}
	s := math.Sqrt(disc)
	t0, t1 = -b-s, -b+s
	if t0 <= 0 {
		return 0, 0, false
	}
	return t0, t1, true
}

// closestApproach is the smallest distance between the ray from
// (0, 0, distance) along dir and the sphere centre. A ray moving away
// is closest at its start.
func closestApproach(distance float64, dir [3]float64) float64 {
	b := distance * dir[2]
	if -b <= 0 {
		return distance
	}
	return math.Sqrt(distance*distance - b*b)
}

func fourVelocity(beta [3]float64) [4]float64 {
	b2 := beta[0]*beta[0] + beta[1]*beta[1] + beta[2]*beta[2]
	gamma := 1 / math.Sqrt(1-b2)
	return [4]float64{gamma, gamma * beta[0], gamma * beta[1], gamma * beta[2]}
}

func normalize(v [3]float64) [3]float64 {
	n := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	return [3]float64{v[0] / n, v[1] / n, v[2] / n}
}

// transverseBasis returns two unit vectors orthogonal to dir and to each
// other, the spatial parts of the polarization basis.
func transverseBasis(dir [3]float64) (e1, e2 [3]float64) {
	up := [3]float64{0, 0, 1}
	if math.Abs(dir[2]) > 0.999 {
		up = [3]float64{1, 0, 0}
	}
	e1 = normalize(cross(dir, up))
	e2 = cross(dir, e1)
	return e1, e2
}

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
