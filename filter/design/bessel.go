package design

import "github.com/signalkit/biosig-dsp/filter/stream"

// Bessel designs maximally-flat-group-delay filters via the shared Fisher
// pipeline, using the matched-Z s->z mapping instead of the bilinear
// transform (no pre-warping) so the digital filter stays all-pole, the
// same way the teacher's dsp/filter/design/pass/bessel.go avoids
// distorting the linear-phase-like response near Nyquist — except here
// the poles come from Settings.Order roots of the reverse Bessel
// polynomial (spec §4.1) rather than the teacher's precomputed tables, so
// any order is supported, not just 1-10.
type Bessel struct {
	Unimplemented
}

// NewBessel builds a Bessel designer.
func NewBessel() *Bessel {
	return &Bessel{Unimplemented{name: "Bessel"}}
}

func (d *Bessel) CreateLowPass(settings Settings, cutoffHz float64) (stream.Filter, error) {
	return synthesize(methodMatchedZ, besselPrototype, settings, ShapeLowPass, cutoffHz)
}

func (d *Bessel) CreateHighPass(settings Settings, cutoffHz float64) (stream.Filter, error) {
	return synthesize(methodMatchedZ, besselPrototype, settings, ShapeHighPass, cutoffHz)
}
