package design

import "github.com/signalkit/biosig-dsp/filter/stream"

// Chebyshev1 designs equiripple-passband filters via the shared Fisher
// pipeline, using Settings.RippleDB as the passband ripple.
type Chebyshev1 struct {
	Unimplemented
}

// NewChebyshev1 builds a Chebyshev Type I designer.
func NewChebyshev1() *Chebyshev1 {
	return &Chebyshev1{Unimplemented{name: "Chebyshev1"}}
}

func (d *Chebyshev1) CreateLowPass(settings Settings, cutoffHz float64) (stream.Filter, error) {
	return synthesize(methodBilinear, chebyshev1Prototype, settings, ShapeLowPass, cutoffHz)
}

func (d *Chebyshev1) CreateHighPass(settings Settings, cutoffHz float64) (stream.Filter, error) {
	return synthesize(methodBilinear, chebyshev1Prototype, settings, ShapeHighPass, cutoffHz)
}

func (d *Chebyshev1) CreateBandPass(settings Settings, loHz, hiHz float64) (stream.Filter, error) {
	return synthesize(methodBilinear, chebyshev1Prototype, settings, ShapeBandPass, loHz, hiHz)
}

func (d *Chebyshev1) CreateBandStop(settings Settings, loHz, hiHz float64) (stream.Filter, error) {
	return synthesize(methodBilinear, chebyshev1Prototype, settings, ShapeBandStop, loHz, hiHz)
}
