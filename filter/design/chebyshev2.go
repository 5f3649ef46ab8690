package design

import "github.com/signalkit/biosig-dsp/filter/stream"

// Chebyshev2 designs equiripple-stopband ("inverse Chebyshev") filters via
// the shared Fisher pipeline, using Settings.RippleDB as the stopband
// attenuation ripple (SPEC_FULL.md §4.3.5: the open question of how
// Chebyshev II's ripple parameter differs from Chebyshev I's is resolved
// by sharing the same field with the opposite physical meaning, matching
// how most filter-design literature overloads "ripple" this way).
type Chebyshev2 struct {
	Unimplemented
}

// NewChebyshev2 builds a Chebyshev Type II designer.
func NewChebyshev2() *Chebyshev2 {
	return &Chebyshev2{Unimplemented{name: "Chebyshev2"}}
}

func (d *Chebyshev2) CreateLowPass(settings Settings, cutoffHz float64) (stream.Filter, error) {
	return synthesize(methodBilinear, chebyshev2Prototype, settings, ShapeLowPass, cutoffHz)
}

func (d *Chebyshev2) CreateHighPass(settings Settings, cutoffHz float64) (stream.Filter, error) {
	return synthesize(methodBilinear, chebyshev2Prototype, settings, ShapeHighPass, cutoffHz)
}

func (d *Chebyshev2) CreateBandPass(settings Settings, loHz, hiHz float64) (stream.Filter, error) {
	return synthesize(methodBilinear, chebyshev2Prototype, settings, ShapeBandPass, loHz, hiHz)
}

func (d *Chebyshev2) CreateBandStop(settings Settings, loHz, hiHz float64) (stream.Filter, error) {
	return synthesize(methodBilinear, chebyshev2Prototype, settings, ShapeBandStop, loHz, hiHz)
}
