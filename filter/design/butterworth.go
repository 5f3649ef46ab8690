package design

import "github.com/signalkit/biosig-dsp/filter/stream"

// Butterworth designs maximally-flat-magnitude lowpass/highpass/bandpass/
// bandstop filters via the shared Fisher pipeline (spec §4.3.1), grounded
// on the teacher's dsp/filter/design/pass/butterworth.go cascade-of-
// biquads approach but replacing its Q-factor cascade with true complex
// pole placement and a generic bilinear mapping.
type Butterworth struct {
	Unimplemented
}

// NewButterworth builds a Butterworth designer.
func NewButterworth() *Butterworth {
	return &Butterworth{Unimplemented{name: "Butterworth"}}
}

func (d *Butterworth) CreateLowPass(settings Settings, cutoffHz float64) (stream.Filter, error) {
	return synthesize(methodBilinear, butterworthPrototype, settings, ShapeLowPass, cutoffHz)
}

func (d *Butterworth) CreateHighPass(settings Settings, cutoffHz float64) (stream.Filter, error) {
	return synthesize(methodBilinear, butterworthPrototype, settings, ShapeHighPass, cutoffHz)
}

func (d *Butterworth) CreateBandPass(settings Settings, loHz, hiHz float64) (stream.Filter, error) {
	return synthesize(methodBilinear, butterworthPrototype, settings, ShapeBandPass, loHz, hiHz)
}

func (d *Butterworth) CreateBandStop(settings Settings, loHz, hiHz float64) (stream.Filter, error) {
	return synthesize(methodBilinear, butterworthPrototype, settings, ShapeBandStop, loHz, hiHz)
}
