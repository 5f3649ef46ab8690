package design

import (
	"math"

	"github.com/signalkit/biosig-dsp/filter/stream"
)

// RBJCookbook designs filters from Robert Bristow-Johnson's Audio EQ
// Cookbook formulas, grounded on the teacher's dsp/filter/design/
// design.go (BilinearTransform/Lowpass/Highpass/Bandpass/Notch/Allpass/
// Peak/LowShelf/HighShelf). The cookbook formulas themselves derive a
// single second-order section; when Settings.Order > 1 that section is
// replicated into a Cascade of Order identical biquads (spec §4.3.2).
type RBJCookbook struct {
	Unimplemented
}

// NewRBJCookbook builds an RBJ cookbook designer.
func NewRBJCookbook() *RBJCookbook {
	return &RBJCookbook{Unimplemented{name: "RBJCookbook"}}
}

// cascadeOf wraps order identical biquad sections in a Cascade. order <= 1
// returns the lone Biquad directly rather than a one-stage Cascade.
func cascadeOf(order int, c stream.BiquadCoefficients) (stream.Filter, error) {
	first, err := stream.NewBiquad(c)
	if err != nil {
		return nil, err
	}

	if order <= 1 {
		return first, nil
	}

	stages := make([]stream.Filter, 1, order)
	stages[0] = first

	for i := 1; i < order; i++ {
		stage, err := stream.NewBiquad(c)
		if err != nil {
			return nil, err
		}

		stages = append(stages, stage)
	}

	return stream.NewCascade(stages...), nil
}

func rbjW0(centerHz, sampleRate float64) float64 {
	return 2 * math.Pi * centerHz / sampleRate
}

func rbjAlpha(w0, q float64) float64 {
	return math.Sin(w0) / (2 * q)
}

// bandToCenterQ derives an RBJ centre frequency and quality factor from a
// pair of band edges, the same geometric-mean/relative-bandwidth
// convention the Fisher pipeline uses for its own band-pass/stop
// reference frequency.
func bandToCenterQ(loHz, hiHz float64) (centerHz, q float64) {
	centerHz = math.Sqrt(loHz * hiHz)
	q = centerHz / (hiHz - loHz)

	return centerHz, q
}

func (d *RBJCookbook) CreateLowPass(settings Settings, cutoffHz float64) (stream.Filter, error) {
	w0 := rbjW0(cutoffHz, settings.SampleRate)
	alpha := rbjAlpha(w0, settings.Q)
	cosW0 := math.Cos(w0)

	c := stream.BiquadCoefficients{
		B0: (1 - cosW0) / 2,
		B1: 1 - cosW0,
		B2: (1 - cosW0) / 2,
		A0: 1 + alpha,
		A1: -2 * cosW0,
		A2: 1 - alpha,
	}

	return cascadeOf(settings.Order, c)
}

func (d *RBJCookbook) CreateHighPass(settings Settings, cutoffHz float64) (stream.Filter, error) {
	w0 := rbjW0(cutoffHz, settings.SampleRate)
	alpha := rbjAlpha(w0, settings.Q)
	cosW0 := math.Cos(w0)

	c := stream.BiquadCoefficients{
		B0: (1 + cosW0) / 2,
		B1: -(1 + cosW0),
		B2: (1 + cosW0) / 2,
		A0: 1 + alpha,
		A1: -2 * cosW0,
		A2: 1 - alpha,
	}

	return cascadeOf(settings.Order, c)
}

func (d *RBJCookbook) CreateBandPass(settings Settings, loHz, hiHz float64) (stream.Filter, error) {
	center, q := bandToCenterQ(loHz, hiHz)
	w0 := rbjW0(center, settings.SampleRate)
	alpha := rbjAlpha(w0, q)
	cosW0 := math.Cos(w0)

	c := stream.BiquadCoefficients{
		B0: alpha,
		B1: 0,
		B2: -alpha,
		A0: 1 + alpha,
		A1: -2 * cosW0,
		A2: 1 - alpha,
	}

	return cascadeOf(settings.Order, c)
}

func (d *RBJCookbook) CreateBandStop(settings Settings, loHz, hiHz float64) (stream.Filter, error) {
	center, q := bandToCenterQ(loHz, hiHz)

	return d.CreateNotch(Settings{SampleRate: settings.SampleRate, Order: settings.Order, Q: q}, center)
}

func (d *RBJCookbook) CreateNotch(settings Settings, centerHz float64) (stream.Filter, error) {
	w0 := rbjW0(centerHz, settings.SampleRate)
	alpha := rbjAlpha(w0, settings.Q)
	cosW0 := math.Cos(w0)

	c := stream.BiquadCoefficients{
		B0: 1,
		B1: -2 * cosW0,
		B2: 1,
		A0: 1 + alpha,
		A1: -2 * cosW0,
		A2: 1 - alpha,
	}

	return cascadeOf(settings.Order, c)
}

func (d *RBJCookbook) CreateAllPass(settings Settings, centerHz float64) (stream.Filter, error) {
	w0 := rbjW0(centerHz, settings.SampleRate)
	alpha := rbjAlpha(w0, settings.Q)
	cosW0 := math.Cos(w0)

	c := stream.BiquadCoefficients{
		B0: 1 - alpha,
		B1: -2 * cosW0,
		B2: 1 + alpha,
		A0: 1 + alpha,
		A1: -2 * cosW0,
		A2: 1 - alpha,
	}

	return cascadeOf(settings.Order, c)
}

func (d *RBJCookbook) CreatePeak(settings Settings, centerHz float64) (stream.Filter, error) {
	w0 := rbjW0(centerHz, settings.SampleRate)
	alpha := rbjAlpha(w0, settings.Q)
	cosW0 := math.Cos(w0)
	a := math.Pow(10, settings.GainDB/40)

	c := stream.BiquadCoefficients{
		B0: 1 + alpha*a,
		B1: -2 * cosW0,
		B2: 1 - alpha*a,
		A0: 1 + alpha/a,
		A1: -2 * cosW0,
		A2: 1 - alpha/a,
	}

	return cascadeOf(settings.Order, c)
}

func (d *RBJCookbook) CreateLowShelf(settings Settings, cutoffHz float64) (stream.Filter, error) {
	w0 := rbjW0(cutoffHz, settings.SampleRate)
	alpha := rbjAlpha(w0, settings.Q)
	cosW0 := math.Cos(w0)
	a := math.Pow(10, settings.GainDB/40)
	twoSqrtAAlpha := 2 * math.Sqrt(a) * alpha

	c := stream.BiquadCoefficients{
		B0: a * ((a + 1) - (a-1)*cosW0 + twoSqrtAAlpha),
		B1: 2 * a * ((a - 1) - (a+1)*cosW0),
		B2: a * ((a + 1) - (a-1)*cosW0 - twoSqrtAAlpha),
		A0: (a + 1) + (a-1)*cosW0 + twoSqrtAAlpha,
		A1: -2 * ((a - 1) + (a+1)*cosW0),
		A2: (a + 1) + (a-1)*cosW0 - twoSqrtAAlpha,
	}

	return cascadeOf(settings.Order, c)
}

func (d *RBJCookbook) CreateHighShelf(settings Settings, cutoffHz float64) (stream.Filter, error) {
	w0 := rbjW0(cutoffHz, settings.SampleRate)
	alpha := rbjAlpha(w0, settings.Q)
	cosW0 := math.Cos(w0)
	a := math.Pow(10, settings.GainDB/40)
	twoSqrtAAlpha := 2 * math.Sqrt(a) * alpha

	c := stream.BiquadCoefficients{
		B0: a * ((a + 1) + (a-1)*cosW0 + twoSqrtAAlpha),
		B1: -2 * a * ((a - 1) + (a+1)*cosW0),
		B2: a * ((a + 1) + (a-1)*cosW0 - twoSqrtAAlpha),
		A0: (a + 1) - (a-1)*cosW0 + twoSqrtAAlpha,
		A1: 2 * ((a - 1) - (a+1)*cosW0),
		A2: (a + 1) - (a-1)*cosW0 - twoSqrtAAlpha,
	}

	return cascadeOf(settings.Order, c)
}
