package stream

import "github.com/signalkit/biosig-dsp/bioerr"

// BiquadCoefficients holds the three numerator (feedforward) and three
// denominator (feedback) taps of a second-order section, un-normalized.
// A0 need not be 1.0; NewBiquad normalizes on construction.
type BiquadCoefficients struct {
	B0, B1, B2 float64
	A0, A1, A2 float64
}

// Biquad is a Direct-Form-I second-order IIR section (spec §4.2):
//
//	y = b0*x + b1*x1 + b2*x2 - a1*y1 - a2*y2
//
// where x1,x2 are the two most recent inputs and y1,y2 the two most recent
// outputs. Unlike Direct Form II (Transposed), Direct Form I keeps both the
// input and output history explicitly, which is what spec §4.2 specifies.
type Biquad struct {
	base

	b0, b1, b2 float64
	a1, a2     float64

	x1, x2, y1, y2 float64
}

// NewBiquad builds a Biquad from un-normalized coefficients. A0 must be
// non-zero; the stored b/a taps are normalized by A0 so A0 itself need not
// be retained (spec §3: "A[0] = 1.0 after normalization").
func NewBiquad(c BiquadCoefficients) (*Biquad, error) {
	if c.A0 == 0 {
		return nil, bioerr.Arguments(0, "stream: biquad A0 must be non-zero")
	}

	return &Biquad{
		base: newBase(),
		b0:   c.B0 / c.A0,
		b1:   c.B1 / c.A0,
		b2:   c.B2 / c.A0,
		a1:   c.A1 / c.A0,
		a2:   c.A2 / c.A0,
	}, nil
}

// Process filters one sample through the Direct-Form-I difference
// equation and advances the history.
func (b *Biquad) Process(x float64) float64 {
	if !b.enabled {
		return x
	}

	y := b.b0*x + b.b1*b.x1 + b.b2*b.x2 - b.a1*b.y1 - b.a2*b.y2

	b.x2 = b.x1
	b.x1 = x
	b.y2 = b.y1
	b.y1 = y

	return y
}

// Reset zeros the four history states.
func (b *Biquad) Reset() {
	b.x1, b.x2, b.y1, b.y2 = 0, 0, 0, 0
}

// Coefficients returns the normalized (A0=1) coefficients currently in use.
func (b *Biquad) Coefficients() BiquadCoefficients {
	return BiquadCoefficients{B0: b.b0, B1: b.b1, B2: b.b2, A0: 1, A1: b.a1, A2: b.a2}
}
