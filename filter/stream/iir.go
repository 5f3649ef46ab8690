package stream

import "github.com/signalkit/biosig-dsp/bioerr"

// IIRCoefficients holds a normalized-form transfer function: A[0] must be
// 1.0 after normalization (spec §3, IirFilterCoefficients). Both slices
// are non-empty.
type IIRCoefficients struct {
	A []float64
	B []float64
}

// GeneralIIR implements the normalized-form ring-buffer IIR filter of
// spec §4.2: two circular history buffers of length nb=|B|-1, na=|A|-1,
// each with its own write position, holding the most recent inputs and
// outputs respectively (excluding the zero-lag taps B[0]/A[0]).
//
// A GeneralIIR with A=[1] behaves as a pure FIR filter (no feedback ring),
// which is how the Savitzky-Golay designer reuses this primitive (spec
// §4.3.4).
type GeneralIIR struct {
	base

	b []float64 // B[0..nb], feedforward
	a []float64 // A[1..na], feedback (A[0]==1 implicit)

	xRing []float64
	yRing []float64
	posX  int
	posY  int
}

// NewGeneralIIR builds a GeneralIIR from normalized coefficients. It
// requires len(A) > 0, len(B) > 0 and A[0] == 1.0.
func NewGeneralIIR(c IIRCoefficients) (*GeneralIIR, error) {
	if len(c.A) == 0 || len(c.B) == 0 {
		return nil, bioerr.Arguments(0, "stream: IIR coefficients must be non-empty")
	}

	if c.A[0] != 1.0 {
		return nil, bioerr.Arguments(0, "stream: IIR A[0] must be normalized to 1.0, got %v", c.A[0])
	}

	nb := len(c.B) - 1
	na := len(c.A) - 1

	f := &GeneralIIR{
		base:  newBase(),
		b:     append([]float64(nil), c.B...),
		a:     append([]float64(nil), c.A[1:]...),
		xRing: make([]float64, nb),
		yRing: make([]float64, na),
	}

	return f, nil
}

// Process filters one sample. See spec §4.2 for the exact read-before-write
// ordering this implements.
func (f *GeneralIIR) Process(x float64) float64 {
	if !f.enabled {
		return x
	}

	nb := len(f.xRing)
	na := len(f.yRing)

	acc := f.b[0] * x

	for j := 1; j <= nb; j++ {
		idx := ((f.posX-j)%nb + nb) % nb
		acc += f.b[j] * f.xRing[idx]
	}

	for j := 1; j <= na; j++ {
		idx := ((f.posY-j)%na + na) % na
		acc -= f.a[j-1] * f.yRing[idx]
	}

	if nb > 0 {
		f.xRing[f.posX] = x
		f.posX = (f.posX + 1) % nb
	}

	if na > 0 {
		f.yRing[f.posY] = acc
		f.posY = (f.posY + 1) % na
	}

	return acc
}

// Reset zeros both ring buffers and resets the write positions.
func (f *GeneralIIR) Reset() {
	for i := range f.xRing {
		f.xRing[i] = 0
	}

	for i := range f.yRing {
		f.yRing[i] = 0
	}

	f.posX, f.posY = 0, 0
}
