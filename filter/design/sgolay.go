package design

import (
	"gonum.org/v1/gonum/mat"

	"github.com/signalkit/biosig-dsp/bioerr"
	"github.com/signalkit/biosig-dsp/filter/stream"
)

// SavitzkyGolay designs a smoothing FIR filter whose taps are the
// least-squares polynomial-fit weights for the current sample within a
// sliding window (SPEC_FULL.md §4.3.4, resolving the open question of how
// a polynomial smoother fits the designer framework: it returns a
// GeneralIIR with A=[1], the same all-feedforward degenerate case
// dsp/filter/fir/filter.go's teacher counterpart implements as a
// dedicated FIR type).
type SavitzkyGolay struct {
	Unimplemented
}

// NewSavitzkyGolay builds a Savitzky-Golay designer.
func NewSavitzkyGolay() *SavitzkyGolay {
	return &SavitzkyGolay{Unimplemented{name: "SavitzkyGolay"}}
}

// savitzkyGolayWeights solves the normal equations of a degree-polyOrder
// polynomial least-squares fit over a window of equally spaced samples,
// returning the weights that reconstruct the fitted value at the window's
// centre offset (offset 0), via gonum.org/v1/gonum/mat.
func savitzkyGolayWeights(window, polyOrder int) ([]float64, error) {
	if window < 3 || window%2 == 0 {
		return nil, bioerr.Arguments(0, "design: savitzky-golay window must be odd and >= 3, got %d", window)
	}

	if polyOrder < 1 || polyOrder >= window {
		return nil, bioerr.Arguments(0, "design: savitzky-golay polynomial order must satisfy 1 <= order < window, got %d", polyOrder)
	}

	half := window / 2
	cols := polyOrder + 1

	aData := make([]float64, window*cols)
	for i := 0; i < window; i++ {
		offset := float64(i - half)

		pow := 1.0
		for j := 0; j < cols; j++ {
			aData[i*cols+j] = pow
			pow *= offset
		}
	}

	a := mat.NewDense(window, cols, aData)

	var ata mat.Dense
	ata.Mul(a.T(), a)

	e1 := mat.NewVecDense(cols, nil)
	e1.SetVec(0, 1)

	var v mat.VecDense
	if err := v.SolveVec(&ata, e1); err != nil {
		return nil, bioerr.Arithmetic("design: savitzky-golay normal equations are singular: %v", err)
	}

	var w mat.VecDense
	w.MulVec(a, &v)

	weights := make([]float64, window)
	for i := range weights {
		weights[i] = w.AtVec(i)
	}

	return weights, nil
}

// CreateOther builds the smoothing filter using Settings.Window and
// Settings.PolyOrder (spec §4.3: shapes outside the ten named ones route
// through CreateOther).
func (d *SavitzkyGolay) CreateOther(settings Settings) (stream.Filter, error) {
	weights, err := savitzkyGolayWeights(settings.Window, settings.PolyOrder)
	if err != nil {
		return nil, err
	}

	b := make([]float64, len(weights))
	for i, w := range weights {
		b[len(weights)-1-i] = w
	}

	return stream.NewGeneralIIR(stream.IIRCoefficients{A: []float64{1}, B: b})
}
