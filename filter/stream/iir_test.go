package stream

import (
	"testing"

	"github.com/signalkit/biosig-dsp/numeric"
)

func TestGeneralIIRRequiresNormalizedA0(t *testing.T) {
	_, err := NewGeneralIIR(IIRCoefficients{A: []float64{2, 0.1}, B: []float64{1}})
	if err == nil {
		t.Fatalf("expected error for un-normalized A0")
	}
}

func TestGeneralIIRMatchesBiquad(t *testing.T) {
	// A biquad and an equivalent order-2 GeneralIIR must agree sample for sample.
	bq, err := NewBiquad(BiquadCoefficients{B0: 0.3, B1: 0.2, B2: 0.1, A0: 1, A1: -0.5, A2: 0.2})
	if err != nil {
		t.Fatalf("NewBiquad: %v", err)
	}

	iir, err := NewGeneralIIR(IIRCoefficients{
		A: []float64{1, -0.5, 0.2},
		B: []float64{0.3, 0.2, 0.1},
	})
	if err != nil {
		t.Fatalf("NewGeneralIIR: %v", err)
	}

	input := []float64{1, 0, 0, 0.5, -0.3, 0.2, 0, 0, 0.1}
	for i, x := range input {
		ya := bq.Process(x)
		yb := iir.Process(x)

		if !numeric.NearlyEqual(ya, yb, 1e-9) {
			t.Fatalf("sample %d: biquad=%v general=%v", i, ya, yb)
		}
	}
}

func TestGeneralIIRAsFIR(t *testing.T) {
	// A=[1] means no feedback: pure FIR moving-average-like behavior.
	f, err := NewGeneralIIR(IIRCoefficients{A: []float64{1}, B: []float64{0.5, 0.5}})
	if err != nil {
		t.Fatalf("NewGeneralIIR: %v", err)
	}

	y0 := f.Process(1) // 0.5*1 + 0.5*0 = 0.5
	y1 := f.Process(1) // 0.5*1 + 0.5*1 = 1.0

	if !numeric.NearlyEqual(y0, 0.5, 1e-12) {
		t.Errorf("y0=%v, want 0.5", y0)
	}

	if !numeric.NearlyEqual(y1, 1.0, 1e-12) {
		t.Errorf("y1=%v, want 1.0", y1)
	}
}

func TestGeneralIIRReset(t *testing.T) {
	f, _ := NewGeneralIIR(IIRCoefficients{A: []float64{1, -0.5}, B: []float64{1, 0.5}})
	f.Process(1)
	f.Process(2)
	f.Reset()

	y := f.Process(0)
	if !numeric.NearlyEqual(y, 0, 1e-12) {
		t.Errorf("after reset, Process(0)=%v, want 0", y)
	}
}
