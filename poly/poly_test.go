package poly

import (
	"math/cmplx"
	"testing"

	"github.com/signalkit/biosig-dsp/numeric"
)

func TestEvaluateHorner(t *testing.T) {
	// x^2 - 3x + 2 at x=5 => 25-15+2=12
	got := Evaluate([]float64{1, -3, 2}, complex(5, 0))
	if !numeric.ComplexNearlyEqual(got, complex(12, 0), 1e-9) {
		t.Errorf("Evaluate=%v, want 12", got)
	}
}

func TestMultiply(t *testing.T) {
	// (x+1)(x+2) = x^2+3x+2
	got := Multiply([]float64{1, 1}, []float64{1, 2})
	want := []float64{1, 3, 2}

	for i := range want {
		if !numeric.NearlyEqual(got[i], want[i], 1e-9) {
			t.Fatalf("Multiply=%v, want %v", got, want)
		}
	}
}

func TestExpandEmpty(t *testing.T) {
	got := Expand(nil)
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("Expand(nil)=%v, want [1]", got)
	}
}

func TestExpandEvaluatesToZeroAtRoots(t *testing.T) {
	roots := []complex128{complex(1, 2), complex(1, -2), complex(-3, 0)}
	coeffs := Expand(roots)

	for _, r := range roots {
		v := EvaluateComplex(coeffs, r)
		if cmplx.Abs(v) > 1e-9 {
			t.Errorf("Evaluate(Expand(roots), %v)=%v, want ~0", r, v)
		}
	}
}

func TestDeflateRoundTrip(t *testing.T) {
	a := []complex128{1, -3, 2} // (x-1)(x-2)

	q, err := Deflate(a, 1, 0)
	if err != nil {
		t.Fatalf("Deflate: %v", err)
	}

	rebuilt := MultiplyComplex(q, []complex128{1, -1})
	for i := range a {
		if cmplx.Abs(rebuilt[i]-a[i]) > 1e-9 {
			t.Fatalf("rebuilt=%v, want %v", rebuilt, a)
		}
	}
}

func TestDeflateRejectsLargeRemainder(t *testing.T) {
	a := []complex128{1, -3, 2} // roots at 1, 2
	_, err := Deflate(a, 5, 1e-9)
	if err == nil {
		t.Fatalf("Deflate at non-root should fail with tight tolerance")
	}
}

func TestEvaluateRationalDivisionByZero(t *testing.T) {
	r := RationalFraction{Top: []float64{1}, Bottom: []float64{1, -1}} // bottom = x-1
	_, err := EvaluateRational(r, complex(1, 0))
	if err == nil {
		t.Fatalf("expected error for zero denominator")
	}
}
