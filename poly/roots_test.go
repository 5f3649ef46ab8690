package poly

import (
	"math/cmplx"
	"sort"
	"testing"
)

func TestFindRootsQuadratic(t *testing.T) {
	// x^2 - 5x + 6 = (x-2)(x-3)
	roots, err := FindRoots([]float64{1, -5, 6})
	if err != nil {
		t.Fatalf("FindRoots: %v", err)
	}

	got := make([]float64, len(roots))
	for i, r := range roots {
		got[i] = real(r)
	}

	sort.Float64s(got)

	want := []float64{2, 3}
	for i := range want {
		if cmplx.Abs(complex(got[i]-want[i], 0)) > 1e-6 {
			t.Fatalf("roots=%v, want %v", got, want)
		}
	}
}

func TestFindRootsPolynomialIdentity(t *testing.T) {
	roots, err := FindRoots([]float64{1, 0, -5, 0, 4}) // x^4-5x^2+4 => roots ±1, ±2
	if err != nil {
		t.Fatalf("FindRoots: %v", err)
	}

	// Reconstruct from found roots and check they satisfy the original poly.
	for _, r := range roots {
		v := Evaluate([]float64{1, 0, -5, 0, 4}, r)
		if cmplx.Abs(v) > 1e-6 {
			t.Errorf("root %v does not satisfy polynomial: residual %v", r, v)
		}
	}
}

func TestFindRootsRejectsZeroLeadingCoefficient(t *testing.T) {
	_, err := FindRoots([]float64{0, 1, 2})
	if err == nil {
		t.Fatalf("expected error for zero leading coefficient")
	}
}
