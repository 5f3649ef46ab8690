package design

import (
	"math/cmplx"
	"testing"
)

func TestPadBilinearZerosFillsToMatchPoleCount(t *testing.T) {
	got := padBilinearZeros(nil, 3)
	if len(got) != 3 {
		t.Fatalf("len(got) = %d, want 3", len(got))
	}

	for _, z := range got {
		if z != complex(-1, 0) {
			t.Errorf("pad zero = %v, want -1", z)
		}
	}
}

func TestPadBilinearZerosKeepsExisting(t *testing.T) {
	got := padBilinearZeros([]complex128{complex(0, 1), complex(0, -1)}, 4)
	if len(got) != 4 {
		t.Fatalf("len(got) = %d, want 4", len(got))
	}

	if got[0] != complex(0, 1) || got[1] != complex(0, -1) {
		t.Errorf("existing zeros were not preserved: %v", got)
	}
}

func TestCheckConjugateClosedAcceptsRealValues(t *testing.T) {
	if err := checkConjugateClosed([]complex128{complex(-1, 0), complex(-2, 0)}); err != nil {
		t.Errorf("unexpected error for real-only set: %v", err)
	}
}

func TestCheckConjugateClosedAcceptsPairs(t *testing.T) {
	values := []complex128{complex(-1, 2), complex(-1, -2), complex(-3, 0)}
	if err := checkConjugateClosed(values); err != nil {
		t.Errorf("unexpected error for conjugate-closed set: %v", err)
	}
}

func TestCheckConjugateClosedRejectsUnpairedComplex(t *testing.T) {
	values := []complex128{complex(-1, 2), complex(-3, 0)}
	if err := checkConjugateClosed(values); err == nil {
		t.Fatalf("expected error for an unpaired complex value")
	}
}

func TestMapToZBilinearMapsOriginToOne(t *testing.T) {
	got := mapToZ([]complex128{0}, methodBilinear)
	if cmplx.Abs(got[0]-1) > 1e-12 {
		t.Errorf("bilinear map of s=0 = %v, want 1", got[0])
	}
}

func TestMapToZMatchedZMapsOriginToOne(t *testing.T) {
	got := mapToZ([]complex128{0}, methodMatchedZ)
	if cmplx.Abs(got[0]-1) > 1e-12 {
		t.Errorf("matched-Z map of s=0 = %v, want 1", got[0])
	}
}

func TestTransformBandStopZeroCountMatchesDoubledPoles(t *testing.T) {
	poles := []complex128{complex(-1, 0), complex(-2, 0)}

	newPoles, newZeros := transformBandStop(poles, 1.0, 0.5)
	if len(newPoles) != 2*len(poles) {
		t.Fatalf("len(newPoles) = %d, want %d", len(newPoles), 2*len(poles))
	}

	if len(newZeros) != 2*len(poles) {
		t.Fatalf("len(newZeros) = %d, want %d", len(newZeros), 2*len(poles))
	}
}

func TestTransformBandPassProducesNoZeros(t *testing.T) {
	poles := []complex128{complex(-1, 0)}

	_, newZeros := transformLowPass(poles, nil, 1) // sanity: lowpass keeps zero count

	if len(newZeros) != 0 {
		t.Errorf("lowpass transform of an all-pole prototype introduced zeros: %v", newZeros)
	}

	bpPoles := transformBandPass(poles, 1.0, 0.5)
	if len(bpPoles) != 2*len(poles) {
		t.Errorf("len(bpPoles) = %d, want %d", len(bpPoles), 2*len(poles))
	}
}
