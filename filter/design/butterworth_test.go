package design

import (
	"math"
	"testing"

	"github.com/signalkit/biosig-dsp/numeric"
)

func TestButterworthLowPassUnityDCGain(t *testing.T) {
	settings, err := NewSettings(1000, WithOrder(4))
	if err != nil {
		t.Fatalf("NewSettings: %v", err)
	}

	f, err := NewButterworth().CreateLowPass(settings, 100)
	if err != nil {
		t.Fatalf("CreateLowPass: %v", err)
	}

	var last float64
	for i := 0; i < 2000; i++ {
		last = f.Process(1)
	}

	if !numeric.NearlyEqual(last, 1, 1e-6) {
		t.Errorf("steady-state DC response = %v, want ~1", last)
	}
}

func TestButterworthLowPassImpulseResponseBounded(t *testing.T) {
	settings, err := NewSettings(1000, WithOrder(4))
	if err != nil {
		t.Fatalf("NewSettings: %v", err)
	}

	f, err := NewButterworth().CreateLowPass(settings, 50)
	if err != nil {
		t.Fatalf("CreateLowPass: %v", err)
	}

	y := f.Process(1)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		t.Fatalf("impulse response first sample is not finite: %v", y)
	}

	for i := 0; i < 1000; i++ {
		y = f.Process(0)
		if math.Abs(y) > 10 {
			t.Fatalf("impulse response diverged at sample %d: %v", i, y)
		}
	}

	if math.Abs(y) > 1e-3 {
		t.Errorf("impulse response did not decay: final sample %v", y)
	}
}

func TestButterworthHighPassUnityNyquistGain(t *testing.T) {
	settings, err := NewSettings(1000, WithOrder(2))
	if err != nil {
		t.Fatalf("NewSettings: %v", err)
	}

	f, err := NewButterworth().CreateHighPass(settings, 100)
	if err != nil {
		t.Fatalf("CreateHighPass: %v", err)
	}

	var last float64
	x := 1.0
	for i := 0; i < 2000; i++ {
		last = f.Process(x)
		x = -x
	}

	if !numeric.NearlyEqual(math.Abs(last), 1, 1e-4) {
		t.Errorf("steady-state Nyquist response magnitude = %v, want ~1", math.Abs(last))
	}
}

func TestButterworthRejectsOutOfRangeCutoff(t *testing.T) {
	settings, _ := NewSettings(1000, WithOrder(2))

	if _, err := NewButterworth().CreateLowPass(settings, 600); err == nil {
		t.Fatalf("expected error for cutoff above Nyquist")
	}
}

func TestButterworthUnsupportedShapeFails(t *testing.T) {
	settings, _ := NewSettings(1000)

	if _, err := NewButterworth().CreatePeak(settings, 100); err == nil {
		t.Fatalf("expected Unsupported error for Peak shape")
	}
}

func TestButterworthBandPassRejectsInvertedEdges(t *testing.T) {
	settings, _ := NewSettings(1000, WithOrder(2))

	if _, err := NewButterworth().CreateBandPass(settings, 200, 100); err == nil {
		t.Fatalf("expected error for lo >= hi")
	}
}
