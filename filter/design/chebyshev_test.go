package design

import (
	"testing"

	"github.com/signalkit/biosig-dsp/numeric"
)

func TestChebyshev1LowPassUnityDCGain(t *testing.T) {
	settings, err := NewSettings(1000, WithOrder(3), WithRippleDB(1.0))
	if err != nil {
		t.Fatalf("NewSettings: %v", err)
	}

	f, err := NewChebyshev1().CreateLowPass(settings, 80)
	if err != nil {
		t.Fatalf("CreateLowPass: %v", err)
	}

	var last float64
	for i := 0; i < 3000; i++ {
		last = f.Process(1)
	}

	if !numeric.NearlyEqual(last, 1, 1e-5) {
		t.Errorf("steady-state DC response = %v, want ~1", last)
	}
}

func TestChebyshev2LowPassUnityDCGain(t *testing.T) {
	settings, err := NewSettings(1000, WithOrder(4), WithRippleDB(30))
	if err != nil {
		t.Fatalf("NewSettings: %v", err)
	}

	f, err := NewChebyshev2().CreateLowPass(settings, 80)
	if err != nil {
		t.Fatalf("CreateLowPass: %v", err)
	}

	var last float64
	for i := 0; i < 3000; i++ {
		last = f.Process(1)
	}

	if !numeric.NearlyEqual(last, 1, 1e-4) {
		t.Errorf("steady-state DC response = %v, want ~1", last)
	}
}

func TestBesselLowPassUnityDCGain(t *testing.T) {
	settings, err := NewSettings(1000, WithOrder(3))
	if err != nil {
		t.Fatalf("NewSettings: %v", err)
	}

	f, err := NewBessel().CreateLowPass(settings, 100)
	if err != nil {
		t.Fatalf("CreateLowPass: %v", err)
	}

	var last float64
	for i := 0; i < 3000; i++ {
		last = f.Process(1)
	}

	if !numeric.NearlyEqual(last, 1, 1e-4) {
		t.Errorf("steady-state DC response = %v, want ~1", last)
	}
}

func TestBesselDoesNotSupportBandPass(t *testing.T) {
	settings, _ := NewSettings(1000, WithOrder(2))

	if _, err := NewBessel().CreateBandPass(settings, 50, 100); err == nil {
		t.Fatalf("expected Unsupported error, bessel designer only implements lowpass/highpass")
	}
}
