package generator

import (
	"math"
	"testing"
)

func TestWaveformDCLengthOne(t *testing.T) {
	g, err := NewWaveformDC(1000, 2, 0.5)
	if err != nil {
		t.Fatalf("NewWaveformDC: %v", err)
	}

	if g.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", g.Len())
	}

	if got := g.Next(); got != 2.5 {
		t.Errorf("DC value = %v, want 2.5", got)
	}
}

func TestWaveformSineLengthOneSecond(t *testing.T) {
	g, err := NewWaveformSine(1000, 1, 0, 10, 0)
	if err != nil {
		t.Fatalf("NewWaveformSine: %v", err)
	}

	if g.Len() != 1000 {
		t.Fatalf("Len() = %d, want 1000", g.Len())
	}

	if got := g.Next(); math.Abs(got) > 1e-9 {
		t.Errorf("first sine sample (phase=0) = %v, want ~0", got)
	}
}

func TestWaveformSineRejectsNegativeFrequency(t *testing.T) {
	if _, err := NewWaveformSine(1000, 1, 0, -5, 0); err == nil {
		t.Fatalf("expected error for negative frequency")
	}
}

func TestWaveformSineRejectsOutOfRangePhase(t *testing.T) {
	if _, err := NewWaveformSine(1000, 1, 0, 5, 7); err == nil {
		t.Fatalf("expected error for phase outside [0, 2*pi]")
	}
}

func TestWaveformImpulseSpikeAtExpectedIndex(t *testing.T) {
	g, err := NewWaveformImpulse(1000, 5, 0.25, 0)
	if err != nil {
		t.Fatalf("NewWaveformImpulse: %v", err)
	}

	samples := make([]float64, g.Len())
	for i := range samples {
		samples[i] = g.Next()
	}

	if samples[0] != 5 {
		t.Errorf("spike at index 0 = %v, want 5", samples[0])
	}

	for i := 1; i < len(samples); i++ {
		if samples[i] != 0.25 {
			t.Fatalf("sample[%d] = %v, want offset 0.25", i, samples[i])
		}
	}
}

func TestWaveformRejectsExcessiveSamplingRate(t *testing.T) {
	if _, err := NewWaveformSine(1<<31, 1, 0, 1, 0); err == nil {
		t.Fatalf("expected error for sampling rate above 2^31-1")
	}
}
