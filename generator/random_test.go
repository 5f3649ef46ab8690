package generator

import "testing"

func TestUniformRandomGeneratorRange(t *testing.T) {
	g := NewUniformRandomGenerator(42)

	for i := 0; i < 1000; i++ {
		v := g.Next()
		if v < 0 || v > 1 {
			t.Fatalf("sample %d out of [0,1]: %v", i, v)
		}
	}
}

func TestUniformRandomGeneratorResetReplaysSequence(t *testing.T) {
	g := NewUniformRandomGenerator(7)

	first := []float64{g.Next(), g.Next(), g.Next()}

	g.Reset()

	second := []float64{g.Next(), g.Next(), g.Next()}

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("sample %d differs after reset: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestGaussianGeneratorRejectsNegativeStd(t *testing.T) {
	if _, err := NewGaussianGenerator(1, 0, -1); err == nil {
		t.Fatalf("expected error for negative std")
	}
}

func TestGaussianGeneratorMeanConvergence(t *testing.T) {
	g, err := NewGaussianGenerator(1, 5, 2)
	if err != nil {
		t.Fatalf("NewGaussianGenerator: %v", err)
	}

	const n = 20000

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += g.Next()
	}

	mean := sum / n
	if mean < 4.8 || mean > 5.2 {
		t.Errorf("sample mean = %v, want close to 5", mean)
	}
}

func TestGaussianGeneratorZeroStdIsConstant(t *testing.T) {
	g, err := NewGaussianGenerator(1, 3, 0)
	if err != nil {
		t.Fatalf("NewGaussianGenerator: %v", err)
	}

	for i := 0; i < 10; i++ {
		if got := g.Next(); got != 3 {
			t.Errorf("sample %d = %v, want 3 (std=0)", i, got)
		}
	}
}
