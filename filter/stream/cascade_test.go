package stream

import "testing"

func TestCascadeOrdering(t *testing.T) {
	a, _ := NewBiquad(BiquadCoefficients{B0: 2, A0: 1}) // doubles
	b, _ := NewBiquad(BiquadCoefficients{B0: 3, A0: 1}) // triples

	c := NewCascade(a, b)

	if got := c.Process(1); got != 6 {
		t.Errorf("cascade(double, triple).Process(1)=%v, want 6", got)
	}
}

func TestCascadeDisabledIsIdentity(t *testing.T) {
	a, _ := NewBiquad(BiquadCoefficients{B0: 2, A0: 1})
	c := NewCascade(a)
	c.SetEnabled(false)

	if got := c.Process(5); got != 5 {
		t.Errorf("disabled cascade.Process(5)=%v, want 5", got)
	}
}

func TestCascadeReset(t *testing.T) {
	a, _ := NewBiquad(BiquadCoefficients{B0: 1, B1: 1, A0: 1})
	c := NewCascade(a)

	c.Process(1)
	c.Reset()
	c.Reset()

	if got := c.Process(0); got != 0 {
		t.Errorf("after double reset, Process(0)=%v, want 0", got)
	}
}

func TestNullFilterSharedSafely(t *testing.T) {
	n := NullFilter{}
	if got := n.Process(42); got != 42 {
		t.Errorf("NullFilter.Process(42)=%v, want 42", got)
	}
}
