package sealable

import "testing"

type widget struct {
	Sealable

	value int
}

func (w *widget) SetValue(v int) error {
	if err := w.ThrowIfSealed(); err != nil {
		return err
	}

	w.value = v

	return nil
}

func TestThrowIfSealedBlocksMutationAfterSeal(t *testing.T) {
	w := &widget{}

	if err := w.SetValue(1); err != nil {
		t.Fatalf("SetValue before seal: %v", err)
	}

	w.Seal()

	if err := w.SetValue(2); err == nil {
		t.Fatalf("expected error mutating a sealed widget")
	}

	if w.value != 1 {
		t.Errorf("value = %d, want 1 (mutation after seal must not apply)", w.value)
	}
}

func TestSealIsOneWay(t *testing.T) {
	w := &widget{}
	w.Seal()

	if !w.IsSealed() {
		t.Fatalf("IsSealed() = false after Seal()")
	}
}
