package design

import "testing"

func TestMedianDesignerBuildsWorkingFilter(t *testing.T) {
	settings, err := NewSettings(1000, WithWindow(5))
	if err != nil {
		t.Fatalf("NewSettings: %v", err)
	}

	f, err := NewMedianDesigner().CreateOther(settings)
	if err != nil {
		t.Fatalf("CreateOther: %v", err)
	}

	input := []float64{0, 0, 0, 0, 0, 1, 1, 1, 1, 1}

	var last float64
	for _, x := range input {
		last = f.Process(x)
	}

	if last != 1 {
		t.Errorf("median of full high window = %v, want 1", last)
	}
}

func TestMedianDesignerPropagatesWindowValidation(t *testing.T) {
	settings, _ := NewSettings(1000, WithWindow(5))
	settings.Window = 0 // bypass the Settings validation to exercise stream.NewMedian's own check

	if _, err := NewMedianDesigner().CreateOther(settings); err == nil {
		t.Fatalf("expected error for window size 0")
	}
}
