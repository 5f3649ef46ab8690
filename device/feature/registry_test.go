package feature

import "testing"

func TestFeatureEqualityIgnoresCaseAndPunctuation(t *testing.T) {
	a := New("amp", "Firmware Update!")
	b := New("amp", "firmwareupdate")

	if !a.Equal(b) {
		t.Fatalf("expected %+v to equal %+v", a, b)
	}
}

func TestFeatureEqualityRejectsDifferentNames(t *testing.T) {
	a := New("amp", "Firmware Update")
	b := New("amp", "Calibration")

	if a.Equal(b) {
		t.Fatalf("did not expect %+v to equal %+v", a, b)
	}
}

func TestRegisterFeatureRejectsForeignDeviceType(t *testing.T) {
	r := NewRegistry()
	r.RegisterDeviceType("amp", "")
	r.RegisterDeviceType("other", "")

	err := r.RegisterFeature("amp", New("other", "Calibration"), HandlerSet{
		IsAvailable: func() bool { return true },
	})
	if err == nil {
		t.Fatalf("expected error associating a foreign-device-type feature")
	}
}

func TestSubtypeInheritsSupertypeFeature(t *testing.T) {
	r := NewRegistry()
	r.RegisterDeviceType("amp", "")
	r.RegisterDeviceType("proAmp", "amp")

	f := New("amp", "Firmware Update")
	if err := r.RegisterFeature("amp", f, HandlerSet{IsAvailable: func() bool { return true }}); err != nil {
		t.Fatalf("RegisterFeature: %v", err)
	}

	if !r.IsAvailable("proAmp", f) {
		t.Fatalf("expected subtype proAmp to inherit the amp-registered feature")
	}
}

func TestSubtypeOverridesSupertypeFeature(t *testing.T) {
	r := NewRegistry()
	r.RegisterDeviceType("amp", "")
	r.RegisterDeviceType("proAmp", "amp")

	f := New("amp", "Calibration")
	if err := r.RegisterFeature("amp", f, HandlerSet{IsAvailable: func() bool { return true }}); err != nil {
		t.Fatalf("RegisterFeature(amp): %v", err)
	}

	if err := r.RegisterFeature("proAmp", f, HandlerSet{IsAvailable: func() bool { return false }}); err != nil {
		t.Fatalf("RegisterFeature(proAmp): %v", err)
	}

	if r.IsAvailable("proAmp", f) {
		t.Fatalf("expected proAmp's own registration to shadow amp's")
	}

	if !r.IsAvailable("amp", f) {
		t.Fatalf("expected amp's own registration to remain unaffected")
	}
}

func TestIsEnabledFallsBackToIsAvailable(t *testing.T) {
	r := NewRegistry()
	r.RegisterDeviceType("amp", "")

	f := New("amp", "AutoRange")
	if err := r.RegisterFeature("amp", f, HandlerSet{IsAvailable: func() bool { return true }}); err != nil {
		t.Fatalf("RegisterFeature: %v", err)
	}

	if !r.IsEnabled("amp", f) {
		t.Fatalf("expected IsEnabled to fall back to IsAvailable when no enabled predicate is declared")
	}
}

func TestIsAvailableAndEnabledDoesNotFallBack(t *testing.T) {
	r := NewRegistry()
	r.RegisterDeviceType("amp", "")

	f := New("amp", "AutoRange")
	if err := r.RegisterFeature("amp", f, HandlerSet{IsAvailable: func() bool { return true }}); err != nil {
		t.Fatalf("RegisterFeature: %v", err)
	}

	if r.IsAvailableAndEnabled("amp", f) {
		t.Fatalf("expected IsAvailableAndEnabled to require an explicit enabled predicate")
	}
}

func TestPerformRunsRegisteredHandlerExactlyWhenRequested(t *testing.T) {
	r := NewRegistry()
	r.RegisterDeviceType("amp", "")

	ran := 0
	f := New("amp", "Firmware Update")
	err := r.RegisterFeature("amp", f, HandlerSet{
		IsAvailable: func() bool { return true },
		IsEnabled:   func() bool { return true },
		Perform: func(param any) bool {
			ran++
			return true
		},
	})
	if err != nil {
		t.Fatalf("RegisterFeature: %v", err)
	}

	if !r.Perform("amp", f, nil) {
		t.Fatalf("expected Perform to report success")
	}

	if ran != 1 {
		t.Fatalf("handler ran %d times, want exactly 1", ran)
	}
}

func TestPerformUnregisteredFeatureReportsFalse(t *testing.T) {
	r := NewRegistry()
	r.RegisterDeviceType("amp", "")

	if r.Perform("amp", New("amp", "Nonexistent"), nil) {
		t.Fatalf("expected Perform on an unregistered feature to report false")
	}
}

func TestResolvedCacheReflectsLateRegistration(t *testing.T) {
	r := NewRegistry()
	r.RegisterDeviceType("amp", "")

	f := New("amp", "Calibration")

	if r.IsAvailable("amp", f) {
		t.Fatalf("expected unregistered feature to report unavailable")
	}

	if err := r.RegisterFeature("amp", f, HandlerSet{IsAvailable: func() bool { return true }}); err != nil {
		t.Fatalf("RegisterFeature: %v", err)
	}

	if !r.IsAvailable("amp", f) {
		t.Fatalf("expected cache invalidation on registration after a prior lookup")
	}
}
