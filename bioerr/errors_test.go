package bioerr

import (
	"errors"
	"testing"
)

func TestErrorRetryable(t *testing.T) {
	tests := []struct {
		class Class
		want  bool
	}{
		{ClassGeneric, true},
		{ClassCommunication, true},
		{ClassArguments, false},
		{ClassState, false},
		{ClassUnsupported, false},
		{ClassInternal, false},
		{ClassDevice, false},
	}

	for _, tt := range tests {
		e := New(SeverityError, tt.class, 0, "boom")
		if got := e.Retryable(); got != tt.want {
			t.Errorf("class %v: Retryable()=%v, want %v", tt.class, got, tt.want)
		}
	}
}

func TestErrorHResult(t *testing.T) {
	e := New(SeverityError, ClassArguments, 7, "bad arg")

	want := uint32(0xA0000000) | (uint32(ClassArguments)&0x7FF)<<16 | 7
	if got := e.HResult(); got != want {
		t.Errorf("HResult()=%#x, want %#x", got, want)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("root cause")
	e := Wrap(cause, SeverityError, ClassDevice, 0, "device failed")

	if !errors.Is(e, cause) {
		t.Errorf("errors.Is(e, cause) = false, want true")
	}
}

func TestExceptionDisplay(t *testing.T) {
	exc := NewException(
		Arguments(1, "bad id"),
		Arguments(2, "bad name"),
	)

	if got, want := exc.Error(), "bad id"; got != want {
		t.Errorf("Error()=%q, want %q", got, want)
	}

	if got, want := exc.String(), "bad id\nbad name"; got != want {
		t.Errorf("String()=%q, want %q", got, want)
	}

	if exc.Len() != 2 {
		t.Errorf("Len()=%d, want 2", exc.Len())
	}
}

func TestExceptionAccumulate(t *testing.T) {
	var exc Exception

	exc.Append(nil)
	if exc.ErrOrNil() != nil {
		t.Fatalf("ErrOrNil() on empty accumulator should be nil")
	}

	exc.Append(Arguments(1, "one"))
	exc.Append(Arguments(2, "two"))

	if err := exc.ErrOrNil(); err == nil {
		t.Fatalf("ErrOrNil() should be non-nil after Append")
	}
}
