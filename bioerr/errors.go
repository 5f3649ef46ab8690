// Package bioerr defines the structured error model shared by every
// biosig-dsp component: a severity/class/code/message record plus an
// aggregation type for operations that can fail in more than one way at
// once (channel validation, designer precondition checks, ...).
package bioerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Severity classifies how serious a condition is.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "Warning"
	case SeverityError:
		return "Error"
	case SeverityCritical:
		return "Critical"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Class buckets an error by the kind of failure it represents. Only
// Generic and Communication are retryable (see [Error.Retryable]).
type Class int

const (
	ClassGeneric Class = iota
	ClassInternal
	ClassArguments
	ClassState
	ClassUnsupported
	ClassDevice
	ClassCommunication
)

func (c Class) String() string {
	switch c {
	case ClassGeneric:
		return "Generic"
	case ClassInternal:
		return "Internal"
	case ClassArguments:
		return "Arguments"
	case ClassState:
		return "State"
	case ClassUnsupported:
		return "Unsupported"
	case ClassDevice:
		return "Device"
	case ClassCommunication:
		return "Communication"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Well-known codes. Additional codes are component-specific and documented
// where raised.
const (
	CodeUnspecified       uint16 = 0
	CodeLimitReached      uint16 = 1
	CodeInvalidOperation  uint16 = 2
	CodeCannotChangeState uint16 = 3
	CodeInvalidState      uint16 = 4
	CodeAcquisitionMode   uint16 = 5
	CodeArithmetic        uint16 = 6
	CodeHardwareFault     uint16 = 7
	CodeDuplicateChannel  uint16 = 8
	CodeEmptyChannelSet   uint16 = 9
)

// Error is the structured failure record spec'd by the domain's error
// model: severity, class, a numeric code and a human-readable message.
type Error struct {
	Severity Severity
	Class    Class
	Code     uint16
	Message  string

	cause error
}

// New builds an *Error. The returned value satisfies the standard error
// interface and carries a stack trace (via github.com/pkg/errors) rooted
// at the call to New.
func New(sev Severity, class Class, code uint16, message string) *Error {
	e := &Error{Severity: sev, Class: class, Code: code, Message: message}
	e.cause = errors.New(message)

	return e
}

// Wrap builds an *Error around an existing error, preserving it as the
// cause for errors.Unwrap/errors.Is/errors.As chains.
func Wrap(cause error, sev Severity, class Class, code uint16, message string) *Error {
	return &Error{
		Severity: sev,
		Class:    class,
		Code:     code,
		Message:  message,
		cause:    errors.Wrap(cause, message),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// HResult packs severity-independent class/code information into the
// Win32-style HRESULT layout used by the source this model was distilled
// from: 0xA0000000 | ((class & 0x7FF) << 16) | code.
func (e *Error) HResult() uint32 {
	return 0xA0000000 | (uint32(e.Class)&0x7FF)<<16 | uint32(e.Code)
}

// Retryable reports whether the retry policy in device.Device may attempt
// the failing operation again. Only Generic and Communication failures are
// retryable; everything else (including Arguments, State, Unsupported,
// Internal, Device) must propagate immediately.
func (e *Error) Retryable() bool {
	return e.Class == ClassGeneric || e.Class == ClassCommunication
}

// Arguments builds a ClassArguments error, typically SeverityError.
func Arguments(code uint16, format string, args ...any) *Error {
	return New(SeverityError, ClassArguments, code, fmt.Sprintf(format, args...))
}

// State builds a ClassState error.
func State(code uint16, format string, args ...any) *Error {
	return New(SeverityError, ClassState, code, fmt.Sprintf(format, args...))
}

// Unsupported builds a ClassUnsupported error.
func Unsupported(code uint16, format string, args ...any) *Error {
	return New(SeverityError, ClassUnsupported, code, fmt.Sprintf(format, args...))
}

// Internal builds a ClassInternal error, SeverityCritical by convention
// since it signals a broken invariant rather than bad input.
func Internal(code uint16, format string, args ...any) *Error {
	return New(SeverityCritical, ClassInternal, code, fmt.Sprintf(format, args...))
}

// Generic builds a ClassGeneric (retryable) error.
func Generic(code uint16, format string, args ...any) *Error {
	return New(SeverityError, ClassGeneric, code, fmt.Sprintf(format, args...))
}

// Communication builds a ClassCommunication (retryable) error, the class
// device connect/disconnect retry loops classify hardware-transport
// failures under.
func Communication(code uint16, format string, args ...any) *Error {
	return New(SeverityError, ClassCommunication, code, fmt.Sprintf(format, args...))
}

// DeviceFault builds a ClassDevice (non-retryable) error for device-level
// faults that are not transport failures (e.g. an unsupported mode
// transition's underlying cause).
func DeviceFault(code uint16, format string, args ...any) *Error {
	return New(SeverityError, ClassDevice, code, fmt.Sprintf(format, args...))
}

// Arithmetic builds a ClassGeneric error with CodeArithmetic for
// non-conjugate pole sets or non-converging root finding in the filter
// designer pipeline (spec §7: "Inner numeric operations report Arithmetic
// ... callers in the designer surface these unchanged").
func Arithmetic(format string, args ...any) *Error {
	return New(SeverityError, ClassGeneric, CodeArithmetic, fmt.Sprintf(format, args...))
}
