package bioerr

import (
	"strings"

	multierror "github.com/hashicorp/go-multierror"
)

// Exception aggregates one or more *Error values raised while completing a
// single logical operation (e.g. validating a channel collection at device
// setup, where id uniqueness, name uniqueness and sampling-rate consistency
// are all checked before failing). Its displayed Error() is the first
// error's message; its multi-line form (String) joins every message with a
// newline, per spec §4.9.
type Exception struct {
	errs *multierror.Error
}

// NewException builds an Exception from one or more errors. At least one
// error is required; NewException panics if called with zero errors since
// an empty exception violates the "non-empty sequence" invariant and
// indicates a caller bug, not a runtime condition.
func NewException(errs ...error) *Exception {
	if len(errs) == 0 {
		panic("bioerr: NewException requires at least one error")
	}

	agg := &multierror.Error{}
	for _, e := range errs {
		if e != nil {
			agg = multierror.Append(agg, e)
		}
	}

	return &Exception{errs: agg}
}

// Append adds another error to the exception in place and returns the
// receiver, for accumulate-then-finalize validation loops.
func (x *Exception) Append(err error) *Exception {
	if err == nil {
		return x
	}

	if x.errs == nil {
		x.errs = &multierror.Error{}
	}

	x.errs = multierror.Append(x.errs, err)

	return x
}

// Errors returns the underlying errors in the order they were appended.
func (x *Exception) Errors() []error {
	if x.errs == nil {
		return nil
	}

	return x.errs.Errors
}

// Len reports the number of aggregated errors.
func (x *Exception) Len() int {
	if x.errs == nil {
		return 0
	}

	return len(x.errs.Errors)
}

// Error implements the error interface. Per spec §4.9 the displayed
// message is the first error's message.
func (x *Exception) Error() string {
	if x.errs == nil || len(x.errs.Errors) == 0 {
		return ""
	}

	return x.errs.Errors[0].Error()
}

// String returns the concatenation of all messages separated by newlines,
// per spec §4.9.
func (x *Exception) String() string {
	if x.errs == nil {
		return ""
	}

	msgs := make([]string, len(x.errs.Errors))
	for i, e := range x.errs.Errors {
		msgs[i] = e.Error()
	}

	return strings.Join(msgs, "\n")
}

// Unwrap exposes the aggregated errors for errors.Is/errors.As traversal.
func (x *Exception) Unwrap() []error {
	return x.Errors()
}

// ErrOrNil returns x as an error if it has at least one aggregated error,
// or nil otherwise. Validators that accumulate into an Exception as they
// go should return exc.ErrOrNil() at the end rather than exc directly, so
// a clean validation pass returns a true nil error.
func (x *Exception) ErrOrNil() error {
	if x == nil || x.Len() == 0 {
		return nil
	}

	return x
}
