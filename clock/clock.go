// Package clock implements the sample-counter clock of spec §4.5: a
// monotone, nearly-uniform per-sample timestamp derived from a sampling
// rate and a single wall-clock snapshot, avoiding a system-clock call per
// acquired sample.
package clock

import (
	"math"
	"time"

	"github.com/signalkit/biosig-dsp/bioerr"
)

// Properties is the bit-flag set a Clock advertises about the timestamps
// it produces (spec §3, §4.5).
type Properties uint8

const (
	PropertyNone                 Properties = 0
	PropertyMonotonic            Properties = 1 << 0
	PropertyUniformlyDistributed Properties = 1 << 1
)

// maxElapsedSamples is 2^53-1, the largest sample count spec §4.5 allows
// the counter to reach before the overflow policy engages.
const maxElapsedSamples = (int64(1) << 53) - 1

// spinCap bounds how long Increase spins trying to observe a fresh "now"
// past the prior current() reading when ForceMonotonic is set.
const spinCap = 5 * time.Millisecond

// ticksPerSecond fixes the tick resolution at one nanosecond, matching
// time.Duration's native resolution.
const ticksPerSecond = float64(time.Second)

// Clock is the sample-counter clock. It is not safe for concurrent use
// (spec §5: single-threaded from the perspective of state mutation).
type Clock struct {
	samplingRate      float64
	ticksPerSample    float64
	errorPerSample    float64
	elapsedSamples    int64
	reference         *time.Time
	adjustForOverflow bool
	forceMonotonic    bool
	nowFunc           func() time.Time
}

// Option configures a Clock at construction.
type Option func(*Clock)

// WithAdjustForOverflow re-acquires the reference instant instead of
// failing when the sample counter would exceed 2^53-1.
func WithAdjustForOverflow() Option {
	return func(c *Clock) { c.adjustForOverflow = true }
}

// WithForceMonotonic additionally spins (bounded by 5ms) on overflow
// until a freshly sampled "now" exceeds the last returned timestamp,
// preserving monotonicity across a reference reset. Implies
// WithAdjustForOverflow.
func WithForceMonotonic() Option {
	return func(c *Clock) {
		c.adjustForOverflow = true
		c.forceMonotonic = true
	}
}

// withNowFunc overrides the wall-clock source; used by tests to avoid
// depending on real time.
func withNowFunc(f func() time.Time) Option {
	return func(c *Clock) { c.nowFunc = f }
}

// New builds a Clock for the given sampling rate, validating precision
// per spec §4.5: ticks_per_sample >= 1 and the rounding error introduced
// by an integral tick resolution stays within 2% of a sample period.
func New(samplingRate float64, opts ...Option) (*Clock, error) {
	if samplingRate <= 0 {
		return nil, bioerr.Arguments(0, "clock: sampling rate must be positive, got %v", samplingRate)
	}

	ticksPerSample := ticksPerSecond / samplingRate
	if ticksPerSample < 1 {
		return nil, bioerr.Unsupported(0, "clock: sampling rate %v is too high for tick resolution", samplingRate)
	}

	errorPerSample := math.Floor(ticksPerSample) - ticksPerSample
	if math.Abs(errorPerSample)/ticksPerSample > 0.02 {
		return nil, bioerr.Unsupported(0, "clock: sampling rate %v introduces excessive tick rounding error", samplingRate)
	}

	c := &Clock{
		samplingRate:   samplingRate,
		ticksPerSample: ticksPerSample,
		errorPerSample: errorPerSample,
		nowFunc:        time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SetReference sets the reference instant once. Passing nil is a no-op.
// Setting a reference after one has already been established (explicitly
// or implicitly via Current/Increase) fails with Internal/InvalidOperation.
func (c *Clock) SetReference(t *time.Time) error {
	if t == nil {
		return nil
	}

	if c.reference != nil {
		return bioerr.Internal(bioerr.CodeInvalidOperation, "clock: reference is already set")
	}

	ref := *t
	c.reference = &ref

	return nil
}

func (c *Clock) ensureReference() {
	if c.reference == nil {
		now := c.nowFunc().UTC()
		c.reference = &now
	}
}

// timestampFor converts an elapsed-sample count into an instant relative
// to the reference. It fails with Generic/LimitReached, independent of
// the overflow-adjustment options, whenever the resulting offset would
// overflow the int64 nanosecond range that time.Duration (and therefore
// time.Time.Add) can represent — this is reachable well before
// maxElapsedSamples at ordinary sampling rates (spec §4.5).
func (c *Clock) timestampFor(elapsed int64) (time.Time, error) {
	offsetNs := math.Round(float64(elapsed) * c.ticksPerSample)
	if math.Abs(offsetNs) > float64(math.MaxInt64) {
		return time.Time{}, bioerr.Generic(bioerr.CodeLimitReached, "clock: elapsed-sample offset overflows the representable timestamp range")
	}

	return c.reference.Add(time.Duration(int64(offsetNs))), nil
}

// Current returns the timestamp for the current elapsed-sample count,
// snapshotting the reference instant on first use.
func (c *Clock) Current() (time.Time, error) {
	c.ensureReference()

	return c.timestampFor(c.elapsedSamples)
}

// Increase advances the counter by n samples and returns the timestamp
// of the first of those n samples, per spec §4.5.
func (c *Clock) Increase(n uint32) (time.Time, error) {
	if n == 0 {
		return c.Current()
	}

	c.ensureReference()

	next := c.elapsedSamples + int64(n)
	if next > maxElapsedSamples {
		if !c.adjustForOverflow {
			return time.Time{}, bioerr.Generic(bioerr.CodeLimitReached, "clock: elapsed sample count would exceed %d", maxElapsedSamples)
		}

		now := c.nowFunc().UTC()
		if c.forceMonotonic {
			priorCurrent, err := c.Current()
			if err != nil {
				return time.Time{}, err
			}

			deadline := now.Add(spinCap)
			for !now.After(priorCurrent) && now.Before(deadline) {
				now = c.nowFunc().UTC()
			}
		}

		c.reference = &now
		c.elapsedSamples = 0

		return c.timestampFor(1)
	}

	firstSampleTs, err := c.timestampFor(c.elapsedSamples + 1)
	if err != nil {
		return time.Time{}, err
	}

	c.elapsedSamples = next

	return firstSampleTs, nil
}

// Properties reports the bit-flag set this Clock advertises (spec §4.5):
// Monotonic|UniformlyDistributed when overflow is never adjusted, at most
// Monotonic when ForceMonotonic is set, or None otherwise.
func (c *Clock) Properties() Properties {
	if !c.adjustForOverflow {
		return PropertyMonotonic | PropertyUniformlyDistributed
	}

	if c.forceMonotonic {
		return PropertyMonotonic
	}

	return PropertyNone
}
