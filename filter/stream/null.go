package stream

// NullFilter is a stateless identity pass-through. Because it owns no
// mutable state, a single NullFilter instance may safely be shared across
// threads or cascades (spec §4.2, §5) — it is the one exception to the
// single-threaded-per-instance rule every other filter in this package
// follows.
type NullFilter struct{}

// Process returns x unchanged.
func (NullFilter) Process(x float64) float64 { return x }

// Reset is a no-op.
func (NullFilter) Reset() {}

// Enabled always reports true; NullFilter has no concept of being disabled
// since disabling it would also be identity.
func (NullFilter) Enabled() bool { return true }

// SetEnabled is a no-op.
func (NullFilter) SetEnabled(bool) {}
