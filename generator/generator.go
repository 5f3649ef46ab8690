// Package generator implements the waveform and noise generators of spec
// §4.4: a precomputed periodic sequence generator, the waveform family
// built on top of it (DC/Sine/Impulse), and two stochastic generators
// (uniform, Gaussian via Marsaglia polar). Grounded on the teacher's
// dsp/signal/generate.go, which produces the same waveform/noise family
// as whole-buffer functions; here each becomes a stateful single-sample
// Generator to match spec §4.4's next()/reset() contract.
package generator

import "github.com/signalkit/biosig-dsp/bioerr"

// Generator is the common contract every generator in this package
// satisfies: Next produces the next sample, Reset rewinds to the start of
// the sequence (or, for stochastic generators, may be a no-op per spec
// §4.4).
type Generator interface {
	Next() float64
	Reset()
}

// PrecomputedGenerator replays a fixed, non-empty sequence, wrapping back
// to the start once exhausted.
type PrecomputedGenerator struct {
	sequence []float64
	index    int
}

// NewPrecomputedGenerator builds a PrecomputedGenerator over seq, which
// must be non-empty. The sequence is copied so later mutation of seq by
// the caller has no effect.
func NewPrecomputedGenerator(seq []float64) (*PrecomputedGenerator, error) {
	if len(seq) == 0 {
		return nil, bioerr.Arguments(0, "generator: sequence must be non-empty")
	}

	return &PrecomputedGenerator{sequence: append([]float64(nil), seq...)}, nil
}

// Next returns the current element and advances the index, wrapping at
// the end of the sequence.
func (p *PrecomputedGenerator) Next() float64 {
	v := p.sequence[p.index]
	p.index = (p.index + 1) % len(p.sequence)

	return v
}

// Reset rewinds to index 0.
func (p *PrecomputedGenerator) Reset() {
	p.index = 0
}

// Len returns the precomputed sequence length.
func (p *PrecomputedGenerator) Len() int {
	return len(p.sequence)
}
