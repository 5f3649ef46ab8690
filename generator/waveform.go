package generator

import (
	"math"

	"github.com/signalkit/biosig-dsp/bioerr"
)

// maxSamplingRate is the inclusive upper bound spec §4.4 places on
// sampling_rate: 2^31-1.
const maxSamplingRate = (1 << 31) - 1

// WaveformGenerator is a PrecomputedGenerator whose sequence is built
// once at construction from a one-second buffer (length
// int(sampling_rate), or length 1 for DC) of a DC, sine, or impulse
// waveform (spec §4.4).
type WaveformGenerator struct {
	*PrecomputedGenerator
}

func validateWaveformParams(samplingRate, frequency, phase float64) error {
	if samplingRate <= 0 || samplingRate > maxSamplingRate {
		return bioerr.Arguments(0, "generator: sampling rate must be in (0, %v], got %v", float64(maxSamplingRate), samplingRate)
	}

	if frequency < 0 || math.IsInf(frequency, 0) || math.IsNaN(frequency) {
		return bioerr.Arguments(0, "generator: frequency must be finite and >= 0, got %v", frequency)
	}

	if phase < 0 || phase > 2*math.Pi {
		return bioerr.Arguments(0, "generator: phase must lie in [0, 2*pi], got %v", phase)
	}

	return nil
}

// NewWaveformDC builds a constant generator of value amplitude+offset.
func NewWaveformDC(samplingRate, amplitude, offset float64) (*WaveformGenerator, error) {
	if err := validateWaveformParams(samplingRate, 0, 0); err != nil {
		return nil, err
	}

	pg, err := NewPrecomputedGenerator([]float64{amplitude + offset})
	if err != nil {
		return nil, err
	}

	return &WaveformGenerator{pg}, nil
}

// NewWaveformSine builds a one-second precomputed sine wave:
// offset + amplitude*sin(phase + i*2*pi*frequency/samplingRate).
func NewWaveformSine(samplingRate, amplitude, offset, frequency, phase float64) (*WaveformGenerator, error) {
	if err := validateWaveformParams(samplingRate, frequency, phase); err != nil {
		return nil, err
	}

	n := int(samplingRate)
	seq := make([]float64, n)

	step := 2 * math.Pi * frequency / samplingRate
	for i := range seq {
		seq[i] = offset + amplitude*math.Sin(phase+float64(i)*step)
	}

	pg, err := NewPrecomputedGenerator(seq)
	if err != nil {
		return nil, err
	}

	return &WaveformGenerator{pg}, nil
}

// NewWaveformImpulse builds a one-second precomputed buffer of offset
// with a single spike of amplitude at index phase/(2*pi)*samplingRate.
func NewWaveformImpulse(samplingRate, amplitude, offset, phase float64) (*WaveformGenerator, error) {
	if err := validateWaveformParams(samplingRate, 0, phase); err != nil {
		return nil, err
	}

	n := int(samplingRate)
	seq := make([]float64, n)

	for i := range seq {
		seq[i] = offset
	}

	pos := int(phase / (2 * math.Pi) * samplingRate)
	if pos < 0 {
		pos = 0
	}

	if pos >= n {
		pos = n - 1
	}

	seq[pos] = amplitude

	pg, err := NewPrecomputedGenerator(seq)
	if err != nil {
		return nil, err
	}

	return &WaveformGenerator{pg}, nil
}
