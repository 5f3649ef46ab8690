package stream

import (
	"sort"

	"github.com/signalkit/biosig-dsp/bioerr"
)

// Median is a sliding-window median filter (spec §4.2). Until the window
// fills it grows sample by sample; afterwards each new sample shifts the
// window left and is appended at the end. The output is the element at
// index (N-1)/2 of the *sorted* window contents — explicitly not the mean
// of the two central values when N is even, which preserves sharp edges
// instead of smearing them.
type Median struct {
	base

	window []float64
	size   int
	count  int
	scratch []float64
}

// NewMedian builds a Median filter with the given window size, which must
// be > 0.
func NewMedian(size int) (*Median, error) {
	if size <= 0 {
		return nil, bioerr.Arguments(0, "stream: median window size must be > 0, got %d", size)
	}

	return &Median{
		base:    newBase(),
		window:  make([]float64, size),
		size:    size,
		scratch: make([]float64, size),
	}, nil
}

// Process appends x to the sliding window and returns the lower-middle
// element of the sorted window.
func (m *Median) Process(x float64) float64 {
	if !m.enabled {
		return x
	}

	if m.count < m.size {
		m.window[m.count] = x
		m.count++
	} else {
		copy(m.window, m.window[1:])
		m.window[m.size-1] = x
	}

	copy(m.scratch[:m.count], m.window[:m.count])
	sort.Float64s(m.scratch[:m.count])

	return m.scratch[(m.count-1)/2]
}

// Reset empties the window.
func (m *Median) Reset() {
	m.count = 0
}

// WindowSize returns the configured window size.
func (m *Median) WindowSize() int { return m.size }
