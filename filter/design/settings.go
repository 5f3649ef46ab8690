package design

import "github.com/signalkit/biosig-dsp/bioerr"

// defaults mirror the teacher's dither.config convention of naming the
// zero-value fallbacks instead of leaving magic numbers inline.
const (
	defaultOrder        = 2
	defaultRippleDB     = 0.5
	defaultQ            = 0.7071067811865476 // 1/sqrt(2), Butterworth-flat RBJ default
	defaultGainDB       = 0.0
	defaultMedianWindow = 3
	defaultSGWindow     = 5
	defaultSGPolyOrder  = 2
)

// Settings configures a design call. Not every field applies to every
// shape/designer combination; each designer validates only the fields it
// consumes (spec §4.3: "a designer ignores settings fields it does not
// need rather than rejecting them").
type Settings struct {
	SampleRate float64
	Order      int
	RippleDB   float64 // Chebyshev I/II passband or stopband ripple
	Q          float64 // RBJ cookbook quality factor
	GainDB     float64 // RBJ shelf/peak gain
	Window     int     // Median / Savitzky-Golay window size (samples)
	PolyOrder  int     // Savitzky-Golay fitted polynomial order
}

// Option mutates a Settings under construction, matching the teacher's
// validated-functional-option pattern (c.f. dsp/dither.Option): an Option
// returns an error instead of panicking on an invalid value.
type Option func(*Settings) error

// NewSettings builds Settings from the given sample rate and options,
// applying defaults first so an unset field is never left at a useless
// zero value.
func NewSettings(sampleRate float64, opts ...Option) (Settings, error) {
	if sampleRate <= 0 {
		return Settings{}, bioerr.Arguments(0, "design: sample rate must be positive, got %v", sampleRate)
	}

	s := Settings{
		SampleRate: sampleRate,
		Order:      defaultOrder,
		RippleDB:   defaultRippleDB,
		Q:          defaultQ,
		GainDB:     defaultGainDB,
		Window:     defaultMedianWindow,
		PolyOrder:  defaultSGPolyOrder,
	}

	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return Settings{}, err
		}
	}

	return s, nil
}

// WithOrder sets the filter order (pole-pair count driver for the Fisher
// family). Must be >= 1.
func WithOrder(order int) Option {
	return func(s *Settings) error {
		if order < 1 {
			return bioerr.Arguments(0, "design: order must be >= 1, got %d", order)
		}

		s.Order = order

		return nil
	}
}

// WithRippleDB sets the Chebyshev I/II ripple in decibels. Must be > 0.
func WithRippleDB(rippleDB float64) Option {
	return func(s *Settings) error {
		if rippleDB <= 0 {
			return bioerr.Arguments(0, "design: ripple must be > 0 dB, got %v", rippleDB)
		}

		s.RippleDB = rippleDB

		return nil
	}
}

// WithQ sets the RBJ cookbook quality factor. Must be > 0.
func WithQ(q float64) Option {
	return func(s *Settings) error {
		if q <= 0 {
			return bioerr.Arguments(0, "design: Q must be > 0, got %v", q)
		}

		s.Q = q

		return nil
	}
}

// WithGainDB sets the RBJ shelf/peak gain in decibels. May be negative.
func WithGainDB(gainDB float64) Option {
	return func(s *Settings) error {
		s.GainDB = gainDB

		return nil
	}
}

// WithWindow sets the median/Savitzky-Golay window size in samples. Must
// be odd and >= 3.
func WithWindow(window int) Option {
	return func(s *Settings) error {
		if window < 3 || window%2 == 0 {
			return bioerr.Arguments(0, "design: window must be odd and >= 3, got %d", window)
		}

		s.Window = window

		return nil
	}
}

// WithPolyOrder sets the Savitzky-Golay fitted polynomial order. It
// rejects orders below 1; the PolyOrder < Window bound is checked when
// the Savitzky-Golay filter is designed, not here.
func WithPolyOrder(order int) Option {
	return func(s *Settings) error {
		if order < 1 {
			return bioerr.Arguments(0, "design: polynomial order must be >= 1, got %d", order)
		}

		s.PolyOrder = order

		return nil
	}
}
