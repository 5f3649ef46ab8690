// Package design implements the filter designer framework (spec §4.3): a
// FilterDesigner capability exposing factory operations by shape, the
// shared Fisher-method pipeline used by the Butterworth/Chebyshev/Bessel
// families, the RBJ biquad cookbook, and the median/Savitzky-Golay
// designers.
//
// The teacher's deep designer inheritance (abstract -> Fisher ->
// Butterworth/Chebyshev/Bessel) is flattened per spec §9 into a single
// FilterDesigner interface; each concrete designer embeds Unimplemented so
// unsupported shapes uniformly fail with a ClassUnsupported error instead
// of requiring every designer to restate every shape.
package design

import "github.com/signalkit/biosig-dsp/bioerr"

// Shape identifies the response family a design call targets.
type Shape int

const (
	ShapeAllPass Shape = iota
	ShapeLowPass
	ShapeHighPass
	ShapeBandStop
	ShapeBandPass
	ShapeLowShelf
	ShapeHighShelf
	ShapeNotch
	ShapePeak
	ShapeOther
)

func (s Shape) String() string {
	switch s {
	case ShapeAllPass:
		return "AllPass"
	case ShapeLowPass:
		return "LowPass"
	case ShapeHighPass:
		return "HighPass"
	case ShapeBandStop:
		return "BandStop"
	case ShapeBandPass:
		return "BandPass"
	case ShapeLowShelf:
		return "LowShelf"
	case ShapeHighShelf:
		return "HighShelf"
	case ShapeNotch:
		return "Notch"
	case ShapePeak:
		return "Peak"
	case ShapeOther:
		return "Other"
	default:
		return "Shape(unknown)"
	}
}

// errUnsupportedShape builds the Unsupported error every designer returns
// for a factory operation it does not implement (spec §4.3: "Unimplemented
// shapes fail with Unsupported").
func errUnsupportedShape(designer string, shape Shape) error {
	return bioerr.Unsupported(0, "design: %s does not implement shape %s", designer, shape)
}
