package design

import "github.com/signalkit/biosig-dsp/filter/stream"

// FilterDesigner is the capability surface every concrete designer
// satisfies (spec §4.3): a factory method per response shape, each
// returning a ready-to-use stream.Filter or an error.
type FilterDesigner interface {
	CreateLowPass(settings Settings, cutoffHz float64) (stream.Filter, error)
	CreateHighPass(settings Settings, cutoffHz float64) (stream.Filter, error)
	CreateBandPass(settings Settings, loHz, hiHz float64) (stream.Filter, error)
	CreateBandStop(settings Settings, loHz, hiHz float64) (stream.Filter, error)
	CreateNotch(settings Settings, centerHz float64) (stream.Filter, error)
	CreateAllPass(settings Settings, centerHz float64) (stream.Filter, error)
	CreateLowShelf(settings Settings, cutoffHz float64) (stream.Filter, error)
	CreateHighShelf(settings Settings, cutoffHz float64) (stream.Filter, error)
	CreatePeak(settings Settings, centerHz float64) (stream.Filter, error)
	CreateOther(settings Settings) (stream.Filter, error)
}

// Unimplemented is embedded by every concrete designer so a shape it does
// not support fails uniformly with a ClassUnsupported error instead of
// each designer restating a stub for every method it doesn't cover
// (c.f. a generated gRPC UnimplementedServer). name is the designer's
// label used in the resulting error message.
type Unimplemented struct {
	name string
}

func (u Unimplemented) CreateLowPass(Settings, float64) (stream.Filter, error) {
	return nil, errUnsupportedShape(u.name, ShapeLowPass)
}

func (u Unimplemented) CreateHighPass(Settings, float64) (stream.Filter, error) {
	return nil, errUnsupportedShape(u.name, ShapeHighPass)
}

func (u Unimplemented) CreateBandPass(Settings, float64, float64) (stream.Filter, error) {
	return nil, errUnsupportedShape(u.name, ShapeBandPass)
}

func (u Unimplemented) CreateBandStop(Settings, float64, float64) (stream.Filter, error) {
	return nil, errUnsupportedShape(u.name, ShapeBandStop)
}

func (u Unimplemented) CreateNotch(Settings, float64) (stream.Filter, error) {
	return nil, errUnsupportedShape(u.name, ShapeNotch)
}

func (u Unimplemented) CreateAllPass(Settings, float64) (stream.Filter, error) {
	return nil, errUnsupportedShape(u.name, ShapeAllPass)
}

func (u Unimplemented) CreateLowShelf(Settings, float64) (stream.Filter, error) {
	return nil, errUnsupportedShape(u.name, ShapeLowShelf)
}

func (u Unimplemented) CreateHighShelf(Settings, float64) (stream.Filter, error) {
	return nil, errUnsupportedShape(u.name, ShapeHighShelf)
}

func (u Unimplemented) CreatePeak(Settings, float64) (stream.Filter, error) {
	return nil, errUnsupportedShape(u.name, ShapePeak)
}

func (u Unimplemented) CreateOther(Settings) (stream.Filter, error) {
	return nil, errUnsupportedShape(u.name, ShapeOther)
}
