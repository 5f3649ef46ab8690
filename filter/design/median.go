package design

import "github.com/signalkit/biosig-dsp/filter/stream"

// MedianDesigner builds the sliding-window median filter (spec §4.2),
// using Settings.Window as the window size. Like SavitzkyGolay it has no
// frequency-domain shape, so it is reached through CreateOther.
type MedianDesigner struct {
	Unimplemented
}

// NewMedianDesigner builds a median filter designer.
func NewMedianDesigner() *MedianDesigner {
	return &MedianDesigner{Unimplemented{name: "MedianDesigner"}}
}

func (d *MedianDesigner) CreateOther(settings Settings) (stream.Filter, error) {
	return stream.NewMedian(settings.Window)
}
