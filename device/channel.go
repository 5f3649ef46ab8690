package device

import (
	"math"

	"github.com/signalkit/biosig-dsp/bioerr"
	"github.com/signalkit/biosig-dsp/sealable"
)

// Channel is a physical acquisition channel: spec §3's (id, name,
// sampling_rate >= 0, range[min<max, finite]), sealable so a device's
// setup() can freeze its channel set once accepted.
type Channel struct {
	sealable.Sealable

	id           string
	name         string
	samplingRate float64
	rangeMin     float64
	rangeMax     float64
}

// NewChannel validates and builds an unsealed Channel.
func NewChannel(id, name string, samplingRate, rangeMin, rangeMax float64) (*Channel, error) {
	c := &Channel{id: id, name: name}

	if err := c.setSamplingRate(samplingRate); err != nil {
		return nil, err
	}

	if err := c.setRange(rangeMin, rangeMax); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Channel) ID() string             { return c.id }
func (c *Channel) Name() string           { return c.name }
func (c *Channel) SamplingRate() float64  { return c.samplingRate }
func (c *Channel) Range() (float64, float64) { return c.rangeMin, c.rangeMax }

// SetSamplingRate mutates the sampling rate, failing if sealed or invalid.
func (c *Channel) SetSamplingRate(hz float64) error {
	if err := c.ThrowIfSealed(); err != nil {
		return err
	}

	return c.setSamplingRate(hz)
}

func (c *Channel) setSamplingRate(hz float64) error {
	if math.IsNaN(hz) || math.IsInf(hz, 0) || hz < 0 {
		return bioerr.Arguments(0, "device: channel sampling rate %v must be finite and >= 0", hz)
	}

	c.samplingRate = hz

	return nil
}

// SetRange mutates the channel's value range, failing if sealed or invalid.
func (c *Channel) SetRange(min, max float64) error {
	if err := c.ThrowIfSealed(); err != nil {
		return err
	}

	return c.setRange(min, max)
}

func (c *Channel) setRange(min, max float64) error {
	if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) {
		return bioerr.Arguments(0, "device: channel range [%v,%v) must be finite", min, max)
	}

	if !(min < max) {
		return bioerr.Arguments(0, "device: channel range requires min < max, got [%v,%v)", min, max)
	}

	c.rangeMin, c.rangeMax = min, max

	return nil
}

// Clone returns a deep, unsealed copy (spec §4.8's clone operation,
// collapsed to a single method per concrete type since Go has no
// inheritance to hang a create_new_instance/copy_properties_to protocol
// on).
func (c *Channel) Clone() *Channel {
	return &Channel{
		id:           c.id,
		name:         c.name,
		samplingRate: c.samplingRate,
		rangeMin:     c.rangeMin,
		rangeMax:     c.rangeMax,
	}
}
