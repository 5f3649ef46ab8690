package device

import (
	"github.com/signalkit/biosig-dsp/bioerr"
	"github.com/signalkit/biosig-dsp/device/feature"
	"github.com/signalkit/biosig-dsp/sealable"
)

// Feature display names a device's FeatureHandlers may advertise; see
// spec §4.6's setup() and on_connected() wording.
const (
	FeatureNameMultifrequency        = "Multifrequency"
	FeatureNameSamplingOnValueChange = "SamplingOnValueChange"
	FeatureNameFirmwareUpdate        = "FirmwareUpdate"
	FeatureNameOhmeter               = "Ohmeter"
	FeatureNameCalibration           = "Calibration"
)

// ChannelCollection is the ordered, sealable channel set spec §3 calls a
// "channel collection": uniqueness of id and name is checked at device
// setup, and sealing propagates to every channel.
type ChannelCollection struct {
	*sealable.Collection[*Channel]
}

// NewChannelCollection builds an unsealed collection over channels.
func NewChannelCollection(channels ...*Channel) *ChannelCollection {
	return &ChannelCollection{Collection: sealable.NewCollection(channels...)}
}

// validateForSetup enforces spec §4.6's setup() channel-collection rules:
// non-empty, identical sampling rates unless Multifrequency is advertised,
// no zero rates unless SamplingOnValueChange is advertised, unique ids and
// names. Per-channel violations are accumulated into a bioerr.Exception
// rather than failing on the first one, so Setup reports every offending
// channel in a single call (spec §4.9/§9).
func (cc *ChannelCollection) validateForSetup(deviceType string, registry *feature.Registry) error {
	channels := cc.Items()

	if len(channels) == 0 {
		return bioerr.Arguments(bioerr.CodeEmptyChannelSet, "device: channel collection must not be empty")
	}

	multifrequency := registry.IsAvailable(deviceType, feature.New(deviceType, FeatureNameMultifrequency))
	samplingOnValueChange := registry.IsAvailable(deviceType, feature.New(deviceType, FeatureNameSamplingOnValueChange))

	var exc bioerr.Exception
	ids := make(map[string]bool, len(channels))
	names := make(map[string]bool, len(channels))
	reference := channels[0].SamplingRate()

	for _, ch := range channels {
		if ids[ch.ID()] {
			exc.Append(bioerr.Arguments(bioerr.CodeDuplicateChannel, "device: duplicate channel id %q", ch.ID()))
		}
		ids[ch.ID()] = true

		if names[ch.Name()] {
			exc.Append(bioerr.Arguments(bioerr.CodeDuplicateChannel, "device: duplicate channel name %q", ch.Name()))
		}
		names[ch.Name()] = true

		if ch.SamplingRate() == 0 && !samplingOnValueChange {
			exc.Append(bioerr.Unsupported(bioerr.CodeAcquisitionMode, "device: channel %q has a zero sampling rate but SamplingOnValueChange is not advertised", ch.ID()))
		}

		if !multifrequency && ch.SamplingRate() != reference {
			exc.Append(bioerr.Arguments(0, "device: channel %q sampling rate %v does not match %v and Multifrequency is not advertised", ch.ID(), ch.SamplingRate(), reference))
		}
	}

	return exc.ErrOrNil()
}
