// Package device implements the acquisition-device lifecycle state
// machine of spec §4.6: connect/disconnect/reconnect, channel-collection
// setup, and the feature-dispatched acquisition-mode property. It builds
// on device/feature for capability dispatch and on sealable for the
// channel collection's freeze-on-setup behavior.
package device

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/signalkit/biosig-dsp/bioerr"
	"github.com/signalkit/biosig-dsp/device/feature"
)

const (
	defaultRetryAttempts = 3
	defaultRetryDelay    = time.Second
)

// CoreFunc is hardware I/O a device plugs into connect/disconnect/setup.
// The zero value (nil) is a no-op success.
type CoreFunc func() error

// HookFunc is a lifecycle event callback (on_connecting, on_connected,
// on_disconnecting, on_disconnected).
type HookFunc func() error

// ModeChangeFunc performs the hardware-level work of switching
// acquisition mode.
type ModeChangeFunc func(Mode) error

// Option configures a Device at construction time.
type Option func(*Device) error

// Device is the acquisition device lifecycle state machine. The teacher
// has no virtual-method override mechanism to lean on (Go has none
// either), so connect_core/disconnect_core/setup_core/on_* hooks are
// injected as plain function fields, the same functional-collaborator
// idiom filter/design.Settings and clock.Option use for validated
// construction.
type Device struct {
	deviceType string
	registry   *feature.Registry
	logger     *log.Logger

	state         ConnectionState
	mode          Mode
	isConfigured  bool
	canOutputData bool
	hardwareID    string
	driverID      string
	channels      *ChannelCollection

	connectCore           CoreFunc
	disconnectCore        CoreFunc
	setupCore             CoreFunc
	changeAcquisitionMode ModeChangeFunc

	onConnecting    HookFunc
	onConnected     HookFunc
	onDisconnecting HookFunc
	onDisconnected  HookFunc

	retryAttempts int
	retryDelay    time.Duration
}

// New builds a Device of deviceType. registry may be nil, in which case a
// fresh registry is created and deviceType registered as a root type —
// callers that need feature inheritance across device types must share
// one *feature.Registry across their construction calls instead.
func New(deviceType string, registry *feature.Registry, opts ...Option) (*Device, error) {
	if registry == nil {
		registry = feature.NewRegistry()
		registry.RegisterDeviceType(deviceType, "")
	}

	d := &Device{
		deviceType:    deviceType,
		registry:      registry,
		state:         Disconnected,
		mode:          Idle,
		retryAttempts: defaultRetryAttempts,
		retryDelay:    defaultRetryDelay,
	}

	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// WithLogger attaches a structured logger for lifecycle events. A nil
// Device.logger is treated as disabled logging, so this option may be
// omitted entirely.
func WithLogger(l *log.Logger) Option {
	return func(d *Device) error {
		d.logger = l
		return nil
	}
}

// WithHardwareID records a hardware identifier reported by the device.
func WithHardwareID(id string) Option {
	return func(d *Device) error {
		d.hardwareID = id
		return nil
	}
}

// WithDriverID records the driver identifier stamped onto emitted packets.
func WithDriverID(id string) Option {
	return func(d *Device) error {
		d.driverID = id
		return nil
	}
}

// WithConnectCore supplies the hardware connect operation.
func WithConnectCore(f CoreFunc) Option {
	return func(d *Device) error {
		d.connectCore = f
		return nil
	}
}

// WithDisconnectCore supplies the hardware disconnect operation.
func WithDisconnectCore(f CoreFunc) Option {
	return func(d *Device) error {
		d.disconnectCore = f
		return nil
	}
}

// WithSetupCore supplies the hardware channel-configuration operation.
func WithSetupCore(f CoreFunc) Option {
	return func(d *Device) error {
		d.setupCore = f
		return nil
	}
}

// WithChangeAcquisitionMode supplies the hardware mode-switch operation.
func WithChangeAcquisitionMode(f ModeChangeFunc) Option {
	return func(d *Device) error {
		d.changeAcquisitionMode = f
		return nil
	}
}

// WithOnConnecting, WithOnConnected, WithOnDisconnecting and
// WithOnDisconnected attach the four lifecycle hooks spec §4.6 names.
func WithOnConnecting(f HookFunc) Option {
	return func(d *Device) error {
		d.onConnecting = f
		return nil
	}
}

func WithOnConnected(f HookFunc) Option {
	return func(d *Device) error {
		d.onConnected = f
		return nil
	}
}

func WithOnDisconnecting(f HookFunc) Option {
	return func(d *Device) error {
		d.onDisconnecting = f
		return nil
	}
}

func WithOnDisconnected(f HookFunc) Option {
	return func(d *Device) error {
		d.onDisconnected = f
		return nil
	}
}

// WithRetryPolicy overrides the default 3-attempts/1s-delay connect retry
// policy (spec §4.6).
func WithRetryPolicy(attempts int, delay time.Duration) Option {
	return func(d *Device) error {
		if attempts < 1 {
			return bioerr.Arguments(0, "device: retry attempts must be >= 1, got %d", attempts)
		}

		if delay < 0 {
			return bioerr.Arguments(0, "device: retry delay must be >= 0, got %v", delay)
		}

		d.retryAttempts = attempts
		d.retryDelay = delay

		return nil
	}
}

// DeviceType returns the device-type name this device registers features
// and channel rules under.
func (d *Device) DeviceType() string { return d.deviceType }

// State returns the current connection state.
func (d *Device) State() ConnectionState { return d.state }

// Mode returns the current acquisition mode.
func (d *Device) Mode() Mode { return d.mode }

// IsConfigured reports whether Setup has succeeded.
func (d *Device) IsConfigured() bool { return d.isConfigured }

// CanOutputData reports whether the device is currently permitted to
// emit sample packets.
func (d *Device) CanOutputData() bool { return d.canOutputData }

// Channels returns the sealed channel collection accepted by Setup, or
// nil before Setup succeeds.
func (d *Device) Channels() *ChannelCollection { return d.channels }

// Features exposes the device's feature registry for callers that want
// to query or register additional handlers directly.
func (d *Device) Features() *feature.Registry { return d.registry }

func (d *Device) logInfo(msg string, keyvals ...any) {
	if d.logger != nil {
		d.logger.Info(msg, keyvals...)
	}
}

func (d *Device) logWarn(msg string, keyvals ...any) {
	if d.logger != nil {
		d.logger.Warn(msg, keyvals...)
	}
}

// Connect runs the Disconnected/Error -> Connecting -> Connected
// transition of spec §4.6, retrying connect_core up to retryAttempts
// times (default 3, 1s apart) while the failure is Retryable, and
// dispatching the firmware-update feature from on_connected when it is
// advertised and enabled.
func (d *Device) Connect() error {
	if d.state == Connecting || d.state == Connected {
		return nil
	}

	if d.state != Disconnected && d.state != Error {
		return bioerr.State(bioerr.CodeCannotChangeState, "device: connect is illegal from state %s", d.state)
	}

	d.state = Connecting
	d.logInfo("device connecting", "type", d.deviceType)

	if d.onConnecting != nil {
		if err := d.onConnecting(); err != nil {
			d.state = Error
			return err
		}
	}

	if err := d.runConnectCoreWithRetry(); err != nil {
		d.state = Error
		return err
	}

	d.state = Connected
	d.logInfo("device connected", "type", d.deviceType)

	if d.onConnected != nil {
		if err := d.onConnected(); err != nil {
			return err
		}
	}

	firmwareUpdate := feature.New(d.deviceType, FeatureNameFirmwareUpdate)
	if d.registry.IsAvailableAndEnabled(d.deviceType, firmwareUpdate) {
		d.registry.Perform(d.deviceType, firmwareUpdate, nil)
	}

	return nil
}

func (d *Device) runConnectCoreWithRetry() error {
	if d.connectCore == nil {
		return nil
	}

	var lastErr error

	for attempt := 1; attempt <= d.retryAttempts; attempt++ {
		lastErr = d.connectCore()
		if lastErr == nil {
			return nil
		}

		retryable := false
		if be, ok := lastErr.(*bioerr.Error); ok {
			retryable = be.Retryable()
		}

		if !retryable {
			return lastErr
		}

		d.logWarn("device connect attempt failed", "attempt", attempt, "err", lastErr)

		if attempt == d.retryAttempts {
			return lastErr
		}

		time.Sleep(d.retryDelay)
	}

	return lastErr
}

// Disconnect runs the Connected -> Disconnecting -> Disconnected
// transition. Unlike connect, a disconnect_core failure does not move the
// device to Error; it still ends up Disconnected, with the error
// re-raised to the caller (spec §4.6).
func (d *Device) Disconnect() error {
	if d.state == Disconnecting || d.state == Disconnected {
		return nil
	}

	if d.state != Connected {
		return bioerr.State(bioerr.CodeCannotChangeState, "device: disconnect is illegal from state %s", d.state)
	}

	d.state = Disconnecting
	d.logInfo("device disconnecting", "type", d.deviceType)

	if d.onDisconnecting != nil {
		if err := d.onDisconnecting(); err != nil {
			d.state = Disconnected
			return err
		}
	}

	var coreErr error
	if d.disconnectCore != nil {
		coreErr = d.disconnectCore()
	}

	d.state = Disconnected
	d.logInfo("device disconnected", "type", d.deviceType)

	if coreErr != nil {
		return coreErr
	}

	if d.onDisconnected != nil {
		return d.onDisconnected()
	}

	return nil
}

// Reconnect is Disconnect followed by Connect.
func (d *Device) Reconnect() error {
	if err := d.Disconnect(); err != nil {
		return err
	}

	return d.Connect()
}

// Setup validates and accepts channels, sealing the collection on
// success (spec §4.6's acquisition-device extension).
func (d *Device) Setup(channels *ChannelCollection) error {
	if d.state != Connected {
		return bioerr.State(bioerr.CodeInvalidState, "device: setup requires Connected, got %s", d.state)
	}

	if d.isConfigured {
		return bioerr.State(bioerr.CodeInvalidOperation, "device: already configured")
	}

	if err := channels.validateForSetup(d.deviceType, d.registry); err != nil {
		return err
	}

	if d.setupCore != nil {
		if err := d.setupCore(); err != nil {
			return err
		}
	}

	channels.Seal()
	d.channels = channels
	d.isConfigured = true
	d.canOutputData = true

	d.logInfo("device ready", "type", d.deviceType, "channels", channels.Len())

	return nil
}

// SetMode assigns the acquisition mode property, feature-dispatching
// Ohmeter/Calibration and suspending output for the duration of the
// switch (spec §4.6).
func (d *Device) SetMode(m Mode) (err error) {
	if d.state != Connected || !d.isConfigured {
		return bioerr.State(bioerr.CodeInvalidState, "device: mode may only be set when Connected and configured")
	}

	if m == Ohmeter && !d.registry.IsAvailable(d.deviceType, feature.New(d.deviceType, FeatureNameOhmeter)) {
		return bioerr.Unsupported(bioerr.CodeAcquisitionMode, "device: Ohmeter mode is not advertised by %s", d.deviceType)
	}

	if m == Calibration && !d.registry.IsAvailable(d.deviceType, feature.New(d.deviceType, FeatureNameCalibration)) {
		return bioerr.Unsupported(bioerr.CodeAcquisitionMode, "device: Calibration mode is not advertised by %s", d.deviceType)
	}

	d.canOutputData = false

	defer func() {
		if err == nil && m != Idle {
			d.canOutputData = true
		}
	}()

	if d.changeAcquisitionMode != nil {
		if err = d.changeAcquisitionMode(m); err != nil {
			return err
		}
	}

	switch m {
	case Ohmeter:
		d.registry.Perform(d.deviceType, feature.New(d.deviceType, FeatureNameOhmeter), nil)
	case Calibration:
		d.registry.Perform(d.deviceType, feature.New(d.deviceType, FeatureNameCalibration), nil)
	}

	d.mode = m

	return nil
}
