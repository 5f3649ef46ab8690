package device

import "fmt"

// ConnectionState is the device's position in the lifecycle state machine
// of spec §4.6: Disconnected -> Connecting -> {Connected | Error};
// Connected -> Disconnecting -> Disconnected; Error -> Connecting.
type ConnectionState int

const (
	Disconnected ConnectionState = iota
	Connecting
	Connected
	Disconnecting
	Error
)

func (s ConnectionState) String() string {
	switch s {
	case Disconnected:
		return "Disconnected"
	case Connecting:
		return "Connecting"
	case Connected:
		return "Connected"
	case Disconnecting:
		return "Disconnecting"
	case Error:
		return "Error"
	default:
		return fmt.Sprintf("ConnectionState(%d)", int(s))
	}
}

// Mode is the acquisition mode property, assignable only once the device
// is Connected and configured.
type Mode int

const (
	Idle Mode = iota
	Data
	Ohmeter
	Calibration
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "Idle"
	case Data:
		return "Data"
	case Ohmeter:
		return "Ohmeter"
	case Calibration:
		return "Calibration"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
