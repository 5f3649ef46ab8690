package device

import "time"

// Packet is a sample packet (spec §3): samples is jagged 2-D, outer index
// is channel, inner index is that channel's sample sequence; inner
// lengths may differ when multi-frequency acquisition is enabled.
type Packet struct {
	DriverID  string
	Timestamp time.Time
	Samples   [][]float64
}
