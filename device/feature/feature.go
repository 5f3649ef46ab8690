// Package feature implements the feature dispatch registry of spec §4.7.
// The source's reflection-based dispatch (look up a method named
// is_feature_{canonical}_available on the device instance) is replaced
// per spec §9's explicit redesign guidance with a compile-time registry:
// each device type registers a HandlerSet of plain functions for each
// feature it supports, keyed by canonical feature name, resolved without
// runtime introspection.
package feature

import "strings"

// Feature is a (associated device type, display name) pair. Two features
// compare equal solely by their canonical display name (spec §4.7, §8's
// "feature equality" property): non-ASCII-alphanumeric characters are
// stripped and case is folded, so "Firmware Update!" and "firmwareupdate"
// are the same feature.
type Feature struct {
	DeviceType string
	Name       string
}

// New builds a Feature associated with deviceType.
func New(deviceType, name string) Feature {
	return Feature{DeviceType: deviceType, Name: name}
}

// Canonical returns the canonical-alphanumeric US-ASCII, lowercase form
// of the feature's display name.
func (f Feature) Canonical() string {
	return canonicalName(f.Name)
}

// Equal reports whether two features share a canonical display name.
func (f Feature) Equal(other Feature) bool {
	return f.Canonical() == other.Canonical()
}

func canonicalName(s string) string {
	var b strings.Builder

	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		}
	}

	return b.String()
}
