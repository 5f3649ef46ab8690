// Package sealable implements the sealable configuration model of spec
// §4.8: a one-way seal that propagates to owned children and rejects
// further mutation, plus a generic sealed collection. Go has no
// inheritance, so the teacher's would-be base-class
// create_new_instance()/copy_properties_to() clone protocol collapses
// into a single Clone method on the concrete type (spec §9 explicitly
// allows this collapse for implementations without inheritance). Only
// device.Channel has one: Collection and device.ChannelCollection have
// no Clone method.
package sealable

import "github.com/signalkit/biosig-dsp/bioerr"

// Sealer is satisfied by any type built on Sealable.
type Sealer interface {
	IsSealed() bool
	Seal()
}

// Sealable is embedded by every mutable-until-sealed type in the domain
// (Channel, ChannelCollection, device configuration objects).
type Sealable struct {
	sealed bool
}

// IsSealed reports whether Seal has been called.
func (s *Sealable) IsSealed() bool {
	return s.sealed
}

// Seal marks this object sealed. It is one-way: there is no Unseal.
// Composite types embedding Sealable must override Seal to also seal
// their owned children, calling this method for their own flag.
func (s *Sealable) Seal() {
	s.sealed = true
}

// ThrowIfSealed returns a State/InvalidOperation error when sealed, nil
// otherwise. Every mutator on a sealable type must call this first.
func (s *Sealable) ThrowIfSealed() error {
	if s.sealed {
		return bioerr.State(bioerr.CodeInvalidOperation, "sealable: object is sealed")
	}

	return nil
}

// SealAll seals every child in children, for composite types whose Seal
// override needs to propagate to owned Sealers.
func SealAll(children ...Sealer) {
	for _, c := range children {
		c.Seal()
	}
}
