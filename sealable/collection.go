package sealable

import "github.com/signalkit/biosig-dsp/bioerr"

// Collection is a generic ordered sealed collection (spec §4.8: "a sealed
// collection forbids insert/remove/replace/clear"). Sealing the
// collection also seals every element that is itself a Sealer.
type Collection[T any] struct {
	Sealable

	items []T
}

// NewCollection builds a Collection over an initial (unsealed) item set.
func NewCollection[T any](items ...T) *Collection[T] {
	return &Collection[T]{items: append([]T(nil), items...)}
}

// Seal seals the collection and, for elements implementing Sealer, each
// element too.
func (c *Collection[T]) Seal() {
	c.Sealable.Seal()

	for _, item := range c.items {
		if s, ok := any(item).(Sealer); ok {
			s.Seal()
		}
	}
}

// Items returns the current element slice. Callers must not mutate the
// returned slice directly.
func (c *Collection[T]) Items() []T {
	return c.items
}

// Len returns the element count.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// Insert appends an item, failing if the collection is sealed.
func (c *Collection[T]) Insert(item T) error {
	if err := c.ThrowIfSealed(); err != nil {
		return err
	}

	c.items = append(c.items, item)

	return nil
}

// RemoveAt removes the item at index, failing if the collection is sealed
// or the index is out of range.
func (c *Collection[T]) RemoveAt(index int) error {
	if err := c.ThrowIfSealed(); err != nil {
		return err
	}

	if index < 0 || index >= len(c.items) {
		return bioerr.Arguments(0, "sealable: index %d out of range [0,%d)", index, len(c.items))
	}

	c.items = append(c.items[:index], c.items[index+1:]...)

	return nil
}

// ReplaceAt replaces the item at index, failing if the collection is
// sealed or the index is out of range.
func (c *Collection[T]) ReplaceAt(index int, item T) error {
	if err := c.ThrowIfSealed(); err != nil {
		return err
	}

	if index < 0 || index >= len(c.items) {
		return bioerr.Arguments(0, "sealable: index %d out of range [0,%d)", index, len(c.items))
	}

	c.items[index] = item

	return nil
}

// Clear removes every item, failing if the collection is sealed.
func (c *Collection[T]) Clear() error {
	if err := c.ThrowIfSealed(); err != nil {
		return err
	}

	c.items = nil

	return nil
}
