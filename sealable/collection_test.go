package sealable

import "testing"

type namedItem struct {
	Sealable

	name string
}

func TestCollectionInsertAndSeal(t *testing.T) {
	c := NewCollection[int](1, 2, 3)

	if err := c.Insert(4); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if c.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", c.Len())
	}

	c.Seal()

	if err := c.Insert(5); err == nil {
		t.Fatalf("expected error inserting into a sealed collection")
	}
}

func TestCollectionSealPropagatesToSealerElements(t *testing.T) {
	c := NewCollection(&namedItem{name: "a"}, &namedItem{name: "b"})
	c.Seal()

	for _, item := range c.Items() {
		if !item.IsSealed() {
			t.Errorf("element %q was not sealed by collection seal", item.name)
		}
	}
}

func TestCollectionRemoveAtOutOfRange(t *testing.T) {
	c := NewCollection[int](1, 2)

	if err := c.RemoveAt(5); err == nil {
		t.Fatalf("expected error for out-of-range index")
	}
}

func TestCollectionClear(t *testing.T) {
	c := NewCollection[int](1, 2, 3)

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after Clear", c.Len())
	}
}
