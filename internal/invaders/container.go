package invaders

import "iter"

// Container is an ordered collection of same-kind entities.
//
// Entities are destroyed in place during a tick and physically removed by
// Compact afterwards, so a scan never skips or revisits an entry and callers
// outside a tick never observe a dead entity.
type Container[T Entity] struct {
	items []T
}

// Append adds an entity at the end of the enumeration order.
func (c *Container[T]) Append(e T) {
	c.items = append(c.items, e)
}

// Len returns the number of entities, including any destroyed this tick
// that have not been compacted yet.
func (c *Container[T]) Len() int {
	return len(c.items)
}

// Live iterates entities that are still alive, in enumeration order.
func (c *Container[T]) Live() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range c.items {
			if e.Alive() && !yield(e) {
				return
			}
		}
	}
}

// Compact removes destroyed entities, keeping survivors in their relative
// order. It returns the number removed.
func (c *Container[T]) Compact() int {
	kept := c.items[:0]
	for _, e := range c.items {
		if e.Alive() {
			kept = append(kept, e)
		}
	}
	removed := len(c.items) - len(kept)

	// Release references held past the new length.
	var zero T
	for i := len(kept); i < len(c.items); i++ {
		c.items[i] = zero
	}
	c.items = kept
	return removed
}

// Snapshot copies the boxes of all live entities in enumeration order.
// The result never aliases container storage.
func (c *Container[T]) Snapshot() []GameObject {
	out := make([]GameObject, 0, len(c.items))
	for e := range c.Live() {
		out = append(out, e.Bounds())
	}
	return out
}
