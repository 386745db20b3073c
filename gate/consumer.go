package gate

import "github.com/creachadair/mds/value"

// Consumer projects its Anchor's slot. It holds no state beyond its binding
// and fallback.
type Consumer[T any] struct {
	anchor   *Anchor[T]
	fallback value.Maybe[T]
}

// SetFallback replaces the content rendered while the slot is empty.
func (c *Consumer[T]) SetFallback(v T) { c.fallback = c.anchor.gate.maybe(v) }

// Render returns the slot content, or the fallback when the slot is empty.
// It reports false when there is nothing to render at all.
func (c *Consumer[T]) Render() (T, bool) {
	if v, ok := c.anchor.slot.GetOK(); ok {
		return v, true
	}
	return c.fallback.GetOK()
}
