package vdom

import (
	"strconv"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

var contextSeq atomic.Uint64

// Context is a value threaded down the tree from the nearest scope that
// provides it. Two contexts never collide, even with the same name.
type Context[T any] struct {
	id           uint64
	defaultValue T
}

// NewContext returns a context whose Read falls back to defaultValue.
func NewContext[T any](name string, defaultValue T) *Context[T] {
	seq := contextSeq.Add(1)
	return &Context[T]{
		id:           xxhash.Sum64String(name + "#" + strconv.FormatUint(seq, 10)),
		defaultValue: defaultValue,
	}
}

// Provide makes v visible to s and its descendants.
func (c *Context[T]) Provide(s *Scope, v T) {
	s.set(c.id, v)
}

// Use looks v up through the scope chain and reports whether any scope
// provided it.
func (c *Context[T]) Use(s *Scope) (T, bool) {
	if s != nil {
		if x, ok := s.get(c.id); ok {
			return x.(T), true
		}
	}
	return c.defaultValue, false
}

// Read is Use without the lookup result.
func (c *Context[T]) Read(s *Scope) T {
	v, _ := c.Use(s)
	return v
}
