// Package gate implements the slot state machine behind a jumpgate: an Anchor
// owns a single content slot, one Provider pushes content into it and any
// number of Consumers project whatever the slot currently holds.
//
// The package knows nothing about a UI tree. Host adapters drive Providers
// through the Binding interface from their mount, update and unmount
// notifications.
package gate

import (
	"github.com/creachadair/mds/value"
)

// Setter is the mutator an Anchor hands to its Providers.
type Setter[T any] func(node value.Maybe[T], phase Phase)

// Binding is what a host adapter calls from its lifecycle notifications.
type Binding[T any] interface {
	OnAttach(content T) error
	OnUpdate(content T) error
	OnDetach() error
}

// Gate is one independent Anchor/Provider/Consumer set. Anchors, Providers
// and Consumers built from different gates never see each other.
type Gate[T any] struct {
	cfg *config
}

// New returns a fresh gate.
func New[T any](opts ...Option) *Gate[T] {
	return &Gate[T]{cfg: newConfig(opts)}
}

// NewAnchor returns an Anchor with an empty slot.
func (g *Gate[T]) NewAnchor() *Anchor[T] {
	a := &Anchor[T]{gate: g}
	a.setter = a.setNode
	return a
}

// NewProvider binds a Provider to a. It fails with a MissingAnchorError when a
// is nil or belongs to another gate.
func (g *Gate[T]) NewProvider(a *Anchor[T]) (*Provider[T], error) {
	if a == nil || a.gate != g {
		return nil, missingAnchor("Provider")
	}
	return &Provider[T]{anchor: a}, nil
}

// NewConsumer binds a Consumer to a. The fallback is rendered while the slot
// is empty, unless it is itself not present.
func (g *Gate[T]) NewConsumer(a *Anchor[T], fallback T) (*Consumer[T], error) {
	if a == nil || a.gate != g {
		return nil, missingAnchor("Consumer")
	}
	return &Consumer[T]{anchor: a, fallback: g.maybe(fallback)}, nil
}

// Unbound is the setter seen by a Provider with no Anchor in scope. Calling
// it panics with the Provider's MissingAnchorError.
func (g *Gate[T]) Unbound() Setter[T] {
	return func(value.Maybe[T], Phase) {
		panic(missingAnchor("Provider"))
	}
}

func (g *Gate[T]) maybe(v T) value.Maybe[T] {
	if !g.cfg.present(v) {
		return value.Maybe[T]{}
	}
	return value.Just(v)
}
