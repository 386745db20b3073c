package gate

import (
	"slices"

	"github.com/creachadair/mds/value"
	mapset "github.com/deckarep/golang-set/v2"
)

// Anchor owns the content slot. Every write goes through setNode, which
// checks the write against the slot occupancy, applies it anyway and then
// broadcasts the new content to subscribers.
type Anchor[T any] struct {
	gate   *Gate[T]
	slot   value.Maybe[T]
	setter Setter[T]

	// Providers that attached and have not detached yet, least recent writer first.
	active []*Provider[T]
	subs   mapset.Set[*subscription[T]]
}

type subscription[T any] struct {
	fn func(value.Maybe[T])
}

// Content returns what the slot currently holds.
func (a *Anchor[T]) Content() value.Maybe[T] { return a.slot }

// Setter returns the Anchor's mutator. The same function is returned on every
// call for the lifetime of the Anchor.
func (a *Anchor[T]) Setter() Setter[T] { return a.setter }

// Active reports how many Providers are attached.
func (a *Anchor[T]) Active() int { return len(a.active) }

// Subscribe registers fn to receive the slot after every write. The returned
// function cancels the subscription.
func (a *Anchor[T]) Subscribe(fn func(value.Maybe[T])) (cancel func()) {
	if a.subs == nil {
		a.subs = mapset.NewThreadUnsafeSet[*subscription[T]]()
	}
	s := &subscription[T]{fn: fn}
	a.subs.Add(s)
	return func() { a.subs.Remove(s) }
}

func (a *Anchor[T]) setNode(node value.Maybe[T], phase Phase) {
	a.check(phase)
	a.slot = node
	a.broadcast()
}

func (a *Anchor[T]) check(phase Phase) {
	full := a.slot.Present()
	switch {
	case phase == Mount && full:
		a.gate.cfg.warn(MountWarning)
	case phase == Update && !full:
		a.gate.cfg.warn(UpdateWarning)
	case phase == Unmount && !full:
		a.gate.cfg.warn(UnmountWarning)
	}
}

func (a *Anchor[T]) broadcast() {
	if a.subs == nil {
		return
	}
	for _, s := range a.subs.ToSlice() {
		s.fn(a.slot)
	}
}

// push is the write path for bound Providers. It keeps track of who wrote
// last so that a detaching Provider hands the slot back to the most recent
// Provider still attached instead of clearing it.
func (a *Anchor[T]) push(p *Provider[T], node value.Maybe[T], phase Phase) {
	if i := slices.Index(a.active, p); i >= 0 {
		a.active = slices.Delete(a.active, i, i+1)
	}
	if phase == Unmount {
		if n := len(a.active); n > 0 {
			node = a.active[n-1].last
		}
	} else {
		a.active = append(a.active, p)
	}
	a.setNode(node, phase)
}
