package vdom

import (
	"fmt"

	"github.com/delaneyj/jumpgate/internal/same"
)

// Hooks holds the per-instance state of a function component. Hooks are
// matched by call order, so a component must call them in the same order on
// every render.
type Hooks struct {
	scope  *Scope
	slots  []any
	idx    int
	queued []func()
}

// Scope returns the scope of the component the hooks belong to.
func (h *Hooks) Scope() *Scope { return h.scope }

func (h *Hooks) begin() { h.idx, h.queued = 0, nil }

func hookSlot[S any](h *Hooks, init func() *S) *S {
	if h.idx == len(h.slots) {
		h.slots = append(h.slots, init())
	}
	slot, ok := h.slots[h.idx].(*S)
	if !ok {
		panic(fmt.Sprintf("vdom: hook %d changed kind between renders", h.idx))
	}
	h.idx++
	return slot
}

// UseRef returns a pointer that survives across renders of the component.
func UseRef[T any](h *Hooks, initial T) *T {
	return hookSlot(h, func() *T { return &initial })
}

type memoHook[T any] struct {
	deps  []any
	value T
}

// UseMemo recomputes fn during render only when deps changed.
func UseMemo[T any](h *Hooks, deps []any, fn func() T) T {
	m := hookSlot(h, func() *memoHook[T] {
		return &memoHook[T]{deps: deps, value: fn()}
	})
	if !depsEqual(m.deps, deps) {
		m.deps, m.value = deps, fn()
	}
	return m.value
}

type effectHook struct {
	deps    []any
	ran     bool
	cleanup func()

	next    []any
	pending func() func()
}

// UseEffect runs fn in the commit pass after the first render and after
// every render where deps changed. A nil deps runs fn after every render; an
// empty deps runs it once. The function fn returns, if any, runs before fn
// runs again and when the component unmounts.
func UseEffect(h *Hooks, deps []any, fn func() func()) {
	e := hookSlot(h, func() *effectHook { return &effectHook{} })
	e.pending = nil
	if e.ran && deps != nil && depsEqual(e.deps, deps) {
		return
	}
	e.next, e.pending = deps, fn
	h.queued = append(h.queued, e.commit)
}

func (e *effectHook) commit() {
	if e.pending == nil {
		return
	}
	fn := e.pending
	e.pending = nil
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
	e.deps, e.ran = e.next, true
	e.cleanup = fn()
}

func (h *Hooks) cleanup() {
	for _, slot := range h.slots {
		if e, ok := slot.(*effectHook); ok && e.cleanup != nil {
			e.cleanup()
			e.cleanup = nil
		}
	}
}

func depsEqual(a, b []any) bool { return same.All(a, b) }

// Func adapts a hooks-style render function to a component Type.
func Func(name string, render func(h *Hooks, props any) (Node, error)) *Type {
	return &Type{
		Name: name,
		New:  func() Component { return funcComponent(render) },
	}
}

type funcComponent func(h *Hooks, props any) (Node, error)

func (f funcComponent) Render(s *Scope, props any) (Node, error) {
	s.hooks.begin()
	return f(s.hooks, props)
}
