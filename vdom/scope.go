package vdom

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Scope belongs to one component instance. Context values bubble down the
// parent chain and cleanups run when the instance leaves the tree.
type Scope struct {
	root   *Root
	parent *Scope

	contexts map[uint64]any
	children mapset.Set[*Scope]
	cleanups []func()
	hooks    *Hooks
	disposed bool
}

func newScope(root *Root, parent *Scope) *Scope {
	s := &Scope{
		root:     root,
		parent:   parent,
		contexts: map[uint64]any{},
		children: mapset.NewThreadUnsafeSet[*Scope](),
	}
	s.hooks = &Hooks{scope: s}
	return s
}

// Invalidate asks the Root for another render pass.
func (s *Scope) Invalidate() {
	if s.disposed {
		return
	}
	s.root.pending.Store(true)
}

// OnCleanup registers fn to run when the scope is disposed.
func (s *Scope) OnCleanup(fn func()) {
	s.cleanups = append(s.cleanups, fn)
}

func (s *Scope) attach() {
	if s.parent != nil {
		s.parent.children.Add(s)
	}
}

func (s *Scope) dispose() {
	if s.disposed {
		return
	}
	for _, child := range s.children.ToSlice() {
		child.dispose()
	}
	s.hooks.cleanup()
	for _, fn := range s.cleanups {
		fn()
	}
	s.disposed = true
	s.cleanups = nil
	s.contexts = map[uint64]any{}
	s.children.Clear()
	if s.parent != nil {
		s.parent.children.Remove(s)
	}
}

func (s *Scope) get(id uint64) (v any, ok bool) {
	for o := s; o != nil; o = o.parent {
		if v, ok = o.contexts[id]; ok {
			return v, true
		}
	}
	return nil, false
}

func (s *Scope) set(id uint64, v any) {
	s.contexts[id] = v
}
