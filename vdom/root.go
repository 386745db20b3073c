package vdom

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"
	"sync/atomic"
)

// ErrUnstable is returned when commits keep invalidating the tree.
var ErrUnstable = errors.New("vdom: tree did not settle")

const defaultMaxPasses = 16

// Option configures a Root.
type Option func(*Root)

// WithMaxPasses bounds the render passes a single Render may take.
func WithMaxPasses(n int) Option {
	return func(r *Root) { r.maxPasses = n }
}

// WithErrorHandler receives the render errors of trees applied by Run.
func WithErrorHandler(fn func(error)) Option {
	return func(r *Root) { r.onError = fn }
}

// WithCommitHook is called after every Render, Flush or Unmount whose
// output differs from the previous one. It runs after the Root is unlocked,
// so it may call back into the Root.
func WithCommitHook(fn func(snapshot string)) Option {
	return func(r *Root) { r.onCommit = fn }
}

// Root owns a committed tree. Its methods may be called from any
// goroutine; calls are serialized.
type Root struct {
	mu        sync.Mutex
	scope     *Scope
	input     Node
	tree      *fiber
	digest    uint64
	pending   atomic.Bool
	maxPasses int
	onError   func(error)
	onCommit  func(string)
	notify    func()
}

// NewRoot returns an empty Root.
func NewRoot(opts ...Option) *Root {
	r := &Root{
		maxPasses: defaultMaxPasses,
		onError:   func(err error) { log.Printf("vdom: %v", err) },
	}
	r.scope = newScope(r, nil)
	for _, opt := range opts {
		opt(r)
	}
	r.digest = digestOf("")
	return r
}

// Scope returns the scope enclosing every top-level component. Contexts
// provided on it are visible to the whole tree.
func (r *Root) Scope() *Scope { return r.scope }

// Render reconciles n against the committed tree and commits it, rendering
// again while the commit invalidated any scope. A render error leaves the
// previously committed tree in place.
func (r *Root) Render(n Node) error {
	r.mu.Lock()
	r.input = n
	err := r.settle()
	r.unlock()
	return err
}

// Flush re-renders the last tree if something invalidated it since.
func (r *Root) Flush() error {
	r.mu.Lock()
	if !r.pending.Load() {
		r.mu.Unlock()
		return nil
	}
	err := r.settle()
	r.unlock()
	return err
}

// Unmount removes the whole tree, running every unmount callback.
func (r *Root) Unmount() {
	r.mu.Lock()
	if r.tree != nil {
		unmount(r.tree)
	}
	r.tree, r.input = nil, nil
	r.pending.Store(false)
	r.committed()
	r.unlock()
}

// unlock releases the Root and then runs the commit hook, if a commit
// changed the output.
func (r *Root) unlock() {
	notify := r.notify
	r.notify = nil
	r.mu.Unlock()
	if notify != nil {
		notify()
	}
}

// Snapshot serializes the committed host output.
func (r *Root) Snapshot() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return snapshot(r.tree)
}

// Digest is the hash of the current snapshot.
func (r *Root) Digest() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.digest
}

func (r *Root) settle() error {
	for i := 0; i < r.maxPasses; i++ {
		r.pending.Store(false)
		p := &pass{root: r}
		tree, err := p.reconcile(r.scope, r.tree, r.input)
		if err != nil {
			return err
		}
		r.tree = tree
		p.commit()
		if !r.pending.Load() {
			r.committed()
			return nil
		}
	}
	r.committed()
	return fmt.Errorf("%w after %d passes", ErrUnstable, r.maxPasses)
}

func (r *Root) committed() {
	s := snapshot(r.tree)
	d := digestOf(s)
	if d == r.digest {
		return
	}
	r.digest = d
	if r.onCommit != nil {
		r.notify = func() { r.onCommit(s) }
	}
}

type kind uint8

const (
	kindText kind = iota
	kindElem
	kindFragment
	kindComp
)

// fiber is one committed node.
type fiber struct {
	kind  kind
	pos   int
	tag   string
	class string
	key   string
	text  string

	typ   *Type
	props any
	inst  Component
	scope *Scope

	children []*fiber
}

func (f *fiber) matches(n Node) bool {
	if f == nil {
		return false
	}
	switch n := n.(type) {
	case Text:
		return f.kind == kindText
	case Elem:
		return f.kind == kindElem && f.tag == n.Tag && f.key == n.Key
	case Fragment:
		return f.kind == kindFragment
	case Comp:
		return f.kind == kindComp && f.typ == n.Type && f.key == n.Key
	}
	return false
}

// pass is one render pass and the commit work it produced.
type pass struct {
	root      *Root
	deletions []*fiber
	work      []func()
}

func (p *pass) reconcile(parent *Scope, old *fiber, n Node) (*fiber, error) {
	if n == nil {
		if old != nil {
			p.deletions = append(p.deletions, old)
		}
		return nil, nil
	}
	if old != nil && !old.matches(n) {
		p.deletions = append(p.deletions, old)
		old = nil
	}

	switch n := n.(type) {
	case Text:
		return &fiber{kind: kindText, text: string(n)}, nil
	case Elem:
		f := &fiber{kind: kindElem, tag: n.Tag, class: n.Class, key: n.Key}
		return f, p.reconcileChildren(parent, f, old, n.Children)
	case Fragment:
		f := &fiber{kind: kindFragment}
		return f, p.reconcileChildren(parent, f, old, n)
	case Comp:
		return p.reconcileComp(parent, old, n)
	}
	return nil, fmt.Errorf("vdom: unknown node %T", n)
}

func (p *pass) reconcileChildren(parent *Scope, f, old *fiber, nodes []Node) error {
	var prev map[string]*fiber
	if old != nil {
		prev = make(map[string]*fiber, len(old.children))
		for _, c := range old.children {
			id := c.identity()
			if _, dup := prev[id]; dup {
				p.deletions = append(p.deletions, c)
				continue
			}
			prev[id] = c
		}
	}
	f.children = make([]*fiber, 0, len(nodes))
	for i, n := range nodes {
		id := nodeIdentity(n, i)
		o := prev[id]
		delete(prev, id)
		c, err := p.reconcile(parent, o, n)
		if err != nil {
			return err
		}
		if c != nil {
			c.pos = i
			f.children = append(f.children, c)
		}
	}
	if old != nil {
		for _, c := range old.children {
			if prev[c.identity()] == c {
				p.deletions = append(p.deletions, c)
			}
		}
	}
	return nil
}

func (p *pass) reconcileComp(parent *Scope, old *fiber, n Comp) (*fiber, error) {
	if n.Type == nil || n.Type.New == nil {
		return nil, errors.New("vdom: component without a type")
	}
	f := &fiber{kind: kindComp, typ: n.Type, key: n.Key, props: n.Props}
	mounted := old != nil
	if mounted {
		f.inst, f.scope = old.inst, old.scope
	} else {
		f.inst = n.Type.New()
		f.scope = newScope(p.root, parent)
	}

	out, err := render(f.inst, f.scope, n)
	if err != nil {
		return nil, err
	}
	effects := f.scope.hooks.queued
	f.scope.hooks.queued = nil

	var prevOut *fiber
	if mounted && len(old.children) > 0 {
		prevOut = old.children[0]
	}
	child, err := p.reconcile(f.scope, prevOut, out)
	if err != nil {
		return nil, err
	}
	if child != nil {
		f.children = []*fiber{child}
	}

	inst, scope := f.inst, f.scope
	p.work = append(p.work, func() {
		if !mounted {
			scope.attach()
			if m, ok := inst.(DidMount); ok {
				m.DidMount(scope)
			}
		} else if u, ok := inst.(DidUpdate); ok {
			u.DidUpdate(scope)
		}
		for _, fn := range effects {
			fn()
		}
	})
	return f, nil
}

func render(c Component, s *Scope, n Comp) (out Node, err error) {
	defer func() {
		if v := recover(); v != nil {
			if e, ok := v.(error); ok {
				err = fmt.Errorf("vdom: render %s: %w", n.Type.Name, e)
			} else {
				err = fmt.Errorf("vdom: render %s: %v", n.Type.Name, v)
			}
		}
	}()
	return c.Render(s, n.Props)
}

// commit runs unmounts first, then mount and update work in tree order,
// children before their parents.
func (p *pass) commit() {
	for _, f := range p.deletions {
		unmount(f)
	}
	for _, w := range p.work {
		w()
	}
}

func unmount(f *fiber) {
	if f.kind == kindComp {
		if u, ok := f.inst.(WillUnmount); ok {
			u.WillUnmount(f.scope)
		}
	}
	for _, c := range f.children {
		unmount(c)
	}
	if f.kind == kindComp {
		f.scope.dispose()
	}
}

func (f *fiber) identity() string {
	if f.key != "" {
		return "k:" + f.key
	}
	return "i:" + strconv.Itoa(f.pos)
}

func nodeIdentity(n Node, i int) string {
	switch n := n.(type) {
	case Elem:
		if n.Key != "" {
			return "k:" + n.Key
		}
	case Comp:
		if n.Key != "" {
			return "k:" + n.Key
		}
	}
	return "i:" + strconv.Itoa(i)
}
