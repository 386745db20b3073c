// Package vdom is a small retained component tree. A Root renders a Node
// tree in a render pass that has no side effects, then runs lifecycle
// callbacks and effects in a commit pass. Components that invalidate their
// scope during the commit cause another pass.
package vdom

// Node is anything a component can render.
type Node interface {
	isNode()
}

// Elem is a host element.
type Elem struct {
	Tag      string
	Class    string
	Key      string
	Children []Node
}

// Text is a text node.
type Text string

// Fragment groups nodes without a wrapping element.
type Fragment []Node

// Comp is a component element. Instances are kept across renders while the
// Type and Key at a position stay the same; Props are handed to the instance
// on every render.
type Comp struct {
	Type  *Type
	Key   string
	Props any
}

func (Elem) isNode()     {}
func (Text) isNode()     {}
func (Fragment) isNode() {}
func (Comp) isNode()     {}

// Type identifies a component and builds its instances.
type Type struct {
	Name string
	New  func() Component
}

// Component renders a subtree. Render runs in the render pass and must not
// mutate anything outside the component itself.
type Component interface {
	Render(s *Scope, props any) (Node, error)
}

// DidMount is implemented by components that want to know when they were
// committed for the first time.
type DidMount interface {
	DidMount(s *Scope)
}

// DidUpdate is implemented by components that want to know when a later
// render was committed.
type DidUpdate interface {
	DidUpdate(s *Scope)
}

// WillUnmount is implemented by components that want to know when they
// leave the tree.
type WillUnmount interface {
	WillUnmount(s *Scope)
}

// H builds an element.
func H(tag, class string, children ...Node) Elem {
	return Elem{Tag: tag, Class: class, Children: children}
}

// WithKey returns n with its key set. Nodes other than Elem and Comp are returned as is.
func WithKey(n Node, key string) Node {
	switch n := n.(type) {
	case Elem:
		n.Key = key
		return n
	case Comp:
		n.Key = key
		return n
	}
	return n
}
