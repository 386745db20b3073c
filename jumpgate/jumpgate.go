// Package jumpgate renders a subtree somewhere else in a vdom tree. A
// Provider's children show up in a Consumer of the same Jumpgate, anywhere
// under their shared Anchor.
//
//	jg := jumpgate.New()
//	tree := jg.Anchor(
//		vdom.H("header", "", jg.Consumer()),
//		vdom.H("main", "", jg.Provider(vdom.Text("title"))),
//	)
package jumpgate

import (
	"github.com/creachadair/mds/value"
	"github.com/delaneyj/jumpgate/gate"
	"github.com/delaneyj/jumpgate/vdom"
)

// Jumpgate is one bound Anchor/Consumer/Provider set. Components of
// different Jumpgates never interact.
type Jumpgate struct {
	// Anchor renders children inside the scope the Provider and Consumer bind to.
	Anchor func(children ...vdom.Node) vdom.Node
	// Consumer renders the Provider's children, or fallback while there are none.
	Consumer func(fallback ...vdom.Node) vdom.Node
	// Provider sends children to the Consumer and renders nothing itself.
	Provider func(children ...vdom.Node) vdom.Node
}

type bundle struct {
	gate   *gate.Gate[vdom.Node]
	anchor *vdom.Context[*gate.Anchor[vdom.Node]]
}

func newBundle(opts []gate.Option) *bundle {
	return &bundle{
		gate:   gate.New[vdom.Node](opts...),
		anchor: vdom.NewContext[*gate.Anchor[vdom.Node]]("jumpgate.anchor", nil),
	}
}

func (b *bundle) components(anchor, consumer, provider *vdom.Type) Jumpgate {
	return Jumpgate{
		Anchor:   element(anchor),
		Consumer: element(consumer),
		Provider: element(provider),
	}
}

func element(t *vdom.Type) func(children ...vdom.Node) vdom.Node {
	return func(children ...vdom.Node) vdom.Node {
		return vdom.Comp{Type: t, Props: children}
	}
}

func content(props any) vdom.Node {
	children, _ := props.([]vdom.Node)
	switch len(children) {
	case 0:
		return nil
	case 1:
		return children[0]
	default:
		return vdom.Fragment(children)
	}
}

// bind creates the Anchor of an Anchor component instance and wires its
// broadcasts to the instance's scope.
func (b *bundle) bind(s *vdom.Scope) *gate.Anchor[vdom.Node] {
	a := b.gate.NewAnchor()
	s.OnCleanup(a.Subscribe(func(value.Maybe[vdom.Node]) { s.Invalidate() }))
	return a
}

func (b *bundle) provider(s *vdom.Scope) (gate.Binding[vdom.Node], error) {
	a, _ := b.anchor.Use(s)
	p, err := b.gate.NewProvider(a)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (b *bundle) consumer(s *vdom.Scope, fallback vdom.Node) (*gate.Consumer[vdom.Node], error) {
	a, _ := b.anchor.Use(s)
	return b.gate.NewConsumer(a, fallback)
}

func project(c *gate.Consumer[vdom.Node]) vdom.Node {
	if n, ok := c.Render(); ok {
		return n
	}
	return nil
}
