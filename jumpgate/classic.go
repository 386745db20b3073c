package jumpgate

import (
	"log"

	"github.com/delaneyj/jumpgate/gate"
	"github.com/delaneyj/jumpgate/vdom"
)

// NewClassic returns a Jumpgate built from stateful components driven by
// DidMount, DidUpdate and WillUnmount.
func NewClassic(opts ...gate.Option) Jumpgate {
	b := newBundle(opts)
	return b.components(
		&vdom.Type{Name: "Anchor", New: func() vdom.Component { return &classicAnchor{b: b} }},
		&vdom.Type{Name: "Consumer", New: func() vdom.Component { return &classicConsumer{b: b} }},
		&vdom.Type{Name: "Provider", New: func() vdom.Component { return &classicProvider{b: b} }},
	)
}

type classicAnchor struct {
	b      *bundle
	anchor *gate.Anchor[vdom.Node]
}

func (c *classicAnchor) Render(s *vdom.Scope, props any) (vdom.Node, error) {
	if c.anchor == nil {
		c.anchor = c.b.bind(s)
	}
	c.b.anchor.Provide(s, c.anchor)
	children, _ := props.([]vdom.Node)
	return vdom.Fragment(children), nil
}

type classicConsumer struct {
	b   *bundle
	con *gate.Consumer[vdom.Node]
}

func (c *classicConsumer) Render(s *vdom.Scope, props any) (vdom.Node, error) {
	fallback := content(props)
	if c.con == nil {
		con, err := c.b.consumer(s, fallback)
		if err != nil {
			return nil, err
		}
		c.con = con
	}
	c.con.SetFallback(fallback)
	return project(c.con), nil
}

type classicProvider struct {
	b        *bundle
	p        gate.Binding[vdom.Node]
	children vdom.Node
}

func (c *classicProvider) Render(s *vdom.Scope, props any) (vdom.Node, error) {
	if c.p == nil {
		p, err := c.b.provider(s)
		if err != nil {
			return nil, err
		}
		c.p = p
	}
	c.children = content(props)
	return nil, nil
}

func (c *classicProvider) DidMount(*vdom.Scope) {
	logLifecycle(c.p.OnAttach(c.children))
}

func (c *classicProvider) DidUpdate(*vdom.Scope) {
	logLifecycle(c.p.OnUpdate(c.children))
}

func (c *classicProvider) WillUnmount(*vdom.Scope) {
	logLifecycle(c.p.OnDetach())
}

func logLifecycle(err error) {
	if err != nil {
		log.Printf("jumpgate: %v", err)
	}
}
