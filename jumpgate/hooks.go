package jumpgate

import (
	"github.com/delaneyj/jumpgate/gate"
	"github.com/delaneyj/jumpgate/vdom"
)

// New returns a Jumpgate built from function components.
func New(opts ...gate.Option) Jumpgate {
	b := newBundle(opts)
	return b.components(
		vdom.Func("Anchor", b.renderAnchor),
		vdom.Func("Consumer", b.renderConsumer),
		vdom.Func("Provider", b.renderProvider),
	)
}

func (b *bundle) renderAnchor(h *vdom.Hooks, props any) (vdom.Node, error) {
	a := vdom.UseRef[*gate.Anchor[vdom.Node]](h, nil)
	if *a == nil {
		*a = b.bind(h.Scope())
	}
	b.anchor.Provide(h.Scope(), *a)
	children, _ := props.([]vdom.Node)
	return vdom.Fragment(children), nil
}

func (b *bundle) renderConsumer(h *vdom.Hooks, props any) (vdom.Node, error) {
	fallback := content(props)
	c := vdom.UseRef[*gate.Consumer[vdom.Node]](h, nil)
	if *c == nil {
		cc, err := b.consumer(h.Scope(), fallback)
		if err != nil {
			return nil, err
		}
		*c = cc
	}
	(*c).SetFallback(fallback)
	return project(*c), nil
}

func (b *bundle) renderProvider(h *vdom.Hooks, props any) (vdom.Node, error) {
	children := content(props)
	ref := vdom.UseRef[gate.Binding[vdom.Node]](h, nil)
	if *ref == nil {
		p, err := b.provider(h.Scope())
		if err != nil {
			return nil, err
		}
		*ref = p
	}
	p := *ref
	attached := vdom.UseRef(h, false)

	vdom.UseEffect(h, []any{children, p}, func() func() {
		if !*attached {
			*attached = true
			logLifecycle(p.OnAttach(children))
		} else {
			logLifecycle(p.OnUpdate(children))
		}
		return nil
	})
	vdom.UseEffect(h, []any{}, func() func() {
		return func() { logLifecycle(p.OnDetach()) }
	})
	return nil, nil
}
