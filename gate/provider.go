package gate

import (
	"fmt"

	"github.com/creachadair/mds/value"
)

// Provider relays its content to the Anchor it was bound to. It moves from
// Unattached to Mounted on OnAttach and to Unmounted on OnDetach; it cannot
// be reattached.
type Provider[T any] struct {
	anchor *Anchor[T]
	state  State
	last   value.Maybe[T]
	raw    T
}

var _ Binding[int] = (*Provider[int])(nil)

// State reports where the Provider is in its lifecycle.
func (p *Provider[T]) State() State { return p.state }

func (p *Provider[T]) OnAttach(content T) error {
	if p.state != Unattached {
		return fmt.Errorf("attach while %s: %w", p.state, ErrLifecycle)
	}
	p.state = Mounted
	p.raw = content
	p.last = p.anchor.gate.maybe(content)
	p.anchor.push(p, p.last, Mount)
	return nil
}

// OnUpdate pushes content unless it equals what was pushed last.
func (p *Provider[T]) OnUpdate(content T) error {
	if p.state != Mounted {
		return fmt.Errorf("update while %s: %w", p.state, ErrLifecycle)
	}
	if p.anchor.gate.cfg.equal(p.raw, content) {
		return nil
	}
	p.raw = content
	p.last = p.anchor.gate.maybe(content)
	p.anchor.push(p, p.last, Update)
	return nil
}

func (p *Provider[T]) OnDetach() error {
	if p.state != Mounted {
		return fmt.Errorf("detach while %s: %w", p.state, ErrLifecycle)
	}
	p.state = Unmounted
	p.last = value.Maybe[T]{}
	p.anchor.push(p, p.last, Unmount)
	return nil
}
