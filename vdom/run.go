package vdom

import "context"

// Run renders every tree received on trees, one at a time, until ctx ends
// or trees is closed. Render errors go to the Root's error handler and do
// not stop the loop.
func (r *Root) Run(ctx context.Context, trees <-chan Node) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case n, ok := <-trees:
			if !ok {
				return nil
			}
			if err := r.Render(n); err != nil {
				r.onError(err)
			}
		}
	}
}
