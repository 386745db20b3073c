package jumpgate_test

import (
	"errors"
	"testing"

	"github.com/delaneyj/jumpgate/gate"
	"github.com/delaneyj/jumpgate/jumpgate"
	"github.com/delaneyj/jumpgate/vdom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var variants = []struct {
	name string
	new  func(opts ...gate.Option) jumpgate.Jumpgate
}{
	{"hooks", jumpgate.New},
	{"classic", jumpgate.NewClassic},
}

type warnings struct {
	msgs []string
}

func (w *warnings) add(msg string) { w.msgs = append(w.msgs, msg) }

func (w *warnings) take() []string {
	msgs := w.msgs
	w.msgs = nil
	return msgs
}

func eachVariant(t *testing.T, fn func(t *testing.T, jg jumpgate.Jumpgate, w *warnings)) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			w := &warnings{}
			fn(t, v.new(gate.WithWarn(w.add)), w)
		})
	}
}

func page(jg jumpgate.Jumpgate, fallback vdom.Node, providers ...vdom.Node) vdom.Node {
	var consumer vdom.Node
	if fallback != nil {
		consumer = jg.Consumer(fallback)
	} else {
		consumer = jg.Consumer()
	}
	return vdom.H("div", "root",
		jg.Anchor(
			vdom.H("div", "consumer", consumer),
			vdom.H("div", "provider", providers...),
		),
	)
}

func TestBasic(t *testing.T) {
	eachVariant(t, func(t *testing.T, jg jumpgate.Jumpgate, w *warnings) {
		r := vdom.NewRoot()
		require.NoError(t, r.Render(page(jg, nil, jg.Provider(vdom.H("div", "jump")))))
		assert.Equal(t,
			`<div class="root"><div class="consumer"><div class="jump"></div></div><div class="provider"></div></div>`,
			r.Snapshot())
		assert.Empty(t, w.take())
	})
}

func TestAnchorless(t *testing.T) {
	eachVariant(t, func(t *testing.T, jg jumpgate.Jumpgate, w *warnings) {
		r := vdom.NewRoot()

		err := r.Render(jg.Provider(vdom.H("div", "jump")))
		require.Error(t, err)
		assert.True(t, errors.Is(err, gate.ErrNoAnchor))
		assert.EqualError(t, err, "Attempted to render a <Provider /> without an <Anchor />")

		err = r.Render(jg.Consumer())
		require.Error(t, err)
		assert.True(t, errors.Is(err, gate.ErrNoAnchor))
		assert.EqualError(t, err, "Attempted to render a <Consumer /> without an <Anchor />")

		assert.Equal(t, "", r.Snapshot())
	})
}

func TestAnchorOfAnotherGate(t *testing.T) {
	eachVariant(t, func(t *testing.T, jg jumpgate.Jumpgate, w *warnings) {
		other := jumpgate.New()
		r := vdom.NewRoot()

		err := r.Render(jg.Anchor(other.Consumer()))
		var missing *gate.MissingAnchorError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "Consumer", missing.Role)

		err = r.Render(other.Anchor(jg.Provider(vdom.Text("x"))))
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "Provider", missing.Role)
	})
}

func TestLifecycle(t *testing.T) {
	eachVariant(t, func(t *testing.T, jg jumpgate.Jumpgate, w *warnings) {
		r := vdom.NewRoot()
		fallback := vdom.Text("empty")

		require.NoError(t, r.Render(page(jg, fallback)))
		assert.Equal(t, `<div class="root"><div class="consumer">empty</div><div class="provider"></div></div>`, r.Snapshot())

		require.NoError(t, r.Render(page(jg, fallback, jg.Provider(vdom.Text("jump")))))
		assert.Equal(t, `<div class="root"><div class="consumer">jump</div><div class="provider"></div></div>`, r.Snapshot())

		require.NoError(t, r.Render(page(jg, fallback, jg.Provider(vdom.Text("jump-update")))))
		assert.Equal(t, `<div class="root"><div class="consumer">jump-update</div><div class="provider"></div></div>`, r.Snapshot())

		require.NoError(t, r.Render(page(jg, fallback)))
		assert.Equal(t, `<div class="root"><div class="consumer">empty</div><div class="provider"></div></div>`, r.Snapshot())

		require.NoError(t, r.Render(page(jg, nil)))
		assert.Equal(t, `<div class="root"><div class="consumer"></div><div class="provider"></div></div>`, r.Snapshot())

		assert.Empty(t, w.take())
	})
}

func TestProviderBeforeConsumer(t *testing.T) {
	eachVariant(t, func(t *testing.T, jg jumpgate.Jumpgate, w *warnings) {
		r := vdom.NewRoot()
		tree := func(text string) vdom.Node {
			return jg.Anchor(
				vdom.H("p", "", jg.Provider(vdom.Text(text), vdom.Text("!"))),
				vdom.H("q", "", jg.Consumer()),
			)
		}
		require.NoError(t, r.Render(tree("a")))
		assert.Equal(t, "<p></p><q>a!</q>", r.Snapshot())
		require.NoError(t, r.Render(tree("b")))
		assert.Equal(t, "<p></p><q>b!</q>", r.Snapshot())

		r.Unmount()
		assert.Equal(t, "", r.Snapshot())
		assert.Empty(t, w.take())
	})
}

func TestDuplicate(t *testing.T) {
	eachVariant(t, func(t *testing.T, jg jumpgate.Jumpgate, w *warnings) {
		r := vdom.NewRoot()
		require.NoError(t, r.Render(page(jg, nil,
			jg.Provider(vdom.Text("first")),
			jg.Provider(vdom.Text("second")),
		)))
		assert.Equal(t, []string{gate.MountWarning}, w.take())
		assert.Equal(t, `<div class="root"><div class="consumer">second</div><div class="provider"></div></div>`, r.Snapshot())
	})
}

func TestUnmountOk(t *testing.T) {
	for _, keyed := range []bool{false, true} {
		name := "positional"
		if keyed {
			name = "keyed"
		}
		t.Run(name, func(t *testing.T) {
			eachVariant(t, func(t *testing.T, jg jumpgate.Jumpgate, w *warnings) {
				provider := func(key, text string) vdom.Node {
					p := jg.Provider(vdom.Text(text))
					if keyed {
						return vdom.WithKey(p, key)
					}
					return p
				}
				consumed := func(text string) string {
					return `<div class="root"><div class="consumer">` + text + `</div><div class="provider"></div></div>`
				}
				r := vdom.NewRoot()
				fallback := vdom.Text("empty")

				require.NoError(t, r.Render(page(jg, fallback, provider("a", "A"), provider("b", "B"))))
				assert.Equal(t, []string{gate.MountWarning}, w.take())
				assert.Equal(t, consumed("B"), r.Snapshot())

				require.NoError(t, r.Render(page(jg, fallback, provider("b", "B"))))
				assert.Empty(t, w.take())
				assert.Equal(t, consumed("B"), r.Snapshot())

				require.NoError(t, r.Render(page(jg, fallback, provider("b", "C"))))
				assert.Empty(t, w.take())
				assert.Equal(t, consumed("C"), r.Snapshot())

				require.NoError(t, r.Render(page(jg, fallback, provider("b", "C"), provider("d", "D"))))
				assert.Equal(t, []string{gate.MountWarning}, w.take())
				assert.Equal(t, consumed("D"), r.Snapshot())

				require.NoError(t, r.Render(page(jg, fallback)))
				assert.Empty(t, w.take())
				assert.Equal(t, consumed("empty"), r.Snapshot())
			})
		})
	}
}

func TestEmptyProvider(t *testing.T) {
	eachVariant(t, func(t *testing.T, jg jumpgate.Jumpgate, w *warnings) {
		r := vdom.NewRoot()
		require.NoError(t, r.Render(page(jg, vdom.Text("empty"), jg.Provider())))
		assert.Equal(t, `<div class="root"><div class="consumer">empty</div><div class="provider"></div></div>`, r.Snapshot())

		require.NoError(t, r.Render(page(jg, vdom.Text("empty"), jg.Provider(vdom.Text("x")))))
		assert.Equal(t, []string{gate.UpdateWarning}, w.take())
		assert.Equal(t, `<div class="root"><div class="consumer">x</div><div class="provider"></div></div>`, r.Snapshot())
	})
}

func TestIndependentGates(t *testing.T) {
	one, two := jumpgate.New(), jumpgate.NewClassic()
	r := vdom.NewRoot()
	require.NoError(t, r.Render(one.Anchor(
		two.Anchor(
			vdom.H("a", "", one.Consumer()),
			vdom.H("b", "", two.Consumer()),
			two.Provider(vdom.Text("two")),
		),
		one.Provider(vdom.Text("one")),
	)))
	assert.Equal(t, "<a>one</a><b>two</b>", r.Snapshot())
}

func TestFuncProps(t *testing.T) {
	type buttonProps struct {
		label   string
		onClick func()
	}
	button := vdom.Func("Button", func(h *vdom.Hooks, props any) (vdom.Node, error) {
		return vdom.H("button", "", vdom.Text(props.(buttonProps).label)), nil
	})
	onClick := func() {}

	eachVariant(t, func(t *testing.T, jg jumpgate.Jumpgate, w *warnings) {
		tree := func(label string) vdom.Node {
			return jg.Anchor(
				vdom.H("q", "", jg.Consumer()),
				jg.Provider(vdom.Comp{Type: button, Props: buttonProps{label, onClick}}),
			)
		}
		r := vdom.NewRoot()
		for i := 0; i < 2; i++ {
			require.NoError(t, r.Render(tree("go")))
			assert.Equal(t, "<q><button>go</button></q>", r.Snapshot())
		}
		require.NoError(t, r.Render(tree("stop")))
		assert.Equal(t, "<q><button>stop</button></q>", r.Snapshot())
		assert.Empty(t, w.take())
	})
}
