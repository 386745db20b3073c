package vdom

import (
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/valyala/quicktemplate"
)

func streamFiber(qw *quicktemplate.Writer, f *fiber) {
	if f == nil {
		return
	}
	switch f.kind {
	case kindText:
		qw.E().S(f.text)
	case kindElem:
		qw.N().S("<")
		qw.N().S(f.tag)
		if f.class != "" {
			qw.N().S(` class="`)
			qw.E().S(f.class)
			qw.N().S(`"`)
		}
		qw.N().S(">")
		for _, c := range f.children {
			streamFiber(qw, c)
		}
		qw.N().S("</")
		qw.N().S(f.tag)
		qw.N().S(">")
	default:
		for _, c := range f.children {
			streamFiber(qw, c)
		}
	}
}

func writeSnapshot(w io.Writer, f *fiber) {
	qw := quicktemplate.AcquireWriter(w)
	streamFiber(qw, f)
	quicktemplate.ReleaseWriter(qw)
}

func snapshot(f *fiber) string {
	bb := quicktemplate.AcquireByteBuffer()
	writeSnapshot(bb, f)
	s := string(bb.B)
	quicktemplate.ReleaseByteBuffer(bb)
	return s
}

func digestOf(snapshot string) uint64 { return xxhash.Sum64String(snapshot) }

// WriteSnapshot writes the committed host output to w.
func (r *Root) WriteSnapshot(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	writeSnapshot(w, r.tree)
}
