//go:build uidebug

package ui

import "github.com/sjoeboo/dialogkit/internal/trace"

// Trace dumps the dialog's children for introspection tooling. Diagnostic
// only; never affects layout, events or paint.
func (d *Dialog[C, K]) Trace(t *trace.Tracer) {
	t.Open("Dialog")
	t.Field("content", d.content.Inner())
	t.Field("controls", d.controls.Inner())
	t.Close()
}

// Trace dumps the icon dialog's text block and controls.
func (d *IconDialog[K]) Trace(t *trace.Tracer) {
	t.Open("IconDialog")
	t.Field("content", d.paragraphs)
	t.Field("controls", d.controls.Inner())
	t.Close()
}
