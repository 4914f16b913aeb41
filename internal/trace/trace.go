// Package trace provides the debug introspection dump used by development
// tooling: a nested, named key-value rendering of a component tree.
// Components opt in by implementing Traceable; the composite hooks that call
// into this package only exist under the uidebug build tag, so release
// builds carry no tracing code at the call sites.
package trace

import (
	"fmt"
	"strings"
)

// Traceable is implemented by components that can dump themselves.
type Traceable interface {
	Trace(t *Tracer)
}

// Tracer accumulates a nested dump. Zero value is ready to use.
type Tracer struct {
	b     strings.Builder
	depth int
}

func (t *Tracer) indent() {
	for i := 0; i < t.depth; i++ {
		t.b.WriteString("  ")
	}
}

// Open starts a named node.
func (t *Tracer) Open(name string) {
	t.indent()
	t.b.WriteString(name)
	t.b.WriteString(" {\n")
	t.depth++
}

// Close ends the most recently opened node.
func (t *Tracer) Close() {
	if t.depth > 0 {
		t.depth--
	}
	t.indent()
	t.b.WriteString("}\n")
}

// Field dumps a named child. Children that are not Traceable render as
// their Go type name.
func (t *Tracer) Field(name string, v any) {
	t.indent()
	t.b.WriteString(name)
	t.b.WriteString(": ")
	if tr, ok := v.(Traceable); ok {
		t.b.WriteString("\n")
		t.depth++
		tr.Trace(t)
		t.depth--
	} else {
		fmt.Fprintf(&t.b, "%T\n", v)
	}
}

// Str records a named string value.
func (t *Tracer) Str(name, value string) {
	t.indent()
	fmt.Fprintf(&t.b, "%s: %q\n", name, value)
}

// Int records a named integer value.
func (t *Tracer) Int(name string, value int) {
	t.indent()
	fmt.Fprintf(&t.b, "%s: %d\n", name, value)
}

// String returns the accumulated dump.
func (t *Tracer) String() string {
	return t.b.String()
}
