package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sjoeboo/dialogkit/internal/geometry"
)

// paintOp records one call into the test painter.
type paintOp struct {
	kind string // "text", "fill", "bitmap"
	text string
	rect geometry.Rect
}

type testPainter struct {
	ops []paintOp
}

func (p *testPainter) Text(origin geometry.Offset, s string, style lipgloss.Style) {
	p.ops = append(p.ops, paintOp{kind: "text", text: s})
}

func (p *testPainter) Fill(r geometry.Rect, style lipgloss.Style) {
	p.ops = append(p.ops, paintOp{kind: "fill", rect: r})
}

func (p *testPainter) Bitmap(r geometry.Rect, bitmap []byte, style lipgloss.Style) {
	p.ops = append(p.ops, paintOp{kind: "bitmap", rect: r})
}

func (p *testPainter) kinds() []string {
	out := make([]string, len(p.ops))
	for i, op := range p.ops {
		out[i] = op.kind
	}
	return out
}
