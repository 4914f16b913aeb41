package component

import (
	"testing"

	"github.com/sjoeboo/dialogkit/internal/geometry"
)

// stub is a minimal component emitting a fixed message on confirm.
type stub struct {
	placed geometry.Rect
	height int
	events int
}

func (s *stub) Place(bounds geometry.Rect) geometry.Rect {
	_, bottom := bounds.SplitBottom(s.height)
	s.placed = bottom
	return bottom
}

func (s *stub) Event(ctx *Context, ev Event) (string, bool) {
	s.events++
	if k, ok := ev.(KeyEvent); ok && k.Key == KeyConfirm {
		return "confirmed", true
	}
	return "", false
}

func (s *stub) Paint(p Painter) {}

func (s *stub) Bounds(sink func(geometry.Rect)) { sink(s.placed) }

func TestChild_CachesPlacedRect(t *testing.T) {
	c := NewChild[string](&stub{height: 48})

	if got := c.Rect(); !got.Empty() {
		t.Fatalf("unplaced child rect = %+v, want empty", got)
	}

	bounds := geometry.NewRect(0, 0, 240, 240)
	placed := c.Place(bounds)
	if placed.Height() != 48 {
		t.Errorf("placed height = %d, want 48", placed.Height())
	}
	if c.Rect() != placed {
		t.Errorf("cached rect %+v != placed rect %+v", c.Rect(), placed)
	}

	if !c.HitTest(geometry.Offset{X: 10, Y: 200}) {
		t.Error("point inside controls area should hit")
	}
	if c.HitTest(geometry.Offset{X: 10, Y: 10}) {
		t.Error("point above controls area should miss")
	}
}

func TestChild_ForwardsEvents(t *testing.T) {
	inner := &stub{height: 10}
	c := NewChild[string](inner)
	ctx := NewContext()

	msg, ok := c.Event(ctx, KeyEvent{Key: KeyConfirm})
	if !ok || msg != "confirmed" {
		t.Errorf("Event = (%q, %v), want (confirmed, true)", msg, ok)
	}

	_, ok = c.Event(ctx, KeyEvent{Key: KeyLeft})
	if ok {
		t.Error("left key should not emit")
	}
	if inner.events != 2 {
		t.Errorf("inner saw %d events, want 2", inner.events)
	}
}

func TestContext_RequestPaint(t *testing.T) {
	ctx := NewContext()
	if ctx.PaintRequested() {
		t.Fatal("fresh context should not have paint requested")
	}
	ctx.RequestPaint()
	if !ctx.PaintRequested() {
		t.Fatal("RequestPaint should stick")
	}
}
