package ui

import (
	"testing"

	"github.com/sjoeboo/dialogkit/internal/component"
	"github.com/sjoeboo/dialogkit/internal/geometry"
	"github.com/sjoeboo/dialogkit/internal/theme"
)

// probe is a test component with a scripted message, a fixed height claim,
// and counters for every capability call.
type probe struct {
	name    string
	height  int   // 0 = fill the offered bounds
	emit    bool  // emit msg on every event
	consume bool  // mutate silently: no msg, but count the event
	msg     string

	rect   geometry.Rect
	events int
	paints *[]string // shared paint log, records name per Paint call
}

func (p *probe) Place(bounds geometry.Rect) geometry.Rect {
	if p.height > 0 {
		_, p.rect = bounds.SplitBottom(p.height)
	} else {
		p.rect = bounds
	}
	return p.rect
}

func (p *probe) Event(ctx *component.Context, ev component.Event) (string, bool) {
	p.events++
	if p.emit {
		return p.msg, true
	}
	if p.consume {
		ctx.RequestPaint()
	}
	return "", false
}

func (p *probe) Paint(painter component.Painter) {
	if p.paints != nil {
		*p.paints = append(*p.paints, p.name)
	}
}

func (p *probe) Bounds(sink func(geometry.Rect)) { sink(p.rect) }

func fullScreen() geometry.Rect { return geometry.NewRect(0, 0, 240, 240) }

func TestDialog_PlaceReturnsOriginalBounds(t *testing.T) {
	for _, h := range []int{0, 20, 48, 300} {
		d := NewDialog[string, string](&probe{}, &probe{height: h})
		bounds := fullScreen()
		if got := d.Place(bounds); got != bounds {
			t.Errorf("controls height %d: Place = %+v, want the untouched input", h, got)
		}
	}
}

func TestDialog_PlaceArithmetic(t *testing.T) {
	content := &probe{}
	controls := &probe{height: 48}
	d := NewDialog[string, string](content, controls)
	d.Place(fullScreen())

	// Controls take the bottom 48; content gets what is left above them
	// minus the inter-button spacing, inset left by the content border.
	wantHeight := 240 - 48 - theme.ButtonSpacing
	if content.rect.Height() != wantHeight {
		t.Errorf("content height = %d, want %d", content.rect.Height(), wantHeight)
	}
	if content.rect.Width() != 240-theme.ContentBorder {
		t.Errorf("content width = %d, want %d", content.rect.Width(), 240-theme.ContentBorder)
	}
	if content.rect.X0 != theme.ContentBorder {
		t.Errorf("content X0 = %d, want %d", content.rect.X0, theme.ContentBorder)
	}
	if controls.rect.Y1 != 240 {
		t.Errorf("controls bottom = %d, want 240", controls.rect.Y1)
	}
}

func TestDialog_PlacesControlsBeforeContent(t *testing.T) {
	// Content is laid out from the space remaining after the controls, so
	// a taller controls component must squeeze the content.
	short := &probe{}
	d := NewDialog[string, string](short, &probe{height: 100})
	d.Place(fullScreen())
	if short.rect.Height() != 240-100-theme.ButtonSpacing {
		t.Errorf("content height = %d with 100-high controls", short.rect.Height())
	}
}

func TestDialog_Event_ContentEmissionShortCircuits(t *testing.T) {
	content := &probe{emit: true, msg: "dismiss"}
	controls := &probe{emit: true, msg: "never-seen"}
	d := NewDialog[string, string](content, controls)
	d.Place(fullScreen())

	msg, ok := d.Event(component.NewContext(), component.KeyEvent{Key: component.KeyConfirm})
	if !ok {
		t.Fatal("expected a message")
	}
	got, isContent := msg.Content()
	if !isContent || got != "dismiss" {
		t.Errorf("message = (%q, content=%v), want (dismiss, true)", got, isContent)
	}
	if _, isControls := msg.Controls(); isControls {
		t.Error("message must not read as a controls message")
	}
	if controls.events != 0 {
		t.Errorf("controls saw %d events, want 0 when content emits", controls.events)
	}
}

func TestDialog_Event_SilentContentDoesNotBlockControls(t *testing.T) {
	// Content consumes the event internally (mutates, requests paint) but
	// emits nothing; controls must still see the same event.
	content := &probe{consume: true}
	controls := &probe{emit: true, msg: "confirmed"}
	d := NewDialog[string, string](content, controls)
	d.Place(fullScreen())

	ctx := component.NewContext()
	msg, ok := d.Event(ctx, component.KeyEvent{Key: component.KeyConfirm})
	if !ok {
		t.Fatal("expected a controls message")
	}
	if got, isControls := msg.Controls(); !isControls || got != "confirmed" {
		t.Errorf("message = (%q, controls=%v)", got, isControls)
	}
	if content.events != 1 {
		t.Errorf("content saw %d events, want 1", content.events)
	}
	if !ctx.PaintRequested() {
		t.Error("content's paint request should survive the dispatch")
	}
}

func TestDialog_Event_NeitherEmits(t *testing.T) {
	content := &probe{}
	controls := &probe{}
	d := NewDialog[string, string](content, controls)
	d.Place(fullScreen())

	_, ok := d.Event(component.NewContext(), component.KeyEvent{Key: component.KeyLeft})
	if ok {
		t.Fatal("no child emitted, dialog must not either")
	}
	if content.events != 1 || controls.events != 1 {
		t.Errorf("events = content %d, controls %d, want 1 each", content.events, controls.events)
	}
}

func TestDialog_PaintOrder(t *testing.T) {
	var log []string
	d := NewDialog[string, string](
		&probe{name: "content", paints: &log},
		&probe{name: "controls", paints: &log},
	)
	d.Place(fullScreen())

	// Paint order is fixed regardless of event history.
	d.Event(component.NewContext(), component.KeyEvent{Key: component.KeyConfirm})
	d.Paint(&testPainter{})

	if len(log) != 2 || log[0] != "content" || log[1] != "controls" {
		t.Errorf("paint order = %v, want [content controls]", log)
	}
}

func TestDialog_BoundsOrder(t *testing.T) {
	d := NewDialog[string, string](&probe{}, &probe{height: 48})
	d.Place(fullScreen())

	var rects []geometry.Rect
	d.Bounds(func(r geometry.Rect) { rects = append(rects, r) })

	if len(rects) != 2 {
		t.Fatalf("bounds reported %d rects, want 2", len(rects))
	}
	// Content first, controls second.
	if rects[0].Y1 > rects[1].Y0 {
		t.Errorf("content %+v should sit above controls %+v", rects[0], rects[1])
	}
	if rects[1].Height() != 48 {
		t.Errorf("controls rect height = %d, want 48", rects[1].Height())
	}
}

func TestDialog_InnerExposesContent(t *testing.T) {
	content := &probe{name: "inner"}
	d := NewDialog[string, string](content, &probe{})

	got, ok := d.Inner().(*probe)
	if !ok || got != content {
		t.Fatalf("Inner = %v, want the content component", d.Inner())
	}
}
