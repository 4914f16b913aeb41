package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/sjoeboo/dialogkit/internal/component"
	"github.com/sjoeboo/dialogkit/internal/geometry"
	"github.com/sjoeboo/dialogkit/internal/text"
	"github.com/sjoeboo/dialogkit/internal/theme"
)

// ButtonMsg is bubbled by a single Button.
type ButtonMsg int

// ButtonClicked is emitted when the button is activated.
const ButtonClicked ButtonMsg = iota

// Button is a fixed-height labeled control. When offered a rectangle it
// claims the bottom theme.ButtonHeight slice of it.
type Button struct {
	label string
	rect  geometry.Rect
}

// NewButton creates a button with the given label.
func NewButton(label string) *Button {
	return &Button{label: label}
}

func (b *Button) Place(bounds geometry.Rect) geometry.Rect {
	_, b.rect = bounds.SplitBottom(theme.ButtonHeight)
	return b.rect
}

func (b *Button) Event(ctx *component.Context, ev component.Event) (ButtonMsg, bool) {
	if k, ok := ev.(component.KeyEvent); ok && k.Key == component.KeyConfirm {
		return ButtonClicked, true
	}
	return 0, false
}

func (b *Button) Paint(p component.Painter) {
	paintButton(p, b.rect, b.label, true)
}

func (b *Button) Bounds(sink func(geometry.Rect)) {
	sink(b.rect)
}

// PairMsg is bubbled by a ButtonPair.
type PairMsg int

const (
	PairCancelled PairMsg = iota
	PairConfirmed
)

// ButtonPair is a cancel/confirm control row. Left/right keys move the
// selection (repaint, no message); confirm activates the selected button and
// cancel always cancels.
type ButtonPair struct {
	cancelLabel  string
	confirmLabel string
	selected     int // 0 = cancel, 1 = confirm
	rect         geometry.Rect
	cancelRect   geometry.Rect
	confirmRect  geometry.Rect
}

// NewButtonPair creates a pair with confirm pre-selected.
func NewButtonPair(cancelLabel, confirmLabel string) *ButtonPair {
	return &ButtonPair{
		cancelLabel:  cancelLabel,
		confirmLabel: confirmLabel,
		selected:     1,
	}
}

// Selected returns 0 for cancel, 1 for confirm.
func (bp *ButtonPair) Selected() int { return bp.selected }

func (bp *ButtonPair) Place(bounds geometry.Rect) geometry.Rect {
	_, bp.rect = bounds.SplitBottom(theme.ButtonHeight)
	half := (bp.rect.Width() - theme.ButtonSpacing) / 2
	bp.cancelRect = geometry.Rect{X0: bp.rect.X0, Y0: bp.rect.Y0, X1: bp.rect.X0 + half, Y1: bp.rect.Y1}
	bp.confirmRect = geometry.Rect{X0: bp.rect.X1 - half, Y0: bp.rect.Y0, X1: bp.rect.X1, Y1: bp.rect.Y1}
	return bp.rect
}

func (bp *ButtonPair) Event(ctx *component.Context, ev component.Event) (PairMsg, bool) {
	k, ok := ev.(component.KeyEvent)
	if !ok {
		return 0, false
	}
	switch k.Key {
	case component.KeyLeft:
		if bp.selected != 0 {
			bp.selected = 0
			ctx.RequestPaint()
		}
	case component.KeyRight:
		if bp.selected != 1 {
			bp.selected = 1
			ctx.RequestPaint()
		}
	case component.KeyConfirm:
		if bp.selected == 1 {
			return PairConfirmed, true
		}
		return PairCancelled, true
	case component.KeyCancel:
		return PairCancelled, true
	}
	return 0, false
}

func (bp *ButtonPair) Paint(p component.Painter) {
	paintButton(p, bp.cancelRect, bp.cancelLabel, bp.selected == 0)
	paintButton(p, bp.confirmRect, bp.confirmLabel, bp.selected == 1)
}

func (bp *ButtonPair) Bounds(sink func(geometry.Rect)) {
	sink(bp.rect)
}

func paintButton(p component.Painter, r geometry.Rect, label string, active bool) {
	if r.Empty() {
		return
	}
	bg := theme.ColorGrey
	if active {
		bg = theme.ColorAccent
	}
	style := lipgloss.NewStyle().Foreground(theme.ColorBg).Background(bg).Bold(active)
	p.Fill(r, style)

	labelW := runewidth.StringWidth(label) * text.CharWidth
	origin := geometry.Offset{
		X: r.X0 + maxInt(0, (r.Width()-labelW)/2),
		Y: (r.Y0 + r.Y1) / 2,
	}
	p.Text(origin, label, style)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
