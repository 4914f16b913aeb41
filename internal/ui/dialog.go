// Package ui holds the dialog composites and the concrete widgets they are
// built from. A Dialog arranges an arbitrary content component above an
// arbitrary controls component; an IconDialog specializes the content side
// to a fixed icon plus centered text.
package ui

import (
	"github.com/sjoeboo/dialogkit/internal/component"
	"github.com/sjoeboo/dialogkit/internal/geometry"
	"github.com/sjoeboo/dialogkit/internal/text"
	"github.com/sjoeboo/dialogkit/internal/theme"
)

type msgSide int

const (
	sideContent msgSide = iota + 1
	sideControls
)

// DialogMsg is the tagged result of one event: a message bubbled from the
// content side or from the controls side, never both.
type DialogMsg[C, K any] struct {
	side     msgSide
	content  C
	controls K
}

// ContentMsg wraps a message bubbled from the content component.
func ContentMsg[C, K any](m C) DialogMsg[C, K] {
	return DialogMsg[C, K]{side: sideContent, content: m}
}

// ControlsMsg wraps a message bubbled from the controls component.
func ControlsMsg[C, K any](m K) DialogMsg[C, K] {
	return DialogMsg[C, K]{side: sideControls, controls: m}
}

// Content returns the content-side message, if this is one.
func (m DialogMsg[C, K]) Content() (C, bool) {
	return m.content, m.side == sideContent
}

// Controls returns the controls-side message, if this is one.
func (m DialogMsg[C, K]) Controls() (K, bool) {
	return m.controls, m.side == sideControls
}

// Dialog is the generic two-region composite: content above, controls
// below. Both children are supplied through the component capability; the
// dialog adds only layout, routing and paint order.
type Dialog[C, K any] struct {
	content  *component.Child[C]
	controls *component.Child[K]
}

// NewDialog wraps the two children. No layout happens until Place.
func NewDialog[C, K any](content component.Component[C], controls component.Component[K]) *Dialog[C, K] {
	return &Dialog[C, K]{
		content:  component.NewChild(content),
		controls: component.NewChild(controls),
	}
}

// Inner returns the content component, for typed introspection.
func (d *Dialog[C, K]) Inner() component.Component[C] {
	return d.content.Inner()
}

// Place gives the controls first claim on the bounds, then lays the content
// into what remains above them, shrunk by the inter-control spacing and the
// content border. The dialog always reports its full allotted area.
func (d *Dialog[C, K]) Place(bounds geometry.Rect) geometry.Rect {
	controlsArea := d.controls.Place(bounds)
	contentArea := bounds.
		Inset(geometry.InsetsBottom(controlsArea.Height())).
		Inset(geometry.InsetsBottom(theme.ButtonSpacing)).
		Inset(geometry.InsetsLeft(theme.ContentBorder))
	d.content.Place(contentArea)
	return bounds
}

// Event routes content-first with short-circuit on emission: controls see
// the event unless the content component emitted a message for it. Content
// that merely mutates its own state does not shadow the controls.
func (d *Dialog[C, K]) Event(ctx *component.Context, ev component.Event) (DialogMsg[C, K], bool) {
	if msg, ok := d.content.Event(ctx, ev); ok {
		return ContentMsg[C, K](msg), true
	}
	if msg, ok := d.controls.Event(ctx, ev); ok {
		return ControlsMsg[C, K](msg), true
	}
	return DialogMsg[C, K]{}, false
}

// Paint draws content then controls; controls win any overlap.
func (d *Dialog[C, K]) Paint(p component.Painter) {
	d.content.Paint(p)
	d.controls.Paint(p)
}

func (d *Dialog[C, K]) Bounds(sink func(geometry.Rect)) {
	d.content.Bounds(sink)
	d.controls.Bounds(sink)
}

// IconDialog layout constants, in display units.
const (
	IconAreaPadding = 2
	IconAreaHeight  = 60
	ValueSpace      = 5
)

// IconDialog composes a fixed icon, a block of centered text and a controls
// component. The text side is inert, so the message type's content variant
// is component.Never and can never be observed.
type IconDialog[K any] struct {
	image      *component.Child[component.Never]
	paragraphs *text.Paragraphs
	controls   *component.Child[K]
}

// NewIconDialog builds an icon dialog whose text block starts with the
// title, medium-styled and centered.
func NewIconDialog[K any](icon []byte, title string, controls component.Component[K]) *IconDialog[K] {
	return &IconDialog[K]{
		image: component.NewChild[component.Never](NewImage(icon)),
		paragraphs: text.NewParagraphs().
			WithPlacement(geometry.Vertical().AlignAtCenter().WithSpacing(ValueSpace)).
			Add(theme.TextMedium, title).Centered(),
		controls: component.NewChild(controls),
	}
}

// WithDescription appends a normal-styled, off-white, centered description
// line. An empty description means "no description line", not an error.
func (d *IconDialog[K]) WithDescription(description string) *IconDialog[K] {
	if description != "" {
		d.paragraphs.AddColored(theme.TextNormal, theme.ColorOffWhite, description).Centered()
	}
	return d
}

// NewShares builds the themed four-line summary screen: the success icon
// above lines alternating normal/off-white and medium styling, all centered.
func NewShares[K any](lines [4]string, controls component.Component[K]) *IconDialog[K] {
	return &IconDialog[K]{
		image: component.NewChild[component.Never](NewImage(theme.IconSuccess).WithColor(theme.ColorGreen)),
		paragraphs: text.NewParagraphs().
			WithPlacement(geometry.Vertical().AlignAtCenter()).
			AddColored(theme.TextNormal, theme.ColorOffWhite, lines[0]).Centered().
			Add(theme.TextMedium, lines[1]).Centered().
			AddColored(theme.TextNormal, theme.ColorOffWhite, lines[2]).Centered().
			Add(theme.TextMedium, lines[3]).Centered(),
		controls: component.NewChild(controls),
	}
}

// Paragraphs returns the text block, for typed introspection.
func (d *IconDialog[K]) Paragraphs() *text.Paragraphs {
	return d.paragraphs
}

// Place shrinks the bounds by the standard borders and the icon-area top
// padding, gives the controls first claim on the result, slices the fixed
// icon area off the top of what remains, and hands the rest to the text
// block. Unlike Dialog, the returned rectangle is the shrunk one.
func (d *IconDialog[K]) Place(bounds geometry.Rect) geometry.Rect {
	bounds = bounds.
		Inset(theme.Borders()).
		Inset(geometry.InsetsTop(IconAreaPadding))

	controlsArea := d.controls.Place(bounds)
	contentArea := bounds.Inset(geometry.InsetsBottom(controlsArea.Height()))

	imageArea, contentArea := contentArea.SplitTop(IconAreaHeight)

	d.image.Place(imageArea)
	d.paragraphs.Place(contentArea)
	return bounds
}

// Event always delivers to the text block first and discards its (never
// produced) result, then routes to the controls.
func (d *IconDialog[K]) Event(ctx *component.Context, ev component.Event) (DialogMsg[component.Never, K], bool) {
	d.paragraphs.Event(ctx, ev)
	if msg, ok := d.controls.Event(ctx, ev); ok {
		return ControlsMsg[component.Never, K](msg), true
	}
	return DialogMsg[component.Never, K]{}, false
}

// Paint draws icon, text, controls, in that order.
func (d *IconDialog[K]) Paint(p component.Painter) {
	d.image.Paint(p)
	d.paragraphs.Paint(p)
	d.controls.Paint(p)
}

func (d *IconDialog[K]) Bounds(sink func(geometry.Rect)) {
	d.image.Bounds(sink)
	d.paragraphs.Bounds(sink)
	d.controls.Bounds(sink)
}
