// Package component defines the capability every widget in the toolkit
// implements: place into a rectangle, handle an event, paint, and report
// bounds. Composites own their children through Child wrappers and bubble
// typed messages upward.
package component

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sjoeboo/dialogkit/internal/geometry"
)

// Component is the contract shared by every widget. M is the message type
// the widget bubbles from Event; widgets that never emit use Never.
//
// Place must be called before the first Event or Paint. Event returns the
// bubbled message and true when the event produced one; a widget may mutate
// its own state and still return false.
type Component[M any] interface {
	// Place lays the component out inside bounds and returns the
	// rectangle it actually occupies.
	Place(bounds geometry.Rect) geometry.Rect

	// Event handles one input event. The bool reports whether a message
	// was emitted.
	Event(ctx *Context, ev Event) (M, bool)

	// Paint draws the component onto the painter. Paint order between
	// siblings is decided by the parent.
	Paint(p Painter)

	// Bounds reports the component's rectangle(s) through sink, used by
	// hit-testing and debug tooling.
	Bounds(sink func(geometry.Rect))
}

// Never is an uninhabited message type: no type implements it, so a
// Component[Never] provably cannot emit. Its zero value (nil) is only ever
// paired with ok == false.
type Never interface {
	never()
}

// Painter is the paint target handed down through Paint calls. The screen
// package provides the terminal-backed implementation; tests substitute a
// recording one.
type Painter interface {
	// Text draws a styled text run with its top-left corner at origin.
	Text(origin geometry.Offset, s string, style lipgloss.Style)

	// Fill floods a rectangle with the style's background.
	Fill(r geometry.Rect, style lipgloss.Style)

	// Bitmap draws a packed 1-bit bitmap into r using the style's colors.
	Bitmap(r geometry.Rect, bitmap []byte, style lipgloss.Style)
}
