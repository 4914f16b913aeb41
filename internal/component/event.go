package component

import "time"

// Key is a logical input key. The host maps physical input (terminal keys,
// hardware buttons) onto these before dispatching.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyConfirm
	KeyCancel
)

// Event is one input delivered to a component tree. The set is closed:
// KeyEvent, TickEvent and AttachEvent.
type Event interface {
	isEvent()
}

// KeyEvent is a logical key press.
type KeyEvent struct {
	Key Key
}

// TickEvent is a periodic timer event, used by components that animate.
type TickEvent struct {
	Time time.Time
}

// AttachEvent is delivered once when a screen becomes active, before any
// other event.
type AttachEvent struct{}

func (KeyEvent) isEvent()    {}
func (TickEvent) isEvent()   {}
func (AttachEvent) isEvent() {}

// Context carries per-dispatch state through one Event call tree. Components
// use it to request a repaint without bubbling a message.
type Context struct {
	paintRequested bool
}

// NewContext returns a fresh context for one event dispatch.
func NewContext() *Context {
	return &Context{}
}

// RequestPaint marks the tree dirty; the host repaints after dispatch.
func (c *Context) RequestPaint() {
	c.paintRequested = true
}

// PaintRequested reports whether any component asked for a repaint during
// this dispatch.
func (c *Context) PaintRequested() bool {
	return c.paintRequested
}
