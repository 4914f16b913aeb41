package component

import "github.com/sjoeboo/dialogkit/internal/geometry"

// Child is an owning wrapper around a component that caches the rectangle
// the component was last placed into, so parents can hit-test children
// without re-asking them.
type Child[M any] struct {
	inner Component[M]
	rect  geometry.Rect
}

// NewChild wraps a component. The child is unplaced until the first Place.
func NewChild[M any](inner Component[M]) *Child[M] {
	return &Child[M]{inner: inner}
}

// Inner returns the wrapped component.
func (c *Child[M]) Inner() Component[M] {
	return c.inner
}

// Rect returns the rectangle from the last Place call.
func (c *Child[M]) Rect() geometry.Rect {
	return c.rect
}

// HitTest reports whether p falls inside the last-placed rectangle.
func (c *Child[M]) HitTest(p geometry.Offset) bool {
	return c.rect.Contains(p)
}

func (c *Child[M]) Place(bounds geometry.Rect) geometry.Rect {
	c.rect = c.inner.Place(bounds)
	return c.rect
}

func (c *Child[M]) Event(ctx *Context, ev Event) (M, bool) {
	return c.inner.Event(ctx, ev)
}

func (c *Child[M]) Paint(p Painter) {
	c.inner.Paint(p)
}

func (c *Child[M]) Bounds(sink func(geometry.Rect)) {
	c.inner.Bounds(sink)
}
