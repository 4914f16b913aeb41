package geometry

// Offset is a point in abstract display units.
type Offset struct {
	X int
	Y int
}

// Insets describes a per-edge shrinkage applied to a Rect.
type Insets struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// InsetsTop returns insets that shrink only the top edge.
func InsetsTop(n int) Insets { return Insets{Top: n} }

// InsetsBottom returns insets that shrink only the bottom edge.
func InsetsBottom(n int) Insets { return Insets{Bottom: n} }

// InsetsLeft returns insets that shrink only the left edge.
func InsetsLeft(n int) Insets { return Insets{Left: n} }

// InsetsRight returns insets that shrink only the right edge.
func InsetsRight(n int) Insets { return Insets{Right: n} }

// UniformInsets returns insets that shrink every edge by n.
func UniformInsets(n int) Insets {
	return Insets{Top: n, Right: n, Bottom: n, Left: n}
}

// Rect is a half-open axis-aligned rectangle in abstract display units:
// it covers X0 <= x < X1, Y0 <= y < Y1.
type Rect struct {
	X0 int
	Y0 int
	X1 int
	Y1 int
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, width, height int) Rect {
	return Rect{X0: x, Y0: y, X1: x + width, Y1: y + height}
}

func (r Rect) Width() int  { return r.X1 - r.X0 }
func (r Rect) Height() int { return r.Y1 - r.Y0 }

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool { return r.X0 >= r.X1 || r.Y0 >= r.Y1 }

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Offset { return Offset{X: r.X0, Y: r.Y0} }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Offset {
	return Offset{X: (r.X0 + r.X1) / 2, Y: (r.Y0 + r.Y1) / 2}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.X0 && p.X < r.X1 && p.Y >= r.Y0 && p.Y < r.Y1
}

// Inset shrinks the rectangle by the given per-edge insets. Opposing edges
// never cross: a shrinkage larger than the rectangle collapses it to an
// empty rectangle at the midpoint of the over-shrunk axis.
func (r Rect) Inset(i Insets) Rect {
	out := Rect{
		X0: r.X0 + i.Left,
		Y0: r.Y0 + i.Top,
		X1: r.X1 - i.Right,
		Y1: r.Y1 - i.Bottom,
	}
	if out.X0 > out.X1 {
		mid := (out.X0 + out.X1) / 2
		out.X0, out.X1 = mid, mid
	}
	if out.Y0 > out.Y1 {
		mid := (out.Y0 + out.Y1) / 2
		out.Y0, out.Y1 = mid, mid
	}
	return out
}

// SplitTop cuts a slice of the given height off the top and returns
// (top, remainder). The cut is clamped to the rectangle's height.
func (r Rect) SplitTop(height int) (Rect, Rect) {
	y := r.Y0 + clamp(height, 0, r.Height())
	top := Rect{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: y}
	rest := Rect{X0: r.X0, Y0: y, X1: r.X1, Y1: r.Y1}
	return top, rest
}

// SplitBottom cuts a slice of the given height off the bottom and returns
// (remainder, bottom).
func (r Rect) SplitBottom(height int) (Rect, Rect) {
	y := r.Y1 - clamp(height, 0, r.Height())
	rest := Rect{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: y}
	bottom := Rect{X0: r.X0, Y0: y, X1: r.X1, Y1: r.Y1}
	return rest, bottom
}

// TranslatedTo returns a copy of the rectangle moved so its top-left corner
// sits at p.
func (r Rect) TranslatedTo(p Offset) Rect {
	return NewRect(p.X, p.Y, r.Width(), r.Height())
}

// CenteredIn returns a rectangle of the given size centered inside r.
// If the size exceeds r on an axis it is pinned to r's origin on that axis.
func (r Rect) CenteredIn(width, height int) Rect {
	x := r.X0 + (r.Width()-width)/2
	y := r.Y0 + (r.Height()-height)/2
	if x < r.X0 {
		x = r.X0
	}
	if y < r.Y0 {
		y = r.Y0
	}
	return NewRect(x, y, width, height)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
