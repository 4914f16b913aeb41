package geometry

// Alignment selects where a run of items sits inside the space left over
// after their sizes and spacing are accounted for.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// LinearPlacement describes how a sequence of fixed-size items is stacked
// along one axis inside an area. Only the vertical axis is used by the
// dialog components; the descriptor is a value type built fluently:
//
//	Vertical().AlignAtCenter().WithSpacing(5)
type LinearPlacement struct {
	align   Alignment
	spacing int
}

// Vertical returns a top-to-bottom placement with start alignment and no
// spacing.
func Vertical() LinearPlacement {
	return LinearPlacement{}
}

// AlignAtCenter centers the stacked run inside the area.
func (lp LinearPlacement) AlignAtCenter() LinearPlacement {
	lp.align = AlignCenter
	return lp
}

// AlignAtEnd pushes the stacked run to the far edge of the area.
func (lp LinearPlacement) AlignAtEnd() LinearPlacement {
	lp.align = AlignEnd
	return lp
}

// WithSpacing sets the gap inserted between consecutive items.
func (lp LinearPlacement) WithSpacing(n int) LinearPlacement {
	lp.spacing = n
	return lp
}

// Spacing returns the configured inter-item gap.
func (lp LinearPlacement) Spacing() int { return lp.spacing }

// Arrange lays out items of the given heights inside area, stacked top to
// bottom with the configured spacing, and returns one full-width rectangle
// per item. A run taller than the area overflows past the bottom edge;
// callers clip at paint time.
func (lp LinearPlacement) Arrange(area Rect, heights []int) []Rect {
	total := 0
	for _, h := range heights {
		total += h
	}
	if len(heights) > 1 {
		total += lp.spacing * (len(heights) - 1)
	}

	y := area.Y0
	switch lp.align {
	case AlignCenter:
		if free := area.Height() - total; free > 0 {
			y += free / 2
		}
	case AlignEnd:
		if free := area.Height() - total; free > 0 {
			y += free
		}
	}

	out := make([]Rect, 0, len(heights))
	for _, h := range heights {
		out = append(out, Rect{X0: area.X0, Y0: y, X1: area.X1, Y1: y + h})
		y += h + lp.spacing
	}
	return out
}
