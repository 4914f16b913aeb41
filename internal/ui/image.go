package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sjoeboo/dialogkit/internal/component"
	"github.com/sjoeboo/dialogkit/internal/geometry"
	"github.com/sjoeboo/dialogkit/internal/theme"
)

// Image wraps a static icon bitmap. It places itself as the largest centered
// square that fits its area and never bubbles a message. Malformed bitmap
// data degrades to an empty image; the composites above never see an error.
type Image struct {
	data  []byte
	style lipgloss.Style
	rect  geometry.Rect
}

// NewImage creates an image drawn in the theme foreground color.
func NewImage(data []byte) *Image {
	return &Image{
		data:  data,
		style: lipgloss.NewStyle().Foreground(theme.ColorFg),
	}
}

// WithColor overrides the color the bitmap's set bits are drawn in.
func (im *Image) WithColor(c lipgloss.Color) *Image {
	im.style = im.style.Foreground(c)
	return im
}

func (im *Image) Place(bounds geometry.Rect) geometry.Rect {
	if w, h := theme.IconSize(im.data); w == 0 || h == 0 {
		im.rect = geometry.NewRect(bounds.X0, bounds.Y0, 0, 0)
		return im.rect
	}
	side := bounds.Width()
	if bounds.Height() < side {
		side = bounds.Height()
	}
	im.rect = bounds.CenteredIn(side, side)
	return im.rect
}

func (im *Image) Event(ctx *component.Context, ev component.Event) (component.Never, bool) {
	return nil, false
}

func (im *Image) Paint(p component.Painter) {
	if !im.rect.Empty() {
		p.Bitmap(im.rect, im.data, im.style)
	}
}

func (im *Image) Bounds(sink func(geometry.Rect)) {
	sink(im.rect)
}
