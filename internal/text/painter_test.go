package text

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sjoeboo/dialogkit/internal/geometry"
)

// recordingPainter captures paint calls for assertions.
type recordingPainter struct {
	texts   []string
	origins []geometry.Offset
}

func (r *recordingPainter) Text(origin geometry.Offset, s string, style lipgloss.Style) {
	r.texts = append(r.texts, s)
	r.origins = append(r.origins, origin)
}

func (r *recordingPainter) Fill(geometry.Rect, lipgloss.Style) {}

func (r *recordingPainter) Bitmap(geometry.Rect, []byte, lipgloss.Style) {}
