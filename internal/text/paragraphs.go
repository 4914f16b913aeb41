// Package text provides the paragraph text-flow component used as dialog
// content: an ordered list of styled entries stacked vertically, with
// word-wrapping and optional per-entry centering.
package text

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/sjoeboo/dialogkit/internal/component"
	"github.com/sjoeboo/dialogkit/internal/geometry"
	"github.com/sjoeboo/dialogkit/internal/theme"
)

// CharWidth is the horizontal space one text cell occupies, in display
// units. Text flow divides the available width by this to get a column
// count; the painter draws at the same scale.
const CharWidth = 8

type entry struct {
	style    theme.TextStyle
	text     string
	centered bool
}

type placedLine struct {
	text   string
	origin geometry.Offset
	style  lipgloss.Style
}

// Paragraphs is a Component[Never]: it lays out and paints text but never
// bubbles a message. Entries are appended through the fluent builder and
// frozen at Place time.
type Paragraphs struct {
	entries   []entry
	placement geometry.LinearPlacement
	area      geometry.Rect
	lines     []placedLine
}

// NewParagraphs returns an empty paragraph block with default (top-aligned,
// unspaced) vertical placement.
func NewParagraphs() *Paragraphs {
	return &Paragraphs{placement: geometry.Vertical()}
}

// WithPlacement replaces the block's vertical placement descriptor.
func (p *Paragraphs) WithPlacement(lp geometry.LinearPlacement) *Paragraphs {
	p.placement = lp
	return p
}

// Add appends an entry in the style's own color.
func (p *Paragraphs) Add(style theme.TextStyle, text string) *Paragraphs {
	p.entries = append(p.entries, entry{style: style, text: text})
	return p
}

// AddColored appends an entry with the style's foreground overridden.
func (p *Paragraphs) AddColored(style theme.TextStyle, color lipgloss.Color, text string) *Paragraphs {
	p.entries = append(p.entries, entry{style: style.WithColor(color), text: text})
	return p
}

// Centered marks the most recently added entry as horizontally centered.
// No-op on an empty block.
func (p *Paragraphs) Centered() *Paragraphs {
	if len(p.entries) > 0 {
		p.entries[len(p.entries)-1].centered = true
	}
	return p
}

// Len returns the number of entries.
func (p *Paragraphs) Len() int {
	return len(p.entries)
}

// Entry returns the text of entry i, for introspection.
func (p *Paragraphs) Entry(i int) string {
	return p.entries[i].text
}

// EntryStyle returns the resolved style of entry i, for introspection.
func (p *Paragraphs) EntryStyle(i int) theme.TextStyle {
	return p.entries[i].style
}

func (p *Paragraphs) Place(bounds geometry.Rect) geometry.Rect {
	p.area = bounds
	p.lines = p.lines[:0]

	cols := bounds.Width() / CharWidth
	if cols < 1 {
		cols = 1
	}

	wrapped := make([][]string, len(p.entries))
	heights := make([]int, len(p.entries))
	for i, e := range p.entries {
		wrapped[i] = wrap(e.text, cols)
		heights[i] = len(wrapped[i]) * e.style.LineHeight
	}

	rects := p.placement.Arrange(bounds, heights)
	for i, e := range p.entries {
		y := rects[i].Y0
		for _, ln := range wrapped[i] {
			x := rects[i].X0
			if e.centered {
				if free := rects[i].Width() - runewidth.StringWidth(ln)*CharWidth; free > 0 {
					x += free / 2
				}
			}
			p.lines = append(p.lines, placedLine{
				text:   ln,
				origin: geometry.Offset{X: x, Y: y},
				style:  e.style.Style,
			})
			y += e.style.LineHeight
		}
	}
	return bounds
}

func (p *Paragraphs) Event(ctx *component.Context, ev component.Event) (component.Never, bool) {
	return nil, false
}

func (p *Paragraphs) Paint(painter component.Painter) {
	for _, ln := range p.lines {
		if ln.origin.Y >= p.area.Y1 {
			// Overflowing lines are clipped, not painted.
			continue
		}
		painter.Text(ln.origin, ln.text, ln.style)
	}
}

func (p *Paragraphs) Bounds(sink func(geometry.Rect)) {
	sink(p.area)
}

// wrap word-wraps text to the given column count. Words wider than the
// line are hard-split.
func wrap(text string, cols int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var cur strings.Builder
	curW := 0
	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curW = 0
	}

	for _, w := range words {
		ww := runewidth.StringWidth(w)
		for ww > cols {
			// Hard-split an oversized word.
			if curW > 0 {
				flush()
			}
			head := runewidth.Truncate(w, cols, "")
			if head == "" {
				// A rune wider than the whole line; force it through
				// alone so splitting always makes progress.
				_, n := utf8.DecodeRuneInString(w)
				head = w[:n]
			}
			lines = append(lines, head)
			w = strings.TrimPrefix(w, head)
			ww = runewidth.StringWidth(w)
		}
		if ww == 0 {
			continue
		}
		switch {
		case curW == 0:
			cur.WriteString(w)
			curW = ww
		case curW+1+ww <= cols:
			cur.WriteByte(' ')
			cur.WriteString(w)
			curW += 1 + ww
		default:
			flush()
			cur.WriteString(w)
			curW = ww
		}
	}
	if curW > 0 {
		flush()
	}
	return lines
}
