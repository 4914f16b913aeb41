// Package screen renders dialog trees to the terminal: a grid of styled
// cells behind the component.Painter interface. Geometry arrives in abstract
// display units and is mapped onto terminal cells by a fixed units-per-cell
// scale, so the same layout arithmetic serves a pixel display and a
// character grid.
package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/sjoeboo/dialogkit/internal/geometry"
	"github.com/sjoeboo/dialogkit/internal/theme"
)

type cell struct {
	text    string
	style   lipgloss.Style
	styleID int
}

// Buffer is a cell grid implementing component.Painter.
type Buffer struct {
	widthUnits  int
	heightUnits int
	scaleX      int
	scaleY      int
	cols        int
	rows        int
	grid        [][]cell
	nextStyleID int
}

// NewBuffer creates a buffer covering widthUnits x heightUnits display
// units, rendered at scaleX horizontal and scaleY vertical units per
// terminal cell. Scales below 1 are treated as 1.
func NewBuffer(widthUnits, heightUnits, scaleX, scaleY int) *Buffer {
	if scaleX < 1 {
		scaleX = 1
	}
	if scaleY < 1 {
		scaleY = 1
	}
	b := &Buffer{
		widthUnits:  widthUnits,
		heightUnits: heightUnits,
		scaleX:      scaleX,
		scaleY:      scaleY,
		cols:        (widthUnits + scaleX - 1) / scaleX,
		rows:        (heightUnits + scaleY - 1) / scaleY,
	}
	b.Clear(lipgloss.NewStyle())
	return b
}

// Area returns the buffer's full extent in display units, the rectangle
// screens are placed into.
func (b *Buffer) Area() geometry.Rect {
	return geometry.NewRect(0, 0, b.widthUnits, b.heightUnits)
}

// Cols and Rows report the terminal footprint.
func (b *Buffer) Cols() int { return b.cols }
func (b *Buffer) Rows() int { return b.rows }

// Clear resets every cell to a styled blank.
func (b *Buffer) Clear(style lipgloss.Style) {
	b.nextStyleID++
	id := b.nextStyleID
	b.grid = make([][]cell, b.rows)
	for y := range b.grid {
		row := make([]cell, b.cols)
		for x := range row {
			row[x] = cell{text: " ", style: style, styleID: id}
		}
		b.grid[y] = row
	}
}

func (b *Buffer) set(cx, cy int, text string, style lipgloss.Style, id int) {
	if cx < 0 || cy < 0 || cx >= b.cols || cy >= b.rows {
		return
	}
	b.grid[cy][cx] = cell{text: text, style: style, styleID: id}
}

// Text draws a text run with its top-left corner at origin (units). Wide
// runes occupy two cells; the continuation cell is blanked in the same
// style. Output past the right edge is clipped.
func (b *Buffer) Text(origin geometry.Offset, s string, style lipgloss.Style) {
	b.nextStyleID++
	id := b.nextStyleID
	cx := origin.X / b.scaleX
	cy := origin.Y / b.scaleY
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.set(cx, cy, string(r), style, id)
		if w == 2 {
			b.set(cx+1, cy, "", style, id)
		}
		cx += w
	}
}

// Fill floods a unit rectangle with styled blanks.
func (b *Buffer) Fill(r geometry.Rect, style lipgloss.Style) {
	b.nextStyleID++
	id := b.nextStyleID
	x0, y0, x1, y1 := b.cellRect(r)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			b.set(cx, cy, " ", style, id)
		}
	}
}

// Bitmap draws a packed 1-bit icon into the unit rectangle r, sampling the
// nearest bit for each covered cell. Set bits render as full blocks in the
// style's foreground. Malformed icon data draws nothing.
func (b *Buffer) Bitmap(r geometry.Rect, bitmap []byte, style lipgloss.Style) {
	w, h := theme.IconSize(bitmap)
	if w == 0 || h == 0 {
		return
	}
	b.nextStyleID++
	id := b.nextStyleID
	x0, y0, x1, y1 := b.cellRect(r)
	cw, ch := x1-x0, y1-y0
	if cw <= 0 || ch <= 0 {
		return
	}
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			bx := (cx - x0) * w / cw
			by := (cy - y0) * h / ch
			if theme.IconBit(bitmap, bx, by) {
				b.set(cx, cy, "█", style, id)
			}
		}
	}
}

// cellRect converts a unit rectangle to a clipped half-open cell rectangle.
func (b *Buffer) cellRect(r geometry.Rect) (x0, y0, x1, y1 int) {
	x0 = r.X0 / b.scaleX
	y0 = r.Y0 / b.scaleY
	x1 = (r.X1 + b.scaleX - 1) / b.scaleX
	y1 = (r.Y1 + b.scaleY - 1) / b.scaleY
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > b.cols {
		x1 = b.cols
	}
	if y1 > b.rows {
		y1 = b.rows
	}
	return
}

// String composes the grid into terminal output, merging runs of cells that
// share a paint call into one styled segment.
func (b *Buffer) String() string {
	var out strings.Builder
	for y, row := range b.grid {
		if y > 0 {
			out.WriteByte('\n')
		}
		var run strings.Builder
		runID := -1
		var runStyle lipgloss.Style
		flush := func() {
			if run.Len() > 0 {
				out.WriteString(runStyle.Render(run.String()))
				run.Reset()
			}
		}
		for _, c := range row {
			if c.styleID != runID {
				flush()
				runID = c.styleID
				runStyle = c.style
			}
			run.WriteString(c.text)
		}
		flush()
	}
	return out.String()
}

// PlainString returns the grid without styling, for tests and logging.
func (b *Buffer) PlainString() string {
	var out strings.Builder
	for y, row := range b.grid {
		if y > 0 {
			out.WriteByte('\n')
		}
		for _, c := range row {
			out.WriteString(c.text)
		}
	}
	return out.String()
}
