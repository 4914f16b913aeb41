package screen

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/sjoeboo/dialogkit/internal/geometry"
	"github.com/sjoeboo/dialogkit/internal/theme"
)

func TestBuffer_Dimensions(t *testing.T) {
	b := NewBuffer(240, 240, 4, 12)
	if b.Cols() != 60 || b.Rows() != 20 {
		t.Errorf("cols,rows = %d,%d, want 60,20", b.Cols(), b.Rows())
	}
	if b.Area() != geometry.NewRect(0, 0, 240, 240) {
		t.Errorf("Area = %+v", b.Area())
	}
}

func TestBuffer_TextScalesUnitsToCells(t *testing.T) {
	b := NewBuffer(80, 24, 8, 12)
	// Origin (16, 12) units = cell (2, 1).
	b.Text(geometry.Offset{X: 16, Y: 12}, "ok", lipgloss.NewStyle())

	lines := strings.Split(b.PlainString(), "\n")
	if len(lines) != 2 {
		t.Fatalf("rows = %d, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[1], "  ok") {
		t.Errorf("row 1 = %q, want text at column 2", lines[1])
	}
}

func TestBuffer_TextClipsAtEdge(t *testing.T) {
	b := NewBuffer(40, 12, 8, 12) // 5x1 cells
	b.Text(geometry.Offset{X: 0, Y: 0}, "overflowing", lipgloss.NewStyle())
	got := b.PlainString()
	if got != "overf" {
		t.Errorf("clipped row = %q, want overf", got)
	}
}

func TestBuffer_Bitmap(t *testing.T) {
	b := NewBuffer(64, 64, 4, 4) // 16x16 cells, one cell per icon bit
	b.Bitmap(geometry.NewRect(0, 0, 64, 64), theme.IconFail, lipgloss.NewStyle())

	got := b.PlainString()
	if !strings.Contains(got, "█") {
		t.Fatal("bitmap paint should set block cells")
	}
	// The cross is symmetric: top-left arm set, dead center row has blocks.
	lines := strings.Split(got, "\n")
	if !strings.Contains(lines[8], "█") {
		t.Errorf("middle row %q should contain blocks", lines[8])
	}
}

func TestBuffer_Bitmap_MalformedDataDrawsNothing(t *testing.T) {
	b := NewBuffer(32, 32, 4, 4)
	b.Bitmap(geometry.NewRect(0, 0, 32, 32), []byte{1, 2, 3}, lipgloss.NewStyle())
	if strings.Contains(b.PlainString(), "█") {
		t.Fatal("malformed bitmap must not draw")
	}
}

func TestBuffer_Fill(t *testing.T) {
	// Force a color profile: test environments have no TTY, and Ascii
	// would strip the styling this test asserts on.
	old := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	defer lipgloss.SetColorProfile(old)

	b := NewBuffer(16, 8, 4, 4) // 4x2 cells
	style := lipgloss.NewStyle().Background(lipgloss.Color("#ff0000"))
	b.Fill(geometry.NewRect(0, 0, 8, 4), style)

	// Styled output carries the background escape for the filled run only.
	styled := b.String()
	plain := b.PlainString()
	if plain != "    \n    " {
		t.Errorf("plain = %q", plain)
	}
	if styled == plain {
		t.Error("styled output should differ from plain after a colored fill")
	}
}
