// Package theme holds the process-wide look of the toolkit: palettes, text
// styles, layout constants and the built-in icon bitmaps. Layout constants
// are in abstract display units, the same units the geometry package uses.
package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/sjoeboo/dialogkit/internal/geometry"
)

// Mode is the active color scheme.
type Mode string

const (
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// Layout constants shared by every dialog screen.
const (
	// BorderSize is the standard screen border on each edge.
	BorderSize = 8

	// ButtonSpacing separates a dialog's content from its controls.
	ButtonSpacing = 6

	// ContentBorder is the extra left inset applied to dialog content.
	ContentBorder = 10

	// ButtonHeight is the fixed height of the stock button controls.
	ButtonHeight = 48
)

// Borders returns the standard screen border insets.
func Borders() geometry.Insets {
	return geometry.UniformInsets(BorderSize)
}

// TextStyle pairs a lipgloss style with the vertical space one line of it
// occupies, so text flow can be computed without a render pass.
type TextStyle struct {
	Style      lipgloss.Style
	LineHeight int
}

// WithColor returns a copy of the text style with its foreground replaced.
func (ts TextStyle) WithColor(c lipgloss.Color) TextStyle {
	ts.Style = ts.Style.Foreground(c)
	return ts
}

var darkColors = struct {
	Bg, Fg, OffWhite, Grey          lipgloss.Color
	Accent, Green, Red, Yellow, Dim lipgloss.Color
}{
	Bg:       lipgloss.Color("#101825"),
	Fg:       lipgloss.Color("#D9E6FA"),
	OffWhite: lipgloss.Color("#DEDEDE"),
	Grey:     lipgloss.Color("#9B9B9B"),
	Accent:   lipgloss.Color("#58B8FD"),
	Green:    lipgloss.Color("#53D390"),
	Red:      lipgloss.Color("#FF7979"),
	Yellow:   lipgloss.Color("#F0E68C"),
	Dim:      lipgloss.Color("#8FB0D0"),
}

var lightColors = struct {
	Bg, Fg, OffWhite, Grey          lipgloss.Color
	Accent, Green, Red, Yellow, Dim lipgloss.Color
}{
	Bg:       lipgloss.Color("#EEF4FF"),
	Fg:       lipgloss.Color("#10426D"),
	OffWhite: lipgloss.Color("#3A3A3A"),
	Grey:     lipgloss.Color("#6B6B6B"),
	Accent:   lipgloss.Color("#1670AD"),
	Green:    lipgloss.Color("#1B491D"),
	Red:      lipgloss.Color("#663021"),
	Yellow:   lipgloss.Color("#6B2E00"),
	Dim:      lipgloss.Color("#1F3F71"),
}

// Active color variables, set by Init.
var (
	ColorBg       lipgloss.Color
	ColorFg       lipgloss.Color
	ColorOffWhite lipgloss.Color
	ColorGrey     lipgloss.Color
	ColorAccent   lipgloss.Color
	ColorGreen    lipgloss.Color
	ColorRed      lipgloss.Color
	ColorYellow   lipgloss.Color
	ColorDim      lipgloss.Color
)

// Active text styles, set by Init.
var (
	TextNormal TextStyle
	TextMedium TextStyle
	TextBold   TextStyle
)

var (
	themeMu     sync.RWMutex
	currentMode Mode = ModeDark
)

func init() {
	Init(ModeDark)
}

// Init sets the active palette and rebuilds the text styles. Safe to call
// again for a live theme switch; callers must re-paint afterwards.
func Init(mode Mode) {
	themeMu.Lock()
	defer themeMu.Unlock()

	c := darkColors
	if mode == ModeLight {
		c = lightColors
	}
	currentMode = mode

	ColorBg = c.Bg
	ColorFg = c.Fg
	ColorOffWhite = c.OffWhite
	ColorGrey = c.Grey
	ColorAccent = c.Accent
	ColorGreen = c.Green
	ColorRed = c.Red
	ColorYellow = c.Yellow
	ColorDim = c.Dim

	TextNormal = TextStyle{
		Style:      lipgloss.NewStyle().Foreground(ColorFg),
		LineHeight: 22,
	}
	TextMedium = TextStyle{
		Style:      lipgloss.NewStyle().Foreground(ColorFg).Bold(true),
		LineHeight: 26,
	}
	TextBold = TextStyle{
		Style:      lipgloss.NewStyle().Foreground(ColorAccent).Bold(true),
		LineHeight: 26,
	}
}

// CurrentMode returns the active color scheme.
func CurrentMode() Mode {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentMode
}
