package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sjoeboo/dialogkit/internal/component"
	"github.com/sjoeboo/dialogkit/internal/config"
	"github.com/sjoeboo/dialogkit/internal/geometry"
	"github.com/sjoeboo/dialogkit/internal/logging"
	"github.com/sjoeboo/dialogkit/internal/screen"
	"github.com/sjoeboo/dialogkit/internal/text"
	"github.com/sjoeboo/dialogkit/internal/theme"
	"github.com/sjoeboo/dialogkit/internal/ui"
)

// configReloadedMsg carries a freshly loaded config into the model.
type configReloadedMsg struct {
	cfg config.Config
}

// tickMsg drives the toolkit's timer events for the active screen.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type screenID int

const (
	screenConfirm screenID = iota
	screenSuccess
	screenShares
	screenCount
)

type keyMap struct {
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Next    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "select left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "select right")),
		Confirm: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Next:    key.NewBinding(key.WithKeys("tab", "n"), key.WithHelp("tab", "next screen")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type model struct {
	cfg    config.Config
	keys   keyMap
	buf    *screen.Buffer
	active screenID
	status string

	confirm *ui.Dialog[component.Never, ui.PairMsg]
	success *ui.IconDialog[ui.ButtonMsg]
	shares  *ui.IconDialog[ui.ButtonMsg]
}

func newModel(cfg config.Config) *model {
	m := &model{
		cfg:    cfg,
		keys:   defaultKeyMap(),
		status: "tab: next screen · q: quit",
	}
	m.rebuild()
	return m
}

// rebuild reconstructs the screens and the display buffer. Called once at
// startup and again after every theme or display change, because components
// capture theme styles at construction.
func (m *model) rebuild() {
	d := m.cfg.Display
	m.buf = screen.NewBuffer(d.Width, d.Height, d.ScaleX, d.ScaleY)
	area := m.buf.Area()

	m.confirm = ui.NewDialog[component.Never, ui.PairMsg](
		text.NewParagraphs().
			WithPlacement(geometry.Vertical().AlignAtCenter().WithSpacing(ui.ValueSpace)).
			Add(theme.TextMedium, "Wipe device?").Centered().
			AddColored(theme.TextNormal, theme.ColorOffWhite,
				"All data on this device will be erased.").Centered(),
		ui.NewButtonPair("Cancel", "Wipe"),
	)
	m.confirm.Place(area)

	m.success = ui.NewIconDialog[ui.ButtonMsg](theme.IconSuccess, "Device wiped", ui.NewButton("Continue")).
		WithDescription("You can now set it up as new.")
	m.success.Place(area)

	m.shares = ui.NewShares[ui.ButtonMsg](
		[4]string{"You finished", "3 of 5", "recovery shares in", "Group A"},
		ui.NewButton("Continue"),
	)
	m.shares.Place(area)
}

func (m *model) Init() tea.Cmd {
	m.dispatch(component.AttachEvent{})
	return tick()
}

// setActive switches screens; the new screen sees an attach event before
// any other input.
func (m *model) setActive(id screenID) {
	m.active = id
	m.dispatch(component.AttachEvent{})
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case configReloadedMsg:
		m.cfg = msg.cfg
		theme.Init(resolveTheme(m.cfg.Theme))
		m.rebuild()
		m.status = "config reloaded"
		return m, nil

	case tickMsg:
		m.dispatch(component.TickEvent{Time: time.Time(msg)})
		return m, tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.setActive((m.active + 1) % screenCount)
			m.status = "tab: next screen · q: quit"
			return m, nil
		}
		if ev, ok := m.keyEvent(msg); ok {
			m.dispatch(ev)
		}
		return m, nil
	}
	return m, nil
}

// keyEvent maps a terminal key onto the toolkit's logical key set.
func (m *model) keyEvent(msg tea.KeyMsg) (component.Event, bool) {
	switch {
	case key.Matches(msg, m.keys.Left):
		return component.KeyEvent{Key: component.KeyLeft}, true
	case key.Matches(msg, m.keys.Right):
		return component.KeyEvent{Key: component.KeyRight}, true
	case key.Matches(msg, m.keys.Confirm):
		return component.KeyEvent{Key: component.KeyConfirm}, true
	case key.Matches(msg, m.keys.Cancel):
		return component.KeyEvent{Key: component.KeyCancel}, true
	}
	return nil, false
}

func (m *model) dispatch(ev component.Event) {
	log := logging.ForComponent(logging.CompDemo)
	ctx := component.NewContext()

	switch m.active {
	case screenConfirm:
		if msg, ok := m.confirm.Event(ctx, ev); ok {
			if pair, isControls := msg.Controls(); isControls {
				if pair == ui.PairConfirmed {
					m.status = "confirmed, device wiped"
					m.setActive(screenSuccess)
				} else {
					m.status = "cancelled"
				}
				log.Debug("confirm screen resolved", "msg", int(pair))
			}
		}
	case screenSuccess:
		if msg, ok := m.success.Event(ctx, ev); ok {
			if _, isControls := msg.Controls(); isControls {
				m.status = "continuing"
				m.setActive(screenShares)
			}
		}
	case screenShares:
		if msg, ok := m.shares.Event(ctx, ev); ok {
			if _, isControls := msg.Controls(); isControls {
				m.status = "all done, tab to start over"
				m.setActive(screenConfirm)
			}
		}
	}
}

func (m *model) View() string {
	bg := lipgloss.NewStyle().Background(theme.ColorBg).Foreground(theme.ColorFg)
	m.buf.Clear(bg)

	switch m.active {
	case screenConfirm:
		m.confirm.Paint(m.buf)
	case screenSuccess:
		m.success.Paint(m.buf)
	case screenShares:
		m.shares.Paint(m.buf)
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ColorDim)
	status := lipgloss.NewStyle().Foreground(theme.ColorDim).
		Render(fmt.Sprintf(" %s ", m.status))
	return frame.Render(m.buf.String()) + "\n" + status
}
