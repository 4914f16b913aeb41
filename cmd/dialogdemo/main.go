// Command dialogdemo cycles through the toolkit's example screens on a
// virtual display rendered in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/sjoeboo/dialogkit/internal/config"
	"github.com/sjoeboo/dialogkit/internal/logging"
	"github.com/sjoeboo/dialogkit/internal/theme"
)

const Version = "0.1.0"

func init() {
	initColorProfile()
}

// initColorProfile configures the lipgloss color profile, preferring
// TrueColor and honoring a DIALOGKIT_COLOR override.
func initColorProfile() {
	switch strings.ToLower(os.Getenv("DIALOGKIT_COLOR")) {
	case "truecolor", "true", "24bit":
		lipgloss.SetColorProfile(termenv.TrueColor)
		return
	case "256", "ansi256":
		lipgloss.SetColorProfile(termenv.ANSI256)
		return
	case "16", "ansi", "basic":
		lipgloss.SetColorProfile(termenv.ANSI)
		return
	case "none", "off", "ascii":
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	if os.Getenv("COLORTERM") == "truecolor" || os.Getenv("COLORTERM") == "24bit" {
		lipgloss.SetColorProfile(termenv.TrueColor)
		return
	}
	lipgloss.SetColorProfile(termenv.ANSI256)
}

// resolveTheme maps the configured theme name to a palette mode; "auto"
// follows the terminal background.
func resolveTheme(name string) theme.Mode {
	switch name {
	case "dark":
		return theme.ModeDark
	case "light":
		return theme.ModeLight
	default:
		if termenv.HasDarkBackground() {
			return theme.ModeDark
		}
		return theme.ModeLight
	}
}

func main() {
	var (
		configPath  = flag.String("config", "", "path to dialogkit.toml (default: user config dir)")
		themeFlag   = flag.String("theme", "", "theme override: dark, light or auto")
		versionFlag = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Printf("dialogdemo v%s\n", Version)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "dialogdemo: stdout is not a terminal")
		os.Exit(1)
	}

	path := *configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "dialogdemo: %v\n", err)
			os.Exit(1)
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dialogdemo: %v\n", err)
		os.Exit(1)
	}
	if *themeFlag != "" {
		cfg.Theme = *themeFlag
	}

	logDir := cfg.Logs.Dir
	if cfg.Logs.Enabled && logDir == "" {
		logDir = filepath.Dir(path)
	}
	if !cfg.Logs.Enabled {
		logDir = ""
	}
	logging.Init(logging.Config{LogDir: logDir, Level: cfg.Logs.Level})
	defer logging.Shutdown()
	log := logging.ForComponent(logging.CompDemo)

	theme.Init(resolveTheme(cfg.Theme))

	m := newModel(cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var g errgroup.Group

	// Config watcher is best-effort: a missing config dir just means no
	// live reload.
	if w, err := config.NewWatcher(path); err == nil {
		w.Start()
		defer w.Close()
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				case _, ok := <-w.ReloadChannel():
					if !ok {
						return nil
					}
					log.Info("config changed, reloading")
					if next, err := config.Load(path); err == nil {
						p.Send(configReloadedMsg{cfg: next})
					}
				}
			}
		})
	} else {
		log.Warn("config watcher unavailable", "error", err)
	}

	g.Go(func() error {
		defer cancel() // unblocks the watcher goroutine
		_, err := p.Run()
		return err
	})

	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "dialogdemo: %v\n", err)
		os.Exit(1)
	}
}
