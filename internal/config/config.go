// Package config loads and watches the demo's user configuration: theme
// selection, virtual display geometry and logging options, stored as TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the TOML config file name inside the config directory.
const FileName = "dialogkit.toml"

// Config is the user-facing configuration.
type Config struct {
	// Theme selects the palette: "dark", "light" or "auto".
	// "auto" follows the OS dark-mode setting.
	Theme string `toml:"theme"`

	// Display describes the virtual display the dialogs are laid out on.
	Display DisplaySettings `toml:"display"`

	// Logs configures the debug log.
	Logs LogSettings `toml:"logs"`
}

// DisplaySettings sizes the virtual display and its terminal mapping.
type DisplaySettings struct {
	// Width and Height are the display extent in layout units.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// ScaleX and ScaleY are layout units per terminal cell.
	ScaleX int `toml:"scale_x"`
	ScaleY int `toml:"scale_y"`
}

// LogSettings configures file logging.
type LogSettings struct {
	// Enabled turns file logging on.
	Enabled bool `toml:"enabled"`

	// Dir is the log directory; defaults to the config directory.
	Dir string `toml:"dir"`

	// Level is "debug", "info", "warn" or "error".
	Level string `toml:"level"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Theme: "auto",
		Display: DisplaySettings{
			Width:  240,
			Height: 240,
			ScaleX: 4,
			ScaleY: 12,
		},
		Logs: LogSettings{Level: "info"},
	}
}

// DefaultPath returns the config file path under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(dir, "dialogkit", FileName), nil
}

// Load reads the config file at path, filling unset fields with defaults.
// A missing file is not an error: it yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// Save writes the config as TOML, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

func (c *Config) normalize() {
	switch c.Theme {
	case "dark", "light", "auto":
	default:
		c.Theme = "auto"
	}
	d := Default().Display
	if c.Display.Width <= 0 {
		c.Display.Width = d.Width
	}
	if c.Display.Height <= 0 {
		c.Display.Height = d.Height
	}
	if c.Display.ScaleX <= 0 {
		c.Display.ScaleX = d.ScaleX
	}
	if c.Display.ScaleY <= 0 {
		c.Display.ScaleY = d.ScaleY
	}
}
