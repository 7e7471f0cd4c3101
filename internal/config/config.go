// Package config handles application configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/go-errors/errors"
	"gopkg.in/yaml.v3"

	"github.com/abdullathedruid/termwidget/internal/canvas"
	"github.com/abdullathedruid/termwidget/internal/toggle"
)

// Config holds application configuration.
type Config struct {
	// LogLevel enables file logging when set: debug, info, warn or error
	LogLevel string `yaml:"log_level"`

	// LogFile is where log output goes; the terminal belongs to the UI
	LogFile string `yaml:"log_file"`

	// Keys contains keybinding configuration
	Keys KeyBindings `yaml:"keys"`

	// Menu places the toggle menu
	Menu MenuSettings `yaml:"menu"`

	// Panel places the optional state panel
	Panel PanelSettings `yaml:"panel"`

	// TextField sizes the demo text fields
	TextField TextFieldSettings `yaml:"textfield"`
}

// KeyBindings holds the toggle menu keybindings.
type KeyBindings struct {
	Quit  string `yaml:"quit"`
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// MenuSettings holds toggle menu placement.
type MenuSettings struct {
	X     int   `yaml:"x"`
	Y     int   `yaml:"y"`
	Boxed *bool `yaml:"boxed"`
}

// PanelSettings holds state panel placement. A zero height or width
// disables the panel.
type PanelSettings struct {
	Height int    `yaml:"height"`
	Width  int    `yaml:"width"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Boxed  *bool  `yaml:"boxed"`
	Label  string `yaml:"label"`
}

// TextFieldSettings holds text field dimensions.
type TextFieldSettings struct {
	MaxLength int `yaml:"max_length"`
	Height    int `yaml:"height"`
	Width     int `yaml:"width"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		LogFile: "termwidget.log",
		Keys:    DefaultKeyBindings(),
		Menu: MenuSettings{
			Boxed: boolPtr(true),
		},
		Panel: PanelSettings{
			Boxed: boolPtr(true),
		},
		TextField: TextFieldSettings{
			MaxLength: 10,
			Height:    5,
			Width:     30,
		},
	}
}

// DefaultKeyBindings returns the default keybindings.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Quit:  "f1",
		Up:    "up",
		Down:  "down",
		Left:  "left",
		Right: "right",
	}
}

func boolPtr(b bool) *bool {
	return &b
}

// Load reads the YAML file at path over the defaults. A missing file
// yields the defaults; an empty path means no file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file doesn't exist, use defaults
			return cfg, nil
		}
		return nil, errors.WrapPrefix(err, "reading config", 0)
	}

	// Parse YAML into a temporary struct to merge with defaults
	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, errors.WrapPrefix(err, "parsing "+filepath.Base(path), 0)
	}

	// Merge file config with defaults (file values override defaults)
	mergeConfig(cfg, &fileCfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks keybindings, the log level and sizes.
func (c *Config) Validate() error {
	if err := ValidateKeys(&c.Keys); err != nil {
		return err
	}
	if err := ValidateLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Menu.X < 0 || c.Menu.Y < 0 {
		return errors.Errorf("menu position must not be negative: x=%d y=%d", c.Menu.X, c.Menu.Y)
	}
	p := c.Panel
	if p.Height < 0 || p.Width < 0 || p.X < 0 || p.Y < 0 {
		return errors.Errorf("panel geometry must not be negative: %dx%d at x=%d y=%d", p.Height, p.Width, p.X, p.Y)
	}
	tf := c.TextField
	if tf.MaxLength <= 0 || tf.Height <= 0 || tf.Width <= 0 {
		return errors.Errorf("text field sizes must be positive: max_length=%d height=%d width=%d", tf.MaxLength, tf.Height, tf.Width)
	}
	return nil
}

// mergeConfig merges file configuration into the default configuration.
// Only non-zero values from file are applied.
func mergeConfig(dst, src *Config) {
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.LogFile != "" {
		dst.LogFile = src.LogFile
	}

	mergeKeyBindings(&dst.Keys, &src.Keys)

	if src.Menu.X != 0 {
		dst.Menu.X = src.Menu.X
	}
	if src.Menu.Y != 0 {
		dst.Menu.Y = src.Menu.Y
	}
	if src.Menu.Boxed != nil {
		dst.Menu.Boxed = src.Menu.Boxed
	}

	mergePanel(&dst.Panel, &src.Panel)

	if src.TextField.MaxLength != 0 {
		dst.TextField.MaxLength = src.TextField.MaxLength
	}
	if src.TextField.Height != 0 {
		dst.TextField.Height = src.TextField.Height
	}
	if src.TextField.Width != 0 {
		dst.TextField.Width = src.TextField.Width
	}
}

// mergeKeyBindings merges keybindings from src into dst.
func mergeKeyBindings(dst, src *KeyBindings) {
	if src.Quit != "" {
		dst.Quit = src.Quit
	}
	if src.Up != "" {
		dst.Up = src.Up
	}
	if src.Down != "" {
		dst.Down = src.Down
	}
	if src.Left != "" {
		dst.Left = src.Left
	}
	if src.Right != "" {
		dst.Right = src.Right
	}
}

// mergePanel merges panel settings from src into dst.
func mergePanel(dst, src *PanelSettings) {
	if src.Height != 0 {
		dst.Height = src.Height
	}
	if src.Width != 0 {
		dst.Width = src.Width
	}
	if src.X != 0 {
		dst.X = src.X
	}
	if src.Y != 0 {
		dst.Y = src.Y
	}
	if src.Boxed != nil {
		dst.Boxed = src.Boxed
	}
	if src.Label != "" {
		dst.Label = src.Label
	}
}

// MenuConfig builds the toggle menu configuration. Keys are expected to
// have passed ValidateKeys; unparsable keys fall back to the menu defaults.
func (c *Config) MenuConfig() toggle.MenuConfig {
	cfg := toggle.DefaultMenuConfig()
	cfg.X = c.Menu.X
	cfg.Y = c.Menu.Y
	if c.Menu.Boxed != nil {
		cfg.Boxed = *c.Menu.Boxed
	}

	bind := func(s string, dst *canvas.Binding) {
		if b, err := ParseKey(s); err == nil {
			*dst = b
		}
	}
	bind(c.Keys.Quit, &cfg.Quit)
	bind(c.Keys.Up, &cfg.Up)
	bind(c.Keys.Down, &cfg.Down)
	bind(c.Keys.Left, &cfg.Left)
	bind(c.Keys.Right, &cfg.Right)

	cfg.Panel = toggle.PanelConfig{
		Height: c.Panel.Height,
		Width:  c.Panel.Width,
		X:      c.Panel.X,
		Y:      c.Panel.Y,
		Boxed:  c.Panel.Boxed == nil || *c.Panel.Boxed,
		Label:  c.Panel.Label,
	}
	return cfg
}
