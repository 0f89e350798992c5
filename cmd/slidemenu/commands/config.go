package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/slidemenu/retained"
	"github.com/agiangrant/slidemenu/tui"
)

// DefaultConfigPath is used when no --config flag is given.
const DefaultConfigPath = "slidemenu.toml"

// Config represents the slidemenu.toml configuration file
type Config struct {
	Drawer DrawerConfig `toml:"drawer"`
	Theme  ThemeConfig  `toml:"theme"`
	Log    LogConfig    `toml:"log"`
}

// DrawerConfig tunes the drawer. Distances are terminal cells.
type DrawerConfig struct {
	MenuWidth int     `toml:"menu_width"`
	TouchSlop float32 `toml:"touch_slop"`
	// Transition time per cell of travel
	DurationPerCellMs int `toml:"duration_per_cell_ms"`
	// linear, ease-out, cubic, ease-in-out, viscous
	Easing          string `toml:"easing"`
	FrameIntervalMs int    `toml:"frame_interval_ms"`
	// main or menu
	InitialState string `toml:"initial_state"`
}

type ThemeConfig struct {
	MenuTitle      string   `toml:"menu_title"`
	MenuItems      []string `toml:"menu_items"`
	MenuClasses    string   `toml:"menu_classes"`
	ContentClasses string   `toml:"content_classes"`
	ContentLines   int      `toml:"content_lines"`
	// auto, dark or light
	Mode string `toml:"mode"`
}

type LogConfig struct {
	// Log file used while the terminal UI is running; empty disables logging
	File string `toml:"file"`
	// debug, info, warn or error
	Level string `toml:"level"`
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() Config {
	opts := tui.DefaultOptions()
	return Config{
		Drawer: DrawerConfig{
			MenuWidth:         opts.MenuWidth,
			TouchSlop:         opts.TouchSlop,
			DurationPerCellMs: int(opts.DurationPerUnit / time.Millisecond),
			Easing:            opts.Easing,
			FrameIntervalMs:   int(opts.FrameInterval / time.Millisecond),
			InitialState:      opts.InitialState.String(),
		},
		Theme: ThemeConfig{
			MenuTitle:      opts.MenuTitle,
			MenuItems:      opts.MenuItems,
			MenuClasses:    opts.MenuClasses,
			ContentClasses: opts.ContentClasses,
			ContentLines:   opts.ContentLines,
			Mode:           "auto",
		},
		Log: LogConfig{
			File:  "slidemenu.log",
			Level: "info",
		},
	}
}

// LoadConfig loads the configuration from path.
// If the file doesn't exist, returns default config
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid %s: %w", path, err)
	}

	return config, nil
}

// SaveConfig saves the configuration to path
func SaveConfig(path string, config Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	d := c.Drawer
	if d.MenuWidth <= 0 {
		return fmt.Errorf("drawer.menu_width must be positive, got %d", d.MenuWidth)
	}
	if d.TouchSlop < 0 {
		return fmt.Errorf("drawer.touch_slop must not be negative, got %g", d.TouchSlop)
	}
	if d.DurationPerCellMs < 0 {
		return fmt.Errorf("drawer.duration_per_cell_ms must not be negative, got %d", d.DurationPerCellMs)
	}
	if d.FrameIntervalMs < 0 {
		return fmt.Errorf("drawer.frame_interval_ms must not be negative, got %d", d.FrameIntervalMs)
	}
	if retained.EasingByName(d.Easing) == nil {
		return fmt.Errorf("drawer.easing: unknown easing %q", d.Easing)
	}
	if _, err := retained.ParseState(d.InitialState); err != nil {
		return fmt.Errorf("drawer.initial_state: %w", err)
	}

	switch c.Theme.Mode {
	case "", "auto", "dark", "light":
	default:
		return fmt.Errorf("theme.mode must be auto, dark or light, got %q", c.Theme.Mode)
	}
	if c.Theme.ContentLines < 0 {
		return fmt.Errorf("theme.content_lines must not be negative, got %d", c.Theme.ContentLines)
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// SlogLevel parses Level; empty means info.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}

// DarkMode resolves the theme mode. detect is consulted only for "auto".
func (t ThemeConfig) DarkMode(detect func() bool) bool {
	switch t.Mode {
	case "dark":
		return true
	case "light":
		return false
	default:
		return detect != nil && detect()
	}
}

// Options converts a validated config to terminal options.
func (c Config) Options(dark bool) tui.Options {
	opts := tui.DefaultOptions()

	opts.MenuWidth = c.Drawer.MenuWidth
	opts.TouchSlop = c.Drawer.TouchSlop
	opts.DurationPerUnit = time.Duration(c.Drawer.DurationPerCellMs) * time.Millisecond
	opts.Easing = c.Drawer.Easing
	if c.Drawer.FrameIntervalMs > 0 {
		opts.FrameInterval = time.Duration(c.Drawer.FrameIntervalMs) * time.Millisecond
	}
	if state, err := retained.ParseState(c.Drawer.InitialState); err == nil {
		opts.InitialState = state
	}

	if c.Theme.MenuTitle != "" {
		opts.MenuTitle = c.Theme.MenuTitle
	}
	if len(c.Theme.MenuItems) > 0 {
		opts.MenuItems = c.Theme.MenuItems
	}
	opts.MenuClasses = c.Theme.MenuClasses
	opts.ContentClasses = c.Theme.ContentClasses
	if c.Theme.ContentLines > 0 {
		opts.ContentLines = c.Theme.ContentLines
	}
	opts.DarkMode = dark

	return opts
}
