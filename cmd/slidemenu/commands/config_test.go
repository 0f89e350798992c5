package commands

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/slidemenu/retained"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, DefaultConfig().Validate())
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slidemenu.toml")

	cfg := DefaultConfig()
	cfg.Drawer.MenuWidth = 32
	cfg.Drawer.Easing = "cubic"
	cfg.Theme.MenuItems = []string{"One", "Two"}
	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slidemenu.toml")
	require.NoError(t, os.WriteFile(path, []byte("[drawer]\nmenu_width = 40\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Drawer.MenuWidth)
	assert.Equal(t, DefaultConfig().Drawer.Easing, cfg.Drawer.Easing)
	assert.Equal(t, DefaultConfig().Theme, cfg.Theme)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"syntax", "[drawer\n", "failed to parse"},
		{"zero width", "[drawer]\nmenu_width = 0\n", "menu_width must be positive"},
		{"negative slop", "[drawer]\ntouch_slop = -1.0\n", "touch_slop"},
		{"negative duration", "[drawer]\nduration_per_cell_ms = -5\n", "duration_per_cell_ms"},
		{"easing", "[drawer]\neasing = \"bouncy\"\n", "unknown easing"},
		{"state", "[drawer]\ninitial_state = \"half\"\n", "initial_state"},
		{"mode", "[theme]\nmode = \"sepia\"\n", "theme.mode"},
		{"level", "[log]\nlevel = \"loud\"\n", "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "slidemenu.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadConfig(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestConfigOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Drawer.MenuWidth = 30
	cfg.Drawer.DurationPerCellMs = 4
	cfg.Drawer.FrameIntervalMs = 0
	cfg.Drawer.InitialState = "menu"
	cfg.Theme.MenuTitle = ""
	cfg.Theme.MenuItems = nil

	opts := cfg.Options(true)
	assert.Equal(t, 30, opts.MenuWidth)
	assert.Equal(t, 4*time.Millisecond, opts.DurationPerUnit)
	assert.Equal(t, retained.DefaultFrameInterval, opts.FrameInterval)
	assert.Equal(t, retained.StateMenu, opts.InitialState)
	assert.Equal(t, "Menu", opts.MenuTitle)
	assert.NotEmpty(t, opts.MenuItems)
	assert.True(t, opts.DarkMode)
}

func TestThemeDarkMode(t *testing.T) {
	detectDark := func() bool { return true }

	assert.True(t, ThemeConfig{Mode: "dark"}.DarkMode(nil))
	assert.False(t, ThemeConfig{Mode: "light"}.DarkMode(detectDark))
	assert.True(t, ThemeConfig{Mode: "auto"}.DarkMode(detectDark))
	assert.False(t, ThemeConfig{Mode: "auto"}.DarkMode(nil))
}

func TestLogLevel(t *testing.T) {
	level, err := LogConfig{}.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	level, err = LogConfig{Level: "debug"}.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestOpenLogger(t *testing.T) {
	logger, closeLog, err := openLogger("", slog.LevelInfo)
	require.NoError(t, err)
	logger.Info("discarded")
	require.NoError(t, closeLog())

	path := filepath.Join(t.TempDir(), "slidemenu.log")
	logger, closeLog, err = openLogger(path, slog.LevelInfo)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("drawer committed", "state", "menu")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `msg="drawer committed" state=menu`)
	assert.NotContains(t, string(data), "hidden")
}
