package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/agiangrant/slidemenu/tui"
)

// Run implements the 'slidemenu run' command
func Run(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	configPath := fs.String("config", DefaultConfigPath, "Path to the config file")
	debug := fs.Bool("debug", false, "Log at debug level")
	noWatch := fs.Bool("no-watch", false, "Do not reload the config file on change")
	fs.Parse(args)

	config, err := LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level, err := config.Log.SlogLevel()
	if err != nil {
		return err
	}
	if *debug {
		level = slog.LevelDebug
	}
	logger, closeLog, err := openLogger(config.Log.File, level)
	if err != nil {
		return err
	}
	defer closeLog()

	// Query the terminal once, before the program takes it over.
	hasDark := lipgloss.HasDarkBackground()
	detect := func() bool { return hasDark }

	model, err := tui.New(config.Options(config.Theme.DarkMode(detect)), logger)
	if err != nil {
		return fmt.Errorf("failed to create model: %w", err)
	}
	logger.Info("starting", "config", *configPath, "menu_width", config.Drawer.MenuWidth)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	g, ctx := errgroup.WithContext(context.Background())
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	g.Go(func() error {
		defer stop()
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("program failed: %w", err)
		}
		return nil
	})

	if !*noWatch {
		watcher, err := NewConfigWatcher(*configPath, logger)
		if err != nil {
			logger.Warn("config hot reload disabled", "err", err)
		} else {
			g.Go(func() error {
				err := watcher.Run(ctx, func(cfg Config, err error) {
					msg := tui.ConfigMsg{Err: err}
					if err == nil {
						msg.Options = cfg.Options(cfg.Theme.DarkMode(detect))
					}
					program.Send(msg)
				})
				if err != nil {
					program.Quit()
				}
				return err
			})
		}
	}

	return g.Wait()
}

// openLogger returns a text logger writing to path. An empty path
// discards.
func openLogger(path string, level slog.Level) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return newLogger(f, level), f.Close, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
