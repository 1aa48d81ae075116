// Package cli wires configuration, logging and the layout engine for the
// command-line front-ends.
package cli

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/bnema/panemux/internal/application/engine"
	"github.com/bnema/panemux/internal/application/usecase"
	"github.com/bnema/panemux/internal/cli/styles"
	"github.com/bnema/panemux/internal/domain/build"
	"github.com/bnema/panemux/internal/domain/entity"
	"github.com/bnema/panemux/internal/infrastructure/config"
	"github.com/bnema/panemux/internal/logging"
)

// Options are the global command-line flags.
type Options struct {
	// ConfigDir overrides the XDG config directory.
	ConfigDir string
	// LogLevel overrides logging.level from the config file.
	LogLevel string
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	ctx context.Context
}

// NewApp loads the configuration and sets up logging to stderr.
func NewApp(opts Options) (*App, error) {
	var (
		mgr *config.Manager
		err error
	)
	if opts.ConfigDir != "" {
		mgr, err = config.NewManagerAt(opts.ConfigDir)
	} else {
		mgr, err = config.NewManager()
	}
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	level := cfg.Logging.Level
	if opts.LogLevel != "" {
		if _, err := logging.ParseLevel(opts.LogLevel); err != nil {
			return nil, fmt.Errorf("--log-level: %w", err)
		}
		level = opts.LogLevel
	}
	logCfg := logging.ConfigFrom(level, cfg.Logging.Format)
	logCfg.TimeFormat = "15:04:05"
	logCfg.Output = os.Stderr
	logger := logging.New(logCfg)

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(),
		ctx:     logging.WithContext(context.Background(), logger),
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// PaneOptions converts the layout and focus settings.
func PaneOptions(cfg *config.Config) usecase.PaneOptions {
	opts := usecase.DefaultPaneOptions()
	opts.MinSize = entity.Size{W: cfg.Layout.MinPaneWidth, H: cfg.Layout.MinPaneHeight}
	opts.PreferRecent = cfg.Focus.PreferRecent
	return opts
}

// EngineOptions returns engine options for a width x height terminal.
func EngineOptions(cfg *config.Config, width, height int) engine.Options {
	return engine.Options{
		Width:    width,
		Height:   height,
		Panes:    PaneOptions(cfg),
		Observer: logObserver{},
		Validate: cfg.Debug.ValidateTree,
	}
}

// TerminalSize returns the size of the terminal on fd, or the configured
// fallback when fd is not a terminal.
func TerminalSize(cfg *config.Config, fd int) (width, height int) {
	if term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
			return w, h
		}
	}
	return cfg.Terminal.Width, cfg.Terminal.Height
}
