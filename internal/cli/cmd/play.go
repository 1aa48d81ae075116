package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/panemux/internal/application/engine"
	"github.com/bnema/panemux/internal/cli"
	"github.com/bnema/panemux/internal/cli/model"
	"github.com/bnema/panemux/internal/infrastructure/config"
	"github.com/bnema/panemux/internal/logging"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Drive the layout engine interactively",
	Long: `Open a full-screen preview of one engine sized to the terminal.

Keys split, remove, resize and focus panes; clicking a pane focuses it.
Press ? for the full key list. Logs go to logging.file (or panemux.log in
the state directory) since the terminal belongs to the preview.

The configuration file is watched: saving a new resize.step takes effect
immediately.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	cfg := app.Config

	logPath, err := playLogPath(cfg)
	if err != nil {
		return err
	}
	logCfg := logging.ConfigFrom(cfg.Logging.Level, "json")
	logger, rotator, err := logging.NewFileLogger(logCfg, logging.RotatorOptions{
		Dir:        filepath.Dir(logPath),
		BaseName:   filepath.Base(logPath),
		MaxBackups: 3,
		Compress:   true,
	})
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer rotator.Close()

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithComponent(logging.WithContext(ctx, logger), "play")

	// The first WindowSizeMsg resizes the engine to the real terminal.
	width, height := cli.TerminalSize(cfg, int(os.Stdout.Fd()))
	e := engine.New(cli.EngineOptions(cfg, width, max(height-2, 1)))

	m := model.NewPlayModel(ctx, app.Theme, model.PlayModelConfig{
		Engine:     e,
		ResizeStep: cfg.Resize.Step,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	if app.Manager.Exists() {
		app.Manager.OnConfigChange(func(c *config.Config) {
			p.Send(model.ConfigChangedMsg{Config: c})
		})
		if err := app.Manager.Watch(ctx); err != nil {
			logger.Warn().Err(err).Msg("config watch disabled")
		}
	}

	logger.Info().Int("width", width).Int("height", height).Msg("play started")
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("play: %w", err)
	}
	logger.Info().Msg("play finished")
	return nil
}

func playLogPath(cfg *config.Config) (string, error) {
	if cfg.Logging.File != "" {
		return cfg.Logging.File, nil
	}
	dir, err := config.GetLogDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "panemux.log"), nil
}
