// Package cmd provides Cobra CLI commands for panemux.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/panemux/internal/cli"
	"github.com/bnema/panemux/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	appOpts   cli.Options
	rootCmd   = &cobra.Command{
		Use:   "panemux",
		Short: "A terminal pane layout engine",
		Long: `panemux - the layout core of a terminal multiplexer.

It keeps panes in a tree of split containers, lays them out on a
character grid, resizes and removes them, and moves focus between them
geometrically, across any number of independent views.

Use 'panemux run' to evaluate layout scripts and print the resulting
rectangles, or 'panemux play' to drive the engine interactively.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(appOpts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&appOpts.ConfigDir, "config", "", "config directory (default $XDG_CONFIG_HOME/panemux)")
	rootCmd.PersistentFlags().StringVar(&appOpts.LogLevel, "log-level", "", "override logging.level (trace, debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
