package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/panemux/internal/cli"
)

var (
	runWidth    int
	runHeight   int
	runTrace    bool
	runParallel int
)

var runCmd = &cobra.Command{
	Use:   "run <script>...",
	Short: "Evaluate layout scripts and print the resulting layout",
	Long: `Evaluate one or more layout scripts, each against a fresh engine, and
print the active view, the focused pane and one 'id x y w h' line per
visible pane.

Scripts ending in .js are JavaScript and drive the engine through the
global 'mux' object. Any other file is a line command script:

  terminal 80 24
  split [pane] horizontal|vertical [before] [fixed=N] [as=ID]
  resize [pane] left|right|up|down DELTA [count]
  remove [pane]
  focus left|right|up|down [count]
  focus-next [step]    focus-prev [step]    focus-pane ID
  click X Y
  swap [A] B
  zoom
  view-new [title]     view-close [ID]      view-switch [step]

Everything after # is a comment.

Several scripts run concurrently; their reports are printed in argument
order.

Examples:
  panemux run layout.pmx                # Print the final layout
  panemux run --trace layout.pmx        # Print the layout after every command
  panemux run -W 120 -H 40 a.pmx b.js   # Run two scripts on a 120x40 terminal`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntVarP(&runWidth, "width", "W", 0, "terminal width (default: current terminal or terminal.width)")
	runCmd.Flags().IntVarP(&runHeight, "height", "H", 0, "terminal height (default: current terminal or terminal.height)")
	runCmd.Flags().BoolVarP(&runTrace, "trace", "t", false, "print the layout after every command")
	runCmd.Flags().IntVarP(&runParallel, "parallel", "p", 0, "maximum scripts evaluated at once (0: no limit)")
}

func runRun(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	width, height := cli.TerminalSize(app.Config, int(os.Stdout.Fd()))
	if runWidth > 0 {
		width = runWidth
	}
	if runHeight > 0 {
		height = runHeight
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.RunScripts(ctx, app.Config, cli.RunOptions{
		Paths:    args,
		Width:    width,
		Height:   height,
		Trace:    runTrace,
		Parallel: runParallel,
	}, cmd.OutOrStdout())
}
