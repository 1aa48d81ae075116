package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/panemux/internal/application/engine"
	"github.com/bnema/panemux/internal/infrastructure/config"
	"github.com/bnema/panemux/internal/infrastructure/scripting"
	"github.com/bnema/panemux/internal/logging"
	"github.com/bnema/panemux/internal/parser"
)

// RunOptions configures RunScripts.
type RunOptions struct {
	Paths         []string
	Width, Height int
	// Trace prints the layout after every command, not just at the end.
	Trace bool
	// Parallel bounds how many scripts run at once. Zero means no limit.
	Parallel int
}

// ScriptReport is the outcome of one script.
type ScriptReport struct {
	Path   string
	Output string
	Err    error
}

// RunScripts evaluates every script against its own engine, concurrently,
// and writes the reports to out in argument order. Files ending in .js are
// JavaScript; anything else is a line command script. The returned error
// joins the failures of individual scripts.
func RunScripts(ctx context.Context, cfg *config.Config, opts RunOptions, out io.Writer) error {
	reports := make([]ScriptReport, len(opts.Paths))

	g, gctx := errgroup.WithContext(ctx)
	if opts.Parallel > 0 {
		g.SetLimit(opts.Parallel)
	}
	for i, path := range opts.Paths {
		g.Go(func() error {
			var buf bytes.Buffer
			err := runScript(gctx, cfg, opts, path, &buf)
			reports[i] = ScriptReport{Path: path, Output: buf.String(), Err: err}
			// Script failures are reported, not propagated, so one bad
			// script does not cancel the others.
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var errs []error
	for _, r := range reports {
		if len(opts.Paths) > 1 {
			fmt.Fprintf(out, "== %s\n", r.Path)
		}
		fmt.Fprint(out, r.Output)
		if r.Err != nil {
			fmt.Fprintf(out, "error: %v\n", r.Err)
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}

func runScript(ctx context.Context, cfg *config.Config, opts RunOptions, path string, out io.Writer) error {
	ctx = logging.WithScript(ctx, path)
	engOpts := EngineOptions(cfg, opts.Width, opts.Height)
	e := engine.New(engOpts)

	var err error
	if strings.EqualFold(filepath.Ext(path), ".js") {
		err = runJS(ctx, e, opts, path, out)
	} else {
		err = runLines(ctx, e, opts, path, out)
	}
	if err != nil {
		return err
	}
	if !opts.Trace {
		WriteLayout(out, e.Snapshot())
	}
	return nil
}

func runJS(ctx context.Context, e *engine.Engine, opts RunOptions, path string, out io.Writer) error {
	var trace scripting.TraceFunc
	if opts.Trace {
		trace = func(cmd engine.Command, _ *engine.Result, err error) {
			writeTrace(out, e, cmd, err)
		}
	}
	return scripting.NewRunner(trace).RunFile(ctx, path, e)
}

func runLines(ctx context.Context, e *engine.Engine, opts RunOptions, path string, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	stmts, err := parser.New(path).Parse(f)
	if err != nil {
		return err
	}
	log := logging.FromContext(ctx)
	for _, st := range stmts {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, err := e.Execute(ctx, st.Command)
		if opts.Trace {
			writeTrace(out, e, st.Command, err)
		}
		if err == nil {
			continue
		}
		if !engine.IsPartial(err) {
			return &parser.Error{Source: path, Line: st.Line, Text: st.Text, Err: err}
		}
		log.Warn().Err(err).Int("line", st.Line).Msg("command partially applied")
		if !opts.Trace {
			fmt.Fprintf(out, "# %s:%d: %v\n", path, st.Line, err)
		}
	}
	return nil
}

func writeTrace(out io.Writer, e *engine.Engine, cmd engine.Command, err error) {
	fmt.Fprintf(out, "> %s\n", parser.Format(cmd))
	if err != nil {
		fmt.Fprintf(out, "# %v\n", err)
		if !engine.IsPartial(err) {
			return
		}
	}
	WriteLayout(out, e.Snapshot())
}

// WriteLayout prints the active view, its focus and one `id x y w h` line
// per visible pane.
func WriteLayout(out io.Writer, s *engine.Snapshot) {
	v := s.ActiveView()
	fmt.Fprintf(out, "view %s focus %s", v.ID, v.Focus)
	if v.Zoomed != "" {
		fmt.Fprintf(out, " zoomed %s", v.Zoomed)
	}
	fmt.Fprintln(out)
	if s.Layout == nil {
		return
	}
	for _, pr := range s.Layout.Panes {
		fmt.Fprintf(out, "%s %d %d %d %d\n", pr.PaneID, pr.X, pr.Y, pr.W, pr.H)
	}
}
