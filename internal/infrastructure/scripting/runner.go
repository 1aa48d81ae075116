// Package scripting drives an engine from JavaScript. Scripts see a global
// `mux` object whose methods map one to one onto engine commands.
package scripting

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grafana/sobek"

	"github.com/bnema/panemux/internal/application/engine"
	"github.com/bnema/panemux/internal/logging"
	"github.com/bnema/panemux/internal/parser"
)

// TraceFunc observes every command a script issues.
type TraceFunc func(cmd engine.Command, res *engine.Result, err error)

// Runner evaluates scripts. A Runner holds no state between runs and may be
// shared by goroutines, each with its own engine.
type Runner struct {
	trace TraceFunc
}

// NewRunner creates a runner. trace may be nil.
func NewRunner(trace TraceFunc) *Runner {
	return &Runner{trace: trace}
}

// RunFile evaluates the script at path against e.
func (r *Runner) RunFile(ctx context.Context, path string, e *engine.Engine) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	src, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("read script %s: %w", path, err)
	}
	return r.Run(ctx, path, string(src), e)
}

// Run evaluates src against e. Rejected commands throw inside the script;
// an uncaught one ends the run with an error wrapping the engine error.
// Cancelling ctx interrupts the script.
func (r *Runner) Run(ctx context.Context, name, src string, e *engine.Engine) error {
	ctx = logging.WithScript(logging.WithComponent(ctx, "scripting"), name)
	log := logging.FromContext(ctx)

	rt := sobek.New()
	b := &binding{ctx: ctx, rt: rt, engine: e, trace: r.trace}
	if err := b.install(); err != nil {
		return fmt.Errorf("install script bindings: %w", err)
	}

	stop := context.AfterFunc(ctx, func() { rt.Interrupt(ctx.Err()) })
	defer stop()

	log.Debug().Msg("script started")
	if _, err := rt.RunScript(name, src); err != nil {
		var interrupted *sobek.InterruptedError
		if errors.As(err, &interrupted) {
			return fmt.Errorf("script %s interrupted: %w", name, context.Cause(ctx))
		}
		if b.lastErr != nil && strings.Contains(err.Error(), b.lastErr.Error()) {
			return fmt.Errorf("script %s: %w", name, b.lastErr)
		}
		return fmt.Errorf("script %s: %w", name, err)
	}
	log.Debug().Int("commands", b.commands).Msg("script finished")
	return nil
}

// binding is the per-run state behind the `mux` object.
type binding struct {
	ctx      context.Context
	rt       *sobek.Runtime
	engine   *engine.Engine
	trace    TraceFunc
	commands int
	// lastErr is the last engine error thrown into the script.
	lastErr error
}

func (b *binding) install() error {
	mux := b.rt.NewObject()
	methods := map[string]func(sobek.FunctionCall) sobek.Value{
		"exec":       b.exec,
		"terminal":   b.terminal,
		"split":      b.split,
		"remove":     b.remove,
		"resize":     b.resize,
		"focus":      b.focus,
		"focusNext":  b.focusNext,
		"focusPane":  b.focusPane,
		"click":      b.click,
		"swap":       b.swap,
		"zoom":       b.zoom,
		"newView":    b.newView,
		"closeView":  b.closeView,
		"switchView": b.switchView,
		"layout":     b.layout,
		"snapshot":   b.snapshot,
		"focused":    b.focused,
		"log":        b.log,
	}
	for name, fn := range methods {
		if err := mux.Set(name, fn); err != nil {
			return err
		}
	}
	if err := b.rt.Set("mux", mux); err != nil {
		return err
	}

	console := b.rt.NewObject()
	if err := console.Set("log", b.log); err != nil {
		return err
	}
	return b.rt.Set("console", console)
}

// apply executes cmd and converts the outcome for the script. Partial
// successes return a result carrying an `error` string; other failures
// throw.
func (b *binding) apply(cmd engine.Command) sobek.Value {
	b.commands++
	res, err := b.engine.Execute(b.ctx, cmd)
	if b.trace != nil {
		b.trace(cmd, res, err)
	}
	if err != nil && !engine.IsPartial(err) {
		b.lastErr = err
		panic(b.rt.NewGoError(err))
	}
	out := resultObject(res)
	if err != nil {
		out["error"] = err.Error()
	}
	return b.rt.ToValue(out)
}

func (b *binding) throwf(format string, args ...any) {
	panic(b.rt.NewTypeError(fmt.Sprintf(format, args...)))
}

// exec runs one line of the text command format.
func (b *binding) exec(call sobek.FunctionCall) sobek.Value {
	line := call.Argument(0).String()
	cmd, err := parser.ParseLine(line)
	if err != nil {
		b.lastErr = err
		panic(b.rt.NewGoError(err))
	}
	return b.apply(cmd)
}

func (b *binding) log(call sobek.FunctionCall) sobek.Value {
	parts := make([]string, len(call.Arguments))
	for i, a := range call.Arguments {
		parts[i] = fmt.Sprint(a.Export())
	}
	logging.FromContext(b.ctx).Info().Msg(strings.Join(parts, " "))
	return sobek.Undefined()
}

func (b *binding) focused(sobek.FunctionCall) sobek.Value {
	return b.rt.ToValue(string(b.engine.Snapshot().ActiveView().Focus))
}

func (b *binding) layout(sobek.FunctionCall) sobek.Value {
	l := b.engine.Layout()
	return b.rt.ToValue(map[string]any{
		"bounds": rectObject(l.Bounds),
		"zoomed": string(l.Zoomed),
		"panes":  paneObjects(l),
	})
}

func (b *binding) snapshot(sobek.FunctionCall) sobek.Value {
	s := b.engine.Snapshot()
	views := make([]any, 0, len(s.Views))
	for _, v := range s.Views {
		panes := make([]any, len(v.Panes))
		for i, p := range v.Panes {
			panes[i] = string(p)
		}
		views = append(views, map[string]any{
			"id":     string(v.ID),
			"title":  v.Title,
			"focus":  string(v.Focus),
			"zoomed": string(v.Zoomed),
			"shape":  v.Shape,
			"panes":  panes,
		})
	}
	return b.rt.ToValue(map[string]any{
		"active": s.Active,
		"bounds": rectObject(s.Bounds),
		"views":  views,
	})
}
