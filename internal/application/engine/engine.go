// Package engine applies layout commands to the views of a pane
// multiplexer, one at a time, and reports the resulting layout.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/panemux/internal/application/port"
	"github.com/bnema/panemux/internal/application/usecase"
	"github.com/bnema/panemux/internal/domain/entity"
	"github.com/bnema/panemux/internal/logging"
)

// Options configures an Engine.
type Options struct {
	Width, Height int
	Panes         usecase.PaneOptions
	// Observer is notified after every committed command. Optional.
	Observer port.LayoutObserver
	// Logger resolves the logger for a command. Defaults to logging.FromContext.
	Logger port.LoggerFromContext
	// Validate checks tree and layout invariants before committing.
	Validate bool
	// PaneIDs and ViewIDs generate identifiers. Default to p0, p1, ... and v0, v1, ...
	PaneIDs usecase.IDGenerator
	ViewIDs usecase.IDGenerator
}

// Result is the state after a command.
type Result struct {
	Command string
	ViewID  entity.ViewID
	Focus   entity.PaneID
	// NewPaneID is set by commands that create a pane.
	NewPaneID entity.PaneID
	// Applied is the number of cells a resize moved.
	Applied int
	// Moved is the number of focus moves made.
	Moved  int
	Zoomed bool
	Layout *entity.Layout
}

// Engine owns every view and applies commands to the active one.
// It is not safe for concurrent use; drive it from one goroutine.
type Engine struct {
	views   *entity.ViewManager
	bounds  entity.Rect
	panes   *usecase.ManagePanesUseCase
	viewsUC *usecase.ManageViewsUseCase

	observer port.LayoutObserver
	logger   port.LoggerFromContext
	validate bool

	// rendered holds the rectangles last reported for the active view.
	rendered     map[entity.PaneID]entity.Rect
	renderedView entity.ViewID
	renderedZoom entity.PaneID
}

// New creates an engine holding one view with one pane.
func New(opts Options) *Engine {
	e := &Engine{
		bounds:   entity.NewRect(opts.Width, opts.Height),
		observer: opts.Observer,
		logger:   opts.Logger,
		validate: opts.Validate,
	}
	if e.observer == nil {
		e.observer = nopObserver{}
	}
	if e.logger == nil {
		e.logger = logging.FromContext
	}

	paneIDs := opts.PaneIDs
	if paneIDs == nil {
		paneIDs = Sequence("p")
	}
	viewIDs := opts.ViewIDs
	if viewIDs == nil {
		viewIDs = Sequence("v")
	}
	freePaneID := func() string {
		for {
			id := paneIDs()
			if e.views == nil || e.views.FindPane(entity.PaneID(id)) == nil {
				return id
			}
		}
	}

	e.panes = usecase.NewManagePanesUseCase(freePaneID, opts.Panes)
	e.viewsUC = usecase.NewManageViewsUseCase(viewIDs, freePaneID)

	first := entity.NewView(entity.ViewID(viewIDs()), "", entity.NewPane(entity.PaneID(freePaneID())))
	e.views = entity.NewViewManager(first)
	first.Relayout(e.bounds, e.panes.Options().MinSize)
	return e
}

// Sequence returns a generator yielding prefix0, prefix1, ...
func Sequence(prefix string) usecase.IDGenerator {
	n := 0
	return func() string {
		id := fmt.Sprintf("%s%d", prefix, n)
		n++
		return id
	}
}

// Execute applies one command. On failure the state is unchanged and the
// error wraps one of the entity sentinel errors. Two outcomes return both a
// Result and an error: a clamped resize (*entity.MinimumSizeError, applied)
// and removal of the final pane (entity.ErrLastPaneRemoved, nothing
// changed). A split with no room left matches entity.ErrMinimumSize too, but
// is rejected.
func (e *Engine) Execute(ctx context.Context, cmd Command) (*Result, error) {
	beforeView := e.views.ActiveView().ID
	beforeFocus := e.views.ActiveView().Focus

	ctx = logging.WithViewID(logging.WithComponent(ctx, "engine"), string(beforeView))
	log := e.logger(ctx)

	res := &Result{Command: cmd.Name()}
	err := cmd.execute(ctx, e, res)
	if err != nil && !IsPartial(err) {
		log.Debug().Err(err).Str("command", cmd.Name()).Msg("command rejected")
		return nil, err
	}

	e.settle(ctx, beforeView, beforeFocus)

	v := e.views.ActiveView()
	res.ViewID = v.ID
	res.Focus = v.Focus
	res.Zoomed = v.Zoomed != ""
	res.Layout = v.Layout()

	log.Debug().
		Str("command", cmd.Name()).
		Str("active_view", string(v.ID)).
		Str("focus", string(v.Focus)).
		Int("panes", v.Tree.Len()).
		AnErr("partial", err).
		Msg("command applied")
	return res, err
}

// IsPartial reports whether err accompanies a valid Result.
func IsPartial(err error) bool {
	return isClamped(err) || errors.Is(err, entity.ErrLastPaneRemoved)
}

func isClamped(err error) bool {
	var sizeErr *entity.MinimumSizeError
	return errors.As(err, &sizeErr)
}

// mutate runs fn on a copy of the active view and commits the copy only if
// fn succeeds (or is clamped) and the invariants hold.
func (e *Engine) mutate(fn func(v *entity.View) error) error {
	idx := e.views.Active
	work := e.views.ActiveView().Clone()

	err := fn(work)
	if err != nil && !isClamped(err) {
		return err
	}
	if e.validate {
		if verr := work.Tree.Validate(); verr != nil {
			return verr
		}
		minSize := e.panes.Options().MinSize
		if verr := work.Tree.ValidateLayout(work.TiledLayout(e.bounds, minSize), minSize); verr != nil {
			return verr
		}
	}
	e.views.Replace(idx, work)
	return err
}

// settle lays out the active view if needed and notifies the observer.
func (e *Engine) settle(ctx context.Context, beforeView entity.ViewID, beforeFocus entity.PaneID) {
	v := e.views.ActiveView()
	l := e.layout()

	switch {
	case v.ID != beforeView:
		e.observer.ViewChanged(ctx, beforeView, v.ID)
	case v.Focus != beforeFocus:
		e.observer.FocusChanged(ctx, v.ID, beforeFocus, v.Focus)
	}

	if v.ID != e.renderedView || l.Zoomed != e.renderedZoom {
		e.rendered = nil
	}
	e.renderedView = v.ID
	e.renderedZoom = l.Zoomed

	visible := make(map[entity.PaneID]entity.Rect, len(l.Panes))
	for _, pr := range l.Panes {
		visible[pr.PaneID] = pr.Rect
		if old, ok := e.rendered[pr.PaneID]; !ok || old != pr.Rect {
			e.observer.PaneResized(ctx, v.ID, pr.PaneID, pr.Rect)
		}
	}
	e.rendered = visible
}

// layout returns the active view's layout for the current bounds,
// recomputing it when stale.
func (e *Engine) layout() *entity.Layout {
	v := e.views.ActiveView()
	if l := v.Layout(); l != nil && l.Bounds == e.bounds {
		return l
	}
	return v.Relayout(e.bounds, e.panes.Options().MinSize)
}

// Bounds returns the terminal bounds.
func (e *Engine) Bounds() entity.Rect { return e.bounds }

// Layout returns the active view's current layout.
func (e *Engine) Layout() *entity.Layout { return e.layout() }

type nopObserver struct{}

func (nopObserver) PaneOpened(context.Context, entity.ViewID, entity.PaneID)                   {}
func (nopObserver) PaneClosed(context.Context, entity.ViewID, entity.PaneID)                   {}
func (nopObserver) PaneResized(context.Context, entity.ViewID, entity.PaneID, entity.Rect)     {}
func (nopObserver) FocusChanged(context.Context, entity.ViewID, entity.PaneID, entity.PaneID) {}
func (nopObserver) ViewChanged(context.Context, entity.ViewID, entity.ViewID)                 {}
func (nopObserver) LastPaneRemoved(context.Context, entity.ViewID, entity.PaneID)             {}
