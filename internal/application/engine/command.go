package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/panemux/internal/application/usecase"
	"github.com/bnema/panemux/internal/domain/entity"
)

// Command is a request decoded by a front-end and applied by Execute.
type Command interface {
	// Name is the command's script keyword.
	Name() string
	execute(ctx context.Context, e *Engine, res *Result) error
}

// Split creates a pane next to Pane (the focused pane when empty).
type Split struct {
	Pane      entity.PaneID
	Direction entity.SplitDirection
	Placement entity.Placement
	Fixed     int
	// NewPane names the created pane; generated when empty.
	NewPane entity.PaneID
}

func (Split) Name() string { return "split" }

func (c Split) execute(ctx context.Context, e *Engine, res *Result) error {
	var out *usecase.SplitPaneOutput
	err := e.mutate(func(v *entity.View) error {
		var err error
		out, err = e.panes.Split(ctx, usecase.SplitPaneInput{
			View:      v,
			Target:    c.Pane,
			Direction: c.Direction,
			Placement: c.Placement,
			Fixed:     c.Fixed,
			NewPaneID: c.NewPane,
			Bounds:    e.bounds,
		})
		return err
	})
	if err != nil {
		return err
	}
	res.NewPaneID = out.NewPaneID
	e.observer.PaneOpened(ctx, e.views.ActiveView().ID, out.NewPaneID)
	return nil
}

// Remove deletes a pane. Removing the last pane of a view closes the view;
// removing the last pane of the last view leaves everything in place and
// returns entity.ErrLastPaneRemoved.
type Remove struct {
	Pane entity.PaneID
}

func (Remove) Name() string { return "remove" }

func (c Remove) execute(ctx context.Context, e *Engine, res *Result) error {
	v := e.views.ActiveView()
	id := c.Pane
	if id == "" {
		id = v.Focus
	}
	if !v.Tree.Has(id) {
		return fmt.Errorf("remove %s: %w", id, entity.ErrInvalidTarget)
	}

	if v.Tree.Len() == 1 {
		if e.views.Count() == 1 {
			e.observer.LastPaneRemoved(ctx, v.ID, id)
			return fmt.Errorf("remove %s: %w", id, entity.ErrLastPaneRemoved)
		}
		if err := e.viewsUC.Close(ctx, e.views, v.ID); err != nil {
			return err
		}
		e.observer.PaneClosed(ctx, v.ID, id)
		return nil
	}

	err := e.mutate(func(v *entity.View) error {
		_, err := e.panes.Close(ctx, v, id)
		return err
	})
	if err != nil {
		return err
	}
	e.observer.PaneClosed(ctx, v.ID, id)
	return nil
}

// Resize moves the boundary of Pane (the focused pane when empty) Delta
// cells in Direction, Count times.
type Resize struct {
	Pane      entity.PaneID
	Direction entity.Direction
	Delta     int
	Count     int
}

func (Resize) Name() string { return "resize" }

func (c Resize) execute(ctx context.Context, e *Engine, res *Result) error {
	return e.mutate(func(v *entity.View) error {
		if v.Zoomed != "" {
			v.Zoomed = ""
			v.Invalidate()
		}
		out, err := e.panes.Resize(ctx, usecase.ResizePaneInput{
			View:      v,
			Pane:      c.Pane,
			Bounds:    e.bounds,
			Direction: c.Direction,
			Delta:     c.Delta,
			Count:     c.Count,
		})
		if out != nil {
			res.Applied = out.Applied
		}
		return err
	})
}

// FocusDirection moves focus geometrically, Count times.
type FocusDirection struct {
	Direction entity.Direction
	Count     int
}

func (FocusDirection) Name() string { return "focus" }

func (c FocusDirection) execute(ctx context.Context, e *Engine, res *Result) error {
	return e.mutate(func(v *entity.View) error {
		out, err := e.panes.FocusDirection(ctx, usecase.FocusDirectionInput{
			View:      v,
			Layout:    v.TiledLayout(e.bounds, e.panes.Options().MinSize),
			Direction: c.Direction,
			Count:     c.Count,
		})
		if err != nil {
			return err
		}
		res.Moved = out.Moved
		if out.Moved > 0 {
			unzoom(v)
		}
		return nil
	})
}

// FocusNext cycles focus Step panes through the traversal order.
type FocusNext struct {
	Step int
}

func (FocusNext) Name() string { return "focus-next" }

func (c FocusNext) execute(ctx context.Context, e *Engine, res *Result) error {
	return e.mutate(func(v *entity.View) error {
		out, err := e.panes.FocusNext(ctx, v, c.Step)
		if err != nil {
			return err
		}
		res.Moved = out.Moved
		if out.Moved > 0 {
			unzoom(v)
		}
		return nil
	})
}

// FocusPane focuses a pane by identifier.
type FocusPane struct {
	Pane entity.PaneID
}

func (FocusPane) Name() string { return "focus-pane" }

func (c FocusPane) execute(ctx context.Context, e *Engine, _ *Result) error {
	return e.mutate(func(v *entity.View) error {
		return e.panes.Focus(ctx, v, c.Pane)
	})
}

// FocusAt focuses the pane covering a cell, as for a mouse click.
type FocusAt struct {
	X, Y int
}

func (FocusAt) Name() string { return "click" }

func (c FocusAt) execute(ctx context.Context, e *Engine, _ *Result) error {
	id, err := e.panes.PaneAt(e.layout(), c.X, c.Y)
	if err != nil {
		return err
	}
	return e.mutate(func(v *entity.View) error {
		return e.panes.Focus(ctx, v, id)
	})
}

// Swap exchanges two panes. An empty A means the focused pane.
type Swap struct {
	A, B entity.PaneID
}

func (Swap) Name() string { return "swap" }

func (c Swap) execute(ctx context.Context, e *Engine, _ *Result) error {
	return e.mutate(func(v *entity.View) error {
		a := c.A
		if a == "" {
			a = v.Focus
		}
		return e.panes.Swap(ctx, v, a, c.B)
	})
}

// ToggleZoom zooms or unzooms the focused pane.
type ToggleZoom struct{}

func (ToggleZoom) Name() string { return "zoom" }

func (ToggleZoom) execute(ctx context.Context, e *Engine, res *Result) error {
	return e.mutate(func(v *entity.View) error {
		zoomed, err := e.panes.ToggleZoom(ctx, v)
		res.Zoomed = zoomed
		return err
	})
}

// NewView creates and activates a view with one pane.
type NewView struct {
	Title string
}

func (NewView) Name() string { return "view-new" }

func (c NewView) execute(ctx context.Context, e *Engine, res *Result) error {
	out, err := e.viewsUC.Create(ctx, usecase.CreateViewInput{
		Views:    e.views,
		Name:     c.Title,
		Activate: true,
	})
	if err != nil {
		return err
	}
	res.NewPaneID = out.View.Focus
	e.observer.PaneOpened(ctx, out.View.ID, out.View.Focus)
	return nil
}

// CloseView removes a view and its panes. An empty View means the active one.
type CloseView struct {
	View entity.ViewID
}

func (CloseView) Name() string { return "view-close" }

func (c CloseView) execute(ctx context.Context, e *Engine, _ *Result) error {
	id := c.View
	if id == "" {
		id = e.views.ActiveView().ID
	}
	v, _ := e.views.Find(id)
	if v == nil {
		return fmt.Errorf("close view %s: %w", id, entity.ErrInvalidTarget)
	}
	if err := e.viewsUC.Close(ctx, e.views, id); err != nil {
		if errors.Is(err, entity.ErrLastPaneRemoved) {
			e.observer.LastPaneRemoved(ctx, id, v.Focus)
		}
		return err
	}
	for _, p := range v.Tree.Panes() {
		e.observer.PaneClosed(ctx, id, p)
	}
	return nil
}

// SwitchView changes the active view by Step, wrapping around.
type SwitchView struct {
	Step int
}

func (SwitchView) Name() string { return "view-switch" }

func (c SwitchView) execute(ctx context.Context, e *Engine, _ *Result) error {
	_, err := e.viewsUC.Switch(ctx, e.views, c.Step)
	return err
}

// TerminalResize changes the bounds every view is laid out in. Only the
// active view is laid out immediately.
type TerminalResize struct {
	Width, Height int
}

func (TerminalResize) Name() string { return "terminal" }

func (c TerminalResize) execute(_ context.Context, e *Engine, _ *Result) error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("terminal size %dx%d: %w", c.Width, c.Height, entity.ErrInvalidTarget)
	}
	e.bounds = entity.NewRect(c.Width, c.Height)
	return nil
}

func unzoom(v *entity.View) {
	if v.Zoomed != "" {
		v.Zoomed = ""
		v.Invalidate()
	}
}
