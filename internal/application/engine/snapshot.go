package engine

import "github.com/bnema/panemux/internal/domain/entity"

// ViewSnapshot describes one view.
type ViewSnapshot struct {
	ID     entity.ViewID
	Title  string
	Focus  entity.PaneID
	Zoomed entity.PaneID
	Panes  []entity.PaneID
	Shape  string
}

// Snapshot is a read-only copy of the engine state.
type Snapshot struct {
	Views  []ViewSnapshot
	Active int
	Bounds entity.Rect
	// Layout is the active view's layout.
	Layout *entity.Layout
}

// ActiveView returns the snapshot of the active view.
func (s *Snapshot) ActiveView() ViewSnapshot {
	return s.Views[s.Active]
}

// Snapshot copies the current state for front-ends.
func (e *Engine) Snapshot() *Snapshot {
	s := &Snapshot{
		Views:  make([]ViewSnapshot, 0, e.views.Count()),
		Active: e.views.Active,
		Bounds: e.bounds,
		Layout: e.layout(),
	}
	for _, v := range e.views.Views {
		s.Views = append(s.Views, ViewSnapshot{
			ID:     v.ID,
			Title:  v.Title(),
			Focus:  v.Focus,
			Zoomed: v.Zoomed,
			Panes:  v.Tree.Panes(),
			Shape:  v.Tree.Shape(),
		})
	}
	return s
}
