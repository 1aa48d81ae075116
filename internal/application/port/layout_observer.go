package port

import (
	"context"

	"github.com/bnema/panemux/internal/domain/entity"
)

//go:generate mockgen -source=layout_observer.go -destination=mocks/mock_layout_observer.go -package=mocks

// LayoutObserver receives layout changes from the engine.
// The rendering collaborator implements it to keep pane content in step
// with the tree: start content for opened panes, conform it to resized
// rectangles, tear it down for closed panes.
type LayoutObserver interface {
	// PaneOpened is called after a pane joins a view.
	PaneOpened(ctx context.Context, viewID entity.ViewID, paneID entity.PaneID)
	// PaneClosed is called after a pane leaves a view.
	PaneClosed(ctx context.Context, viewID entity.ViewID, paneID entity.PaneID)
	// PaneResized is called for every visible pane whose rectangle changed.
	PaneResized(ctx context.Context, viewID entity.ViewID, paneID entity.PaneID, rect entity.Rect)
	// FocusChanged is called when the focused pane of the active view changes.
	FocusChanged(ctx context.Context, viewID entity.ViewID, from, to entity.PaneID)
	// ViewChanged is called when a different view becomes active.
	ViewChanged(ctx context.Context, from, to entity.ViewID)
	// LastPaneRemoved is called when the host is asked to close the final pane.
	LastPaneRemoved(ctx context.Context, viewID entity.ViewID, paneID entity.PaneID)
}
