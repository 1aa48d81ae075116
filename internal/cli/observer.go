package cli

import (
	"context"

	"github.com/bnema/panemux/internal/domain/entity"
	"github.com/bnema/panemux/internal/logging"
)

// logObserver reports engine notifications to the context logger. The
// front-ends have no real pane content, so logging is all they do with them.
type logObserver struct{}

func (logObserver) PaneOpened(ctx context.Context, viewID entity.ViewID, paneID entity.PaneID) {
	logging.FromContext(ctx).Debug().
		Str("view_id", string(viewID)).
		Str("pane_id", string(paneID)).
		Msg("pane opened")
}

func (logObserver) PaneClosed(ctx context.Context, viewID entity.ViewID, paneID entity.PaneID) {
	logging.FromContext(ctx).Debug().
		Str("view_id", string(viewID)).
		Str("pane_id", string(paneID)).
		Msg("pane closed")
}

func (logObserver) PaneResized(ctx context.Context, viewID entity.ViewID, paneID entity.PaneID, rect entity.Rect) {
	logging.FromContext(ctx).Trace().
		Str("view_id", string(viewID)).
		Str("pane_id", string(paneID)).
		Stringer("rect", rect).
		Msg("pane resized")
}

func (logObserver) FocusChanged(ctx context.Context, viewID entity.ViewID, from, to entity.PaneID) {
	logging.FromContext(ctx).Debug().
		Str("view_id", string(viewID)).
		Str("from", string(from)).
		Str("to", string(to)).
		Msg("focus changed")
}

func (logObserver) ViewChanged(ctx context.Context, from, to entity.ViewID) {
	logging.FromContext(ctx).Debug().
		Str("from", string(from)).
		Str("to", string(to)).
		Msg("view changed")
}

func (logObserver) LastPaneRemoved(ctx context.Context, viewID entity.ViewID, paneID entity.PaneID) {
	logging.FromContext(ctx).Info().
		Str("view_id", string(viewID)).
		Str("pane_id", string(paneID)).
		Msg("last pane close requested")
}
