package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/panemux/internal/domain/entity"
	"github.com/bnema/panemux/internal/logging"
)

// ToggleZoom zooms the focused pane so it covers the whole view, or
// restores the tiled layout when a pane is already zoomed. Zooming a view
// with a single pane does nothing. It reports whether a pane is zoomed
// afterwards.
func (uc *ManagePanesUseCase) ToggleZoom(ctx context.Context, v *entity.View) (bool, error) {
	log := logging.FromContext(ctx)
	if v == nil {
		return false, fmt.Errorf("view is required")
	}

	if v.Zoomed != "" {
		log.Debug().Str("pane_id", string(v.Zoomed)).Msg("unzooming pane")
		v.Zoomed = ""
		v.Invalidate()
		return false, nil
	}
	if v.Tree.Len() < 2 {
		return false, nil
	}

	v.Zoomed = v.Focus
	v.Invalidate()
	log.Debug().Str("pane_id", string(v.Zoomed)).Msg("zooming pane")
	return true, nil
}
