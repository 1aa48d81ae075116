package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/panemux/internal/domain/entity"
	"github.com/bnema/panemux/internal/logging"
)

// PaneOptions tunes pane layout behaviour.
type PaneOptions struct {
	// MinSize is the smallest size a pane may be resized to.
	MinSize entity.Size
	// PreferRecent breaks directional focus ties in favour of the pane
	// focused most recently.
	PreferRecent bool
}

// DefaultPaneOptions returns the engine defaults.
func DefaultPaneOptions() PaneOptions {
	return PaneOptions{
		MinSize:      entity.DefaultMinSize,
		PreferRecent: true,
	}
}

// ManagePanesUseCase handles pane tree operations within a view.
type ManagePanesUseCase struct {
	idGenerator IDGenerator
	opts        PaneOptions
}

// NewManagePanesUseCase creates a new pane management use case.
func NewManagePanesUseCase(idGenerator IDGenerator, opts PaneOptions) *ManagePanesUseCase {
	if opts.MinSize.W < 1 {
		opts.MinSize.W = 1
	}
	if opts.MinSize.H < 1 {
		opts.MinSize.H = 1
	}
	return &ManagePanesUseCase{
		idGenerator: idGenerator,
		opts:        opts,
	}
}

// Options returns the options the use case was built with.
func (uc *ManagePanesUseCase) Options() PaneOptions { return uc.opts }

// SplitPaneInput contains parameters for splitting a pane.
type SplitPaneInput struct {
	View      *entity.View
	Target    entity.PaneID // Defaults to the focused pane
	Direction entity.SplitDirection
	Placement entity.Placement
	Fixed     int           // Absolute size along the split axis, 0 for proportional
	NewPaneID entity.PaneID // Optional, generated when empty
	// Bounds is the area the view is laid out in. When set, a split that
	// would leave a pane below the minimum size is rejected.
	Bounds entity.Rect
}

// SplitPaneOutput contains the result of a split operation.
type SplitPaneOutput struct {
	NewPaneID entity.PaneID
}

// Split creates a new pane next to the target and focuses it.
func (uc *ManagePanesUseCase) Split(ctx context.Context, input SplitPaneInput) (*SplitPaneOutput, error) {
	if input.View == nil {
		return nil, fmt.Errorf("view is required")
	}
	v := input.View
	target := input.Target
	if target == "" {
		target = v.Focus
	}
	if input.Fixed < 0 {
		return nil, fmt.Errorf("fixed size %d must not be negative", input.Fixed)
	}
	log := logging.FromContext(logging.WithPaneID(ctx, string(target)))

	id := input.NewPaneID
	if id == "" {
		id = entity.PaneID(uc.idGenerator())
	}
	log.Debug().
		Str("direction", input.Direction.String()).
		Str("new_pane", string(id)).
		Int("fixed", input.Fixed).
		Msg("splitting pane")

	tree := v.Tree.Clone()
	err := tree.Split(target, input.Direction, entity.NewPane(id), entity.SplitOptions{
		Placement: input.Placement,
		Fixed:     input.Fixed,
	})
	if err != nil {
		return nil, fmt.Errorf("split pane %s: %w", target, err)
	}
	if !input.Bounds.Empty() && !tree.Fits(input.Bounds, uc.opts.MinSize) {
		log.Debug().
			Stringer("bounds", input.Bounds).
			Msg("split rejected, no room for another pane")
		return nil, fmt.Errorf("split pane %s: %s cannot hold another %dx%d pane: %w",
			target, input.Bounds, uc.opts.MinSize.W, uc.opts.MinSize.H, entity.ErrMinimumSize)
	}
	v.Tree = tree

	v.Zoomed = ""
	if err := v.SetFocus(id); err != nil {
		return nil, err
	}
	v.Invalidate()

	log.Info().
		Str("new_pane", string(id)).
		Str("shape", v.Tree.Shape()).
		Msg("pane split")

	return &SplitPaneOutput{NewPaneID: id}, nil
}

// ClosePaneOutput contains the result of closing a pane.
type ClosePaneOutput struct {
	Successor entity.PaneID
	// FocusMoved is set when the closed pane held focus.
	FocusMoved bool
}

// Close removes a pane from the view and flattens the tree. Closing the
// only pane of a view returns entity.ErrLastPaneRemoved and leaves the view
// untouched; the caller decides what happens to the view.
func (uc *ManagePanesUseCase) Close(ctx context.Context, v *entity.View, paneID entity.PaneID) (*ClosePaneOutput, error) {
	if v == nil {
		return nil, fmt.Errorf("view is required")
	}
	if paneID == "" {
		paneID = v.Focus
	}
	log := logging.FromContext(logging.WithPaneID(ctx, string(paneID)))

	successor, err := v.Tree.Remove(paneID)
	if err != nil {
		if errors.Is(err, entity.ErrLastPaneRemoved) {
			log.Debug().Msg("refusing to remove last pane of view")
		}
		return nil, fmt.Errorf("close pane %s: %w", paneID, err)
	}

	out := &ClosePaneOutput{Successor: successor}
	v.Forget(paneID)
	if v.Focus == paneID {
		// The closed pane cannot enter the history, so set focus directly.
		v.Focus = successor
		out.FocusMoved = true
	}
	v.Zoomed = ""
	v.Invalidate()

	log.Info().
		Str("successor", string(successor)).
		Str("shape", v.Tree.Shape()).
		Msg("pane closed")

	return out, nil
}

// Swap exchanges the positions of two panes. Focus follows the pane, not
// the position.
func (uc *ManagePanesUseCase) Swap(ctx context.Context, v *entity.View, a, b entity.PaneID) error {
	log := logging.FromContext(ctx)
	if v == nil {
		return fmt.Errorf("view is required")
	}
	if err := v.Tree.Swap(a, b); err != nil {
		return fmt.Errorf("swap panes %s and %s: %w", a, b, err)
	}
	v.Zoomed = ""
	v.Invalidate()

	log.Info().
		Str("a", string(a)).
		Str("b", string(b)).
		Msg("panes swapped")
	return nil
}

// Focus moves focus to a specific pane of the view.
func (uc *ManagePanesUseCase) Focus(ctx context.Context, v *entity.View, paneID entity.PaneID) error {
	if v == nil {
		return fmt.Errorf("view is required")
	}
	from := v.Focus
	if err := v.SetFocus(paneID); err != nil {
		return err
	}
	if from != paneID && v.Zoomed != "" {
		v.Zoomed = ""
		v.Invalidate()
	}
	logging.FromContext(ctx).Debug().
		Str("from", string(from)).
		Str("to", string(paneID)).
		Msg("focus set")
	return nil
}

// PaneAt returns the pane covering a cell of the layout, used for mouse
// clicks.
func (uc *ManagePanesUseCase) PaneAt(layout *entity.Layout, x, y int) (entity.PaneID, error) {
	id, ok := layout.PaneAt(x, y)
	if !ok {
		return "", fmt.Errorf("no pane at %d,%d: %w", x, y, entity.ErrInvalidTarget)
	}
	return id, nil
}

// CountPanes returns the number of panes in the view.
func (uc *ManagePanesUseCase) CountPanes(v *entity.View) int {
	if v == nil {
		return 0
	}
	return v.Tree.Len()
}
