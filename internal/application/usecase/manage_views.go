package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/panemux/internal/domain/entity"
	"github.com/bnema/panemux/internal/logging"
)

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// ManageViewsUseCase handles view lifecycle operations.
type ManageViewsUseCase struct {
	viewIDs IDGenerator
	paneIDs IDGenerator
}

// NewManageViewsUseCase creates a new view management use case.
func NewManageViewsUseCase(viewIDs, paneIDs IDGenerator) *ManageViewsUseCase {
	return &ManageViewsUseCase{
		viewIDs: viewIDs,
		paneIDs: paneIDs,
	}
}

// CreateViewInput contains parameters for creating a new view.
type CreateViewInput struct {
	Views *entity.ViewManager
	Name  string // Optional display name
	// Activate switches to the new view.
	Activate bool
}

// CreateViewOutput contains the result of view creation.
type CreateViewOutput struct {
	View *entity.View
}

// Create adds a view holding one fresh pane.
func (uc *ManageViewsUseCase) Create(ctx context.Context, input CreateViewInput) (*CreateViewOutput, error) {
	log := logging.FromContext(ctx)
	if input.Views == nil {
		return nil, fmt.Errorf("view manager is required")
	}

	viewID := entity.ViewID(uc.viewIDs())
	paneID := entity.PaneID(uc.paneIDs())
	if v, _ := input.Views.Find(viewID); v != nil {
		return nil, fmt.Errorf("view %s already exists", viewID)
	}
	if input.Views.FindPane(paneID) != nil {
		return nil, fmt.Errorf("create view: %s: %w", paneID, entity.ErrPaneExists)
	}

	v := entity.NewView(viewID, input.Name, entity.NewPane(paneID))
	input.Views.Add(v)
	if input.Activate {
		input.Views.Active = input.Views.Count() - 1
	}

	log.Info().
		Str("view_id", string(viewID)).
		Str("pane_id", string(paneID)).
		Int("views", input.Views.Count()).
		Msg("view created")

	return &CreateViewOutput{View: v}, nil
}

// Close removes a view. Closing the only view returns
// entity.ErrLastPaneRemoved and leaves it in place.
func (uc *ManageViewsUseCase) Close(ctx context.Context, views *entity.ViewManager, id entity.ViewID) error {
	log := logging.FromContext(ctx)
	if views == nil {
		return fmt.Errorf("view manager is required")
	}
	if err := views.Remove(id); err != nil {
		return fmt.Errorf("close view: %w", err)
	}
	log.Info().
		Str("view_id", string(id)).
		Int("views", views.Count()).
		Msg("view closed")
	return nil
}

// SwitchViewOutput contains the result of a view switch.
type SwitchViewOutput struct {
	From entity.ViewID
	To   entity.ViewID
}

// Switch moves the active view by step, wrapping around. A single view
// stays active.
func (uc *ManageViewsUseCase) Switch(ctx context.Context, views *entity.ViewManager, step int) (*SwitchViewOutput, error) {
	if views == nil || views.Count() == 0 {
		return nil, fmt.Errorf("view manager is required")
	}
	out := &SwitchViewOutput{From: views.ActiveView().ID}
	views.Switch(step)
	out.To = views.ActiveView().ID

	logging.FromContext(ctx).Debug().
		Int("step", step).
		Str("from", string(out.From)).
		Str("to", string(out.To)).
		Msg("view switched")
	return out, nil
}
