package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTarget is returned when a referenced pane or view does not exist.
	ErrInvalidTarget = errors.New("invalid target")
	// ErrPaneExists is returned when a new pane reuses an identifier already in the tree.
	ErrPaneExists = errors.New("pane already exists")
	// ErrNoApplicableSplit is returned when no split container matches the requested axis.
	ErrNoApplicableSplit = errors.New("no applicable split")
	// ErrMinimumSize is matched by MinimumSizeError.
	ErrMinimumSize = errors.New("minimum size violation")
	// ErrLastPaneRemoved signals that the final pane was asked to go away.
	ErrLastPaneRemoved = errors.New("last pane removed")
	// ErrInvalidTree is returned by Validate when a structural invariant is broken.
	ErrInvalidTree = errors.New("invalid layout tree")
)

// MinimumSizeError reports a resize that was clamped to keep panes at or
// above their minimum size. The clamped resize has been applied.
type MinimumSizeError struct {
	PaneID    PaneID
	Requested int
	Applied   int
}

func (e *MinimumSizeError) Error() string {
	return fmt.Sprintf("resize of pane %s clamped: requested %d cells, applied %d",
		e.PaneID, e.Requested, e.Applied)
}

// Is lets errors.Is(err, ErrMinimumSize) match.
func (e *MinimumSizeError) Is(target error) bool {
	return target == ErrMinimumSize
}
