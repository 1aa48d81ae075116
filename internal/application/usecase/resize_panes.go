package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/panemux/internal/domain/entity"
	"github.com/bnema/panemux/internal/logging"
)

// ResizePaneInput contains parameters for moving a pane boundary.
type ResizePaneInput struct {
	View   *entity.View
	Pane   entity.PaneID // Defaults to the focused pane
	Bounds entity.Rect   // Bounds the view is laid out in
	// Direction is the way the boundary moves. Right moves the pane's right
	// edge right when it has one, otherwise its left edge.
	Direction entity.Direction
	Delta     int // Cells per repetition; negative moves the other way
	Count     int // Repetitions, at least 1
}

// ResizePaneOutput contains the result of a resize.
type ResizePaneOutput struct {
	// Applied is the total number of cells the boundary moved.
	Applied int
}

// Resize moves the boundary between the pane (or its enclosing container)
// and its neighbour along the direction's axis. The boundary comes from the
// nearest ancestor split on that axis that has an edge on the side facing
// direction; without one, the nearest ancestor's opposite edge is used.
//
// Arithmetic happens in cells on the current allocation and is written
// back as weights, so one cell of delta always moves the boundary one cell.
// Steps are clamped to keep the shrinking side at its minimum; a clamped
// resize is still applied and reported as *entity.MinimumSizeError.
func (uc *ManagePanesUseCase) Resize(ctx context.Context, input ResizePaneInput) (*ResizePaneOutput, error) {
	if input.View == nil {
		return nil, fmt.Errorf("view is required")
	}
	v := input.View
	paneID := input.Pane
	if paneID == "" {
		paneID = v.Focus
	}
	log := logging.FromContext(logging.WithPaneID(ctx, string(paneID)))
	leaf, err := v.Tree.Lookup(paneID)
	if err != nil {
		return nil, fmt.Errorf("resize pane: %w", err)
	}

	dir, delta := input.Direction, input.Delta
	if delta < 0 {
		dir, delta = dir.Opposite(), -delta
	}
	count := max(input.Count, 1)
	axis := dir.Axis()

	container, boundary, ok := findResizeBoundary(v.Tree, leaf, dir)
	if !ok {
		log.Debug().
			Str("direction", dir.String()).
			Msg("no split on resize axis")
		return nil, fmt.Errorf("resize pane %s %s: %w", paneID, dir, entity.ErrNoApplicableSplit)
	}
	if delta == 0 {
		return &ResizePaneOutput{}, nil
	}

	length := containerLength(v.Tree, container, input.Bounds, uc.opts.MinSize)
	children := v.Tree.Children(container)
	mins := make([]int, len(children))
	for i, c := range children {
		mins[i] = v.Tree.MinExtent(c, axis, uc.opts.MinSize)
	}

	// Moving the boundary forward grows the child before it.
	grow, shrink := boundary, boundary+1
	if !dir.Forward() {
		grow, shrink = shrink, grow
	}

	requested := delta * count
	applied := 0
	for range count {
		sizes := v.Tree.Allocation(container, length, uc.opts.MinSize)
		step := min(delta, max(sizes[shrink]-mins[shrink], 0))
		if step == 0 {
			break
		}
		sizes[grow] += step
		sizes[shrink] -= step
		applySizes(v.Tree, children, sizes)
		applied += step
		if step < delta {
			break
		}
	}

	if applied > 0 {
		v.Invalidate()
	}
	log.Debug().
		Str("direction", dir.String()).
		Int("requested", requested).
		Int("applied", applied).
		Int("container_length", length).
		Msg("pane resized")

	out := &ResizePaneOutput{Applied: applied}
	if applied < requested {
		return out, &entity.MinimumSizeError{PaneID: paneID, Requested: requested, Applied: applied}
	}
	return out, nil
}

// findResizeBoundary returns the container and the index of the child
// before the boundary that moves.
func findResizeBoundary(tree *entity.Tree, leaf entity.NodeIndex, dir entity.Direction) (entity.NodeIndex, int, bool) {
	axis := dir.Axis()
	nearest := entity.NoNode
	nearestBoundary := 0

	n := leaf
	for {
		container, child, ok := tree.NearestSplit(n, axis)
		if !ok {
			break
		}
		pos := tree.IndexInParent(child)
		last := len(tree.Children(container)) - 1
		if dir.Forward() && pos < last {
			return container, pos, true
		}
		if !dir.Forward() && pos > 0 {
			return container, pos - 1, true
		}
		if nearest == entity.NoNode {
			nearest = container
			nearestBoundary = pos
			if dir.Forward() {
				nearestBoundary = pos - 1
			}
		}
		n = container
	}
	if nearest == entity.NoNode {
		return entity.NoNode, 0, false
	}
	return nearest, nearestBoundary, true
}

// containerLength returns the length of container along its split axis when
// the tree is laid out in bounds.
func containerLength(tree *entity.Tree, container entity.NodeIndex, bounds entity.Rect, minSize entity.Size) int {
	l := tree.Compute(bounds, minSize)
	for _, s := range l.Splits {
		if s.Node == container {
			return s.Length(s.Direction.Axis())
		}
	}
	return 0
}

// applySizes writes cell sizes back to the children: fixed children keep
// their cell count, proportional children get their share of the flexible
// cells as weight.
func applySizes(tree *entity.Tree, children []entity.NodeIndex, sizes []int) {
	flex := 0
	for i, c := range children {
		if !tree.Sizing(c).IsFixed() {
			flex += sizes[i]
		}
	}
	for i, c := range children {
		s := tree.Sizing(c)
		switch {
		case s.IsFixed():
			tree.SetSizing(c, entity.FixedSize(max(sizes[i], 1)))
		case flex > 0:
			tree.SetSizing(c, entity.Proportional(float64(sizes[i])/float64(flex)))
		}
	}
}
