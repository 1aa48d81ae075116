package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/panemux/internal/domain/entity"
	"github.com/bnema/panemux/internal/logging"
)

// FocusDirectionInput contains data for geometric focus navigation.
type FocusDirectionInput struct {
	View *entity.View
	// Layout must be the view's tiled layout.
	Layout    *entity.Layout
	Direction entity.Direction
	Count     int
}

// FocusOutput contains the result of a focus move.
type FocusOutput struct {
	From  entity.PaneID
	To    entity.PaneID
	Moved int // Repetitions that changed focus
}

// FocusDirection moves focus to the nearest pane in a direction, Count
// times. Once no pane lies further in that direction, the remaining
// repetitions are no-ops.
//
// Candidates are panes whose near edge lies at or beyond the focused pane's
// far edge. Panes sharing rows (for left/right) or columns (for up/down)
// with the focused pane are preferred when any exist. The winner is then
// picked by smallest edge gap, smallest center offset on the cross axis,
// most recent focus when enabled, and finally traversal order. A diagonal
// pane is never chosen while an overlapping candidate exists, even a
// farther one.
func (uc *ManagePanesUseCase) FocusDirection(ctx context.Context, input FocusDirectionInput) (*FocusOutput, error) {
	log := logging.FromContext(ctx)
	if input.View == nil {
		return nil, fmt.Errorf("view is required")
	}
	if input.Layout == nil {
		return nil, fmt.Errorf("layout is required")
	}
	v := input.View
	out := &FocusOutput{From: v.Focus, To: v.Focus}

	for range max(input.Count, 1) {
		next, ok := uc.nearestInDirection(v, input.Layout, v.Focus, input.Direction)
		if !ok {
			break
		}
		if err := v.SetFocus(next); err != nil {
			return nil, err
		}
		out.Moved++
	}
	out.To = v.Focus

	log.Debug().
		Str("direction", input.Direction.String()).
		Str("from", string(out.From)).
		Str("to", string(out.To)).
		Int("requested", max(input.Count, 1)).
		Int("moved", out.Moved).
		Msg("directional focus")

	return out, nil
}

// navCandidate represents a pane candidate for navigation with its ranking keys.
type navCandidate struct {
	paneID  entity.PaneID
	overlap bool
	gap     int
	align   int
	recent  int
	order   int
}

func (uc *ManagePanesUseCase) better(a, b navCandidate) bool {
	if a.overlap != b.overlap {
		return a.overlap
	}
	if a.gap != b.gap {
		return a.gap < b.gap
	}
	if a.align != b.align {
		return a.align < b.align
	}
	if uc.opts.PreferRecent && a.recent != b.recent {
		return a.recent < b.recent
	}
	return a.order < b.order
}

// nearestInDirection picks the best pane in direction from the pane from.
func (uc *ManagePanesUseCase) nearestInDirection(
	v *entity.View,
	layout *entity.Layout,
	from entity.PaneID,
	dir entity.Direction,
) (entity.PaneID, bool) {
	cur, ok := layout.Rect(from)
	if !ok {
		return "", false
	}
	axis := dir.Axis()
	cross := axis.Cross()

	var best *navCandidate
	for i, pr := range layout.Panes {
		if pr.PaneID == from || pr.Empty() {
			continue
		}
		var gap int
		if dir.Forward() {
			if pr.Start(axis) < cur.End(axis) {
				continue
			}
			gap = pr.Start(axis) - cur.End(axis)
		} else {
			if pr.End(axis) > cur.Start(axis) {
				continue
			}
			gap = cur.Start(axis) - pr.End(axis)
		}

		recent := v.RecentRank(pr.PaneID)
		if recent < 0 {
			recent = len(layout.Panes)
		}
		c := navCandidate{
			paneID:  pr.PaneID,
			overlap: cur.Overlap(pr.Rect, cross) > 0,
			gap:     gap,
			align:   abs(pr.DoubleCenter(cross) - cur.DoubleCenter(cross)),
			recent:  recent,
			order:   i,
		}
		if best == nil || uc.better(c, *best) {
			best = &c
		}
	}
	if best == nil {
		return "", false
	}
	return best.paneID, true
}

// FocusNext moves focus step panes along the traversal order, wrapping at
// either end. Negative steps move backwards.
func (uc *ManagePanesUseCase) FocusNext(ctx context.Context, v *entity.View, step int) (*FocusOutput, error) {
	if v == nil {
		return nil, fmt.Errorf("view is required")
	}
	out := &FocusOutput{From: v.Focus, To: v.Focus}
	ids := v.Tree.Panes()
	n := len(ids)
	if n <= 1 || step == 0 {
		return out, nil
	}

	cur := 0
	for i, id := range ids {
		if id == v.Focus {
			cur = i
			break
		}
	}
	next := ids[((cur+step)%n+n)%n]
	if err := v.SetFocus(next); err != nil {
		return nil, err
	}
	out.To = next
	if next != out.From {
		out.Moved = 1
	}

	logging.FromContext(ctx).Debug().
		Int("step", step).
		Str("from", string(out.From)).
		Str("to", string(out.To)).
		Msg("focus next")

	return out, nil
}

// abs returns the absolute value of an integer.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
