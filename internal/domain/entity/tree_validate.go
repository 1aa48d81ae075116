package entity

import (
	"fmt"
	"math"
)

// weightTolerance bounds float drift in normalized sibling weights.
const weightTolerance = 1e-6

// Validate checks the structural invariants of the tree:
//   - every container has at least two children
//   - no container directly holds a container of the same direction
//   - proportional sibling weights sum to 1 and at least one sibling is proportional
//   - parent links and the pane index agree with the child lists
func (t *Tree) Validate() error {
	if t.root == NoNode || int(t.root) >= len(t.nodes) || t.nodes[t.root].free {
		return fmt.Errorf("root %d: %w", t.root, ErrInvalidTree)
	}
	if t.nodes[t.root].parent != NoNode {
		return fmt.Errorf("root %d has parent %d: %w", t.root, t.nodes[t.root].parent, ErrInvalidTree)
	}

	seen := make(map[PaneID]bool, len(t.index))
	var check func(NodeIndex) error
	check = func(n NodeIndex) error {
		nd := t.nodes[n]
		if nd.free {
			return fmt.Errorf("node %d is free but reachable: %w", n, ErrInvalidTree)
		}
		switch nd.kind {
		case KindPane:
			if nd.pane == nil {
				return fmt.Errorf("leaf %d has no pane: %w", n, ErrInvalidTree)
			}
			if seen[nd.pane.ID] {
				return fmt.Errorf("pane %s appears twice: %w", nd.pane.ID, ErrInvalidTree)
			}
			seen[nd.pane.ID] = true
			if idx, ok := t.index[nd.pane.ID]; !ok || idx != n {
				return fmt.Errorf("pane %s index mismatch: %w", nd.pane.ID, ErrInvalidTree)
			}
		case KindSplit:
			if len(nd.children) < 2 {
				return fmt.Errorf("container %d has %d children: %w", n, len(nd.children), ErrInvalidTree)
			}
			sum := 0.0
			proportional := 0
			for _, c := range nd.children {
				child := t.nodes[c]
				if child.parent != n {
					return fmt.Errorf("node %d parent is %d, want %d: %w", c, child.parent, n, ErrInvalidTree)
				}
				if child.kind == KindSplit && child.dir == nd.dir {
					return fmt.Errorf("container %d nests same-direction container %d: %w", n, c, ErrInvalidTree)
				}
				if !child.sizing.IsFixed() {
					if child.sizing.Weight < 0 {
						return fmt.Errorf("node %d has negative weight: %w", c, ErrInvalidTree)
					}
					sum += child.sizing.Weight
					proportional++
				}
				if err := check(c); err != nil {
					return err
				}
			}
			if proportional == 0 {
				return fmt.Errorf("container %d has no proportional child: %w", n, ErrInvalidTree)
			}
			if math.Abs(sum-1) > weightTolerance {
				return fmt.Errorf("container %d weights sum to %g: %w", n, sum, ErrInvalidTree)
			}
		default:
			return fmt.Errorf("node %d has unknown kind %d: %w", n, nd.kind, ErrInvalidTree)
		}
		return nil
	}
	if err := check(t.root); err != nil {
		return err
	}
	if len(seen) != len(t.index) {
		return fmt.Errorf("index holds %d panes, tree holds %d: %w", len(t.index), len(seen), ErrInvalidTree)
	}
	return nil
}

// ValidateLayout checks that the pane rectangles of l exactly tile its
// bounds: every rectangle lies inside the bounds, no two overlap, and
// together they cover every cell. Every pane of t must be laid out, and
// when the bounds can hold every pane at minSize, none may be smaller.
func (t *Tree) ValidateLayout(l *Layout, minSize Size) error {
	if len(l.Panes) != t.Len() {
		return fmt.Errorf("layout holds %d panes, tree holds %d: %w", len(l.Panes), t.Len(), ErrInvalidTree)
	}
	enforce := t.Fits(l.Bounds, minSize)
	area := 0
	for i, a := range l.Panes {
		if !t.Has(a.PaneID) {
			return fmt.Errorf("layout pane %s is not in the tree: %w", a.PaneID, ErrInvalidTree)
		}
		if a.W < 0 || a.H < 0 {
			return fmt.Errorf("pane %s has negative size %s: %w", a.PaneID, a.Rect, ErrInvalidTree)
		}
		if enforce && (a.W < minSize.W || a.H < minSize.H) {
			return fmt.Errorf("pane %s at %s is below the %dx%d minimum: %w",
				a.PaneID, a.Rect, minSize.W, minSize.H, ErrInvalidTree)
		}
		if a.Empty() {
			continue
		}
		if a.X < l.Bounds.X || a.Y < l.Bounds.Y || a.Right() > l.Bounds.Right() || a.Bottom() > l.Bounds.Bottom() {
			return fmt.Errorf("pane %s at %s escapes bounds %s: %w", a.PaneID, a.Rect, l.Bounds, ErrInvalidTree)
		}
		for _, b := range l.Panes[i+1:] {
			if a.Intersects(b.Rect) {
				return fmt.Errorf("panes %s and %s overlap: %w", a.PaneID, b.PaneID, ErrInvalidTree)
			}
		}
		area += a.Area()
	}
	if area != l.Bounds.Area() {
		return fmt.Errorf("panes cover %d of %d cells: %w", area, l.Bounds.Area(), ErrInvalidTree)
	}
	return nil
}
