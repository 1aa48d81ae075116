package entity

// SplitRect is the rectangle allotted to a split container.
type SplitRect struct {
	Node      NodeIndex
	Direction SplitDirection
	Rect
}

// Layout is the result of a layout pass.
type Layout struct {
	Bounds Rect
	// Panes lists pane rectangles in traversal order.
	Panes []PaneRect
	// Splits lists container rectangles in traversal order.
	Splits []SplitRect
	// Zoomed is set when a single pane covers the bounds and the rest are hidden.
	Zoomed PaneID
}

// Rect returns the rectangle assigned to a pane.
func (l *Layout) Rect(id PaneID) (Rect, bool) {
	if l == nil {
		return Rect{}, false
	}
	for _, pr := range l.Panes {
		if pr.PaneID == id {
			return pr.Rect, true
		}
	}
	return Rect{}, false
}

// PaneAt returns the pane covering cell (x, y).
func (l *Layout) PaneAt(x, y int) (PaneID, bool) {
	if l == nil {
		return "", false
	}
	for _, pr := range l.Panes {
		if pr.Contains(x, y) {
			return pr.PaneID, true
		}
	}
	return "", false
}

// Equal reports whether both layouts assign the same rectangles.
func (l *Layout) Equal(o *Layout) bool {
	if l == nil || o == nil {
		return l == o
	}
	if l.Bounds != o.Bounds || l.Zoomed != o.Zoomed || len(l.Panes) != len(o.Panes) {
		return false
	}
	for i := range l.Panes {
		if l.Panes[i] != o.Panes[i] {
			return false
		}
	}
	return true
}

// Compute runs the layout pass: it partitions bounds among the panes of t
// without modifying the tree. minSize is honoured whenever bounds are large
// enough to hold every pane at that size.
func (t *Tree) Compute(bounds Rect, minSize Size) *Layout {
	l := &Layout{
		Bounds: bounds,
		Panes:  make([]PaneRect, 0, t.Len()),
	}
	var place func(NodeIndex, Rect)
	place = func(n NodeIndex, r Rect) {
		switch t.nodes[n].kind {
		case KindPane:
			l.Panes = append(l.Panes, PaneRect{PaneID: t.nodes[n].pane.ID, Rect: r})
		case KindSplit:
			l.Splits = append(l.Splits, SplitRect{Node: n, Direction: t.nodes[n].dir, Rect: r})
			axis := t.nodes[n].dir.Axis()
			sizes := t.allocate(n, r.Length(axis), minSize)
			offset := 0
			for i, c := range t.nodes[n].children {
				place(c, r.Slice(axis, offset, sizes[i]))
				offset += sizes[i]
			}
		}
	}
	place(t.root, bounds)
	return l
}

// Arrange runs Compute and caches each pane's rectangle on the pane.
func (t *Tree) Arrange(bounds Rect, minSize Size) *Layout {
	l := t.Compute(bounds, minSize)
	for _, pr := range l.Panes {
		t.nodes[t.index[pr.PaneID]].pane.Rect = pr.Rect
	}
	return l
}

// Allocation returns the cells each child of container n receives along its
// split axis when the container is length cells long.
func (t *Tree) Allocation(n NodeIndex, length int, minSize Size) []int {
	return t.allocate(n, length, minSize)
}

// MinExtent returns the smallest length along a that the subtree at n can
// occupy without pushing a pane below minSize.
func (t *Tree) MinExtent(n NodeIndex, a Axis, minSize Size) int {
	switch t.nodes[n].kind {
	case KindPane:
		return minSize.Along(a)
	case KindSplit:
		along := t.nodes[n].dir.Axis() == a
		total := 0
		for _, c := range t.nodes[n].children {
			m := t.MinExtent(c, a, minSize)
			if along {
				total += m
			} else {
				total = max(total, m)
			}
		}
		return total
	}
	return 0
}

// Fits reports whether bounds can hold every pane at minSize or larger.
func (t *Tree) Fits(bounds Rect, minSize Size) bool {
	return t.MinExtent(t.root, AxisX, minSize) <= bounds.W &&
		t.MinExtent(t.root, AxisY, minSize) <= bounds.H
}

// allocate divides length among the children of a split node. Fixed
// children are served first, shrinking from the last one when the
// proportional children would otherwise fall below their minimum. The rest
// is shared by weight with largest-remainder rounding, then topped up to
// each child's minimum.
func (t *Tree) allocate(n NodeIndex, length int, minSize Size) []int {
	children := t.nodes[n].children
	axis := t.nodes[n].dir.Axis()
	sizes := make([]int, len(children))
	mins := make([]int, len(children))
	if length <= 0 {
		return sizes
	}

	fixedTotal, flexMin := 0, 0
	for i, c := range children {
		mins[i] = t.MinExtent(c, axis, minSize)
		if s := t.nodes[c].sizing; s.IsFixed() {
			sizes[i] = max(s.Fixed, mins[i])
			fixedTotal += sizes[i]
		} else {
			flexMin += mins[i]
		}
	}

	for i := len(children) - 1; i >= 0 && fixedTotal > length-flexMin; i-- {
		if !t.nodes[children[i]].sizing.IsFixed() {
			continue
		}
		give := min(sizes[i]-mins[i], fixedTotal-(length-flexMin))
		if give > 0 {
			sizes[i] -= give
			fixedTotal -= give
		}
	}
	if fixedTotal > length {
		// Not even the minimums fit; hand out what there is in order.
		left := length
		for i, c := range children {
			if t.nodes[c].sizing.IsFixed() {
				sizes[i] = min(sizes[i], left)
				left -= sizes[i]
			}
		}
		fixedTotal = length - left
	}

	var (
		flex     []int
		weights  []float64
		flexMins []int
	)
	for i, c := range children {
		if s := t.nodes[c].sizing; !s.IsFixed() {
			flex = append(flex, i)
			weights = append(weights, s.Weight)
			flexMins = append(flexMins, mins[i])
		}
	}
	remaining := length - fixedTotal
	if len(flex) == 0 {
		sizes[len(sizes)-1] += remaining
		return sizes
	}
	shares := EnforceMinimum(Distribute(remaining, weights), flexMins)
	for k, i := range flex {
		sizes[i] = shares[k]
	}
	return sizes
}
