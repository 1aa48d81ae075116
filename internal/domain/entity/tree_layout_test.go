package entity

import (
	"errors"
	"testing"
)

func TestTree_Compute(t *testing.T) {
	tests := []struct {
		name   string
		build  func(t *testing.T, tree *Tree)
		bounds Rect
		want   map[PaneID]Rect
	}{
		{
			name:   "single pane fills bounds",
			build:  func(t *testing.T, tree *Tree) {},
			bounds: NewRect(80, 24),
			want:   map[PaneID]Rect{"p0": {0, 0, 80, 24}},
		},
		{
			name: "vertical split of 80x24",
			build: func(t *testing.T, tree *Tree) {
				mustSplit(t, tree, "p0", SplitVertical, "p1", SplitOptions{})
			},
			bounds: NewRect(80, 24),
			want: map[PaneID]Rect{
				"p0": {0, 0, 80, 12},
				"p1": {0, 12, 80, 12},
			},
		},
		{
			name: "three way horizontal split of 80 columns",
			build: func(t *testing.T, tree *Tree) {
				mustSplit(t, tree, "p0", SplitHorizontal, "p1", SplitOptions{})
				mustSplit(t, tree, "p1", SplitHorizontal, "p2", SplitOptions{})
			},
			bounds: NewRect(80, 24),
			want: map[PaneID]Rect{
				"p0": {0, 0, 27, 24},
				"p1": {27, 0, 27, 24},
				"p2": {54, 0, 26, 24},
			},
		},
		{
			name: "nested split inherits cross axis",
			build: func(t *testing.T, tree *Tree) {
				mustSplit(t, tree, "p0", SplitHorizontal, "p1", SplitOptions{})
				mustSplit(t, tree, "p1", SplitVertical, "p2", SplitOptions{})
			},
			bounds: Rect{X: 2, Y: 1, W: 81, H: 25},
			want: map[PaneID]Rect{
				"p0": {2, 1, 41, 25},
				"p1": {43, 1, 40, 13},
				"p2": {43, 14, 40, 12},
			},
		},
		{
			name: "fixed pane takes its size first",
			build: func(t *testing.T, tree *Tree) {
				mustSplit(t, tree, "p0", SplitVertical, "status", SplitOptions{Fixed: 1})
			},
			bounds: NewRect(80, 24),
			want: map[PaneID]Rect{
				"p0":     {0, 0, 80, 23},
				"status": {0, 23, 80, 1},
			},
		},
		{
			name: "fixed pane shrinks to leave room for minimum",
			build: func(t *testing.T, tree *Tree) {
				mustSplit(t, tree, "p0", SplitVertical, "p1", SplitOptions{Fixed: 3})
			},
			bounds: NewRect(10, 2),
			want: map[PaneID]Rect{
				"p0": {0, 0, 10, 1},
				"p1": {0, 1, 10, 1},
			},
		},
		{
			name: "too small degrades to empty panes",
			build: func(t *testing.T, tree *Tree) {
				mustSplit(t, tree, "p0", SplitHorizontal, "p1", SplitOptions{})
				mustSplit(t, tree, "p1", SplitHorizontal, "p2", SplitOptions{})
			},
			bounds: NewRect(2, 3),
			want: map[PaneID]Rect{
				"p0": {0, 0, 1, 3},
				"p1": {1, 0, 1, 3},
				"p2": {2, 0, 0, 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := NewTree(NewPane("p0"))
			tt.build(t, tree)

			l := tree.Compute(tt.bounds, DefaultMinSize)
			if len(l.Panes) != len(tt.want) {
				t.Fatalf("len(Panes) = %d, want %d", len(l.Panes), len(tt.want))
			}
			for id, want := range tt.want {
				got, ok := l.Rect(id)
				if !ok {
					t.Fatalf("pane %s missing from layout", id)
				}
				if got != want {
					t.Fatalf("Rect(%s) = %v, want %v", id, got, want)
				}
			}
			if err := tree.ValidateLayout(l, DefaultMinSize); err != nil {
				t.Fatalf("ValidateLayout() = %v", err)
			}
		})
	}
}

func TestTree_Compute_EnforcesMinimum(t *testing.T) {
	tree := NewTree(NewPane("p0"))
	mustSplit(t, tree, "p0", SplitHorizontal, "p1", SplitOptions{})
	mustSplit(t, tree, "p1", SplitHorizontal, "p2", SplitOptions{})
	for id, w := range map[PaneID]float64{"p0": 0.98, "p1": 0.01, "p2": 0.01} {
		n, _ := tree.Lookup(id)
		tree.SetSizing(n, Proportional(w))
	}

	l := tree.Compute(NewRect(10, 4), DefaultMinSize)
	want := []int{8, 1, 1}
	for i, pr := range l.Panes {
		if pr.W != want[i] {
			t.Fatalf("width(%s) = %d, want %d", pr.PaneID, pr.W, want[i])
		}
	}

	l = tree.Compute(NewRect(20, 4), Size{W: 4, H: 1})
	want = []int{12, 4, 4}
	for i, pr := range l.Panes {
		if pr.W != want[i] {
			t.Fatalf("min 4: width(%s) = %d, want %d", pr.PaneID, pr.W, want[i])
		}
	}
}

func TestTree_Fits(t *testing.T) {
	tree := NewTree(NewPane("p0"))
	mustSplit(t, tree, "p0", SplitHorizontal, "p1", SplitOptions{})
	mustSplit(t, tree, "p1", SplitVertical, "p2", SplitOptions{})

	tests := []struct {
		bounds Rect
		min    Size
		want   bool
	}{
		{NewRect(2, 2), DefaultMinSize, true},
		{NewRect(1, 2), DefaultMinSize, false},
		{NewRect(2, 1), DefaultMinSize, false},
		{NewRect(8, 4), Size{W: 4, H: 2}, true},
		{NewRect(8, 3), Size{W: 4, H: 2}, false},
	}
	for _, tt := range tests {
		if got := tree.Fits(tt.bounds, tt.min); got != tt.want {
			t.Errorf("Fits(%s, %v) = %v, want %v", tt.bounds, tt.min, got, tt.want)
		}
	}
}

func TestTree_ValidateLayout_RejectsUndersizedPanes(t *testing.T) {
	tree := NewTree(NewPane("p0"))
	mustSplit(t, tree, "p0", SplitVertical, "p1", SplitOptions{})

	l := &Layout{
		Bounds: NewRect(80, 4),
		Panes: []PaneRect{
			{PaneID: "p0", Rect: Rect{0, 0, 80, 4}},
			{PaneID: "p1", Rect: Rect{0, 4, 80, 0}},
		},
	}
	if err := tree.ValidateLayout(l, DefaultMinSize); !errors.Is(err, ErrInvalidTree) {
		t.Fatalf("ValidateLayout() = %v, want ErrInvalidTree", err)
	}

	// The same degenerate layout is accepted once the bounds cannot hold
	// both panes at their minimum.
	l.Bounds = NewRect(80, 1)
	l.Panes[0].H = 1
	l.Panes[1].Y = 1
	if err := tree.ValidateLayout(l, DefaultMinSize); err != nil {
		t.Fatalf("ValidateLayout() on too small bounds = %v", err)
	}

	l = tree.Compute(NewRect(80, 6), Size{W: 1, H: 3})
	if err := tree.ValidateLayout(l, Size{W: 1, H: 3}); err != nil {
		t.Fatalf("ValidateLayout() on a layout that just fits = %v", err)
	}
}

func TestTree_Arrange_CachesRects(t *testing.T) {
	tree := NewTree(NewPane("p0"))
	mustSplit(t, tree, "p0", SplitVertical, "p1", SplitOptions{})

	tree.Arrange(NewRect(80, 24), DefaultMinSize)
	p1, _ := tree.Pane("p1")
	if want := (Rect{0, 12, 80, 12}); p1.Rect != want {
		t.Fatalf("p1.Rect = %v, want %v", p1.Rect, want)
	}
}

func TestLayout_PaneAt(t *testing.T) {
	tree := NewTree(NewPane("p0"))
	mustSplit(t, tree, "p0", SplitHorizontal, "p1", SplitOptions{})
	l := tree.Compute(NewRect(80, 24), DefaultMinSize)

	tests := []struct {
		x, y int
		want PaneID
		ok   bool
	}{
		{0, 0, "p0", true},
		{39, 23, "p0", true},
		{40, 0, "p1", true},
		{79, 23, "p1", true},
		{80, 0, "", false},
		{-1, 5, "", false},
	}
	for _, tt := range tests {
		got, ok := l.PaneAt(tt.x, tt.y)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("PaneAt(%d, %d) = %s, %v, want %s, %v", tt.x, tt.y, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRect_Geometry(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 40, H: 12}
	b := Rect{X: 40, Y: 6, W: 40, H: 12}

	if got := a.Overlap(b, AxisY); got != 6 {
		t.Fatalf("Overlap(y) = %d, want 6", got)
	}
	if got := a.Overlap(b, AxisX); got != 0 {
		t.Fatalf("Overlap(x) = %d, want 0", got)
	}
	if a.Intersects(b) {
		t.Fatal("adjacent rects should not intersect")
	}
	if got := b.DoubleCenter(AxisY); got != 24 {
		t.Fatalf("DoubleCenter(y) = %d, want 24", got)
	}
	if got := a.Slice(AxisX, 10, 5); got != (Rect{X: 10, Y: 0, W: 5, H: 12}) {
		t.Fatalf("Slice() = %v", got)
	}
}
