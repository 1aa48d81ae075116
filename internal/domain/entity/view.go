package entity

import "fmt"

// ViewID uniquely identifies a view.
type ViewID string

// View is an independent pane tree with its own focus, analogous to a tab.
type View struct {
	ID   ViewID
	Name string
	Tree *Tree
	// Focus always names a pane of Tree.
	Focus PaneID
	// Zoomed, when set, covers the whole bounds until the next structural change.
	Zoomed PaneID

	// recent holds previously focused panes, most recent first.
	recent []PaneID

	layout      *Layout
	layoutStale bool
}

// NewView creates a view holding a single pane.
func NewView(id ViewID, name string, first *Pane) *View {
	return &View{
		ID:          id,
		Name:        name,
		Tree:        NewTree(first),
		Focus:       first.ID,
		layoutStale: true,
	}
}

// Title returns the display name, falling back to the identifier.
func (v *View) Title() string {
	if v.Name != "" {
		return v.Name
	}
	return string(v.ID)
}

// SetFocus moves focus and records the previous pane in the history.
func (v *View) SetFocus(id PaneID) error {
	if !v.Tree.Has(id) {
		return fmt.Errorf("focus %s: %w", id, ErrInvalidTarget)
	}
	if id == v.Focus {
		return nil
	}
	v.touch(v.Focus)
	v.Focus = id
	return nil
}

func (v *View) touch(id PaneID) {
	out := v.recent[:0:0]
	out = append(out, id)
	for _, r := range v.recent {
		if r != id {
			out = append(out, r)
		}
	}
	v.recent = out
}

// Forget drops a removed pane from the focus history.
func (v *View) Forget(id PaneID) {
	out := v.recent[:0:0]
	for _, r := range v.recent {
		if r != id {
			out = append(out, r)
		}
	}
	v.recent = out
}

// RecentRank returns how recently a pane held focus: 0 for the most recent
// previous focus, larger for older ones, and -1 if it never did.
func (v *View) RecentRank(id PaneID) int {
	for i, r := range v.recent {
		if r == id {
			return i
		}
	}
	return -1
}

// Layout returns the cached layout, or nil when it must be recomputed.
func (v *View) Layout() *Layout {
	if v.layoutStale {
		return nil
	}
	return v.layout
}

// Relayout recomputes the layout for bounds and caches it. When a pane is
// zoomed it alone covers the bounds; the tiled rectangles stay cached on
// the other panes.
func (v *View) Relayout(bounds Rect, minSize Size) *Layout {
	l := v.Tree.Arrange(bounds, minSize)
	if v.Zoomed != "" && v.Tree.Has(v.Zoomed) {
		l = &Layout{
			Bounds: bounds,
			Panes:  []PaneRect{{PaneID: v.Zoomed, Rect: bounds}},
			Zoomed: v.Zoomed,
		}
	}
	v.layout = l
	v.layoutStale = false
	return l
}

// Invalidate marks the cached layout as stale.
func (v *View) Invalidate() { v.layoutStale = true }

// TiledLayout computes the un-zoomed layout without touching the cache.
func (v *View) TiledLayout(bounds Rect, minSize Size) *Layout {
	return v.Tree.Compute(bounds, minSize)
}

// Clone returns a deep copy of the view.
func (v *View) Clone() *View {
	c := *v
	c.Tree = v.Tree.Clone()
	c.recent = append([]PaneID(nil), v.recent...)
	return &c
}

// ViewManager manages the ordered collection of views and the active one.
type ViewManager struct {
	Views  []*View
	Active int
}

// NewViewManager creates a manager holding a single view.
func NewViewManager(first *View) *ViewManager {
	return &ViewManager{Views: []*View{first}}
}

// ActiveView returns the active view.
func (vm *ViewManager) ActiveView() *View {
	if len(vm.Views) == 0 {
		return nil
	}
	return vm.Views[vm.Active]
}

// Count returns the number of views.
func (vm *ViewManager) Count() int { return len(vm.Views) }

// Find returns the view with the given identifier and its position.
func (vm *ViewManager) Find(id ViewID) (*View, int) {
	for i, v := range vm.Views {
		if v.ID == id {
			return v, i
		}
	}
	return nil, -1
}

// FindPane returns the view that owns the pane.
func (vm *ViewManager) FindPane(id PaneID) *View {
	for _, v := range vm.Views {
		if v.Tree.Has(id) {
			return v
		}
	}
	return nil
}

// Add appends a view.
func (vm *ViewManager) Add(v *View) {
	vm.Views = append(vm.Views, v)
}

// Replace swaps the view at position i, used to commit a mutated clone.
func (vm *ViewManager) Replace(i int, v *View) {
	vm.Views[i] = v
}

// Remove deletes a view. The active index keeps pointing at the same view.
// When the active view itself goes, the one that slides into its position
// becomes active, or the new last view if it was last.
func (vm *ViewManager) Remove(id ViewID) error {
	_, i := vm.Find(id)
	if i < 0 {
		return fmt.Errorf("view %s: %w", id, ErrInvalidTarget)
	}
	if len(vm.Views) == 1 {
		return fmt.Errorf("view %s: %w", id, ErrLastPaneRemoved)
	}
	vm.Views = append(vm.Views[:i:i], vm.Views[i+1:]...)
	if i < vm.Active || vm.Active >= len(vm.Views) {
		vm.Active--
	}
	if vm.Active < 0 {
		vm.Active = 0
	}
	return nil
}

// Switch moves the active index by step, wrapping around.
func (vm *ViewManager) Switch(step int) {
	n := len(vm.Views)
	if n <= 1 {
		return
	}
	vm.Active = ((vm.Active+step)%n + n) % n
}

// Activate makes the view at position i active.
func (vm *ViewManager) Activate(i int) error {
	if i < 0 || i >= len(vm.Views) {
		return fmt.Errorf("view index %d: %w", i, ErrInvalidTarget)
	}
	vm.Active = i
	return nil
}
