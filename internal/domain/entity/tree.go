package entity

import (
	"fmt"
	"strings"
)

// NodeIndex addresses a node in a Tree's arena.
// Indices stay valid until the node is removed; callers outside this
// package should hold PaneIDs and resolve them through Lookup.
type NodeIndex int32

// NoNode is the parent of the root.
const NoNode NodeIndex = -1

// NodeKind tags a layout node.
type NodeKind uint8

const (
	KindPane  NodeKind = iota // Leaf holding a Pane
	KindSplit                 // Container dividing space among children
)

type node struct {
	kind   NodeKind
	parent NodeIndex
	// sizing is this node's claim inside its parent.
	sizing Sizing

	pane *Pane // KindPane

	dir      SplitDirection // KindSplit
	children []NodeIndex    // KindSplit

	free bool
}

// Tree is a pane layout tree stored in an arena of nodes.
// Every node records its parent index, so parent and sibling lookups need
// no back-pointers.
type Tree struct {
	nodes []node
	free  []NodeIndex
	root  NodeIndex
	index map[PaneID]NodeIndex
}

// NewTree creates a tree whose root is the given pane.
func NewTree(first *Pane) *Tree {
	t := &Tree{index: make(map[PaneID]NodeIndex)}
	t.root = t.alloc(node{kind: KindPane, parent: NoNode, sizing: Proportional(1), pane: first})
	t.index[first.ID] = t.root
	return t
}

func (t *Tree) alloc(n node) NodeIndex {
	if k := len(t.free); k > 0 {
		idx := t.free[k-1]
		t.free = t.free[:k-1]
		t.nodes[idx] = n
		return idx
	}
	t.nodes = append(t.nodes, n)
	return NodeIndex(len(t.nodes) - 1)
}

func (t *Tree) release(idx NodeIndex) {
	t.nodes[idx] = node{free: true, parent: NoNode}
	t.free = append(t.free, idx)
}

// Root returns the root node index.
func (t *Tree) Root() NodeIndex { return t.root }

// Len returns the number of panes.
func (t *Tree) Len() int { return len(t.index) }

// Has reports whether the pane is in the tree.
func (t *Tree) Has(id PaneID) bool {
	_, ok := t.index[id]
	return ok
}

// Lookup resolves a pane identifier to its leaf node.
func (t *Tree) Lookup(id PaneID) (NodeIndex, error) {
	idx, ok := t.index[id]
	if !ok {
		return NoNode, fmt.Errorf("pane %s: %w", id, ErrInvalidTarget)
	}
	return idx, nil
}

// Pane returns the pane with the given identifier.
func (t *Tree) Pane(id PaneID) (*Pane, bool) {
	idx, ok := t.index[id]
	if !ok {
		return nil, false
	}
	return t.nodes[idx].pane, true
}

// Kind returns the node's variant.
func (t *Tree) Kind(n NodeIndex) NodeKind { return t.nodes[n].kind }

// Parent returns the node's parent, or NoNode for the root.
func (t *Tree) Parent(n NodeIndex) NodeIndex { return t.nodes[n].parent }

// Direction returns a split node's direction.
func (t *Tree) Direction(n NodeIndex) SplitDirection { return t.nodes[n].dir }

// Sizing returns the node's claim inside its parent.
func (t *Tree) Sizing(n NodeIndex) Sizing { return t.nodes[n].sizing }

// SetSizing overwrites the node's claim inside its parent.
// Callers are responsible for keeping sibling weights normalized.
func (t *Tree) SetSizing(n NodeIndex, s Sizing) { t.nodes[n].sizing = s }

// PaneAtNode returns the pane held by a leaf node.
func (t *Tree) PaneAtNode(n NodeIndex) *Pane { return t.nodes[n].pane }

// Children returns a copy of a split node's children.
func (t *Tree) Children(n NodeIndex) []NodeIndex {
	return append([]NodeIndex(nil), t.nodes[n].children...)
}

// IndexInParent returns the node's position among its siblings, or -1 for the root.
func (t *Tree) IndexInParent(n NodeIndex) int {
	p := t.nodes[n].parent
	if p == NoNode {
		return -1
	}
	for i, c := range t.nodes[p].children {
		if c == n {
			return i
		}
	}
	return -1
}

// Walk visits nodes depth-first, children in order. Returning false from fn
// skips the node's subtree.
func (t *Tree) Walk(fn func(NodeIndex) bool) {
	var visit func(NodeIndex)
	visit = func(n NodeIndex) {
		if !fn(n) {
			return
		}
		switch t.nodes[n].kind {
		case KindPane:
		case KindSplit:
			for _, c := range t.nodes[n].children {
				visit(c)
			}
		}
	}
	visit(t.root)
}

// Panes returns pane identifiers in depth-first, left-to-right order.
func (t *Tree) Panes() []PaneID {
	ids := make([]PaneID, 0, len(t.index))
	t.Walk(func(n NodeIndex) bool {
		if t.nodes[n].kind == KindPane {
			ids = append(ids, t.nodes[n].pane.ID)
		}
		return true
	})
	return ids
}

// FirstPane returns the first leaf below n in traversal order.
func (t *Tree) FirstPane(n NodeIndex) PaneID {
	for {
		switch t.nodes[n].kind {
		case KindPane:
			return t.nodes[n].pane.ID
		case KindSplit:
			n = t.nodes[n].children[0]
		}
	}
}

// LastPane returns the last leaf below n in traversal order.
func (t *Tree) LastPane(n NodeIndex) PaneID {
	for {
		switch t.nodes[n].kind {
		case KindPane:
			return t.nodes[n].pane.ID
		case KindSplit:
			c := t.nodes[n].children
			n = c[len(c)-1]
		}
	}
}

// NearestSplit returns the closest ancestor of n whose split axis is a.
func (t *Tree) NearestSplit(n NodeIndex, a Axis) (container, child NodeIndex, ok bool) {
	child = n
	for p := t.nodes[n].parent; p != NoNode; p = t.nodes[p].parent {
		if t.nodes[p].dir.Axis() == a {
			return p, child, true
		}
		child = p
	}
	return NoNode, NoNode, false
}

// Split places newPane next to target along dir.
//
// When the target already sits in a container of the same direction, the
// new pane joins that container beside the target and every proportional
// sibling is reweighted equally. Otherwise the target's leaf is replaced by
// a new container holding the target and the new pane at half weight each.
func (t *Tree) Split(target PaneID, dir SplitDirection, newPane *Pane, opts SplitOptions) error {
	leaf, err := t.Lookup(target)
	if err != nil {
		return err
	}
	if newPane == nil || newPane.ID == "" {
		return fmt.Errorf("split %s: empty pane id: %w", target, ErrInvalidTarget)
	}
	if t.Has(newPane.ID) {
		return fmt.Errorf("split %s: %s: %w", target, newPane.ID, ErrPaneExists)
	}

	sizing := Proportional(0.5)
	if opts.Fixed > 0 {
		sizing = FixedSize(opts.Fixed)
	}

	parent := t.nodes[leaf].parent
	if parent != NoNode && t.nodes[parent].dir == dir {
		pos := t.IndexInParent(leaf)
		if opts.Placement == PlaceAfter {
			pos++
		}
		added := t.alloc(node{kind: KindPane, parent: parent, sizing: sizing, pane: newPane})
		t.index[newPane.ID] = added
		t.insertChild(parent, pos, added)
		t.equalizeWeights(parent)
		return nil
	}

	container := t.alloc(node{
		kind:   KindSplit,
		parent: parent,
		sizing: t.nodes[leaf].sizing,
		dir:    dir,
	})
	added := t.alloc(node{kind: KindPane, parent: container, sizing: sizing, pane: newPane})
	t.index[newPane.ID] = added

	t.replaceChild(parent, leaf, container)
	t.nodes[leaf].parent = container
	t.nodes[leaf].sizing = Proportional(0.5)
	if opts.Fixed > 0 {
		t.nodes[leaf].sizing = Proportional(1)
	}
	if opts.Placement == PlaceBefore {
		t.nodes[container].children = []NodeIndex{added, leaf}
	} else {
		t.nodes[container].children = []NodeIndex{leaf, added}
	}
	return nil
}

// Remove deletes a pane and restores the structural invariants. It returns
// the pane that should inherit focus: the last pane of the preceding
// sibling, or the first pane of the following sibling.
func (t *Tree) Remove(id PaneID) (PaneID, error) {
	leaf, err := t.Lookup(id)
	if err != nil {
		return "", err
	}
	if leaf == t.root {
		return "", fmt.Errorf("remove %s: %w", id, ErrLastPaneRemoved)
	}

	parent := t.nodes[leaf].parent
	pos := t.IndexInParent(leaf)
	siblings := t.nodes[parent].children

	var successor PaneID
	heir := pos - 1
	if pos > 0 {
		successor = t.LastPane(siblings[pos-1])
	} else {
		heir = 0
		successor = t.FirstPane(siblings[pos+1])
	}

	t.nodes[parent].children = append(siblings[:pos:pos], siblings[pos+1:]...)
	delete(t.index, id)
	t.release(leaf)

	t.renormalize(parent, heir)
	if len(t.nodes[parent].children) == 1 {
		t.collapse(parent)
	}
	return successor, nil
}

// Swap exchanges the positions of two panes. Sizing stays with the position.
func (t *Tree) Swap(a, b PaneID) error {
	na, err := t.Lookup(a)
	if err != nil {
		return err
	}
	nb, err := t.Lookup(b)
	if err != nil {
		return err
	}
	if na == nb {
		return nil
	}
	t.nodes[na].pane, t.nodes[nb].pane = t.nodes[nb].pane, t.nodes[na].pane
	t.index[a], t.index[b] = nb, na
	return nil
}

// Clone returns a deep copy. Pane content handles are shared.
func (t *Tree) Clone() *Tree {
	c := &Tree{
		nodes: make([]node, len(t.nodes)),
		free:  append([]NodeIndex(nil), t.free...),
		root:  t.root,
		index: make(map[PaneID]NodeIndex, len(t.index)),
	}
	for i, n := range t.nodes {
		cp := n
		if n.pane != nil {
			p := *n.pane
			cp.pane = &p
		}
		if n.children != nil {
			cp.children = append([]NodeIndex(nil), n.children...)
		}
		c.nodes[i] = cp
	}
	for id, idx := range t.index {
		c.index[id] = idx
	}
	return c
}

// Shape renders the structure as e.g. "H[p0,V[p1,p2]]", ignoring weights.
func (t *Tree) Shape() string {
	var b strings.Builder
	var visit func(NodeIndex)
	visit = func(n NodeIndex) {
		switch t.nodes[n].kind {
		case KindPane:
			b.WriteString(string(t.nodes[n].pane.ID))
		case KindSplit:
			if t.nodes[n].dir == SplitHorizontal {
				b.WriteString("H[")
			} else {
				b.WriteString("V[")
			}
			for i, c := range t.nodes[n].children {
				if i > 0 {
					b.WriteByte(',')
				}
				visit(c)
			}
			b.WriteByte(']')
		}
	}
	visit(t.root)
	return b.String()
}

func (t *Tree) insertChild(parent NodeIndex, pos int, child NodeIndex) {
	c := t.nodes[parent].children
	c = append(c, NoNode)
	copy(c[pos+1:], c[pos:])
	c[pos] = child
	t.nodes[parent].children = c
}

// replaceChild puts repl where old was, or makes repl the root.
func (t *Tree) replaceChild(parent, old, repl NodeIndex) {
	if parent == NoNode {
		t.root = repl
		t.nodes[repl].parent = NoNode
		return
	}
	for i, c := range t.nodes[parent].children {
		if c == old {
			t.nodes[parent].children[i] = repl
			break
		}
	}
	t.nodes[repl].parent = parent
}

// equalizeWeights gives every proportional child of n the same weight.
func (t *Tree) equalizeWeights(n NodeIndex) {
	count := 0
	for _, c := range t.nodes[n].children {
		if !t.nodes[c].sizing.IsFixed() {
			count++
		}
	}
	for _, c := range t.nodes[n].children {
		if !t.nodes[c].sizing.IsFixed() {
			t.nodes[c].sizing = Proportional(1 / float64(count))
		}
	}
}

// renormalize rescales the proportional children of n to sum to 1 while
// keeping their ratios. If only fixed children remain, the child at heir
// becomes proportional and takes all the flexible space.
func (t *Tree) renormalize(n NodeIndex, heir int) {
	children := t.nodes[n].children
	sum := 0.0
	proportional := 0
	for _, c := range children {
		if s := t.nodes[c].sizing; !s.IsFixed() {
			sum += s.Weight
			proportional++
		}
	}
	if proportional == 0 {
		heir = min(max(heir, 0), len(children)-1)
		t.nodes[children[heir]].sizing = Proportional(1)
		return
	}
	if sum <= weightEpsilon {
		t.equalizeWeights(n)
		return
	}
	for _, c := range children {
		if s := t.nodes[c].sizing; !s.IsFixed() {
			t.nodes[c].sizing = Proportional(s.Weight / sum)
		}
	}
}

// collapse replaces a single-child container with its child. If that puts a
// container directly inside one of the same direction, the two are merged
// and the grandchildren's weights are scaled by the collapsed share.
func (t *Tree) collapse(n NodeIndex) {
	only := t.nodes[n].children[0]
	parent := t.nodes[n].parent

	t.nodes[only].sizing = t.nodes[n].sizing
	if parent == NoNode {
		t.nodes[only].sizing = Proportional(1)
	}
	t.replaceChild(parent, n, only)
	t.release(n)

	if parent == NoNode || t.nodes[only].kind != KindSplit || t.nodes[only].dir != t.nodes[parent].dir {
		return
	}
	t.merge(parent, only)
}

// merge splices the children of child into parent at child's position.
func (t *Tree) merge(parent, child NodeIndex) {
	scale := t.nodes[child].sizing.Weight
	if t.nodes[child].sizing.IsFixed() {
		// A fixed container has no weight to hand down; give its children
		// the average share of their new siblings.
		sum, count := 0.0, 0
		for _, c := range t.nodes[parent].children {
			if c != child && !t.nodes[c].sizing.IsFixed() {
				sum += t.nodes[c].sizing.Weight
				count++
			}
		}
		scale = 1
		if count > 0 {
			scale = sum / float64(count)
		}
	}

	grandchildren := t.nodes[child].children
	for _, g := range grandchildren {
		if s := t.nodes[g].sizing; !s.IsFixed() {
			t.nodes[g].sizing = Proportional(s.Weight * scale)
		}
		t.nodes[g].parent = parent
	}

	pos := t.IndexInParent(child)
	old := t.nodes[parent].children
	merged := make([]NodeIndex, 0, len(old)+len(grandchildren)-1)
	merged = append(merged, old[:pos]...)
	merged = append(merged, grandchildren...)
	merged = append(merged, old[pos+1:]...)
	t.nodes[parent].children = merged
	t.release(child)

	t.renormalize(parent, pos)
}
