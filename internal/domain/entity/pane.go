// Package entity contains domain entities representing core layout concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import "fmt"

// PaneID uniquely identifies a pane across all views.
type PaneID string

// SplitDirection indicates how a split container divides its space.
type SplitDirection int

const (
	SplitHorizontal SplitDirection = iota // Side-by-side columns, divides width
	SplitVertical                         // Stacked rows, divides height
)

// Axis returns the axis divided among the container's children.
func (d SplitDirection) Axis() Axis {
	if d == SplitHorizontal {
		return AxisX
	}
	return AxisY
}

func (d SplitDirection) String() string {
	switch d {
	case SplitHorizontal:
		return "horizontal"
	case SplitVertical:
		return "vertical"
	default:
		return fmt.Sprintf("split(%d)", int(d))
	}
}

// ParseSplitDirection accepts "horizontal"/"h" and "vertical"/"v".
func ParseSplitDirection(s string) (SplitDirection, error) {
	switch s {
	case "horizontal", "h":
		return SplitHorizontal, nil
	case "vertical", "v":
		return SplitVertical, nil
	}
	return 0, fmt.Errorf("unknown split direction %q", s)
}

// SplitDirectionFor returns the container direction whose axis matches a.
func SplitDirectionFor(a Axis) SplitDirection {
	if a == AxisX {
		return SplitHorizontal
	}
	return SplitVertical
}

// Pane is a leaf region of the terminal displaying one content stream.
type Pane struct {
	ID PaneID
	// Content is an opaque handle owned by the rendering collaborator.
	Content any
	// Rect is the rectangle assigned by the last layout pass.
	Rect Rect
}

// NewPane creates a pane with an empty rectangle.
func NewPane(id PaneID) *Pane {
	return &Pane{ID: id}
}

// Sizing is how a child claims space along its parent's split axis.
// A positive Fixed is an absolute cell count; otherwise Weight is the
// child's share of the space left after fixed siblings.
type Sizing struct {
	Weight float64
	Fixed  int
}

// IsFixed reports whether the child has an absolute size.
func (s Sizing) IsFixed() bool { return s.Fixed > 0 }

// Proportional returns a weighted sizing.
func Proportional(w float64) Sizing { return Sizing{Weight: w} }

// FixedSize returns an absolute sizing of n cells.
func FixedSize(n int) Sizing { return Sizing{Fixed: n} }

// Placement chooses which side of the target a new pane lands on.
type Placement int

const (
	PlaceAfter  Placement = iota // Right of or below the target
	PlaceBefore                  // Left of or above the target
)

// SplitOptions tunes Split.
type SplitOptions struct {
	Placement Placement
	// Fixed gives the new pane an absolute size along the split axis.
	Fixed int
}
