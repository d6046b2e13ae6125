package shadow

import (
	"fmt"

	rendercore "github.com/wippyai/render-core"
)

// Props is an opaque immutable reference to component-specific properties.
// Implementations must not mutate a Props value after attaching it to a
// node; views compare props by identity.
type Props any

// State is an opaque reference to component-private state.
type State any

// EventEmitter identifies the event target associated with a node family.
// Compared by pointer identity.
type EventEmitter struct {
	// Handler receives events dispatched to this family, if set.
	Handler func(name string, payload any)
}

// Family is the identity of a logical node shared across tree generations.
// Two nodes are of the same family exactly when they reference the same
// Family record.
type Family struct {
	Tag           rendercore.Tag
	SurfaceID     rendercore.SurfaceID
	ComponentName string
	EventEmitter  *EventEmitter
}

// NewFamily creates a family record for a fresh logical node.
func NewFamily(tag rendercore.Tag, surfaceID rendercore.SurfaceID, componentName string) *Family {
	if tag == 0 {
		panic("shadow: zero tag is reserved")
	}
	return &Family{
		Tag:           tag,
		SurfaceID:     surfaceID,
		ComponentName: componentName,
		EventEmitter:  &EventEmitter{},
	}
}

// Node is one immutable node of a shadow tree.
type Node struct {
	family        *Family
	props         Props
	state         State
	children      []*Node
	layoutMetrics rendercore.LayoutMetrics
	orderIndex    int
	traits        Traits
}

// NodeSpec carries the inputs for constructing a node.
type NodeSpec struct {
	Family        *Family
	Props         Props
	State         State
	Children      []*Node
	LayoutMetrics rendercore.LayoutMetrics
	OrderIndex    int
	Traits        Traits
}

// NewNode constructs an immutable node. The children slice is adopted and
// must not be mutated afterwards.
func NewNode(spec NodeSpec) *Node {
	if spec.Family == nil {
		panic("shadow: node requires a family")
	}
	return &Node{
		family:        spec.Family,
		props:         spec.Props,
		state:         spec.State,
		children:      spec.Children,
		layoutMetrics: spec.LayoutMetrics,
		orderIndex:    spec.OrderIndex,
		traits:        spec.Traits,
	}
}

// PartialSpec describes the fields a derived generation replaces. Nil/zero
// fields keep the source node's value; Children is replaced when
// ReplaceChildren is set (so an empty child list is expressible).
type PartialSpec struct {
	Props           Props
	State           State
	Children        []*Node
	ReplaceChildren bool
	LayoutMetrics   *rendercore.LayoutMetrics
	OrderIndex      *int
	Traits          *Traits
}

// Clone derives a new generation of the node, keeping its family.
func (n *Node) Clone(partial PartialSpec) *Node {
	clone := *n
	if partial.Props != nil {
		clone.props = partial.Props
	}
	if partial.State != nil {
		clone.state = partial.State
	}
	if partial.ReplaceChildren {
		clone.children = partial.Children
	}
	if partial.LayoutMetrics != nil {
		clone.layoutMetrics = *partial.LayoutMetrics
	}
	if partial.OrderIndex != nil {
		clone.orderIndex = *partial.OrderIndex
	}
	if partial.Traits != nil {
		clone.traits = *partial.Traits
	}
	return &clone
}

// Family returns the identity record shared across generations.
func (n *Node) Family() *Family { return n.family }

// Tag returns the node's stable identity.
func (n *Node) Tag() rendercore.Tag { return n.family.Tag }

// SurfaceID returns the owning surface.
func (n *Node) SurfaceID() rendercore.SurfaceID { return n.family.SurfaceID }

// ComponentName returns the component type name.
func (n *Node) ComponentName() string { return n.family.ComponentName }

// Props returns the opaque props reference.
func (n *Node) Props() Props { return n.props }

// State returns the opaque state reference.
func (n *Node) State() State { return n.state }

// Children returns the ordered child list. Callers must not mutate it.
func (n *Node) Children() []*Node { return n.children }

// LayoutMetrics returns the node's layout outcome.
func (n *Node) LayoutMetrics() rendercore.LayoutMetrics { return n.layoutMetrics }

// OrderIndex returns the stable-sort key used within a sibling list.
func (n *Node) OrderIndex() int { return n.orderIndex }

// Traits returns the node's trait set.
func (n *Node) Traits() Traits { return n.traits }

func (n *Node) String() string {
	return fmt.Sprintf("<%s #%d>", n.family.ComponentName, n.family.Tag)
}

// SameFamily reports whether two nodes share identity across generations.
func SameFamily(a, b *Node) bool {
	return a != nil && b != nil && a.family == b.family
}
