package shadow

import (
	"fmt"

	rendercore "github.com/wippyai/render-core"
)

// View is the value-type projection of a node: the fields that affect
// host-side appearance. Views are cheap to copy and compare.
type View struct {
	Tag           rendercore.Tag
	ComponentName string
	Props         Props
	EventEmitter  *EventEmitter
	LayoutMetrics rendercore.LayoutMetrics
	State         State
}

// ViewOf projects a node into a View.
func ViewOf(n *Node) View {
	return View{
		Tag:           n.family.Tag,
		ComponentName: n.family.ComponentName,
		Props:         n.props,
		EventEmitter:  n.family.EventEmitter,
		LayoutMetrics: n.layoutMetrics,
		State:         n.state,
	}
}

// Equal reports pointwise equality. Props and State compare by identity,
// which is sound because nodes never mutate them in place.
func (v View) Equal(other View) bool {
	return v.Tag == other.Tag &&
		v.ComponentName == other.ComponentName &&
		v.Props == other.Props &&
		v.EventEmitter == other.EventEmitter &&
		v.LayoutMetrics == other.LayoutMetrics &&
		v.State == other.State
}

// IsZero reports whether the view is the empty sentinel (used as the parent
// of root updates).
func (v View) IsZero() bool {
	return v.Tag == 0 && v.ComponentName == ""
}

func (v View) String() string {
	if v.IsZero() {
		return "<root>"
	}
	return fmt.Sprintf("<%s #%d>", v.ComponentName, v.Tag)
}

// ViewNodePair couples a view snapshot with a borrowed node reference used
// only to recurse for grandchildren. Pair equality ignores the node.
type ViewNodePair struct {
	View View
	Node *Node
}

// Equal compares the view halves only.
func (p ViewNodePair) Equal(other ViewNodePair) bool {
	return p.View.Equal(other.View)
}
