package mounting

import (
	rendercore "github.com/wippyai/render-core"
	"github.com/wippyai/render-core/shadow"
)

// sliceChildViewPairs produces the effective ordered child list of a node:
// the children the host tree will see as direct children after view
// flattening. Interior nodes that form neither a view nor a stacking
// context are collapsed and their view-forming descendants promoted upward,
// laid out in the ancestor's coordinate space.
//
// A node that forms a view but not a stacking context yields an empty list:
// its children belong to the effective child list of its parent.
func sliceChildViewPairs(node *shadow.Node) []shadow.ViewNodePair {
	var pairs []shadow.ViewNodePair

	traits := node.Traits()
	if !traits.Check(shadow.TraitFormsStackingContext) && traits.Check(shadow.TraitFormsView) {
		return pairs
	}

	return sliceChildViewPairsRecursively(pairs, rendercore.Point{}, node)
}

func sliceChildViewPairsRecursively(pairs []shadow.ViewNodePair, layoutOffset rendercore.Point, node *shadow.Node) []shadow.ViewNodePair {
	for _, child := range node.Children() {
		view := shadow.ViewOf(child)
		view.LayoutMetrics.Frame.Origin = view.LayoutMetrics.Frame.Origin.Add(layoutOffset)

		if child.Traits().Check(shadow.TraitFormsStackingContext) {
			// An opaque boundary: the child's own children are sliced when
			// the child itself is diffed.
			pairs = append(pairs, shadow.ViewNodePair{View: view, Node: child})
			continue
		}

		if child.Traits().Check(shadow.TraitFormsView) {
			pairs = append(pairs, shadow.ViewNodePair{View: view, Node: child})
		}

		pairs = sliceChildViewPairsRecursively(pairs, view.LayoutMetrics.Frame.Origin, child)
	}

	return pairs
}
