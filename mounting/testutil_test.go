package mounting

import (
	"testing"

	rendercore "github.com/wippyai/render-core"
	"github.com/wippyai/render-core/shadow"
)

const testSurfaceID rendercore.SurfaceID = 1

// treeBuilder constructs related tree generations: nodes with the same tag
// share one family and, unless overridden, one props reference, so
// unchanged nodes project equal views across generations.
type treeBuilder struct {
	families map[rendercore.Tag]*shadow.Family
	props    map[rendercore.Tag]shadow.Props
}

func newTreeBuilder() *treeBuilder {
	return &treeBuilder{
		families: make(map[rendercore.Tag]*shadow.Family),
		props:    make(map[rendercore.Tag]shadow.Props),
	}
}

type testProps struct {
	color string
}

func (b *treeBuilder) family(tag rendercore.Tag) *shadow.Family {
	if f, ok := b.families[tag]; ok {
		return f
	}
	f := shadow.NewFamily(tag, testSurfaceID, "View")
	b.families[tag] = f
	return f
}

func (b *treeBuilder) defaultProps(tag rendercore.Tag) shadow.Props {
	if p, ok := b.props[tag]; ok {
		return p
	}
	p := &testProps{}
	b.props[tag] = p
	return p
}

type nodeConfig struct {
	traits shadow.Traits
	frame  rendercore.Rect
	order  int
	props  shadow.Props
}

func (b *treeBuilder) make(tag rendercore.Tag, cfg nodeConfig, children ...*shadow.Node) *shadow.Node {
	props := cfg.props
	if props == nil {
		props = b.defaultProps(tag)
	}
	return shadow.NewNode(shadow.NodeSpec{
		Family:        b.family(tag),
		Props:         props,
		Children:      children,
		LayoutMetrics: rendercore.LayoutMetrics{Frame: cfg.frame},
		OrderIndex:    cfg.order,
		Traits:        cfg.traits,
	})
}

// node builds a plain view that is also a stacking context, the shape the
// diff scenarios use so flattening stays out of the picture.
func (b *treeBuilder) node(tag rendercore.Tag, children ...*shadow.Node) *shadow.Node {
	return b.make(tag, nodeConfig{traits: shadow.TraitFormsView | shadow.TraitFormsStackingContext}, children...)
}

// view builds a view-forming node that is not a stacking context.
func (b *treeBuilder) view(tag rendercore.Tag, frame rendercore.Rect, children ...*shadow.Node) *shadow.Node {
	return b.make(tag, nodeConfig{traits: shadow.TraitFormsView, frame: frame}, children...)
}

// flat builds an interior node that neither forms a view nor a stacking
// context; the slicer collapses it.
func (b *treeBuilder) flat(tag rendercore.Tag, frame rendercore.Rect, children ...*shadow.Node) *shadow.Node {
	return b.make(tag, nodeConfig{frame: frame}, children...)
}

// stack builds a stacking-context view with an explicit frame.
func (b *treeBuilder) stack(tag rendercore.Tag, frame rendercore.Rect, children ...*shadow.Node) *shadow.Node {
	return b.make(tag, nodeConfig{traits: shadow.TraitFormsView | shadow.TraitFormsStackingContext, frame: frame}, children...)
}

// hostView is one node of the simulated host hierarchy.
type hostView struct {
	tag      rendercore.Tag
	children []*hostView
}

// hostTree simulates the platform view hierarchy the mounting consumer
// maintains. Applying a mutation validates the invariants the consumer
// relies on: indices in bounds, creates before inserts, removes before
// deletes.
type hostTree struct {
	t     *testing.T
	views map[rendercore.Tag]*hostView
	root  *hostView
}

// newHostTree builds a host hierarchy matching the flattened projection of
// the given shadow root.
func newHostTree(t *testing.T, root *shadow.Node) *hostTree {
	h := &hostTree{
		t:     t,
		views: make(map[rendercore.Tag]*hostView),
	}
	h.root = h.materialize(root)
	return h
}

func (h *hostTree) materialize(node *shadow.Node) *hostView {
	hv := &hostView{tag: node.Tag()}
	h.views[node.Tag()] = hv
	for _, pair := range sliceChildViewPairs(node) {
		hv.children = append(hv.children, h.materialize(pair.Node))
	}
	return hv
}

func (h *hostTree) lookup(tag rendercore.Tag) *hostView {
	hv, ok := h.views[tag]
	if !ok {
		h.t.Fatalf("host view %d does not exist", tag)
	}
	return hv
}

func (h *hostTree) apply(m Mutation) {
	h.t.Helper()

	switch m.Type {
	case MutationCreate:
		if _, ok := h.views[m.NewChildView.Tag]; ok {
			h.t.Fatalf("Create for already-existing view %d", m.NewChildView.Tag)
		}
		h.views[m.NewChildView.Tag] = &hostView{tag: m.NewChildView.Tag}

	case MutationDelete:
		hv := h.lookup(m.OldChildView.Tag)
		for _, other := range h.views {
			for _, child := range other.children {
				if child == hv {
					h.t.Fatalf("Delete for view %d still attached to %d", hv.tag, other.tag)
				}
			}
		}
		delete(h.views, m.OldChildView.Tag)

	case MutationInsert:
		parent := h.lookup(m.ParentView.Tag)
		child := h.lookup(m.NewChildView.Tag)
		if m.Index < 0 || m.Index > len(parent.children) {
			h.t.Fatalf("Insert index %d out of bounds (parent %d has %d children)",
				m.Index, parent.tag, len(parent.children))
		}
		parent.children = append(parent.children, nil)
		copy(parent.children[m.Index+1:], parent.children[m.Index:])
		parent.children[m.Index] = child

	case MutationRemove:
		parent := h.lookup(m.ParentView.Tag)
		if m.Index < 0 || m.Index >= len(parent.children) {
			h.t.Fatalf("Remove index %d out of bounds (parent %d has %d children)",
				m.Index, parent.tag, len(parent.children))
		}
		if got := parent.children[m.Index].tag; got != m.OldChildView.Tag {
			h.t.Fatalf("Remove at index %d expected view %d, host has %d",
				m.Index, m.OldChildView.Tag, got)
		}
		parent.children = append(parent.children[:m.Index], parent.children[m.Index+1:]...)

	case MutationUpdate:
		if m.Index == -1 && m.ParentView.IsZero() {
			if h.root.tag != m.OldChildView.Tag {
				h.t.Fatalf("root Update expected view %d, host root is %d",
					m.OldChildView.Tag, h.root.tag)
			}
			return
		}
		h.lookup(m.OldChildView.Tag)

	default:
		h.t.Fatalf("unknown mutation type %d", m.Type)
	}
}

func (h *hostTree) applyAll(mutations []Mutation) {
	h.t.Helper()
	for _, m := range mutations {
		h.apply(m)
	}
}

// assertMatches compares the host hierarchy against the flattened
// projection of the given shadow root.
func (h *hostTree) assertMatches(root *shadow.Node) {
	h.t.Helper()
	h.assertNodeMatches(h.root, root, root.Tag())
}

func (h *hostTree) assertNodeMatches(hv *hostView, node *shadow.Node, path rendercore.Tag) {
	h.t.Helper()

	pairs := sliceChildViewPairs(node)
	if len(hv.children) != len(pairs) {
		h.t.Fatalf("under %d: host has %d children, tree expects %d",
			path, len(hv.children), len(pairs))
	}
	for i, pair := range pairs {
		if hv.children[i].tag != pair.View.Tag {
			h.t.Fatalf("under %d at index %d: host has %d, tree expects %d",
				path, i, hv.children[i].tag, pair.View.Tag)
		}
		h.assertNodeMatches(hv.children[i], pair.Node, pair.View.Tag)
	}
}

// mutationSignature renders a mutation compactly for sequence assertions.
func mutationSignature(m Mutation) string {
	return m.String()
}

func assertMutations(t *testing.T, got []Mutation, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d mutations, want %d:\n got: %v\nwant: %v", len(got), len(want), got, want)
	}
	for i := range got {
		if mutationSignature(got[i]) != want[i] {
			t.Fatalf("mutation %d = %q, want %q\nfull list: %v", i, mutationSignature(got[i]), want[i], got)
		}
	}
}
