// Package shadow implements the immutable shadow node tree.
//
// A shadow tree is a snapshot of the UI scene graph produced by a commit.
// Nodes are immutable once constructed; a new generation of the tree derives
// changed nodes with Clone while sharing every unchanged subtree with the
// previous generation. Identity across generations is carried by a Family
// record shared between all generations of the same logical node.
//
// # Views
//
// A View is the value-type projection of a node carrying exactly the fields
// that affect host-side appearance: tag, component name, props reference,
// event emitter, layout metrics, and state reference. View equality is
// pointwise; props, emitter, and state compare by identity.
//
// # Traits
//
// Traits describe how a node participates in the host tree:
//
//	TraitFormsView            the node corresponds to a host view
//	TraitFormsStackingContext the node clips/transforms descendants as a unit
//	TraitRawText              the node carries raw text content
//	TraitText                 the node styles a text subtree
//
// A node that forms neither a view nor a stacking context is invisible to
// the host tree: the mounting layer flattens it away and promotes its
// view-forming descendants upward.
package shadow
