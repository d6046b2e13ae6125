package shadow

// Traits is a set of flags describing how a node participates in the host
// tree and in text assembly.
type Traits uint32

const (
	// TraitFormsView marks a node that corresponds to a host view.
	TraitFormsView Traits = 1 << iota

	// TraitFormsStackingContext marks a node that clips or transforms its
	// descendants as a unit. Such a node terminates child flattening: its
	// own children are sliced only when the node itself is diffed.
	TraitFormsStackingContext

	// TraitRawText marks a node whose props carry a raw text string.
	TraitRawText

	// TraitText marks a node that applies text attributes to a subtree.
	TraitText
)

// Check reports whether every trait in t is present.
func (tr Traits) Check(t Traits) bool {
	return tr&t == t
}

// With returns the traits with t added.
func (tr Traits) With(t Traits) Traits {
	return tr | t
}

// Without returns the traits with t removed.
func (tr Traits) Without(t Traits) Traits {
	return tr &^ t
}
