package text

import (
	"strings"

	"github.com/wippyai/render-core/shadow"
)

// AttachmentCharacter is the placeholder contributed by non-text children.
// Object replacement character, U+FFFC.
const AttachmentCharacter = "￼"

// FontWeight is a numeric font weight; zero means inherited.
type FontWeight int

// Attributes are the text attributes a fragment carries. Zero fields mean
// "inherited".
type Attributes struct {
	FontSize        float64
	FontWeight      FontWeight
	ForegroundColor uint32
}

// Apply overlays non-zero fields of other onto a copy of the attributes.
func (a Attributes) Apply(other Attributes) Attributes {
	if other.FontSize != 0 {
		a.FontSize = other.FontSize
	}
	if other.FontWeight != 0 {
		a.FontWeight = other.FontWeight
	}
	if other.ForegroundColor != 0 {
		a.ForegroundColor = other.ForegroundColor
	}
	return a
}

// Fragment is one run of an attributed string.
type Fragment struct {
	Text       string
	Attributes Attributes

	// ParentView is a projection of the node the fragment came from. A
	// view, not a node: holding the node would cycle the paragraph and
	// its content.
	ParentView shadow.View

	// IsAttachment marks placeholder fragments standing in for non-text
	// children.
	IsAttachment bool
}

// AttributedString is an ordered list of fragments.
type AttributedString struct {
	fragments []Fragment
}

// AppendFragment adds one fragment at the end.
func (s *AttributedString) AppendFragment(f Fragment) {
	s.fragments = append(s.fragments, f)
}

// AppendAttributedString splices another attributed string at the end.
func (s *AttributedString) AppendAttributedString(other AttributedString) {
	s.fragments = append(s.fragments, other.fragments...)
}

// Fragments returns the fragments in order. Callers must not mutate the
// returned slice.
func (s *AttributedString) Fragments() []Fragment {
	return s.fragments
}

// IsEmpty reports whether the string has no fragments.
func (s *AttributedString) IsEmpty() bool {
	return len(s.fragments) == 0
}

// String flattens the fragments to their concatenated text.
func (s *AttributedString) String() string {
	var b strings.Builder
	for _, f := range s.fragments {
		b.WriteString(f.Text)
	}
	return b.String()
}

// ChildKind discriminates the children a text node can have.
type ChildKind uint8

const (
	// RawKind is a leaf carrying a text string.
	RawKind ChildKind = iota

	// NestedKind is a text node overlaying attributes on its own subtree.
	NestedKind

	// AttachmentKind is any other child; it participates as an inline
	// attachment placeholder.
	AttachmentKind
)

// ClassifyChild maps a node to its kind within a text subtree.
func ClassifyChild(node *shadow.Node) ChildKind {
	switch {
	case node.Traits().Check(shadow.TraitRawText):
		return RawKind
	case node.Traits().Check(shadow.TraitText):
		return NestedKind
	default:
		return AttachmentKind
	}
}

// RawTextProps are the props of a raw text node.
type RawTextProps struct {
	Text string
}

// Props are the props of a styled text node.
type Props struct {
	Attributes Attributes
}

// BuildAttributedString walks the children of parent and assembles the
// attributed string a paragraph displays, applying textAttributes to every
// contributed fragment.
func BuildAttributedString(textAttributes Attributes, parent *shadow.Node) AttributedString {
	var attributed AttributedString

	for _, child := range parent.Children() {
		switch ClassifyChild(child) {
		case RawKind:
			fragment := Fragment{
				Attributes: textAttributes,
				ParentView: shadow.ViewOf(parent),
			}
			if props, ok := child.Props().(*RawTextProps); ok {
				fragment.Text = props.Text
			}
			attributed.AppendFragment(fragment)

		case NestedKind:
			localAttributes := textAttributes
			if props, ok := child.Props().(*Props); ok {
				localAttributes = textAttributes.Apply(props.Attributes)
			}
			attributed.AppendAttributedString(BuildAttributedString(localAttributes, child))

		case AttachmentKind:
			attributed.AppendFragment(Fragment{
				Text:         AttachmentCharacter,
				Attributes:   textAttributes,
				ParentView:   shadow.ViewOf(child),
				IsAttachment: true,
			})
		}
	}

	return attributed
}
