package text

import (
	"testing"

	rendercore "github.com/wippyai/render-core"
	"github.com/wippyai/render-core/shadow"
)

var nextTag rendercore.Tag

func testNode(t *testing.T, traits shadow.Traits, props shadow.Props, children ...*shadow.Node) *shadow.Node {
	t.Helper()
	nextTag++
	return shadow.NewNode(shadow.NodeSpec{
		Family:   shadow.NewFamily(nextTag, 1, "Text"),
		Props:    props,
		Children: children,
		Traits:   traits,
	})
}

func TestBuildAttributedString_RawText(t *testing.T) {
	paragraph := testNode(t, shadow.TraitText, nil,
		testNode(t, shadow.TraitRawText, &RawTextProps{Text: "hello "}),
		testNode(t, shadow.TraitRawText, &RawTextProps{Text: "world"}),
	)

	attributed := BuildAttributedString(Attributes{FontSize: 14}, paragraph)

	if got := attributed.String(); got != "hello world" {
		t.Fatalf("String() = %q", got)
	}
	fragments := attributed.Fragments()
	if len(fragments) != 2 {
		t.Fatalf("fragment count = %d", len(fragments))
	}
	for i, f := range fragments {
		if f.Attributes.FontSize != 14 {
			t.Fatalf("fragment %d font size = %v", i, f.Attributes.FontSize)
		}
		if f.ParentView.Tag != paragraph.Tag() {
			t.Fatalf("fragment %d parent view tag = %d, want %d", i, f.ParentView.Tag, paragraph.Tag())
		}
		if f.IsAttachment {
			t.Fatalf("fragment %d marked as attachment", i)
		}
	}
}

func TestBuildAttributedString_NestedOverlaysAttributes(t *testing.T) {
	paragraph := testNode(t, shadow.TraitText, nil,
		testNode(t, shadow.TraitRawText, &RawTextProps{Text: "plain "}),
		testNode(t, shadow.TraitText, &Props{Attributes: Attributes{FontWeight: 700}},
			testNode(t, shadow.TraitRawText, &RawTextProps{Text: "bold"}),
		),
	)

	attributed := BuildAttributedString(Attributes{FontSize: 14}, paragraph)

	if got := attributed.String(); got != "plain bold" {
		t.Fatalf("String() = %q", got)
	}
	fragments := attributed.Fragments()
	if len(fragments) != 2 {
		t.Fatalf("fragment count = %d", len(fragments))
	}
	if fragments[0].Attributes.FontWeight != 0 {
		t.Fatal("outer fragment gained the nested weight")
	}
	if fragments[1].Attributes.FontWeight != 700 {
		t.Fatalf("nested fragment weight = %v", fragments[1].Attributes.FontWeight)
	}
	if fragments[1].Attributes.FontSize != 14 {
		t.Fatal("nested fragment lost the inherited size")
	}
}

func TestBuildAttributedString_AttachmentPlaceholder(t *testing.T) {
	image := testNode(t, shadow.TraitFormsView, nil)
	paragraph := testNode(t, shadow.TraitText, nil,
		testNode(t, shadow.TraitRawText, &RawTextProps{Text: "see: "}),
		image,
	)

	attributed := BuildAttributedString(Attributes{}, paragraph)

	fragments := attributed.Fragments()
	if len(fragments) != 2 {
		t.Fatalf("fragment count = %d", len(fragments))
	}
	attachment := fragments[1]
	if !attachment.IsAttachment {
		t.Fatal("non-text child should become an attachment")
	}
	if attachment.Text != AttachmentCharacter {
		t.Fatalf("attachment text = %q", attachment.Text)
	}
	// The attachment projects the child itself, not the paragraph.
	if attachment.ParentView.Tag != image.Tag() {
		t.Fatalf("attachment view tag = %d, want %d", attachment.ParentView.Tag, image.Tag())
	}
}

func TestAttributes_Apply(t *testing.T) {
	base := Attributes{FontSize: 12, ForegroundColor: 0xff0000ff}
	overlay := Attributes{FontWeight: 600}

	merged := base.Apply(overlay)
	if merged.FontSize != 12 || merged.FontWeight != 600 || merged.ForegroundColor != 0xff0000ff {
		t.Fatalf("merged = %+v", merged)
	}

	// Zero overlay changes nothing.
	if got := base.Apply(Attributes{}); got != base {
		t.Fatalf("zero overlay changed attributes: %+v", got)
	}
}

func TestAttributedString_Empty(t *testing.T) {
	var s AttributedString
	if !s.IsEmpty() {
		t.Fatal("zero value should be empty")
	}
	if s.String() != "" {
		t.Fatalf("String() = %q", s.String())
	}

	paragraph := testNode(t, shadow.TraitText, nil)
	if got := BuildAttributedString(Attributes{}, paragraph); !got.IsEmpty() {
		t.Fatal("childless paragraph should produce an empty string")
	}
}
