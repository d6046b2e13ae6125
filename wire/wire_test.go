package wire

import (
	stderrors "errors"
	"testing"

	rendercore "github.com/wippyai/render-core"
	"github.com/wippyai/render-core/errors"
	"github.com/wippyai/render-core/mounting"
	"github.com/wippyai/render-core/shadow"
)

func TestHeader_RoundTrip(t *testing.T) {
	buf := EncodeHeader(MessageSnapshot, 1234)

	header, err := DecodeHeader(buf)
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	if header.Magic != Magic {
		t.Errorf("magic = %#04x", header.Magic)
	}
	if header.Version != ProtocolVersion {
		t.Errorf("version = %d", header.Version)
	}
	if header.Type != MessageSnapshot {
		t.Errorf("type = %d", header.Type)
	}
	if header.Length != 1234 {
		t.Errorf("length = %d", header.Length)
	}
}

func TestDecodeHeader_Errors(t *testing.T) {
	t.Run("short buffer", func(t *testing.T) {
		_, err := DecodeHeader([]byte{0x53})
		if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindTruncated}) {
			t.Fatalf("err = %v, want truncated", err)
		}
	})

	t.Run("bad magic", func(t *testing.T) {
		buf := EncodeHeader(MessageSnapshot, 0)
		buf[0] = 0xde
		buf[1] = 0xad
		_, err := DecodeHeader(buf)
		if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindBadMagic}) {
			t.Fatalf("err = %v, want bad magic", err)
		}
	})

	t.Run("bad version", func(t *testing.T) {
		buf := EncodeHeader(MessageSnapshot, 0)
		buf[2] = 99
		_, err := DecodeHeader(buf)
		if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindBadVersion}) {
			t.Fatalf("err = %v, want bad version", err)
		}
	})
}

func buildSampleTree(t *testing.T) *shadow.Node {
	t.Helper()
	child := shadow.NewNode(shadow.NodeSpec{
		Family: shadow.NewFamily(2, 1, "Image"),
		Props:  &SnapshotProps{Values: map[string]any{"uri": "a.png"}},
		Traits: shadow.TraitFormsView | shadow.TraitFormsStackingContext,
		LayoutMetrics: rendercore.LayoutMetrics{
			Frame: rendercore.Rect{
				Origin: rendercore.Point{X: 10, Y: 20},
				Size:   rendercore.Size{Width: 100, Height: 50},
			},
		},
	})
	return shadow.NewNode(shadow.NodeSpec{
		Family:   shadow.NewFamily(1, 1, "RootView"),
		Children: []*shadow.Node{child},
		Traits:   shadow.TraitFormsView | shadow.TraitFormsStackingContext,
	})
}

func TestSnapshot_RoundTrip(t *testing.T) {
	root := buildSampleTree(t)

	data, err := EncodeSnapshot(root)
	if err != nil {
		t.Fatalf("EncodeSnapshot: %v", err)
	}

	decoded, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}

	if decoded.Tag() != 1 || decoded.ComponentName() != "RootView" {
		t.Fatalf("decoded root = %v", decoded)
	}
	if decoded.SurfaceID() != 1 {
		t.Fatalf("decoded surface = %d", decoded.SurfaceID())
	}
	if len(decoded.Children()) != 1 {
		t.Fatalf("decoded children = %d", len(decoded.Children()))
	}

	child := decoded.Children()[0]
	if child.Tag() != 2 || child.ComponentName() != "Image" {
		t.Fatalf("decoded child = %v", child)
	}
	frame := child.LayoutMetrics().Frame
	if frame.Origin.X != 10 || frame.Size.Width != 100 {
		t.Fatalf("decoded frame = %+v", frame)
	}
	props, ok := child.Props().(*SnapshotProps)
	if !ok || props.Values["uri"] != "a.png" {
		t.Fatalf("decoded props = %v", child.Props())
	}
	if !child.Traits().Check(shadow.TraitFormsView | shadow.TraitFormsStackingContext) {
		t.Fatalf("decoded traits = %v", child.Traits())
	}
}

func TestDecodeSnapshot_RejectsZeroTag(t *testing.T) {
	snapshot := Snapshot{
		SurfaceID: 1,
		Root:      SnapshotNode{Tag: 0, Component: "RootView"},
	}
	payload, err := marshal(snapshot)
	if err != nil {
		t.Fatal(err)
	}

	_, err = DecodeSnapshot(encodeFrame(MessageSnapshot, payload))
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindInvalidData}) {
		t.Fatalf("err = %v, want invalid data", err)
	}
}

func TestDecodeSnapshot_RejectsDuplicateTags(t *testing.T) {
	snapshot := Snapshot{
		SurfaceID: 1,
		Root: SnapshotNode{
			Tag: 1, Component: "RootView",
			Children: []SnapshotNode{
				{Tag: 2, Component: "View"},
				{Tag: 2, Component: "View"},
			},
		},
	}
	payload, err := marshal(snapshot)
	if err != nil {
		t.Fatal(err)
	}

	_, err = DecodeSnapshot(encodeFrame(MessageSnapshot, payload))
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindDuplicateTag}) {
		t.Fatalf("err = %v, want duplicate tag", err)
	}
}

func TestDecodeSnapshot_RejectsWrongMessageType(t *testing.T) {
	data := encodeFrame(MessageMutations, []byte{0x80})
	_, err := DecodeSnapshot(data)
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindInvalidEnum}) {
		t.Fatalf("err = %v, want invalid enum", err)
	}
}

func TestRebindFamilies_MakesSnapshotsDiffable(t *testing.T) {
	oldData, err := EncodeSnapshot(buildSampleTree(t))
	if err != nil {
		t.Fatal(err)
	}
	newData, err := EncodeSnapshot(buildSampleTree(t))
	if err != nil {
		t.Fatal(err)
	}

	oldRoot, err := DecodeSnapshot(oldData)
	if err != nil {
		t.Fatal(err)
	}
	newRoot, err := DecodeSnapshot(newData)
	if err != nil {
		t.Fatal(err)
	}

	if shadow.SameFamily(oldRoot, newRoot) {
		t.Fatal("independent decodes must mint distinct families")
	}

	rebound := RebindFamilies(oldRoot, newRoot)
	if !shadow.SameFamily(oldRoot, rebound) {
		t.Fatal("rebinding should align root families")
	}

	// Identical snapshots diff to nothing once rebound.
	mutations := mounting.CalculateMutations(oldRoot, rebound)
	if len(mutations) != 0 {
		t.Fatalf("identical snapshots produced %d mutations: %v", len(mutations), mutations)
	}
}

func TestMutations_RoundTrip(t *testing.T) {
	oldRoot, err := DecodeSnapshot(mustEncode(t, buildSampleTree(t)))
	if err != nil {
		t.Fatal(err)
	}

	// Drop the child: remove + delete.
	newRoot := RebindFamilies(oldRoot, oldRoot.Clone(shadow.PartialSpec{ReplaceChildren: true}))
	mutations := mounting.CalculateMutations(oldRoot, newRoot)
	if len(mutations) == 0 {
		t.Fatal("expected mutations")
	}

	data, err := EncodeMutations(mutations)
	if err != nil {
		t.Fatalf("EncodeMutations: %v", err)
	}

	records, err := DecodeMutations(data)
	if err != nil {
		t.Fatalf("DecodeMutations: %v", err)
	}
	if len(records) != len(mutations) {
		t.Fatalf("decoded %d records, want %d", len(records), len(mutations))
	}
	for i, record := range records {
		if record.Type != uint8(mutations[i].Type) {
			t.Fatalf("record %d type = %d, want %d", i, record.Type, mutations[i].Type)
		}
		if record.Index != mutations[i].Index {
			t.Fatalf("record %d index = %d, want %d", i, record.Index, mutations[i].Index)
		}
	}
}

func mustEncode(t *testing.T, root *shadow.Node) []byte {
	t.Helper()
	data, err := EncodeSnapshot(root)
	if err != nil {
		t.Fatal(err)
	}
	return data
}
