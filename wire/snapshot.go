package wire

import (
	"reflect"
	"strconv"

	rendercore "github.com/wippyai/render-core"
	"github.com/wippyai/render-core/errors"
	"github.com/wippyai/render-core/shadow"
)

// Trait bits as they appear on the wire.
const (
	wireTraitFormsView uint32 = 1 << iota
	wireTraitFormsStackingContext
	wireTraitRawText
	wireTraitText
)

// SnapshotNode is the transferable shape of one tree node.
type SnapshotNode struct {
	Tag        int32          `cbor:"1,keyasint"`
	Component  string         `cbor:"2,keyasint"`
	Traits     uint32         `cbor:"3,keyasint"`
	OrderIndex int            `cbor:"4,keyasint,omitempty"`
	Frame      [4]float64     `cbor:"5,keyasint"` // x, y, width, height
	Props      map[string]any `cbor:"6,keyasint,omitempty"`
	Children   []SnapshotNode `cbor:"7,keyasint,omitempty"`
}

// Snapshot is a full tree payload.
type Snapshot struct {
	SurfaceID int32        `cbor:"1,keyasint"`
	Root      SnapshotNode `cbor:"2,keyasint"`
}

// SnapshotProps wraps decoded props so views can compare them by
// identity.
type SnapshotProps struct {
	Values map[string]any
}

func wireTraits(t shadow.Traits) uint32 {
	var bits uint32
	if t.Check(shadow.TraitFormsView) {
		bits |= wireTraitFormsView
	}
	if t.Check(shadow.TraitFormsStackingContext) {
		bits |= wireTraitFormsStackingContext
	}
	if t.Check(shadow.TraitRawText) {
		bits |= wireTraitRawText
	}
	if t.Check(shadow.TraitText) {
		bits |= wireTraitText
	}
	return bits
}

func shadowTraits(bits uint32) shadow.Traits {
	var t shadow.Traits
	if bits&wireTraitFormsView != 0 {
		t = t.With(shadow.TraitFormsView)
	}
	if bits&wireTraitFormsStackingContext != 0 {
		t = t.With(shadow.TraitFormsStackingContext)
	}
	if bits&wireTraitRawText != 0 {
		t = t.With(shadow.TraitRawText)
	}
	if bits&wireTraitText != 0 {
		t = t.With(shadow.TraitText)
	}
	return t
}

// SnapshotOf projects a shadow tree into its transferable shape.
func SnapshotOf(root *shadow.Node) Snapshot {
	return Snapshot{
		SurfaceID: int32(root.SurfaceID()),
		Root:      snapshotNodeOf(root),
	}
}

func snapshotNodeOf(node *shadow.Node) SnapshotNode {
	frame := node.LayoutMetrics().Frame
	sn := SnapshotNode{
		Tag:        int32(node.Tag()),
		Component:  node.ComponentName(),
		Traits:     wireTraits(node.Traits()),
		OrderIndex: node.OrderIndex(),
		Frame:      [4]float64{frame.Origin.X, frame.Origin.Y, frame.Size.Width, frame.Size.Height},
	}
	if props, ok := node.Props().(*SnapshotProps); ok {
		sn.Props = props.Values
	}
	for _, child := range node.Children() {
		sn.Children = append(sn.Children, snapshotNodeOf(child))
	}
	return sn
}

// EncodeSnapshot frames a tree for transfer.
func EncodeSnapshot(root *shadow.Node) ([]byte, error) {
	payload, err := marshal(SnapshotOf(root))
	if err != nil {
		return nil, err
	}
	return encodeFrame(MessageSnapshot, payload), nil
}

// DecodeSnapshot parses a framed snapshot and reifies it into a fresh
// shadow tree. Every decode mints new families, so trees decoded from two
// snapshots are never of the same family; RebindFamilies aligns them for
// diffing.
func DecodeSnapshot(data []byte) (*shadow.Node, error) {
	_, payload, err := decodeFrame(data, MessageSnapshot)
	if err != nil {
		return nil, err
	}

	var snapshot Snapshot
	if err := unmarshal(payload, &snapshot); err != nil {
		return nil, err
	}

	seen := make(map[int32]bool)
	return buildNode(snapshot.Root, rendercore.SurfaceID(snapshot.SurfaceID), nil, seen)
}

func buildNode(sn SnapshotNode, surfaceID rendercore.SurfaceID, path []string, seen map[int32]bool) (*shadow.Node, error) {
	if sn.Tag == 0 {
		return nil, errors.InvalidData(errors.PhaseDecode, path, "node tag is zero")
	}
	if seen[sn.Tag] {
		return nil, errors.DuplicateTag(errors.PhaseDecode, path, int64(sn.Tag))
	}
	seen[sn.Tag] = true

	var props shadow.Props
	if sn.Props != nil {
		props = &SnapshotProps{Values: sn.Props}
	}

	children := make([]*shadow.Node, 0, len(sn.Children))
	for i, childSnapshot := range sn.Children {
		child, err := buildNode(childSnapshot, surfaceID,
			append(path, "children", strconv.Itoa(i)), seen)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	return shadow.NewNode(shadow.NodeSpec{
		Family:   shadow.NewFamily(rendercore.Tag(sn.Tag), surfaceID, sn.Component),
		Props:    props,
		Children: children,
		LayoutMetrics: rendercore.LayoutMetrics{
			Frame: rendercore.Rect{
				Origin: rendercore.Point{X: sn.Frame[0], Y: sn.Frame[1]},
				Size:   rendercore.Size{Width: sn.Frame[2], Height: sn.Frame[3]},
			},
		},
		OrderIndex: sn.OrderIndex,
		Traits:     shadowTraits(sn.Traits),
	}), nil
}

// RebindFamilies rebuilds newRoot so that nodes sharing a tag with a node
// in oldRoot adopt that node's family (and, when their props carry the
// same values, its props reference). Two trees decoded from separate
// snapshots become diffable generations of one logical tree.
func RebindFamilies(oldRoot, newRoot *shadow.Node) *shadow.Node {
	families := make(map[rendercore.Tag]*shadow.Family)
	props := make(map[rendercore.Tag]shadow.Props)
	collectIdentities(oldRoot, families, props)
	return rebindNode(newRoot, families, props)
}

func collectIdentities(node *shadow.Node, families map[rendercore.Tag]*shadow.Family, props map[rendercore.Tag]shadow.Props) {
	families[node.Tag()] = node.Family()
	props[node.Tag()] = node.Props()
	for _, child := range node.Children() {
		collectIdentities(child, families, props)
	}
}

func rebindNode(node *shadow.Node, families map[rendercore.Tag]*shadow.Family, oldProps map[rendercore.Tag]shadow.Props) *shadow.Node {
	children := make([]*shadow.Node, 0, len(node.Children()))
	for _, child := range node.Children() {
		children = append(children, rebindNode(child, families, oldProps))
	}

	family, existed := families[node.Tag()]
	if !existed {
		family = node.Family()
	}

	props := node.Props()
	if existed {
		if old, ok := oldProps[node.Tag()]; ok && propsEquivalent(old, props) {
			props = old
		}
	}

	return shadow.NewNode(shadow.NodeSpec{
		Family:        family,
		Props:         props,
		Children:      children,
		LayoutMetrics: node.LayoutMetrics(),
		OrderIndex:    node.OrderIndex(),
		Traits:        node.Traits(),
	})
}

// propsEquivalent reports whether two decoded props carry the same values.
// Only snapshot props are comparable this way; anything else keeps its
// identity.
func propsEquivalent(a, b shadow.Props) bool {
	ap, aok := a.(*SnapshotProps)
	bp, bok := b.(*SnapshotProps)
	if !aok || !bok {
		return a == nil && b == nil
	}
	if len(ap.Values) != len(bp.Values) {
		return false
	}
	for k, av := range ap.Values {
		bv, ok := bp.Values[k]
		if !ok || !reflect.DeepEqual(av, bv) {
			return false
		}
	}
	return true
}
