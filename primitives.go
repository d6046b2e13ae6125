package rendercore

// Tag is a stable integer identity for a shadow node, unique within a tree
// generation. Zero is reserved as a sentinel and never identifies a node.
type Tag int32

// SurfaceID identifies a top-level UI root.
type SurfaceID int32

// Point is a position in the parent's coordinate space.
type Point struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Size is a width/height extent.
type Size struct {
	Width  float64
	Height float64
}

// Rect is an origin plus a size.
type Rect struct {
	Origin Point
	Size   Size
}

// DisplayType mirrors the node's participation in layout.
type DisplayType uint8

const (
	DisplayTypeNone DisplayType = iota
	DisplayTypeFlex
	DisplayTypeInline
)

// LayoutMetrics carries the layout outcome that affects host-side
// appearance. Equality is structural.
type LayoutMetrics struct {
	Frame            Rect
	ContentInsets    EdgeInsets
	BorderWidth      EdgeInsets
	DisplayType      DisplayType
	PointScaleFactor float64
}

// EdgeInsets are per-edge distances, used for content and border insets.
type EdgeInsets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// LayoutConstraints bound the size a surface may occupy when measured.
type LayoutConstraints struct {
	MinimumSize Size
	MaximumSize Size
}

// Clamp restricts a size to the constraints.
func (c LayoutConstraints) Clamp(size Size) Size {
	if size.Width < c.MinimumSize.Width {
		size.Width = c.MinimumSize.Width
	}
	if size.Height < c.MinimumSize.Height {
		size.Height = c.MinimumSize.Height
	}
	if c.MaximumSize.Width != 0 && size.Width > c.MaximumSize.Width {
		size.Width = c.MaximumSize.Width
	}
	if c.MaximumSize.Height != 0 && size.Height > c.MaximumSize.Height {
		size.Height = c.MaximumSize.Height
	}
	return size
}

// LayoutContext carries ambient layout inputs that are not constraints.
type LayoutContext struct {
	PointScaleFactor   float64
	ViewportOffset     Point
	FontSizeMultiplier float64
}
