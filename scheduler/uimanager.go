package scheduler

import (
	rendercore "github.com/wippyai/render-core"
	"github.com/wippyai/render-core/mounting"
	"github.com/wippyai/render-core/shadow"
)

// UIManager is the collaborator a SurfaceHandler drives. It allocates and
// tears down the shadow tree backing a surface and answers measurement
// queries.
type UIManager interface {
	// StartSurface allocates the shadow tree for the surface, seeds it
	// with the given props and layout inputs, and returns it.
	StartSurface(
		surfaceID rendercore.SurfaceID,
		moduleName string,
		props shadow.Props,
		constraints rendercore.LayoutConstraints,
		layoutContext rendercore.LayoutContext,
	) *mounting.Tree

	// StopSurface tears down the surface's tree.
	StopSurface(surfaceID rendercore.SurfaceID)

	// MeasureSurface computes the size the surface would occupy under the
	// given constraints without committing anything.
	MeasureSurface(
		surfaceID rendercore.SurfaceID,
		constraints rendercore.LayoutConstraints,
		layoutContext rendercore.LayoutContext,
	) rendercore.Size

	// SetSurfaceDisplayMode pushes a display mode change for a running
	// surface.
	SetSurfaceDisplayMode(surfaceID rendercore.SurfaceID, mode DisplayMode)
}
