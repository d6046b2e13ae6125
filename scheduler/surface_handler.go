package scheduler

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	rendercore "github.com/wippyai/render-core"
	"github.com/wippyai/render-core/mounting"
	"github.com/wippyai/render-core/shadow"
)

// Status is the lifecycle state of a SurfaceHandler.
type Status uint8

const (
	// StatusUnregistered marks newly created or already-unregistered
	// handlers. The only state in which a handler may be discarded.
	StatusUnregistered Status = iota

	// StatusRegistered marks handlers holding a UIManager reference,
	// ready to start a surface.
	StatusRegistered

	// StatusRunning marks registered and started handlers.
	StatusRunning
)

func (s Status) String() string {
	switch s {
	case StatusUnregistered:
		return "unregistered"
	case StatusRegistered:
		return "registered"
	case StatusRunning:
		return "running"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// DisplayMode defines how committed visual side effects are mounted.
type DisplayMode uint8

const (
	// DisplayModeVisible mounts all visual side effects normally.
	DisplayModeVisible DisplayMode = iota

	// DisplayModeSuspended keeps previously mounted effects on screen but
	// stops mounting new commits. Useful for preparing a surface without
	// spending resources on mounting.
	DisplayModeSuspended

	// DisplayModeHidden unmounts previously mounted effects and stops
	// mounting new commits until the mode switches back.
	DisplayModeHidden
)

func (m DisplayMode) String() string {
	switch m {
	case DisplayModeVisible:
		return "visible"
	case DisplayModeSuspended:
		return "suspended"
	case DisplayModeHidden:
		return "hidden"
	}
	return fmt.Sprintf("DisplayMode(%d)", uint8(m))
}

// link holds the half of the handler state tied to lifecycle transitions.
type link struct {
	status     Status
	uiManager  UIManager
	shadowTree *mounting.Tree
}

// parameters holds the half of the handler state that can change
// independently of lifecycle transitions.
type parameters struct {
	moduleName    string
	surfaceID     rendercore.SurfaceID
	displayMode   DisplayMode
	props         shadow.Props
	constraints   rendercore.LayoutConstraints
	layoutContext rendercore.LayoutContext
}

// SurfaceHandler represents one surface and provides control over it.
//
// All methods are safe for concurrent use, but the consumer must keep the
// calls logically consistent: starting a running surface or stopping a
// non-running one panics. A handler must be back in the Unregistered state
// before it is discarded.
type SurfaceHandler struct {
	// The two halves are locked independently; no method acquires both
	// mutexes, which keeps parameter setters and lifecycle transitions
	// deadlock-free against each other.
	linkMu sync.RWMutex
	link   link

	paramsMu sync.RWMutex
	params   parameters
}

// NewSurfaceHandler creates a handler in the Unregistered state.
func NewSurfaceHandler(moduleName string, surfaceID rendercore.SurfaceID) *SurfaceHandler {
	return &SurfaceHandler{
		params: parameters{
			moduleName:  moduleName,
			surfaceID:   surfaceID,
			displayMode: DisplayModeVisible,
		},
	}
}

// Status returns a momentary value of the lifecycle status.
func (h *SurfaceHandler) Status() Status {
	h.linkMu.RLock()
	defer h.linkMu.RUnlock()
	return h.link.status
}

// SetUIManager registers or unregisters the handler. A non-nil manager
// moves Unregistered to Registered; nil moves Registered back to
// Unregistered. Calling it on a running surface panics.
func (h *SurfaceHandler) SetUIManager(uiManager UIManager) {
	h.linkMu.Lock()
	defer h.linkMu.Unlock()

	if h.link.status == StatusRunning {
		panic("scheduler: SetUIManager on a running surface")
	}

	if uiManager != nil {
		h.link.uiManager = uiManager
		h.link.status = StatusRegistered
	} else {
		h.link.uiManager = nil
		h.link.status = StatusUnregistered
	}
}

// Start moves the surface from Registered to Running, allocating the
// backing shadow tree through the UIManager. Starting a surface that is
// not exactly Registered panics.
func (h *SurfaceHandler) Start() {
	surfaceID, moduleName := h.SurfaceID(), h.ModuleName()
	props := h.Props()
	constraints, layoutContext := h.LayoutConstraints(), h.LayoutContext()
	mode := h.DisplayMode()

	h.linkMu.Lock()
	defer h.linkMu.Unlock()

	switch h.link.status {
	case StatusRunning:
		panic("scheduler: Start on a running surface")
	case StatusUnregistered:
		panic("scheduler: Start on an unregistered surface")
	}

	h.link.shadowTree = h.link.uiManager.StartSurface(
		surfaceID, moduleName, props, constraints, layoutContext)
	h.link.status = StatusRunning

	if mode != DisplayModeVisible {
		h.link.uiManager.SetSurfaceDisplayMode(surfaceID, mode)
	}

	logger().Debug("surface started",
		zap.Int32("surfaceId", int32(surfaceID)),
		zap.String("module", moduleName))
}

// Stop moves the surface from Running back to Registered, tearing down
// the tree. Stopping a non-running surface panics.
func (h *SurfaceHandler) Stop() {
	surfaceID := h.SurfaceID()

	h.linkMu.Lock()
	defer h.linkMu.Unlock()

	if h.link.status != StatusRunning {
		panic("scheduler: Stop on a non-running surface")
	}

	h.link.uiManager.StopSurface(surfaceID)
	h.link.shadowTree = nil
	h.link.status = StatusRegistered

	logger().Debug("surface stopped", zap.Int32("surfaceId", int32(surfaceID)))
}

// SetDisplayMode changes the display mode. Legal at any status; when the
// surface is running the mode is also pushed to the UIManager.
func (h *SurfaceHandler) SetDisplayMode(mode DisplayMode) {
	h.paramsMu.Lock()
	if h.params.displayMode == mode {
		h.paramsMu.Unlock()
		return
	}
	h.params.displayMode = mode
	surfaceID := h.params.surfaceID
	h.paramsMu.Unlock()

	h.linkMu.RLock()
	defer h.linkMu.RUnlock()

	if h.link.status == StatusRunning {
		h.link.uiManager.SetSurfaceDisplayMode(surfaceID, mode)
	}
}

// DisplayMode returns the current display mode.
func (h *SurfaceHandler) DisplayMode() DisplayMode {
	h.paramsMu.RLock()
	defer h.paramsMu.RUnlock()
	return h.params.displayMode
}

// SurfaceID returns the surface id.
func (h *SurfaceHandler) SurfaceID() rendercore.SurfaceID {
	h.paramsMu.RLock()
	defer h.paramsMu.RUnlock()
	return h.params.surfaceID
}

// SetSurfaceID changes the surface id. Parameters can change at any status.
func (h *SurfaceHandler) SetSurfaceID(surfaceID rendercore.SurfaceID) {
	h.paramsMu.Lock()
	defer h.paramsMu.Unlock()
	h.params.surfaceID = surfaceID
}

// ModuleName returns the module name.
func (h *SurfaceHandler) ModuleName() string {
	h.paramsMu.RLock()
	defer h.paramsMu.RUnlock()
	return h.params.moduleName
}

// Props returns the surface props.
func (h *SurfaceHandler) Props() shadow.Props {
	h.paramsMu.RLock()
	defer h.paramsMu.RUnlock()
	return h.params.props
}

// SetProps replaces the surface props. Parameters can change at any status.
func (h *SurfaceHandler) SetProps(props shadow.Props) {
	h.paramsMu.Lock()
	defer h.paramsMu.Unlock()
	h.params.props = props
}

// ConstraintLayout sets the layout constraints and context for the surface.
func (h *SurfaceHandler) ConstraintLayout(constraints rendercore.LayoutConstraints, layoutContext rendercore.LayoutContext) {
	h.paramsMu.Lock()
	defer h.paramsMu.Unlock()
	h.params.constraints = constraints
	h.params.layoutContext = layoutContext
}

// LayoutConstraints returns the constraints associated with the surface.
func (h *SurfaceHandler) LayoutConstraints() rendercore.LayoutConstraints {
	h.paramsMu.RLock()
	defer h.paramsMu.RUnlock()
	return h.params.constraints
}

// LayoutContext returns the layout context associated with the surface.
func (h *SurfaceHandler) LayoutContext() rendercore.LayoutContext {
	h.paramsMu.RLock()
	defer h.paramsMu.RUnlock()
	return h.params.layoutContext
}

// ShadowTree returns the tree backing a running surface, or nil.
func (h *SurfaceHandler) ShadowTree() *mounting.Tree {
	h.linkMu.RLock()
	defer h.linkMu.RUnlock()
	return h.link.shadowTree
}

// Measure measures the surface with the given constraints and context.
// Returns the zero size when the surface is not running.
func (h *SurfaceHandler) Measure(constraints rendercore.LayoutConstraints, layoutContext rendercore.LayoutContext) rendercore.Size {
	surfaceID := h.SurfaceID()

	h.linkMu.RLock()
	defer h.linkMu.RUnlock()

	if h.link.status != StatusRunning {
		return rendercore.Size{}
	}

	return h.link.uiManager.MeasureSurface(surfaceID, constraints, layoutContext)
}
