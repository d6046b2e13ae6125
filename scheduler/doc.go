// Package scheduler provides the surface lifecycle machinery: the
// SurfaceHandler state machine that owns a shadow tree reference, the
// UIManager contract it drives, and event beat dispatch.
//
// # Lifecycle
//
// A SurfaceHandler moves through three states:
//
//	Unregistered  newly created; the only state safe to discard
//	Registered    holds a UIManager reference, ready to start
//	Running       started; owns a live shadow tree
//
// Legal transitions are Unregistered <-> Registered (via SetUIManager) and
// Registered <-> Running (via Start/Stop). Starting a running surface or
// stopping a non-running one is a contract violation and panics.
//
// # Locking
//
// All state is split into two independently locked halves: the link
// (status, UIManager, shadow tree) and the parameters (module name, surface
// id, display mode, props, layout inputs). No call path acquires both
// locks, which is what prevents deadlock between parameter setters and
// lifecycle transitions racing from different goroutines. Collapsing the
// two locks into one reintroduces that ordering hazard.
package scheduler
