package mounting

import (
	"sync"

	rendercore "github.com/wippyai/render-core"
)

// TreeRegistry indexes live shadow trees by surface id. Add and Remove
// take the exclusive lock; Visit and Enumerate take the shared lock and
// hold it across the callback. Callbacks must not reenter the registry.
//
// The registry must outlive every tree it holds; closing a non-empty
// registry is a contract violation.
type TreeRegistry struct {
	mu    sync.RWMutex
	trees map[rendercore.SurfaceID]*Tree
}

// NewTreeRegistry creates an empty registry.
func NewTreeRegistry() *TreeRegistry {
	return &TreeRegistry{
		trees: make(map[rendercore.SurfaceID]*Tree),
	}
}

// Add inserts the tree under its surface id, taking ownership.
func (r *TreeRegistry) Add(tree *Tree) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trees[tree.SurfaceID()] = tree
}

// Remove drops the tree for the surface if present. Removing an absent
// surface is a silent no-op.
func (r *TreeRegistry) Remove(surfaceID rendercore.SurfaceID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.trees, surfaceID)
}

// Visit invokes fn with the tree for the surface, if present, and reports
// whether it was found. fn runs while the shared lock is held.
func (r *TreeRegistry) Visit(surfaceID rendercore.SurfaceID, fn func(tree *Tree)) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tree, ok := r.trees[surfaceID]
	if !ok {
		return false
	}

	fn(tree)
	return true
}

// Enumerate invokes fn for every registered tree until fn sets the stop
// flag. fn runs while the shared lock is held.
func (r *TreeRegistry) Enumerate(fn func(tree *Tree, stop *bool)) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stop := false
	for _, tree := range r.trees {
		fn(tree, &stop)
		if stop {
			break
		}
	}
}

// Len returns the number of registered trees.
func (r *TreeRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.trees)
}

// Close asserts that the registry was fully drained. Closing a registry
// that still holds trees panics.
func (r *TreeRegistry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.trees) != 0 {
		panic("mounting: closing a non-empty TreeRegistry")
	}
	r.trees = nil
}
