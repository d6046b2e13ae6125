// Package mounting implements the shadow tree differentiator and the
// machinery that owns live shadow trees.
//
// # Differentiator
//
// CalculateMutations compares two generations of a shadow tree and returns
// a linearly ordered list of primitive view mutations. Applying the list in
// order to a host view hierarchy that matches the old tree's flattened
// projection converges it to the new tree's flattened projection.
//
// The algorithm is deliberately optimized for simplicity and for the common
// cases (shallow updates, appends, small reorderings), not for minimal edit
// distance. It recurses per parent; a node moved to a different parent
// appears as a delete in the old parent plus a create in the new parent.
//
// # Mutation ordering
//
// Within one result the mutations are totally ordered so that every
// intermediate host-tree state stays well-formed:
//
//  1. destructive subtree work (children cleaned up before parents deleted)
//  2. updates
//  3. removes, highest index first
//  4. deletes
//  5. creates (parents exist before their children are inserted)
//  6. non-destructive subtree work
//  7. inserts
//
// Consumers must apply one result completely before applying the next one
// for the same surface.
//
// # Trees and the registry
//
// Tree owns the current root of a surface and serializes commits.
// TreeRegistry indexes live trees by surface id under a single
// reader/writer lock; visitor callbacks run while the shared lock is held
// and must not reenter the registry.
package mounting
