// Package rendercore provides the core of a retained-mode UI renderer:
// immutable shadow trees, a tree differentiator producing ordered view
// mutations, and the surface lifecycle machinery that owns the trees.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	render-core/         Root package with shared primitives (tags, geometry, layout)
//	├── shadow/          Immutable shadow node trees, traits, and view projections
//	├── mounting/        Tree differentiator, mutation records, shadow tree registry
//	├── scheduler/       Surface lifecycle state machine and event beat dispatch
//	├── text/            Attributed-string assembly over text-bearing subtrees
//	├── wire/            Snapshot and mutation wire codec for tooling
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Diff two generations of a shadow tree:
//
//	mutations := mounting.CalculateMutations(oldRoot, newRoot)
//	for _, m := range mutations {
//	    fmt.Println(m)
//	}
//
// The mutation list is totally ordered; a mounting layer must apply it in
// list order to converge a host view hierarchy from the old tree's shape to
// the new tree's shape.
//
// # Thread Safety
//
// Shadow trees are immutable and freely shareable across goroutines. The
// differentiator is pure and synchronous; concurrent calls are safe as long
// as each call has its own pair of roots. TreeRegistry and SurfaceHandler
// are safe for concurrent use; see their package documentation for the
// locking discipline.
//
// # Contract Violations
//
// Misuse that the original design treats as a programmer error (diffing
// roots of different families, starting a running surface, closing a
// non-empty registry) panics at the call site. Everything else is total or
// returns a structured error from the errors package.
package rendercore
