// Package errors provides structured error types for the render-core library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, component name, node tag, and
// cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidData).
//		Path("root", "children", "2").
//		Component("Paragraph").
//		Detail("child list shorter than declared").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Truncated("frame header", 4, 8)
//	err := errors.NotFound(errors.PhaseRegistry, "surface", 11)
//
// All errors implement the standard error interface and support errors.Is/As.
//
// Contract violations (diffing roots of different families, illegal surface
// lifecycle transitions, closing a non-empty registry) are not represented
// here: they are programmer errors and panic at the call site.
package errors
