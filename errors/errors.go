package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode    Phase = "decode"    // wire to tree
	PhaseEncode    Phase = "encode"    // tree to wire
	PhaseCommit    Phase = "commit"    // shadow tree commits
	PhaseMount     Phase = "mount"     // mutation application
	PhaseLayout    Phase = "layout"    // surface measurement
	PhaseLifecycle Phase = "lifecycle" // surface state machine
	PhaseRegistry  Phase = "registry"  // tree registry operations
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidData    Kind = "invalid_data"
	KindOutOfBounds    Kind = "out_of_bounds"
	KindUnsupported    Kind = "unsupported"
	KindNotFound       Kind = "not_found"
	KindInvalidInput   Kind = "invalid_input"
	KindBadMagic       Kind = "bad_magic"
	KindBadVersion     Kind = "bad_version"
	KindTruncated      Kind = "truncated"
	KindInvalidEnum    Kind = "invalid_enum"
	KindDuplicateTag   Kind = "duplicate_tag"
	KindCommitAborted  Kind = "commit_aborted"
	KindNotInitialized Kind = "not_initialized"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value     any
	Cause     error
	Phase     Phase
	Kind      Kind
	Component string
	Tag       int64
	Detail    string
	Path      []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Component != "" {
		b.WriteString(": component ")
		b.WriteString(e.Component)
	}

	if e.Tag != 0 {
		if e.Component != "" {
			b.WriteString(" tag ")
		} else {
			b.WriteString(": tag ")
		}
		fmt.Fprintf(&b, "%d", e.Tag)
	}

	if e.Detail != "" {
		if e.Component != "" || e.Tag != 0 {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Component sets the component type name
func (b *Builder) Component(name string) *Builder {
	b.err.Component = name
	return b
}

// Tag sets the offending node tag
func (b *Builder) Tag(tag int64) *Builder {
	b.err.Tag = tag
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NotFound creates a not-found error
func NotFound(phase Phase, what string, value any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %v not found", what, value),
		Value:  value,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// BadMagic creates a wire-framing magic mismatch error
func BadMagic(expected, actual uint16) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindBadMagic,
		Detail: fmt.Sprintf("expected magic %#04x, got %#04x", expected, actual),
		Value:  actual,
	}
}

// BadVersion creates a wire-framing version mismatch error
func BadVersion(expected, actual uint8) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindBadVersion,
		Detail: fmt.Sprintf("protocol version %d not supported (want %d)", actual, expected),
		Value:  actual,
	}
}

// Truncated creates a short-buffer error
func Truncated(what string, have, want int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindTruncated,
		Detail: fmt.Sprintf("%s truncated: have %d bytes, want %d", what, have, want),
	}
}

// InvalidEnum creates an invalid enum value error
func InvalidEnum(phase Phase, path []string, value any, enumType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidEnum,
		Path:   path,
		Detail: fmt.Sprintf("invalid enum value %v for %s", value, enumType),
		Value:  value,
	}
}

// DuplicateTag creates a duplicate node tag error
func DuplicateTag(phase Phase, path []string, tag int64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDuplicateTag,
		Path:   path,
		Tag:    tag,
		Detail: "tag already present in snapshot",
	}
}

// CommitAborted creates an aborted-commit error
func CommitAborted(surfaceID int64) *Error {
	return &Error{
		Phase:  PhaseCommit,
		Kind:   KindCommitAborted,
		Detail: fmt.Sprintf("commit transaction for surface %d returned no tree", surfaceID),
	}
}

// NotInitialized creates a not-initialized error for a missing collaborator
func NotInitialized(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
