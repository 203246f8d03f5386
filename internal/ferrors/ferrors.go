// Package ferrors defines the error kinds shared across the mining
// pipeline. ProgrammerError marks an invariant violation that has no
// recovery path; since Go has no assert/NDEBUG split, callers that hit
// one should panic rather than propagate it as a normal error.
package ferrors

import "fmt"

// Kind classifies an Error by its source.
type Kind int

const (
	// IoError wraps a failure reading or writing a dataset, mapping, or
	// output file.
	IoError Kind = iota
	// MalformedInput marks a line or record that doesn't match the
	// expected dataset/mapping format.
	MalformedInput
	// InvalidState marks a configuration or call sequence that violates
	// a component's preconditions (e.g. cliquesOnly without AsClique).
	InvalidState
	// ProgrammerError marks a broken internal invariant. Always fatal:
	// construct with Panic, never returned to a caller expected to
	// recover from it.
	ProgrammerError
)

func (k Kind) String() string {
	switch k {
	case IoError:
		return "io error"
	case MalformedInput:
		return "malformed input"
	case InvalidState:
		return "invalid state"
	case ProgrammerError:
		return "programmer error"
	default:
		return "unknown error"
	}
}

// Error is a Kind-tagged error with an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds an Error with no wrapped cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds an Error wrapping cause. If cause is nil, Wrap returns nil,
// so callers can write `return ferrors.Wrap(kind, msg, err)` directly
// after an operation that may or may not have failed.
func Wrap(kind Kind, message string, cause error) *Error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Is reports whether err is an *Error of the given Kind.
func Is(err error, kind Kind) bool {
	fe, ok := err.(*Error)
	return ok && fe.Kind == kind
}

// Panic raises a ProgrammerError as a panic, for invariant violations
// with no recovery path.
func Panic(message string) {
	panic(New(ProgrammerError, message))
}
