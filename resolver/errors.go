package resolver

import "fmt"

// ResolutionError reports a failure to turn a syntax construct into a typed
// IR node: an undeclared or ambiguous symbol, a type mismatch, a bad call, an
// invalid literal, or a duplicate declaration.
//
// Resolution of the enclosing construct stops at the first error; whether to
// keep resolving sibling constructs for multi-error reporting is the driving
// caller's decision.
type ResolutionError struct {
	// Offset is the character offset of the offending construct.
	Offset int

	// Message describes the failure.
	Message string
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	return fmt.Sprintf("error: %d: %s", e.Offset, e.Message)
}

// errorf builds a ResolutionError at the given offset.
//
//nolint:goprintffuncname
func errorf(offset int, format string, args ...any) *ResolutionError {
	return &ResolutionError{Offset: offset, Message: fmt.Sprintf(format, args...)}
}
