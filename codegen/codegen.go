// Package codegen defines the contract between resolved programs and the
// dialect backends that turn them into target source text.
package codegen

import (
	"fmt"

	"github.com/slint-ui/sksl/ir"
)

// Generator translates a resolved program into source text for one target
// dialect. Generation never mutates the program: the same program may be
// handed to any number of generators, and handing the same program to the
// same generator twice produces byte-identical output.
//
// On error no partial output is returned.
type Generator interface {
	Generate(program *ir.Program) (string, error)
}

// GenerationError reports a construct the target dialect cannot express.
type GenerationError struct {
	// Construct names the unsupported construct, e.g. "string literal".
	Construct string

	// Offset is the character offset of the construct in the original
	// source.
	Offset int

	// Message describes why the construct cannot be generated.
	Message string
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	return fmt.Sprintf("error: %d: %s", e.Offset, e.Message)
}

// Errorf builds a GenerationError for the named construct.
//
//nolint:goprintffuncname
func Errorf(construct string, offset int, format string, args ...any) *GenerationError {
	return &GenerationError{
		Construct: construct,
		Offset:    offset,
		Message:   fmt.Sprintf(format, args...),
	}
}
