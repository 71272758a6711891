package metal

import (
	"fmt"

	"github.com/slint-ui/sksl/ir"
)

// Version represents an MSL language version.
type Version struct {
	Major uint8
	Minor uint8
}

// Common MSL versions.
var (
	Version2_1 = Version{Major: 2, Minor: 1}
	Version2_3 = Version{Major: 2, Minor: 3}
	Version3_0 = Version{Major: 3, Minor: 0}
)

// String returns the version as "major.minor".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Options configures MSL code generation.
type Options struct {
	// LangVersion is the target MSL version.
	// Defaults to Version2_1 if zero.
	LangVersion Version

	// EntryPoint names the program function to wrap as the fragment entry
	// point. Defaults to "main" if empty.
	EntryPoint string
}

// DefaultOptions returns sensible default options for MSL generation.
func DefaultOptions() Options {
	return Options{
		LangVersion: Version2_1,
		EntryPoint:  "main",
	}
}

// Info describes the compiled MSL output.
type Info struct {
	// EntryPointName is the name of the generated fragment function.
	EntryPointName string

	// InnerName is the name of the inner function the wrapper calls.
	InnerName string
}

// Compile generates MSL source code from a resolved program.
// Returns the MSL source as a string and translation info, or an error.
func Compile(program *ir.Program, options Options) (string, Info, error) {
	if options.LangVersion.Major == 0 {
		options.LangVersion = Version2_1
	}
	if options.EntryPoint == "" {
		options.EntryPoint = "main"
	}

	w := newWriter(program, &options)
	if err := w.writeProgram(); err != nil {
		return "", Info{}, fmt.Errorf("metal: %w", err)
	}

	info := Info{
		EntryPointName: wrapperName,
		InnerName:      innerName,
	}
	return w.String(), info, nil
}

// Generator adapts Compile to the codegen.Generator interface.
type Generator struct {
	Options Options
}

// Generate implements codegen.Generator.
func (g *Generator) Generate(program *ir.Program) (string, error) {
	source, _, err := Compile(program, g.Options)
	return source, err
}
