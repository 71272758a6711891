package glsl

import (
	"fmt"

	"github.com/slint-ui/sksl/ir"
)

// Version represents a GLSL version.
type Version struct {
	Major uint8
	Minor uint8
	ES    bool // true for GLSL ES (OpenGL ES / WebGL)
}

// Common GLSL versions.
var (
	Version330   = Version{Major: 3, Minor: 30}          // OpenGL 3.3 Core
	Version450   = Version{Major: 4, Minor: 50}          // OpenGL 4.5
	VersionES300 = Version{Major: 3, Minor: 0, ES: true} // ES 3.0 / WebGL 2.0
)

// String returns the version as a GLSL version directive value.
func (v Version) String() string {
	if v.ES {
		return fmt.Sprintf("%d%02d es", v.Major, v.Minor)
	}
	return fmt.Sprintf("%d%02d core", v.Major, v.Minor)
}

// Options configures GLSL code generation.
type Options struct {
	// LangVersion is the target GLSL version.
	// Defaults to Version330 if zero.
	LangVersion Version

	// EntryPoint names the program function emitted as 'void main()'.
	// Defaults to "main" if empty.
	EntryPoint string
}

// DefaultOptions returns sensible default options for GLSL generation.
func DefaultOptions() Options {
	return Options{
		LangVersion: Version330,
		EntryPoint:  "main",
	}
}

// Compile generates GLSL fragment shader source from a resolved program.
func Compile(program *ir.Program, options Options) (string, error) {
	if options.LangVersion.Major == 0 {
		options.LangVersion = Version330
	}
	if options.EntryPoint == "" {
		options.EntryPoint = "main"
	}

	w := newWriter(program, &options)
	if err := w.writeProgram(); err != nil {
		return "", fmt.Errorf("glsl: %w", err)
	}
	return w.String(), nil
}

// Generator adapts Compile to the codegen.Generator interface.
type Generator struct {
	Options Options
}

// Generate implements codegen.Generator.
func (g *Generator) Generate(program *ir.Program) (string, error) {
	return Compile(program, g.Options)
}
