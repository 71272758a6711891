// Package sksl compiles a small shading language to backend shader source.
//
// The package is the middle and back end of a compiler: parsing happens
// elsewhere, and the input is an unresolved syntax tree (see the ast
// package, which can load trees from YAML dumps). Compilation resolves the
// tree into a typed IR program and hands it to a dialect backend:
//
//	root, err := ast.Load(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	source, err := sksl.Compile(root, sksl.DefaultOptions())
//
// For more control, run the stages separately:
//
//	program, err := sksl.Resolve(root)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer program.Destroy()
//	metalSrc, err := sksl.Generate(program, sksl.CompileOptions{Dialect: sksl.DialectMetal})
//	glslSrc, err := sksl.Generate(program, sksl.CompileOptions{Dialect: sksl.DialectGLSL})
//
// A resolved program is independent of any dialect: the same program may be
// generated into every backend, and generation never mutates it.
package sksl

import (
	"fmt"

	"github.com/slint-ui/sksl/ast"
	"github.com/slint-ui/sksl/codegen"
	"github.com/slint-ui/sksl/glsl"
	"github.com/slint-ui/sksl/ir"
	"github.com/slint-ui/sksl/metal"
	"github.com/slint-ui/sksl/resolver"
)

// Dialect selects a code generation backend.
type Dialect uint8

const (
	// DialectMetal targets the Metal Shading Language.
	DialectMetal Dialect = iota

	// DialectGLSL targets GLSL 330 core.
	DialectGLSL
)

// String returns the dialect name.
func (d Dialect) String() string {
	switch d {
	case DialectMetal:
		return "metal"
	case DialectGLSL:
		return "glsl"
	default:
		return fmt.Sprintf("Dialect(%d)", uint8(d))
	}
}

// ParseDialect maps a dialect name to its Dialect value.
func ParseDialect(name string) (Dialect, error) {
	switch name {
	case "metal", "msl":
		return DialectMetal, nil
	case "glsl":
		return DialectGLSL, nil
	default:
		return 0, fmt.Errorf("unknown dialect %q", name)
	}
}

// CompileOptions configures compilation.
type CompileOptions struct {
	// Dialect is the target backend.
	Dialect Dialect

	// EntryPoint names the program function treated as the fragment entry
	// point. Defaults to "main" if empty.
	EntryPoint string
}

// DefaultOptions returns sensible default options.
func DefaultOptions() CompileOptions {
	return CompileOptions{
		Dialect:    DialectMetal,
		EntryPoint: "main",
	}
}

// Compile resolves a syntax tree and generates backend source for it.
//
// The pipeline is:
//  1. Resolve the tree into a typed IR program
//  2. Generate target source from the program
func Compile(root *ast.Node, opts CompileOptions) (string, error) {
	program, err := Resolve(root)
	if err != nil {
		return "", fmt.Errorf("resolution error: %w", err)
	}
	defer program.Destroy()

	return Generate(program, opts)
}

// CompileYAML loads a YAML syntax-tree dump and compiles it.
func CompileYAML(data []byte, opts CompileOptions) (string, error) {
	root, err := ast.Load(data)
	if err != nil {
		return "", err
	}
	return Compile(root, opts)
}

// Resolve builds a typed IR program from an unresolved syntax tree.
//
// The caller owns the returned program and must call its Destroy method
// when done with it.
func Resolve(root *ast.Node) (*ir.Program, error) {
	return resolver.Resolve(root)
}

// Generate produces target source text for one dialect. The program is not
// consumed: it may be generated again, for the same or another dialect.
func Generate(program *ir.Program, opts CompileOptions) (string, error) {
	return NewGenerator(opts).Generate(program)
}

// NewGenerator returns the backend generator for the options' dialect.
func NewGenerator(opts CompileOptions) codegen.Generator {
	switch opts.Dialect {
	case DialectGLSL:
		glslOpts := glsl.DefaultOptions()
		if opts.EntryPoint != "" {
			glslOpts.EntryPoint = opts.EntryPoint
		}
		return &glsl.Generator{Options: glslOpts}
	default:
		metalOpts := metal.DefaultOptions()
		if opts.EntryPoint != "" {
			metalOpts.EntryPoint = opts.EntryPoint
		}
		return &metal.Generator{Options: metalOpts}
	}
}
