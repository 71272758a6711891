package sksl

import (
	"errors"
	"strings"
	"testing"

	"github.com/slint-ui/sksl/ast"
	"github.com/slint-ui/sksl/codegen"
	"github.com/slint-ui/sksl/resolver"
)

// shaderYAML is a syntax-tree dump of:
//
//	uniform float uScale;
//	void main() {
//	    sk_FragColor = float4(1.0, 0.0, 0.0, 1.0) * uScale;
//	}
const shaderYAML = `
kind: program
offset: 0
children:
  - kind: var
    offset: 1
    text: uScale
    modifiers: [uniform]
    children:
      - kind: type
        offset: 1
        text: float
  - kind: function
    offset: 2
    text: main
    children:
      - kind: type
        offset: 2
        text: void
      - kind: block
        offset: 3
        children:
          - kind: expr_stmt
            offset: 4
            children:
              - kind: assign
                offset: 4
                text: "="
                children:
                  - kind: identifier
                    offset: 4
                    text: sk_FragColor
                  - kind: binary
                    offset: 5
                    text: "*"
                    children:
                      - kind: call
                        offset: 5
                        text: float4
                        children:
                          - {kind: float, offset: 5, text: "1.0"}
                          - {kind: float, offset: 5, text: "0.0"}
                          - {kind: float, offset: 5, text: "0.0"}
                          - {kind: float, offset: 5, text: "1.0"}
                      - kind: identifier
                        offset: 6
                        text: uScale
`

func TestCompileYAMLMetal(t *testing.T) {
	src, err := CompileYAML([]byte(shaderYAML), DefaultOptions())
	if err != nil {
		t.Fatalf("CompileYAML: %v", err)
	}
	for _, want := range []string{
		"#include <metal_stdlib>",
		"struct Uniforms {\n    float uScale;\n};",
		"void _skslMain(Inputs _in, thread Outputs& _out, constant Uniforms& _uniforms) {",
		"_out.sk_FragColor = (float4(1.0, 0.0, 0.0, 1.0) * _uniforms.uScale);",
		"fragment Outputs fragmentMain(",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("missing %q in:\n%s", want, src)
		}
	}
}

func TestCompileYAMLGLSL(t *testing.T) {
	src, err := CompileYAML([]byte(shaderYAML), CompileOptions{Dialect: DialectGLSL})
	if err != nil {
		t.Fatalf("CompileYAML: %v", err)
	}
	for _, want := range []string{
		"#version 330 core",
		"uniform float uScale;",
		"void main() {",
		"sk_FragColor = (vec4(1.0, 0.0, 0.0, 1.0) * uScale);",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("missing %q in:\n%s", want, src)
		}
	}
}

// A resolved program may be generated into every dialect, repeatedly, with
// identical results each time.
func TestGenerateSharedProgram(t *testing.T) {
	root, err := ast.Load([]byte(shaderYAML))
	if err != nil {
		t.Fatalf("ast.Load: %v", err)
	}
	program, err := Resolve(root)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	defer program.Destroy()

	for _, dialect := range []Dialect{DialectMetal, DialectGLSL, DialectMetal} {
		src, err := Generate(program, CompileOptions{Dialect: dialect})
		if err != nil {
			t.Fatalf("Generate(%s): %v", dialect, err)
		}
		if src == "" {
			t.Fatalf("Generate(%s) produced no output", dialect)
		}
	}

	metalSrc, err := Generate(program, CompileOptions{Dialect: DialectMetal})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	again, err := Generate(program, CompileOptions{Dialect: DialectMetal})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if metalSrc != again {
		t.Error("repeated generation produced different output")
	}
}

func TestCompileResolutionError(t *testing.T) {
	root := &ast.Node{Kind: ast.KindProgram, Children: []*ast.Node{
		{Kind: ast.KindVarDecl, Offset: 7, Text: "x", Children: []*ast.Node{
			{Kind: ast.KindTypeName, Offset: 7, Text: "half3"},
		}},
	}}

	_, err := Compile(root, DefaultOptions())
	var resErr *resolver.ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("error = %v, want a ResolutionError", err)
	}
	if resErr.Offset != 7 {
		t.Errorf("offset = %d, want 7", resErr.Offset)
	}
	if !strings.Contains(err.Error(), "resolution error:") {
		t.Errorf("error = %q, want the resolution prefix", err)
	}
}

func TestCompileGenerationError(t *testing.T) {
	root := &ast.Node{Kind: ast.KindProgram, Children: []*ast.Node{
		{Kind: ast.KindVarDecl, Offset: 1, Text: "g", Children: []*ast.Node{
			{Kind: ast.KindTypeName, Text: "float"},
			{Kind: ast.KindFloatLit, Text: "1.0"},
		}},
		{Kind: ast.KindFunction, Text: "main", Children: []*ast.Node{
			{Kind: ast.KindTypeName, Text: "void"},
			{Kind: ast.KindBlock},
		}},
	}}

	_, err := Compile(root, DefaultOptions())
	var genErr *codegen.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("error = %v, want a GenerationError", err)
	}
	if genErr.Construct != "global variable" {
		t.Errorf("construct = %q, want %q", genErr.Construct, "global variable")
	}
}

func TestParseDialect(t *testing.T) {
	tests := []struct {
		name    string
		want    Dialect
		wantErr bool
	}{
		{name: "metal", want: DialectMetal},
		{name: "msl", want: DialectMetal},
		{name: "glsl", want: DialectGLSL},
		{name: "hlsl", wantErr: true},
		{name: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseDialect(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDialect(%q) succeeded, want error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDialect(%q): %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDialect(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestDialectString(t *testing.T) {
	if got := DialectMetal.String(); got != "metal" {
		t.Errorf("DialectMetal.String() = %q", got)
	}
	if got := DialectGLSL.String(); got != "glsl" {
		t.Errorf("DialectGLSL.String() = %q", got)
	}
	if got := Dialect(9).String(); got != "Dialect(9)" {
		t.Errorf("Dialect(9).String() = %q", got)
	}
}
