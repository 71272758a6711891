package sksl

import (
	"testing"

	"github.com/slint-ui/sksl/ast"
)

func benchmarkTree(b *testing.B) *ast.Node {
	b.Helper()
	root, err := ast.Load([]byte(shaderYAML))
	if err != nil {
		b.Fatalf("ast.Load: %v", err)
	}
	return root
}

func BenchmarkResolve(b *testing.B) {
	root := benchmarkTree(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		program, err := Resolve(root)
		if err != nil {
			b.Fatal(err)
		}
		program.Destroy()
	}
}

func BenchmarkCompileMetal(b *testing.B) {
	root := benchmarkTree(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Compile(root, CompileOptions{Dialect: DialectMetal}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompileGLSL(b *testing.B) {
	root := benchmarkTree(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Compile(root, CompileOptions{Dialect: DialectGLSL}); err != nil {
			b.Fatal(err)
		}
	}
}
