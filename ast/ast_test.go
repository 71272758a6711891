package ast

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	src := []byte(`
kind: program
offset: 0
children:
  - kind: var
    offset: 4
    text: x
    modifiers: [const]
    children:
      - {kind: type, offset: 4, text: float}
      - {kind: float, offset: 14, text: "1.0", token: float_literal}
`)
	root, err := Load(src)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if root.Kind != KindProgram {
		t.Fatalf("root kind = %q", root.Kind)
	}
	decl := root.Child(0)
	if decl == nil || decl.Kind != KindVarDecl || decl.Text != "x" {
		t.Fatalf("decl = %+v", decl)
	}
	if len(decl.Modifiers) != 1 || decl.Modifiers[0] != "const" {
		t.Errorf("modifiers = %v", decl.Modifiers)
	}
	init := decl.Child(1)
	if init == nil || init.Kind != KindFloatLit || init.Token != "float_literal" {
		t.Errorf("initializer = %+v", init)
	}
	if decl.Child(2) != nil {
		t.Error("Child past the end should be nil")
	}
}

func TestLoadRejectsUnknownKind(t *testing.T) {
	_, err := Load([]byte("kind: whatever\noffset: 3\n"))
	if err == nil || !strings.Contains(err.Error(), `unknown node kind "whatever"`) {
		t.Fatalf("err = %v", err)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load([]byte("kind: [unclosed"))
	if err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestDumpRoundTrip(t *testing.T) {
	root := &Node{
		Kind:   KindProgram,
		Offset: 0,
		Children: []*Node{
			{Kind: KindIdentifier, Offset: 2, Text: "x"},
		},
	}
	data, err := Dump(root)
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}
	back, err := Load(data)
	if err != nil {
		t.Fatalf("Load(Dump()): %v", err)
	}
	if back.Kind != KindProgram || len(back.Children) != 1 || back.Children[0].Text != "x" {
		t.Errorf("round trip mismatch: %+v", back)
	}
}
