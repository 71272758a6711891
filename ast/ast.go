// Package ast defines the unresolved syntax tree handed to the compiler by
// an external parser.
//
// The compiler never tokenizes or parses source text itself: it trusts node
// boundaries established upstream and only retains the lexer's literal token
// sub-kinds for literal tagging. Trees serialize to YAML so that a parser
// written in any language can hand programs across a process boundary.
package ast

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind identifies a raw syntax construct. Kinds are strings so that tree
// dumps stay self-describing.
type Kind string

const (
	KindProgram     Kind = "program"
	KindFunction    Kind = "function"
	KindParameter   Kind = "parameter"
	KindVarDecl     Kind = "var"
	KindEnumDecl    Kind = "enum"
	KindEnumMember  Kind = "enum_member"
	KindBlock       Kind = "block"
	KindFor         Kind = "for"
	KindExprStmt    Kind = "expr_stmt"
	KindAssign      Kind = "assign"
	KindBinary      Kind = "binary"
	KindUnary       Kind = "unary"
	KindCall        Kind = "call"
	KindFieldAccess Kind = "field"
	KindIdentifier  Kind = "identifier"
	KindIntLiteral  Kind = "int"
	KindFloatLit    Kind = "float"
	KindBoolLiteral Kind = "bool"
	KindStringLit   Kind = "string"
	KindTypeName    Kind = "type"
)

// Node is a uniform raw syntax node. The meaning of Text and the child
// layout depend on Kind:
//
//	program       children: declarations
//	function      Text: name; children: return type, parameters..., body block
//	parameter     Text: name; children: type
//	var           Text: name; Modifiers; children: type, optional initializer
//	enum          Text: name; children: enum_member...
//	enum_member   Text: member name
//	block         children: statements
//	for           children: init statement, condition, next, body
//	expr_stmt     children: expression
//	assign        Text: operator; children: target, value
//	binary        Text: operator; children: left, right
//	unary         Text: operator; children: operand
//	call          Text: callee name; children: arguments
//	field         Text: field name; children: base
//	identifier    Text: name
//	int, float,
//	bool, string  Text: literal spelling; Token: lexer sub-kind
//	type          Text: type name
type Node struct {
	Kind      Kind     `yaml:"kind"`
	Offset    int      `yaml:"offset"`
	Text      string   `yaml:"text,omitempty"`
	Token     string   `yaml:"token,omitempty"`
	Modifiers []string `yaml:"modifiers,omitempty"`
	Children  []*Node  `yaml:"children,omitempty"`
}

// Child returns the i-th child, or nil if absent.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Load decodes a YAML syntax-tree dump and validates its shape.
func Load(data []byte) (*Node, error) {
	var root Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("ast: decoding tree: %w", err)
	}
	if err := validate(&root); err != nil {
		return nil, err
	}
	return &root, nil
}

// Dump encodes a syntax tree as YAML.
func Dump(root *Node) ([]byte, error) {
	data, err := yaml.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("ast: encoding tree: %w", err)
	}
	return data, nil
}

var validKinds = map[Kind]struct{}{
	KindProgram: {}, KindFunction: {}, KindParameter: {}, KindVarDecl: {},
	KindEnumDecl: {}, KindEnumMember: {}, KindBlock: {}, KindFor: {},
	KindExprStmt: {}, KindAssign: {}, KindBinary: {}, KindUnary: {}, KindCall: {},
	KindFieldAccess: {}, KindIdentifier: {}, KindIntLiteral: {},
	KindFloatLit: {}, KindBoolLiteral: {}, KindStringLit: {}, KindTypeName: {},
}

func validate(n *Node) error {
	if _, ok := validKinds[n.Kind]; !ok {
		return fmt.Errorf("ast: unknown node kind %q at offset %d", n.Kind, n.Offset)
	}
	for _, c := range n.Children {
		if c == nil {
			return fmt.Errorf("ast: nil child under %q node at offset %d", n.Kind, n.Offset)
		}
		if err := validate(c); err != nil {
			return err
		}
	}
	return nil
}
