package ir

import "fmt"

// Kind identifies which concrete construct a Node represents.
type Kind uint8

const (
	KindBlock Kind = iota
	KindBoolLiteral
	KindEnum
	KindExternalValue
	KindField
	KindFloatLiteral
	KindForStatement
	KindFunctionCall
	KindIntLiteral
	KindString
	KindSymbol
	KindSymbolAlias
	KindType
	KindTypeToken
	KindVariable
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "Block"
	case KindBoolLiteral:
		return "BoolLiteral"
	case KindEnum:
		return "Enum"
	case KindExternalValue:
		return "ExternalValue"
	case KindField:
		return "Field"
	case KindFloatLiteral:
		return "FloatLiteral"
	case KindForStatement:
		return "ForStatement"
	case KindFunctionCall:
		return "FunctionCall"
	case KindIntLiteral:
		return "IntLiteral"
	case KindString:
		return "String"
	case KindSymbol:
		return "Symbol"
	case KindSymbolAlias:
		return "SymbolAlias"
	case KindType:
		return "Type"
	case KindTypeToken:
		return "TypeToken"
	case KindVariable:
		return "Variable"
	default:
		return "Unknown"
	}
}

// Typed reports whether nodes of this kind carry a type, i.e. whether
// Node.Type is defined for them.
func (k Kind) Typed() bool {
	switch k {
	case KindBoolLiteral, KindExternalValue, KindField, KindFloatLiteral,
		KindFunctionCall, KindIntLiteral, KindSymbol, KindType,
		KindTypeToken, KindVariable:
		return true
	default:
		return false
	}
}

// Payload is the construct-specific data carried by a Node, selected by its
// kind. Exactly one payload is live per node at all times; replacing it goes
// through Node.ReplaceData, never through partial cross-kind mutation.
type Payload interface {
	payloadKind() Kind

	// clone returns a copy of the payload so that copy-assigned nodes do
	// not alias mutable payload state (variable counters in particular).
	clone() Payload
}

// Node represents a node in the intermediate representation (IR) tree. The IR
// is a fully-resolved version of the program (all types determined, everything
// validated), ready for code generation.
//
// A node owns two ordered child lists: value children are value-producing
// sub-nodes (expressions), effect children are effect/control sub-nodes
// (statements). Expressions always have a type and statements never do, so
// keeping them split lets tree walks iterate one category without per-child
// kind checks, while Node itself stays the single uniform tree element.
type Node struct {
	// Offset is the character offset of this element within the program
	// being compiled, for error reporting purposes.
	Offset int

	kind Kind
	data Payload

	valueChildren []*Node
	// effectChildren must be destroyed before data is released: destroying
	// statements can modify reference bookkeeping in a SymbolTable held by
	// the payload.
	effectChildren []*Node
}

// NewNode constructs a childless node from its payload. The node's kind is
// the payload's kind.
func NewNode(offset int, data Payload) *Node {
	if data == nil {
		panic("ir: NewNode called with nil payload")
	}
	n := &Node{Offset: offset, kind: data.payloadKind(), data: data}
	n.retainPayload()
	return n
}

// NewNodeWithValues constructs a node owning the given value children.
func NewNodeWithValues(offset int, data Payload, values []*Node) *Node {
	n := NewNode(offset, data)
	n.valueChildren = values
	return n
}

// NewNodeWithEffects constructs a node owning the given effect children.
// Only kinds whose semantics are a statement sequence (Block, ForStatement)
// may carry effect children; anything else is a programming error.
func NewNodeWithEffects(offset int, data Payload, effects []*Node) *Node {
	return NewNodeWithChildren(offset, data, nil, effects)
}

// NewNodeWithChildren constructs a node owning both child lists. The effect
// list is subject to the same kind restriction as NewNodeWithEffects.
func NewNodeWithChildren(offset int, data Payload, values, effects []*Node) *Node {
	kind := data.payloadKind()
	if len(effects) > 0 && kind != KindBlock && kind != KindForStatement {
		panic(fmt.Sprintf("ir: %s node cannot own effect children", kind))
	}
	n := NewNode(offset, data)
	n.valueChildren = values
	n.effectChildren = effects
	return n
}

// Kind returns the node's construct discriminator. It is immutable except
// through ReplaceData.
func (n *Node) Kind() Kind {
	return n.kind
}

// Data returns the active payload.
func (n *Node) Data() Payload {
	return n.data
}

// PayloadAs returns the node's payload as the concrete payload type P.
// A kind mismatch is a programming error and panics.
func PayloadAs[P Payload](n *Node) P {
	p, ok := n.data.(P)
	if !ok {
		panic(fmt.Sprintf("ir: payload access as %T on %s node", p, n.kind))
	}
	return p
}

// Type returns the resolved type of the node. It is defined for every typed
// kind (see Kind.Typed) and is a programming error for the rest.
func (n *Node) Type() *Type {
	switch d := n.data.(type) {
	case *BoolLiteralData:
		return d.Type
	case *ExternalValueData:
		return d.Type
	case *FieldData:
		return d.Type
	case *FloatLiteralData:
		return d.Type
	case *FunctionCallData:
		return d.Type
	case *IntLiteralData:
		return d.Type
	case *SymbolData:
		return d.Type
	case *TypeData:
		return d.Type
	case *TypeTokenData:
		return d.Type
	case *VariableData:
		return d.Type
	default:
		panic(fmt.Sprintf("ir: Type called on untyped %s node", n.kind))
	}
}

// ValueChildCount returns the number of value children.
func (n *Node) ValueChildCount() int {
	return len(n.valueChildren)
}

// ValueChild returns the i-th value child. Out-of-range access is a
// programming error.
func (n *Node) ValueChild(i int) *Node {
	if i < 0 || i >= len(n.valueChildren) {
		panic(fmt.Sprintf("ir: value child %d out of range [0,%d) on %s node", i, len(n.valueChildren), n.kind))
	}
	return n.valueChildren[i]
}

// SetValueChild replaces the i-th value child, returning the previous one.
// Used by rewrite passes; ownership of the old child transfers to the caller.
func (n *Node) SetValueChild(i int, child *Node) *Node {
	if i < 0 || i >= len(n.valueChildren) {
		panic(fmt.Sprintf("ir: value child %d out of range [0,%d) on %s node", i, len(n.valueChildren), n.kind))
	}
	old := n.valueChildren[i]
	n.valueChildren[i] = child
	return old
}

// EffectChildCount returns the number of effect children.
func (n *Node) EffectChildCount() int {
	return len(n.effectChildren)
}

// EffectChild returns the i-th effect child. Out-of-range access is a
// programming error.
func (n *Node) EffectChild(i int) *Node {
	if i < 0 || i >= len(n.effectChildren) {
		panic(fmt.Sprintf("ir: effect child %d out of range [0,%d) on %s node", i, len(n.effectChildren), n.kind))
	}
	return n.effectChildren[i]
}

// VisitChildren calls fn for every child in both lists, value children first.
// Derived convenience for kind-agnostic traversals such as offset-based
// diagnostics.
func (n *Node) VisitChildren(fn func(*Node)) {
	for _, c := range n.valueChildren {
		fn(c)
	}
	for _, c := range n.effectChildren {
		fn(c)
	}
}

// Assign copies kind, offset, and payload from other. Child lists cannot be
// duplicated (ownership is exclusive), so copy-assignment is only legal
// between childless nodes; anything else is a programming error.
func (n *Node) Assign(other *Node) {
	if len(other.valueChildren) != 0 || len(other.effectChildren) != 0 {
		panic("ir: cannot copy-assign a node with children")
	}
	if len(n.valueChildren) != 0 || len(n.effectChildren) != 0 {
		panic("ir: cannot copy-assign onto a node with children")
	}
	n.releasePayload()
	n.kind = other.kind
	n.Offset = other.Offset
	n.data = other.data.clone()
	n.retainPayload()
}

// ReplaceData reassigns the node's whole payload, switching its kind. The
// previous payload's resources are released before the new payload becomes
// active. Rewrite passes use this to replace a construct in place while
// preserving its offset (for example constant folding a call into a literal).
func (n *Node) ReplaceData(data Payload) {
	if data == nil {
		panic("ir: ReplaceData called with nil payload")
	}
	n.releasePayload()
	n.kind = data.payloadKind()
	n.data = data
	n.retainPayload()
}

// Destroy releases the node's resources: value children first, then effect
// children, then the payload. Effect children are destroyed in reverse
// statement order so that references inside later statements die before the
// declarations they point at, and the payload goes last so that statement
// destruction, which can adjust variable counters tracked through a
// SymbolTable, happens before that table's reference is dropped.
func (n *Node) Destroy() {
	for _, c := range n.valueChildren {
		c.Destroy()
	}
	n.valueChildren = nil
	for i := len(n.effectChildren) - 1; i >= 0; i-- {
		n.effectChildren[i].Destroy()
	}
	n.effectChildren = nil
	n.releasePayload()
	n.data = nil
}

// retainPayload acquires the resources referenced by the active payload.
func (n *Node) retainPayload() {
	switch d := n.data.(type) {
	case *BlockData:
		if d.Symbols != nil {
			d.Symbols.Retain()
		}
	case *EnumData:
		if d.Symbols != nil {
			d.Symbols.Retain()
		}
	case *ForStatementData:
		if d.Symbols != nil {
			d.Symbols.Retain()
		}
	case *SymbolData:
		d.retain()
	}
}

// releasePayload drops the resources referenced by the active payload.
func (n *Node) releasePayload() {
	switch d := n.data.(type) {
	case *BlockData:
		if d.Symbols != nil {
			d.Symbols.Release()
		}
	case *EnumData:
		if d.Symbols != nil {
			d.Symbols.Release()
		}
	case *ForStatementData:
		if d.Symbols != nil {
			d.Symbols.Release()
		}
	case *SymbolData:
		d.release()
	}
}
