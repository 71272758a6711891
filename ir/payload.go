package ir

// Storage classifies where a variable lives.
type Storage uint8

const (
	StorageGlobal Storage = iota
	StorageLocal
	StorageParameter
)

// String returns a human-readable storage name.
func (s Storage) String() string {
	switch s {
	case StorageGlobal:
		return "global"
	case StorageLocal:
		return "local"
	case StorageParameter:
		return "parameter"
	default:
		return "unknown"
	}
}

// ModifierFlags encode variable declaration modifiers.
type ModifierFlags uint8

const (
	ModifierIn ModifierFlags = 1 << iota
	ModifierOut
	ModifierUniform
	ModifierConst
)

// Has reports whether all the given flags are set.
func (f ModifierFlags) Has(flags ModifierFlags) bool {
	return f&flags == flags
}

// RefKind classifies how a symbol reference uses its variable, determined by
// the reference's syntactic position during resolution.
type RefKind uint8

const (
	RefRead      RefKind = iota // rvalue use
	RefWrite                    // plain assignment target
	RefReadWrite                // compound assignment target
)

// BlockData is the payload of a Block node. The node's effect children are
// the block's statements.
type BlockData struct {
	Symbols *SymbolTable
	// IsScope is false for bare statement groups that exist only to pass
	// several statements around as one unit, with no language-level scope.
	IsScope bool
}

func (*BlockData) payloadKind() Kind { return KindBlock }

func (d *BlockData) clone() Payload { c := *d; return &c }

// BoolLiteralData is the payload of a BoolLiteral node.
type BoolLiteralData struct {
	Type  *Type
	Value bool
}

func (*BoolLiteralData) payloadKind() Kind { return KindBoolLiteral }

func (d *BoolLiteralData) clone() Payload { c := *d; return &c }

// EnumData is the payload of an Enum node. Symbols holds the enum's members.
type EnumData struct {
	TypeName string
	Symbols  *SymbolTable
	Builtin  bool
}

func (*EnumData) payloadKind() Kind { return KindEnum }

func (d *EnumData) clone() Payload { c := *d; return &c }

// ExternalValueData is the payload of an ExternalValue node, referencing a
// host-provided value.
type ExternalValueData struct {
	Type  *Type
	Value *ExternalValue
}

func (*ExternalValueData) payloadKind() Kind { return KindExternalValue }

func (d *ExternalValueData) clone() Payload { c := *d; return &c }

// FieldData is the payload of a Field node: access to a named field or
// vector component of the node's single value child.
type FieldData struct {
	Name       string
	Type       *Type
	Owner      *Node // variable node the access ultimately reads or writes, if known
	FieldIndex int
}

func (*FieldData) payloadKind() Kind { return KindField }

func (d *FieldData) clone() Payload { c := *d; return &c }

// FloatLiteralData is the payload of a FloatLiteral node.
type FloatLiteralData struct {
	Type  *Type
	Value float32
}

func (*FloatLiteralData) payloadKind() Kind { return KindFloatLiteral }

func (d *FloatLiteralData) clone() Payload { c := *d; return &c }

// ForStatementData is the payload of a ForStatement node. The node's value
// children are (condition, next expression), its effect children are
// (initializer statement, body).
type ForStatementData struct {
	Symbols *SymbolTable
}

func (*ForStatementData) payloadKind() Kind { return KindForStatement }

func (d *ForStatementData) clone() Payload { c := *d; return &c }

// FunctionCallData is the payload of a FunctionCall node. The node's value
// children are the call arguments.
type FunctionCallData struct {
	Type     *Type // resolved return type
	Function *FunctionDeclaration
}

func (*FunctionCallData) payloadKind() Kind { return KindFunctionCall }

func (d *FunctionCallData) clone() Payload { c := *d; return &c }

// IntLiteralData is the payload of an IntLiteral node.
type IntLiteralData struct {
	Type  *Type
	Value int64
}

func (*IntLiteralData) payloadKind() Kind { return KindIntLiteral }

func (d *IntLiteralData) clone() Payload { c := *d; return &c }

// StringData is the payload of a String node.
type StringData struct {
	Value string
}

func (*StringData) payloadKind() Kind { return KindString }

func (d *StringData) clone() Payload { c := *d; return &c }

// SymbolData is the payload of a Symbol node: a resolved reference to a
// variable. Creating the node bumps the variable's read/write counters
// according to Ref, and destroying it undoes that, so the counters always
// reflect the references currently alive in the tree.
type SymbolData struct {
	Name     string
	Type     *Type
	Variable *Node // the referenced variable declaration node
	Ref      RefKind
}

func (*SymbolData) payloadKind() Kind { return KindSymbol }

func (d *SymbolData) clone() Payload { c := *d; return &c }

func (d *SymbolData) retain() {
	if d.Variable == nil {
		return
	}
	v := PayloadAs[*VariableData](d.Variable)
	switch d.Ref {
	case RefRead:
		v.ReadCount++
	case RefWrite:
		v.WriteCount++
	case RefReadWrite:
		v.ReadCount++
		v.WriteCount++
	}
}

func (d *SymbolData) release() {
	if d.Variable == nil {
		return
	}
	v := PayloadAs[*VariableData](d.Variable)
	switch d.Ref {
	case RefRead:
		v.ReadCount--
	case RefWrite:
		v.WriteCount--
	case RefReadWrite:
		v.ReadCount--
		v.WriteCount--
	}
}

// SymbolAliasData is the payload of a SymbolAlias node: an alternate name
// installed in a symbol table for an existing symbol.
type SymbolAliasData struct {
	Name     string
	Original *Symbol
}

func (*SymbolAliasData) payloadKind() Kind { return KindSymbolAlias }

func (d *SymbolAliasData) clone() Payload { c := *d; return &c }

// TypeData is the payload of a Type node: a reference to a type as a value,
// such as a constructor callee.
type TypeData struct {
	Type *Type
}

func (*TypeData) payloadKind() Kind { return KindType }

func (d *TypeData) clone() Payload { c := *d; return &c }

// TypeTokenData is the payload of a TypeToken node: a type together with the
// lexer token sub-kind it was spelled as, retained for literal tagging.
type TypeTokenData struct {
	Type  *Type
	Token TokenKind
}

func (*TypeTokenData) payloadKind() Kind { return KindTypeToken }

func (d *TypeTokenData) clone() Payload { c := *d; return &c }

// TokenKind mirrors the external lexer's token sub-kinds that survive into
// the IR. The core never re-tokenizes; these tags arrive with the syntax tree.
type TokenKind uint8

const (
	TokenNone TokenKind = iota
	TokenIntLiteral
	TokenFloatLiteral
	TokenTrue
	TokenFalse
	TokenIdentifier
)

// VariableData is the payload of a Variable node. The node's value children
// hold the initializer expression, if any.
type VariableData struct {
	Name      string
	Type      *Type
	Storage   Storage
	Modifiers ModifierFlags
	Builtin   bool

	// ReadCount tracks how many sites read from the variable. If this is
	// zero for a non-out variable (or becomes zero during optimization),
	// the variable is dead and may be eliminated.
	ReadCount int16
	// WriteCount tracks how many sites write to the variable. If this is
	// zero, the variable is dead and may be eliminated.
	WriteCount int16
}

func (*VariableData) payloadKind() Kind { return KindVariable }

func (d *VariableData) clone() Payload { c := *d; return &c }
