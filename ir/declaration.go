package ir

// FunctionDeclaration describes a callable: a user-defined function, a
// built-in intrinsic, or a built-in operator. FunctionCall payloads reference
// the declaration of the function they invoke.
type FunctionDeclaration struct {
	Name       string
	Offset     int
	ReturnType *Type
	// Parameters holds one variable node (KindVariable, StorageParameter)
	// per formal parameter.
	Parameters []*Node
	Builtin    bool
	// Operator marks built-in operator declarations ("+", "*", "=", ...),
	// which backends lower to infix syntax instead of call syntax.
	Operator bool
	// Body is the resolved function body (a Block node), nil for builtins
	// and operators.
	Body *Node
}

// Signature returns the function's type signature.
func (f *FunctionDeclaration) Signature() FunctionType {
	params := make([]*Type, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.Type()
	}
	return FunctionType{Return: f.ReturnType, Parameters: params}
}

// ExternalValue is a host-provided value injected into the program's scope by
// the embedding application.
type ExternalValue struct {
	Name string
	Type *Type
}
