package ir

// Program is a fully resolved compilation unit: the output of resolution and
// the input to every code generation backend.
type Program struct {
	// Elements holds the resolved top-level declarations other than
	// functions: global variable nodes and enum nodes, in source order.
	Elements []*Node

	// Functions holds every user-defined function, in source order.
	Functions []*FunctionDeclaration

	// Symbols is the program's root scope, including the built-in seed.
	Symbols *SymbolTable

	// Registry owns every type referenced by the program.
	Registry *TypeRegistry
}

// EntryPoint finds the function declaration with the given name.
func (p *Program) EntryPoint(name string) (*FunctionDeclaration, bool) {
	for _, fn := range p.Functions {
		if fn.Name == name {
			return fn, true
		}
	}
	return nil, false
}

// Destroy releases every tree in the program, statement trees before the
// symbol tables they reference. After Destroy the program must not be used.
func (p *Program) Destroy() {
	for _, fn := range p.Functions {
		if fn.Body != nil {
			fn.Body.Destroy()
			fn.Body = nil
		}
		for _, param := range fn.Parameters {
			param.Destroy()
		}
		fn.Parameters = nil
	}
	for i := len(p.Elements) - 1; i >= 0; i-- {
		p.Elements[i].Destroy()
	}
	p.Elements = nil
	if p.Symbols != nil {
		p.Symbols.Release()
		p.Symbols = nil
	}
}
