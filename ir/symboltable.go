package ir

import "fmt"

// SymbolKind classifies the semantic meaning of a symbol.
type SymbolKind uint8

const (
	SymbolVariable SymbolKind = iota
	SymbolFunction
	SymbolType
	SymbolAlias
)

// String returns a human-readable symbol kind name.
func (k SymbolKind) String() string {
	switch k {
	case SymbolVariable:
		return "variable"
	case SymbolFunction:
		return "function"
	case SymbolType:
		return "type"
	case SymbolAlias:
		return "alias"
	default:
		return "unknown"
	}
}

// Symbol is a named declaration stored in a SymbolTable. Exactly one of Var,
// Fns, Type, or Target is set, matching Kind. Function symbols carry every
// declaration sharing the name, so built-ins can be overloaded by signature.
type Symbol struct {
	Kind   SymbolKind
	Name   string
	Var    *Node // variable declaration node (KindVariable)
	Fns    []*FunctionDeclaration
	Type   *Type
	Target *Symbol // aliased symbol
}

// Resolve follows alias links to the underlying symbol.
func (s *Symbol) Resolve() *Symbol {
	for s.Kind == SymbolAlias {
		s = s.Target
	}
	return s
}

// SymbolTable maps names to symbols within one lexical scope. Scopes nest;
// lookup walks outward through parents.
//
// Ownership of a table is shared between the resolver scope that introduces
// it and every node built while it was active, because the order in which
// statement trees are destroyed affects counter bookkeeping reachable through
// the table. The table is retained per referencing node and must only be
// released once the last such node is destroyed.
type SymbolTable struct {
	Parent *SymbolTable

	symbols map[string]*Symbol
	refs    int
}

// NewSymbolTable creates a scope nested in parent (nil for the root scope).
// The creator holds the initial reference.
func NewSymbolTable(parent *SymbolTable) *SymbolTable {
	return &SymbolTable{
		Parent:  parent,
		symbols: make(map[string]*Symbol),
		refs:    1,
	}
}

// Retain adds a reference to the table.
func (st *SymbolTable) Retain() *SymbolTable {
	if st.refs <= 0 {
		panic("ir: Retain on released symbol table")
	}
	st.refs++
	return st
}

// Release drops a reference. Releasing the last reference frees the table;
// any further use is a programming error.
func (st *SymbolTable) Release() {
	if st.refs <= 0 {
		panic("ir: Release on released symbol table")
	}
	st.refs--
	if st.refs == 0 {
		st.symbols = nil
	}
}

// Refs returns the current reference count.
func (st *SymbolTable) Refs() int {
	return st.refs
}

// Live reports whether the table still holds references.
func (st *SymbolTable) Live() bool {
	return st.refs > 0
}

// Insert adds a symbol to this scope. Redeclaring a name within the same
// scope fails; shadowing an outer scope is allowed.
func (st *SymbolTable) Insert(sym *Symbol) error {
	if st.refs <= 0 {
		panic("ir: Insert on released symbol table")
	}
	if _, exists := st.symbols[sym.Name]; exists {
		return fmt.Errorf("symbol '%s' was already defined", sym.Name)
	}
	st.symbols[sym.Name] = sym
	return nil
}

// AddAlias installs an alternate name for an existing symbol in this scope.
func (st *SymbolTable) AddAlias(name string, target *Symbol) error {
	return st.Insert(&Symbol{Kind: SymbolAlias, Name: name, Target: target})
}

// Lookup finds a symbol by name, walking outward through enclosing scopes.
// Aliases are followed to their target.
func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	for t := st; t != nil; t = t.Parent {
		if t.refs <= 0 {
			panic("ir: Lookup on released symbol table")
		}
		if sym, ok := t.symbols[name]; ok {
			return sym.Resolve(), true
		}
	}
	return nil, false
}

// LookupLocal finds a symbol in this scope only, without following aliases.
func (st *SymbolTable) LookupLocal(name string) (*Symbol, bool) {
	if st.refs <= 0 {
		panic("ir: LookupLocal on released symbol table")
	}
	sym, ok := st.symbols[name]
	return sym, ok
}

// Count returns the number of symbols declared directly in this scope.
func (st *SymbolTable) Count() int {
	return len(st.symbols)
}
