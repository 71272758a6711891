package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// TypeRegistry owns the set of known types for one compilation. Types are
// deduplicated structurally, so pointer equality of *Type doubles as type
// equality everywhere downstream.
//
// A registry starts from a seed of built-in types and operator signatures;
// resolution only adds user-declared types on top.
type TypeRegistry struct {
	types   []*Type
	typeMap map[string]*Type
	byName  map[string]*Type

	operators map[string][]*FunctionDeclaration
}

// NewTypeRegistry creates an empty type registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		typeMap:   make(map[string]*Type, 16),
		byName:    make(map[string]*Type, 16),
		operators: make(map[string][]*FunctionDeclaration, 16),
	}
}

// GetOrCreate returns the registered type with this structure, creating and
// registering it first if needed. The returned pointer is stable for the
// registry's lifetime.
func (r *TypeRegistry) GetOrCreate(name string, inner TypeInner) *Type {
	key := r.normalizeType(inner)
	if t, exists := r.typeMap[key]; exists {
		return t
	}

	t := &Type{Name: name, Inner: inner}
	r.types = append(r.types, t)
	r.typeMap[key] = t
	if name != "" {
		r.byName[name] = t
	}
	return t
}

// LookupName finds a type by its source-level name.
func (r *TypeRegistry) LookupName(name string) (*Type, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Types returns all registered types in registration order.
func (r *TypeRegistry) Types() []*Type {
	return r.types
}

// Count returns the number of unique types registered.
func (r *TypeRegistry) Count() int {
	return len(r.types)
}

// RegisterOperator adds a built-in operator signature to the seed.
func (r *TypeRegistry) RegisterOperator(decl *FunctionDeclaration) {
	r.operators[decl.Name] = append(r.operators[decl.Name], decl)
}

// FindOperator finds the operator declaration matching the operand types
// exactly. Unary operators pass a nil right type.
func (r *TypeRegistry) FindOperator(op string, left, right *Type) (*FunctionDeclaration, bool) {
	for _, decl := range r.operators[op] {
		sig := decl.Signature()
		if right == nil {
			if len(sig.Parameters) == 1 && sig.Parameters[0] == left {
				return decl, true
			}
			continue
		}
		if len(sig.Parameters) == 2 && sig.Parameters[0] == left && sig.Parameters[1] == right {
			return decl, true
		}
	}
	return nil, false
}

// normalizeType creates a unique key for a type based on its structure. Two
// structurally identical types produce the same key.
func (r *TypeRegistry) normalizeType(inner TypeInner) string {
	switch t := inner.(type) {
	case ScalarType:
		return "scalar:" + strconv.Itoa(int(t.Kind)) + ":" + strconv.Itoa(int(t.Width))

	case VectorType:
		return "vec:" + strconv.Itoa(int(t.Size)) + ":" + r.normalizeType(t.Component.Inner)

	case StructType:
		var b strings.Builder
		fmt.Fprintf(&b, "struct:%d", len(t.Fields))
		for _, f := range t.Fields {
			fmt.Fprintf(&b, ":f(%s,%s)", f.Name, r.normalizeType(f.Type.Inner))
		}
		return b.String()

	case FunctionType:
		var b strings.Builder
		b.WriteString("fn:")
		b.WriteString(r.normalizeType(t.Return.Inner))
		for _, p := range t.Parameters {
			b.WriteByte(':')
			b.WriteString(r.normalizeType(p.Inner))
		}
		return b.String()

	case VoidType:
		return "void"

	default:
		return fmt.Sprintf("unknown:%T", inner)
	}
}
