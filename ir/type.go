package ir

import (
	"fmt"
	"strings"
)

// Type represents a type in the IR.
//
// Types are immutable and globally registered: nodes and payloads hold
// non-owning *Type pointers handed out by a TypeRegistry, and a type is
// never copied or destroyed while any node references it.
type Type struct {
	Name  string
	Inner TypeInner
}

// TypeInner represents the inner type kind.
type TypeInner interface {
	typeInner()
}

// ScalarType represents scalar types.
type ScalarType struct {
	Kind  ScalarKind
	Width uint8 // in bytes
}

func (ScalarType) typeInner() {}

// ScalarKind represents scalar type kinds.
type ScalarKind uint8

const (
	ScalarSint  ScalarKind = iota // Signed integer
	ScalarFloat                   // Floating point
	ScalarBool                    // Boolean
)

// VectorType represents vector types.
// Component holds the scalar component type and Size the component count.
type VectorType struct {
	Size      uint8
	Component *Type
}

func (VectorType) typeInner() {}

// StructType represents struct types.
type StructType struct {
	Fields []StructField
}

func (StructType) typeInner() {}

// StructField represents a named struct field.
type StructField struct {
	Name string
	Type *Type
}

// FunctionType represents a function signature.
type FunctionType struct {
	Return     *Type
	Parameters []*Type
}

func (FunctionType) typeInner() {}

// VoidType represents the absence of a value.
type VoidType struct{}

func (VoidType) typeInner() {}

// IsScalar reports whether the type is a scalar of the given kind.
func (t *Type) IsScalar(kind ScalarKind) bool {
	s, ok := t.Inner.(ScalarType)
	return ok && s.Kind == kind
}

// IsVector reports whether the type is a vector.
func (t *Type) IsVector() bool {
	_, ok := t.Inner.(VectorType)
	return ok
}

// IsVoid reports whether the type is void.
func (t *Type) IsVoid() bool {
	_, ok := t.Inner.(VoidType)
	return ok
}

// ComponentType returns the component type for vectors, or the type itself
// for scalars.
func (t *Type) ComponentType() *Type {
	if v, ok := t.Inner.(VectorType); ok {
		return v.Component
	}
	return t
}

// ComponentCount returns the number of components (1 for scalars).
func (t *Type) ComponentCount() int {
	if v, ok := t.Inner.(VectorType); ok {
		return int(v.Size)
	}
	return 1
}

// FieldIndex returns the index of the named struct field, or -1.
func (t *Type) FieldIndex(name string) int {
	st, ok := t.Inner.(StructType)
	if !ok {
		return -1
	}
	for i, f := range st.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// String returns the source-level name of the type.
func (t *Type) String() string {
	if t.Name != "" {
		return t.Name
	}
	switch inner := t.Inner.(type) {
	case VectorType:
		return fmt.Sprintf("%s%d", inner.Component.String(), inner.Size)
	case FunctionType:
		params := make([]string, len(inner.Parameters))
		for i, p := range inner.Parameters {
			params[i] = p.String()
		}
		return fmt.Sprintf("(%s) -> %s", strings.Join(params, ", "), inner.Return.String())
	default:
		return fmt.Sprintf("<%T>", inner)
	}
}
