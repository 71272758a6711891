package ir

import "testing"

func TestGetOrCreateDeduplicates(t *testing.T) {
	reg := NewTypeRegistry()

	floatType := reg.GetOrCreate("float", ScalarType{Kind: ScalarFloat, Width: 4})
	again := reg.GetOrCreate("float", ScalarType{Kind: ScalarFloat, Width: 4})
	if floatType != again {
		t.Error("structurally identical scalar types should be the same *Type")
	}

	intType := reg.GetOrCreate("int", ScalarType{Kind: ScalarSint, Width: 4})
	if intType == floatType {
		t.Error("different scalar kinds must not collapse")
	}

	f2 := reg.GetOrCreate("float2", VectorType{Size: 2, Component: floatType})
	f3 := reg.GetOrCreate("float3", VectorType{Size: 3, Component: floatType})
	if f2 == f3 {
		t.Error("different vector sizes must not collapse")
	}
	if got := reg.GetOrCreate("float2", VectorType{Size: 2, Component: floatType}); got != f2 {
		t.Error("identical vector types should be the same *Type")
	}

	if reg.Count() != 4 {
		t.Errorf("Count() = %d, want 4", reg.Count())
	}
}

func TestLookupName(t *testing.T) {
	reg := NewTypeRegistry()
	floatType := reg.GetOrCreate("float", ScalarType{Kind: ScalarFloat, Width: 4})

	got, ok := reg.LookupName("float")
	if !ok || got != floatType {
		t.Errorf("LookupName(float) = %v, %v", got, ok)
	}
	if _, ok := reg.LookupName("half"); ok {
		t.Error("LookupName should miss unregistered names")
	}
}

func TestFindOperator(t *testing.T) {
	reg := NewTypeRegistry()
	floatType := reg.GetOrCreate("float", ScalarType{Kind: ScalarFloat, Width: 4})
	intType := reg.GetOrCreate("int", ScalarType{Kind: ScalarSint, Width: 4})

	param := func(typ *Type) *Node {
		return NewNode(-1, &VariableData{Name: "p", Type: typ, Storage: StorageParameter})
	}
	addFloat := &FunctionDeclaration{
		Name: "+", ReturnType: floatType, Operator: true, Builtin: true,
		Parameters: []*Node{param(floatType), param(floatType)},
	}
	negFloat := &FunctionDeclaration{
		Name: "-", ReturnType: floatType, Operator: true, Builtin: true,
		Parameters: []*Node{param(floatType)},
	}
	reg.RegisterOperator(addFloat)
	reg.RegisterOperator(negFloat)

	if got, ok := reg.FindOperator("+", floatType, floatType); !ok || got != addFloat {
		t.Errorf("FindOperator(+, float, float) = %v, %v", got, ok)
	}
	if _, ok := reg.FindOperator("+", intType, floatType); ok {
		t.Error("operand types must match exactly")
	}
	if got, ok := reg.FindOperator("-", floatType, nil); !ok || got != negFloat {
		t.Errorf("FindOperator(-, float, nil) = %v, %v", got, ok)
	}
	if _, ok := reg.FindOperator("-", floatType, floatType); ok {
		t.Error("binary lookup must not match the unary signature")
	}
	if _, ok := reg.FindOperator("*", floatType, floatType); ok {
		t.Error("unregistered operator should miss")
	}
}
