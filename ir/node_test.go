package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTypes(t *testing.T) (*TypeRegistry, *Type, *Type) {
	t.Helper()
	reg := NewTypeRegistry()
	floatType := reg.GetOrCreate("float", ScalarType{Kind: ScalarFloat, Width: 4})
	float4 := reg.GetOrCreate("float4", VectorType{Size: 4, Component: floatType})
	return reg, floatType, float4
}

func variableNode(t *testing.T, name string, typ *Type) *Node {
	t.Helper()
	return NewNode(0, &VariableData{Name: name, Type: typ, Storage: StorageLocal})
}

func TestNewNodeKindFollowsPayload(t *testing.T) {
	_, floatType, _ := testTypes(t)

	tests := []struct {
		payload Payload
		kind    Kind
	}{
		{&BlockData{}, KindBlock},
		{&BoolLiteralData{Value: true}, KindBoolLiteral},
		{&FloatLiteralData{Type: floatType, Value: 1.5}, KindFloatLiteral},
		{&StringData{Value: "hi"}, KindString},
		{&VariableData{Name: "x", Type: floatType}, KindVariable},
		{&TypeTokenData{Type: floatType, Token: TokenIdentifier}, KindTypeToken},
	}
	for _, tc := range tests {
		n := NewNode(7, tc.payload)
		assert.Equal(t, tc.kind, n.Kind())
		assert.Equal(t, 7, n.Offset)
		assert.Same(t, tc.payload, Payload(n.Data()))
	}
}

func TestNewNodeNilPayloadPanics(t *testing.T) {
	assert.Panics(t, func() { NewNode(0, nil) })
}

func TestPayloadAsMismatchPanics(t *testing.T) {
	n := NewNode(0, &StringData{Value: "s"})
	assert.Equal(t, "s", PayloadAs[*StringData](n).Value)
	assert.Panics(t, func() { PayloadAs[*IntLiteralData](n) })
}

func TestTypeTotality(t *testing.T) {
	reg, floatType, float4 := testTypes(t)
	intType := reg.GetOrCreate("int", ScalarType{Kind: ScalarSint, Width: 4})
	boolType := reg.GetOrCreate("bool", ScalarType{Kind: ScalarBool, Width: 1})

	variable := variableNode(t, "v", float4)
	fn := &FunctionDeclaration{Name: "f", ReturnType: floatType}

	typed := []struct {
		payload Payload
		want    *Type
	}{
		{&BoolLiteralData{Type: boolType, Value: true}, boolType},
		{&IntLiteralData{Type: intType, Value: 3}, intType},
		{&FloatLiteralData{Type: floatType, Value: 1.0}, floatType},
		{&FieldData{Name: "x", Type: floatType, Owner: variable, FieldIndex: 0}, floatType},
		{&FunctionCallData{Type: floatType, Function: fn}, floatType},
		{&TypeData{Type: float4}, float4},
		{&TypeTokenData{Type: float4, Token: TokenIdentifier}, float4},
		{&VariableData{Name: "w", Type: float4}, float4},
		{&ExternalValueData{Type: floatType, Value: &ExternalValue{Name: "e", Type: floatType}}, floatType},
	}
	for _, tc := range typed {
		n := NewNode(0, tc.payload)
		assert.True(t, n.Kind().Typed(), "kind %s", n.Kind())
		assert.Same(t, tc.want, n.Type())
	}

	untyped := []Payload{
		&BlockData{},
		&ForStatementData{},
		&StringData{Value: "s"},
		&EnumData{TypeName: "E"},
	}
	for _, payload := range untyped {
		n := NewNode(0, payload)
		assert.False(t, n.Kind().Typed(), "kind %s", n.Kind())
		assert.Panics(t, func() { n.Type() }, "kind %s", n.Kind())
	}
}

func TestEffectChildrenRestrictedToStatementKinds(t *testing.T) {
	_, floatType, _ := testTypes(t)
	stmt := NewNode(0, &FloatLiteralData{Type: floatType, Value: 1})

	assert.NotPanics(t, func() {
		n := NewNodeWithEffects(0, &BlockData{IsScope: true}, []*Node{stmt})
		assert.Equal(t, 1, n.EffectChildCount())
	})
	assert.Panics(t, func() {
		NewNodeWithEffects(0, &StringData{Value: "s"}, []*Node{stmt})
	})
}

func TestChildAccessorsBoundsChecked(t *testing.T) {
	_, floatType, _ := testTypes(t)
	child := NewNode(0, &FloatLiteralData{Type: floatType, Value: 2})
	n := NewNodeWithValues(0, &TypeTokenData{Type: floatType, Token: TokenIdentifier}, []*Node{child})

	assert.Same(t, child, n.ValueChild(0))
	assert.Panics(t, func() { n.ValueChild(1) })
	assert.Panics(t, func() { n.ValueChild(-1) })
	assert.Panics(t, func() { n.EffectChild(0) })
}

func TestSetValueChildReturnsOld(t *testing.T) {
	_, floatType, _ := testTypes(t)
	a := NewNode(0, &FloatLiteralData{Type: floatType, Value: 1})
	b := NewNode(0, &FloatLiteralData{Type: floatType, Value: 2})
	n := NewNodeWithValues(0, &TypeTokenData{Type: floatType, Token: TokenIdentifier}, []*Node{a})

	old := n.SetValueChild(0, b)
	assert.Same(t, a, old)
	assert.Same(t, b, n.ValueChild(0))
	old.Destroy()
	n.Destroy()
}

func TestAssignCopiesKindOffsetPayload(t *testing.T) {
	reg, floatType, _ := testTypes(t)
	intType := reg.GetOrCreate("int", ScalarType{Kind: ScalarSint, Width: 4})

	dst := NewNode(3, &FloatLiteralData{Type: floatType, Value: 1.5})
	src := NewNode(9, &IntLiteralData{Type: intType, Value: 42})

	dst.Assign(src)
	assert.Equal(t, KindIntLiteral, dst.Kind())
	assert.Equal(t, 9, dst.Offset)
	assert.Equal(t, int64(42), PayloadAs[*IntLiteralData](dst).Value)

	// The payload is cloned, not shared.
	PayloadAs[*IntLiteralData](src).Value = 7
	assert.Equal(t, int64(42), PayloadAs[*IntLiteralData](dst).Value)
}

func TestAssignWithChildrenPanics(t *testing.T) {
	_, floatType, _ := testTypes(t)
	child := NewNode(0, &FloatLiteralData{Type: floatType, Value: 1})
	withChildren := NewNodeWithValues(0, &TypeTokenData{Type: floatType, Token: TokenIdentifier}, []*Node{child})
	childless := NewNode(0, &StringData{Value: "s"})

	assert.Panics(t, func() { childless.Assign(withChildren) })
	assert.Panics(t, func() { withChildren.Assign(childless) })
}

func TestAssignSymbolReferenceAdjustsCounters(t *testing.T) {
	_, floatType, _ := testTypes(t)
	variable := variableNode(t, "x", floatType)
	v := PayloadAs[*VariableData](variable)

	ref := NewNode(0, &SymbolData{Name: "x", Type: floatType, Variable: variable, Ref: RefRead})
	require.Equal(t, int16(1), v.ReadCount)

	// Copy-assigning a second reference over a plain literal retains the
	// variable again.
	other := NewNode(0, &FloatLiteralData{Type: floatType, Value: 0})
	other.Assign(ref)
	assert.Equal(t, int16(2), v.ReadCount)

	other.Destroy()
	assert.Equal(t, int16(1), v.ReadCount)
	ref.Destroy()
	assert.Equal(t, int16(0), v.ReadCount)
	variable.Destroy()
}

func TestReplaceDataSwitchesKindAndReleases(t *testing.T) {
	_, floatType, _ := testTypes(t)
	scope := NewSymbolTable(nil)
	n := NewNode(0, &BlockData{Symbols: scope, IsScope: true})
	scope.Release()
	require.True(t, scope.Live())

	n.ReplaceData(&FloatLiteralData{Type: floatType, Value: 4})
	assert.Equal(t, KindFloatLiteral, n.Kind())
	assert.False(t, scope.Live())
}

func TestReferenceKindsAdjustMatchingCounters(t *testing.T) {
	_, floatType, _ := testTypes(t)

	tests := []struct {
		name       string
		ref        RefKind
		wantReads  int16
		wantWrites int16
	}{
		{"read", RefRead, 1, 0},
		{"write", RefWrite, 0, 1},
		{"read-write", RefReadWrite, 1, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			variable := variableNode(t, "x", floatType)
			v := PayloadAs[*VariableData](variable)

			ref := NewNode(0, &SymbolData{Name: "x", Type: floatType, Variable: variable, Ref: tc.ref})
			assert.Equal(t, tc.wantReads, v.ReadCount)
			assert.Equal(t, tc.wantWrites, v.WriteCount)

			ref.Destroy()
			assert.Equal(t, int16(0), v.ReadCount)
			assert.Equal(t, int16(0), v.WriteCount)
			variable.Destroy()
		})
	}
}

func TestDestroyOrderReleasesReferencesBeforeDeclarations(t *testing.T) {
	_, floatType, _ := testTypes(t)
	scope := NewSymbolTable(nil)

	decl := variableNode(t, "x", floatType)
	ref := NewNode(1, &SymbolData{Name: "x", Type: floatType,
		Variable: decl, Ref: RefRead})
	v := PayloadAs[*VariableData](decl)
	require.Equal(t, int16(1), v.ReadCount)

	block := NewNodeWithEffects(0, &BlockData{Symbols: scope, IsScope: true},
		[]*Node{decl, ref})
	scope.Release()
	require.True(t, scope.Live())

	// The reference (a later statement) must die before the declaration it
	// points at, and the scope's reference must be dropped last.
	block.Destroy()
	assert.Equal(t, int16(0), v.ReadCount)
	assert.False(t, scope.Live())
}

func TestVisitChildrenValueChildrenFirst(t *testing.T) {
	_, floatType, _ := testTypes(t)
	value := NewNode(0, &FloatLiteralData{Type: floatType, Value: 1})
	effect := NewNode(0, &StringData{Value: "stmt"})
	n := NewNodeWithChildren(0, &BlockData{}, []*Node{value}, []*Node{effect})

	var seen []*Node
	n.VisitChildren(func(c *Node) { seen = append(seen, c) })
	require.Len(t, seen, 2)
	assert.Same(t, value, seen[0])
	assert.Same(t, effect, seen[1])
}

func TestDeadAndUnusedFlags(t *testing.T) {
	tests := []struct {
		name   string
		data   VariableData
		dead   bool
		unused bool
	}{
		{"never written", VariableData{ReadCount: 2, WriteCount: 0}, true, false},
		{"never read", VariableData{ReadCount: 0, WriteCount: 1}, true, true},
		{"out and written", VariableData{WriteCount: 1, Modifiers: ModifierOut}, false, true},
		{"read and written", VariableData{ReadCount: 1, WriteCount: 1}, false, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.dead, tc.data.Dead())
			assert.Equal(t, tc.unused, tc.data.Unused())
		})
	}
}
