package resolver

import "github.com/slint-ui/sksl/ir"

// Names of the built-in stage variables.
const (
	BuiltinFragCoord   = "sk_FragCoord"   // fragment coordinate, float4
	BuiltinFrontFacing = "sk_FrontFacing" // is-front-facing flag, bool
	BuiltinFragColor   = "sk_FragColor"   // fragment color output, float4
)

// stdlib holds the built-in seed for one compilation: the pre-populated type
// registry and the root symbol table its intrinsics live in.
type stdlib struct {
	registry *ir.TypeRegistry
	symbols  *ir.SymbolTable

	voidType  *ir.Type
	boolType  *ir.Type
	intType   *ir.Type
	floatType *ir.Type
	float2    *ir.Type
	float3    *ir.Type
	float4    *ir.Type
}

// newStdlib builds a fresh seed. Each compilation gets its own: registries
// and symbol tables are never shared across compilations.
func newStdlib() *stdlib {
	s := &stdlib{
		registry: ir.NewTypeRegistry(),
		symbols:  ir.NewSymbolTable(nil),
	}
	s.registerTypes()
	s.registerOperators()
	s.registerIntrinsics()
	s.registerBuiltinVariables()
	return s
}

func (s *stdlib) registerTypes() {
	r := s.registry
	s.voidType = r.GetOrCreate("void", ir.VoidType{})
	s.boolType = r.GetOrCreate("bool", ir.ScalarType{Kind: ir.ScalarBool, Width: 1})
	s.intType = r.GetOrCreate("int", ir.ScalarType{Kind: ir.ScalarSint, Width: 4})
	s.floatType = r.GetOrCreate("float", ir.ScalarType{Kind: ir.ScalarFloat, Width: 4})
	s.float2 = r.GetOrCreate("float2", ir.VectorType{Size: 2, Component: s.floatType})
	s.float3 = r.GetOrCreate("float3", ir.VectorType{Size: 3, Component: s.floatType})
	s.float4 = r.GetOrCreate("float4", ir.VectorType{Size: 4, Component: s.floatType})

	for _, t := range []*ir.Type{s.voidType, s.boolType, s.intType, s.floatType, s.float2, s.float3, s.float4} {
		must(s.symbols.Insert(&ir.Symbol{Kind: ir.SymbolType, Name: t.Name, Type: t}))
	}
}

// operator builds an operator declaration and registers it in the seed.
func (s *stdlib) operator(name string, result *ir.Type, params ...*ir.Type) {
	decl := &ir.FunctionDeclaration{
		Name:       name,
		ReturnType: result,
		Builtin:    true,
		Operator:   true,
	}
	for i, p := range params {
		decl.Parameters = append(decl.Parameters, paramNode(paramName(i), p))
	}
	s.registry.RegisterOperator(decl)
}

func (s *stdlib) registerOperators() {
	vectors := []*ir.Type{s.float2, s.float3, s.float4}
	numeric := []*ir.Type{s.intType, s.floatType}
	values := []*ir.Type{s.boolType, s.intType, s.floatType, s.float2, s.float3, s.float4}

	// Arithmetic, plain and compound.
	for _, op := range []string{"+", "-", "*", "/"} {
		for _, t := range numeric {
			s.operator(op, t, t, t)
			s.operator(op+"=", t, t, t)
		}
		for _, v := range vectors {
			s.operator(op, v, v, v)
			s.operator(op, v, v, s.floatType) // vector op scalar broadcast
			s.operator(op, v, s.floatType, v)
			s.operator(op+"=", v, v, v)
			s.operator(op+"=", v, v, s.floatType)
		}
	}

	// Comparisons.
	for _, op := range []string{"==", "!="} {
		for _, t := range []*ir.Type{s.boolType, s.intType, s.floatType} {
			s.operator(op, s.boolType, t, t)
		}
	}
	for _, op := range []string{"<", "<=", ">", ">="} {
		for _, t := range numeric {
			s.operator(op, s.boolType, t, t)
		}
	}

	// Logical.
	s.operator("&&", s.boolType, s.boolType, s.boolType)
	s.operator("||", s.boolType, s.boolType, s.boolType)

	// Plain assignment, one per value type.
	for _, t := range values {
		s.operator("=", t, t, t)
	}

	// Unary.
	for _, t := range []*ir.Type{s.intType, s.floatType, s.float2, s.float3, s.float4} {
		s.operator("-", t, t)
	}
	s.operator("!", s.boolType, s.boolType)
}

// intrinsic registers one overload of a built-in function in the root scope.
func (s *stdlib) intrinsic(name string, result *ir.Type, params ...*ir.Type) {
	decl := &ir.FunctionDeclaration{
		Name:       name,
		ReturnType: result,
		Builtin:    true,
	}
	for i, p := range params {
		decl.Parameters = append(decl.Parameters, paramNode(paramName(i), p))
	}
	if sym, ok := s.symbols.LookupLocal(name); ok {
		sym.Fns = append(sym.Fns, decl)
		return
	}
	must(s.symbols.Insert(&ir.Symbol{
		Kind: ir.SymbolFunction,
		Name: name,
		Fns:  []*ir.FunctionDeclaration{decl},
	}))
}

func (s *stdlib) registerIntrinsics() {
	f, i := s.floatType, s.intType
	vectors := []*ir.Type{s.float2, s.float3, s.float4}

	for _, name := range []string{"sqrt", "sin", "cos", "floor", "fract"} {
		s.intrinsic(name, f, f)
	}
	s.intrinsic("abs", f, f)
	s.intrinsic("abs", i, i)
	s.intrinsic("pow", f, f, f)
	s.intrinsic("mix", f, f, f, f)
	s.intrinsic("clamp", f, f, f, f)
	s.intrinsic("min", f, f, f)
	s.intrinsic("min", i, i, i)
	s.intrinsic("max", f, f, f)
	s.intrinsic("max", i, i, i)
	for _, v := range vectors {
		s.intrinsic("dot", f, v, v)
		s.intrinsic("length", f, v)
		s.intrinsic("normalize", v, v)
		s.intrinsic("mix", v, v, v, f)
	}
}

func (s *stdlib) registerBuiltinVariables() {
	s.builtinVariable(BuiltinFragCoord, s.float4, ir.ModifierIn)
	s.builtinVariable(BuiltinFrontFacing, s.boolType, ir.ModifierIn)
	s.builtinVariable(BuiltinFragColor, s.float4, ir.ModifierOut)
}

func (s *stdlib) builtinVariable(name string, t *ir.Type, flags ir.ModifierFlags) {
	data := &ir.VariableData{
		Name:      name,
		Type:      t,
		Storage:   ir.StorageGlobal,
		Modifiers: flags,
		Builtin:   true,
	}
	if flags.Has(ir.ModifierIn) {
		// Stage inputs arrive already written by the pipeline.
		data.WriteCount = 1
	}
	node := ir.NewNode(-1, data)
	must(s.symbols.Insert(&ir.Symbol{Kind: ir.SymbolVariable, Name: name, Var: node}))
}

// paramNode builds a formal parameter variable node for a built-in
// declaration.
func paramNode(name string, t *ir.Type) *ir.Node {
	return ir.NewNode(-1, &ir.VariableData{
		Name:       name,
		Type:       t,
		Storage:    ir.StorageParameter,
		WriteCount: 1,
	})
}

func paramName(i int) string {
	return string(rune('a' + i))
}

// must panics on seed-construction errors; the seed is fixed, so a failure
// here is a bug, not user input.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
