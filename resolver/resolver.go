// Package resolver builds fully-typed IR trees from unresolved syntax trees.
//
// Resolution walks the syntax tree once: scope tracking is top-down, type
// determination is bottom-up (a construct's type is fixed only after all of
// its value children are resolved). Binary, unary, and assignment operators
// have no IR kind of their own; they resolve against the registry's seeded
// operator signatures and come out as function calls bound to built-in
// operator declarations.
//
// Variable read/write counters are maintained here, at the moment each
// reference is created, so dead-variable data is available as soon as
// resolution finishes rather than as a separate pass.
package resolver

import (
	"math"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"github.com/slint-ui/sksl/ast"
	"github.com/slint-ui/sksl/ir"
)

// Resolver turns one syntax tree into one ir.Program. A Resolver is
// single-use and single-threaded; independent compilations each get their
// own.
type Resolver struct {
	std   *stdlib
	scope *ir.SymbolTable

	program *ir.Program
	enums   map[string]*ir.Node

	// pending pairs each user function declaration with its unresolved
	// body, so signatures exist before any body is resolved and forward
	// calls work.
	pending []pendingFunction
}

type pendingFunction struct {
	decl *ir.FunctionDeclaration
	body *ast.Node
}

// Resolve builds a typed program from a raw syntax tree, or reports the
// first ResolutionError encountered. No partial program is returned on
// error.
func Resolve(root *ast.Node) (*ir.Program, error) {
	if root.Kind != ast.KindProgram {
		return nil, errorf(root.Offset, "expected a program, but found '%s'", root.Kind)
	}

	std := newStdlib()
	r := &Resolver{
		std:   std,
		scope: std.symbols,
		program: &ir.Program{
			Symbols:  std.symbols,
			Registry: std.registry,
		},
		enums: make(map[string]*ir.Node),
	}

	if err := r.resolveProgram(root); err != nil {
		r.program.Destroy()
		return nil, err
	}
	return r.program, nil
}

func (r *Resolver) resolveProgram(root *ast.Node) error {
	// Declarations first, so that bodies may call functions and read
	// globals declared later in the file.
	for _, decl := range root.Children {
		switch decl.Kind {
		case ast.KindVarDecl:
			node, err := r.resolveVarDecl(decl, ir.StorageGlobal)
			if err != nil {
				return err
			}
			r.program.Elements = append(r.program.Elements, node)
		case ast.KindEnumDecl:
			node, err := r.resolveEnum(decl)
			if err != nil {
				return err
			}
			r.program.Elements = append(r.program.Elements, node)
		case ast.KindFunction:
			if err := r.declareFunction(decl); err != nil {
				return err
			}
		default:
			return errorf(decl.Offset, "unexpected top-level element '%s'", decl.Kind)
		}
	}

	for _, p := range r.pending {
		if err := r.resolveFunctionBody(p.decl, p.body); err != nil {
			return err
		}
	}
	return nil
}

// declareFunction resolves a function's signature and registers its name,
// deferring the body.
func (r *Resolver) declareFunction(n *ast.Node) error {
	if len(n.Children) < 2 {
		return errorf(n.Offset, "malformed function declaration '%s'", n.Text)
	}
	returnType, err := r.resolveType(n.Child(0))
	if err != nil {
		return err
	}
	if !returnType.IsVoid() {
		return errorf(n.Offset, "function '%s' must return 'void'", n.Text)
	}

	body := n.Children[len(n.Children)-1]
	if body.Kind != ast.KindBlock {
		return errorf(body.Offset, "expected a function body, but found '%s'", body.Kind)
	}

	decl := &ir.FunctionDeclaration{
		Name:       n.Text,
		Offset:     n.Offset,
		ReturnType: returnType,
	}
	for _, param := range n.Children[1 : len(n.Children)-1] {
		if param.Kind != ast.KindParameter {
			return errorf(param.Offset, "expected a parameter, but found '%s'", param.Kind)
		}
		paramType, err := r.resolveType(param.Child(0))
		if err != nil {
			return err
		}
		decl.Parameters = append(decl.Parameters, ir.NewNode(param.Offset, &ir.VariableData{
			Name:    param.Text,
			Type:    paramType,
			Storage: ir.StorageParameter,
			// The caller writes every parameter.
			WriteCount: 1,
		}))
	}

	if err := r.scope.Insert(&ir.Symbol{
		Kind: ir.SymbolFunction,
		Name: decl.Name,
		Fns:  []*ir.FunctionDeclaration{decl},
	}); err != nil {
		return errorf(n.Offset, "%s", err)
	}

	r.program.Functions = append(r.program.Functions, decl)
	r.pending = append(r.pending, pendingFunction{decl: decl, body: body})
	return nil
}

func (r *Resolver) resolveFunctionBody(decl *ir.FunctionDeclaration, body *ast.Node) error {
	r.pushScope()
	for _, param := range decl.Parameters {
		v := ir.PayloadAs[*ir.VariableData](param)
		if err := r.scope.Insert(&ir.Symbol{Kind: ir.SymbolVariable, Name: v.Name, Var: param}); err != nil {
			return errorf(param.Offset, "%s", err)
		}
	}

	stmts := make([]*ir.Node, 0, len(body.Children))
	for _, stmt := range body.Children {
		node, err := r.resolveStatement(stmt)
		if err != nil {
			destroyAll(stmts)
			r.popScope().Release()
			return err
		}
		stmts = append(stmts, node)
	}

	scope := r.popScope()
	decl.Body = ir.NewNodeWithEffects(body.Offset, &ir.BlockData{Symbols: scope, IsScope: true}, stmts)
	scope.Release()
	return nil
}

// Statements

func (r *Resolver) resolveStatement(n *ast.Node) (*ir.Node, error) {
	switch n.Kind {
	case ast.KindVarDecl:
		return r.resolveVarDecl(n, ir.StorageLocal)
	case ast.KindBlock:
		return r.resolveBlock(n)
	case ast.KindFor:
		return r.resolveFor(n)
	case ast.KindExprStmt:
		if len(n.Children) != 1 {
			return nil, errorf(n.Offset, "malformed expression statement")
		}
		return r.resolveExpression(n.Child(0))
	case ast.KindAssign, ast.KindCall:
		return r.resolveExpression(n)
	default:
		return nil, errorf(n.Offset, "expected a statement, but found '%s'", n.Kind)
	}
}

func (r *Resolver) resolveBlock(n *ast.Node) (*ir.Node, error) {
	r.pushScope()
	stmts := make([]*ir.Node, 0, len(n.Children))
	for _, stmt := range n.Children {
		node, err := r.resolveStatement(stmt)
		if err != nil {
			destroyAll(stmts)
			r.popScope().Release()
			return nil, err
		}
		stmts = append(stmts, node)
	}
	scope := r.popScope()
	block := ir.NewNodeWithEffects(n.Offset, &ir.BlockData{Symbols: scope, IsScope: true}, stmts)
	scope.Release()
	return block, nil
}

// resolveFor resolves 'for (init; condition; next) body'. The condition and
// next expressions become value children; the initializer and body are
// effect children scoped to the loop.
func (r *Resolver) resolveFor(n *ast.Node) (*ir.Node, error) {
	if len(n.Children) != 4 {
		return nil, errorf(n.Offset, "malformed for statement")
	}
	// Backends emit the initializer inside the 'for (...)' header, where
	// only declarations and expressions fit.
	switch n.Child(0).Kind {
	case ast.KindVarDecl, ast.KindExprStmt:
	default:
		return nil, errorf(n.Child(0).Offset,
			"expected a variable declaration or expression in a 'for' initializer, but found '%s'", n.Child(0).Kind)
	}

	r.pushScope()
	fail := func(err error, built ...*ir.Node) (*ir.Node, error) {
		destroyAll(built)
		r.popScope().Release()
		return nil, err
	}

	init, err := r.resolveStatement(n.Child(0))
	if err != nil {
		return fail(err)
	}
	cond, err := r.resolveExpression(n.Child(1))
	if err != nil {
		return fail(err, init)
	}
	condType, err := valueType(cond)
	if err != nil {
		return fail(err, init, cond)
	}
	if !condType.IsScalar(ir.ScalarBool) {
		return fail(errorf(n.Child(1).Offset, "expected 'bool', but found '%s'", condType), init, cond)
	}
	next, err := r.resolveExpression(n.Child(2))
	if err != nil {
		return fail(err, init, cond)
	}
	body, err := r.resolveStatement(n.Child(3))
	if err != nil {
		return fail(err, init, cond, next)
	}

	scope := r.popScope()
	loop := ir.NewNodeWithChildren(n.Offset,
		&ir.ForStatementData{Symbols: scope},
		[]*ir.Node{cond, next},
		[]*ir.Node{init, body})
	scope.Release()
	return loop, nil
}

func (r *Resolver) resolveVarDecl(n *ast.Node, storage ir.Storage) (*ir.Node, error) {
	if len(n.Children) < 1 {
		return nil, errorf(n.Offset, "malformed variable declaration '%s'", n.Text)
	}
	varType, err := r.resolveType(n.Child(0))
	if err != nil {
		return nil, err
	}
	if varType.IsVoid() {
		return nil, errorf(n.Offset, "variables of type 'void' are not allowed")
	}

	modifiers, err := parseModifiers(n)
	if err != nil {
		return nil, err
	}

	data := &ir.VariableData{
		Name:      n.Text,
		Type:      varType,
		Storage:   storage,
		Modifiers: modifiers,
	}
	if modifiers.Has(ir.ModifierUniform) || modifiers.Has(ir.ModifierIn) {
		// The pipeline writes these from outside the program.
		data.WriteCount = 1
	}

	var values []*ir.Node
	if initExpr := n.Child(1); initExpr != nil {
		value, err := r.resolveExpression(initExpr)
		if err != nil {
			return nil, err
		}
		valType, err := valueType(value)
		if err != nil {
			value.Destroy()
			return nil, err
		}
		if valType != varType {
			value.Destroy()
			return nil, errorf(initExpr.Offset, "expected '%s', but found '%s'", varType, valType)
		}
		values = []*ir.Node{value}
		data.WriteCount = 1
	}

	node := ir.NewNodeWithValues(n.Offset, data, values)
	if err := r.scope.Insert(&ir.Symbol{Kind: ir.SymbolVariable, Name: n.Text, Var: node}); err != nil {
		node.Destroy()
		return nil, errorf(n.Offset, "%s", err)
	}
	return node, nil
}

func (r *Resolver) resolveEnum(n *ast.Node) (*ir.Node, error) {
	scope := ir.NewSymbolTable(r.scope)
	members := make([]*ir.Node, 0, len(n.Children))
	for i, member := range n.Children {
		if member.Kind != ast.KindEnumMember {
			scope.Release()
			destroyAll(members)
			return nil, errorf(member.Offset, "expected an enum member, but found '%s'", member.Kind)
		}
		value := ir.NewNode(member.Offset, &ir.IntLiteralData{Type: r.std.intType, Value: int64(i)})
		node := ir.NewNodeWithValues(member.Offset, &ir.VariableData{
			Name:       member.Text,
			Type:       r.std.intType,
			Storage:    ir.StorageGlobal,
			Modifiers:  ir.ModifierConst,
			WriteCount: 1,
		}, []*ir.Node{value})
		if err := scope.Insert(&ir.Symbol{Kind: ir.SymbolVariable, Name: member.Text, Var: node}); err != nil {
			node.Destroy()
			scope.Release()
			destroyAll(members)
			return nil, errorf(member.Offset, "%s", err)
		}
		members = append(members, node)
	}

	enum := ir.NewNodeWithValues(n.Offset, &ir.EnumData{TypeName: n.Text, Symbols: scope}, members)
	scope.Release()

	if err := r.scope.Insert(&ir.Symbol{Kind: ir.SymbolType, Name: n.Text, Type: r.std.intType}); err != nil {
		enum.Destroy()
		return nil, errorf(n.Offset, "%s", err)
	}
	r.enums[n.Text] = enum
	return enum, nil
}

// Expressions

// valueType returns an expression's type. String literals are the one
// expression kind with no type; they are only legal in statement position,
// so asking for their type is a resolution error rather than a panic.
func valueType(n *ir.Node) (*ir.Type, error) {
	if !n.Kind().Typed() {
		return nil, errorf(n.Offset, "a string literal cannot be used as a value")
	}
	return n.Type(), nil
}

func (r *Resolver) resolveExpression(n *ast.Node) (*ir.Node, error) {
	switch n.Kind {
	case ast.KindIntLiteral:
		return r.resolveIntLiteral(n)
	case ast.KindFloatLit:
		return r.resolveFloatLiteral(n)
	case ast.KindBoolLiteral:
		switch n.Text {
		case "true":
			return ir.NewNode(n.Offset, &ir.BoolLiteralData{Type: r.std.boolType, Value: true}), nil
		case "false":
			return ir.NewNode(n.Offset, &ir.BoolLiteralData{Type: r.std.boolType, Value: false}), nil
		default:
			return nil, errorf(n.Offset, "invalid bool literal '%s'", n.Text)
		}
	case ast.KindStringLit:
		return ir.NewNode(n.Offset, &ir.StringData{Value: n.Text}), nil
	case ast.KindIdentifier:
		return r.resolveIdentifier(n, ir.RefRead)
	case ast.KindFieldAccess:
		return r.resolveField(n, ir.RefRead)
	case ast.KindBinary:
		return r.resolveBinary(n)
	case ast.KindUnary:
		return r.resolveUnary(n)
	case ast.KindAssign:
		return r.resolveAssign(n)
	case ast.KindCall:
		return r.resolveCall(n)
	default:
		return nil, errorf(n.Offset, "expected an expression, but found '%s'", n.Kind)
	}
}

func (r *Resolver) resolveIntLiteral(n *ast.Node) (*ir.Node, error) {
	// Base 0 honors the lexer's sub-kind spellings (decimal, hex, octal).
	value, err := strconv.ParseInt(n.Text, 0, 64)
	if err != nil {
		return nil, errorf(n.Offset, "invalid int literal '%s'", n.Text)
	}
	// The language's int is 32-bit; the payload keeps the wider value only
	// as a carrier.
	if _, err := safecast.Conv[int32](value); err != nil {
		return nil, errorf(n.Offset, "integer literal '%s' out of range for type 'int'", n.Text)
	}
	return ir.NewNode(n.Offset, &ir.IntLiteralData{Type: r.std.intType, Value: value}), nil
}

func (r *Resolver) resolveFloatLiteral(n *ast.Node) (*ir.Node, error) {
	value, err := strconv.ParseFloat(n.Text, 32)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return nil, errorf(n.Offset, "invalid float literal '%s'", n.Text)
	}
	return ir.NewNode(n.Offset, &ir.FloatLiteralData{Type: r.std.floatType, Value: float32(value)}), nil
}

func (r *Resolver) resolveIdentifier(n *ast.Node, ref ir.RefKind) (*ir.Node, error) {
	sym, ok := r.scope.Lookup(n.Text)
	if !ok {
		return nil, errorf(n.Offset, "unknown identifier '%s'", n.Text)
	}
	switch sym.Kind {
	case ir.SymbolVariable:
		return r.symbolRef(n.Offset, sym, ref), nil
	case ir.SymbolType:
		return ir.NewNode(n.Offset, &ir.TypeData{Type: sym.Type}), nil
	default:
		return nil, errorf(n.Offset, "'%s' is a %s and cannot be used as a value", n.Text, sym.Kind)
	}
}

func (r *Resolver) symbolRef(offset int, sym *ir.Symbol, ref ir.RefKind) *ir.Node {
	v := ir.PayloadAs[*ir.VariableData](sym.Var)
	return ir.NewNode(offset, &ir.SymbolData{
		Name:     v.Name,
		Type:     v.Type,
		Variable: sym.Var,
		Ref:      ref,
	})
}

var componentIndex = map[byte]int{
	'x': 0, 'y': 1, 'z': 2, 'w': 3,
	'r': 0, 'g': 1, 'b': 2, 'a': 3,
}

func (r *Resolver) resolveField(n *ast.Node, ref ir.RefKind) (*ir.Node, error) {
	base := n.Child(0)
	if base == nil {
		return nil, errorf(n.Offset, "malformed field access '%s'", n.Text)
	}

	// Enum member access: Kind.MEMBER resolves straight to the member.
	if base.Kind == ast.KindIdentifier {
		if enum, ok := r.enums[base.Text]; ok {
			return r.resolveEnumMember(n, enum)
		}
	}

	baseNode, err := r.resolveExpression2(base, ref)
	if err != nil {
		return nil, err
	}
	baseType, err := valueType(baseNode)
	if err != nil {
		baseNode.Destroy()
		return nil, err
	}

	if baseType.IsVector() {
		if len(n.Text) != 1 {
			baseNode.Destroy()
			return nil, errorf(n.Offset, "type '%s' has no field named '%s'", baseType, n.Text)
		}
		idx, ok := componentIndex[n.Text[0]]
		if !ok || idx >= baseType.ComponentCount() {
			baseNode.Destroy()
			return nil, errorf(n.Offset, "type '%s' has no field named '%s'", baseType, n.Text)
		}
		return ir.NewNodeWithValues(n.Offset, &ir.FieldData{
			Name:       n.Text,
			Type:       baseType.ComponentType(),
			Owner:      ownerVariable(baseNode),
			FieldIndex: idx,
		}, []*ir.Node{baseNode}), nil
	}

	if idx := baseType.FieldIndex(n.Text); idx >= 0 {
		st := baseType.Inner.(ir.StructType)
		return ir.NewNodeWithValues(n.Offset, &ir.FieldData{
			Name:       n.Text,
			Type:       st.Fields[idx].Type,
			Owner:      ownerVariable(baseNode),
			FieldIndex: idx,
		}, []*ir.Node{baseNode}), nil
	}

	baseNode.Destroy()
	return nil, errorf(n.Offset, "type '%s' has no field named '%s'", baseType, n.Text)
}

func (r *Resolver) resolveEnumMember(n *ast.Node, enum *ir.Node) (*ir.Node, error) {
	data := ir.PayloadAs[*ir.EnumData](enum)
	sym, ok := data.Symbols.LookupLocal(n.Text)
	if !ok {
		return nil, errorf(n.Offset, "enum '%s' has no member named '%s'", data.TypeName, n.Text)
	}
	return r.symbolRef(n.Offset, sym, ir.RefRead), nil
}

// ownerVariable digs out the variable node a field access ultimately touches,
// if the base chain bottoms out in a symbol reference.
func ownerVariable(base *ir.Node) *ir.Node {
	for {
		switch base.Kind() {
		case ir.KindSymbol:
			return ir.PayloadAs[*ir.SymbolData](base).Variable
		case ir.KindField:
			base = base.ValueChild(0)
		default:
			return nil
		}
	}
}

func (r *Resolver) resolveBinary(n *ast.Node) (*ir.Node, error) {
	if len(n.Children) != 2 {
		return nil, errorf(n.Offset, "malformed binary expression '%s'", n.Text)
	}
	left, err := r.resolveExpression(n.Child(0))
	if err != nil {
		return nil, err
	}
	right, err := r.resolveExpression(n.Child(1))
	if err != nil {
		left.Destroy()
		return nil, err
	}

	fail := func(err error) (*ir.Node, error) {
		left.Destroy()
		right.Destroy()
		return nil, err
	}
	leftType, err := valueType(left)
	if err != nil {
		return fail(err)
	}
	rightType, err := valueType(right)
	if err != nil {
		return fail(err)
	}
	decl, ok := r.std.registry.FindOperator(n.Text, leftType, rightType)
	if !ok {
		return fail(errorf(n.Offset, "type mismatch: '%s' cannot operate on '%s', '%s'", n.Text, leftType, rightType))
	}
	return ir.NewNodeWithValues(n.Offset, &ir.FunctionCallData{
		Type:     decl.ReturnType,
		Function: decl,
	}, []*ir.Node{left, right}), nil
}

func (r *Resolver) resolveUnary(n *ast.Node) (*ir.Node, error) {
	if len(n.Children) != 1 {
		return nil, errorf(n.Offset, "malformed unary expression '%s'", n.Text)
	}
	operand, err := r.resolveExpression(n.Child(0))
	if err != nil {
		return nil, err
	}
	operandType, err := valueType(operand)
	if err != nil {
		operand.Destroy()
		return nil, err
	}
	decl, ok := r.std.registry.FindOperator(n.Text, operandType, nil)
	if !ok {
		operand.Destroy()
		return nil, errorf(n.Offset, "type mismatch: '%s' cannot operate on '%s'", n.Text, operandType)
	}
	return ir.NewNodeWithValues(n.Offset, &ir.FunctionCallData{
		Type:     decl.ReturnType,
		Function: decl,
	}, []*ir.Node{operand}), nil
}

func (r *Resolver) resolveAssign(n *ast.Node) (*ir.Node, error) {
	if len(n.Children) != 2 {
		return nil, errorf(n.Offset, "malformed assignment")
	}
	ref := ir.RefWrite
	if n.Text != "=" {
		// Compound assignment reads the target as well.
		ref = ir.RefReadWrite
	}

	target, err := r.resolveAssignTarget(n.Child(0), ref)
	if err != nil {
		return nil, err
	}
	value, err := r.resolveExpression(n.Child(1))
	if err != nil {
		target.Destroy()
		return nil, err
	}

	valType, err := valueType(value)
	if err != nil {
		target.Destroy()
		value.Destroy()
		return nil, err
	}
	decl, ok := r.std.registry.FindOperator(n.Text, target.Type(), valType)
	if !ok {
		msg := errorf(n.Offset, "type mismatch: '%s' cannot operate on '%s', '%s'", n.Text, target.Type(), valType)
		target.Destroy()
		value.Destroy()
		return nil, msg
	}
	return ir.NewNodeWithValues(n.Offset, &ir.FunctionCallData{
		Type:     decl.ReturnType,
		Function: decl,
	}, []*ir.Node{target, value}), nil
}

// resolveAssignTarget resolves the left side of an assignment and checks
// that it is actually assignable.
func (r *Resolver) resolveAssignTarget(n *ast.Node, ref ir.RefKind) (*ir.Node, error) {
	switch n.Kind {
	case ast.KindIdentifier, ast.KindFieldAccess:
	default:
		return nil, errorf(n.Offset, "cannot assign to this expression")
	}

	target, err := r.resolveExpression2(n, ref)
	if err != nil {
		return nil, err
	}

	owner := ownerVariable(target)
	if owner == nil {
		target.Destroy()
		return nil, errorf(n.Offset, "cannot assign to this expression")
	}
	v := ir.PayloadAs[*ir.VariableData](owner)
	if v.Modifiers.Has(ir.ModifierConst) {
		target.Destroy()
		return nil, errorf(n.Offset, "cannot modify immutable variable '%s'", v.Name)
	}
	if v.Builtin && v.Modifiers.Has(ir.ModifierIn) {
		target.Destroy()
		return nil, errorf(n.Offset, "cannot write to read-only built-in '%s'", v.Name)
	}
	return target, nil
}

// resolveExpression2 is resolveExpression with an explicit reference kind for
// the lvalue-capable forms.
func (r *Resolver) resolveExpression2(n *ast.Node, ref ir.RefKind) (*ir.Node, error) {
	switch n.Kind {
	case ast.KindIdentifier:
		return r.resolveIdentifier(n, ref)
	case ast.KindFieldAccess:
		return r.resolveField(n, ref)
	default:
		return r.resolveExpression(n)
	}
}

func (r *Resolver) resolveCall(n *ast.Node) (*ir.Node, error) {
	sym, ok := r.scope.Lookup(n.Text)
	if !ok {
		return nil, errorf(n.Offset, "unknown function '%s'", n.Text)
	}

	args := make([]*ir.Node, 0, len(n.Children))
	for _, argNode := range n.Children {
		arg, err := r.resolveExpression(argNode)
		if err == nil {
			_, err = valueType(arg)
		}
		if err != nil {
			if arg != nil {
				arg.Destroy()
			}
			destroyAll(args)
			return nil, err
		}
		args = append(args, arg)
	}

	switch sym.Kind {
	case ir.SymbolFunction:
		decl, err := pickOverload(n, sym.Fns, args)
		if err != nil {
			destroyAll(args)
			return nil, err
		}
		return ir.NewNodeWithValues(n.Offset, &ir.FunctionCallData{
			Type:     decl.ReturnType,
			Function: decl,
		}, args), nil

	case ir.SymbolType:
		return r.resolveConstructor(n, sym.Type, args)

	default:
		destroyAll(args)
		return nil, errorf(n.Offset, "'%s' is not a function", n.Text)
	}
}

func pickOverload(n *ast.Node, fns []*ir.FunctionDeclaration, args []*ir.Node) (*ir.FunctionDeclaration, error) {
	arityMatched := false
	for _, decl := range fns {
		if len(decl.Parameters) != len(args) {
			continue
		}
		arityMatched = true
		matches := true
		for i, param := range decl.Parameters {
			if param.Type() != args[i].Type() {
				matches = false
				break
			}
		}
		if matches {
			return decl, nil
		}
	}
	if !arityMatched {
		return nil, errorf(n.Offset, "call to '%s' expected %d arguments, but found %d",
			n.Text, len(fns[0].Parameters), len(args))
	}
	return nil, errorf(n.Offset, "no match for %s(%s)", n.Text, argTypeList(args))
}

// resolveConstructor resolves 'float4(...)' style type construction. The
// node's payload is a type token so the constructed type is the node's type;
// the arguments are its value children.
func (r *Resolver) resolveConstructor(n *ast.Node, t *ir.Type, args []*ir.Node) (*ir.Node, error) {
	size := t.ComponentCount()
	component := t.ComponentType()

	if !t.IsVector() {
		destroyAll(args)
		return nil, errorf(n.Offset, "cannot construct type '%s'", t)
	}

	// Either a single-scalar splat or components summing to the size.
	total := 0
	splat := len(args) == 1 && args[0].Type() == component
	if !splat {
		for _, arg := range args {
			at := arg.Type()
			if at.ComponentType() != component {
				msg := errorf(n.Offset, "expected '%s', but found '%s' in '%s' constructor", component, at, t)
				destroyAll(args)
				return nil, msg
			}
			total += at.ComponentCount()
		}
		if total != size {
			msg := errorf(n.Offset, "invalid arguments to '%s' constructor (expected %d scalars, but found %d)", t, size, total)
			destroyAll(args)
			return nil, msg
		}
	}

	return ir.NewNodeWithValues(n.Offset, &ir.TypeTokenData{
		Type:  t,
		Token: ir.TokenIdentifier,
	}, args), nil
}

// Helpers

func (r *Resolver) resolveType(n *ast.Node) (*ir.Type, error) {
	if n == nil || n.Kind != ast.KindTypeName {
		offset := 0
		if n != nil {
			offset = n.Offset
		}
		return nil, errorf(offset, "expected a type name")
	}
	if t, ok := r.std.registry.LookupName(n.Text); ok {
		return t, nil
	}
	if sym, ok := r.scope.Lookup(n.Text); ok && sym.Kind == ir.SymbolType {
		return sym.Type, nil
	}
	return nil, errorf(n.Offset, "unknown type '%s'", n.Text)
}

func parseModifiers(n *ast.Node) (ir.ModifierFlags, error) {
	var flags ir.ModifierFlags
	for _, m := range n.Modifiers {
		switch m {
		case "in":
			flags |= ir.ModifierIn
		case "out":
			flags |= ir.ModifierOut
		case "uniform":
			flags |= ir.ModifierUniform
		case "const":
			flags |= ir.ModifierConst
		default:
			return 0, errorf(n.Offset, "unknown modifier '%s'", m)
		}
	}
	return flags, nil
}

func (r *Resolver) pushScope() {
	r.scope = ir.NewSymbolTable(r.scope)
}

func (r *Resolver) popScope() *ir.SymbolTable {
	scope := r.scope
	r.scope = scope.Parent
	return scope
}

func destroyAll(nodes []*ir.Node) {
	for i := len(nodes) - 1; i >= 0; i-- {
		nodes[i].Destroy()
	}
}

func argTypeList(args []*ir.Node) string {
	names := make([]string, len(args))
	for i, arg := range args {
		names[i] = arg.Type().String()
	}
	return strings.Join(names, ", ")
}
