package metal

import (
	"fmt"
	"strings"

	"github.com/slint-ui/sksl/codegen"
	"github.com/slint-ui/sksl/ir"
	"github.com/slint-ui/sksl/resolver"
)

// vector component spellings, normalized to xyzw regardless of whether the
// source used rgba.
const componentNames = "xyzw"

// writeExpression writes an expression node, parenthesizing operator
// applications so that the source tree's grouping survives verbatim.
func (w *Writer) writeExpression(n *ir.Node) error {
	switch n.Kind() {
	case ir.KindBoolLiteral:
		if ir.PayloadAs[*ir.BoolLiteralData](n).Value {
			w.write("true")
		} else {
			w.write("false")
		}
		return nil

	case ir.KindIntLiteral:
		w.write("%d", ir.PayloadAs[*ir.IntLiteralData](n).Value)
		return nil

	case ir.KindFloatLiteral:
		w.write("%s", formatFloat(ir.PayloadAs[*ir.FloatLiteralData](n).Value))
		return nil

	case ir.KindSymbol:
		return w.writeSymbol(n)

	case ir.KindField:
		return w.writeField(n)

	case ir.KindFunctionCall:
		return w.writeCall(n, false)

	case ir.KindTypeToken:
		return w.writeConstructor(n)

	case ir.KindString:
		return codegen.Errorf("string literal", n.Offset,
			"MSL has no string type")

	case ir.KindExternalValue:
		v := ir.PayloadAs[*ir.ExternalValueData](n)
		return codegen.Errorf("external value", n.Offset,
			"external value '%s' cannot be lowered to MSL", v.Value.Name)

	default:
		panic(fmt.Sprintf("node kind %s in expression position", n.Kind()))
	}
}

// writeSymbol writes a variable reference, routing built-ins through the
// entry point's input/output structs and uniforms through the uniform
// struct.
func (w *Writer) writeSymbol(n *ir.Node) error {
	data := ir.PayloadAs[*ir.SymbolData](n)
	variable := data.Variable
	v := ir.PayloadAs[*ir.VariableData](variable)

	if v.Builtin {
		if !w.inEntry {
			return codegen.Errorf("built-in variable", n.Offset,
				"built-in '%s' may only be used in the entry point", v.Name)
		}
		switch v.Name {
		case resolver.BuiltinFragCoord, resolver.BuiltinFrontFacing:
			w.write("%s.%s", inputsVar, v.Name)
		case resolver.BuiltinFragColor:
			w.write("%s.%s", outputsVar, v.Name)
		default:
			return codegen.Errorf("built-in variable", n.Offset,
				"built-in '%s' has no MSL mapping", v.Name)
		}
		return nil
	}

	if v.Modifiers.Has(ir.ModifierUniform) {
		w.write("%s.%s", uniformsVar, w.names[variable])
		return nil
	}

	name, ok := w.names[variable]
	if !ok {
		panic(fmt.Sprintf("reference to unregistered variable '%s'", v.Name))
	}
	w.write("%s", name)
	return nil
}

func (w *Writer) writeField(n *ir.Node) error {
	data := ir.PayloadAs[*ir.FieldData](n)
	base := n.ValueChild(0)
	if err := w.writeExpression(base); err != nil {
		return err
	}
	if base.Type().IsVector() {
		w.write(".%c", componentNames[data.FieldIndex])
	} else {
		w.write(".%s", escapeName(data.Name))
	}
	return nil
}

// writeCall writes a function call node: a seeded operator application, an
// intrinsic, or a user function call. topLevel suppresses the grouping
// parentheses around assignments used in statement position.
func (w *Writer) writeCall(n *ir.Node, topLevel bool) error {
	data := ir.PayloadAs[*ir.FunctionCallData](n)
	fn := data.Function

	if fn.Operator {
		return w.writeOperator(n, fn, topLevel)
	}

	w.write("%s(", w.functionName(fn))
	for i := 0; i < n.ValueChildCount(); i++ {
		if i > 0 {
			w.write(", ")
		}
		if err := w.writeExpression(n.ValueChild(i)); err != nil {
			return err
		}
	}
	if len(w.uniforms) > 0 && !fn.Builtin {
		if n.ValueChildCount() > 0 {
			w.write(", ")
		}
		w.write("%s", uniformsVar)
	}
	w.write(")")
	return nil
}

// functionName maps a declaration to its emitted name. Intrinsics keep
// their source names, which match the metal namespace.
func (w *Writer) functionName(fn *ir.FunctionDeclaration) string {
	if fn.Builtin {
		return fn.Name
	}
	name, ok := w.funcNames[fn]
	if !ok {
		panic(fmt.Sprintf("call to unregistered function '%s'", fn.Name))
	}
	return name
}

func (w *Writer) writeOperator(n *ir.Node, fn *ir.FunctionDeclaration, topLevel bool) error {
	if n.ValueChildCount() == 1 {
		w.write("(%s", fn.Name)
		if err := w.writeExpression(n.ValueChild(0)); err != nil {
			return err
		}
		w.write(")")
		return nil
	}

	assignment := isAssignmentOperator(fn.Name)
	if !topLevel || !assignment {
		w.write("(")
	}
	if err := w.writeExpression(n.ValueChild(0)); err != nil {
		return err
	}
	w.write(" %s ", fn.Name)
	if err := w.writeExpression(n.ValueChild(1)); err != nil {
		return err
	}
	if !topLevel || !assignment {
		w.write(")")
	}
	return nil
}

// isAssignmentOperator distinguishes '=' and the compound assignments from
// the comparison operators that also end in '='.
func isAssignmentOperator(name string) bool {
	switch name {
	case "==", "!=", "<=", ">=":
		return false
	}
	return strings.HasSuffix(name, "=")
}

// writeConstructor writes a type construction such as float4(...).
func (w *Writer) writeConstructor(n *ir.Node) error {
	data := ir.PayloadAs[*ir.TypeTokenData](n)
	w.write("%s(", typeName(data.Type))
	for i := 0; i < n.ValueChildCount(); i++ {
		if i > 0 {
			w.write(", ")
		}
		if err := w.writeExpression(n.ValueChild(i)); err != nil {
			return err
		}
	}
	w.write(")")
	return nil
}
