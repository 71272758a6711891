package glsl

import (
	"fmt"
	"strings"

	"github.com/slint-ui/sksl/codegen"
	"github.com/slint-ui/sksl/ir"
	"github.com/slint-ui/sksl/resolver"
)

const componentNames = "xyzw"

// builtinNames maps the source language's built-in variables to their GLSL
// spellings. The color output keeps its name; it is declared as an 'out' in
// the header.
var builtinNames = map[string]string{
	resolver.BuiltinFragCoord:   "gl_FragCoord",
	resolver.BuiltinFrontFacing: "gl_FrontFacing",
	resolver.BuiltinFragColor:   resolver.BuiltinFragColor,
}

// writeExpression writes an expression node.
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

	case ir.KindFunctionCall:
		return w.writeCall(n, false)

	case ir.KindTypeToken:
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

	case ir.KindString:
		return codegen.Errorf("string literal", n.Offset,
			"GLSL has no string type")

	case ir.KindExternalValue:
		v := ir.PayloadAs[*ir.ExternalValueData](n)
		return codegen.Errorf("external value", n.Offset,
			"external value '%s' cannot be lowered to GLSL", v.Value.Name)

	default:
		panic(fmt.Sprintf("node kind %s in expression position", n.Kind()))
	}
}

func (w *Writer) writeSymbol(n *ir.Node) error {
	data := ir.PayloadAs[*ir.SymbolData](n)
	variable := data.Variable
	v := ir.PayloadAs[*ir.VariableData](variable)

	if v.Builtin {
		name, ok := builtinNames[v.Name]
		if !ok {
			return codegen.Errorf("built-in variable", n.Offset,
				"built-in '%s' has no GLSL mapping", v.Name)
		}
		w.write("%s", name)
		return nil
	}

	name, ok := w.names[variable]
	if !ok {
		panic(fmt.Sprintf("reference to unregistered variable '%s'", v.Name))
	}
	w.write("%s", name)
	return nil
}

// writeCall writes a function call node. topLevel suppresses the grouping
// parentheses around assignments used in statement position.
func (w *Writer) writeCall(n *ir.Node, topLevel bool) error {
	data := ir.PayloadAs[*ir.FunctionCallData](n)
	fn := data.Function

	if fn.Operator {
		return w.writeOperator(n, fn, topLevel)
	}

	name := fn.Name
	if !fn.Builtin {
		name = w.funcNames[fn]
	}
	w.write("%s(", name)
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
