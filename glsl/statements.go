package glsl

import (
	"fmt"

	"github.com/slint-ui/sksl/ir"
)

// writeStatement writes one statement node at the current indentation.
func (w *Writer) writeStatement(n *ir.Node) error {
	switch n.Kind() {
	case ir.KindVariable:
		w.writeIndent()
		if err := w.writeLocalDecl(n); err != nil {
			return err
		}
		w.write(";\n")
		return nil

	case ir.KindBlock:
		w.writeLine("{")
		w.pushIndent()
		for i := 0; i < n.EffectChildCount(); i++ {
			if err := w.writeStatement(n.EffectChild(i)); err != nil {
				return err
			}
		}
		w.popIndent()
		w.writeLine("}")
		return nil

	case ir.KindForStatement:
		return w.writeFor(n)

	default:
		w.writeIndent()
		if err := w.writeStatementExpression(n); err != nil {
			return err
		}
		w.write(";\n")
		return nil
	}
}

func (w *Writer) writeStatementExpression(n *ir.Node) error {
	if n.Kind() == ir.KindFunctionCall {
		return w.writeCall(n, true)
	}
	return w.writeExpression(n)
}

// writeLocalDecl writes a local variable declaration without the trailing
// semicolon, so that for-statement initializers can reuse it.
func (w *Writer) writeLocalDecl(n *ir.Node) error {
	v := ir.PayloadAs[*ir.VariableData](n)
	w.names[n] = w.namer.call(v.Name)
	w.write("%s %s", typeName(v.Type), w.names[n])
	if n.ValueChildCount() > 0 {
		w.write(" = ")
		if err := w.writeExpression(n.ValueChild(0)); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeFor(n *ir.Node) error {
	init := n.EffectChild(0)
	body := n.EffectChild(1)
	cond := n.ValueChild(0)
	next := n.ValueChild(1)

	w.writeIndent()
	w.write("for (")
	if init.Kind() == ir.KindVariable {
		if err := w.writeLocalDecl(init); err != nil {
			return err
		}
	} else if err := w.writeStatementExpression(init); err != nil {
		return err
	}
	w.write("; ")
	if err := w.writeExpression(cond); err != nil {
		return err
	}
	w.write("; ")
	if err := w.writeStatementExpression(next); err != nil {
		return err
	}
	w.write(") {\n")

	w.pushIndent()
	if body.Kind() == ir.KindBlock {
		for i := 0; i < body.EffectChildCount(); i++ {
			if err := w.writeStatement(body.EffectChild(i)); err != nil {
				return err
			}
		}
	} else if err := w.writeStatement(body); err != nil {
		return err
	}
	w.popIndent()
	w.writeLine("}")
	return nil
}

// writeBody writes a function body block's statements between braces that
// the caller has already opened.
func (w *Writer) writeBody(body *ir.Node) error {
	if body.Kind() != ir.KindBlock {
		panic(fmt.Sprintf("function body is a %s, not a block", body.Kind()))
	}
	for i := 0; i < body.EffectChildCount(); i++ {
		if err := w.writeStatement(body.EffectChild(i)); err != nil {
			return err
		}
	}
	return nil
}
