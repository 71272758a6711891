package metal

import (
	"github.com/slint-ui/sksl/ir"
	"github.com/slint-ui/sksl/resolver"
)

// writeFunctions writes every user function: helpers first in declaration
// order, then the inner entry function.
func (w *Writer) writeFunctions() error {
	for _, fn := range w.program.Functions {
		if fn == w.entry {
			continue
		}
		if err := w.writeFunction(fn, false); err != nil {
			return err
		}
	}
	return w.writeFunction(w.entry, true)
}

// writeFunction writes a user function definition. The entry point's inner
// function additionally receives the input and output structs.
func (w *Writer) writeFunction(fn *ir.FunctionDeclaration, isEntry bool) error {
	w.writeIndent()
	w.write("%s %s(", typeName(fn.ReturnType), w.funcNames[fn])

	first := true
	comma := func() {
		if !first {
			w.write(", ")
		}
		first = false
	}

	if isEntry {
		comma()
		w.write("%s %s, thread %s& %s", inputsName, inputsVar, outputsName, outputsVar)
	}
	for _, param := range fn.Parameters {
		v := ir.PayloadAs[*ir.VariableData](param)
		w.names[param] = w.namer.call(v.Name)
		comma()
		w.write("%s %s", typeName(v.Type), w.names[param])
	}
	if len(w.uniforms) > 0 {
		comma()
		w.write("constant %s& %s", uniformsName, uniformsVar)
	}
	w.write(") {\n")

	w.inEntry = isEntry
	w.pushIndent()
	err := w.writeBody(fn.Body)
	w.popIndent()
	w.inEntry = false
	if err != nil {
		return err
	}

	w.writeLine("}")
	w.writeLine("")
	return nil
}

// writeEntryPoint writes the fragment wrapper: it carries the Metal stage
// attributes, assembles the Inputs struct, calls the inner function, and
// returns the outputs.
func (w *Writer) writeEntryPoint() {
	w.writeIndent()
	w.write("fragment %s %s(float4 %s [[position]], bool %s [[front_facing]]",
		outputsName, wrapperName, resolver.BuiltinFragCoord, resolver.BuiltinFrontFacing)
	if len(w.uniforms) > 0 {
		w.write(", constant %s& %s [[buffer(0)]]", uniformsName, uniformsVar)
	}
	w.write(") {\n")
	w.pushIndent()

	w.writeLine("%s %s = { %s, %s };", inputsName, inputsVar,
		resolver.BuiltinFragCoord, resolver.BuiltinFrontFacing)
	w.writeLine("%s %s;", outputsName, outputsVar)
	w.writeIndent()
	w.write("%s(%s, %s", innerName, inputsVar, outputsVar)
	if len(w.uniforms) > 0 {
		w.write(", %s", uniformsVar)
	}
	w.write(");\n")
	w.writeLine("return %s;", outputsVar)

	w.popIndent()
	w.writeLine("}")
}
