package metal

import (
	"fmt"
	"strings"

	"github.com/slint-ui/sksl/codegen"
	"github.com/slint-ui/sksl/ir"
	"github.com/slint-ui/sksl/resolver"
)

// Names claimed by the generated scaffolding.
const (
	wrapperName  = "fragmentMain"
	innerName    = "_skslMain"
	inputsName   = "Inputs"
	outputsName  = "Outputs"
	uniformsName = "Uniforms"
	inputsVar    = "_in"
	outputsVar   = "_out"
	uniformsVar  = "_uniforms"
)

// Writer generates MSL source code from a resolved program.
type Writer struct {
	program *ir.Program
	options *Options

	// Output buffer
	out strings.Builder

	// Current indentation level
	indent int

	// Name management
	names     map[*ir.Node]string
	funcNames map[*ir.FunctionDeclaration]string
	namer     *namer

	// Uniform globals, in declaration order. When non-empty they are
	// gathered into a Uniforms struct threaded through every user
	// function.
	uniforms []*ir.Node

	// Entry point context
	entry   *ir.FunctionDeclaration
	inEntry bool
}

// namer generates unique identifiers.
type namer struct {
	usedNames map[string]struct{}
	counter   uint32
}

func newNamer() *namer {
	n := &namer{
		usedNames: make(map[string]struct{}),
	}
	for _, name := range []string{
		wrapperName, innerName, inputsName, outputsName, uniformsName,
		inputsVar, outputsVar, uniformsVar,
	} {
		n.usedNames[name] = struct{}{}
	}
	return n
}

// call generates a unique name based on the given base.
func (n *namer) call(base string) string {
	escaped := escapeName(base)
	if _, used := n.usedNames[escaped]; !used {
		n.usedNames[escaped] = struct{}{}
		return escaped
	}
	for {
		n.counter++
		candidate := fmt.Sprintf("%s_%d", escaped, n.counter)
		if _, used := n.usedNames[candidate]; !used {
			n.usedNames[candidate] = struct{}{}
			return candidate
		}
	}
}

// newWriter creates a new MSL writer.
func newWriter(program *ir.Program, options *Options) *Writer {
	return &Writer{
		program:   program,
		options:   options,
		names:     make(map[*ir.Node]string),
		funcNames: make(map[*ir.FunctionDeclaration]string),
		namer:     newNamer(),
	}
}

// String returns the generated MSL source code.
func (w *Writer) String() string {
	return w.out.String()
}

// writeProgram generates MSL code for the entire program.
//
// The emission order is fixed so that identical programs produce identical
// output: header, input struct, output struct, uniform struct, program-scope
// constants, helper functions, inner entry function, wrapper.
func (w *Writer) writeProgram() error {
	entry, ok := w.program.EntryPoint(w.options.EntryPoint)
	if !ok {
		return fmt.Errorf("entry point %q not found", w.options.EntryPoint)
	}
	w.entry = entry

	if err := w.registerNames(); err != nil {
		return err
	}

	w.writeHeader()
	w.writeInputsStruct()
	w.writeOutputsStruct()
	if err := w.writeUniformsStruct(); err != nil {
		return err
	}
	if err := w.writeProgramConstants(); err != nil {
		return err
	}
	if err := w.writeFunctions(); err != nil {
		return err
	}
	w.writeEntryPoint()
	return nil
}

// writeHeader writes the MSL file header.
func (w *Writer) writeHeader() {
	w.writeLine("#include <metal_stdlib>")
	w.writeLine("#include <simd/simd.h>")
	w.writeLine("")
	w.writeLine("using namespace metal;")
	w.writeLine("")
}

// registerNames assigns unique output names to globals, enum members, and
// functions, and collects the uniform globals.
func (w *Writer) registerNames() error {
	for _, element := range w.program.Elements {
		switch element.Kind() {
		case ir.KindVariable:
			v := ir.PayloadAs[*ir.VariableData](element)
			w.names[element] = w.namer.call(v.Name)
			if v.Modifiers.Has(ir.ModifierUniform) {
				w.uniforms = append(w.uniforms, element)
			}
		case ir.KindEnum:
			for i := 0; i < element.ValueChildCount(); i++ {
				member := element.ValueChild(i)
				v := ir.PayloadAs[*ir.VariableData](member)
				w.names[member] = w.namer.call(v.Name)
			}
		}
	}

	for _, fn := range w.program.Functions {
		if fn == w.entry {
			w.funcNames[fn] = innerName
			continue
		}
		w.funcNames[fn] = w.namer.call(fn.Name)
	}
	return nil
}

// writeInputsStruct writes the struct holding the built-in inputs.
func (w *Writer) writeInputsStruct() {
	w.writeLine("struct %s {", inputsName)
	w.pushIndent()
	w.writeLine("float4 %s [[position]];", resolver.BuiltinFragCoord)
	w.writeLine("bool %s [[front_facing]];", resolver.BuiltinFrontFacing)
	w.popIndent()
	w.writeLine("};")
	w.writeLine("")
}

// writeOutputsStruct writes the struct holding the built-in outputs.
func (w *Writer) writeOutputsStruct() {
	w.writeLine("struct %s {", outputsName)
	w.pushIndent()
	w.writeLine("float4 %s [[color(0)]];", resolver.BuiltinFragColor)
	w.popIndent()
	w.writeLine("};")
	w.writeLine("")
}

// writeUniformsStruct writes the struct gathering all uniform globals, if
// the program has any.
func (w *Writer) writeUniformsStruct() error {
	if len(w.uniforms) == 0 {
		return nil
	}
	w.writeLine("struct %s {", uniformsName)
	w.pushIndent()
	for _, u := range w.uniforms {
		v := ir.PayloadAs[*ir.VariableData](u)
		if u.ValueChildCount() > 0 {
			return codegen.Errorf("uniform variable", u.Offset,
				"uniform '%s' may not have an initializer", v.Name)
		}
		w.writeLine("%s %s;", typeName(v.Type), w.names[u])
	}
	w.popIndent()
	w.writeLine("};")
	w.writeLine("")
	return nil
}

// writeProgramConstants writes constant globals and enum members in
// declaration order.
func (w *Writer) writeProgramConstants() error {
	wrote := false
	for _, element := range w.program.Elements {
		switch element.Kind() {
		case ir.KindVariable:
			v := ir.PayloadAs[*ir.VariableData](element)
			if v.Modifiers.Has(ir.ModifierUniform) {
				continue
			}
			if !v.Modifiers.Has(ir.ModifierConst) {
				return codegen.Errorf("global variable", element.Offset,
					"global '%s' must be 'const' or 'uniform'", v.Name)
			}
			if element.ValueChildCount() == 0 {
				return codegen.Errorf("global variable", element.Offset,
					"constant '%s' must have an initializer", v.Name)
			}
			w.writeIndent()
			w.write("constant %s %s = ", typeName(v.Type), w.names[element])
			if err := w.writeExpression(element.ValueChild(0)); err != nil {
				return err
			}
			w.write(";\n")
			wrote = true

		case ir.KindEnum:
			for i := 0; i < element.ValueChildCount(); i++ {
				member := element.ValueChild(i)
				ordinal := ir.PayloadAs[*ir.IntLiteralData](member.ValueChild(0))
				w.writeLine("constant int %s = %d;", w.names[member], ordinal.Value)
				wrote = true
			}
		}
	}
	if wrote {
		w.writeLine("")
	}
	return nil
}

// Output helpers

// write writes text to the output. If args are provided, uses fmt.Fprintf.
//
//nolint:goprintffuncname
func (w *Writer) write(format string, args ...any) {
	if len(args) == 0 {
		w.out.WriteString(format)
	} else {
		fmt.Fprintf(&w.out, format, args...)
	}
}

// writeLine writes a line with optional format args and a newline.
//
//nolint:goprintffuncname
func (w *Writer) writeLine(format string, args ...any) {
	w.writeIndent()
	if len(args) == 0 {
		w.out.WriteString(format)
	} else {
		fmt.Fprintf(&w.out, format, args...)
	}
	w.out.WriteByte('\n')
}

// writeIndent writes the current indentation.
func (w *Writer) writeIndent() {
	for i := 0; i < w.indent; i++ {
		w.out.WriteString("    ")
	}
}

// pushIndent increases indentation.
func (w *Writer) pushIndent() {
	w.indent++
}

// popIndent decreases indentation.
func (w *Writer) popIndent() {
	if w.indent > 0 {
		w.indent--
	}
}
