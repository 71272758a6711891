package glsl

import (
	"fmt"
	"strings"

	"github.com/slint-ui/sksl/codegen"
	"github.com/slint-ui/sksl/ir"
	"github.com/slint-ui/sksl/resolver"
)

// Writer generates GLSL source code from a resolved program.
type Writer struct {
	program *ir.Program
	options *Options

	out    strings.Builder
	indent int

	names     map[*ir.Node]string
	funcNames map[*ir.FunctionDeclaration]string
	namer     *namer

	entry *ir.FunctionDeclaration
}

// namer generates unique identifiers.
type namer struct {
	usedNames map[string]struct{}
	counter   uint32
}

func newNamer() *namer {
	return &namer{
		usedNames: map[string]struct{}{
			"main":                    {},
			resolver.BuiltinFragColor: {},
		},
	}
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

// newWriter creates a new GLSL writer.
func newWriter(program *ir.Program, options *Options) *Writer {
	return &Writer{
		program:   program,
		options:   options,
		names:     make(map[*ir.Node]string),
		funcNames: make(map[*ir.FunctionDeclaration]string),
		namer:     newNamer(),
	}
}

// String returns the generated GLSL source code.
func (w *Writer) String() string {
	return w.out.String()
}

// writeProgram generates GLSL code for the entire program. The emission
// order is fixed: version directive, output declaration, globals, helper
// functions, main.
func (w *Writer) writeProgram() error {
	entry, ok := w.program.EntryPoint(w.options.EntryPoint)
	if !ok {
		return fmt.Errorf("entry point %q not found", w.options.EntryPoint)
	}
	w.entry = entry

	w.writeHeader()
	if err := w.writeGlobals(); err != nil {
		return err
	}
	if err := w.writeFunctions(); err != nil {
		return err
	}
	return nil
}

// writeHeader writes the version directive and the fragment output
// declaration.
func (w *Writer) writeHeader() {
	w.writeLine("#version %s", w.options.LangVersion)
	if w.options.LangVersion.ES {
		w.writeLine("precision highp float;")
	}
	w.writeLine("")
	w.writeLine("out vec4 %s;", resolver.BuiltinFragColor)
	w.writeLine("")
}

// writeGlobals writes uniform and constant globals in declaration order.
// Enum declarations have no GLSL spelling.
func (w *Writer) writeGlobals() error {
	wrote := false
	for _, element := range w.program.Elements {
		switch element.Kind() {
		case ir.KindVariable:
			if err := w.writeGlobal(element); err != nil {
				return err
			}
			wrote = true

		case ir.KindEnum:
			data := ir.PayloadAs[*ir.EnumData](element)
			return codegen.Errorf("enum", element.Offset,
				"enum '%s' cannot be lowered to GLSL", data.TypeName)
		}
	}
	if wrote {
		w.writeLine("")
	}
	return nil
}

func (w *Writer) writeGlobal(n *ir.Node) error {
	v := ir.PayloadAs[*ir.VariableData](n)
	w.names[n] = w.namer.call(v.Name)

	switch {
	case v.Modifiers.Has(ir.ModifierUniform):
		if n.ValueChildCount() > 0 {
			return codegen.Errorf("uniform variable", n.Offset,
				"uniform '%s' may not have an initializer", v.Name)
		}
		w.writeLine("uniform %s %s;", typeName(v.Type), w.names[n])
		return nil

	case v.Modifiers.Has(ir.ModifierConst):
		if n.ValueChildCount() == 0 {
			return codegen.Errorf("global variable", n.Offset,
				"constant '%s' must have an initializer", v.Name)
		}
		w.writeIndent()
		w.write("const %s %s = ", typeName(v.Type), w.names[n])
		if err := w.writeExpression(n.ValueChild(0)); err != nil {
			return err
		}
		w.write(";\n")
		return nil

	default:
		// Plain globals are legal in GLSL.
		w.writeIndent()
		w.write("%s %s", typeName(v.Type), w.names[n])
		if n.ValueChildCount() > 0 {
			w.write(" = ")
			if err := w.writeExpression(n.ValueChild(0)); err != nil {
				return err
			}
		}
		w.write(";\n")
		return nil
	}
}

// writeFunctions writes helpers in declaration order, then the entry
// function as 'void main()'.
func (w *Writer) writeFunctions() error {
	for _, fn := range w.program.Functions {
		if fn == w.entry {
			w.funcNames[fn] = "main"
			continue
		}
		w.funcNames[fn] = w.namer.call(fn.Name)
	}

	for _, fn := range w.program.Functions {
		if fn == w.entry {
			continue
		}
		if err := w.writeFunction(fn); err != nil {
			return err
		}
	}
	return w.writeFunction(w.entry)
}

func (w *Writer) writeFunction(fn *ir.FunctionDeclaration) error {
	w.writeIndent()
	w.write("%s %s(", typeName(fn.ReturnType), w.funcNames[fn])
	for i, param := range fn.Parameters {
		v := ir.PayloadAs[*ir.VariableData](param)
		w.names[param] = w.namer.call(v.Name)
		if i > 0 {
			w.write(", ")
		}
		w.write("%s %s", typeName(v.Type), w.names[param])
	}
	w.write(") {\n")

	w.pushIndent()
	err := w.writeBody(fn.Body)
	w.popIndent()
	if err != nil {
		return err
	}

	w.writeLine("}")
	if fn != w.entry {
		w.writeLine("")
	}
	return nil
}

// Output helpers

//nolint:goprintffuncname
func (w *Writer) write(format string, args ...any) {
	if len(args) == 0 {
		w.out.WriteString(format)
	} else {
		fmt.Fprintf(&w.out, format, args...)
	}
}

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

func (w *Writer) writeIndent() {
	for i := 0; i < w.indent; i++ {
		w.out.WriteString("    ")
	}
}

func (w *Writer) pushIndent() {
	w.indent++
}

func (w *Writer) popIndent() {
	if w.indent > 0 {
		w.indent--
	}
}
