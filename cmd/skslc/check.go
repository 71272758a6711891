package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slint-ui/sksl"
	"github.com/slint-ui/sksl/ast"
	"github.com/slint-ui/sksl/ir"
)

var checkCmd = &cobra.Command{
	Use:   "check <input.yaml>",
	Short: "Resolve a syntax-tree dump and report diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	setupColor(cmd)

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return reportError(cmd, err)
	}
	root, err := ast.Load(data)
	if err != nil {
		return reportError(cmd, err)
	}

	program, err := sksl.Resolve(root)
	if err != nil {
		return reportError(cmd, err)
	}
	defer program.Destroy()

	warnings := 0
	report := func(root *ir.Node) {
		for _, dead := range ir.DeadVariables(root) {
			v := ir.PayloadAs[*ir.VariableData](dead)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d: variable '%s' is never %s\n",
				warnColor.Sprint("warning:"), dead.Offset, v.Name, deadReason(v))
			warnings++
		}
	}
	for _, element := range program.Elements {
		// Enum members are declarations too, but an unreferenced member is
		// not a defect.
		if element.Kind() == ir.KindEnum {
			continue
		}
		report(element)
	}
	for _, fn := range program.Functions {
		if fn.Body != nil {
			report(fn.Body)
		}
	}

	if warnings > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d warning(s)\n", inputPath, warnings)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", successColor.Sprint("ok"), inputPath)
	}
	return nil
}

func deadReason(v *ir.VariableData) string {
	if v.WriteCount == 0 {
		return "written"
	}
	return "read"
}
