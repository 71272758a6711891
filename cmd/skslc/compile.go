package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/slint-ui/sksl"
	"github.com/slint-ui/sksl/ast"
)

var compileCmd = &cobra.Command{
	Use:   "compile <input.yaml>",
	Short: "Compile a syntax-tree dump to shader source",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompile,
}

func init() {
	compileCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	compileCmd.Flags().String("dialect", "", "target dialect: metal or glsl (default: metal)")
	compileCmd.Flags().String("entry", "", "entry point function name (default: main)")
}

func runCompile(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	setupColor(cmd)

	opts, err := resolveOptions(cmd, inputPath)
	if err != nil {
		return reportError(cmd, err)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return reportError(cmd, err)
	}
	root, err := ast.Load(data)
	if err != nil {
		return reportError(cmd, err)
	}

	source, err := sksl.Compile(root, opts)
	if err != nil {
		return reportError(cmd, err)
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		fmt.Fprint(cmd.OutOrStdout(), source)
		return nil
	}
	if err := os.WriteFile(outputPath, []byte(source), 0o644); err != nil {
		return reportError(cmd, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s (%d bytes)\n",
		successColor.Sprint("compiled"), inputPath, outputPath, len(source))
	return nil
}

// resolveOptions merges the config file and command-line flags: flags win,
// then the file, then defaults.
func resolveOptions(cmd *cobra.Command, inputPath string) (sksl.CompileOptions, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(configPath, inputPath)
	if err != nil {
		return sksl.CompileOptions{}, err
	}

	opts := sksl.DefaultOptions()

	dialectName := cfg.Output.Dialect
	if flagDialect, _ := cmd.Flags().GetString("dialect"); flagDialect != "" {
		dialectName = flagDialect
	}
	if dialectName != "" {
		dialect, err := sksl.ParseDialect(dialectName)
		if err != nil {
			return sksl.CompileOptions{}, err
		}
		opts.Dialect = dialect
	}

	if cfg.Output.Entry != "" {
		opts.EntryPoint = cfg.Output.Entry
	}
	if flagEntry, _ := cmd.Flags().GetString("entry"); flagEntry != "" {
		opts.EntryPoint = flagEntry
	}
	return opts, nil
}

// Diagnostic colors.
var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warnColor    = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
)

func setupColor(cmd *cobra.Command) {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		color.NoColor = true
	}
}

// reportError prints err as a colored diagnostic and returns it so that the
// process exits non-zero. Cobra's own error echo is suppressed.
func reportError(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", errorColor.Sprint("error:"), err)
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return err
}
