// Command skslc compiles shading-language syntax-tree dumps to backend
// shader source.
//
// The input is a YAML syntax tree produced by an external parser:
//
//	skslc compile shader.yaml                  # Metal to stdout
//	skslc compile --dialect glsl shader.yaml   # GLSL to stdout
//	skslc compile -o shader.metal shader.yaml  # write to file
//	skslc check shader.yaml                    # resolve and report only
//
// Defaults can be placed in an skslc.toml config file next to the input.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

const skslcVersion = "0.1.0-dev"

var rootCmd = &cobra.Command{
	Use:   "skslc",
	Short: "Shading language compiler",
	Long:  "skslc resolves parsed shader syntax trees and generates Metal or GLSL source.",
}

func main() {
	rootCmd.Version = skslcVersion

	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(checkCmd)

	rootCmd.PersistentFlags().String("config", "", "TOML config file (default: skslc.toml beside the input, if present)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored diagnostics")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
