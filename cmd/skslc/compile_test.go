package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testShaderYAML = `
kind: program
offset: 0
children:
  - kind: function
    offset: 1
    text: main
    children:
      - {kind: type, offset: 1, text: void}
      - kind: block
        offset: 2
        children:
          - kind: expr_stmt
            offset: 3
            children:
              - kind: assign
                offset: 3
                text: "="
                children:
                  - {kind: identifier, offset: 3, text: sk_FragColor}
                  - kind: call
                    offset: 3
                    text: float4
                    children:
                      - {kind: float, offset: 3, text: "0.0"}
                      - {kind: float, offset: 3, text: "0.0"}
                      - {kind: float, offset: 3, text: "0.0"}
                      - {kind: float, offset: 3, text: "1.0"}
`

func writeShader(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "shader.yaml")
	if err := os.WriteFile(path, []byte(testShaderYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	input := writeShader(t, dir)

	// No implicit config beside the input.
	cfg, err := loadConfig("", input)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Output.Dialect != "" || cfg.Output.Entry != "" {
		t.Errorf("empty config = %+v", cfg)
	}

	configPath := filepath.Join(dir, "skslc.toml")
	if err := os.WriteFile(configPath, []byte("[output]\ndialect = \"glsl\"\nentry = \"shade\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = loadConfig("", input)
	if err != nil {
		t.Fatalf("loadConfig with implicit file: %v", err)
	}
	if cfg.Output.Dialect != "glsl" {
		t.Errorf("dialect = %q, want %q", cfg.Output.Dialect, "glsl")
	}
	if cfg.Output.Entry != "shade" {
		t.Errorf("entry = %q, want %q", cfg.Output.Entry, "shade")
	}

	// An explicit path that does not exist is an error.
	if _, err := loadConfig(filepath.Join(dir, "missing.toml"), input); err == nil {
		t.Error("loadConfig with a missing explicit file succeeded")
	}

	// Unknown keys are rejected.
	if err := os.WriteFile(configPath, []byte("[output]\ndialetc = \"glsl\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(configPath, input); err == nil || !strings.Contains(err.Error(), "unknown key") {
		t.Errorf("loadConfig with an unknown key = %v", err)
	}
}

func TestCompileCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeShader(t, dir)
	output := filepath.Join(dir, "shader.metal")

	var stdout, stderr bytes.Buffer
	compileCmd.SetOut(&stdout)
	compileCmd.SetErr(&stderr)
	compileCmd.SetArgs([]string{"-o", output, input})
	t.Cleanup(func() {
		compileCmd.Flags().Set("output", "")
		compileCmd.SetArgs(nil)
	})

	if err := compileCmd.Execute(); err != nil {
		t.Fatalf("compile: %v\nstderr: %s", err, stderr.String())
	}
	src, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(src), "fragment Outputs fragmentMain(") {
		t.Errorf("output missing wrapper:\n%s", src)
	}
	if !strings.Contains(stdout.String(), "compiled") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestCompileCommandGLSLDialect(t *testing.T) {
	dir := t.TempDir()
	input := writeShader(t, dir)

	var stdout, stderr bytes.Buffer
	compileCmd.SetOut(&stdout)
	compileCmd.SetErr(&stderr)
	compileCmd.SetArgs([]string{"--dialect", "glsl", input})
	t.Cleanup(func() {
		compileCmd.Flags().Set("dialect", "")
		compileCmd.SetArgs(nil)
	})

	if err := compileCmd.Execute(); err != nil {
		t.Fatalf("compile: %v\nstderr: %s", err, stderr.String())
	}
	if !strings.HasPrefix(stdout.String(), "#version 330 core\n") {
		t.Errorf("stdout missing GLSL header:\n%s", stdout.String())
	}
}

func TestCheckCommandWarnings(t *testing.T) {
	dir := t.TempDir()
	// A shader whose local is written but never read.
	const yamlSrc = `
kind: program
offset: 0
children:
  - kind: function
    offset: 1
    text: main
    children:
      - {kind: type, offset: 1, text: void}
      - kind: block
        offset: 2
        children:
          - kind: var
            offset: 3
            text: scratch
            children:
              - {kind: type, offset: 3, text: float}
              - {kind: float, offset: 3, text: "1.0"}
`
	input := filepath.Join(dir, "unused.yaml")
	if err := os.WriteFile(input, []byte(yamlSrc), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	checkCmd.SetOut(&stdout)
	checkCmd.SetArgs([]string{input})
	t.Cleanup(func() { checkCmd.SetArgs(nil) })

	if err := checkCmd.Execute(); err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(stdout.String(), "variable 'scratch' is never read") {
		t.Errorf("missing warning in:\n%s", stdout.String())
	}
	if !strings.Contains(stdout.String(), "1 warning(s)") {
		t.Errorf("missing summary in:\n%s", stdout.String())
	}
}
