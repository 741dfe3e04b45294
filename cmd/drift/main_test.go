package main

import (
	"bytes"
	"strings"
	"testing"
)

// execute runs the CLI with the given args and returns stdout.
func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd := newRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v\nstderr: %s", args, err, errOut.String())
	}
	return out.String()
}

// executeExpectingError runs the CLI and returns the error, failing the
// test if the command unexpectedly succeeds.
func executeExpectingError(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd := newRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err == nil {
		t.Fatalf("execute %v: expected error", args)
	}
	return err
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, "version")
	if !strings.Contains(out, "drift version") {
		t.Errorf("unexpected version output: %q", out)
	}
}

func TestRunCommandOutput(t *testing.T) {
	out := execute(t, "run", "--nodes", "5", "--sensitivity", "1.0", "--seed", "7")

	if !strings.HasPrefix(out, "run_id,") {
		t.Fatalf("report header missing: %q", out)
	}
	if !strings.Contains(out, "final message ideology:") {
		t.Errorf("final summary line missing: %q", out)
	}
}

func TestRunCommandDeterministic(t *testing.T) {
	first := execute(t, "run", "--nodes", "7", "--sensitivity", "1.5", "--seed", "11")
	second := execute(t, "run", "--nodes", "7", "--sensitivity", "1.5", "--seed", "11")
	if first != second {
		t.Error("identical seeds produced different run output")
	}
}

func TestRunCommandRejectsBadSensitivity(t *testing.T) {
	executeExpectingError(t, "run", "--nodes", "3", "--sensitivity", "0")
}

func TestRunCommandRejectsBadBiasRange(t *testing.T) {
	executeExpectingError(t, "run", "--nodes", "3", "--bias-min", "2.0", "--bias-max", "1.0")
}
