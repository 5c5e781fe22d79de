// File: cmd/jog/recursion_test.go
// Brief: Nested jog runs through the real process chain.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runMainEnv makes the test binary behave as the jog executable, so task
// bodies can call jog recursively.
const runMainEnv = "JOG_TEST_RUN_MAIN"

func TestMain(m *testing.M) {
	if os.Getenv(runMainEnv) == "1" {
		os.Exit(run(os.Args[1:]))
	}
	os.Exit(m.Run())
}

func TestRootNestedRunsStopAtMaxDepth(t *testing.T) {
	setupEnv(t)
	self, err := os.Executable()
	if err != nil {
		t.Skipf("test binary path unavailable: %v", err)
	}
	dir := t.TempDir()
	trace := filepath.Join(dir, "depths")
	path := writeJogfile(t, dir, "loop\n  echo \"$JOG_DEPTH\" >> \"$JOG_TEST_TRACE\"\n  \"$JOG_TEST_SELF\" -C \"$JOG_TEST_DIR\" loop\n")

	t.Setenv(runMainEnv, "1")
	t.Setenv("JOG_MAX_DEPTH", "3")
	t.Setenv("JOG_TEST_SELF", self)
	t.Setenv("JOG_TEST_DIR", dir)
	t.Setenv("JOG_TEST_TRACE", trace)

	_, errOut, code, err := execute(t, "-C", dir, "loop")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if code != exitFailure {
		t.Fatalf("expected exit code %d from the innermost jog, got %d", exitFailure, code)
	}

	data, err := os.ReadFile(trace)
	if err != nil {
		t.Fatalf("read trace: %v", err)
	}
	if got := strings.Fields(string(data)); strings.Join(got, ",") != "1,2,3,4" {
		t.Fatalf("expected bodies at depths 1..4, got %v", got)
	}
	want := "error: " + path + ":1: maximum recursion depth exceeded running 'loop' with 0 arguments"
	if strings.Count(errOut, "maximum recursion depth exceeded") != 1 || !strings.Contains(errOut, want) {
		t.Fatalf("expected exactly one recursion error %q, got %q", want, errOut)
	}
}
