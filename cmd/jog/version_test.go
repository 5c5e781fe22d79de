package main

import (
	"strings"
	"testing"
)

func TestVersionFlagPrintsVersion(t *testing.T) {
	setupEnv(t)
	out, _, code, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if code != 0 || !strings.HasPrefix(out, "jog ") {
		t.Fatalf("expected version line, got %q (code %d)", out, code)
	}
	if strings.Contains(out, "GoVersion:") {
		t.Fatalf("expected short version output, got %q", out)
	}
}

func TestVersionFlagVerboseWithDebugLogging(t *testing.T) {
	setupEnv(t)
	out, _, _, err := execute(t, "-V", "--log-level", "debug")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "GoVersion:") || !strings.Contains(out, "Platform:") {
		t.Fatalf("expected build details, got %q", out)
	}
}
