package invoke

import (
	"os/exec"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/example/jog/internal/jogfile"
)

const (
	// DepthEnv carries the nesting depth from a parent jog to its children.
	DepthEnv = "JOG_DEPTH"
	// MaxDepthEnv overrides DefaultMaxDepth.
	MaxDepthEnv = "JOG_MAX_DEPTH"
	// ShellEnv names the shell that runs task bodies.
	ShellEnv = "SHELL"

	DefaultMaxDepth = 100
)

// LookupFunc reads one environment variable.
type LookupFunc func(key string) (string, bool)

// Settings is the recursion state of the current process. It is read once from
// the environment and only ever written back into a child's environment.
type Settings struct {
	Depth    int
	MaxDepth int
}

// Exceeded reports whether this process is nested deeper than allowed.
func (s Settings) Exceeded() bool {
	return s.Depth > s.MaxDepth
}

// LoadSettings reads JOG_DEPTH and JOG_MAX_DEPTH, applying defaults when unset.
func LoadSettings(lookup LookupFunc) (Settings, error) {
	depth, err := intFromEnv(lookup, DepthEnv, 0)
	if err != nil {
		return Settings{}, err
	}
	maxDepth, err := intFromEnv(lookup, MaxDepthEnv, DefaultMaxDepth)
	if err != nil {
		return Settings{}, err
	}
	return Settings{Depth: depth, MaxDepth: maxDepth}, nil
}

func intFromEnv(lookup LookupFunc, key string, def int) (int, error) {
	raw, ok := lookup(key)
	if !ok {
		return def, nil
	}
	val, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, jogfile.Errorf(jogfile.ErrEnvironment, "", 0, "invalid %s value %q: %v", key, raw, err)
	}
	return val, nil
}

// ResolveShell returns the program that runs task bodies. $SHELL is a single
// pathname; only when it names no executable is it split into words, so values
// such as "/usr/bin/env bash" still work.
func ResolveShell(lookup LookupFunc) ([]string, error) {
	raw, ok := lookup(ShellEnv)
	shell := strings.TrimSpace(raw)
	if !ok || shell == "" {
		return nil, jogfile.Errorf(jogfile.ErrEnvironment, "", 0, "%s is not set", ShellEnv)
	}
	if _, err := exec.LookPath(shell); err == nil {
		return []string{shell}, nil
	}
	words, err := shellwords.Parse(shell)
	if err != nil {
		return nil, jogfile.Errorf(jogfile.ErrEnvironment, "", 0, "invalid %s value %q: %v", ShellEnv, raw, err)
	}
	if len(words) == 0 {
		return nil, jogfile.Errorf(jogfile.ErrEnvironment, "", 0, "invalid %s value %q", ShellEnv, raw)
	}
	return words, nil
}
