// Package invoke runs a resolved task in the user's shell and translates the
// child's termination into an exit code.
package invoke

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/go-logr/logr"

	"github.com/example/jog/internal/jogfile"
	"github.com/example/jog/internal/resolver"
)

// Invoker spawns task bodies. The zero value uses the process's own standard
// streams and environment.
type Invoker struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Environ is the base environment for the child; nil means os.Environ().
	Environ []string
	Log     logr.Logger
}

func (inv *Invoker) environ() []string {
	if inv.Environ != nil {
		return inv.Environ
	}
	return os.Environ()
}

// Lookup reads a variable from the invoker's base environment.
func (inv *Invoker) Lookup(key string) (string, bool) {
	if inv.Environ == nil {
		return os.LookupEnv(key)
	}
	prefix := key + "="
	val, found := "", false
	for _, kv := range inv.Environ {
		if strings.HasPrefix(kv, prefix) {
			val, found = kv[len(prefix):], true
		}
	}
	return val, found
}

// Run executes m.Task with args, which must already satisfy its arity, and
// blocks until the child exits.
func (inv *Invoker) Run(ctx context.Context, m resolver.Match, args []string) (int, error) {
	task := m.Task
	path := m.File.Path

	settings, err := LoadSettings(inv.Lookup)
	if err != nil {
		return 0, err
	}
	if settings.Exceeded() {
		noun := "arguments"
		if len(args) == 1 {
			noun = "argument"
		}
		return 0, jogfile.Errorf(jogfile.ErrRecursionLimit, path, task.Line,
			"maximum recursion depth exceeded running '%s' with %d %s", task.Name, len(args), noun)
	}

	shell, err := ResolveShell(inv.Lookup)
	if err != nil {
		return 0, err
	}

	argv := append([]string(nil), shell[1:]...)
	argv = append(argv, "-c", task.Body, path)
	if len(args) > len(task.Params) {
		argv = append(argv, args[len(task.Params):]...)
	}

	cmd := exec.CommandContext(ctx, shell[0], argv...)
	cmd.Env = childEnv(inv.environ(), task.Params, args, settings.Depth+1)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if inv.Stdin != nil {
		cmd.Stdin = inv.Stdin
	}
	if inv.Stdout != nil {
		cmd.Stdout = inv.Stdout
	}
	if inv.Stderr != nil {
		cmd.Stderr = inv.Stderr
	}

	inv.Log.V(1).Info("spawning task", "task", task.Name, "jogfile", path, "line", task.Line,
		"shell", shell[0], "depth", settings.Depth+1)
	if err := cmd.Start(); err != nil {
		return 0, jogfile.Errorf(jogfile.ErrProcess, path, task.Line, "spawn %s: %v", shell[0], err)
	}
	waitErr := cmd.Wait()

	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		return 0, jogfile.Errorf(jogfile.ErrProcess, path, task.Line, "wait for '%s': %v", task.Name, waitErr)
	}
	code, ok := exitStatus(cmd.ProcessState)
	if !ok {
		return 0, jogfile.Errorf(jogfile.ErrProcess, path, task.Line,
			"could not determine how '%s' terminated", task.Name)
	}
	inv.Log.V(1).Info("task finished", "task", task.Name, "exitCode", code)
	return code, nil
}

// childEnv binds params to args positionally and sets the next depth. Later
// entries win, so a repeated parameter name takes the last bound argument.
func childEnv(base, params, args []string, depth int) []string {
	env := make([]string, 0, len(base)+len(params)+1)
	env = append(env, base...)
	for i, param := range params {
		if i >= len(args) {
			break
		}
		env = append(env, param+"="+args[i])
	}
	return append(env, DepthEnv+"="+strconv.Itoa(depth))
}
