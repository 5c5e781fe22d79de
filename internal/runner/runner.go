// Package runner is the entry point used by the CLI: it ties discovery,
// resolution, and invocation together for a single run.
package runner

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/example/jog/internal/invoke"
	"github.com/example/jog/internal/jogfile"
	"github.com/example/jog/internal/resolver"
)

// Entry is one listed task together with the file that declares it.
type Entry struct {
	File *jogfile.File
	Task *jogfile.Task
}

// Runner lists and runs tasks visible from a start directory.
type Runner struct {
	Invoker *invoke.Invoker
	Log     logr.Logger
}

// New returns a Runner whose invoker shares the process's standard streams.
func New(log logr.Logger) *Runner {
	return &Runner{
		Invoker: &invoke.Invoker{Log: log},
		Log:     log,
	}
}

// ListTasks returns every task from every discovered jogfile, nearest file
// first. A non-empty name keeps only tasks with that name.
func (r *Runner) ListTasks(startDir, name string) ([]Entry, error) {
	d, err := jogfile.Locate(startDir)
	if err != nil {
		return nil, err
	}
	r.Log.V(1).Info("discovered jogfiles", "start", d.Start, "count", len(d.Locations))
	files, err := d.LoadAll()
	if err != nil {
		return nil, err
	}
	var entries []Entry
	for _, f := range files {
		for _, task := range f.Tasks {
			if name != "" && task.Name != name {
				continue
			}
			entries = append(entries, Entry{File: f, Task: task})
		}
	}
	return entries, nil
}

// RunTask resolves name against args and runs the match, returning the
// child's exit code.
func (r *Runner) RunTask(ctx context.Context, startDir, name string, args []string) (int, error) {
	d, err := jogfile.Locate(startDir)
	if err != nil {
		return 0, err
	}
	r.Log.V(1).Info("discovered jogfiles", "start", d.Start, "count", len(d.Locations))

	m, err := resolver.Resolve(d.Files(), name, args)
	if err != nil {
		return 0, err
	}
	r.Log.V(1).Info("resolved task", "task", m.Task.Signature(), "jogfile", m.File.Path, "line", m.Task.Line)

	inv := r.Invoker
	if inv == nil {
		inv = &invoke.Invoker{Log: r.Log}
	}
	return inv.Run(ctx, m, args)
}
