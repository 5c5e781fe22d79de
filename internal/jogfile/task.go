// Package jogfile discovers, parses, and validates jogfiles: the per-directory
// text files that declare named, parameterized shell tasks.
package jogfile

import (
	"strconv"
	"strings"
)

const (
	// FileName is the name looked up in the start directory and each ancestor.
	FileName = "jogfile"
	// RestMarker, as the final header token, lets a task accept extra arguments.
	RestMarker = "..."
)

// Task is one declaration from a jogfile. Tasks are never mutated after parsing.
type Task struct {
	Name   string
	Params []string
	Rest   bool
	Body   string
	Path   string
	Line   int
}

// Arity is the number of fixed parameters, excluding the rest marker.
func (t *Task) Arity() int {
	return len(t.Params)
}

// Accepts reports whether a call with n arguments matches this task.
func (t *Task) Accepts(n int) bool {
	if t.Rest {
		return len(t.Params) <= n
	}
	return len(t.Params) == n
}

// ArityLabel renders the arity as used in diagnostics, e.g. "2" or "2+".
func (t *Task) ArityLabel() string {
	label := strconv.Itoa(len(t.Params))
	if t.Rest {
		label += "+"
	}
	return label
}

// Signature renders the task header the way it was declared.
func (t *Task) Signature() string {
	parts := make([]string, 0, len(t.Params)+2)
	parts = append(parts, t.Name)
	parts = append(parts, t.Params...)
	if t.Rest {
		parts = append(parts, RestMarker)
	}
	return strings.Join(parts, " ")
}

// File is a loaded jogfile. Distance is 0 for the start directory and grows by
// one per ancestor level.
type File struct {
	Path     string
	Distance int
	Tasks    []*Task
}
