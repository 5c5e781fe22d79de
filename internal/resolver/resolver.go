// Package resolver picks the single task that answers a (name, arguments)
// request across the discovered jogfiles.
package resolver

import (
	"fmt"
	"iter"
	"strings"

	"github.com/example/jog/internal/jogfile"
)

// Match is a successful resolution.
type Match struct {
	File *jogfile.File
	Task *jogfile.Task
}

// Candidate is a same-named task that was seen during resolution.
type Candidate struct {
	Path  string
	Line  int
	Arity int
	Rest  bool
}

// Label renders the arity as "N" or "N+".
func (c Candidate) Label() string {
	if c.Rest {
		return fmt.Sprintf("%d+", c.Arity)
	}
	return fmt.Sprintf("%d", c.Arity)
}

// ArityError reports a declared task that no definition can run with the given
// number of arguments.
type ArityError struct {
	Path       string
	Name       string
	Given      int
	Candidates []Candidate
}

func (e *ArityError) Error() string {
	msg := e.Message()
	if e.Path == "" {
		return msg
	}
	return e.Path + ": " + msg
}

func (e *ArityError) Unwrap() error { return jogfile.ErrArityMismatch }

// Message is the diagnostic without the location prefix, e.g.
// "task 't' takes 1 or 2+ parameters, but 0 were given".
func (e *ArityError) Message() string {
	labels := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		labels[i] = c.Label()
	}
	var params string
	switch len(labels) {
	case 0:
		params = "0"
	case 1:
		params = labels[0]
	case 2:
		params = labels[0] + " or " + labels[1]
	default:
		params = strings.Join(labels[:len(labels)-1], ", ") + ", or " + labels[len(labels)-1]
	}
	noun := "parameters"
	if len(e.Candidates) == 1 && e.Candidates[0].Arity == 1 {
		noun = "parameter"
	}
	given := fmt.Sprintf("%d were given", e.Given)
	if e.Given == 1 {
		given = "1 was given"
	}
	return fmt.Sprintf("task '%s' takes %s %s, but %s", e.Name, params, noun, given)
}

// Resolve scans files nearest first, and tasks in declaration order, returning
// the first task named name whose arity accepts args. Load errors from files
// abort the scan.
func Resolve(files iter.Seq2[*jogfile.File, error], name string, args []string) (Match, error) {
	var nearest string
	var candidates []Candidate
	for f, err := range files {
		if err != nil {
			return Match{}, err
		}
		if nearest == "" {
			nearest = f.Path
		}
		for _, task := range f.Tasks {
			if task.Name != name {
				continue
			}
			if task.Accepts(len(args)) {
				return Match{File: f, Task: task}, nil
			}
			candidates = append(candidates, Candidate{
				Path:  f.Path,
				Line:  task.Line,
				Arity: task.Arity(),
				Rest:  task.Rest,
			})
		}
	}
	if len(candidates) == 0 {
		return Match{}, jogfile.Errorf(jogfile.ErrUnknownTask, nearest, 0, "unknown task '%s'", name)
	}
	return Match{}, &ArityError{
		Path:       nearest,
		Name:       name,
		Given:      len(args),
		Candidates: candidates,
	}
}
