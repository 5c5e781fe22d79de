// print.go renders task listings and error lines, colored when the target
// stream is a terminal.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
	"sigs.k8s.io/yaml"

	"github.com/example/jog/internal/runner"
)

type styles struct {
	name   *color.Color
	file   *color.Color
	faint  *color.Color
	errTag *color.Color
}

func newStyles(mode string, w io.Writer) styles {
	s := styles{
		name:   color.New(color.Bold),
		file:   color.New(color.Bold, color.Underline),
		faint:  color.New(color.Faint),
		errTag: color.New(color.FgRed, color.Bold),
	}
	enable := useColor(mode, w)
	for _, c := range []*color.Color{s.name, s.file, s.faint, s.errTag} {
		if enable {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isTerminal(w)
}

func isTerminal(w io.Writer) bool {
	type fdProvider interface {
		Fd() uintptr
	}
	if v, ok := w.(fdProvider); ok {
		return term.IsTerminal(int(v.Fd()))
	}
	return false
}

type taskRow struct {
	Name   string   `json:"name"`
	Params []string `json:"params"`
	Rest   bool     `json:"rest"`
	Arity  string   `json:"arity"`
	File   string   `json:"file"`
	Line   int      `json:"line"`
}

func taskRows(entries []runner.Entry) []taskRow {
	rows := make([]taskRow, 0, len(entries))
	for _, e := range entries {
		params := e.Task.Params
		if params == nil {
			params = []string{}
		}
		rows = append(rows, taskRow{
			Name:   e.Task.Name,
			Params: params,
			Rest:   e.Task.Rest,
			Arity:  e.Task.ArityLabel(),
			File:   e.File.Path,
			Line:   e.Task.Line,
		})
	}
	return rows
}

func printTasks(w io.Writer, entries []runner.Entry, format string, st styles) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(taskRows(entries))
	case "yaml":
		b, err := yaml.Marshal(taskRows(entries))
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}

	width := 0
	for _, e := range entries {
		if n := runewidth.StringWidth(e.Task.Signature()); n > width {
			width = n
		}
	}
	var current string
	for _, e := range entries {
		if e.File.Path != current {
			if current != "" {
				fmt.Fprintln(w)
			}
			current = e.File.Path
			fmt.Fprintln(w, st.file.Sprint(current))
		}
		sig := e.Task.Signature()
		pad := strings.Repeat(" ", width-runewidth.StringWidth(sig))
		rest := strings.TrimPrefix(sig, e.Task.Name)
		fmt.Fprintf(w, "  %s%s%s  %s\n", st.name.Sprint(e.Task.Name), rest, pad,
			st.faint.Sprintf("line %d", e.Task.Line))
	}
	return nil
}

func printError(w io.Writer, err error, st styles) {
	fmt.Fprintf(w, "%s: %s\n", st.errTag.Sprint("error"), err)
}
