package jogfile

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type line struct {
	no   int
	text string
}

// Parse turns the contents of one jogfile into its tasks in declaration order.
// It does not validate; see Validate.
func Parse(path string, data []byte) ([]*Task, error) {
	lines := splitLines(string(data))
	var tasks []*Task
	i := 0
	for {
		for i < len(lines) && (isBlank(lines[i].text) || strings.HasPrefix(lines[i].text, "#")) {
			i++
		}
		if i >= len(lines) {
			return tasks, nil
		}
		header := lines[i]
		i++
		if startsWithSpace(header.text) {
			return nil, Errorf(ErrParse, path, header.no, "malformed task: indented header")
		}

		fields := strings.Fields(header.text)
		task := &Task{
			Name: fields[0],
			Path: path,
			Line: header.no,
		}
		params := fields[1:]
		if n := len(params); n > 0 && params[n-1] == RestMarker {
			params = params[:n-1]
			task.Rest = true
		}
		task.Params = append([]string(nil), params...)

		start := i
		for i < len(lines) && (lines[i].text == "" || startsWithSpace(lines[i].text)) {
			i++
		}
		task.Body = body(lines[start:i])
		tasks = append(tasks, task)
	}
}

func splitLines(s string) []line {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, "\n")
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}
	out := make([]line, len(raw))
	for i, text := range raw {
		out[i] = line{no: i + 1, text: strings.TrimSuffix(text, "\r")}
	}
	return out
}

// body joins the body lines, each newline-terminated, with the indentation
// common to every non-blank line removed.
func body(lines []line) string {
	indent := commonIndent(lines)
	var b strings.Builder
	for _, l := range lines {
		text := l.text
		switch {
		case strings.HasPrefix(text, indent):
			text = text[len(indent):]
		case isBlank(text):
			text = ""
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}
	return b.String()
}

func commonIndent(lines []line) string {
	var indent string
	first := true
	for _, l := range lines {
		if isBlank(l.text) {
			continue
		}
		lead := leadingSpace(l.text)
		if first {
			indent, first = lead, false
			continue
		}
		n := 0
		for n < len(indent) && n < len(lead) {
			_, a := utf8.DecodeRuneInString(indent[n:])
			_, b := utf8.DecodeRuneInString(lead[n:])
			if a != b || indent[n:n+a] != lead[n:n+b] {
				break
			}
			n += a
		}
		indent = indent[:n]
	}
	return indent
}

func leadingSpace(s string) string {
	end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) })
	if end < 0 {
		return s
	}
	return s[:end]
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func startsWithSpace(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && unicode.IsSpace(r)
}
