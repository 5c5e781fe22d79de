package jogfile

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure surfaced by discovery, resolution, or invocation
// unwraps to exactly one of these.
var (
	ErrDiscovery      = errors.New("discovery failed")
	ErrParse          = errors.New("parse failed")
	ErrValidation     = errors.New("validation failed")
	ErrUnknownTask    = errors.New("unknown task")
	ErrArityMismatch  = errors.New("arity mismatch")
	ErrRecursionLimit = errors.New("recursion limit exceeded")
	ErrEnvironment    = errors.New("environment error")
	ErrProcess        = errors.New("process error")
)

// Error is a located diagnostic. Path and Line are optional; Line is zero when
// the error concerns a whole file.
type Error struct {
	Kind error
	Path string
	Line int
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Msg
	if msg == "" && e.Kind != nil {
		msg = e.Kind.Error()
	}
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, msg)
	case e.Path != "":
		return fmt.Sprintf("%s: %s", e.Path, msg)
	default:
		return msg
	}
}

func (e *Error) Unwrap() error { return e.Kind }

// Errorf builds a located error of the given kind.
func Errorf(kind error, path string, line int, format string, args ...any) error {
	return &Error{Kind: kind, Path: path, Line: line, Msg: fmt.Sprintf(format, args...)}
}
