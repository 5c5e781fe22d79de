//go:build unix

package invoke

import (
	"os"
	"syscall"
)

// exitStatus returns the child's exit code, or the signal number when it was
// killed by a signal.
func exitStatus(state *os.ProcessState) (int, bool) {
	if state == nil {
		return 0, false
	}
	ws, ok := state.Sys().(syscall.WaitStatus)
	if !ok {
		code := state.ExitCode()
		return code, code >= 0
	}
	switch {
	case ws.Exited():
		return ws.ExitStatus(), true
	case ws.Signaled():
		return int(ws.Signal()), true
	default:
		return 0, false
	}
}
