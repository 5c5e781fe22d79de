//go:build !unix

package invoke

import "os"

func exitStatus(state *os.ProcessState) (int, bool) {
	if state == nil {
		return 0, false
	}
	code := state.ExitCode()
	return code, code >= 0
}
