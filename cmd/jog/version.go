// File: cmd/jog/version.go
// Brief: CLI implementation for '--version'.

package main

import (
	"fmt"
	"io"

	"github.com/example/jog/internal/version"
)

func printVersion(w io.Writer, verbose bool) {
	info := version.Get()
	fmt.Fprintf(w, "jog %s\n", info.Version)
	if !verbose {
		return
	}
	for _, line := range info.Details() {
		fmt.Fprintln(w, line)
	}
}
