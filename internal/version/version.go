// Package version reports build metadata for `jog --version`.
package version

import (
	"fmt"
	"runtime"
)

// These values are overridden at build time via -ldflags "-X ...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown" // RFC3339 UTC preferred
)

type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// Details lists the known build fields as "Key: value" lines, skipping unknown ones.
func (i Info) Details() []string {
	var lines []string
	if i.GitCommit != "" && i.GitCommit != "unknown" {
		lines = append(lines, "GitCommit: "+i.GitCommit)
	}
	if i.BuildDate != "" && i.BuildDate != "unknown" {
		lines = append(lines, "BuildDate: "+i.BuildDate)
	}
	lines = append(lines, "GoVersion: "+i.GoVersion, "Platform: "+i.Platform)
	return lines
}
