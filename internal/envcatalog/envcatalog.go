// Package envcatalog documents every environment variable jog reads or sets.
package envcatalog

type VarInfo struct {
	Category    string
	Name        string
	Description string
	// Dynamic entries are name patterns rather than concrete variables.
	Dynamic  bool
	Internal bool
}

func Catalog() []VarInfo {
	return []VarInfo{
		{
			Category:    "Shell",
			Name:        "SHELL",
			Description: "Shell used to run task bodies (may include leading arguments, e.g. \"/usr/bin/env bash\").",
		},
		{
			Category:    "Recursion",
			Name:        "JOG_MAX_DEPTH",
			Description: "Maximum nesting depth for jog invoked from within a task (default 100).",
		},
		{
			Category:    "Recursion",
			Name:        "JOG_DEPTH",
			Internal:    true,
			Description: "Current nesting depth; set by jog for each task it spawns.",
		},
		{
			Category:    "Task",
			Name:        "<PARAM>",
			Dynamic:     true,
			Description: "Each declared task parameter is exported to the task under its own name, unmodified.",
		},
		{
			Category:    "Config",
			Name:        "JOG_CONFIG",
			Description: "Path to the jog config file.",
		},
		{
			Category:    "Config",
			Name:        "JOG_<FLAG>",
			Dynamic:     true,
			Description: "Set any jog CLI flag via environment (hyphens become underscores). Example: JOG_LOG_LEVEL=debug.",
		},
		{
			Category:    "Output",
			Name:        "NO_COLOR",
			Description: "Disable ANSI color output (any non-empty value).",
		},
	}
}
