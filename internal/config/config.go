// File: internal/config/config.go
// Brief: Internal config package implementation for 'config'.

// Package config defines the flag plumbing and runtime options of the jog
// CLI, translating pflag values into a strongly typed struct.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/example/jog/internal/logging"
)

// Options holds all CLI configuration.
type Options struct {
	List      bool
	Version   bool
	Env       bool
	ShowAll   bool
	Directory string
	Format    string
	ColorMode string
	LogLevel  string
}

// NewOptions returns Options with defaults applied.
func NewOptions() *Options {
	return &Options{
		Format:    "table",
		ColorMode: "auto",
		LogLevel:  "info",
	}
}

// BindFlags attaches jog flags to an arbitrary FlagSet.
func (o *Options) BindFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&o.List, "list", "l", false, "List tasks and their parameters (optionally only those named TASK)")
	fs.BoolVarP(&o.Version, "version", "V", false, "Print version")
	fs.BoolVar(&o.Env, "env", false, "Show environment variables used by jog")
	fs.BoolVar(&o.ShowAll, "all", false, "With --env, include internal variables")
	fs.StringVarP(&o.Directory, "directory", "C", "", "Search for jogfiles starting from this directory instead of the working directory")
	fs.StringVarP(&o.Format, "format", "o", "table", "Output format for --list and --env: table, json, yaml")
	fs.StringVar(&o.ColorMode, "color", "auto", "Colorize output: 'auto' when a terminal is attached, 'always', or 'never'")
	fs.StringVar(&o.LogLevel, "log-level", "info", "Log level for jog diagnostics (debug, info, warn, error)")
}

// Validate normalises option values and rejects incoherent combinations.
func (o *Options) Validate() error {
	switch strings.ToLower(strings.TrimSpace(o.Format)) {
	case "", "table":
		o.Format = "table"
	case "json":
		o.Format = "json"
	case "yaml", "yml":
		o.Format = "yaml"
	default:
		return fmt.Errorf("invalid --format value %q (allowed: table, json, yaml)", o.Format)
	}
	switch strings.ToLower(strings.TrimSpace(o.ColorMode)) {
	case "", "auto":
		o.ColorMode = "auto"
	case "always":
		o.ColorMode = "always"
	case "never":
		o.ColorMode = "never"
	default:
		return fmt.Errorf("invalid --color value %q (allowed: auto, always, never)", o.ColorMode)
	}
	if _, err := logging.ParseLevel(o.LogLevel); err != nil {
		return err
	}
	if o.List && o.Env {
		return fmt.Errorf("cannot combine --list with --env")
	}
	if o.ShowAll && !o.Env {
		return fmt.Errorf("--all requires --env")
	}
	o.Directory = strings.TrimSpace(o.Directory)
	return nil
}
