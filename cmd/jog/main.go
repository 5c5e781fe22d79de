// main.go bootstraps jog: it builds the root Cobra command, binds config, and
// exits with the task's own status or 1 on failure.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/example/jog/internal/config"
	"github.com/example/jog/internal/logging"
	"github.com/example/jog/internal/runner"
)

// exitFailure is returned for every error raised by jog itself.
const exitFailure = 1

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var code int
	opts := config.NewOptions()
	root := newRootCommand(opts, &code)
	root.SetArgs(args)
	// No signal handling here: the child shares the terminal and receives
	// interrupts directly.
	if err := root.ExecuteContext(context.Background()); err != nil {
		handleError(root.ErrOrStderr(), err, opts.ColorMode)
		return exitFailure
	}
	return code
}

func newRootCommand(opts *config.Options, exitCode *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jog [OPTIONS] [TASK] [ARGS...]",
		Short: "Run a task defined in a jogfile",
		Long: `Run a task defined in a jogfile.

jog looks for a file named "jogfile" in the current directory and every parent
directory. Tasks are run in $SHELL. Arguments are passed as environment variables
named after the task's parameters. For tasks defined with a final parameter of
'...', extra arguments are passed as positional arguments.`,
		Args:                  cobra.ArbitraryArgs,
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts, args, exitCode)
		},
	}
	cmd.Example = `  # Run the "test" task with one argument
  jog test ./pkg/...

  # List every task visible from here
  jog --list

  # Show the definitions of a single task as JSON
  jog --list --format json deploy`
	// Everything after the task name belongs to the task.
	cmd.Flags().SetInterspersed(false)
	opts.BindFlags(cmd.Flags())
	bindViper(cmd)
	return cmd
}

func runRoot(cmd *cobra.Command, opts *config.Options, args []string, exitCode *int) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	log, err := logging.New(opts.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	switch {
	case opts.Version:
		printVersion(out, opts.LogLevel == "debug")
		return nil
	case opts.Env:
		return printEnv(out, opts.Format, opts.ShowAll)
	}

	start, err := startDir(opts.Directory)
	if err != nil {
		return err
	}
	r := runner.New(log)

	if opts.List {
		if len(args) > 1 {
			return fmt.Errorf("--list accepts at most one task name, got %d", len(args))
		}
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		entries, err := r.ListTasks(start, name)
		if err != nil {
			return err
		}
		return printTasks(out, entries, opts.Format, newStyles(opts.ColorMode, out))
	}

	if len(args) == 0 {
		cmd.SetOut(cmd.ErrOrStderr())
		return cmd.Help()
	}
	r.Invoker.Stdin = cmd.InOrStdin()
	r.Invoker.Stdout = out
	r.Invoker.Stderr = cmd.ErrOrStderr()
	code, err := r.RunTask(cmd.Context(), start, args[0], args[1:])
	if err != nil {
		return err
	}
	*exitCode = code
	return nil
}

func startDir(explicit string) (string, error) {
	if explicit != "" {
		return homedir.Expand(explicit)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("determine working directory: %w", err)
	}
	return wd, nil
}

// viperFlags lists the flags that may come from JOG_* variables or the config
// file. Mode flags such as --list are command-line only, because the
// environment is inherited by nested jog runs.
var viperFlags = []string{"format", "color", "log-level"}

func bindViper(cmd *cobra.Command) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix("JOG")
	v.AutomaticEnv()

	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		configFile := os.Getenv("JOG_CONFIG")
		if configFile != "" {
			expanded, err := homedir.Expand(configFile)
			if err != nil {
				return fmt.Errorf("expand JOG_CONFIG: %w", err)
			}
			configFile = expanded
		}
		configureConfigFile(v, configFile)
		if err := readConfigFile(v, configFile != ""); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		for _, name := range viperFlags {
			f := cmd.Flags().Lookup(name)
			if f == nil || f.Changed || !v.IsSet(name) {
				continue
			}
			if val := fmt.Sprintf("%v", v.Get(name)); val != "" {
				if err := f.Value.Set(val); err != nil {
					return fmt.Errorf("invalid %s value %q: %w", name, val, err)
				}
			}
		}
		return nil
	}
}

func configureConfigFile(v *viper.Viper, explicitPath string) {
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		return
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, dir := range configSearchDirs() {
		v.AddConfigPath(dir)
	}
}

func readConfigFile(v *viper.Viper, strict bool) error {
	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if errors.As(err, &cfgErr) && !strict {
			return nil
		}
		return err
	}
	return nil
}

func configSearchDirs() []string {
	added := make(map[string]struct{})
	var dirs []string
	add := func(path string) {
		if path == "" {
			return
		}
		if _, ok := added[path]; ok {
			return
		}
		added[path] = struct{}{}
		dirs = append(dirs, path)
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		add(filepath.Join(xdg, "jog"))
	}
	if home, err := homedir.Dir(); err == nil && home != "" {
		add(filepath.Join(home, ".config", "jog"))
		add(filepath.Join(home, ".jog"))
	}
	return dirs
}

func handleError(w io.Writer, err error, colorMode string) {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return
	}
	printError(w, err, newStyles(colorMode, w))
}
