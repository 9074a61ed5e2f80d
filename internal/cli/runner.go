package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/playgrounds/internal/config"
	"github.com/idilsaglam/playgrounds/internal/logger"
	"github.com/idilsaglam/playgrounds/internal/ui"
)

// Options wires the CLI to its streams. Zero values fall back to the
// process streams.
type Options struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Logger replaces the configured logger when set.
	Logger logger.Logger

	// EnvPrefix selects the environment variables read into the config.
	// Empty means config.EnvPrefix.
	EnvPrefix string
}

func (o Options) withDefaults() Options {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.EnvPrefix == "" {
		o.EnvPrefix = config.EnvPrefix
	}
	return o
}

// usageError marks errors caused by how the CLI was invoked.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, a ...any) error {
	return &usageError{err: fmt.Errorf(format, a...)}
}

// usageArgs turns cobra argument validation failures into usage errors.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

type rootFlags struct {
	configPath string
	theme      string
	logLevel   string
	collectAll bool
}

type app struct {
	opt      Options
	flags    rootFlags
	injector do.Injector
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	a := &app{opt: opt.withDefaults()}
	root := a.rootCmd()
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	err := root.Execute()
	if a.injector != nil {
		if lggr, lerr := do.Invoke[logger.Logger](a.injector); lerr == nil {
			_ = lggr.Sync()
		}
	}
	if err == nil {
		return 0
	}

	pr := a.printer()
	pr.Fail(err.Error())
	var ue *usageError
	if errors.As(err, &ue) {
		pr.Hint("Hint: run `playground help` to see usage")
		return 2
	}
	return 1
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "playground",
		Short: "Concept playgrounds: typed parse errors, composition, values, sequences",
		Example: `  playground parse todos.json
  cat todos.yaml | playground parse --format yaml --try
  playground demo errors
  playground browse todos.json`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Help()
			return usagef("missing subcommand")
		},
	}
	root.SetIn(a.opt.Stdin)
	root.SetOut(a.opt.Stdout)
	root.SetErr(a.opt.Stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "", "config file (yaml, json or toml)")
	pf.StringVar(&a.flags.theme, "theme", "", "output theme: classic, neon or mono")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "diagnostic log level")
	pf.BoolVar(&a.flags.collectAll, "collect-all", false, "report every invalid field, not just the first")

	root.AddCommand(
		a.parseCmd(),
		a.demoCmd(),
		a.browseCmd(),
	)
	return root
}

// setup loads config, applies flag overrides and builds the injector.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadWithPrefix(a.flags.configPath, a.opt.EnvPrefix)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = a.flags.theme
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.flags.logLevel
	}
	if flags.Changed("collect-all") {
		cfg.Parser.CollectAll = a.flags.collectAll
	}

	a.injector = newInjector(cfg, a.opt)
	if _, err := do.Invoke[logger.Logger](a.injector); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	return nil
}

// printer returns the configured printer, or a classic one when setup
// never ran or failed.
func (a *app) printer() *ui.Printer {
	if a.injector != nil {
		if pr, err := do.Invoke[*ui.Printer](a.injector); err == nil {
			return pr
		}
	}
	return ui.NewPrinter(a.opt.Stdout, a.opt.Stderr, "classic")
}
