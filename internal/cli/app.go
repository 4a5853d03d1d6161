// Package cli implements the helpers command-line tool.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/zairakai/helpers/pkg/datetime"
	"github.com/zairakai/helpers/pkg/logger"
	"github.com/zairakai/helpers/pkg/validator"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Exit codes returned by ExitCode.
const (
	ExitOK         = 0
	ExitError      = 1
	ExitValidation = 2
)

// ErrUnknownCommand is returned for an unrecognised subcommand.
var ErrUnknownCommand = errors.New("unknown command")

// App runs subcommands against its configured streams.
type App struct {
	env    Env
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    *slog.Logger
	cal    *datetime.Calendar
}

// Option configures an App.
type Option func(*App)

// WithEnv sets the process configuration.
func WithEnv(env Env) Option {
	return func(a *App) { a.env = env }
}

// WithIO replaces the standard streams.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(a *App) {
		a.stdin, a.stdout, a.stderr = stdin, stdout, stderr
	}
}

// WithLogger replaces the logger built from Env.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.log = l }
}

// WithCalendar replaces the system calendar used by date commands.
func WithCalendar(c *datetime.Calendar) Option {
	return func(a *App) { a.cal = c }
}

// New builds an App. Invalid Env values fall back to defaults.
func New(opts ...Option) *App {
	a := &App{
		env:    Env{LogLevel: "info", LogFormat: "text", Locale: "en-US"},
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.log == nil {
		level, _ := logger.ParseLevel(a.env.LogLevel)
		format, _ := logger.ParseFormat(a.env.LogFormat)
		a.log = logger.New(
			logger.WithLevel(level),
			logger.WithFormat(format),
			logger.WithOutput(a.stderr),
			logger.WithAttr(logger.Component("helpers")),
		)
	}
	if a.cal == nil {
		a.cal = datetime.New()
	}
	return a
}

// Logger returns the diagnostics logger.
func (a *App) Logger() *slog.Logger { return a.log }

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, a *App, args []string) error
}

var commands = []command{
	{name: "slug", summary: "turn text into a URL slug", run: runSlug},
	{name: "normalize", summary: "lowercase, trim and strip accents", run: runNormalize},
	{name: "limit", summary: "truncate text to -n characters", run: runLimit},
	{name: "capitalize", summary: "uppercase the first character", run: runCapitalize},
	{name: "number", summary: "format a number for a locale", run: runNumber},
	{name: "inspect", summary: "classify a JSON value", run: runInspect},
	{name: "validate", summary: "validate a JSON, YAML or TOML document against a schema", run: runValidate},
	{name: "fromnow", summary: "describe a date relative to now", run: runFromNow},
	{name: "between", summary: "check whether a date lies in a range", run: runBetween},
}

// Run dispatches args[0] to its subcommand.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage(a.stderr)
		return fmt.Errorf("%w: none given", ErrUnknownCommand)
	}

	name, rest := args[0], args[1:]
	switch name {
	case "help", "-h", "--help":
		a.usage(a.stdout)
		return nil
	case "version", "--version":
		fmt.Fprintln(a.stdout, Version)
		return nil
	}

	i := slices.IndexFunc(commands, func(c command) bool { return c.name == name })
	if i < 0 {
		a.usage(a.stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	start := time.Now()
	err := commands[i].run(ctx, a, rest)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	a.log.DebugContext(ctx, "command finished",
		logger.Command(name),
		logger.Duration(time.Since(start)),
		logger.Error(err),
	)
	return err
}

func (a *App) usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: helpers <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-11s %s\n", c.name, c.summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment: HELPERS_LOG_LEVEL, HELPERS_LOG_FORMAT, HELPERS_LOCALE")
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("helpers "+name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

// text joins the positional arguments, or reads stdin when there are none.
func (a *App) text(fs *flag.FlagSet) (string, error) {
	if fs.NArg() > 0 {
		return strings.Join(fs.Args(), " "), nil
	}
	b, err := io.ReadAll(a.stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

// ExitCode maps a Run error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case validator.IsValidationError(err):
		return ExitValidation
	default:
		return ExitError
	}
}
