package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/fibcomp/internal/config"
	"github.com/agbru/fibcomp/internal/fibonacci"
	"github.com/agbru/fibcomp/internal/logging"
	"github.com/agbru/fibcomp/internal/ui"
)

// Application represents the fibcomp application instance.
type Application struct {
	Config    config.AppConfig
	Factory   fibonacci.VariantFactory
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom VariantFactory for the application.
func WithFactory(f fibonacci.VariantFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger sets a custom Logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
//
// Parameters:
//   - args: The raw process arguments, including the program name.
//   - errWriter: Destination for parse errors and usage output.
//   - opts: Optional construction overrides.
//
// Returns:
//   - *Application: The configured application.
//   - error: flag.ErrHelp if --help was requested, or a configuration error.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = fibonacci.NewDefaultFactory()
	}

	availableVariants := app.Factory.List()

	programName := "fibcomp"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, availableVariants)
	if err != nil {
		return nil, err
	}
	cfg = config.ApplyAdaptiveLimits(cfg)

	app.Config = cfg
	if app.Logger == nil {
		app.Logger = buildLogger(cfg.LogLevel)
	}
	return app, nil
}

// Run executes the comparison based on the configured mode.
//
// Parameters:
//   - ctx: The root context.
//   - out: Destination for result output.
//
// Returns:
//   - int: The process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Theme != "" {
		ui.SetTheme(a.Config.Theme)
	} else {
		ui.InitTheme(a.Config.NoColor)
	}

	return a.runCompare(ctx, out)
}

// buildLogger maps the configured level to a Logger. "disabled" returns a
// no-op logger so normal runs emit nothing on stderr.
func buildLogger(level string) logging.Logger {
	if level == "disabled" {
		return logging.Nop()
	}
	if parsed, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(parsed)
	}
	return logging.NewDefaultLogger()
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
