package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/fibcomp/internal/errors"
	"github.com/agbru/fibcomp/internal/fibonacci"
)

// EnvPrefix is the prefix for all environment variable overrides.
const EnvPrefix = "FIBCOMP_"

// DefaultTimeout bounds the whole comparison run. The naive variant at its
// default limit finishes well inside this; the bound exists so a
// misconfigured run cannot hang a script.
const DefaultTimeout = 1 * time.Minute

// AppConfig holds the parsed application configuration.
// Priority: CLI flags > environment variables > defaults.
type AppConfig struct {
	// N is the Fibonacci index to compute.
	N uint64
	// Variant selects which strategy to run: a registry name or "all".
	Variant string
	// Timeout is the maximum duration for the whole comparison.
	Timeout time.Duration
	// NaiveLimit is the largest index the naive variant will attempt.
	// Zero means "estimate from hardware" (see ApplyAdaptiveLimits).
	NaiveLimit uint64
	// Verbose enables the execution banner, summary table, and resource report.
	Verbose bool
	// Quiet suppresses everything except the result block.
	Quiet bool
	// NoColor disables ANSI colors regardless of terminal detection.
	NoColor bool
	// Theme selects the color theme ("dark", "light", "none").
	Theme string
	// LogLevel sets the structured log level on stderr
	// ("disabled", "debug", "info", "warn", "error").
	LogLevel string
}

// ToOptions converts the configuration to per-calculation options.
func (c AppConfig) ToOptions() fibonacci.Options {
	return fibonacci.Options{NaiveLimit: c.NaiveLimit}
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment variable overrides for flags not explicitly set, and validates
// the result.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The raw arguments (without the program name).
//   - errWriter: Destination for flag parsing errors and usage text.
//   - availableVariants: Registry names accepted by --variant.
//
// Returns:
//   - AppConfig: The validated configuration.
//   - error: flag.ErrHelp if --help was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableVariants []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg := AppConfig{}
	fs.Uint64Var(&cfg.N, "n", fibonacci.DefaultIndex, "Fibonacci index to compute (1-based)")
	fs.StringVar(&cfg.Variant, "variant", "all", fmt.Sprintf("strategy to run: all or one of %v", availableVariants))
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "maximum execution time for the whole run")
	fs.Uint64Var(&cfg.NaiveLimit, "naive-limit", 0, "largest index the naive variant attempts (0 = estimate from hardware)")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose output (banner, summary table, resource report)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "verbose output (banner, summary table, resource report)")
	fs.BoolVar(&cfg.Quiet, "q", false, "quiet mode: result block only")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "quiet mode: result block only")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	fs.StringVar(&cfg.Theme, "theme", "", "color theme: dark, light, none")
	fs.StringVar(&cfg.LogLevel, "log-level", "disabled", "structured log level on stderr: disabled, debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		err := apperrors.NewConfigError("unexpected arguments: %v", fs.Args())
		fmt.Fprintf(errWriter, "Error: %v\n", err)
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := validate(cfg, availableVariants); err != nil {
		// The flag package reports its own errors; semantic errors are ours.
		fmt.Fprintf(errWriter, "Error: %v\n", err)
		return AppConfig{}, err
	}
	return cfg, nil
}

// validate checks the semantic constraints the flag package cannot express.
func validate(cfg AppConfig, availableVariants []string) error {
	if cfg.N == 0 {
		return apperrors.NewConfigError("-n must be >= 1 (the sequence is 1-based, fib(1) = fib(2) = 1)")
	}
	if cfg.N > fibonacci.TableCapacity {
		return apperrors.NewConfigError("-n must be <= %d: F(%d) is the largest Fibonacci number that fits in uint64",
			fibonacci.TableCapacity, fibonacci.TableCapacity)
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("--timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.NaiveLimit > fibonacci.TableCapacity {
		return apperrors.NewConfigError("--naive-limit must be <= %d, got %d", fibonacci.TableCapacity, cfg.NaiveLimit)
	}
	if cfg.Variant != "all" {
		found := false
		for _, name := range availableVariants {
			if cfg.Variant == name {
				found = true
				break
			}
		}
		if !found {
			return apperrors.NewConfigError("unknown variant %q (available: all, %v)", cfg.Variant, availableVariants)
		}
	}
	switch cfg.Theme {
	case "", "dark", "light", "none":
	default:
		return apperrors.NewConfigError("unknown theme %q (available: dark, light, none)", cfg.Theme)
	}
	switch cfg.LogLevel {
	case "disabled", "debug", "info", "warn", "error":
	default:
		return apperrors.NewConfigError("unknown log level %q", cfg.LogLevel)
	}
	return nil
}
