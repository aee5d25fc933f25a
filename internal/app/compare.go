package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/fibcomp/internal/cli"
	apperrors "github.com/agbru/fibcomp/internal/errors"
	"github.com/agbru/fibcomp/internal/logging"
	"github.com/agbru/fibcomp/internal/metrics"
	"github.com/agbru/fibcomp/internal/orchestration"
	"github.com/agbru/fibcomp/internal/sysmon"
	"github.com/agbru/fibcomp/internal/ui"
)

// runCompare orchestrates the sequential comparison run.
func (a *Application) runCompare(ctx context.Context, out io.Writer) int {
	// Lifecycle: timeout + signals
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	variantsToRun, err := orchestration.GetVariantsToRun(a.Config.Variant, a.Factory)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	if a.Config.Verbose && !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(variantsToRun, out)
	}

	// Progress animation goes to stderr, and only when someone is watching.
	var notifier orchestration.ProgressNotifier = orchestration.NullProgressNotifier{}
	if !a.Config.Quiet && ui.IsInteractive(os.Stderr.Fd()) {
		notifier = cli.NewSpinnerNotifier(os.Stderr)
	}

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()
	sysmon.Prime()

	a.Logger.Info("starting comparison",
		logging.Uint64("n", a.Config.N),
		logging.Int("variants", len(variantsToRun)))

	results := orchestration.ExecuteComparison(ctx, variantsToRun, a.Config.N, a.Config.ToOptions(), notifier, a.Logger)

	presOpts := orchestration.PresentationOptions{
		N:       a.Config.N,
		Verbose: a.Config.Verbose && !a.Config.Quiet,
		Quiet:   a.Config.Quiet,
	}
	exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, cli.CLIResultPresenter{}, out)

	if presOpts.Verbose {
		cli.PrintResourceReport(collector.DeltaSince(before), sysmon.Sample(), out)
	}

	return exitCode
}
