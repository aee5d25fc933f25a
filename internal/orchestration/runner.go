package orchestration

import (
	"context"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/fibcomp/internal/errors"
	"github.com/agbru/fibcomp/internal/fibonacci"
	"github.com/agbru/fibcomp/internal/logging"
)

// ExecuteComparison runs each variant exactly once for the same index and
// records its value and wall-clock duration.
//
// Execution is strictly sequential: each invocation runs to completion before
// the next begins, so measurements never overlap and no state is shared
// between variants. Each variant owns whatever cache it allocates.
//
// Parameters:
//   - ctx: The context for cancellation and deadlines.
//   - variants: The variants to run, in comparison order.
//   - n: The Fibonacci index to compute.
//   - opts: Calculation options passed to every variant.
//   - notifier: Receives Start/Stop signals around each invocation.
//   - logger: Structured logger for per-variant diagnostics.
//
// Returns:
//   - []VariantResult: One result per variant, in input order.
func ExecuteComparison(ctx context.Context, variants []fibonacci.Variant, n uint64, opts fibonacci.Options, notifier ProgressNotifier, logger logging.Logger) []VariantResult {
	results := make([]VariantResult, len(variants))

	for i, variant := range variants {
		notifier.Start(variant.Name())
		startTime := time.Now()
		value, err := variant.Calculate(ctx, n, opts)
		duration := time.Since(startTime)
		notifier.Stop()

		results[i] = VariantResult{
			Name:     variant.Name(),
			Label:    variant.Label(),
			Value:    value,
			Duration: duration,
			Err:      err,
		}

		if err != nil {
			logger.Warn("variant failed",
				logging.String("variant", variant.Name()),
				logging.Uint64("n", n),
				logging.Err(err))
			continue
		}
		logger.Debug("variant completed",
			logging.String("variant", variant.Name()),
			logging.Uint64("n", n),
			logging.Uint64("value", value),
			logging.Dur("duration", duration))
	}

	return results
}

// AnalyzeComparisonResults validates the collected results and presents them.
//
// The per-variant result block is always written (it is the output contract);
// the summary table is added in verbose mode. Successful variants must agree
// on the value: a disagreement means one implementation is wrong and is
// reported as a critical error with its own exit code.
//
// Parameters:
//   - results: The slice of variant results to analyze.
//   - presOpts: Presentation options (index, verbosity).
//   - presenter: The result presenter for display formatting.
//   - out: The io.Writer for the report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []VariantResult, presOpts PresentationOptions, presenter ResultPresenter, out io.Writer) int {
	presenter.PresentResults(results, presOpts.N, out)

	var firstValid *VariantResult
	var firstError error
	successCount := 0
	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
			continue
		}
		successCount++
		if firstValid == nil {
			firstValid = &results[i]
		}
	}

	if presOpts.Verbose {
		presenter.PresentComparisonTable(results, out)
	}

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No variant could complete the calculation.\n")
		return apperrors.ExitCodeFor(firstError)
	}

	for _, res := range results {
		if res.Err == nil && res.Value != firstValid.Value {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! Variants disagree: %s returned %d, %s returned %d.\n",
				firstValid.Name, firstValid.Value, res.Name, res.Value)
			return apperrors.ExitErrorMismatch
		}
	}

	if presOpts.Verbose {
		fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	}
	return apperrors.ExitSuccess
}
