package cli

import (
	"fmt"
	"io"

	"github.com/agbru/fibcomp/internal/format"
	"github.com/agbru/fibcomp/internal/orchestration"
	"github.com/agbru/fibcomp/internal/ui"
)

// CLIResultPresenter implements orchestration.ResultPresenter for terminal
// output. It renders the canonical result blocks and, in verbose mode, a
// comparison summary table.
type CLIResultPresenter struct{}

// Verify interface compliance.
var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentResults writes the result and timing block for every variant, in
// execution order.
func (CLIResultPresenter) PresentResults(results []orchestration.VariantResult, n uint64, out io.Writer) {
	for _, res := range results {
		DisplayResultBlock(out, res, n)
	}
}

// PresentComparisonTable displays the comparison summary with variant names,
// durations, and status in a formatted tabular layout. Column widths are
// computed on the plain strings before styling so ANSI codes do not skew
// the padding.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.VariantResult, out io.Writer) {
	styles := ui.CurrentTableStyles()

	fmt.Fprintf(out, "--- Comparison Summary ---\n")

	maxNameLen := len("Variant")
	maxDurationLen := len("Duration")
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		if l := len(durationCell(res)); l > maxDurationLen {
			maxDurationLen = l
		}
	}

	fmt.Fprintf(out, "%s%s   %s%s   %s\n",
		styles.Header.Render("Variant"), pad(maxNameLen-len("Variant")),
		styles.Header.Render("Duration"), pad(maxDurationLen-len("Duration")),
		styles.Header.Render("Status"))

	for _, res := range results {
		duration := durationCell(res)
		fmt.Fprintf(out, "%s%s   %s%s   %s\n",
			styles.Variant.Render(res.Name), pad(maxNameLen-len(res.Name)),
			styles.Timing.Render(duration), pad(maxDurationLen-len(duration)),
			FormatStatus(res, styles))
	}
}

// durationCell formats a result duration for the table, substituting a
// sub-microsecond marker for zero readings.
func durationCell(res orchestration.VariantResult) string {
	if res.Duration == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(res.Duration)
}

// pad returns n spaces.
func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%*s", n, "")
}
