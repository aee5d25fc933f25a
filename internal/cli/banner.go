package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/fibcomp/internal/config"
	"github.com/agbru/fibcomp/internal/fibonacci"
	"github.com/agbru/fibcomp/internal/format"
	"github.com/agbru/fibcomp/internal/metrics"
	"github.com/agbru/fibcomp/internal/sysmon"
	"github.com/agbru/fibcomp/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the
// user. It shows the target Fibonacci index, timeout, environment details,
// and the naive recursion ceiling.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Computing %sF(%d)%s with a timeout of %s%s%s.\n",
		ui.ColorPrimary(), cfg.N, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Naive recursion ceiling: %sF(%d)%s. Table capacity: %sF(%d)%s.\n\n",
		ui.ColorCyan(), cfg.NaiveLimit, ui.ColorReset(),
		ui.ColorCyan(), fibonacci.TableCapacity, ui.ColorReset())
}

// PrintExecutionMode displays the execution mode (single variant vs
// comparison).
//
// Parameters:
//   - variants: The variants that will be executed.
//   - out: The writer for standard output.
func PrintExecutionMode(variants []fibonacci.Variant, out io.Writer) {
	var modeDesc string
	if len(variants) > 1 {
		modeDesc = "Sequential comparison of all variants"
	} else {
		modeDesc = fmt.Sprintf("Single run of the %s%s%s variant",
			ui.ColorGreen(), variants[0].Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n\n", modeDesc)
}

// PrintResourceReport shows allocation and system usage after the run.
//
// Parameters:
//   - delta: Allocation activity during the run.
//   - stats: The system usage snapshot.
//   - out: The writer for standard output.
func PrintResourceReport(delta metrics.Delta, stats sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "\nResource Report:\n")
	fmt.Fprintf(out, "  Allocated during run: %s\n", format.FormatBytes(delta.AllocatedBytes))
	fmt.Fprintf(out, "  GC cycles:            %d\n", delta.GCCycles)
	fmt.Fprintf(out, "  %s\n", stats)
}
