// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their
// behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.

package cli

import (
	"fmt"
	"io"

	"github.com/agbru/fibcomp/internal/format"
	"github.com/agbru/fibcomp/internal/orchestration"
	"github.com/agbru/fibcomp/internal/ui"
)

// DisplayResultBlock writes the canonical per-variant output: a result line
// and a timing line, followed by a blank line. This block is the program's
// output contract and is emitted in every mode.
//
//	fibonacci<array>(42) = 267914296
//	time = 2 us
//
// Parameters:
//   - out: The output writer.
//   - res: The variant result to display.
//   - n: The Fibonacci index that was computed.
func DisplayResultBlock(out io.Writer, res orchestration.VariantResult, n uint64) {
	if res.Err != nil {
		fmt.Fprintf(out, "%s(%d) %sfailed%s: %v\n", res.Label, n, ui.ColorRed(), ui.ColorReset(), res.Err)
		fmt.Fprintf(out, "time = %s\n\n", format.FormatMicroseconds(res.Duration))
		return
	}
	fmt.Fprintf(out, "%s(%d) = %s%d%s\n", res.Label, n, ui.ColorGreen(), res.Value, ui.ColorReset())
	fmt.Fprintf(out, "time = %s\n\n", format.FormatMicroseconds(res.Duration))
}

// FormatStatus renders the status cell for the comparison table.
//
// Parameters:
//   - res: The variant result.
//   - styles: The active table styles.
//
// Returns:
//   - string: The rendered status text.
func FormatStatus(res orchestration.VariantResult, styles ui.TableStyles) string {
	if res.Err != nil {
		return styles.Failure.Render(fmt.Sprintf("failure (%v)", res.Err))
	}
	return styles.Success.Render("success")
}
