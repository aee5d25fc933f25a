package format

import (
	"fmt"
	"time"
)

// FormatMicroseconds renders a duration as a whole number of microseconds
// followed by the "us" unit, e.g. "1843024 us". This is the canonical timing
// line emitted after each variant's result.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: The duration in microseconds with the "us" suffix.
func FormatMicroseconds(d time.Duration) string {
	return fmt.Sprintf("%d us", d.Microseconds())
}

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
// This approach provides a more human-readable output for short durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatBytes renders a byte count with a binary unit suffix (B, KiB, MiB,
// GiB). Used by the verbose resource report.
//
// Parameters:
//   - b: The byte count to format.
//
// Returns:
//   - string: The formatted byte count.
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMG"[exp])
}
