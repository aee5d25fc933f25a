package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/fibcomp/internal/orchestration"
	"github.com/agbru/fibcomp/internal/ui"
)

// withPlainTheme runs a test with colors disabled and restores the previous
// theme afterwards.
func withPlainTheme(t *testing.T, fn func()) {
	t.Helper()
	prev := ui.GetCurrentTheme()
	ui.SetCurrentTheme(ui.NoColorTheme)
	defer ui.SetCurrentTheme(prev)
	fn()
}

// TestDisplayResultBlock verifies the canonical output block, byte for byte.
func TestDisplayResultBlock(t *testing.T) {
	withPlainTheme(t, func() {
		var out bytes.Buffer
		res := orchestration.VariantResult{
			Label:    "fibonacci<array>",
			Value:    267914296,
			Duration: 2 * time.Microsecond,
		}
		DisplayResultBlock(&out, res, 42)

		want := "fibonacci<array>(42) = 267914296\ntime = 2 us\n\n"
		if out.String() != want {
			t.Errorf("DisplayResultBlock output = %q, want %q", out.String(), want)
		}
	})
}

// TestDisplayResultBlock_Error verifies failed variants report the error in
// place of a value while keeping the timing line.
func TestDisplayResultBlock_Error(t *testing.T) {
	withPlainTheme(t, func() {
		var out bytes.Buffer
		res := orchestration.VariantResult{
			Label:    "fibonacci",
			Err:      errors.New("naive recursion is impractical beyond F(50)"),
			Duration: 0,
		}
		DisplayResultBlock(&out, res, 80)

		got := out.String()
		if !strings.Contains(got, "fibonacci(80) failed") {
			t.Errorf("missing failure marker in %q", got)
		}
		if !strings.Contains(got, "time = 0 us") {
			t.Errorf("missing timing line in %q", got)
		}
	})
}

// TestPresentResults verifies the full three-variant block sequence.
func TestPresentResults(t *testing.T) {
	withPlainTheme(t, func() {
		results := []orchestration.VariantResult{
			{Label: "fibonacci", Value: 267914296, Duration: 1843024 * time.Microsecond},
			{Label: "fibonacci<array>", Value: 267914296, Duration: 2 * time.Microsecond},
			{Label: "fibonacci<array, const>", Value: 267914296, Duration: 0},
		}

		var out bytes.Buffer
		CLIResultPresenter{}.PresentResults(results, 42, &out)

		want := strings.Join([]string{
			"fibonacci(42) = 267914296",
			"time = 1843024 us",
			"",
			"fibonacci<array>(42) = 267914296",
			"time = 2 us",
			"",
			"fibonacci<array, const>(42) = 267914296",
			"time = 0 us",
			"",
			"",
		}, "\n")
		if out.String() != want {
			t.Errorf("PresentResults output = %q, want %q", out.String(), want)
		}
	})
}

// TestPresentComparisonTable verifies the verbose summary contains every
// variant with aligned columns.
func TestPresentComparisonTable(t *testing.T) {
	withPlainTheme(t, func() {
		results := []orchestration.VariantResult{
			{Name: "Naive Recursion (O(phi^n))", Duration: 1843 * time.Millisecond},
			{Name: "Memoized Recursion (O(n))", Duration: 2 * time.Microsecond},
			{Name: "Precomputed Table (O(1))", Duration: 0, Err: errors.New("boom")},
		}

		var out bytes.Buffer
		CLIResultPresenter{}.PresentComparisonTable(results, &out)

		got := out.String()
		for _, want := range []string{
			"Comparison Summary",
			"Variant", "Duration", "Status",
			"Naive Recursion (O(phi^n))",
			"Memoized Recursion (O(n))",
			"Precomputed Table (O(1))",
			"success",
			"failure (boom)",
			"< 1µs",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("table missing %q:\n%s", want, got)
			}
		}
	})
}
