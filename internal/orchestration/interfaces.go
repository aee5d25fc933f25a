package orchestration

import (
	"io"
	"time"
)

// VariantResult encapsulates the outcome of a single variant invocation.
// It is the shared domain type between the runner and presentation layers.
type VariantResult struct {
	// Name is the strategy identifier (e.g., "Memoized Recursion (O(n))").
	Name string
	// Label is the short output label (e.g., "fibonacci<array>").
	Label string
	// Value is the computed Fibonacci number. It is meaningless if an error
	// occurred.
	Value uint64
	// Duration is the wall-clock time taken by the invocation, measured with
	// the runtime's monotonic clock.
	Duration time.Duration
	// Err contains any error that occurred during the invocation.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	N       uint64
	Verbose bool
	Quiet   bool
}

// ResultPresenter defines the interface for presenting comparison results.
// It decouples the runner from presentation concerns, allowing different
// output formats without modifying the orchestration logic.
type ResultPresenter interface {
	// PresentResults writes the per-variant result and timing block.
	PresentResults(results []VariantResult, n uint64, out io.Writer)

	// PresentComparisonTable writes the comparison summary table.
	PresentComparisonTable(results []VariantResult, out io.Writer)
}

// ProgressNotifier signals the start and end of a variant invocation so an
// interactive frontend can show activity while a slow strategy runs. The
// runner calls Start and Stop strictly in pairs, never concurrently.
type ProgressNotifier interface {
	// Start signals that the named variant began computing.
	Start(name string)
	// Stop signals that the current variant finished.
	Stop()
}

// NullProgressNotifier is a no-op implementation of ProgressNotifier,
// used in quiet mode and in tests.
type NullProgressNotifier struct{}

// Start does nothing.
func (NullProgressNotifier) Start(string) {}

// Stop does nothing.
func (NullProgressNotifier) Stop() {}
