package orchestration

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/fibcomp/internal/errors"
	"github.com/agbru/fibcomp/internal/fibonacci"
	"github.com/agbru/fibcomp/internal/logging"
)

// MockVariant is a mock implementation of fibonacci.Variant used for testing
// the orchestration logic without invoking real algorithms.
type MockVariant struct {
	NameVal       string
	LabelVal      string
	CalculateFunc func(ctx context.Context, n uint64, opts fibonacci.Options) (uint64, error)
}

// Name returns the mocked name of the variant.
func (m *MockVariant) Name() string {
	if m.NameVal != "" {
		return m.NameVal
	}
	return "Mock"
}

// Label returns the mocked output label.
func (m *MockVariant) Label() string {
	if m.LabelVal != "" {
		return m.LabelVal
	}
	return "mock"
}

// Calculate invokes the mocked CalculateFunc.
func (m *MockVariant) Calculate(ctx context.Context, n uint64, opts fibonacci.Options) (uint64, error) {
	if m.CalculateFunc != nil {
		return m.CalculateFunc(ctx, n, opts)
	}
	return 0, nil
}

// MockResultPresenter is a mock implementation of ResultPresenter.
type MockResultPresenter struct {
	ResultsCalls int
	TableCalls   int
}

func (m *MockResultPresenter) PresentResults(results []VariantResult, n uint64, out io.Writer) {
	m.ResultsCalls++
}

func (m *MockResultPresenter) PresentComparisonTable(results []VariantResult, out io.Writer) {
	m.TableCalls++
}

// recordingNotifier records Start/Stop ordering.
type recordingNotifier struct {
	events []string
}

func (r *recordingNotifier) Start(name string) { r.events = append(r.events, "start:"+name) }
func (r *recordingNotifier) Stop()             { r.events = append(r.events, "stop") }

// TestExecuteComparison verifies that the runner executes every variant and
// aggregates results in input order.
func TestExecuteComparison(t *testing.T) {
	tests := []struct {
		name        string
		variants    []fibonacci.Variant
		expectedLen int
		expectError bool
	}{
		{
			name: "Single success",
			variants: []fibonacci.Variant{
				&MockVariant{CalculateFunc: func(ctx context.Context, n uint64, opts fibonacci.Options) (uint64, error) {
					return 55, nil
				}},
			},
			expectedLen: 1,
			expectError: false,
		},
		{
			name: "Single failure",
			variants: []fibonacci.Variant{
				&MockVariant{CalculateFunc: func(ctx context.Context, n uint64, opts fibonacci.Options) (uint64, error) {
					return 0, errors.New("mock error")
				}},
			},
			expectedLen: 1,
			expectError: true,
		},
		{
			name: "Mixed outcomes",
			variants: []fibonacci.Variant{
				&MockVariant{NameVal: "ok", CalculateFunc: func(ctx context.Context, n uint64, opts fibonacci.Options) (uint64, error) {
					return 55, nil
				}},
				&MockVariant{NameVal: "bad", CalculateFunc: func(ctx context.Context, n uint64, opts fibonacci.Options) (uint64, error) {
					return 0, errors.New("mock error")
				}},
			},
			expectedLen: 2,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := ExecuteComparison(context.Background(), tt.variants, 10, fibonacci.Options{}, NullProgressNotifier{}, logging.Nop())
			if len(results) != tt.expectedLen {
				t.Fatalf("got %d results, want %d", len(results), tt.expectedLen)
			}
			gotError := false
			for _, res := range results {
				if res.Err != nil {
					gotError = true
				}
			}
			if gotError != tt.expectError {
				t.Errorf("gotError = %v, want %v", gotError, tt.expectError)
			}
		})
	}
}

// TestExecuteComparison_Sequential verifies strict sequencing: each variant
// starts only after the previous one stopped, and Start/Stop come in pairs.
func TestExecuteComparison_Sequential(t *testing.T) {
	notifier := &recordingNotifier{}
	variants := []fibonacci.Variant{
		&MockVariant{NameVal: "first"},
		&MockVariant{NameVal: "second"},
		&MockVariant{NameVal: "third"},
	}

	ExecuteComparison(context.Background(), variants, 10, fibonacci.Options{}, notifier, logging.Nop())

	want := []string{"start:first", "stop", "start:second", "stop", "start:third", "stop"}
	if len(notifier.events) != len(want) {
		t.Fatalf("events = %v, want %v", notifier.events, want)
	}
	for i := range want {
		if notifier.events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, notifier.events[i], want[i])
		}
	}
}

// TestExecuteComparison_RecordsDurations verifies that measured durations
// reflect the invocation wall-clock time.
func TestExecuteComparison_RecordsDurations(t *testing.T) {
	delay := 20 * time.Millisecond
	variants := []fibonacci.Variant{
		&MockVariant{CalculateFunc: func(ctx context.Context, n uint64, opts fibonacci.Options) (uint64, error) {
			time.Sleep(delay)
			return 55, nil
		}},
	}

	results := ExecuteComparison(context.Background(), variants, 10, fibonacci.Options{}, NullProgressNotifier{}, logging.Nop())
	if results[0].Duration < delay {
		t.Errorf("Duration = %s, want >= %s", results[0].Duration, delay)
	}
}

// TestAnalyzeComparisonResults covers the exit code decisions.
func TestAnalyzeComparisonResults(t *testing.T) {
	tests := []struct {
		name     string
		results  []VariantResult
		wantCode int
	}{
		{
			name: "All consistent",
			results: []VariantResult{
				{Name: "a", Value: 55},
				{Name: "b", Value: 55},
			},
			wantCode: apperrors.ExitSuccess,
		},
		{
			name: "Mismatch",
			results: []VariantResult{
				{Name: "a", Value: 55},
				{Name: "b", Value: 56},
			},
			wantCode: apperrors.ExitErrorMismatch,
		},
		{
			name: "Partial failure is tolerated",
			results: []VariantResult{
				{Name: "a", Err: errors.New("refused")},
				{Name: "b", Value: 55},
			},
			wantCode: apperrors.ExitSuccess,
		},
		{
			name: "Total failure",
			results: []VariantResult{
				{Name: "a", Err: apperrors.NewValidationError("n", "bad index")},
			},
			wantCode: apperrors.ExitErrorConfig,
		},
		{
			name: "Total failure from timeout",
			results: []VariantResult{
				{Name: "a", Err: apperrors.CalculationError{Cause: context.DeadlineExceeded}},
			},
			wantCode: apperrors.ExitErrorTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			presenter := &MockResultPresenter{}
			code := AnalyzeComparisonResults(tt.results, PresentationOptions{N: 10}, presenter, &out)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if presenter.ResultsCalls != 1 {
				t.Errorf("PresentResults called %d times, want 1", presenter.ResultsCalls)
			}
		})
	}
}

// TestAnalyzeComparisonResults_VerboseTable verifies the table is only
// rendered in verbose mode.
func TestAnalyzeComparisonResults_VerboseTable(t *testing.T) {
	results := []VariantResult{{Name: "a", Value: 55}}

	presenter := &MockResultPresenter{}
	AnalyzeComparisonResults(results, PresentationOptions{N: 10}, presenter, io.Discard)
	if presenter.TableCalls != 0 {
		t.Errorf("table rendered %d times in non-verbose mode, want 0", presenter.TableCalls)
	}

	presenter = &MockResultPresenter{}
	var out bytes.Buffer
	AnalyzeComparisonResults(results, PresentationOptions{N: 10, Verbose: true}, presenter, &out)
	if presenter.TableCalls != 1 {
		t.Errorf("table rendered %d times in verbose mode, want 1", presenter.TableCalls)
	}
	if !strings.Contains(out.String(), "Success") {
		t.Errorf("verbose output missing global status, got %q", out.String())
	}
}

// TestGetVariantsToRun verifies selection resolution.
func TestGetVariantsToRun(t *testing.T) {
	factory := fibonacci.NewDefaultFactory()

	all, err := GetVariantsToRun("all", factory)
	if err != nil {
		t.Fatalf("GetVariantsToRun(all) error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("GetVariantsToRun(all) returned %d variants, want 3", len(all))
	}

	single, err := GetVariantsToRun("const", factory)
	if err != nil {
		t.Fatalf("GetVariantsToRun(const) error: %v", err)
	}
	if len(single) != 1 {
		t.Errorf("GetVariantsToRun(const) returned %d variants, want 1", len(single))
	}

	if _, err := GetVariantsToRun("bogus", factory); err == nil {
		t.Error("expected an error for unknown selection")
	}
}
