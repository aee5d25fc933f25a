package fibonacci

import (
	"context"

	apperrors "github.com/agbru/fibcomp/internal/errors"
)

// Variant is the interface shared by the three calculation strategies.
// Implementations are stateless; any working storage (the memo cache) is
// allocated per call and discarded when the call returns.
type Variant interface {
	// Name returns the human-readable identifier of the strategy.
	Name() string
	// Label returns the short label used in the result output: "fibonacci",
	// "fibonacci<array>", or "fibonacci<array, const>".
	Label() string
	// Calculate computes F(n) under the given options, honoring context
	// cancellation where the strategy runs long enough to care.
	Calculate(ctx context.Context, n uint64, opts Options) (uint64, error)
}

// NaiveVariant computes F(n) by unmemoized recursion. It refuses indices
// beyond Options.NaiveLimit because the exponential cost makes larger
// indices impractical.
type NaiveVariant struct{}

// Name returns the strategy identifier.
func (NaiveVariant) Name() string { return "Naive Recursion (O(phi^n))" }

// Label returns the output label.
func (NaiveVariant) Label() string { return "fibonacci" }

// Calculate computes F(n) by naive recursion.
func (NaiveVariant) Calculate(ctx context.Context, n uint64, opts Options) (uint64, error) {
	if err := validateIndex(n, TableCapacity); err != nil {
		return 0, err
	}
	opts = normalizeOptions(opts)
	if n > opts.NaiveLimit {
		return 0, apperrors.NewValidationError("n",
			"naive recursion is impractical beyond F(%d); use the memoized variants", opts.NaiveLimit)
	}
	return naiveWithContext(ctx, n)
}

// MemoVariant computes F(n) by recursion over a fresh fixed-capacity memo
// cache, eliminating repeated subcomputation.
type MemoVariant struct{}

// Name returns the strategy identifier.
func (MemoVariant) Name() string { return "Memoized Recursion (O(n))" }

// Label returns the output label.
func (MemoVariant) Label() string { return "fibonacci<array>" }

// Calculate computes F(n) with a cache allocated for this call. The cache is
// sized to the full domain so the recurrence can never index past it.
func (MemoVariant) Calculate(ctx context.Context, n uint64, _ Options) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return Memoized(n, NewCache(TableCapacity))
}

// ConstVariant returns F(n) from the table embedded at build time. The
// computation happened when the table source was generated; at runtime only
// the lookup remains.
type ConstVariant struct{}

// Name returns the strategy identifier.
func (ConstVariant) Name() string { return "Precomputed Table (O(1))" }

// Label returns the output label.
func (ConstVariant) Label() string { return "fibonacci<array, const>" }

// Calculate returns the precomputed F(n).
func (ConstVariant) Calculate(ctx context.Context, n uint64, _ Options) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return Const(n)
}
