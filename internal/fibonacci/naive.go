package fibonacci

import (
	"context"

	apperrors "github.com/agbru/fibcomp/internal/errors"
)

// Naive computes F(n) by direct recursion with no caching. Exponential time,
// no side effects. It exists as the baseline the memoized variants are
// compared against.
//
// Parameters:
//   - n: The 1-based Fibonacci index, 1 <= n <= TableCapacity.
//
// Returns:
//   - uint64: F(n).
//   - error: A validation error if n is outside the valid domain.
func Naive(n uint64) (uint64, error) {
	if err := validateIndex(n, TableCapacity); err != nil {
		return 0, err
	}
	return naive(n), nil
}

// naive is the unguarded recursion. Callers must have validated n >= 1.
func naive(n uint64) uint64 {
	if n <= 2 {
		return 1
	}
	return naive(n-1) + naive(n-2)
}

// naiveRun carries cancellation state through the recursion so a timeout or
// SIGINT can interrupt an exponential computation that would otherwise run
// for minutes. The context is polled every naivePollMask+1 calls.
type naiveRun struct {
	ctx   context.Context
	calls uint64
	err   error
}

// fib recurses like naive but aborts once the context is done. The return
// value is meaningless when r.err is set.
func (r *naiveRun) fib(n uint64) uint64 {
	if r.err != nil {
		return 0
	}
	r.calls++
	if r.calls&naivePollMask == 0 {
		if err := r.ctx.Err(); err != nil {
			r.err = err
			return 0
		}
	}
	if n <= 2 {
		return 1
	}
	return r.fib(n-1) + r.fib(n-2)
}

// naiveWithContext computes F(n) by naive recursion, honoring context
// cancellation.
func naiveWithContext(ctx context.Context, n uint64) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	run := &naiveRun{ctx: ctx}
	result := run.fib(n)
	if run.err != nil {
		return 0, apperrors.CalculationError{Cause: run.err}
	}
	return result, nil
}
