package fibonacci

import (
	apperrors "github.com/agbru/fibcomp/internal/errors"
)

// validateIndex checks that n lies in the valid domain [1, capacity].
// Every variant applies this same rule so no code path can index a cache or
// table out of range.
func validateIndex(n, capacity uint64) error {
	if n == 0 {
		return apperrors.NewValidationError("n", "index must be >= 1 (fib(1) = fib(2) = 1 convention)")
	}
	if n > capacity {
		return apperrors.NewValidationError("n", "index %d exceeds cache capacity %d", n, capacity)
	}
	return nil
}
