package fibonacci

// Memoized computes F(n) by recursion backed by the given cache. Each index
// is computed at most once per cache lifetime, so the amortized cost is O(n).
// The cache is mutated in place; repeated calls with a warm cache return the
// stored value without recomputation.
//
// An index of 0 or one beyond the cache capacity would read the cache out of
// range; both are rejected up front before the recursion starts.
//
// Parameters:
//   - n: The 1-based Fibonacci index, 1 <= n <= cache capacity.
//   - cache: The memo table, mutated in place.
//
// Returns:
//   - uint64: F(n).
//   - error: A validation error if n is outside [1, cache capacity].
func Memoized(n uint64, cache Cache) (uint64, error) {
	if err := validateIndex(n, cache.Capacity()); err != nil {
		return 0, err
	}
	return memoized(n, cache), nil
}

// memoized is the recursive core. Callers must have validated
// 1 <= n <= len(cache). The recurrence fills slots n-1 and n-2 before they
// are read, so an unfilled slot is never consumed.
func memoized(n uint64, cache Cache) uint64 {
	if cache[n-1] != CacheSentinel {
		return cache[n-1]
	}
	if n <= 2 {
		cache[n-1] = 1
		return 1
	}
	cache[n-1] = memoized(n-1, cache) + memoized(n-2, cache)
	return cache[n-1]
}
