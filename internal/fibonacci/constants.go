package fibonacci

// ─────────────────────────────────────────────────────────────────────────────
// Domain Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// TableCapacity is the number of slots in the memo cache and in the
	// embedded lookup table, covering indices 1 through TableCapacity.
	//
	// F(93) = 12200160415121876738 is the largest Fibonacci number that fits
	// in a uint64; F(94) overflows. Requests beyond this bound are rejected
	// during validation rather than wrapping silently.
	TableCapacity = 93

	// CacheSentinel marks an unknown cache slot. Under the convention
	// fib(1) = fib(2) = 1 the value zero never occurs in the sequence, so it
	// is safe as the "not yet computed" marker.
	CacheSentinel uint64 = 0

	// DefaultIndex is the index computed when none is given. F(42) is large
	// enough that the naive variant takes visible wall-clock time while the
	// memoized variants complete in microseconds, which is the point of the
	// comparison.
	DefaultIndex uint64 = 42

	// DefaultNaiveLimit is the largest index the naive variant accepts by
	// default. Naive recursion is O(phi^n); around F(50) the call count
	// passes 2e10 and the run takes minutes on commodity hardware.
	DefaultNaiveLimit uint64 = 50

	// naivePollMask controls how often the naive recursion polls its context
	// for cancellation: every 2^20 calls. Polling on every call roughly
	// doubles the runtime of the hot recursion.
	naivePollMask uint64 = 1<<20 - 1
)
