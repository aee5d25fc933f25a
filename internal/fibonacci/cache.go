package fibonacci

// Cache is a fixed-capacity memo table for Fibonacci values. Slot n-1 holds
// F(n) once computed; CacheSentinel marks an unfilled slot. A Cache is owned
// by the call chain that created it and is not safe for concurrent use, which
// is fine: values once written never change, and the runner executes variants
// strictly one after another.
type Cache []uint64

// NewCache allocates a cache with the given capacity, every slot unfilled.
//
// Parameters:
//   - capacity: The number of slots, one per index in [1, capacity].
//
// Returns:
//   - Cache: The freshly allocated cache.
func NewCache(capacity uint64) Cache {
	return make(Cache, capacity)
}

// Filled reports whether the slot for index n holds a computed value.
// It returns false for indices outside [1, capacity].
//
// Parameters:
//   - n: The 1-based Fibonacci index.
//
// Returns:
//   - bool: true if F(n) is cached.
func (c Cache) Filled(n uint64) bool {
	if n == 0 || n > uint64(len(c)) {
		return false
	}
	return c[n-1] != CacheSentinel
}

// Capacity returns the number of slots in the cache.
func (c Cache) Capacity() uint64 {
	return uint64(len(c))
}
