package fibonacci

import "testing"

// TestNewCache verifies that a fresh cache has every slot unfilled.
func TestNewCache(t *testing.T) {
	cache := NewCache(10)
	if cache.Capacity() != 10 {
		t.Fatalf("Capacity() = %d, want 10", cache.Capacity())
	}
	for n := uint64(1); n <= 10; n++ {
		if cache.Filled(n) {
			t.Errorf("fresh cache reports F(%d) as filled", n)
		}
	}
}

// TestCacheFilledBounds verifies that Filled tolerates out-of-range indices
// instead of panicking.
func TestCacheFilledBounds(t *testing.T) {
	cache := NewCache(5)
	if cache.Filled(0) {
		t.Error("Filled(0) = true, want false")
	}
	if cache.Filled(6) {
		t.Error("Filled(6) = true, want false")
	}
}
