package fibonacci

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestRecurrenceRelation_PropertyBased verifies the fundamental recurrence:
//
//	F(n) = F(n-1) + F(n-2)  for n >= 3
//
// This is the defining property of the Fibonacci sequence.
func TestRecurrenceRelation_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("Memoized satisfies F(n) = F(n-1) + F(n-2)", prop.ForAll(
		func(n uint64) bool {
			cache := NewCache(TableCapacity)
			fn, err := Memoized(n, cache)
			if err != nil {
				return false
			}
			fn1, err := Memoized(n-1, cache)
			if err != nil {
				return false
			}
			fn2, err := Memoized(n-2, cache)
			if err != nil {
				return false
			}
			return fn == fn1+fn2
		},
		gen.UInt64Range(3, TableCapacity),
	))

	properties.Property("Const satisfies F(n) = F(n-1) + F(n-2)", prop.ForAll(
		func(n uint64) bool {
			fn, err := Const(n)
			if err != nil {
				return false
			}
			fn1, err := Const(n - 1)
			if err != nil {
				return false
			}
			fn2, err := Const(n - 2)
			if err != nil {
				return false
			}
			return fn == fn1+fn2
		},
		gen.UInt64Range(3, TableCapacity),
	))

	properties.TestingRun(t)
}

// TestCrossVariantEquivalence_PropertyBased verifies that all three
// strategies agree wherever naive recursion is practical.
func TestCrossVariantEquivalence_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("Naive, Memoized, and Const agree", prop.ForAll(
		func(n uint64) bool {
			naiveVal, err := Naive(n)
			if err != nil {
				return false
			}
			memoVal, err := Memoized(n, NewCache(TableCapacity))
			if err != nil {
				return false
			}
			constVal, err := Const(n)
			if err != nil {
				return false
			}
			return naiveVal == memoVal && memoVal == constVal
		},
		gen.UInt64Range(1, 30),
	))

	properties.TestingRun(t)
}

// TestIdempotence_PropertyBased verifies that a second memoized call with a
// warm cache returns the same value and never mutates filled slots.
func TestIdempotence_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("warm cache calls are idempotent", prop.ForAll(
		func(n uint64) bool {
			cache := NewCache(TableCapacity)
			first, err := Memoized(n, cache)
			if err != nil {
				return false
			}
			snapshot := make(Cache, len(cache))
			copy(snapshot, cache)

			second, err := Memoized(n, cache)
			if err != nil || first != second {
				return false
			}
			for i := range cache {
				if cache[i] != snapshot[i] {
					return false
				}
			}
			return true
		},
		gen.UInt64Range(1, TableCapacity),
	))

	properties.TestingRun(t)
}

// TestMonotonicCachePopulation_PropertyBased verifies that computing F(n)
// fills every slot the recurrence chain touches: all of [1, n] for n >= 3.
func TestMonotonicCachePopulation_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("cache is warm up to n after computing F(n)", prop.ForAll(
		func(n uint64) bool {
			cache := NewCache(TableCapacity)
			want, err := Memoized(n, cache)
			if err != nil {
				return false
			}
			if cache[n-1] != want {
				return false
			}
			for k := uint64(1); k <= n; k++ {
				if !cache.Filled(k) {
					return false
				}
			}
			return true
		},
		gen.UInt64Range(3, TableCapacity),
	))

	properties.TestingRun(t)
}

// TestVariantAgreement_PropertyBased runs the variant layer end to end and
// checks the table lookup against the freshly memoized value.
func TestVariantAgreement_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	ctx := context.Background()
	properties.Property("MemoVariant and ConstVariant agree over the full domain", prop.ForAll(
		func(n uint64) bool {
			memoVal, err := MemoVariant{}.Calculate(ctx, n, Options{})
			if err != nil {
				return false
			}
			constVal, err := ConstVariant{}.Calculate(ctx, n, Options{})
			if err != nil {
				return false
			}
			return memoVal == constVal
		},
		gen.UInt64Range(1, TableCapacity),
	))

	properties.TestingRun(t)
}
