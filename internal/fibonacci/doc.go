// Package fibonacci provides three strategies for computing the nth
// Fibonacci number under the convention fib(1) = fib(2) = 1: naive recursion,
// recursion memoized over a fixed-capacity cache, and a lookup table
// precomputed at build time by cmd/gentable.
//
// The domain is capped at TableCapacity (93), the largest index whose value
// fits in a uint64. All strategies reject indices outside [1, TableCapacity]
// with an explicit validation error.
package fibonacci
