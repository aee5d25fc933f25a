package config

import (
	"math"
	"time"

	"github.com/agbru/fibcomp/internal/fibonacci"
)

// Naive limit resolution chain (highest priority first):
//  1. CLI flag (--naive-limit)
//  2. Environment variable (FIBCOMP_NAIVE_LIMIT)
//  3. Hardware estimation (this file)
//  4. Static default in fibonacci/constants.go

const (
	// calibrationIndex is the index timed to estimate this machine's naive
	// recursion speed. F(32) takes a few milliseconds everywhere: large
	// enough to measure, small enough to be unnoticeable at startup.
	calibrationIndex = 32

	// naiveBudget is the wall-clock budget the estimated limit targets.
	// Indices whose extrapolated naive runtime exceeds this are refused.
	naiveBudget = 2 * time.Minute

	// minNaiveLimit and maxNaiveLimit clamp the estimate against clock
	// jitter on very slow or very fast machines.
	minNaiveLimit uint64 = 35
	maxNaiveLimit uint64 = 55

	// goldenRatio is the base of the naive recursion's O(phi^n) growth.
	goldenRatio = 1.6180339887498949
)

// ApplyAdaptiveLimits fills in the naive recursion limit when the user did
// not specify one, by timing a small naive computation and extrapolating.
// User-provided values (flag or environment) are preserved.
func ApplyAdaptiveLimits(cfg AppConfig) AppConfig {
	if cfg.NaiveLimit == 0 {
		cfg.NaiveLimit = EstimateNaiveLimit()
	}
	return cfg
}

// EstimateNaiveLimit estimates the largest index whose naive recursion
// finishes within naiveBudget on this machine. The cost of naive fib grows
// by a factor of phi per index, so one timed sample at calibrationIndex
// extrapolates to any index:
//
//	t(n) ≈ t(calibrationIndex) · phi^(n − calibrationIndex)
//
// The result is clamped to [minNaiveLimit, maxNaiveLimit].
func EstimateNaiveLimit() uint64 {
	start := time.Now()
	if _, err := fibonacci.Naive(calibrationIndex); err != nil {
		return fibonacci.DefaultNaiveLimit
	}
	sample := time.Since(start)
	if sample <= 0 {
		return fibonacci.DefaultNaiveLimit
	}

	headroom := float64(naiveBudget) / float64(sample)
	if headroom < 1 {
		return minNaiveLimit
	}
	limit := calibrationIndex + uint64(math.Log(headroom)/math.Log(goldenRatio))

	if limit < minNaiveLimit {
		return minNaiveLimit
	}
	if limit > maxNaiveLimit {
		return maxNaiveLimit
	}
	return limit
}
