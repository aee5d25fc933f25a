// This file contains configuration options for Fibonacci calculations.

package fibonacci

// Options configures a variant invocation.
type Options struct {
	// NaiveLimit is the largest index the naive variant will attempt.
	// If 0, DefaultNaiveLimit is used by the implementation.
	NaiveLimit uint64
}

// normalizeOptions returns a copy of opts with default values filled in for
// zero values. This ensures consistent limit handling across all variant
// implementations.
//
// Parameters:
//   - opts: The options to normalize.
//
// Returns:
//   - Options: A normalized copy of opts with defaults applied.
func normalizeOptions(opts Options) Options {
	normalized := opts
	if normalized.NaiveLimit == 0 {
		normalized.NaiveLimit = DefaultNaiveLimit
	}
	return normalized
}
