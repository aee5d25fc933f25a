// Package logging provides a unified logging interface for the comparison
// tool. It abstracts the underlying zerolog implementation, allowing
// consistent logging across components while keeping stdout reserved for
// result output.
package logging
