// Package orchestration coordinates the sequential execution of the
// calculation variants and the analysis of their results. It depends on the
// presentation layer only through interfaces so CLI formatting stays out of
// the comparison logic.
package orchestration
