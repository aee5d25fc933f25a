// Package ui manages terminal color themes and styles for CLI output.
// It supports the NO_COLOR convention, a --no-color flag, and automatic
// plain output when stdout is not a terminal.
package ui
