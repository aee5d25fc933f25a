package ui

// Color accessor functions return the escape code of the matching category in
// the active theme. They exist so call sites read as intent ("success",
// "warning") rather than raw escape sequences, and so the no-color theme
// collapses every accessor to the empty string.

// ColorPrimary returns the primary accent color code.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSecondary returns the secondary color code.
func ColorSecondary() string { return GetCurrentTheme().Secondary }

// ColorGreen returns the success color code.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning color code.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorRed returns the error color code.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorCyan returns the info color code.
func ColorCyan() string { return GetCurrentTheme().Info }

// ColorBold returns the bold attribute code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline attribute code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the reset code.
func ColorReset() string { return GetCurrentTheme().Reset }
