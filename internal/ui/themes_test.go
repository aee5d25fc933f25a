package ui

import "testing"

// saveTheme snapshots the active theme and restores it when the test ends,
// so theme-mutating tests do not leak into each other.
func saveTheme(t *testing.T) {
	t.Helper()
	prev := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(prev) })
}

func TestSetTheme(t *testing.T) {
	saveTheme(t)

	tests := []struct {
		name     string
		expected string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"unknown-theme", "dark"}, // unknown names fall back to dark
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetTheme(tt.name)
			if got := GetCurrentTheme().Name; got != tt.expected {
				t.Errorf("SetTheme(%q): active theme = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}

func TestInitThemeNoColorFlag(t *testing.T) {
	saveTheme(t)

	InitTheme(true)
	if got := GetCurrentTheme().Name; got != "none" {
		t.Errorf("InitTheme(true): active theme = %q, want %q", got, "none")
	}
}

func TestInitThemeNoColorEnv(t *testing.T) {
	saveTheme(t)
	t.Setenv("NO_COLOR", "1")

	InitTheme(false)
	if got := GetCurrentTheme().Name; got != "none" {
		t.Errorf("InitTheme(false) with NO_COLOR set: active theme = %q, want %q", got, "none")
	}
}

func TestColorAccessorsNoColorTheme(t *testing.T) {
	saveTheme(t)
	SetCurrentTheme(NoColorTheme)

	accessors := map[string]func() string{
		"ColorPrimary":   ColorPrimary,
		"ColorSecondary": ColorSecondary,
		"ColorGreen":     ColorGreen,
		"ColorYellow":    ColorYellow,
		"ColorRed":       ColorRed,
		"ColorCyan":      ColorCyan,
		"ColorBold":      ColorBold,
		"ColorUnderline": ColorUnderline,
		"ColorReset":     ColorReset,
	}
	for name, fn := range accessors {
		if got := fn(); got != "" {
			t.Errorf("%s() = %q under no-color theme, want empty string", name, got)
		}
	}
}

func TestColorAccessorsDarkTheme(t *testing.T) {
	saveTheme(t)
	SetCurrentTheme(DarkTheme)

	if got := ColorGreen(); got != DarkTheme.Success {
		t.Errorf("ColorGreen() = %q, want %q", got, DarkTheme.Success)
	}
	if got := ColorReset(); got != "\033[0m" {
		t.Errorf("ColorReset() = %q, want reset escape", got)
	}
}

func TestCurrentTableStyles(t *testing.T) {
	saveTheme(t)

	SetCurrentTheme(NoColorTheme)
	plain := CurrentTableStyles()
	if got := plain.Header.Render("total"); got != "total" {
		t.Errorf("plain header rendered %q, want unmodified text", got)
	}

	SetCurrentTheme(DarkTheme)
	colored := CurrentTableStyles()
	if !colored.Header.GetBold() {
		t.Error("colored header style should be bold")
	}
}
