package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version identifies the build. Overridden at link time via
// -ldflags "-X github.com/agbru/fibcomp/internal/app.Version=...".
var Version = "dev"

// HasVersionFlag reports whether the argument list requests version output.
//
// Parameters:
//   - args: The command-line arguments (without the program name).
//
// Returns:
//   - bool: true if -version or --version is present.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" || arg == "-V" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
//
// Parameters:
//   - out: The destination writer.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "fibcomp %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
