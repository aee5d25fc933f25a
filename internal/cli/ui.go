//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/fibcomp/internal/orchestration"
)

// SpinnerRefreshRate defines the refresh frequency of the progress spinner.
const SpinnerRefreshRate = 150 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows the decoupling of the progress notifier from a specific spinner
// implementation, facilitating easier testing and maintenance.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner to implement the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
//
// Parameters:
//   - suffix: The string to display.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

// newSpinner constructs the default spinner. Declared as a variable so tests
// can substitute a mock.
var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, options...)
	return &realSpinner{s}
}

// SpinnerNotifier implements orchestration.ProgressNotifier by animating a
// spinner on the given writer (normally stderr, so stdout stays a clean
// result stream) while a variant computes.
type SpinnerNotifier struct {
	out     io.Writer
	current Spinner
}

// Verify interface compliance.
var _ orchestration.ProgressNotifier = (*SpinnerNotifier)(nil)

// NewSpinnerNotifier creates a notifier writing its animation to out.
//
// Parameters:
//   - out: The writer for the animation, typically os.Stderr.
//
// Returns:
//   - *SpinnerNotifier: The notifier.
func NewSpinnerNotifier(out io.Writer) *SpinnerNotifier {
	return &SpinnerNotifier{out: out}
}

// Start begins animating for the named variant.
func (sn *SpinnerNotifier) Start(name string) {
	sp := newSpinner(spinner.WithWriter(sn.out))
	sp.UpdateSuffix(fmt.Sprintf(" computing with %s...", name))
	sp.Start()
	sn.current = sp
}

// Stop halts the current animation.
func (sn *SpinnerNotifier) Stop() {
	if sn.current != nil {
		sn.current.Stop()
		sn.current = nil
	}
}
