package cli

import (
	"time"

	"github.com/briandowns/spinner"
)

// WithSpinner runs fn while showing a spinner with the given suffix text.
// Quiet suppresses the spinner entirely so piped output stays clean.
func WithSpinner(quiet bool, suffix string, fn func() error) error {
	if quiet {
		return fn()
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + suffix
	s.Start()
	defer s.Stop()
	return fn()
}
