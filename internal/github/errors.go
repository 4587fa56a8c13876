package github

import (
	"errors"
	"fmt"
	"strings"

	"labelctl/internal/label"
)

// NotInstalledError indicates the gh binary could not be found on PATH.
type NotInstalledError struct{}

func (e *NotInstalledError) Error() string {
	return "gh CLI not found\n\nPlease install GitHub CLI: https://cli.github.com/"
}

// CommandError is a gh invocation failure that is neither a not-found
// nor an already-exists conflict: transport problems, auth problems,
// unexpected HTTP statuses. The engine treats it as unrecoverable for
// the current action and moves on.
type CommandError struct {
	// Subject is the label name the call was about, when applicable.
	Subject string
	// Stderr is the trimmed gh error output.
	Stderr string
	// Err is the underlying process error.
	Err error
}

func (e *CommandError) Error() string {
	msg := e.Stderr
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("gh: %s", msg)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// classify maps a failed gh api call onto the typed store errors.
// gh writes the HTTP status line to stderr and, for validation
// failures, the response body with machine-readable error codes to
// stdout, so both streams are inspected.
func classify(subject string, stdout, stderr []byte, err error) error {
	var notInstalled *NotInstalledError
	if errors.As(err, &notInstalled) {
		return err
	}

	combined := string(stdout) + "\n" + string(stderr)

	switch {
	case strings.Contains(combined, "already_exists"):
		return fmt.Errorf("label %q: %w", subject, label.ErrAlreadyExists)
	case strings.Contains(combined, "HTTP 404") || strings.Contains(combined, "Not Found"):
		return fmt.Errorf("label %q: %w", subject, label.ErrNotFound)
	default:
		return &CommandError{
			Subject: subject,
			Stderr:  strings.TrimSpace(string(stderr)),
			Err:     err,
		}
	}
}
