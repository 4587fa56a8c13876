package cli

import "fmt"

// ActionsFailedError is returned by apply-style commands when the
// reconciliation pass completed but at least one item failed. The run is
// never aborted for per-item failures; this error only carries the count
// into the process exit code.
type ActionsFailedError struct {
	Failed int
}

func (e *ActionsFailedError) Error() string {
	if e.Failed == 1 {
		return "1 action failed"
	}
	return fmt.Sprintf("%d actions failed", e.Failed)
}
