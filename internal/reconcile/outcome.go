package reconcile

// Action is the kind of outcome recorded for one reconciled item.
type Action int

const (
	ActionRenamed Action = iota
	ActionCreated
	ActionUpdated
	ActionSkipped
	ActionDeleted
	ActionFailed
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionRenamed:
		return "renamed"
	case ActionCreated:
		return "created"
	case ActionUpdated:
		return "updated"
	case ActionSkipped:
		return "skipped"
	case ActionDeleted:
		return "deleted"
	case ActionFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome records what happened to one declared item. Outcomes are
// appended in processing order and never mutated afterwards.
type Outcome struct {
	// Action is what the engine did (or, in dry-run mode, would do).
	Action Action
	// Subject is the label name acted upon. For renames this is the old
	// name; Detail then carries the declared target name.
	Subject string
	// Detail carries the error message for failed outcomes, the target
	// name for renames, and a short reason for skips.
	Detail string
}

// Summary is the fold over an outcome sequence presented to the user.
type Summary struct {
	Success int
	Skipped int
	Failed  int
}

// Summarize counts outcomes by bucket. Renames, creates, updates and
// deletes all count as success.
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		switch o.Action {
		case ActionRenamed, ActionCreated, ActionUpdated, ActionDeleted:
			s.Success++
		case ActionSkipped:
			s.Skipped++
		case ActionFailed:
			s.Failed++
		}
	}
	return s
}
