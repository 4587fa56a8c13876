package label

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped) by Store implementations.
// The reconciliation engine branches on these with errors.Is; any other
// store error is treated as an unrecoverable failure for the current action.
var (
	// ErrNotFound indicates the named label does not exist remotely.
	ErrNotFound = errors.New("label not found")

	// ErrAlreadyExists indicates a create collided with an existing name.
	ErrAlreadyExists = errors.New("label already exists")
)

// InvalidColorError indicates a color value that is not a 6-digit hex code.
type InvalidColorError struct {
	// Value is the rejected input, as given.
	Value string
	// Reason describes which constraint was violated.
	Reason string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid color %q: %s", e.Value, e.Reason)
}
