package config

import "fmt"

// InvalidConfigError indicates an unreadable or malformed label document.
// It is fatal: reconciliation never starts when the document cannot be
// parsed in full.
type InvalidConfigError struct {
	// Path is the document location, when known.
	Path string
	// Reason is a short human-readable description.
	Reason string
	// Err is the underlying parse or IO error, if any.
	Err error
}

func (e *InvalidConfigError) Error() string {
	msg := "invalid label config"
	if e.Path != "" {
		msg = fmt.Sprintf("%s %s", msg, e.Path)
	}
	msg = fmt.Sprintf("%s: %s", msg, e.Reason)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *InvalidConfigError) Unwrap() error {
	return e.Err
}
