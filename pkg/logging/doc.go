// Package logging provides a thin wrapper around log/slog with a
// subsystem tag on every entry. Commands initialize it once from the
// --verbose flag; library packages call the leveled functions directly.
package logging
