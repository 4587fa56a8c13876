// Package reconcile implements the policy engine that brings a remote
// label set toward the state declared in a label document.
//
// Declarations are processed strictly in document order, one remote call
// in flight at a time, followed by deletions. Every declaration falls
// into exactly one of three branches, decided up front from its fields:
//
//   - rename search: update_if_match names are tried in order; each hit
//     is folded into the declared name, and a create is attempted only
//     when no candidate matched and a color is declared
//   - create or resolve: create the label, resolving a name conflict by
//     the declaration's update_if_exists / skip_if_exists policy
//   - update only: a colorless declaration patches an existing label
//
// Per-item failures are recorded and never abort the run; the engine
// always drains the full declaration and deletion lists. Dry-run mode
// records the happy-path outcome of every item without issuing a single
// remote call.
package reconcile
