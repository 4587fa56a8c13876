package reconcile

import "labelctl/internal/config"

// branch identifies the single reconciliation strategy a declaration
// falls into. The three branches are mutually exclusive and total: every
// declaration maps to exactly one of them.
type branch int

const (
	// branchRenameSearch tries the update_if_match candidates in order.
	branchRenameSearch branch = iota
	// branchCreateOrResolve creates the label, resolving a name conflict
	// by the declaration's flags.
	branchCreateOrResolve
	// branchUpdateOnly patches an existing label in place.
	branchUpdateOnly
)

// branchFor decides the branch from the declaration's fields alone,
// before any remote call is made.
func branchFor(d config.Declaration) branch {
	switch {
	case len(d.UpdateIfMatch) > 0:
		return branchRenameSearch
	case d.HasColor():
		return branchCreateOrResolve
	default:
		return branchUpdateOnly
	}
}
