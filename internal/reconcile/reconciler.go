package reconcile

import (
	"context"
	"errors"
	"fmt"

	"labelctl/internal/config"
	"labelctl/internal/label"
	"labelctl/pkg/logging"

	"github.com/google/uuid"
)

// Options control a single reconciliation pass.
type Options struct {
	// DryRun records the happy-path outcome of every item without
	// issuing any remote call.
	DryRun bool

	// SkipExisting is the caller-wide counterpart of a declaration's
	// skip_if_exists flag. A declaration's update_if_exists still takes
	// precedence over both.
	SkipExisting bool

	// Observer, when set, is invoked for every outcome as it is
	// recorded. It lets the presentation layer stream progress without
	// the engine knowing anything about rendering.
	Observer func(Outcome)
}

// Reconcile processes every declaration in document order, then every
// deletion in document order, and returns one outcome per item (plus one
// per rename candidate tried). It always drains both lists: per-item
// failures are recorded, never propagated.
func Reconcile(ctx context.Context, cfg *config.Config, store label.Store, opts Options) []Outcome {
	r := &run{store: store, opts: opts}

	runID := uuid.NewString()
	logging.Debug("Reconcile", "run %s: %d declaration(s), %d deletion(s), dry-run=%v",
		runID, len(cfg.Labels), len(cfg.Delete), opts.DryRun)

	for _, decl := range cfg.Labels {
		switch branchFor(decl) {
		case branchRenameSearch:
			r.renameSearch(ctx, decl)
		case branchCreateOrResolve:
			r.createOrResolve(ctx, decl)
		case branchUpdateOnly:
			r.updateOnly(ctx, decl)
		}
	}

	// Deletions run last so a pass can never delete a label it just
	// created or renamed into place under a stale name.
	for _, name := range cfg.Delete {
		r.deleteLabel(ctx, name)
	}

	summary := Summarize(r.outcomes)
	logging.Debug("Reconcile", "run %s: %d succeeded, %d skipped, %d failed",
		runID, summary.Success, summary.Skipped, summary.Failed)

	return r.outcomes
}

type run struct {
	store    label.Store
	opts     Options
	outcomes []Outcome
}

func (r *run) record(o Outcome) {
	r.outcomes = append(r.outcomes, o)
	if r.opts.Observer != nil {
		r.opts.Observer(o)
	}
}

// renameSearch tries every update_if_match candidate in order. A
// candidate that is absent remotely is recorded as an auxiliary skip and
// is not an error; any hit folds the candidate into the declared name.
// When nothing matched, the declaration falls back to a create if it
// carries a color, and to an explicit failure if it does not (a label
// that can neither be renamed into nor created would otherwise vanish
// from the report).
func (r *run) renameSearch(ctx context.Context, d config.Declaration) {
	color, ok := r.normalizedColor(d)
	if !ok {
		return
	}

	foundAny := false
	for _, candidate := range d.UpdateIfMatch {
		if r.opts.DryRun {
			r.record(Outcome{Action: ActionRenamed, Subject: candidate, Detail: d.Name})
			foundAny = true
			continue
		}

		req := label.UpdateRequest{
			NewName:     d.Name,
			Color:       color,
			Description: d.Description,
		}
		_, err := r.store.Update(ctx, candidate, req)
		switch {
		case err == nil:
			r.record(Outcome{Action: ActionRenamed, Subject: candidate, Detail: d.Name})
			foundAny = true
		case errors.Is(err, label.ErrNotFound):
			r.record(Outcome{Action: ActionSkipped, Subject: candidate, Detail: "not found"})
		default:
			r.record(Outcome{Action: ActionFailed, Subject: candidate, Detail: err.Error()})
		}
	}

	if foundAny {
		return
	}

	if !d.HasColor() {
		r.record(Outcome{
			Action:  ActionFailed,
			Subject: d.Name,
			Detail:  "no rename candidate matched and no color given to create the label",
		})
		return
	}

	// First-time creation: no legacy name exists yet.
	req := label.CreateRequest{Name: d.Name, Color: color, Description: d.Description}
	if _, err := r.store.Create(ctx, req); err != nil {
		r.record(Outcome{Action: ActionFailed, Subject: d.Name, Detail: err.Error()})
		return
	}
	r.record(Outcome{Action: ActionCreated, Subject: d.Name})
}

// createOrResolve attempts a create and resolves an "already exists"
// conflict by policy: update_if_exists wins over skip_if_exists, which
// wins over failing with the original conflict.
func (r *run) createOrResolve(ctx context.Context, d config.Declaration) {
	color, ok := r.normalizedColor(d)
	if !ok {
		return
	}

	if r.opts.DryRun {
		r.record(Outcome{Action: ActionCreated, Subject: d.Name})
		return
	}

	req := label.CreateRequest{Name: d.Name, Color: color, Description: d.Description}
	_, err := r.store.Create(ctx, req)
	if err == nil {
		r.record(Outcome{Action: ActionCreated, Subject: d.Name})
		return
	}

	if !errors.Is(err, label.ErrAlreadyExists) {
		r.record(Outcome{Action: ActionFailed, Subject: d.Name, Detail: err.Error()})
		return
	}

	switch {
	case d.UpdateIfExists:
		upd := label.UpdateRequest{Color: color, Description: d.Description}
		if _, updErr := r.store.Update(ctx, d.Name, upd); updErr != nil {
			r.record(Outcome{Action: ActionFailed, Subject: d.Name, Detail: updErr.Error()})
			return
		}
		r.record(Outcome{Action: ActionUpdated, Subject: d.Name})
	case d.SkipIfExists || r.opts.SkipExisting:
		r.record(Outcome{Action: ActionSkipped, Subject: d.Name, Detail: "already exists"})
	default:
		r.record(Outcome{Action: ActionFailed, Subject: d.Name, Detail: err.Error()})
	}
}

// updateOnly patches an existing label. A colorless declaration against
// a nonexistent label fails; there is nothing to create it from.
func (r *run) updateOnly(ctx context.Context, d config.Declaration) {
	if r.opts.DryRun {
		r.record(Outcome{Action: ActionUpdated, Subject: d.Name})
		return
	}

	req := label.UpdateRequest{Description: d.Description}
	if _, err := r.store.Update(ctx, d.Name, req); err != nil {
		r.record(Outcome{Action: ActionFailed, Subject: d.Name, Detail: err.Error()})
		return
	}
	r.record(Outcome{Action: ActionUpdated, Subject: d.Name})
}

func (r *run) deleteLabel(ctx context.Context, name string) {
	if r.opts.DryRun {
		r.record(Outcome{Action: ActionDeleted, Subject: name})
		return
	}

	if err := r.store.Delete(ctx, name); err != nil {
		r.record(Outcome{Action: ActionFailed, Subject: name, Detail: err.Error()})
		return
	}
	r.record(Outcome{Action: ActionDeleted, Subject: name})
}

// normalizedColor validates the declaration's color, recording a failed
// outcome on violation. A malformed color aborts only this declaration's
// action; the rest of the run continues. Declarations without a color
// return an empty canonical color.
func (r *run) normalizedColor(d config.Declaration) (string, bool) {
	if !d.HasColor() {
		return "", true
	}
	color, err := label.NormalizeColor(d.Color)
	if err != nil {
		r.record(Outcome{
			Action:  ActionFailed,
			Subject: d.Name,
			Detail:  fmt.Sprintf("invalid color: %v", err),
		})
		return "", false
	}
	return color, true
}
