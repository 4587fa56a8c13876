package cmd

import (
	"context"
	"errors"
	"fmt"

	"labelctl/internal/cli"
	"labelctl/internal/config"
	"labelctl/internal/label"
	"labelctl/internal/reconcile"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var (
	applyFile         string
	applyDryRun       bool
	applySkipExisting bool
	applyWatch        bool
)

func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Reconcile repository labels against a label document",
		Long: `Reads a label document (labels.yaml, labels.yml, or labels.toml in
the current directory unless --file names one) and applies it to the
repository: labels are renamed, created, and updated first, then the
delete list is processed. Failures on individual labels are reported
and the run continues.`,
		Args: cobra.NoArgs,
		RunE: runApply,
	}

	cmd.Flags().StringVarP(&applyFile, "file", "f", "", "Label document to apply")
	cmd.Flags().BoolVarP(&applyDryRun, "dry-run", "n", false, "Show what would change without touching the repository")
	cmd.Flags().BoolVarP(&applySkipExisting, "skip-existing", "s", false, "Skip labels that already exist instead of failing")
	cmd.Flags().BoolVarP(&applyWatch, "watch", "w", false, "Re-apply whenever the document changes")
	return cmd
}

func runApply(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	path := applyFile
	if path == "" {
		var err error
		path, err = config.ResolveDefault(".")
		if err != nil {
			return err
		}
	}

	store, err := resolveClient(ctx)
	if err != nil {
		return err
	}

	if applyWatch {
		return watchAndApply(ctx, cmd, path, store)
	}
	return applyDocument(ctx, cmd, path, store)
}

// applyDocument runs one full reconciliation pass over the document.
func applyDocument(ctx context.Context, cmd *cobra.Command, path string, store label.Store) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if !cfg.HasActions() {
		fmt.Fprintf(cmd.OutOrStdout(), "Nothing to do: %s declares no labels and no deletions\n", path)
		return nil
	}

	printer := cli.NewPrinter(cmd.OutOrStdout())
	printer.SetDryRun(applyDryRun)

	fmt.Fprintf(cmd.OutOrStdout(), "Applying %s to %s\n\n",
		text.FgCyan.Sprint(path), text.FgCyan.Sprint(repoSlug(store)))

	outcomes := reconcile.Reconcile(ctx, cfg, store, reconcile.Options{
		DryRun:       applyDryRun,
		SkipExisting: applySkipExisting,
		Observer:     printer.Observer(),
	})

	summary := reconcile.Summarize(outcomes)
	printer.Summary(summary)

	if summary.Failed > 0 {
		return &cli.ActionsFailedError{Failed: summary.Failed}
	}
	return nil
}

// watchAndApply applies once, then re-applies on every document change
// until interrupted. Failed actions are reported per pass but do not
// stop the watch.
func watchAndApply(ctx context.Context, cmd *cobra.Command, path string, store label.Store) error {
	apply := func() error {
		err := applyDocument(ctx, cmd, path, store)
		if err != nil {
			// Keep watching through bad edits and failed actions.
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", text.FgRed.Sprint("Error:"), err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nWatching %s for changes (Ctrl-C to stop)...\n", path)
		return nil
	}

	if err := apply(); err != nil {
		return err
	}
	err := cli.WatchFile(ctx, path, apply)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// repoSlug names the target for output; stores other than the GitHub
// client (used in tests) fall back to a generic label.
func repoSlug(store label.Store) string {
	type slugger interface{ Repo() string }
	if s, ok := store.(slugger); ok {
		return s.Repo()
	}
	return "repository"
}

func init() {
	rootCmd.AddCommand(newApplyCmd())
}
