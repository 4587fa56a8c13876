package cmd

import (
	"fmt"

	"labelctl/internal/cli"
	"labelctl/internal/reconcile"
	"labelctl/internal/template"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var (
	templateApplyDryRun       bool
	templateApplySkipExisting bool
)

func newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Work with label templates",
		Long: `Templates are ready-made label documents compiled into labelctl.
Files in ~/.config/labelctl/templates or /usr/local/share/labelctl/templates
are picked up as well and override built-ins with the same name.`,
	}
	cmd.AddCommand(newTemplateListCmd())
	cmd.AddCommand(newTemplateShowCmd())
	cmd.AddCommand(newTemplateApplyCmd())
	return cmd
}

func newTemplateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := template.NewManager().List()
			if err != nil {
				return err
			}
			cli.RenderTemplateTable(cmd.OutOrStdout(), infos)
			return nil
		},
	}
}

func newTemplateShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a template's document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, _, err := template.NewManager().Raw(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newTemplateApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <name>",
		Short: "Reconcile repository labels against a template",
		Args:  cobra.ExactArgs(1),
		RunE:  runTemplateApply,
	}
	cmd.Flags().BoolVarP(&templateApplyDryRun, "dry-run", "n", false, "Show what would change without touching the repository")
	cmd.Flags().BoolVarP(&templateApplySkipExisting, "skip-existing", "s", false, "Skip labels that already exist instead of failing")
	return cmd
}

func runTemplateApply(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name := args[0]

	cfg, err := template.NewManager().Load(name)
	if err != nil {
		return err
	}

	client, err := resolveClient(ctx)
	if err != nil {
		return err
	}

	printer := cli.NewPrinter(cmd.OutOrStdout())
	printer.SetDryRun(templateApplyDryRun)

	fmt.Fprintf(cmd.OutOrStdout(), "Applying template %s to %s\n\n",
		text.FgCyan.Sprint(name), text.FgCyan.Sprint(client.Repo()))

	outcomes := reconcile.Reconcile(ctx, cfg, client, reconcile.Options{
		DryRun:       templateApplyDryRun,
		SkipExisting: templateApplySkipExisting,
		Observer:     printer.Observer(),
	})

	summary := reconcile.Summarize(outcomes)
	printer.Summary(summary)

	if summary.Failed > 0 {
		return &cli.ActionsFailedError{Failed: summary.Failed}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(newTemplateCmd())
}
