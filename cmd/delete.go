package cmd

import (
	"errors"
	"fmt"

	"labelctl/internal/cli"
	"labelctl/internal/label"

	"github.com/spf13/cobra"
)

var deleteForce bool

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a single label",
		Long: `Deletes the named label after an interactive confirmation.
Deletion removes the label from every issue and pull request it is
attached to and cannot be undone.`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}
	cmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Delete without asking for confirmation")
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name := args[0]

	client, err := resolveClient(ctx)
	if err != nil {
		return err
	}

	if !deleteForce {
		ok, err := cli.ConfirmDeletion(name)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	if err := client.Delete(ctx, name); err != nil {
		if errors.Is(err, label.ErrNotFound) {
			return fmt.Errorf("label %q does not exist in %s", name, client.Repo())
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted label %q from %s\n", name, client.Repo())
	return nil
}

func init() {
	rootCmd.AddCommand(newDeleteCmd())
}
