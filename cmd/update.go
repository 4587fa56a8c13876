package cmd

import (
	"errors"
	"fmt"

	"labelctl/internal/cli"
	"labelctl/internal/label"

	"github.com/spf13/cobra"
)

var (
	updateNewName     string
	updateColor       string
	updateDescription string
)

func newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <name>",
		Short: "Update a single label in place",
		Long: `Updates the named label. Only the fields given as flags are
changed; everything else keeps its current value.`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}
	cmd.Flags().StringVar(&updateNewName, "new-name", "", "Rename the label")
	cmd.Flags().StringVarP(&updateColor, "color", "c", "", "New color as 6 hex digits")
	cmd.Flags().StringVarP(&updateDescription, "description", "d", "", "New description")
	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name := args[0]

	req := label.UpdateRequest{NewName: updateNewName}
	if updateColor != "" {
		color, err := label.NormalizeColor(updateColor)
		if err != nil {
			return err
		}
		req.Color = color
	}
	if cmd.Flags().Changed("description") {
		req.Description = &updateDescription
	}

	if req.NewName == "" && req.Color == "" && req.Description == nil {
		return fmt.Errorf("nothing to update: pass --new-name, --color, or --description")
	}

	client, err := resolveClient(ctx)
	if err != nil {
		return err
	}

	updated, err := client.Update(ctx, name, req)
	if err != nil {
		if errors.Is(err, label.ErrNotFound) {
			return fmt.Errorf("label %q does not exist in %s", name, client.Repo())
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated label in %s:\n", client.Repo())
	cli.NewPrinter(cmd.OutOrStdout()).Label(updated)
	return nil
}

func init() {
	rootCmd.AddCommand(newUpdateCmd())
}
