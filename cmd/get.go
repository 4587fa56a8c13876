package cmd

import (
	"errors"
	"fmt"

	"labelctl/internal/cli"
	"labelctl/internal/label"

	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show a single label",
		Args:  cobra.ExactArgs(1),
		RunE:  runGet,
	}
}

func runGet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name := args[0]

	client, err := resolveClient(ctx)
	if err != nil {
		return err
	}

	l, err := client.Get(ctx, name)
	if err != nil {
		if errors.Is(err, label.ErrNotFound) {
			return fmt.Errorf("label %q does not exist in %s", name, client.Repo())
		}
		return err
	}

	cli.NewPrinter(cmd.OutOrStdout()).Label(l)
	return nil
}

func init() {
	rootCmd.AddCommand(newGetCmd())
}
