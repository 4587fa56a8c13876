package cmd

import (
	"fmt"

	"labelctl/internal/cli"
	"labelctl/internal/label"

	"github.com/spf13/cobra"
)

var listQuiet bool

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all labels of the repository",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
	cmd.Flags().BoolVarP(&listQuiet, "quiet", "q", false, "Only print label names, one per line")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client, err := resolveClient(ctx)
	if err != nil {
		return err
	}

	var labels []label.Label
	err = cli.WithSpinner(listQuiet, fmt.Sprintf("Fetching labels from %s...", client.Repo()), func() error {
		var listErr error
		labels, listErr = client.List(ctx)
		return listErr
	})
	if err != nil {
		return err
	}

	if listQuiet {
		for _, l := range labels {
			fmt.Fprintln(cmd.OutOrStdout(), l.Name)
		}
		return nil
	}

	if len(labels) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No labels found in %s\n", client.Repo())
		return nil
	}

	cli.RenderLabelTable(cmd.OutOrStdout(), labels)
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d labels in %s\n", len(labels), client.Repo())
	return nil
}

func init() {
	rootCmd.AddCommand(newListCmd())
}
