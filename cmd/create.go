package cmd

import (
	"errors"
	"fmt"

	"labelctl/internal/cli"
	"labelctl/internal/label"

	"github.com/spf13/cobra"
)

var (
	createColor       string
	createDescription string
)

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a single label",
		Long: `Creates one label directly, without a label document. The color
accepts an optional leading # and is case-insensitive.`,
		Args: cobra.ExactArgs(1),
		RunE: runCreate,
	}
	cmd.Flags().StringVarP(&createColor, "color", "c", "", "Label color as 6 hex digits (required)")
	cmd.Flags().StringVarP(&createDescription, "description", "d", "", "Label description")
	_ = cmd.MarkFlagRequired("color")
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name := args[0]

	color, err := label.NormalizeColor(createColor)
	if err != nil {
		return err
	}

	client, err := resolveClient(ctx)
	if err != nil {
		return err
	}

	req := label.CreateRequest{Name: name, Color: color}
	if createDescription != "" {
		req.Description = &createDescription
	}

	created, err := client.Create(ctx, req)
	if err != nil {
		if errors.Is(err, label.ErrAlreadyExists) {
			return fmt.Errorf("label %q already exists in %s", name, client.Repo())
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created label in %s:\n", client.Repo())
	cli.NewPrinter(cmd.OutOrStdout()).Label(created)
	return nil
}

func init() {
	rootCmd.AddCommand(newCreateCmd())
}
