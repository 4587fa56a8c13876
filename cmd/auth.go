package cmd

import (
	"labelctl/internal/github"

	"github.com/spf13/cobra"
)

// newAuthCmd passes authentication through to the gh CLI, which owns the
// credentials labelctl uses for every remote call. Running auth without a
// subcommand starts a login.
func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth [login|logout|status]",
		Short: "Manage GitHub authentication via the gh CLI",
		Long: `labelctl does not store credentials of its own; it relies on the
gh CLI being authenticated. These commands are forwarded to gh auth.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return github.RunAuth(cmd.Context(), "login")
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "login",
		Short: "Authenticate gh with GitHub",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return github.RunAuth(cmd.Context(), "login")
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "logout",
		Short: "Remove the stored gh credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return github.RunAuth(cmd.Context(), "logout")
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the gh authentication status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return github.RunAuth(cmd.Context(), "status")
		},
	})
	return cmd
}

func init() {
	rootCmd.AddCommand(newAuthCmd())
}
