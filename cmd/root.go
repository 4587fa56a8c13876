package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"labelctl/internal/cli"
	"labelctl/pkg/logging"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands. These are stable so scripts can branch on
// the result of a reconciliation run.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeActionsFailed indicates the run completed but some label
	// actions failed.
	ExitCodeActionsFailed = 2
)

var (
	rootRepo  string
	rootDebug bool
)

// rootCmd represents the base command for labelctl.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "labelctl",
	Short: "Manage GitHub issue labels declaratively",
	Long: `labelctl manages the issue labels of a GitHub repository from a
declarative YAML or TOML document: describe the labels you want, and
labelctl creates, renames, updates, and deletes until the repository
matches. It talks to GitHub through the gh CLI, so an authenticated gh
is the only requirement.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.LevelWarn
		if rootDebug {
			level = logging.LevelDebug
		}
		logging.Init(level, os.Stderr)
	},
}

// SetVersion sets the version for the root command.
// Called from the main package to inject the build-time version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application. It runs the
// root command and maps handled errors onto semantic exit codes.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "labelctl version %s\n" .Version}}`)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
func getExitCode(err error) int {
	var actionsFailed *cli.ActionsFailedError
	if errors.As(err, &actionsFailed) {
		return ExitCodeActionsFailed
	}
	return ExitCodeError
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootRepo, "repo", "R", "",
		"Target repository in owner/name form (default: origin of the current git repository)")
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false,
		"Enable debug logging")
}
