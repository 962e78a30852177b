package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abdidvp/repohealth/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

// globalFlags are persistent flags shared by every command.
type globalFlags struct {
	verbose bool
	token   string
	apiURL  string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "repohealth",
		Short:         "Code-health report for GitHub repositories",
		Long:          "repohealth analyses a GitHub repository without cloning it and reports findings across structure, dependencies, configuration, code patterns, security, documentation and testing, plus a 0-100 health score.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	cmd.PersistentFlags().StringVar(&flags.token, "token", "", "GitHub token (defaults to GITHUB_TOKEN or GH_TOKEN)")
	cmd.PersistentFlags().StringVar(&flags.apiURL, "api-url", "", "GitHub API base URL (overrides api_base_url)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAnalyzeCmd(flags))
	cmd.AddCommand(newParseURLCmd())
	cmd.AddCommand(newMCPCmd(flags))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the CLI and prints a user-facing description of any error.
func Execute() error {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", domain.Describe(err))
		return err
	}
	return nil
}

func newLogger(cmd *cobra.Command, flags *globalFlags) *slog.Logger {
	level := slog.LevelWarn
	if flags.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
