package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IanChok/finance-tracker/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "finance-tracker",
		Short:   "Parse bank statement CSV exports into transactions",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newImportCommand())

	return rootCmd
}
