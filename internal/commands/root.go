// Package commands implements the finbook CLI. Commands collect validated
// inputs, call the auth/wallet/report engines, and render the returned
// lines; all ledger rules live below this package.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finbook-dev/finbook/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "finbook",
		Short:   "Personal finance ledger and budget tracker",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "finbook.yaml", "path to the config file")

	rootCmd.AddCommand(
		newRegisterCommand(),
		newLoginCommand(),
		newLogoutCommand(),
		newAddCommand(),
		newListCommand(),
		newBudgetCommand(),
		newRenameCategoryCommand(),
		newSummaryCommand(),
		newReportCommand(),
		newExportCommand(),
		newImportCommand(),
	)

	return rootCmd
}
