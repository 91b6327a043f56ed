package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finbook-dev/finbook/internal/store"
	"github.com/finbook-dev/finbook/internal/transfer"
)

func newExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Export transactions to a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, registry, err := openRegistry(cmd)
			if err != nil {
				return err
			}
			account, err := requireAccount(cfg, registry)
			if err != nil {
				return err
			}

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("creating %s: %w", args[0], err)
			}
			defer f.Close()

			if err := transfer.Export(f, account.Wallet.Transactions()); err != nil {
				return fmt.Errorf("exporting to %s: %w", args[0], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d transactions to %s.\n",
				len(account.Wallet.Transactions()), args[0])
			return nil
		},
	}
}

func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import transactions from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, registry, err := openRegistry(cmd)
			if err != nil {
				return err
			}
			account, err := requireAccount(cfg, registry)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			imported, err := transfer.Import(f, account.Wallet)
			if err != nil {
				return fmt.Errorf("importing from %s: %w", args[0], err)
			}
			if err := store.Save(cfg.DataFile, registry); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions. Balance: %s\n",
				imported, account.Wallet.Balance().StringFixed(2))
			return nil
		},
	}
}
