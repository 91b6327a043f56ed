package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finbook-dev/finbook/internal/store"
	"github.com/finbook-dev/finbook/internal/wallet"
)

func newBudgetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage monthly category budgets",
	}
	cmd.AddCommand(newBudgetSetCommand(), newBudgetEditCommand(), newBudgetListCommand())
	return cmd
}

func newBudgetSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set CATEGORY LIMIT",
		Short: "Set or replace the monthly limit for a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			cfg, registry, err := openRegistry(cmd)
			if err != nil {
				return err
			}
			account, err := requireAccount(cfg, registry)
			if err != nil {
				return err
			}

			if err := wallet.SetBudget(account.Wallet, args[0], limit); err != nil {
				return err
			}
			if err := store.Save(cfg.DataFile, registry); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Budget for %q set to %s per month.\n", args[0], limit.StringFixed(2))
			return nil
		},
	}
}

func newBudgetEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit CATEGORY LIMIT",
		Short: "Change the limit of an existing budget",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			cfg, registry, err := openRegistry(cmd)
			if err != nil {
				return err
			}
			account, err := requireAccount(cfg, registry)
			if err != nil {
				return err
			}

			existing, ok := account.Wallet.Budget(args[0])
			if !ok {
				return fmt.Errorf("no budget for category %q: use 'finbook budget set' to create one", args[0])
			}

			if err := wallet.SetBudget(account.Wallet, args[0], limit); err != nil {
				return err
			}
			if err := store.Save(cfg.DataFile, registry); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Budget for %q changed from %s to %s.\n",
				existing.Name, existing.Limit.StringFixed(2), limit.StringFixed(2))
			return nil
		},
	}
}

func newBudgetListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all budgets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, registry, err := openRegistry(cmd)
			if err != nil {
				return err
			}
			account, err := requireAccount(cfg, registry)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			budgets := account.Wallet.Budgets()
			if len(budgets) == 0 {
				fmt.Fprintln(out, "No budgets defined.")
				return nil
			}

			fmt.Fprintf(out, "%-20s | %-12s\n", "Category", "Limit")
			fmt.Fprintln(out, "---------------------+--------------")
			for _, budget := range budgets {
				fmt.Fprintf(out, "%-20s | %-12s\n", budget.Name, budget.Limit.StringFixed(2))
			}
			return nil
		},
	}
}

func newRenameCategoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename-category OLD NEW",
		Short: "Rename a category across transactions and budgets",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, registry, err := openRegistry(cmd)
			if err != nil {
				return err
			}
			account, err := requireAccount(cfg, registry)
			if err != nil {
				return err
			}

			if err := wallet.RenameCategory(account.Wallet, args[0], args[1]); err != nil {
				return err
			}
			if err := store.Save(cfg.DataFile, registry); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Category %q renamed to %q.\n", args[0], args[1])
			return nil
		},
	}
}
