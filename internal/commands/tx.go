package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finbook-dev/finbook/internal/model"
	"github.com/finbook-dev/finbook/internal/report"
	"github.com/finbook-dev/finbook/internal/store"
	"github.com/finbook-dev/finbook/internal/wallet"
)

func newAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an income or expense",
	}
	cmd.AddCommand(newAddIncomeCommand(), newAddExpenseCommand())
	return cmd
}

func addTransactionFlags(cmd *cobra.Command, category, description, dateStr *string) {
	cmd.Flags().StringVar(category, "category", "", "category, e.g. Food or Salary (required)")
	cmd.Flags().StringVar(description, "description", "", "free-text description")
	cmd.Flags().StringVar(dateStr, "date", "", "date as YYYY-MM-DD (default: today)")
	_ = cmd.MarkFlagRequired("category")
}

func resolveDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return today(), nil
	}
	return parseDate(dateStr)
}

func newAddIncomeCommand() *cobra.Command {
	var category, description, dateStr string

	cmd := &cobra.Command{
		Use:   "income AMOUNT",
		Short: "Record an income",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			date, err := resolveDate(dateStr)
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

			if err := wallet.AddIncome(account.Wallet, amount, category, description, date); err != nil {
				return err
			}
			if err := store.Save(cfg.DataFile, registry); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Income recorded. Balance: %s\n", account.Wallet.Balance().StringFixed(2))
			return nil
		},
	}

	addTransactionFlags(cmd, &category, &description, &dateStr)
	return cmd
}

func newAddExpenseCommand() *cobra.Command {
	var category, description, dateStr string

	cmd := &cobra.Command{
		Use:   "expense AMOUNT",
		Short: "Record an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			date, err := resolveDate(dateStr)
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

			advisories, err := wallet.AddExpense(account.Wallet, amount, category, description, date)
			if err != nil {
				return err
			}
			if err := store.Save(cfg.DataFile, registry); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Expense recorded. Balance: %s\n", account.Wallet.Balance().StringFixed(2))
			for _, advisory := range advisories {
				fmt.Fprintln(out, renderAdvisory(advisory))
			}
			return nil
		},
	}

	addTransactionFlags(cmd, &category, &description, &dateStr)
	return cmd
}

func renderAdvisory(a wallet.Advisory) string {
	switch a.Kind {
	case wallet.AdvisoryNoBudget:
		return fmt.Sprintf("Note: no budget set for category %q yet.", a.Category)
	case wallet.AdvisoryOverBudget:
		return fmt.Sprintf("WARNING: budget for %q exceeded: spent %s of %s (overspend %s).",
			a.Category, a.Spent.StringFixed(2), a.Limit.StringFixed(2), a.Overspend.StringFixed(2))
	case wallet.AdvisoryNinetyPercent:
		return fmt.Sprintf("Caution: over 90%% of the %q budget used: spent %s of %s.",
			a.Category, a.Spent.StringFixed(2), a.Limit.StringFixed(2))
	case wallet.AdvisoryEightyPercent:
		return fmt.Sprintf("Note: over 80%% of the %q budget used: spent %s of %s.",
			a.Category, a.Spent.StringFixed(2), a.Limit.StringFixed(2))
	case wallet.AdvisoryLowBalance:
		return fmt.Sprintf("WARNING: your balance is zero or negative (%s).", a.Balance.StringFixed(2))
	default:
		return ""
	}
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recent transactions, newest first",
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
			recent := report.Recent(account.Wallet, cfg.RecentLimit)
			if len(recent) == 0 {
				fmt.Fprintln(out, "No transactions yet.")
				return nil
			}

			fmt.Fprintf(out, "%-10s | %-7s | %-15s | %-10s | %s\n", "Date", "Type", "Category", "Amount", "Description")
			fmt.Fprintln(out, "-----------+---------+-----------------+------------+------------------------")
			for _, tx := range recent {
				label := "income"
				if tx.Type == model.TypeExpense {
					label = "expense"
				}
				fmt.Fprintf(out, "%-10s | %-7s | %-15s | %-10s | %s\n",
					tx.Date.Format(dateFormat), label, tx.Category, tx.Amount.StringFixed(2), tx.Description)
			}
			return nil
		},
	}
}
