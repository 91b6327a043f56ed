package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finbook-dev/finbook/internal/report"
)

func newSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the current-month summary with budget status",
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

			for _, line := range report.Summary(account.Wallet, today()) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}

func newReportCommand() *cobra.Command {
	var fromStr, toStr, categories string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report over a date range and category selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var from, to time.Time
			var err error
			if fromStr != "" {
				if from, err = parseDate(fromStr); err != nil {
					return err
				}
			}
			if toStr != "" {
				if to, err = parseDate(toStr); err != nil {
					return err
				}
			}
			if !from.IsZero() && !to.IsZero() && to.Before(from) {
				return fmt.Errorf("invalid range: end date %s is before start date %s", toStr, fromStr)
			}

			cfg, registry, err := openRegistry(cmd)
			if err != nil {
				return err
			}
			account, err := requireAccount(cfg, registry)
			if err != nil {
				return err
			}

			filter := report.Filter{From: from, To: to, Categories: parseCategorySet(categories)}
			for _, line := range report.Filtered(account.Wallet, filter) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "start date YYYY-MM-DD (default: unbounded)")
	cmd.Flags().StringVar(&toStr, "to", "", "end date YYYY-MM-DD (default: unbounded)")
	cmd.Flags().StringVar(&categories, "categories", "", "comma-separated categories (default: all)")

	return cmd
}
