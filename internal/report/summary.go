// Package report derives read-only display lines from a wallet: the current
// month summary, filtered historical reports, and the recent-transaction
// list. Nothing here mutates the model.
package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbook-dev/finbook/internal/model"
	"github.com/finbook-dev/finbook/internal/normalize"
)

var (
	eightyPercent = decimal.New(8, -1)
	ninetyPercent = decimal.New(9, -1)
)

// Summary builds the current-month overview: balance, lifetime totals, one
// row per budget (insertion order) with spend, limit, remaining and status,
// and a trailing section for categories with spend but no budget.
func Summary(w *model.Wallet, today time.Time) []string {
	year, month := today.Year(), today.Month()

	lines := []string{
		fmt.Sprintf("Balance: %s", w.Balance().StringFixed(2)),
		fmt.Sprintf("Total income: %s, total expense: %s",
			w.TotalByType(model.TypeIncome).StringFixed(2),
			w.TotalByType(model.TypeExpense).StringFixed(2)),
		"",
		fmt.Sprintf("Current month: %02d.%04d", month, year),
	}

	spentByCategory := w.ExpensesByCategoryForMonth(year, month)
	budgets := w.Budgets()

	if len(budgets) == 0 {
		lines = append(lines, "No budgets defined.")
	} else {
		lines = append(lines,
			"Budgets and spending by category (current month):",
			fmt.Sprintf("%-20s | %-10s | %-10s | %-10s | %-12s",
				"Category", "Spent", "Limit", "Remaining", "Status"),
			"---------------------+------------+------------+------------+-------------",
		)
		for _, budget := range budgets {
			key := normalize.Key(budget.Name)
			spent := spentByCategory[key]
			remaining := budget.Limit.Sub(spent)
			lines = append(lines, fmt.Sprintf("%-20s | %-10s | %-10s | %-10s | %-12s",
				key, spent.StringFixed(2), budget.Limit.StringFixed(2),
				remaining.StringFixed(2), budgetStatus(spent, budget.Limit)))
		}
	}

	// Categories with spend this month but no budget, in first-seen
	// transaction order.
	headerWritten := false
	for _, key := range unbudgetedCategories(w, year, month) {
		if !headerWritten {
			lines = append(lines,
				"",
				"Spending without a budget:",
				fmt.Sprintf("%-20s | %-10s", "Category", "Spent"),
				"---------------------+------------",
			)
			headerWritten = true
		}
		lines = append(lines, fmt.Sprintf("%-20s | %-10s", key, spentByCategory[key].StringFixed(2)))
	}

	return lines
}

// budgetStatus picks the status label in priority order: overspent, 90%+,
// 80%+, untouched, OK.
func budgetStatus(spent, limit decimal.Decimal) string {
	switch {
	case spent.GreaterThan(limit):
		return "overspent"
	case spent.GreaterThanOrEqual(limit.Mul(ninetyPercent)):
		return "90%+"
	case spent.GreaterThanOrEqual(limit.Mul(eightyPercent)):
		return "80%+"
	case spent.IsZero():
		return "not spent"
	default:
		return "OK"
	}
}

// unbudgetedCategories returns the normalized keys of categories with
// expenses in the month but no budget, ordered by first occurrence in the
// transaction log.
func unbudgetedCategories(w *model.Wallet, year int, month time.Month) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, tx := range w.Transactions() {
		if tx.Type != model.TypeExpense {
			continue
		}
		if tx.Date.Year() != year || tx.Date.Month() != month {
			continue
		}
		key := normalize.Key(tx.Category)
		if seen[key] || w.HasBudgetKey(key) {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	return keys
}
