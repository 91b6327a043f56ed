package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbook-dev/finbook/internal/model"
	"github.com/finbook-dev/finbook/internal/normalize"
)

const dateFormat = "2006-01-02"

// Filter selects transactions for a report. Zero From/To mean unbounded;
// Categories holds normalized keys and an empty set means all categories.
// Callers validate To >= From before building a report.
type Filter struct {
	From       time.Time
	To         time.Time
	Categories map[string]bool
}

// Matches reports whether a transaction passes the filter.
func (f Filter) Matches(tx *model.Transaction) bool {
	if !f.From.IsZero() && tx.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && tx.Date.After(f.To) {
		return false
	}
	if len(f.Categories) > 0 && !f.Categories[normalize.Key(tx.Category)] {
		return false
	}
	return true
}

// Filtered builds a historical report over the transactions matching the
// filter: period and category description lines, then either a no-data line
// or the matched transactions in storage order followed by totals and a
// per-category expense breakdown.
func Filtered(w *model.Wallet, filter Filter) []string {
	var matched []*model.Transaction
	for _, tx := range w.Transactions() {
		if filter.Matches(tx) {
			matched = append(matched, tx)
		}
	}

	lines := []string{
		"Period: " + describePeriod(filter.From, filter.To),
		"Categories: " + describeCategories(filter.Categories),
		"",
	}

	if len(matched) == 0 {
		lines = append(lines, "No data for the selected period/categories.")
		return lines
	}

	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	expenseByCategory := make(map[string]decimal.Decimal)
	var categoryOrder []string

	lines = append(lines,
		"Transactions:",
		fmt.Sprintf("%-10s | %-7s | %-15s | %-10s | %s", "Date", "Type", "Category", "Amount", "Description"),
		"-----------+---------+-----------------+------------+------------------------",
	)
	for _, tx := range matched {
		label := "income"
		if tx.Type == model.TypeExpense {
			label = "expense"
			totalExpense = totalExpense.Add(tx.Amount)
			key := normalize.Key(tx.Category)
			if _, seen := expenseByCategory[key]; !seen {
				categoryOrder = append(categoryOrder, key)
			}
			expenseByCategory[key] = expenseByCategory[key].Add(tx.Amount)
		} else {
			totalIncome = totalIncome.Add(tx.Amount)
		}
		lines = append(lines, fmt.Sprintf("%-10s | %-7s | %-15s | %-10s | %s",
			tx.Date.Format(dateFormat), label, tx.Category, tx.Amount.StringFixed(2), tx.Description))
	}

	lines = append(lines,
		"",
		fmt.Sprintf("Total income: %s", totalIncome.StringFixed(2)),
		fmt.Sprintf("Total expense: %s", totalExpense.StringFixed(2)),
	)

	if len(categoryOrder) > 0 {
		lines = append(lines,
			"",
			"Expenses by category:",
			fmt.Sprintf("%-20s | %-10s", "Category", "Spent"),
			"---------------------+------------",
		)
		for _, key := range categoryOrder {
			lines = append(lines, fmt.Sprintf("%-20s | %-10s", key, expenseByCategory[key].StringFixed(2)))
		}
	}

	return lines
}

func describePeriod(from, to time.Time) string {
	switch {
	case from.IsZero() && to.IsZero():
		return "all dates"
	case to.IsZero():
		return "from " + from.Format(dateFormat)
	case from.IsZero():
		return "until " + to.Format(dateFormat)
	default:
		return from.Format(dateFormat) + " to " + to.Format(dateFormat)
	}
}

func describeCategories(categories map[string]bool) string {
	if len(categories) == 0 {
		return "all categories"
	}
	keys := make([]string, 0, len(categories))
	for key := range categories {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
