// Package wallet implements the ledger mutations: recording transactions,
// setting budgets, and renaming categories. All validation happens here,
// before the model is touched; a failed call leaves the wallet unchanged.
package wallet

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbook-dev/finbook/internal/model"
	"github.com/finbook-dev/finbook/internal/normalize"
)

// ValidationError reports malformed input rejected before any mutation.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}

// NotFoundError reports a category rename that matched neither a
// transaction nor a budget.
type NotFoundError struct {
	Category string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("category %q not found in transactions or budgets", e.Category)
}

var (
	eightyPercent = decimal.New(8, -1)
	ninetyPercent = decimal.New(9, -1)
)

// AddIncome records an income transaction and raises the balance.
func AddIncome(w *model.Wallet, amount decimal.Decimal, category, description string, date time.Time) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	if err := validateCategory(category); err != nil {
		return err
	}
	w.AddTransaction(&model.Transaction{
		Type:        model.TypeIncome,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
	})
	return nil
}

// AddExpense records an expense transaction, lowers the balance, and
// returns zero or more advisories: a budget advisory first (if any), then
// a low-balance advisory (if the balance dropped to zero or below). The
// transaction is always recorded; advisories never block the mutation.
func AddExpense(w *model.Wallet, amount decimal.Decimal, category, description string, date time.Time) ([]Advisory, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if err := validateCategory(category); err != nil {
		return nil, err
	}
	w.AddTransaction(&model.Transaction{
		Type:        model.TypeExpense,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
	})

	var advisories []Advisory
	spent := w.SpentForCategoryInMonth(category, date.Year(), date.Month())
	if budget, ok := w.Budget(category); !ok {
		advisories = append(advisories, Advisory{Kind: AdvisoryNoBudget, Category: category})
	} else {
		// Thresholds are mutually exclusive, checked in descending order.
		switch {
		case spent.GreaterThan(budget.Limit):
			advisories = append(advisories, Advisory{
				Kind:      AdvisoryOverBudget,
				Category:  budget.Name,
				Spent:     spent,
				Limit:     budget.Limit,
				Overspend: spent.Sub(budget.Limit),
			})
		case spent.GreaterThanOrEqual(budget.Limit.Mul(ninetyPercent)):
			advisories = append(advisories, Advisory{
				Kind:     AdvisoryNinetyPercent,
				Category: budget.Name,
				Spent:    spent,
				Limit:    budget.Limit,
			})
		case spent.GreaterThanOrEqual(budget.Limit.Mul(eightyPercent)):
			advisories = append(advisories, Advisory{
				Kind:     AdvisoryEightyPercent,
				Category: budget.Name,
				Spent:    spent,
				Limit:    budget.Limit,
			})
		}
	}

	if !w.Balance().IsPositive() {
		advisories = append(advisories, Advisory{Kind: AdvisoryLowBalance, Balance: w.Balance()})
	}
	return advisories, nil
}

// SetBudget inserts or replaces the monthly limit for a category. Past
// months are never recalculated.
func SetBudget(w *model.Wallet, category string, limit decimal.Decimal) error {
	if err := validateAmount(limit); err != nil {
		return err
	}
	if err := validateCategory(category); err != nil {
		return err
	}
	w.SetBudget(category, limit)
	return nil
}

// RenameCategory rewrites the category of every matching transaction to the
// new display text and relocates a matching budget to the new key with the
// same limit. It fails with NotFoundError only when neither a transaction
// nor a budget matched the old key; a partial match (transactions without a
// budget, or a budget without transactions) succeeds.
func RenameCategory(w *model.Wallet, oldCategory, newCategory string) error {
	if err := validateCategory(oldCategory); err != nil {
		return err
	}
	if err := validateCategory(newCategory); err != nil {
		return err
	}
	oldKey := normalize.Key(oldCategory)
	newKey := normalize.Key(newCategory)
	if oldKey == newKey {
		return ValidationError{Reason: "old and new category are the same"}
	}

	foundInTx := false
	for _, tx := range w.Transactions() {
		if normalize.Key(tx.Category) == oldKey {
			tx.Category = newCategory
			foundInTx = true
		}
	}

	movedBudget := false
	if budget, ok := w.RemoveBudget(oldKey); ok {
		w.SetBudget(newCategory, budget.Limit)
		movedBudget = true
	}

	if !foundInTx && !movedBudget {
		return NotFoundError{Category: oldCategory}
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ValidationError{Reason: "amount must be greater than zero"}
	}
	return nil
}

func validateCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return ValidationError{Reason: "category must not be blank"}
	}
	return nil
}
