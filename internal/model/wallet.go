package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbook-dev/finbook/internal/normalize"
)

// TransactionType classifies a transaction as money in or money out.
type TransactionType string

const (
	TypeIncome  TransactionType = "INCOME"
	TypeExpense TransactionType = "EXPENSE"
)

// Transaction is a single recorded operation. Amount is strictly positive;
// the sign is carried by Type. Category is the display text as entered and
// may be rewritten by a category rename; everything else is immutable once
// recorded. Transactions are never deleted or reordered.
type Transaction struct {
	Type        TransactionType
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        time.Time
}

// Budget is a monthly spending ceiling for one category. Name is the
// category display text; the wallet keys budgets by normalized category.
type Budget struct {
	Name  string
	Limit decimal.Decimal
}

// Wallet is the complete financial state of one account: running balance,
// append-only transaction log (insertion order, not date order), and
// per-category budgets in insertion order.
//
// Invariant: balance == sum(INCOME amounts) - sum(EXPENSE amounts) over the
// whole log. AddTransaction maintains it incrementally; rebuilding a wallet
// from a transaction log restores it by construction.
type Wallet struct {
	balance      decimal.Decimal
	transactions []*Transaction
	budgets      map[string]*Budget
	budgetOrder  []string
}

// NewWallet creates an empty wallet with a zero balance.
func NewWallet() *Wallet {
	return &Wallet{
		balance: decimal.Zero,
		budgets: make(map[string]*Budget),
	}
}

// Balance returns the current balance.
func (w *Wallet) Balance() decimal.Decimal {
	return w.balance
}

// Transactions returns the transaction log in storage order.
func (w *Wallet) Transactions() []*Transaction {
	return w.transactions
}

// AddTransaction appends a transaction and adjusts the balance.
func (w *Wallet) AddTransaction(tx *Transaction) {
	w.transactions = append(w.transactions, tx)
	switch tx.Type {
	case TypeIncome:
		w.balance = w.balance.Add(tx.Amount)
	case TypeExpense:
		w.balance = w.balance.Sub(tx.Amount)
	}
}

// SetBudget inserts or wholesale-replaces the budget at the category's
// normalized key. A replaced budget keeps its position in insertion order;
// a new key is appended.
func (w *Wallet) SetBudget(category string, limit decimal.Decimal) {
	key := normalize.Key(category)
	if _, ok := w.budgets[key]; !ok {
		w.budgetOrder = append(w.budgetOrder, key)
	}
	w.budgets[key] = &Budget{Name: category, Limit: limit}
}

// Budget returns the budget for a category, matched by normalized key.
func (w *Wallet) Budget(category string) (*Budget, bool) {
	b, ok := w.budgets[normalize.Key(category)]
	return b, ok
}

// HasBudgetKey reports whether a budget exists at a normalized key.
func (w *Wallet) HasBudgetKey(key string) bool {
	_, ok := w.budgets[key]
	return ok
}

// RemoveBudget deletes and returns the budget at a normalized key.
func (w *Wallet) RemoveBudget(key string) (*Budget, bool) {
	b, ok := w.budgets[key]
	if !ok {
		return nil, false
	}
	delete(w.budgets, key)
	for i, k := range w.budgetOrder {
		if k == key {
			w.budgetOrder = append(w.budgetOrder[:i], w.budgetOrder[i+1:]...)
			break
		}
	}
	return b, true
}

// Budgets returns all budgets in insertion order.
func (w *Wallet) Budgets() []*Budget {
	out := make([]*Budget, 0, len(w.budgetOrder))
	for _, key := range w.budgetOrder {
		out = append(out, w.budgets[key])
	}
	return out
}

// TotalByType sums the amounts of all transactions of one type.
func (w *Wallet) TotalByType(t TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range w.transactions {
		if tx.Type == t {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// SpentForCategoryInMonth sums EXPENSE amounts for one category (matched by
// normalized key) within one calendar month.
func (w *Wallet) SpentForCategoryInMonth(category string, year int, month time.Month) decimal.Decimal {
	key := normalize.Key(category)
	total := decimal.Zero
	for _, tx := range w.transactions {
		if tx.Type != TypeExpense {
			continue
		}
		if normalize.Key(tx.Category) != key {
			continue
		}
		if tx.Date.Year() != year || tx.Date.Month() != month {
			continue
		}
		total = total.Add(tx.Amount)
	}
	return total
}

// ExpensesByCategoryForMonth aggregates EXPENSE amounts by normalized
// category for one calendar month. Categories with no spend are absent.
func (w *Wallet) ExpensesByCategoryForMonth(year int, month time.Month) map[string]decimal.Decimal {
	result := make(map[string]decimal.Decimal)
	for _, tx := range w.transactions {
		if tx.Type != TypeExpense {
			continue
		}
		if tx.Date.Year() != year || tx.Date.Month() != month {
			continue
		}
		key := normalize.Key(tx.Category)
		result[key] = result[key].Add(tx.Amount)
	}
	return result
}
