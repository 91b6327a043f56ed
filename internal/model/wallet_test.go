package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tx(t TransactionType, amount, category string, day time.Time) *Transaction {
	return &Transaction{Type: t, Amount: dec(amount), Category: category, Description: "test", Date: day}
}

func TestAddTransaction_BalanceInvariant(t *testing.T) {
	w := NewWallet()
	day := date(2025, time.January, 10)

	steps := []struct {
		typ    TransactionType
		amount string
		want   string
	}{
		{TypeIncome, "5000.00", "5000.00"},
		{TypeExpense, "1200.50", "3799.50"},
		{TypeExpense, "799.50", "3000.00"},
		{TypeIncome, "0.01", "3000.01"},
		{TypeExpense, "4000.01", "-1000.00"},
	}
	for _, s := range steps {
		w.AddTransaction(tx(s.typ, s.amount, "misc", day))
		assert.True(t, w.Balance().Equal(dec(s.want)), "balance after %s %s: got %s want %s",
			s.typ, s.amount, w.Balance(), s.want)
		// Invariant holds at every point, not only at the end.
		assert.True(t, w.Balance().Equal(w.TotalByType(TypeIncome).Sub(w.TotalByType(TypeExpense))))
	}
	assert.Len(t, w.Transactions(), len(steps))
}

func TestSetBudget_ReplaceKeepsOrder(t *testing.T) {
	w := NewWallet()
	w.SetBudget("Food", dec("2000"))
	w.SetBudget("Rent", dec("15000"))
	w.SetBudget("Transport", dec("1000"))

	// Wholesale replacement at the same normalized key keeps position.
	w.SetBudget("  FOOD ", dec("2500"))

	budgets := w.Budgets()
	require.Len(t, budgets, 3)
	assert.Equal(t, "  FOOD ", budgets[0].Name)
	assert.True(t, budgets[0].Limit.Equal(dec("2500")))
	assert.Equal(t, "Rent", budgets[1].Name)
	assert.Equal(t, "Transport", budgets[2].Name)
}

func TestBudget_NormalizedLookup(t *testing.T) {
	w := NewWallet()
	w.SetBudget("Еда", dec("2000"))

	b, ok := w.Budget(" еда ")
	require.True(t, ok)
	assert.Equal(t, "Еда", b.Name)

	_, ok = w.Budget("transport")
	assert.False(t, ok)
}

func TestRemoveBudget(t *testing.T) {
	w := NewWallet()
	w.SetBudget("Food", dec("2000"))
	w.SetBudget("Rent", dec("15000"))

	b, ok := w.RemoveBudget("food")
	require.True(t, ok)
	assert.Equal(t, "Food", b.Name)
	assert.False(t, w.HasBudgetKey("food"))

	budgets := w.Budgets()
	require.Len(t, budgets, 1)
	assert.Equal(t, "Rent", budgets[0].Name)

	_, ok = w.RemoveBudget("food")
	assert.False(t, ok)
}

func TestSpentForCategoryInMonth(t *testing.T) {
	w := NewWallet()
	w.AddTransaction(tx(TypeExpense, "100", "Food", date(2025, time.January, 5)))
	w.AddTransaction(tx(TypeExpense, "250", " food ", date(2025, time.January, 20)))
	w.AddTransaction(tx(TypeExpense, "400", "Food", date(2025, time.February, 1)))
	w.AddTransaction(tx(TypeExpense, "75", "Transport", date(2025, time.January, 6)))
	w.AddTransaction(tx(TypeIncome, "9999", "Food", date(2025, time.January, 7)))

	spent := w.SpentForCategoryInMonth("FOOD", 2025, time.January)
	assert.True(t, spent.Equal(dec("350")), "got %s", spent)

	assert.True(t, w.SpentForCategoryInMonth("food", 2025, time.March).IsZero())
}

func TestExpensesByCategoryForMonth(t *testing.T) {
	w := NewWallet()
	w.AddTransaction(tx(TypeExpense, "100", "Food", date(2025, time.January, 5)))
	w.AddTransaction(tx(TypeExpense, "50", "FOOD", date(2025, time.January, 6)))
	w.AddTransaction(tx(TypeExpense, "75", "Transport", date(2025, time.January, 6)))
	w.AddTransaction(tx(TypeExpense, "999", "Food", date(2024, time.January, 6)))
	w.AddTransaction(tx(TypeIncome, "5000", "Salary", date(2025, time.January, 1)))

	byCat := w.ExpensesByCategoryForMonth(2025, time.January)
	require.Len(t, byCat, 2)
	assert.True(t, byCat["food"].Equal(dec("150")))
	assert.True(t, byCat["transport"].Equal(dec("75")))
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, 0, r.Len())
	assert.False(t, r.Contains("ivan"))

	a := NewAccount("Ivan", "1234")
	r.Add("ivan", a)

	got, ok := r.Lookup("ivan")
	require.True(t, ok)
	assert.Same(t, a, got)
	assert.True(t, r.Contains("ivan"))
	assert.Equal(t, 1, r.Len())

	assert.True(t, a.CheckPassword("1234"))
	assert.False(t, a.CheckPassword("12345"))
	assert.True(t, a.Wallet.Balance().IsZero())
}
