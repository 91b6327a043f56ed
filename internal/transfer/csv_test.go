package transfer

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbook-dev/finbook/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExport_HeaderAndQuoting(t *testing.T) {
	txs := []*model.Transaction{
		{Type: model.TypeIncome, Amount: dec("5000"), Category: "Salary", Description: "october pay", Date: day(2025, time.October, 1)},
		{Type: model.TypeExpense, Amount: dec("12.50"), Category: "Food, drinks", Description: `said "hello"`, Date: day(2025, time.October, 2)},
	}

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, txs))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, "2025-10-01,INCOME,Salary,october pay,5000", lines[1])
	assert.Equal(t, `2025-10-02,EXPENSE,"Food, drinks","said ""hello""",12.5`, lines[2])
}

func TestRoundTrip(t *testing.T) {
	source := model.NewWallet()
	source.AddTransaction(&model.Transaction{Type: model.TypeIncome, Amount: dec("5000"), Category: "ЗП", Description: "salary", Date: day(2025, time.January, 5)})
	source.AddTransaction(&model.Transaction{Type: model.TypeExpense, Amount: dec("1234.56"), Category: "Еда", Description: "groceries, market", Date: day(2025, time.January, 6)})
	source.AddTransaction(&model.Transaction{Type: model.TypeExpense, Amount: dec("0.99"), Category: "Misc", Description: "", Date: day(2025, time.February, 1)})

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, source.Transactions()))

	dest := model.NewWallet()
	imported, err := Import(&buf, dest)
	require.NoError(t, err)
	assert.Equal(t, 3, imported)
	require.Len(t, dest.Transactions(), 3)
	assert.True(t, dest.Balance().Equal(source.Balance()),
		"round-trip balance: got %s want %s", dest.Balance(), source.Balance())
	assert.Equal(t, "Еда", dest.Transactions()[1].Category)
}

func TestImport_SkipsBadRows(t *testing.T) {
	input := strings.Join([]string{
		Header,
		"2025-01-05,INCOME,Salary,january pay,5000",
		"",
		"2025-01-06,EXPENSE,Food",                  // too few fields
		"2025-01-07,EXPENSE,Food,groceries,-10",    // non-positive amount
		"2025-01-08,EXPENSE,Food,groceries,0",      // non-positive amount
		"not-a-date,EXPENSE,Food,groceries,10",     // bad date
		"2025-01-09,EXPENSE,Food,groceries,oops",   // bad amount
		`2025-01-10,EXPENSE,"Food, drinks",bar,25`, // quoted comma, valid
	}, "\n")

	w := model.NewWallet()
	imported, err := Import(strings.NewReader(input), w)
	require.NoError(t, err)
	assert.Equal(t, 2, imported)
	require.Len(t, w.Transactions(), 2)
	assert.True(t, w.Balance().Equal(dec("4975")))
	assert.Equal(t, "Food, drinks", w.Transactions()[1].Category)
}

func TestImport_CommaDecimalAndLooseType(t *testing.T) {
	input := strings.Join([]string{
		Header,
		"2025-01-05,income,Salary,lowercase type,100",
		"2025-01-06,TRANSFER,Misc,unknown type becomes expense,\"30,50\"",
	}, "\n")

	w := model.NewWallet()
	imported, err := Import(strings.NewReader(input), w)
	require.NoError(t, err)
	require.Equal(t, 2, imported)

	assert.Equal(t, model.TypeIncome, w.Transactions()[0].Type)
	assert.Equal(t, model.TypeExpense, w.Transactions()[1].Type)
	assert.True(t, w.Transactions()[1].Amount.Equal(dec("30.50")))
	assert.True(t, w.Balance().Equal(dec("69.50")))
}

func TestImport_EmptyInput(t *testing.T) {
	w := model.NewWallet()

	imported, err := Import(strings.NewReader(""), w)
	require.NoError(t, err)
	assert.Zero(t, imported)

	imported, err = Import(strings.NewReader(Header+"\n"), w)
	require.NoError(t, err)
	assert.Zero(t, imported)
	assert.Empty(t, w.Transactions())
}
