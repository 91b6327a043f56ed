package wallet

import "github.com/shopspring/decimal"

// AdvisoryKind tags the non-blocking notifications an expense can trigger.
type AdvisoryKind string

const (
	// AdvisoryNoBudget: the expense category has no budget.
	AdvisoryNoBudget AdvisoryKind = "no-budget"
	// AdvisoryEightyPercent: monthly spend reached 80% of the limit.
	AdvisoryEightyPercent AdvisoryKind = "80-percent"
	// AdvisoryNinetyPercent: monthly spend reached 90% of the limit.
	AdvisoryNinetyPercent AdvisoryKind = "90-percent"
	// AdvisoryOverBudget: monthly spend exceeded the limit.
	AdvisoryOverBudget AdvisoryKind = "over-budget"
	// AdvisoryLowBalance: the wallet balance is zero or negative.
	AdvisoryLowBalance AdvisoryKind = "low-balance"
)

// Advisory is a non-blocking notification returned alongside a recorded
// expense. The caller decides how to render it; the fields populated depend
// on Kind.
type Advisory struct {
	Kind      AdvisoryKind
	Category  string          // budget display name, or the entered category for no-budget
	Spent     decimal.Decimal // monthly spend including the new expense
	Limit     decimal.Decimal // budget limit, when a budget exists
	Overspend decimal.Decimal // spent - limit, over-budget only
	Balance   decimal.Decimal // current balance, low-balance only
}
