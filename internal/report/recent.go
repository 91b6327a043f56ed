package report

import (
	"sort"

	"github.com/finbook-dev/finbook/internal/model"
)

// DefaultRecentLimit caps the recent-transaction listing.
const DefaultRecentLimit = 50

// Recent returns up to limit transactions sorted by date, newest first.
// Transactions sharing a date have no guaranteed relative order.
func Recent(w *model.Wallet, limit int) []*model.Transaction {
	all := w.Transactions()
	out := make([]*model.Transaction, len(all))
	copy(out, all)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
