// Package store persists the whole account registry as a YAML snapshot.
// Wallet balances are not stored; they are rebuilt from the transaction log
// on load, so the balance invariant holds by construction.
package store

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/finbook-dev/finbook/internal/model"
	"github.com/finbook-dev/finbook/internal/normalize"
)

const dateFormat = "2006-01-02"

type snapshot struct {
	Accounts []accountRecord `yaml:"accounts"`
}

type accountRecord struct {
	Username     string              `yaml:"username"`
	Password     string              `yaml:"password"`
	Budgets      []budgetRecord      `yaml:"budgets,omitempty"`
	Transactions []transactionRecord `yaml:"transactions,omitempty"`
}

type budgetRecord struct {
	Name  string `yaml:"name"`
	Limit string `yaml:"limit"`
}

type transactionRecord struct {
	Date        string `yaml:"date"`
	Type        string `yaml:"type"`
	Category    string `yaml:"category"`
	Description string `yaml:"description,omitempty"`
	Amount      string `yaml:"amount"`
}

// Load reads a registry snapshot. A missing, unreadable, or corrupt
// snapshot degrades to an empty registry with a warning on stderr; startup
// never fails because of the snapshot.
func Load(path string) *model.Registry {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "warning: cannot read snapshot %s: %v; starting empty\n", path, err)
		}
		return model.NewRegistry()
	}

	var snap snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		fmt.Fprintf(os.Stderr, "warning: snapshot %s is corrupt: %v; starting empty\n", path, err)
		return model.NewRegistry()
	}

	registry, err := restore(&snap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: snapshot %s is corrupt: %v; starting empty\n", path, err)
		return model.NewRegistry()
	}
	return registry
}

// Save writes the registry snapshot, replacing any previous one.
func Save(path string, registry *model.Registry) error {
	snap := snapshot{Accounts: make([]accountRecord, 0, registry.Len())}

	keys := make([]string, 0, registry.Len())
	for key := range registry.Accounts() {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		account, _ := registry.Lookup(key)
		snap.Accounts = append(snap.Accounts, marshalAccount(account))
	}

	data, err := yaml.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", path, err)
	}
	return nil
}

func marshalAccount(account *model.Account) accountRecord {
	rec := accountRecord{
		Username: account.Username,
		Password: account.Password,
	}
	for _, budget := range account.Wallet.Budgets() {
		rec.Budgets = append(rec.Budgets, budgetRecord{
			Name:  budget.Name,
			Limit: budget.Limit.String(),
		})
	}
	for _, tx := range account.Wallet.Transactions() {
		rec.Transactions = append(rec.Transactions, transactionRecord{
			Date:        tx.Date.Format(dateFormat),
			Type:        string(tx.Type),
			Category:    tx.Category,
			Description: tx.Description,
			Amount:      tx.Amount.String(),
		})
	}
	return rec
}

func restore(snap *snapshot) (*model.Registry, error) {
	registry := model.NewRegistry()
	for _, rec := range snap.Accounts {
		account := model.NewAccount(rec.Username, rec.Password)

		// Budgets keep snapshot order, which is insertion order at save time.
		for _, b := range rec.Budgets {
			limit, err := decimal.NewFromString(b.Limit)
			if err != nil {
				return nil, fmt.Errorf("account %q: budget %q: bad limit %q", rec.Username, b.Name, b.Limit)
			}
			account.Wallet.SetBudget(b.Name, limit)
		}

		for i, txr := range rec.Transactions {
			date, err := time.Parse(dateFormat, txr.Date)
			if err != nil {
				return nil, fmt.Errorf("account %q: transaction %d: bad date %q", rec.Username, i, txr.Date)
			}
			amount, err := decimal.NewFromString(txr.Amount)
			if err != nil {
				return nil, fmt.Errorf("account %q: transaction %d: bad amount %q", rec.Username, i, txr.Amount)
			}
			account.Wallet.AddTransaction(&model.Transaction{
				Type:        model.TransactionType(txr.Type),
				Amount:      amount,
				Category:    txr.Category,
				Description: txr.Description,
				Date:        date,
			})
		}

		registry.Add(normalize.Key(rec.Username), account)
	}
	return registry, nil
}
