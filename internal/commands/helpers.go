package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/finbook-dev/finbook/internal/config"
	"github.com/finbook-dev/finbook/internal/model"
	"github.com/finbook-dev/finbook/internal/normalize"
	"github.com/finbook-dev/finbook/internal/store"
)

const dateFormat = "2006-01-02"

// loadConfig resolves the --config flag and loads the configuration.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

// openRegistry loads the config and the registry snapshot.
func openRegistry(cmd *cobra.Command) (*config.Config, *model.Registry, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	return cfg, store.Load(cfg.DataFile), nil
}

// requireAccount resolves the current session to an account.
func requireAccount(cfg *config.Config, registry *model.Registry) (*model.Account, error) {
	key, err := loadSession(cfg.SessionFile)
	if err != nil {
		return nil, err
	}
	if key == "" {
		return nil, fmt.Errorf("not logged in: run 'finbook register' or 'finbook login' first")
	}
	account, ok := registry.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("session user %q no longer exists: run 'finbook login'", key)
	}
	return account, nil
}

// parseAmount parses a strictly positive decimal, accepting both '.' and
// ',' as the decimal separator.
func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: expected a number like 123.45", s)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be greater than zero")
	}
	return amount, nil
}

// parseDate parses a YYYY-MM-DD date.
func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return d, nil
}

// parseCategorySet splits a comma-separated category list into a set of
// normalized keys. Blank entries are dropped; an empty result means all
// categories.
func parseCategorySet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		key := normalize.Key(part)
		if key != "" {
			set[key] = true
		}
	}
	return set
}

// today returns the current date truncated to midnight UTC.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
