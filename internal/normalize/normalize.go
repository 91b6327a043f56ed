// Package normalize produces canonical lookup keys for user-supplied labels.
//
// Categories and usernames are matched case- and whitespace-insensitively
// throughout the ledger; Key is the single equality function for both
// key-spaces.
package normalize

import "strings"

// Key returns the canonical lookup form of a label: leading and trailing
// whitespace stripped, then lowercased. Blank input is rejected by callers
// before it reaches a key-space.
func Key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
