package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Food", "food"},
		{"  Food  ", "food"},
		{"food", "food"},
		{"GROCERIES", "groceries"},
		{"Еда", "еда"},
		{"\tЗП ", "зп"},
		{"Rent & Utilities", "rent & utilities"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Key(tt.in), "Key(%q)", tt.in)
	}
}
