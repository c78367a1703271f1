package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionCategorized(t *testing.T) {
	tests := []struct {
		category string
		want     bool
	}{
		{"Coffee", true},
		{Unknown, false},
		{"", false},
	}
	for _, tt := range tests {
		txn := Transaction{Category: tt.category}
		assert.Equal(t, tt.want, txn.Categorized(), "Categorized(%q)", tt.category)
	}
}
