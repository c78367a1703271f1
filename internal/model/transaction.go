package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unknown is the category given to a transaction whose description has no
// lookup entry.
const Unknown = "unknown"

// Transaction is one row of a statement export after parsing.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // negative = money out, positive = money in
	Category    string
}

// Categorized reports whether the transaction resolved to a real category.
func (t Transaction) Categorized() bool {
	return t.Category != "" && t.Category != Unknown
}
