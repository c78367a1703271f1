// Package categorize assigns lookup categories to parsed transactions.
package categorize

import (
	"github.com/cleared-dev/moneyreport/internal/model"
)

// Lookup resolves a description to a category by exact match.
type Lookup interface {
	Category(description string) (string, bool)
}

// Categorize resolves description against lk. Descriptions with no entry get
// model.Unknown and matched=false.
func Categorize(lk Lookup, description string) (category string, matched bool) {
	if c, ok := lk.Category(description); ok {
		return c, true
	}
	return model.Unknown, false
}

// Categorizer applies a Lookup to transactions and accumulates the
// descriptions it could not resolve across every call.
type Categorizer struct {
	lookup    Lookup
	unmatched Unmatched
}

// New creates a Categorizer over lk.
func New(lk Lookup) *Categorizer {
	return &Categorizer{lookup: lk}
}

// Apply sets Category on every transaction in txns.
func (c *Categorizer) Apply(txns []model.Transaction) {
	for i := range txns {
		category, ok := Categorize(c.lookup, txns[i].Description)
		if !ok {
			c.unmatched.Add(txns[i].Description)
		}
		txns[i].Category = category
	}
}

// Unmatched returns the descriptions with no lookup entry, in first-seen order.
func (c *Categorizer) Unmatched() []string {
	return c.unmatched.List()
}
