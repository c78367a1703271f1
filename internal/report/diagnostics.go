package report

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/moneyreport/internal/model"
)

// UnmatchedBanner precedes the unmatched description listing.
const UnmatchedBanner = "These are the transaction descriptions that are not found in the category lookup"

// MissingLookupHint is printed when the category lookup file does not exist.
const MissingLookupHint = `No %s found.
Create the file, and populate it with rows of
    description,category
A list of descriptions without a category will be given at the end of this run.
`

// PrintUnmatched prints the banner, one description per line, then the count.
func PrintUnmatched(w io.Writer, unmatched []string) error {
	if _, err := fmt.Fprintln(w, UnmatchedBanner); err != nil {
		return err
	}
	for _, desc := range unmatched {
		if _, err := fmt.Fprintln(w, desc); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, len(unmatched))
	return err
}

// CategoryTotal aggregates the transactions of one category.
type CategoryTotal struct {
	Category string
	Count    int
	Total    decimal.Decimal
}

// Summarize totals txns per category, sorted by category name.
func Summarize(txns []model.Transaction) []CategoryTotal {
	byCategory := make(map[string]*CategoryTotal)
	for _, txn := range txns {
		ct, ok := byCategory[txn.Category]
		if !ok {
			ct = &CategoryTotal{Category: txn.Category}
			byCategory[txn.Category] = ct
		}
		ct.Count++
		ct.Total = ct.Total.Add(txn.Amount)
	}

	totals := make([]CategoryTotal, 0, len(byCategory))
	for _, ct := range byCategory {
		totals = append(totals, *ct)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Category < totals[j].Category })
	return totals
}

// PrintSummary prints totals as an aligned table.
func PrintSummary(w io.Writer, totals []CategoryTotal) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "category\tcount\ttotal")
	for _, ct := range totals {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", ct.Category, ct.Count, FormatAmount(ct.Total))
	}
	return tw.Flush()
}
