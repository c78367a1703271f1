package importer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cleared-dev/moneyreport/internal/model"
)

// ChaseParser reads US checking exports with columns
// Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #.
// Only date, description and amount are kept.
type ChaseParser struct{}

var chaseLayout = layout{
	name:      "chase",
	numFields: 7,
	colDate:   1,
	colDesc:   2,
	colAmount: 3,
	parseDate: parseUSDate,
}

// Format returns the parser name.
func (p *ChaseParser) Format() string { return "chase" }

// Parse returns uncategorized transactions in file order.
func (p *ChaseParser) Parse(r io.Reader) ([]model.Transaction, error) {
	return chaseLayout.parse(r)
}

// parseUSDate parses MM/DD/YYYY.
func parseUSDate(s string) (time.Time, error) {
	date, err := time.Parse("1/2/2006", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: want MM/DD/YYYY", ErrDateFormat, s)
	}
	return date, nil
}
