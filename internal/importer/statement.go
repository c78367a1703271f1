package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/moneyreport/internal/model"
)

var (
	// ErrDateFormat is returned when a date does not match the export's layout.
	ErrDateFormat = errors.New("invalid date")
	// ErrAmountParse is returned when an amount has no parsable number.
	ErrAmountParse = errors.New("invalid amount")
	// ErrMissingHeader is returned for an empty export, or one whose first
	// row is already a transaction and would otherwise be lost as the header.
	ErrMissingHeader = errors.New("statement has no header row")
)

// StatementParser parses 3-column date,description,amount exports. Header
// names are ignored; columns are taken by position.
type StatementParser struct{}

const statementDateFormat = "2/1/2006"

var statementLayout = layout{
	name:      "statement",
	numFields: 3,
	colDate:   0,
	colDesc:   1,
	colAmount: 2,
	parseDate: ParseDate,
}

// Format returns the parser name.
func (p *StatementParser) Format() string { return "statement" }

// Parse reads a statement CSV and returns uncategorized transactions in file
// order.
func (p *StatementParser) Parse(r io.Reader) ([]model.Transaction, error) {
	return statementLayout.parse(r)
}

// ParseDate parses a DD/MM/YYYY date. No other layout is attempted.
func ParseDate(s string) (time.Time, error) {
	date, err := time.Parse(statementDateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: want DD/MM/YYYY", ErrDateFormat, s)
	}
	return date, nil
}

// NormalizeAmount drops every character other than digits, '.' and '-' and
// parses the rest, so "$1,234.56" is 1234.56 and "-  12.00 " is -12.00.
func NormalizeAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w %q", ErrAmountParse, s)
	}
	return amount, nil
}
