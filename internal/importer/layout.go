package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cleared-dev/moneyreport/internal/model"
)

// layout locates the date, description and amount columns of a bank export
// that starts with a header row. Header names are never checked.
type layout struct {
	name      string
	numFields int
	colDate   int
	colDesc   int
	colAmount int
	parseDate func(string) (time.Time, error)
}

// parse reads an export in file order. Quotes inside unquoted fields are
// kept literally. An empty file, or one whose first row already parses as a
// transaction, is ErrMissingHeader.
func (l layout) parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = l.numFields
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s CSV: %w", l.name, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: file is empty", ErrMissingHeader)
	}
	if _, err := l.parseDate(records[0][l.colDate]); err == nil {
		return nil, fmt.Errorf("%w: first row %q looks like a transaction", ErrMissingHeader, strings.Join(records[0], ","))
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := l.parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func (l layout) parseRow(rec []string) (model.Transaction, error) {
	date, err := l.parseDate(rec[l.colDate])
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := NormalizeAmount(rec[l.colAmount])
	if err != nil {
		return model.Transaction{}, err
	}

	return model.Transaction{
		Date:        date,
		Description: rec[l.colDesc],
		Amount:      amount,
	}, nil
}
