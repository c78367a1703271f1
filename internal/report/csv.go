// Package report serializes categorized transactions and prints run
// diagnostics.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/moneyreport/internal/model"
)

// Header is the CSV header of the report file.
const Header = "index,date,description,amount,category"

const (
	numFields   = 5
	dateFormat  = "2006-01-02"
	colIndex    = 0
	colDate     = 1
	colDesc     = 2
	colAmount   = 3
	colCategory = 4
)

// Write writes the header and one row per transaction. The index column is
// the 0-based position in txns.
func Write(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, txn := range txns {
		if err := cw.Write(MarshalRow(i, txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the report to path, replacing any existing file.
func WriteFile(path string, txns []model.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	if err := Write(f, txns); err != nil {
		f.Close()
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing report %s: %w", path, err)
	}
	return nil
}

// Read parses a report written by Write. Rows are returned in file order;
// the index column is checked but not kept.
func Read(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading report CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		idx, txn, err := UnmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if idx != i {
			return nil, fmt.Errorf("row %d: index %d out of sequence", i+2, idx)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// MarshalRow converts a transaction at position index to a CSV row.
func MarshalRow(index int, txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colIndex] = strconv.Itoa(index)
	row[colDate] = txn.Date.Format(dateFormat)
	row[colDesc] = txn.Description
	row[colAmount] = FormatAmount(txn.Amount)
	row[colCategory] = txn.Category
	return row
}

// UnmarshalRow converts a CSV row to its index and transaction.
func UnmarshalRow(record []string) (int, model.Transaction, error) {
	if len(record) != numFields {
		return 0, model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	idx, err := strconv.Atoi(record[colIndex])
	if err != nil {
		return 0, model.Transaction{}, fmt.Errorf("parsing index %q: %w", record[colIndex], err)
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return 0, model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return 0, model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return idx, model.Transaction{
		Date:        date,
		Description: record[colDesc],
		Amount:      amount,
		Category:    record[colCategory],
	}, nil
}

// FormatAmount renders at least two decimal places without losing precision.
func FormatAmount(d decimal.Decimal) string {
	if d.Exponent() < -2 {
		return d.String()
	}
	return d.StringFixed(2)
}
