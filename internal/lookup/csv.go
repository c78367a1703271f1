package lookup

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

const (
	numFields   = 2
	colDesc     = 0
	colCategory = 1
)

// ErrMalformedRow is returned when a lookup row has fewer than two fields.
var ErrMalformedRow = errors.New("malformed lookup row")

// Entry is one description -> category row of the lookup file.
type Entry struct {
	Description string
	Category    string
}

// ReadEntries reads a headerless description,category file in file order.
// Extra fields past the category are ignored and quotes inside unquoted
// fields are kept literally.
func ReadEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var entries []Entry
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading lookup CSV: %w", err)
		}
		entry, err := UnmarshalEntry(rec)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// WriteEntries writes entries without a header, so the output can be appended
// to an existing lookup file.
func WriteEntries(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colDesc] = e.Description
	row[colCategory] = e.Category
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) < numFields {
		return Entry{}, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedRow, numFields, len(record))
	}
	return Entry{
		Description: record[colDesc],
		Category:    record[colCategory],
	}, nil
}
