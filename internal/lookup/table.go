package lookup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrMissingFile is returned by Load when the lookup file does not exist.
// Callers are expected to continue with an empty Table.
var ErrMissingFile = errors.New("category lookup file not found")

// Duplicate records a description that appeared more than once in the
// lookup file. Category is the value that was replaced.
type Duplicate struct {
	Description string
	Replaced    string
	Category    string
}

// Table is the read-only description -> category mapping for a run.
// Matching is exact and case-sensitive.
type Table struct {
	byDesc     map[string]string
	duplicates []Duplicate
}

// New builds a Table from entries. A repeated description keeps the category
// of its last occurrence.
func New(entries []Entry) *Table {
	t := &Table{byDesc: make(map[string]string, len(entries))}
	for _, e := range entries {
		if prev, ok := t.byDesc[e.Description]; ok {
			t.duplicates = append(t.duplicates, Duplicate{
				Description: e.Description,
				Replaced:    prev,
				Category:    e.Category,
			})
		}
		t.byDesc[e.Description] = e.Category
	}
	return t
}

// Load reads the lookup file at path. If the file does not exist it returns
// an empty Table together with an error wrapping ErrMissingFile.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(nil), fmt.Errorf("%w: %s", ErrMissingFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("opening category lookup: %w", err)
	}
	defer f.Close()

	entries, err := ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("reading category lookup %s: %w", path, err)
	}
	return New(entries), nil
}

// Category returns the category mapped to description.
func (t *Table) Category(description string) (string, bool) {
	c, ok := t.byDesc[description]
	return c, ok
}

// Len returns the number of distinct descriptions.
func (t *Table) Len() int {
	return len(t.byDesc)
}

// Duplicates returns overwritten entries in file order.
func (t *Table) Duplicates() []Duplicate {
	return t.duplicates
}
