package importer

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/moneyreport/internal/model"
)

// ErrNoInputData is returned when the input directory is missing or holds no
// statement files.
var ErrNoInputData = errors.New("no input data")

// Parser converts a statement export into uncategorized Transactions.
type Parser interface {
	Parse(r io.Reader) ([]model.Transaction, error)
	Format() string
}

// Categorizer fills in Category on a batch of parsed transactions.
type Categorizer interface {
	Apply(txns []model.Transaction)
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// FileInfo describes a statement file in the input directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats returns the registered format names, sorted.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.parsers))
	for name := range r.parsers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&StatementParser{})
	r.Register(&ChaseParser{})
	return r
}

// Scan returns the statement files directly inside dir, sorted by name.
// Subdirectories and dotfiles are skipped. A missing directory or one with no
// files is ErrNoInputData.
func Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: directory %s does not exist", ErrNoInputData, dir)
	}
	if err != nil {
		return nil, fmt.Errorf("reading input dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: directory %s has no statement files", ErrNoInputData, dir)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// ParseFile parses one statement file with p.
func ParseFile(path string, p Parser) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	txns, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return txns, nil
}

// Result is the combined output of Aggregate.
type Result struct {
	Files        []FileInfo
	Transactions []model.Transaction
}

// Aggregate parses and categorizes every statement in dir, in file name
// order, and concatenates the batches. The first failing file aborts the run.
func Aggregate(dir string, p Parser, c Categorizer, log zerolog.Logger) (*Result, error) {
	files, err := Scan(dir)
	if err != nil {
		return nil, err
	}

	res := &Result{Files: files}
	for _, fi := range files {
		txns, err := ParseFile(fi.Path, p)
		if err != nil {
			return nil, err
		}
		c.Apply(txns)
		log.Debug().Str("file", fi.Name).Int("rows", len(txns)).Msg("parsed statement")
		res.Transactions = append(res.Transactions, txns...)
	}
	return res, nil
}
