package store

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"fitcore/internal/verification/models"
	"fitcore/pkg/platform/sentinel"
)

//go:embed codes.yaml
var defaultCodes []byte

// document is the on-disk shape of a reference table file.
type document struct {
	Version string          `yaml:"version"`
	Codes   []models.Record `yaml:"codes"`
}

// Table is the immutable reference table. It is built once and only read
// afterwards, so it is safe for concurrent use without locking.
type Table struct {
	version    string
	records    []models.Record
	index      map[string]int
	duplicates []string
}

// NewTable indexes records by lower-cased code. When two records share a code
// ignoring case, the first in table order wins and the code is reported by
// Duplicates. Codes must be non-empty and carry no surrounding whitespace.
func NewTable(version string, records []models.Record) (*Table, error) {
	t := &Table{
		version: version,
		records: make([]models.Record, len(records)),
		index:   make(map[string]int, len(records)),
	}
	copy(t.records, records)

	for i, rec := range t.records {
		if strings.TrimSpace(rec.Code) == "" {
			return nil, fmt.Errorf("record %d has an empty code: %w", i, sentinel.ErrInvalidData)
		}
		if strings.TrimSpace(rec.Code) != rec.Code {
			return nil, fmt.Errorf("record %d code %q has surrounding whitespace: %w", i, rec.Code, sentinel.ErrInvalidData)
		}
		key := normalize(rec.Code)
		if _, exists := t.index[key]; exists {
			t.duplicates = append(t.duplicates, rec.Code)
			continue
		}
		t.index[key] = i
	}
	return t, nil
}

// Load parses a YAML reference table.
func Load(r io.Reader) (*Table, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("reference table is empty: %w", sentinel.ErrInvalidData)
		}
		return nil, fmt.Errorf("decode reference table: %w", err)
	}
	return NewTable(doc.Version, doc.Codes)
}

// LoadFile reads a YAML reference table from path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reference table: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Open loads path, or the embedded default when path is empty.
func Open(path string) (*Table, error) {
	if path == "" {
		return LoadDefault()
	}
	return LoadFile(path)
}

// LoadDefault returns the table shipped with the binary.
func LoadDefault() (*Table, error) {
	return Load(bytes.NewReader(defaultCodes))
}

// Lookup returns a copy of the first record whose code equals code ignoring case.
// code is expected to be trimmed already; no prefix or fuzzy matching is done.
func (t *Table) Lookup(code string) (models.Record, bool) {
	i, ok := t.index[normalize(code)]
	if !ok {
		return models.Record{}, false
	}
	return t.records[i], true
}

// Records returns a copy of all records in table order.
func (t *Table) Records() []models.Record {
	out := make([]models.Record, len(t.records))
	copy(out, t.records)
	return out
}

func (t *Table) Len() int {
	return len(t.records)
}

func (t *Table) Version() string {
	return t.version
}

// Duplicates lists codes shadowed by an earlier record with the same code.
func (t *Table) Duplicates() []string {
	out := make([]string, len(t.duplicates))
	copy(out, t.duplicates)
	return out
}

func normalize(code string) string {
	return strings.ToLower(code)
}
