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

	"fitcore/internal/catalog/models"
	"fitcore/pkg/platform/sentinel"
)

//go:embed products.yaml
var defaultProducts []byte

type document struct {
	Version  string           `yaml:"version"`
	Products []models.Product `yaml:"products"`
}

// Catalog is an immutable, in-memory product list. Safe for concurrent reads.
type Catalog struct {
	version    string
	products   []models.Product
	byID       map[string]int
	categories []string
}

// New builds a catalog from products in display order. IDs must be non-empty
// and unique.
func New(version string, products []models.Product) (*Catalog, error) {
	c := &Catalog{
		version:  version,
		products: make([]models.Product, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	seen := make(map[string]struct{})
	c.categories = []string{models.AllCategories}

	for i, p := range products {
		if strings.TrimSpace(p.ID) == "" {
			return nil, fmt.Errorf("product %d has an empty id: %w", i, sentinel.ErrInvalidData)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q: %w", p.ID, sentinel.ErrInvalidData)
		}
		p.Benefits = append([]string(nil), p.Benefits...)
		c.products[i] = p
		c.byID[p.ID] = i

		if _, ok := seen[p.Category]; !ok {
			seen[p.Category] = struct{}{}
			c.categories = append(c.categories, p.Category)
		}
	}
	return c, nil
}

func Load(r io.Reader) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("catalog is empty: %w", sentinel.ErrInvalidData)
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(doc.Version, doc.Products)
}

func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Open loads path, or the embedded default when path is empty.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return LoadDefault()
	}
	return LoadFile(path)
}

// LoadDefault returns the catalog shipped with the binary.
func LoadDefault() (*Catalog, error) {
	return Load(bytes.NewReader(defaultProducts))
}

// All returns every product in display order.
func (c *Catalog) All() []models.Product {
	out := make([]models.Product, len(c.products))
	for i, p := range c.products {
		out[i] = clone(p)
	}
	return out
}

// Categories returns "All" followed by each distinct category in order of
// first appearance.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// FindByID returns sentinel.ErrNotFound when no product has id.
func (c *Catalog) FindByID(id string) (models.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return models.Product{}, sentinel.ErrNotFound
	}
	return clone(c.products[i]), nil
}

func (c *Catalog) Len() int {
	return len(c.products)
}

func (c *Catalog) Version() string {
	return c.version
}

func clone(p models.Product) models.Product {
	p.Benefits = append([]string(nil), p.Benefits...)
	return p
}
