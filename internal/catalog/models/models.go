package models

// AllCategories is the pseudo-category that matches every product.
const AllCategories = "All"

// Product is one catalog entry.
type Product struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Image       string   `json:"image" yaml:"image"`
	Category    string   `json:"category" yaml:"category"`
	Benefits    []string `json:"benefits" yaml:"benefits"`
	Price       string   `json:"price" yaml:"price"`
}

// Filter narrows a catalog listing. Query matches name or description as a
// case-insensitive substring; an empty Query matches everything. Category
// must equal the product category exactly; "" and AllCategories match all.
type Filter struct {
	Query    string
	Category string
}

func (f Filter) AnyCategory() bool {
	return f.Category == "" || f.Category == AllCategories
}
