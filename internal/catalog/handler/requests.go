package handler

import (
	"strings"

	"fitcore/internal/catalog/models"
	"fitcore/pkg/platform/validation"
)

// ListRequest carries the query string of GET /products.
type ListRequest struct {
	Query    string
	Category string
}

func (r *ListRequest) Normalize() {
	r.Query = strings.TrimSpace(r.Query)
	r.Category = strings.TrimSpace(r.Category)
}

func (r *ListRequest) Validate() error {
	if err := validation.CheckStringLength("q", r.Query, validation.MaxQueryLength); err != nil {
		return err
	}
	return validation.CheckStringLength("category", r.Category, validation.MaxCategoryLength)
}

func (r *ListRequest) Filter() models.Filter {
	return models.Filter{Query: r.Query, Category: r.Category}
}

type GetRequest struct {
	ID string `json:"id" validate:"required,max=64"`
}

func (r *GetRequest) Normalize() {
	r.ID = strings.TrimSpace(r.ID)
}

func (r *GetRequest) Validate() error {
	return validation.Struct(r)
}
