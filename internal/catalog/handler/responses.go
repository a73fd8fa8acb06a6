package handler

import "fitcore/internal/catalog/models"

type ListResponse struct {
	Products []models.Product `json:"products"`
	Total    int              `json:"total"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
