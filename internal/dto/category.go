package dto

import "github.com/parishworks/parish_management_app/internal/core/domain"

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name      string                   `json:"name" binding:"required"`
	Direction domain.CategoryDirection `json:"direction" binding:"required,oneof=INCOME EXPENSE"`
}

// UpdateCategoryRequest defines the fields that may be changed on a category.
type UpdateCategoryRequest struct {
	Name      *string                   `json:"name"`
	Direction *domain.CategoryDirection `json:"direction"`
}

// ListCategoriesResponse wraps the list of categories.
type ListCategoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}
