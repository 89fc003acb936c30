package dto

import (
	"github.com/parishworks/parish_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProjectRequest defines the data needed to create a project.
type CreateProjectRequest struct {
	Name           string          `json:"name" binding:"required"`
	Description    string          `json:"description"`
	PlannedBudget  decimal.Decimal `json:"plannedBudget"`
	ExecutedBudget decimal.Decimal `json:"executedBudget"`
}

// UpdateProjectRequest defines the fields that may be changed on a project.
type UpdateProjectRequest struct {
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	PlannedBudget  *decimal.Decimal `json:"plannedBudget"`
	ExecutedBudget *decimal.Decimal `json:"executedBudget"`
}

// ListProjectsResponse wraps the list of projects.
type ListProjectsResponse struct {
	Projects []domain.Project `json:"projects"`
}
