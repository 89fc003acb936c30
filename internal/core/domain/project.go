package domain

import "github.com/shopspring/decimal"

// Project groups transactions under a parish initiative (e.g. a building
// campaign). ExecutedBudget is a user-entered figure; the actual spend is
// computed from paid transactions by the reporting service.
type Project struct {
	ProjectID      string          `json:"projectID"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	PlannedBudget  decimal.Decimal `json:"plannedBudget"`
	ExecutedBudget decimal.Decimal `json:"executedBudget"`
	AuditFields
}
