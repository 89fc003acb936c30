package domain

// CategoryDirection tells whether a category classifies income or expense.
type CategoryDirection string

const (
	CategoryIncome  CategoryDirection = "INCOME"
	CategoryExpense CategoryDirection = "EXPENSE"
)

// Category classifies income and expense transactions.
type Category struct {
	CategoryID string            `json:"categoryID"`
	Name       string            `json:"name"`
	Direction  CategoryDirection `json:"direction"`
	AuditFields
}
