package dto

import (
	"time"

	"github.com/parishworks/parish_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Status may be overridden by the service when the acting user cannot post
// paid transactions directly.
type CreateTransactionRequest struct {
	Type                 domain.TransactionType   `json:"type" binding:"required,oneof=INCOME EXPENSE TRANSFER"`
	Value                decimal.Decimal          `json:"value" binding:"required"`
	Date                 time.Time                `json:"date" binding:"required"`
	Description          string                   `json:"description" binding:"required"`
	CategoryID           string                   `json:"categoryID"`
	AccountID            string                   `json:"accountID" binding:"required"`
	DestinationAccountID string                   `json:"destinationAccountID"`
	ProjectID            string                   `json:"projectID"`
	PaymentMethod        domain.PaymentMethod     `json:"paymentMethod" binding:"required,oneof=CASH BANK_TRANSFER PIX CHECK CARD"`
	Status               domain.TransactionStatus `json:"status" binding:"required,oneof=PLANNED PAID PENDING_APPROVAL"`
}

// UpdateTransactionRequest defines the editable fields of a transaction.
// Balance adjustments never fire on update, whatever changes here.
type UpdateTransactionRequest struct {
	Value         *decimal.Decimal          `json:"value"`
	Date          *time.Time                `json:"date"`
	Description   *string                   `json:"description"`
	CategoryID    *string                   `json:"categoryID"`
	ProjectID     *string                   `json:"projectID"`
	PaymentMethod *domain.PaymentMethod     `json:"paymentMethod"`
	Status        *domain.TransactionStatus `json:"status"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	AccountID string     `form:"accountID"`
	ProjectID string     `form:"projectID"`
	Status    string     `form:"status"`
	Type      string     `form:"type"`
	DateFrom  *time.Time `form:"dateFrom" time_format:"2006-01-02"`
	DateTo    *time.Time `form:"dateTo" time_format:"2006-01-02"`
	Limit     int        `form:"limit,default=20"`
	Offset    int        `form:"offset,default=0"`
}

// TransactionResponse mirrors domain.Transaction for API output.
type TransactionResponse struct {
	TransactionID        string                   `json:"transactionID"`
	Type                 domain.TransactionType   `json:"type"`
	Value                decimal.Decimal          `json:"value"`
	Date                 time.Time                `json:"date"`
	Description          string                   `json:"description"`
	CategoryID           string                   `json:"categoryID,omitempty"`
	AccountID            string                   `json:"accountID"`
	DestinationAccountID string                   `json:"destinationAccountID,omitempty"`
	ProjectID            string                   `json:"projectID,omitempty"`
	PaymentMethod        domain.PaymentMethod     `json:"paymentMethod"`
	Status               domain.TransactionStatus `json:"status"`
	CreatedAt            time.Time                `json:"createdAt"`
	CreatedBy            string                   `json:"createdBy"`
	LastUpdatedAt        time.Time                `json:"lastUpdatedAt"`
	LastUpdatedBy        string                   `json:"lastUpdatedBy"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:        t.TransactionID,
		Type:                 t.Type,
		Value:                t.Value,
		Date:                 t.Date,
		Description:          t.Description,
		CategoryID:           t.CategoryID,
		AccountID:            t.AccountID,
		DestinationAccountID: t.DestinationAccountID,
		ProjectID:            t.ProjectID,
		PaymentMethod:        t.PaymentMethod,
		Status:               t.Status,
		CreatedAt:            t.CreatedAt,
		CreatedBy:            t.CreatedBy,
		LastUpdatedAt:        t.LastUpdatedAt,
		LastUpdatedBy:        t.LastUpdatedBy,
	}
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		responses[i] = ToTransactionResponse(&t)
	}
	return responses
}
