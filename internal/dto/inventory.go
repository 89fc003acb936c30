package dto

import "github.com/parishworks/parish_management_app/internal/core/domain"

// CreateInventoryItemRequest defines the data needed to register an item.
type CreateInventoryItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Quantity    int    `json:"quantity" binding:"gte=0"`
}

// UpdateInventoryItemRequest defines the fields that may be changed on an item.
type UpdateInventoryItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
}

// AdjustQuantityRequest changes an item's quantity by a signed delta.
type AdjustQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// ListInventoryResponse wraps the inventory listing.
type ListInventoryResponse struct {
	Items []domain.InventoryItem `json:"items"`
}
