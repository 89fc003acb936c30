package domain

// InventoryItem is a physical asset of the parish (chairs, sound gear, ...).
type InventoryItem struct {
	ItemID      string `json:"itemID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Quantity    int    `json:"quantity"` // never negative
	AuditFields
}
