package models

// InventoryItem is a stock entry received from a supplier
type InventoryItem struct {
	ID             int64  `json:"id"`
	Quantity       int    `json:"quantity"`
	SupplierID     string `json:"supplierId"`
	RemainingStock int    `json:"remainingStock"`
	DateAdded      Date   `json:"dateAdded"`
	Status         string `json:"status"`
}
