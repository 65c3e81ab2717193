package services

import (
	"context"
	"fmt"

	"github.com/rubybellylechon/admin-api/src/database"
	"github.com/rubybellylechon/admin-api/src/models"
)

// InventoryService handles stock entries
type InventoryService struct {
	db database.DBTX
}

// NewInventoryService creates a new inventory service
func NewInventoryService(db database.DBTX) *InventoryService {
	return &InventoryService{db: db}
}

// List returns all inventory items
func (is *InventoryService) List(ctx context.Context) ([]models.InventoryItem, error) {
	rows, err := is.db.QueryContext(ctx, `
		SELECT id, quantity, supplier_id, remaining_stock, date_added, status
		FROM ainventory
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	defer rows.Close()

	items := []models.InventoryItem{}
	for rows.Next() {
		var item models.InventoryItem
		if err := rows.Scan(&item.ID, &item.Quantity, &item.SupplierID, &item.RemainingStock, &item.DateAdded, &item.Status); err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Create inserts an inventory item and returns it with its new id
func (is *InventoryService) Create(ctx context.Context, item models.InventoryItem) (*models.InventoryItem, error) {
	err := is.db.QueryRowContext(ctx, `
		INSERT INTO ainventory (quantity, supplier_id, remaining_stock, date_added, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, item.Quantity, item.SupplierID, item.RemainingStock, item.DateAdded, item.Status).Scan(&item.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}
	return &item, nil
}

// Update overwrites an inventory item
func (is *InventoryService) Update(ctx context.Context, id string, item models.InventoryItem) (*models.InventoryItem, error) {
	itemID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	res, err := is.db.ExecContext(ctx, `
		UPDATE ainventory
		SET quantity = $1, supplier_id = $2, remaining_stock = $3, date_added = $4, status = $5
		WHERE id = $6
	`, item.Quantity, item.SupplierID, item.RemainingStock, item.DateAdded, item.Status, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}
	if err := expectAffected(res); err != nil {
		return nil, err
	}

	item.ID = itemID
	return &item, nil
}

// Delete physically removes an inventory item
func (is *InventoryService) Delete(ctx context.Context, id string) error {
	itemID, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := is.db.ExecContext(ctx, `DELETE FROM ainventory WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	return expectAffected(res)
}
