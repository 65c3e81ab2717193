package services

import (
	"context"
	"fmt"

	"github.com/rubybellylechon/admin-api/src/database"
	"github.com/rubybellylechon/admin-api/src/models"
)

// ProductService handles menu products; removal is a soft delete
type ProductService struct {
	db database.DBTX
}

// NewProductService creates a new product service
func NewProductService(db database.DBTX) *ProductService {
	return &ProductService{db: db}
}

// List returns products that are not soft-deleted
func (ps *ProductService) List(ctx context.Context) ([]models.Product, error) {
	rows, err := ps.db.QueryContext(ctx, `
		SELECT productid, name, description, image_url, category, COALESCE(deleted, 0)
		FROM aproducts
		WHERE deleted = 0 OR deleted IS NULL
		ORDER BY productid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.ImageURL, &p.Category, &p.Deleted); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Create inserts a product and returns it with its new id
func (ps *ProductService) Create(ctx context.Context, p models.Product) (*models.Product, error) {
	err := ps.db.QueryRowContext(ctx,
		`INSERT INTO aproducts (name, description, image_url, category) VALUES ($1, $2, $3, $4) RETURNING productid`,
		p.Name, p.Description, p.ImageURL, p.Category,
	).Scan(&p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	p.Deleted = false
	return &p, nil
}

// Update overwrites the editable fields of a product, deleted or not
func (ps *ProductService) Update(ctx context.Context, id string, p models.Product) (*models.Product, error) {
	productID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	res, err := ps.db.ExecContext(ctx,
		`UPDATE aproducts SET name = $1, description = $2, image_url = $3, category = $4 WHERE productid = $5`,
		p.Name, p.Description, p.ImageURL, p.Category, productID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	if err := expectAffected(res); err != nil {
		return nil, err
	}

	p.ID = productID
	return &p, nil
}

// SoftDelete flags a product as deleted; the row stays in place
func (ps *ProductService) SoftDelete(ctx context.Context, id string) error {
	productID, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := ps.db.ExecContext(ctx, `UPDATE aproducts SET deleted = 1 WHERE productid = $1`, productID)
	if err != nil {
		return fmt.Errorf("failed to soft delete product: %w", err)
	}
	return expectAffected(res)
}
