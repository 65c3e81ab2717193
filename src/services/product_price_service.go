package services

import (
	"context"
	"fmt"

	"github.com/rubybellylechon/admin-api/src/database"
	"github.com/rubybellylechon/admin-api/src/models"
)

// ProductPriceService handles the weight/price options of products
type ProductPriceService struct {
	db database.DBTX
}

// NewProductPriceService creates a new product price service
func NewProductPriceService(db database.DBTX) *ProductPriceService {
	return &ProductPriceService{db: db}
}

// ListByProduct returns the prices of one product
func (pps *ProductPriceService) ListByProduct(ctx context.Context, productID string) ([]models.ProductPrice, error) {
	pid, err := parseID(productID)
	if err != nil {
		return nil, err
	}

	rows, err := pps.db.QueryContext(ctx,
		`SELECT priceid, productid, weight, price, description FROM aproduct_prices WHERE productid = $1 ORDER BY priceid`,
		pid,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list product prices: %w", err)
	}
	defer rows.Close()

	prices := []models.ProductPrice{}
	for rows.Next() {
		var p models.ProductPrice
		if err := rows.Scan(&p.ID, &p.ProductID, &p.Weight, &p.Price, &p.Description); err != nil {
			return nil, fmt.Errorf("failed to scan product price: %w", err)
		}
		prices = append(prices, p)
	}
	return prices, rows.Err()
}

// Create inserts a price for a product
func (pps *ProductPriceService) Create(ctx context.Context, p models.ProductPrice) (*models.ProductPrice, error) {
	if p.ProductID <= 0 {
		return nil, fmt.Errorf("%w: productid is required", ErrInvalidID)
	}

	err := pps.db.QueryRowContext(ctx,
		`INSERT INTO aproduct_prices (productid, weight, price, description) VALUES ($1, $2, $3, $4) RETURNING priceid`,
		p.ProductID, p.Weight, p.Price, p.Description,
	).Scan(&p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create product price: %w", err)
	}
	return &p, nil
}

// Update overwrites weight, price and description of one price row
func (pps *ProductPriceService) Update(ctx context.Context, id string, p models.ProductPrice) (*models.ProductPrice, error) {
	priceID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	res, err := pps.db.ExecContext(ctx,
		`UPDATE aproduct_prices SET weight = $1, price = $2, description = $3 WHERE priceid = $4`,
		p.Weight, p.Price, p.Description, priceID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update product price: %w", err)
	}
	if err := expectAffected(res); err != nil {
		return nil, err
	}

	p.ID = priceID
	return &p, nil
}

// Delete removes a price row
func (pps *ProductPriceService) Delete(ctx context.Context, id string) error {
	priceID, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := pps.db.ExecContext(ctx, `DELETE FROM aproduct_prices WHERE priceid = $1`, priceID)
	if err != nil {
		return fmt.Errorf("failed to delete product price: %w", err)
	}
	return expectAffected(res)
}
