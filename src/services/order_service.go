package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rubybellylechon/admin-api/src/database"
	"github.com/rubybellylechon/admin-api/src/models"
)

const orderColumns = `orderid, tracking_number, customerid, productid, quantity, total_amount,
	date, status, payment_method, delivery_address`

// OrderService handles customer orders; removal is a soft delete
type OrderService struct {
	db database.DBTX
}

// NewOrderService creates a new order service
func NewOrderService(db database.DBTX) *OrderService {
	return &OrderService{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (models.Order, error) {
	var o models.Order
	err := row.Scan(&o.ID, &o.TrackingNumber, &o.CustomerID, &o.ProductID, &o.Quantity, &o.TotalAmount,
		&o.Date, &o.Status, &o.PaymentMethod, &o.DeliveryAddress)
	return o, err
}

// List returns non-deleted orders, newest first
func (ords *OrderService) List(ctx context.Context) ([]models.Order, error) {
	rows, err := ords.db.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE deleted = 0 OR deleted IS NULL
		ORDER BY date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// Update applies the supplied fields of patch and returns the updated order.
// An empty patch fails with ErrNoUpdates before any statement is issued.
func (ords *OrderService) Update(ctx context.Context, id string, patch models.OrderPatch) (*models.Order, error) {
	if patch.Empty() {
		return nil, ErrNoUpdates
	}

	orderID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var (
		sets []string
		args []interface{}
	)
	if patch.Status != nil {
		args = append(args, *patch.Status)
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}
	if patch.Date != nil {
		args = append(args, *patch.Date)
		sets = append(sets, fmt.Sprintf("date = $%d", len(args)))
	}
	args = append(args, orderID)

	query := fmt.Sprintf(`UPDATE orders SET %s WHERE orderid = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), orderColumns)

	o, err := scanOrder(ords.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return &o, nil
}

// SoftDelete flags an order as deleted; the row stays in place
func (ords *OrderService) SoftDelete(ctx context.Context, id string) error {
	orderID, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := ords.db.ExecContext(ctx, `UPDATE orders SET deleted = 1 WHERE orderid = $1`, orderID)
	if err != nil {
		return fmt.Errorf("failed to soft delete order: %w", err)
	}
	return expectAffected(res)
}
