package models

import "time"

// Order status values used by the admin UI
const (
	OrderStatusPending   = "Pending"
	OrderStatusPreparing = "Preparing"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

// Order is a customer order; soft-deleted orders are hidden from listings
type Order struct {
	ID              int64     `json:"orderid"`
	TrackingNumber  string    `json:"tracking_number"`
	CustomerID      int64     `json:"customerid"`
	ProductID       int64     `json:"productid"`
	Quantity        int       `json:"quantity"`
	TotalAmount     float64   `json:"total_amount"`
	Date            time.Time `json:"date"`
	Status          string    `json:"status"`
	PaymentMethod   string    `json:"payment_method"`
	DeliveryAddress string    `json:"delivery_address"`
}

// OrderPatch carries the fields an order update may change; nil means unchanged
type OrderPatch struct {
	Status *string
	Date   *time.Time
}

// Empty reports whether the patch changes nothing
func (p OrderPatch) Empty() bool {
	return p.Status == nil && p.Date == nil
}
