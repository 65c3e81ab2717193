package repositories

import (
	"context"

	"github.com/rubybellylechon/admin-api/src/models"
)

// AdminRepository authenticates admins and checks the secondary PIN
type AdminRepository interface {
	Authenticate(ctx context.Context, username, password string) (*models.AdminUser, error)
	ValidatePin(ctx context.Context, pin string) error
}

// ProductRepository defines data access for products (soft delete)
type ProductRepository interface {
	List(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, p models.Product) (*models.Product, error)
	Update(ctx context.Context, id string, p models.Product) (*models.Product, error)
	SoftDelete(ctx context.Context, id string) error
}

// ProductPriceRepository defines data access for product prices (hard delete)
type ProductPriceRepository interface {
	ListByProduct(ctx context.Context, productID string) ([]models.ProductPrice, error)
	Create(ctx context.Context, p models.ProductPrice) (*models.ProductPrice, error)
	Update(ctx context.Context, id string, p models.ProductPrice) (*models.ProductPrice, error)
	Delete(ctx context.Context, id string) error
}

// StaffRepository defines data access for staff (hard delete)
type StaffRepository interface {
	List(ctx context.Context) ([]models.Staff, error)
	Create(ctx context.Context, s models.Staff) (*models.Staff, error)
	Update(ctx context.Context, id string, s models.Staff) (*models.Staff, error)
	Delete(ctx context.Context, id string) error
}

// CustomerRepository defines data access for customers (hard delete)
type CustomerRepository interface {
	List(ctx context.Context) ([]models.Customer, error)
	Create(ctx context.Context, c models.Customer) (*models.Customer, error)
	Update(ctx context.Context, id string, c models.Customer) (*models.Customer, error)
	Delete(ctx context.Context, id string) error
}

// OrderRepository defines data access for orders (soft delete, partial update)
type OrderRepository interface {
	List(ctx context.Context) ([]models.Order, error)
	Update(ctx context.Context, id string, patch models.OrderPatch) (*models.Order, error)
	SoftDelete(ctx context.Context, id string) error
}

// InventoryRepository defines data access for inventory items (hard delete)
type InventoryRepository interface {
	List(ctx context.Context) ([]models.InventoryItem, error)
	Create(ctx context.Context, item models.InventoryItem) (*models.InventoryItem, error)
	Update(ctx context.Context, id string, item models.InventoryItem) (*models.InventoryItem, error)
	Delete(ctx context.Context, id string) error
}
