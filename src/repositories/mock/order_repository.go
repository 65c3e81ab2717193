package mock

import (
	"context"

	"github.com/rubybellylechon/admin-api/src/models"
	"github.com/rubybellylechon/admin-api/src/repositories"
)

// OrderRepository is a mock implementation of repositories.OrderRepository
type OrderRepository struct {
	ListFunc       func(ctx context.Context) ([]models.Order, error)
	UpdateFunc     func(ctx context.Context, id string, patch models.OrderPatch) (*models.Order, error)
	SoftDeleteFunc func(ctx context.Context, id string) error

	Calls map[string][]interface{}
}

// NewOrderRepository creates a new mock order repository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{Calls: make(map[string][]interface{})}
}

func (m *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	m.Calls["List"] = append(m.Calls["List"], nil)
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Order{}, nil
}

func (m *OrderRepository) Update(ctx context.Context, id string, patch models.OrderPatch) (*models.Order, error) {
	m.Calls["Update"] = append(m.Calls["Update"], id)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, patch)
	}
	return &models.Order{}, nil
}

func (m *OrderRepository) SoftDelete(ctx context.Context, id string) error {
	m.Calls["SoftDelete"] = append(m.Calls["SoftDelete"], id)
	if m.SoftDeleteFunc != nil {
		return m.SoftDeleteFunc(ctx, id)
	}
	return nil
}

var _ repositories.OrderRepository = (*OrderRepository)(nil)
