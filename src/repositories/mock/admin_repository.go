package mock

import (
	"context"

	"github.com/rubybellylechon/admin-api/src/models"
	"github.com/rubybellylechon/admin-api/src/repositories"
)

// AdminRepository is a mock implementation of repositories.AdminRepository
type AdminRepository struct {
	// Function stubs that can be overridden in tests
	AuthenticateFunc func(ctx context.Context, username, password string) (*models.AdminUser, error)
	ValidatePinFunc  func(ctx context.Context, pin string) error

	// Call tracking
	Calls map[string][]interface{}
}

// NewAdminRepository creates a new mock admin repository
func NewAdminRepository() *AdminRepository {
	return &AdminRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *AdminRepository) Authenticate(ctx context.Context, username, password string) (*models.AdminUser, error) {
	m.Calls["Authenticate"] = append(m.Calls["Authenticate"], username)
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, username, password)
	}
	return nil, nil
}

func (m *AdminRepository) ValidatePin(ctx context.Context, pin string) error {
	m.Calls["ValidatePin"] = append(m.Calls["ValidatePin"], pin)
	if m.ValidatePinFunc != nil {
		return m.ValidatePinFunc(ctx, pin)
	}
	return nil
}

// Ensure AdminRepository implements the interface
var _ repositories.AdminRepository = (*AdminRepository)(nil)
