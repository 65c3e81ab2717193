package mock

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/rubybellylechon/admin-api/src/models"
	"github.com/rubybellylechon/admin-api/src/repositories"
	"github.com/rubybellylechon/admin-api/src/services"
)

// ProductRepository is an in-memory repositories.ProductRepository that
// keeps soft-deleted rows, so tests can observe listing behaviour.
type ProductRepository struct {
	mu     sync.Mutex
	rows   map[int64]models.Product
	nextID int64

	// Err, when set, is returned by every call
	Err error

	Calls map[string][]interface{}
}

// NewProductRepository creates a product store seeded with products
func NewProductRepository(seed ...models.Product) *ProductRepository {
	m := &ProductRepository{
		rows:  make(map[int64]models.Product),
		Calls: make(map[string][]interface{}),
	}
	for _, p := range seed {
		m.rows[p.ID] = p
		if p.ID > m.nextID {
			m.nextID = p.ID
		}
	}
	return m
}

func (m *ProductRepository) record(name string, arg interface{}) error {
	m.Calls[name] = append(m.Calls[name], arg)
	return m.Err
}

func (m *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("List", nil); err != nil {
		return nil, err
	}

	out := []models.Product{}
	for _, p := range m.rows {
		if !p.Deleted {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *ProductRepository) Create(ctx context.Context, p models.Product) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("Create", p); err != nil {
		return nil, err
	}

	m.nextID++
	p.ID = m.nextID
	p.Deleted = false
	m.rows[p.ID] = p
	return &p, nil
}

func (m *ProductRepository) Update(ctx context.Context, id string, p models.Product) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("Update", id); err != nil {
		return nil, err
	}

	existing, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	p.ID = existing.ID
	p.Deleted = existing.Deleted
	m.rows[p.ID] = p
	return &p, nil
}

func (m *ProductRepository) SoftDelete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.record("SoftDelete", id); err != nil {
		return err
	}

	existing, err := m.lookup(id)
	if err != nil {
		return err
	}
	existing.Deleted = true
	m.rows[existing.ID] = existing
	return nil
}

// Get returns a row regardless of its deleted flag
func (m *ProductRepository) Get(id int64) (models.Product, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	return p, ok
}

func (m *ProductRepository) lookup(id string) (models.Product, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return models.Product{}, services.ErrInvalidID
	}
	p, ok := m.rows[n]
	if !ok {
		return models.Product{}, services.ErrNotFound
	}
	return p, nil
}

var _ repositories.ProductRepository = (*ProductRepository)(nil)
