package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/rubybellylechon/admin-api/src/models"
	"github.com/rubybellylechon/admin-api/src/router"
	"github.com/rubybellylechon/admin-api/src/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type staffRepo struct{ mock.Mock }

func (m *staffRepo) List(ctx context.Context) ([]models.Staff, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Staff), args.Error(1)
}

func (m *staffRepo) Create(ctx context.Context, s models.Staff) (*models.Staff, error) {
	args := m.Called(ctx, s)
	out, _ := args.Get(0).(*models.Staff)
	return out, args.Error(1)
}

func (m *staffRepo) Update(ctx context.Context, id string, s models.Staff) (*models.Staff, error) {
	args := m.Called(ctx, id, s)
	out, _ := args.Get(0).(*models.Staff)
	return out, args.Error(1)
}

func (m *staffRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type customerRepo struct{ mock.Mock }

func (m *customerRepo) List(ctx context.Context) ([]models.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *customerRepo) Create(ctx context.Context, c models.Customer) (*models.Customer, error) {
	args := m.Called(ctx, c)
	out, _ := args.Get(0).(*models.Customer)
	return out, args.Error(1)
}

func (m *customerRepo) Update(ctx context.Context, id string, c models.Customer) (*models.Customer, error) {
	args := m.Called(ctx, id, c)
	out, _ := args.Get(0).(*models.Customer)
	return out, args.Error(1)
}

func (m *customerRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type priceRepo struct{ mock.Mock }

func (m *priceRepo) ListByProduct(ctx context.Context, productID string) ([]models.ProductPrice, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]models.ProductPrice), args.Error(1)
}

func (m *priceRepo) Create(ctx context.Context, p models.ProductPrice) (*models.ProductPrice, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).(*models.ProductPrice)
	return out, args.Error(1)
}

func (m *priceRepo) Update(ctx context.Context, id string, p models.ProductPrice) (*models.ProductPrice, error) {
	args := m.Called(ctx, id, p)
	out, _ := args.Get(0).(*models.ProductPrice)
	return out, args.Error(1)
}

func (m *priceRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type inventoryRepo struct{ mock.Mock }

func (m *inventoryRepo) List(ctx context.Context) ([]models.InventoryItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.InventoryItem), args.Error(1)
}

func (m *inventoryRepo) Create(ctx context.Context, item models.InventoryItem) (*models.InventoryItem, error) {
	args := m.Called(ctx, item)
	out, _ := args.Get(0).(*models.InventoryItem)
	return out, args.Error(1)
}

func (m *inventoryRepo) Update(ctx context.Context, id string, item models.InventoryItem) (*models.InventoryItem, error) {
	args := m.Called(ctx, id, item)
	out, _ := args.Get(0).(*models.InventoryItem)
	return out, args.Error(1)
}

func (m *inventoryRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func TestStaffHandlers(t *testing.T) {
	staff := new(staffRepo)
	engine := newTestAPI(t, Repositories{Admins: newAdminRepo(), Staff: staff}, nil)
	cookie := signIn(t, engine)

	input := models.Staff{Name: "Ana", Position: "Cook", Contact: "0917"}
	staff.On("Create", mock.Anything, input).Return(&models.Staff{ID: 4, Name: "Ana", Position: "Cook", Contact: "0917"}, nil)
	staff.On("Update", mock.Anything, "9", mock.Anything).Return(nil, services.ErrNotFound)
	staff.On("Delete", mock.Anything, "4").Return(nil)

	w := doRequest(engine, http.MethodPost, "/api/astaff", input, cookie)
	assertStatusCode(t, w, http.StatusCreated)
	var created models.Staff
	decodeJSON(t, w, &created)
	assert.Equal(t, int64(4), created.ID)

	w = doRequest(engine, http.MethodPut, "/api/astaff/9", input, cookie)
	assertStatusCode(t, w, http.StatusNotFound)
	assertJSONError(t, w, "Staff member not found")

	w = doRequest(engine, http.MethodDelete, "/api/astaff/4", nil, cookie)
	assertStatusCode(t, w, http.StatusOK)

	staff.AssertExpectations(t)
}

func TestCustomerHandlers(t *testing.T) {
	customers := new(customerRepo)
	engine := newTestAPI(t, Repositories{Admins: newAdminRepo(), Customers: customers}, nil)
	cookie := signIn(t, engine)

	customers.On("List", mock.Anything).Return([]models.Customer{
		{ID: 1, Name: "Ben", EmailAddress: "ben@example.com", ContactNumber: "0918"},
	}, nil)
	customers.On("Delete", mock.Anything, "1").Return(errors.New("pq: deadlock detected"))

	w := doRequest(engine, http.MethodGet, "/api/acustomer", nil, cookie)
	assertStatusCode(t, w, http.StatusOK)
	var listed []map[string]interface{}
	decodeJSON(t, w, &listed)
	assert.Len(t, listed, 1)
	assert.Equal(t, "ben@example.com", listed[0]["emailaddress"])
	assert.Equal(t, "0918", listed[0]["contactNumber"])

	w = doRequest(engine, http.MethodDelete, "/api/acustomer/1", nil, cookie)
	assertStatusCode(t, w, http.StatusInternalServerError)
	assertJSONError(t, w, router.GenericErrorMessage)

	customers.AssertExpectations(t)
}

func TestProductPriceHandlers(t *testing.T) {
	prices := new(priceRepo)
	engine := newTestAPI(t, Repositories{Admins: newAdminRepo(), ProductPrices: prices}, nil)
	cookie := signIn(t, engine)

	prices.On("ListByProduct", mock.Anything, "3").Return([]models.ProductPrice{
		{ID: 10, ProductID: 3, Weight: "1kg", Price: 850},
	}, nil)
	prices.On("Create", mock.Anything, models.ProductPrice{Weight: "2kg", Price: 1600}).Return(nil, services.ErrInvalidID)
	prices.On("Delete", mock.Anything, "10").Return(nil)

	w := doRequest(engine, http.MethodGet, "/api/aproduct-prices/3", nil, cookie)
	assertStatusCode(t, w, http.StatusOK)
	var listed []models.ProductPrice
	decodeJSON(t, w, &listed)
	assert.Equal(t, 850.0, listed[0].Price)

	w = doRequest(engine, http.MethodPost, "/api/aproduct-prices", ProductPriceRequest{Weight: "2kg", Price: 1600}, cookie)
	assertStatusCode(t, w, http.StatusBadRequest)
	assertJSONError(t, w, "Invalid id")

	w = doRequest(engine, http.MethodDelete, "/api/aproduct-prices/10", nil, cookie)
	assertStatusCode(t, w, http.StatusOK)

	prices.AssertExpectations(t)
}

func TestInventoryHandlers(t *testing.T) {
	inventory := new(inventoryRepo)
	engine := newTestAPI(t, Repositories{Admins: newAdminRepo(), Inventory: inventory}, nil)
	cookie := signIn(t, engine)

	added := models.Date{Time: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}
	inventory.On("Create", mock.Anything, mock.MatchedBy(func(item models.InventoryItem) bool {
		return item.SupplierID == "SUP-1" && item.DateAdded.Equal(added.Time)
	})).Return(&models.InventoryItem{ID: 2, Quantity: 20, SupplierID: "SUP-1", RemainingStock: 20, DateAdded: added}, nil)
	inventory.On("Update", mock.Anything, "77", mock.Anything).Return(nil, services.ErrNotFound)

	w := doRequest(engine, http.MethodPost, "/api/ainventory", map[string]interface{}{
		"quantity":       20,
		"supplierId":     "SUP-1",
		"remainingStock": 20,
		"dateAdded":      "2024-05-01",
		"status":         "In Stock",
	}, cookie)
	assertStatusCode(t, w, http.StatusCreated)
	var created map[string]interface{}
	decodeJSON(t, w, &created)
	assert.Equal(t, "2024-05-01", created["dateAdded"])

	w = doRequest(engine, http.MethodPut, "/api/ainventory/77", map[string]interface{}{"quantity": 1}, cookie)
	assertStatusCode(t, w, http.StatusNotFound)
	assertJSONError(t, w, "Inventory item not found")

	inventory.AssertExpectations(t)
}
