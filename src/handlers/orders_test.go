package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/rubybellylechon/admin-api/src/models"
	"github.com/rubybellylechon/admin-api/src/repositories/mock"
	"github.com/rubybellylechon/admin-api/src/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrders_UpdateRequiresFields(t *testing.T) {
	orders := mock.NewOrderRepository()
	engine := newTestAPI(t, Repositories{Admins: newAdminRepo(), Orders: orders}, nil)
	cookie := signIn(t, engine)

	for _, body := range []interface{}{map[string]string{}, OrderUpdateRequest{}} {
		w := doRequest(engine, http.MethodPut, "/api/aorders/12", body, cookie)
		assertStatusCode(t, w, http.StatusBadRequest)
		assertJSONError(t, w, "No updates provided")
	}
	assert.Empty(t, orders.Calls["Update"])
}

func TestOrders_UpdatePartial(t *testing.T) {
	var got models.OrderPatch
	orders := mock.NewOrderRepository()
	orders.UpdateFunc = func(ctx context.Context, id string, patch models.OrderPatch) (*models.Order, error) {
		got = patch
		return &models.Order{ID: 12, Status: *patch.Status}, nil
	}
	engine := newTestAPI(t, Repositories{Admins: newAdminRepo(), Orders: orders}, nil)
	cookie := signIn(t, engine)

	w := doRequest(engine, http.MethodPut, "/api/aorders/12", OrderUpdateRequest{Status: models.OrderStatusDelivered}, cookie)
	assertStatusCode(t, w, http.StatusOK)

	require.NotNil(t, got.Status)
	assert.Equal(t, models.OrderStatusDelivered, *got.Status)
	assert.Nil(t, got.Date, "absent date must not be written")

	var order models.Order
	decodeJSON(t, w, &order)
	assert.Equal(t, int64(12), order.ID)
}

func TestOrders_UpdateDate(t *testing.T) {
	var got models.OrderPatch
	orders := mock.NewOrderRepository()
	orders.UpdateFunc = func(ctx context.Context, id string, patch models.OrderPatch) (*models.Order, error) {
		got = patch
		return &models.Order{ID: 12}, nil
	}
	engine := newTestAPI(t, Repositories{Admins: newAdminRepo(), Orders: orders}, nil)
	cookie := signIn(t, engine)

	w := doRequest(engine, http.MethodPut, "/api/aorders/12", OrderUpdateRequest{Date: "2024-03-09"}, cookie)
	assertStatusCode(t, w, http.StatusOK)
	require.NotNil(t, got.Date)
	assert.True(t, got.Date.Equal(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)))
	assert.Nil(t, got.Status)

	// value submitted by a datetime-local input
	w = doRequest(engine, http.MethodPut, "/api/aorders/12", OrderUpdateRequest{Date: "2024-05-01T10:30"}, cookie)
	assertStatusCode(t, w, http.StatusOK)
	require.NotNil(t, got.Date)
	assert.True(t, got.Date.Equal(time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)))

	w = doRequest(engine, http.MethodPut, "/api/aorders/12", OrderUpdateRequest{Date: "next tuesday"}, cookie)
	assertStatusCode(t, w, http.StatusBadRequest)
	assertJSONError(t, w, "Invalid date")
}

func TestOrders_NotFound(t *testing.T) {
	orders := mock.NewOrderRepository()
	orders.UpdateFunc = func(ctx context.Context, id string, patch models.OrderPatch) (*models.Order, error) {
		return nil, services.ErrNotFound
	}
	orders.SoftDeleteFunc = func(ctx context.Context, id string) error {
		return services.ErrNotFound
	}
	engine := newTestAPI(t, Repositories{Admins: newAdminRepo(), Orders: orders}, nil)
	cookie := signIn(t, engine)

	w := doRequest(engine, http.MethodPut, "/api/aorders/404", OrderUpdateRequest{Status: "Pending"}, cookie)
	assertStatusCode(t, w, http.StatusNotFound)
	assertJSONError(t, w, "Order not found")

	w = doRequest(engine, http.MethodPut, "/api/aorders/404/soft-delete", nil, cookie)
	assertStatusCode(t, w, http.StatusNotFound)
	assert.Equal(t, []interface{}{"404"}, orders.Calls["SoftDelete"])
	assert.Len(t, orders.Calls["Update"], 1, "soft-delete must not reach the update handler")
}

func TestOrders_ListAndSoftDeleteRequireSession(t *testing.T) {
	orders := mock.NewOrderRepository()
	engine := newTestAPI(t, Repositories{Orders: orders}, nil)

	assertStatusCode(t, doRequest(engine, http.MethodGet, "/api/aorders", nil), http.StatusUnauthorized)
	assertStatusCode(t, doRequest(engine, http.MethodPut, "/api/aorders/1", OrderUpdateRequest{Status: "Pending"}), http.StatusUnauthorized)
	assertStatusCode(t, doRequest(engine, http.MethodPut, "/api/aorders/1/soft-delete", nil), http.StatusUnauthorized)
	assert.Empty(t, orders.Calls)
}
