package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rubybellylechon/admin-api/src/models"
	"github.com/rubybellylechon/admin-api/src/repositories"
	"github.com/rubybellylechon/admin-api/src/router"
)

// OrderHandler serves /api/aorders
type OrderHandler struct {
	orders repositories.OrderRepository
}

// NewOrderHandler creates an order handler
func NewOrderHandler(orders repositories.OrderRepository) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// OrderUpdateRequest is the body of PUT /api/aorders/{id}. Empty strings
// count as absent.
type OrderUpdateRequest struct {
	Status string `json:"status"`
	Date   string `json:"date"`
}

func (r OrderUpdateRequest) patch() (models.OrderPatch, error) {
	var patch models.OrderPatch
	if r.Status != "" {
		status := r.Status
		patch.Status = &status
	}
	if r.Date != "" {
		date, err := models.ParseTime(r.Date)
		if err != nil {
			return patch, &router.HTTPError{
				Status:  http.StatusBadRequest,
				Message: "Invalid date",
				Details: err.Error(),
				Err:     err,
			}
		}
		patch.Date = &date
	}
	return patch, nil
}

// HandleList handles GET /api/aorders, newest first
func (h *OrderHandler) HandleList(c *gin.Context, _ router.Params) error {
	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, orders)
	return nil
}

// HandleUpdate handles PUT /api/aorders/{id} and echoes the updated order
func (h *OrderHandler) HandleUpdate(c *gin.Context, params router.Params) error {
	var req OrderUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	patch, err := req.patch()
	if err != nil {
		return err
	}
	if patch.Empty() {
		return router.BadRequest("No updates provided")
	}

	order, err := h.orders.Update(c.Request.Context(), params.Get("id"), patch)
	if err != nil {
		return resourceError(err, "Order not found")
	}
	c.JSON(http.StatusOK, order)
	return nil
}

// HandleSoftDelete handles PUT /api/aorders/{id}/soft-delete
func (h *OrderHandler) HandleSoftDelete(c *gin.Context, params router.Params) error {
	if err := h.orders.SoftDelete(c.Request.Context(), params.Get("id")); err != nil {
		return resourceError(err, "Order not found")
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	return nil
}
