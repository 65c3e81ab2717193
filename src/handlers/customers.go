package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rubybellylechon/admin-api/src/models"
	"github.com/rubybellylechon/admin-api/src/repositories"
	"github.com/rubybellylechon/admin-api/src/router"
)

// CustomerHandler serves /api/acustomer
type CustomerHandler struct {
	customers repositories.CustomerRepository
}

// NewCustomerHandler creates a customer handler
func NewCustomerHandler(customers repositories.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// HandleList handles GET /api/acustomer
func (h *CustomerHandler) HandleList(c *gin.Context, _ router.Params) error {
	customers, err := h.customers.List(c.Request.Context())
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, customers)
	return nil
}

// HandleCreate handles POST /api/acustomer
func (h *CustomerHandler) HandleCreate(c *gin.Context, _ router.Params) error {
	var req models.Customer
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	customer, err := h.customers.Create(c.Request.Context(), req)
	if err != nil {
		return err
	}
	c.JSON(http.StatusCreated, customer)
	return nil
}

// HandleUpdate handles PUT /api/acustomer/{id}
func (h *CustomerHandler) HandleUpdate(c *gin.Context, params router.Params) error {
	var req models.Customer
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	customer, err := h.customers.Update(c.Request.Context(), params.Get("id"), req)
	if err != nil {
		return resourceError(err, "Customer not found")
	}
	c.JSON(http.StatusOK, customer)
	return nil
}

// HandleDelete physically removes a customer
func (h *CustomerHandler) HandleDelete(c *gin.Context, params router.Params) error {
	if err := h.customers.Delete(c.Request.Context(), params.Get("id")); err != nil {
		return resourceError(err, "Customer not found")
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
	return nil
}
