package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rubybellylechon/admin-api/src/models"
	"github.com/rubybellylechon/admin-api/src/repositories"
	"github.com/rubybellylechon/admin-api/src/router"
)

// InventoryHandler serves /api/ainventory
type InventoryHandler struct {
	inventory repositories.InventoryRepository
}

// NewInventoryHandler creates an inventory handler
func NewInventoryHandler(inventory repositories.InventoryRepository) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

// HandleList handles GET /api/ainventory
func (h *InventoryHandler) HandleList(c *gin.Context, _ router.Params) error {
	items, err := h.inventory.List(c.Request.Context())
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, items)
	return nil
}

// HandleCreate handles POST /api/ainventory
func (h *InventoryHandler) HandleCreate(c *gin.Context, _ router.Params) error {
	var req models.InventoryItem
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	item, err := h.inventory.Create(c.Request.Context(), req)
	if err != nil {
		return err
	}
	c.JSON(http.StatusCreated, item)
	return nil
}

// HandleUpdate handles PUT /api/ainventory/{id}
func (h *InventoryHandler) HandleUpdate(c *gin.Context, params router.Params) error {
	var req models.InventoryItem
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	item, err := h.inventory.Update(c.Request.Context(), params.Get("id"), req)
	if err != nil {
		return resourceError(err, "Inventory item not found")
	}
	c.JSON(http.StatusOK, item)
	return nil
}

// HandleDelete handles DELETE /api/ainventory/{id}
func (h *InventoryHandler) HandleDelete(c *gin.Context, params router.Params) error {
	if err := h.inventory.Delete(c.Request.Context(), params.Get("id")); err != nil {
		return resourceError(err, "Inventory item not found")
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted"})
	return nil
}
