package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rubybellylechon/admin-api/src/models"
	"github.com/rubybellylechon/admin-api/src/repositories"
	"github.com/rubybellylechon/admin-api/src/router"
)

// ProductHandler serves /api/aproducts
type ProductHandler struct {
	products repositories.ProductRepository
}

// NewProductHandler creates a product handler
func NewProductHandler(products repositories.ProductRepository) *ProductHandler {
	return &ProductHandler{products: products}
}

// ProductRequest is the body of product create and update
type ProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
}

func (r ProductRequest) model() models.Product {
	return models.Product{
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
	}
}

// HandleList handles GET /api/aproducts; soft-deleted products are omitted
func (h *ProductHandler) HandleList(c *gin.Context, _ router.Params) error {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, products)
	return nil
}

// HandleCreate handles POST /api/aproducts
func (h *ProductHandler) HandleCreate(c *gin.Context, _ router.Params) error {
	var req ProductRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	product, err := h.products.Create(c.Request.Context(), req.model())
	if err != nil {
		return err
	}
	c.JSON(http.StatusCreated, product)
	return nil
}

// HandleUpdate handles PUT /api/aproducts/{id}
func (h *ProductHandler) HandleUpdate(c *gin.Context, params router.Params) error {
	var req ProductRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	if _, err := h.products.Update(c.Request.Context(), params.Get("id"), req.model()); err != nil {
		return resourceError(err, "Product not found")
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
	return nil
}

// HandleSoftDelete handles PUT and DELETE /api/aproducts/{id}/soft-delete
func (h *ProductHandler) HandleSoftDelete(c *gin.Context, params router.Params) error {
	if err := h.products.SoftDelete(c.Request.Context(), params.Get("id")); err != nil {
		return resourceError(err, "Product not found")
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product marked as deleted successfully"})
	return nil
}
