package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rubybellylechon/admin-api/src/models"
	"github.com/rubybellylechon/admin-api/src/repositories"
	"github.com/rubybellylechon/admin-api/src/router"
)

// ProductPriceHandler serves /api/aproduct-prices
type ProductPriceHandler struct {
	prices repositories.ProductPriceRepository
}

// NewProductPriceHandler creates a product price handler
func NewProductPriceHandler(prices repositories.ProductPriceRepository) *ProductPriceHandler {
	return &ProductPriceHandler{prices: prices}
}

// ProductPriceRequest is the body of price create and update. ProductID
// is ignored on update.
type ProductPriceRequest struct {
	ProductID   int64   `json:"productid"`
	Weight      string  `json:"weight"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

func (r ProductPriceRequest) model() models.ProductPrice {
	return models.ProductPrice{
		ProductID:   r.ProductID,
		Weight:      r.Weight,
		Price:       r.Price,
		Description: r.Description,
	}
}

// HandleListByProduct handles GET /api/aproduct-prices/{productId}
func (h *ProductPriceHandler) HandleListByProduct(c *gin.Context, params router.Params) error {
	prices, err := h.prices.ListByProduct(c.Request.Context(), params.Get("productId"))
	if err != nil {
		return resourceError(err, "Product not found")
	}
	c.JSON(http.StatusOK, prices)
	return nil
}

// HandleCreate handles POST /api/aproduct-prices
func (h *ProductPriceHandler) HandleCreate(c *gin.Context, _ router.Params) error {
	var req ProductPriceRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	price, err := h.prices.Create(c.Request.Context(), req.model())
	if err != nil {
		return resourceError(err, "Product not found")
	}
	c.JSON(http.StatusCreated, price)
	return nil
}

// HandleUpdate handles PUT /api/aproduct-prices/{id}
func (h *ProductPriceHandler) HandleUpdate(c *gin.Context, params router.Params) error {
	var req ProductPriceRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	price, err := h.prices.Update(c.Request.Context(), params.Get("id"), req.model())
	if err != nil {
		return resourceError(err, "Product price not found")
	}
	c.JSON(http.StatusOK, price)
	return nil
}

// HandleDelete physically removes a price row
func (h *ProductPriceHandler) HandleDelete(c *gin.Context, params router.Params) error {
	if err := h.prices.Delete(c.Request.Context(), params.Get("id")); err != nil {
		return resourceError(err, "Product price not found")
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product price deleted successfully"})
	return nil
}
