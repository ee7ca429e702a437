package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/bazarly/storefront_api/internal/catalog"
	"github.com/bazarly/storefront_api/internal/utils"
)

// ProductLister serves the general active-product listing.
type ProductLister interface {
	ListProducts(categorySlug string, limit int) ([]catalog.ProductView, error)
}

// ProductHandler handles the storefront product listing endpoint.
type ProductHandler struct {
	catalog ProductLister
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(catalog ProductLister) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// GetProducts handles GET /api/products with optional category (slug) and
// limit parameters. The response is a bare JSON array of product views.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	categorySlug := c.Query("category")

	limit := 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	products, err := h.catalog.ListProducts(categorySlug, limit)
	if err != nil {
		log.Error().Err(err).Msg("product listing failed")
		utils.StorefrontError(c, 500, "Failed to fetch products")
		return
	}

	c.JSON(200, products)
}
