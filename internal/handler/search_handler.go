package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/bazarly/storefront_api/internal/catalog"
	"github.com/bazarly/storefront_api/internal/utils"
)

// ProductSearcher runs the free-text catalog search.
type ProductSearcher interface {
	SearchProducts(query string) ([]catalog.ProductView, error)
}

// SearchHandler handles the storefront search endpoint.
type SearchHandler struct {
	catalog ProductSearcher
}

// NewSearchHandler constructs a SearchHandler.
func NewSearchHandler(catalog ProductSearcher) *SearchHandler {
	return &SearchHandler{catalog: catalog}
}

// Search handles GET /api/search?q=. The response is a bare JSON array of
// product views; a missing query is a 400 and any internal failure a 500,
// both as {"error": "..."}.
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.StorefrontError(c, 400, "Query is required")
		return
	}

	products, err := h.catalog.SearchProducts(query)
	if err != nil {
		if err == utils.ErrQueryRequired {
			utils.StorefrontError(c, 400, "Query is required")
			return
		}
		log.Error().Err(err).Str("query", query).Msg("product search failed")
		utils.StorefrontError(c, 500, "Failed to search products")
		return
	}

	c.JSON(200, products)
}
