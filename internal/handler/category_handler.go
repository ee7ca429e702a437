package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/bazarly/storefront_api/internal/models"
	"github.com/bazarly/storefront_api/internal/utils"
)

// CategoryLister serves the storefront category listing.
type CategoryLister interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// CategoryHandler handles the storefront categories endpoint.
type CategoryHandler struct {
	catalog CategoryLister
}

// NewCategoryHandler constructs a CategoryHandler.
func NewCategoryHandler(catalog CategoryLister) *CategoryHandler {
	return &CategoryHandler{catalog: catalog}
}

// GetCategories handles GET /api/categories: every category with at least
// one active product, annotated with its product count, as a bare array.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("category listing failed")
		utils.StorefrontError(c, 500, "Failed to fetch categories")
		return
	}

	if categories == nil {
		categories = []models.Category{}
	}
	c.JSON(200, categories)
}
