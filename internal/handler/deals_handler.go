package handler

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/bazarly/storefront_api/internal/catalog"
	"github.com/bazarly/storefront_api/internal/service"
	"github.com/bazarly/storefront_api/internal/utils"
)

// DealsProvider serves today's filtered deals.
type DealsProvider interface {
	Deals(ctx context.Context, filters catalog.Filters) (*service.DealsResult, error)
}

// DealsHandler handles the storefront deals endpoint.
type DealsHandler struct {
	deals DealsProvider
}

// NewDealsHandler constructs a DealsHandler.
func NewDealsHandler(deals DealsProvider) *DealsHandler {
	return &DealsHandler{deals: deals}
}

var dealsSortKeys = map[catalog.SortKey]bool{
	catalog.SortDiscountHigh: true,
	catalog.SortDiscountLow:  true,
	catalog.SortPriceLow:     true,
	catalog.SortPriceHigh:    true,
	catalog.SortRating:       true,
	catalog.SortNewest:       true,
}

// GetDeals handles GET /api/deals. Query parameters mirror the deals page
// controls: category, minDiscount, maxDiscount, minRating, inStock, sort.
// Omitted parameters take the page defaults.
func (h *DealsHandler) GetDeals(c *gin.Context) {
	filters := parseDealsFilters(c)

	result, err := h.deals.Deals(c.Request.Context(), filters)
	if err != nil {
		log.Error().Err(err).Msg("deals listing failed")
		utils.StorefrontError(c, 500, "Failed to fetch deals")
		return
	}

	c.JSON(200, result)
}

func parseDealsFilters(c *gin.Context) catalog.Filters {
	filters := catalog.DefaultDealsFilters()

	if v := c.Query("category"); v != "" {
		filters.Category = v
	}
	if v := c.Query("minDiscount"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			filters.DiscountRange.Min = n
		}
	}
	if v := c.Query("maxDiscount"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			filters.DiscountRange.Max = n
		}
	}
	if v := c.Query("minRating"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n >= 0 {
			filters.MinRating = n
		}
	}
	if v := c.Query("inStock"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			filters.InStockOnly = b
		}
	}
	if v := c.Query("sort"); v != "" {
		if key := catalog.SortKey(v); dealsSortKeys[key] {
			filters.SortBy = key
		}
	}
	return filters
}
