package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bazarly/storefront_api/internal/catalog"
	"github.com/bazarly/storefront_api/internal/models"
)

const (
	keyCategories = "catalog:categories"
	keyDeals      = "catalog:deals"

	categoriesTTL = 5 * time.Minute
)

// CatalogCache caches the storefront's hot read paths in Redis: the
// category listing (short TTL, refreshed by the count worker and
// invalidated by admin writes) and the eligible-deals list (valid until the
// end of the local day, when the deals roll over).
type CatalogCache struct {
	redis *RedisClient
}

// NewCatalogCache creates a new CatalogCache.
func NewCatalogCache(redis *RedisClient) *CatalogCache {
	return &CatalogCache{redis: redis}
}

// GetCategories returns the cached category listing, if present.
func (c *CatalogCache) GetCategories(ctx context.Context) ([]models.Category, bool) {
	raw, err := c.redis.Get(ctx, keyCategories)
	if err != nil {
		return nil, false
	}
	var categories []models.Category
	if err := json.Unmarshal([]byte(raw), &categories); err != nil {
		log.Warn().Err(err).Msg("dropping malformed cached category listing")
		_ = c.redis.Delete(ctx, keyCategories)
		return nil, false
	}
	return categories, true
}

// SetCategories stores the category listing.
func (c *CatalogCache) SetCategories(ctx context.Context, categories []models.Category) error {
	raw, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, keyCategories, string(raw), categoriesTTL)
}

// GetDeals returns the cached eligible-deals list, if present.
func (c *CatalogCache) GetDeals(ctx context.Context) ([]catalog.ProductView, bool) {
	raw, err := c.redis.Get(ctx, keyDeals)
	if err != nil {
		return nil, false
	}
	var deals []catalog.ProductView
	if err := json.Unmarshal([]byte(raw), &deals); err != nil {
		log.Warn().Err(err).Msg("dropping malformed cached deals listing")
		_ = c.redis.Delete(ctx, keyDeals)
		return nil, false
	}
	// Created is not serialized; rebuild it so newest-first sorting works
	// on the cached path too.
	for i := range deals {
		if t, err := time.Parse(time.RFC3339Nano, deals[i].CreatedAt); err == nil {
			deals[i].Created = t
		}
	}
	return deals, true
}

// SetDeals stores the eligible-deals list with a TTL that expires at
// 23:59:59 local time, when today's deals end.
func (c *CatalogCache) SetDeals(ctx context.Context, deals []catalog.ProductView) error {
	raw, err := json.Marshal(deals)
	if err != nil {
		return err
	}
	ttl := time.Until(catalog.EndOfDay(time.Now()))
	if ttl <= 0 {
		return nil
	}
	return c.redis.Set(ctx, keyDeals, string(raw), ttl)
}

// Invalidate drops all catalog keys. Called after admin writes so the
// storefront never serves stale counts or prices from cache.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.redis.Delete(ctx, keyCategories, keyDeals)
}
