package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bazarly/storefront_api/internal/cache"
	"github.com/bazarly/storefront_api/internal/service"
)

// CategoryCountWorker periodically recomputes category product counts and
// rewrites the cached category listing, so storefront reads stay warm and
// counts converge after admin writes even if an invalidation was missed.
type CategoryCountWorker struct {
	categories service.CategoryStore
	cache      *cache.CatalogCache
	interval   time.Duration
}

// NewCategoryCountWorker constructs a CategoryCountWorker.
func NewCategoryCountWorker(categories service.CategoryStore, catalogCache *cache.CatalogCache, interval time.Duration) *CategoryCountWorker {
	return &CategoryCountWorker{
		categories: categories,
		cache:      catalogCache,
		interval:   interval,
	}
}

// Start begins the periodic refresh loop and listens for context cancellation.
func (w *CategoryCountWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting category count worker")

	// Run immediately on start
	w.run(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			log.Info().Msg("Category count worker stopped")
			return
		}
	}
}

func (w *CategoryCountWorker) run(ctx context.Context) {
	start := time.Now()

	categories, err := w.categories.GetWithProducts()
	if err != nil {
		log.Error().Err(err).Msg("category count refresh failed")
		return
	}

	if err := w.cache.SetCategories(ctx, categories); err != nil {
		log.Error().Err(err).Msg("category cache rewrite failed")
		return
	}

	log.Debug().
		Int("categories", len(categories)).
		Dur("took", time.Since(start)).
		Msg("category counts refreshed")
}
