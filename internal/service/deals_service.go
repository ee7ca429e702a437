package service

import (
	"context"
	"time"

	"github.com/bazarly/storefront_api/internal/catalog"
)

// DealsCache caches the eligible-deals list until the end of the day.
type DealsCache interface {
	GetDeals(ctx context.Context) ([]catalog.ProductView, bool)
	SetDeals(ctx context.Context, deals []catalog.ProductView) error
}

// DealsResult is the payload backing the deals page: the filtered deals
// plus the derived values the page recomputes from the full candidate list.
type DealsResult struct {
	Deals       []catalog.ProductView `json:"deals"`
	Categories  []string              `json:"categories"`
	MaxDiscount int                   `json:"maxDiscount"`
	Total       int                   `json:"total"`
	Showing     int                   `json:"showing"`
	EndsIn      catalog.TimeLeft      `json:"endsIn"`
}

// DealsService serves today's deals: products with a strictly positive
// discount, filtered and sorted by the catalog engine.
type DealsService struct {
	products ProductStore
	cache    DealsCache
	now      func() time.Time
}

// NewDealsService constructs a DealsService. cache may be nil.
func NewDealsService(products ProductStore, cache DealsCache) *DealsService {
	return &DealsService{products: products, cache: cache, now: time.Now}
}

// Deals applies the filter configuration to today's eligible deals.
// Derived values (category list, max discount, total) always come from the
// full eligible list, not the filtered subset.
func (s *DealsService) Deals(ctx context.Context, filters catalog.Filters) (*DealsResult, error) {
	eligible, err := s.eligibleDeals(ctx)
	if err != nil {
		return nil, err
	}

	filtered := catalog.Apply(eligible, filters)
	return &DealsResult{
		Deals:       filtered,
		Categories:  catalog.CategoryNames(eligible),
		MaxDiscount: catalog.MaxDiscount(eligible),
		Total:       len(eligible),
		Showing:     len(filtered),
		EndsIn:      catalog.Remaining(s.now()),
	}, nil
}

func (s *DealsService) eligibleDeals(ctx context.Context) ([]catalog.ProductView, error) {
	if s.cache != nil {
		if deals, ok := s.cache.GetDeals(ctx); ok {
			return deals, nil
		}
	}

	products, err := s.products.GetDeals()
	if err != nil {
		return nil, err
	}
	// The repository query already filters on original_price > price;
	// the gate re-checks it for stores that do not.
	deals := catalog.EligibleDeals(toViews(products))
	if s.cache != nil {
		_ = s.cache.SetDeals(ctx, deals)
	}
	return deals, nil
}
