package service

import (
	"context"
	"testing"
	"time"

	"github.com/bazarly/storefront_api/internal/catalog"
	"github.com/bazarly/storefront_api/internal/models"
)

func dealProduct(id int, name string, price float64, originalPrice *float64, category string) models.Product {
	p := models.Product{
		ID:        id,
		ProductID: name,
		Name:      name,
		Price:     price,
		Rating:    4,
		InStock:   true,
		IsActive:  true,
		CreatedAt: time.Date(2025, 5, 1, 0, 0, 0, id, time.UTC),
		UpdatedAt: time.Date(2025, 5, 1, 0, 0, 0, id, time.UTC),
	}
	p.OriginalPrice = originalPrice
	if category != "" {
		p.CategoryID = intPtr(1)
		p.CategoryName = strPtr(category)
	}
	return p
}

func TestDeals_DerivedValuesComeFromFullEligibleList(t *testing.T) {
	store := &fakeProductStore{deals: []models.Product{
		dealProduct(1, "half off", 100, floatPtr(200), "Food"),          // 50%
		dealProduct(2, "quarter off", 75, floatPtr(100), "Electronics"), // 25%
	}}
	svc := NewDealsService(store, nil)
	svc.now = func() time.Time { return time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC) }

	// a filter that excludes everything but one item
	filters := catalog.DefaultDealsFilters()
	filters.Category = "Food"

	result, err := svc.Deals(context.Background(), filters)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Showing != 1 || result.Total != 2 {
		t.Errorf("showing/total = %d/%d, want 1/2", result.Showing, result.Total)
	}
	if result.MaxDiscount != 50 {
		t.Errorf("maxDiscount = %d, want 50 (from the full list)", result.MaxDiscount)
	}
	want := []string{"all", "Food", "Electronics"}
	if len(result.Categories) != 3 || result.Categories[1] != want[1] || result.Categories[2] != want[2] {
		t.Errorf("categories = %v, want %v", result.Categories, want)
	}
	if result.EndsIn.Hours != 11 || result.EndsIn.Minutes != 59 || result.EndsIn.Seconds != 59 {
		t.Errorf("endsIn = %+v, want 11h59m59s", result.EndsIn)
	}
}

func TestDeals_GateExcludesNonDiscounted(t *testing.T) {
	store := &fakeProductStore{deals: []models.Product{
		dealProduct(1, "real deal", 50, floatPtr(100), "Food"),
		dealProduct(2, "no original", 50, nil, "Food"),
		dealProduct(3, "original below price", 50, floatPtr(40), "Food"),
	}}
	svc := NewDealsService(store, nil)

	result, err := svc.Deals(context.Background(), catalog.Filters{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 1 || len(result.Deals) != 1 || result.Deals[0].Name != "real deal" {
		t.Errorf("gate let through %d items: %+v", result.Total, result.Deals)
	}
}

func TestDeals_DefaultSortIsDiscountHigh(t *testing.T) {
	store := &fakeProductStore{deals: []models.Product{
		dealProduct(1, "small", 90, floatPtr(100), "Food"),  // 10%
		dealProduct(2, "big", 20, floatPtr(100), "Food"),    // 80%
		dealProduct(3, "medium", 50, floatPtr(100), "Food"), // 50%
	}}
	svc := NewDealsService(store, nil)

	result, err := svc.Deals(context.Background(), catalog.DefaultDealsFilters())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := make([]string, 0, len(result.Deals))
	for _, d := range result.Deals {
		got = append(got, d.Name)
	}
	if len(got) != 3 || got[0] != "big" || got[1] != "medium" || got[2] != "small" {
		t.Errorf("discount-high order = %v", got)
	}
}

type fakeDealsCache struct {
	deals    []catalog.ProductView
	hit      bool
	setCalls int
}

func (f *fakeDealsCache) GetDeals(ctx context.Context) ([]catalog.ProductView, bool) {
	return f.deals, f.hit
}

func (f *fakeDealsCache) SetDeals(ctx context.Context, deals []catalog.ProductView) error {
	f.setCalls++
	f.deals = deals
	return nil
}

func TestDeals_CacheHitSkipsStore(t *testing.T) {
	cache := &fakeDealsCache{
		deals: []catalog.ProductView{{Name: "cached", Price: 50, OriginalPrice: floatPtr(100), InStock: true, Rating: 5}},
		hit:   true,
	}
	svc := NewDealsService(&fakeProductStore{}, cache)

	result, err := svc.Deals(context.Background(), catalog.Filters{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 1 || result.Deals[0].Name != "cached" {
		t.Errorf("expected cached deals, got %+v", result.Deals)
	}
}
