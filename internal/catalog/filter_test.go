package catalog

import (
	"reflect"
	"testing"
	"time"
)

func f64(v float64) *float64 { return &v }

func view(name, category string, price float64, originalPrice *float64, rating float64, inStock bool) ProductView {
	v := ProductView{
		Name:          name,
		Price:         price,
		OriginalPrice: originalPrice,
		Rating:        rating,
		InStock:       inStock,
	}
	if category != "" {
		v.Category = &CategoryRef{Name: category}
	}
	return v
}

func names(items []ProductView) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.Name)
	}
	return out
}

func TestDiscount(t *testing.T) {
	tests := []struct {
		name          string
		price         float64
		originalPrice *float64
		want          int
	}{
		{"half off", 100, f64(200), 50},
		{"rounded up", 70, f64(210), 67},
		{"no original price", 50, nil, 0},
		{"original equals price", 50, f64(50), 0},
		{"original below price", 50, f64(40), 0},
		{"small discount", 95, f64(100), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Discount(tt.price, tt.originalPrice); got != tt.want {
				t.Errorf("Discount(%v, %v) = %d, want %d", tt.price, tt.originalPrice, got, tt.want)
			}
		})
	}
}

func TestEligibleDeals(t *testing.T) {
	items := []ProductView{
		view("discounted", "Food", 100, f64(200), 4, true),
		view("full price", "Food", 50, nil, 2, false),
		view("bad original", "Food", 50, f64(40), 5, true),
	}

	deals := EligibleDeals(items)
	if got := names(deals); !reflect.DeepEqual(got, []string{"discounted"}) {
		t.Errorf("expected only the discounted item, got %v", got)
	}
}

func TestApply_CategoryExactMatch(t *testing.T) {
	items := []ProductView{
		view("tv", "Electronics", 300, nil, 4, true),
		view("gadget", "Electronics & Gadgets", 100, nil, 4, true),
		view("bread", "Food", 5, nil, 4, true),
	}

	got := Apply(items, Filters{Category: "Electronics"})
	if want := []string{"tv"}; !reflect.DeepEqual(names(got), want) {
		t.Errorf("category filter matched %v, want %v", names(got), want)
	}

	// the sentinel passes everything
	got = Apply(items, Filters{Category: AllCategories})
	if len(got) != 3 {
		t.Errorf("expected all 3 items with %q sentinel, got %d", AllCategories, len(got))
	}
}

func TestApply_PriceBandInclusive(t *testing.T) {
	items := []ProductView{
		view("cheap", "Food", 10, nil, 0, true),
		view("low edge", "Food", 50, nil, 0, true),
		view("high edge", "Food", 150, nil, 0, true),
		view("expensive", "Food", 151, nil, 0, true),
	}

	got := Apply(items, Filters{PriceRange: &Range{Min: 50, Max: 150}})
	if want := []string{"low edge", "high edge"}; !reflect.DeepEqual(names(got), want) {
		t.Errorf("price band kept %v, want %v", names(got), want)
	}
}

func TestApply_DiscountBandInclusive(t *testing.T) {
	items := []ProductView{
		view("5 off", "Food", 95, f64(100), 0, true),
		view("10 off", "Food", 90, f64(100), 0, true),
		view("90 off", "Food", 10, f64(100), 0, true),
		view("95 off", "Food", 5, f64(100), 0, true),
		view("no deal", "Food", 100, nil, 0, true),
	}

	got := Apply(items, Filters{DiscountRange: &Range{Min: 10, Max: 90}})
	if want := []string{"10 off", "90 off"}; !reflect.DeepEqual(names(got), want) {
		t.Errorf("discount band kept %v, want %v", names(got), want)
	}
}

func TestApply_MinRatingAndStock(t *testing.T) {
	items := []ProductView{
		view("good stocked", "Food", 10, nil, 4.5, true),
		view("good unstocked", "Food", 10, nil, 4.5, false),
		view("poor stocked", "Food", 10, nil, 2, true),
	}

	got := Apply(items, Filters{MinRating: 3})
	if want := []string{"good stocked", "good unstocked"}; !reflect.DeepEqual(names(got), want) {
		t.Errorf("min rating kept %v, want %v", names(got), want)
	}

	got = Apply(items, Filters{MinRating: 3, InStockOnly: true})
	if want := []string{"good stocked"}; !reflect.DeepEqual(names(got), want) {
		t.Errorf("rating+stock kept %v, want %v", names(got), want)
	}
}

func TestApply_DealsEndToEnd(t *testing.T) {
	items := []ProductView{
		view("first", "Food", 100, f64(200), 4, true),
		view("second", "Food", 50, nil, 2, false),
	}

	deals := EligibleDeals(items)
	if got := names(deals); !reflect.DeepEqual(got, []string{"first"}) {
		t.Fatalf("eligibility gate kept %v, want [first]", got)
	}

	got := Apply(deals, Filters{MinRating: 3})
	if !reflect.DeepEqual(names(got), []string{"first"}) {
		t.Errorf("minRating=3 should keep the 50%% deal, got %v", names(got))
	}

	// the second item alone survives neither the gate nor the stock filter
	gated := EligibleDeals(items[1:])
	if len(gated) != 0 {
		t.Fatalf("expected empty gate result, got %v", names(gated))
	}
	got = Apply(items[1:], Filters{InStockOnly: true})
	if len(got) != 0 {
		t.Errorf("inStockOnly should empty the result set, got %v", names(got))
	}
}

func TestApply_Sorts(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	items := []ProductView{
		view("beta", "Food", 90, f64(100), 3, true),   // 10% off
		view("alpha", "Food", 50, f64(200), 5, true),  // 75% off
		view("gamma", "Food", 120, f64(160), 4, true), // 25% off
	}
	items[0].Created = base.Add(2 * time.Hour)
	items[1].Created = base
	items[2].Created = base.Add(1 * time.Hour)

	tests := []struct {
		sortBy SortKey
		want   []string
	}{
		{SortDiscountHigh, []string{"alpha", "gamma", "beta"}},
		{SortDiscountLow, []string{"beta", "gamma", "alpha"}},
		{SortPriceLow, []string{"alpha", "beta", "gamma"}},
		{SortPriceHigh, []string{"gamma", "beta", "alpha"}},
		{SortRating, []string{"alpha", "gamma", "beta"}},
		{SortName, []string{"alpha", "beta", "gamma"}},
		{SortNewest, []string{"beta", "gamma", "alpha"}},
		{SortRelevance, []string{"beta", "alpha", "gamma"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.sortBy), func(t *testing.T) {
			got := Apply(items, Filters{SortBy: tt.sortBy})
			if !reflect.DeepEqual(names(got), tt.want) {
				t.Errorf("sort %s gave %v, want %v", tt.sortBy, names(got), tt.want)
			}
		})
	}
}

func TestApply_SortStable(t *testing.T) {
	items := []ProductView{
		view("one", "Food", 90, f64(100), 3, true),
		view("two", "Food", 45, f64(50), 3, true),
		view("three", "Food", 9, f64(10), 3, true),
	}

	// all three share a 10% discount, so input order must survive
	got := Apply(items, Filters{SortBy: SortDiscountHigh})
	if want := []string{"one", "two", "three"}; !reflect.DeepEqual(names(got), want) {
		t.Errorf("equal-key sort reordered items: %v", names(got))
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	items := []ProductView{
		view("b", "Food", 2, nil, 0, true),
		view("a", "Food", 1, nil, 0, true),
	}

	Apply(items, Filters{SortBy: SortName})
	if want := []string{"b", "a"}; !reflect.DeepEqual(names(items), want) {
		t.Errorf("input slice was mutated: %v", names(items))
	}
}

func TestDefaultFilters(t *testing.T) {
	search := DefaultSearchFilters(1200)
	want := Filters{
		Category:    AllCategories,
		PriceRange:  &Range{Min: 0, Max: 1200},
		MinRating:   0,
		InStockOnly: false,
		SortBy:      SortRelevance,
	}
	if !reflect.DeepEqual(search, want) {
		t.Errorf("search defaults = %+v, want %+v", search, want)
	}

	deals := DefaultDealsFilters()
	wantDeals := Filters{
		Category:      AllCategories,
		DiscountRange: &Range{Min: 10, Max: 90},
		MinRating:     0,
		InStockOnly:   true,
		SortBy:        SortDiscountHigh,
	}
	if !reflect.DeepEqual(deals, wantDeals) {
		t.Errorf("deals defaults = %+v, want %+v", deals, wantDeals)
	}

	// reset is idempotent: defaults are a fixed value, twice equals once
	if !reflect.DeepEqual(DefaultDealsFilters(), DefaultDealsFilters()) {
		t.Error("deals defaults are not deterministic")
	}
}

func TestCategoryNames(t *testing.T) {
	items := []ProductView{
		view("a", "Food", 1, nil, 0, true),
		view("b", "Electronics", 1, nil, 0, true),
		view("c", "Food", 1, nil, 0, true),
		view("d", "", 1, nil, 0, true),
	}

	got := CategoryNames(items)
	if want := []string{"all", "Food", "Electronics"}; !reflect.DeepEqual(got, want) {
		t.Errorf("CategoryNames = %v, want %v", got, want)
	}
}

func TestPriceCeiling(t *testing.T) {
	tests := []struct {
		name  string
		max   float64
		want  float64
		empty bool
	}{
		{"rounds up to next 100", 1234, 1300, false},
		{"exact boundary keeps value", 1500, 1500, false},
		{"floored at 1000", 240, 1000, false},
		{"empty list", 0, 1000, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var items []ProductView
			if !tt.empty {
				items = []ProductView{view("x", "Food", tt.max, nil, 0, true)}
			}
			if got := PriceCeiling(items); got != tt.want {
				t.Errorf("PriceCeiling = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaxDiscount(t *testing.T) {
	items := []ProductView{
		view("a", "Food", 90, f64(100), 0, true),
		view("b", "Food", 25, f64(100), 0, true),
		view("c", "Food", 100, nil, 0, true),
	}
	if got := MaxDiscount(items); got != 75 {
		t.Errorf("MaxDiscount = %d, want 75", got)
	}
}
