package catalog

import (
	"math"
	"sort"
)

// AllCategories is the sentinel category selection that disables the
// category predicate.
const AllCategories = "all"

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortDiscountHigh SortKey = "discount-high"
	SortDiscountLow  SortKey = "discount-low"
	SortPriceLow     SortKey = "price-low"
	SortPriceHigh    SortKey = "price-high"
	SortRating       SortKey = "rating"
	SortName         SortKey = "name"
	SortNewest       SortKey = "newest"
	SortRelevance    SortKey = "relevance"
)

// Range is an inclusive [Min, Max] band.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v falls inside the band, bounds included.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Filters is the complete filter/sort configuration for a product list.
// A nil band disables the corresponding predicate: the search page sets
// PriceRange (band on raw price), the deals page sets DiscountRange (band
// on the derived discount percentage); neither page sets both.
type Filters struct {
	Category      string
	PriceRange    *Range
	DiscountRange *Range
	MinRating     float64
	InStockOnly   bool
	SortBy        SortKey
}

// DefaultSearchFilters returns the search page defaults. maxPrice sizes the
// upper bound of the price band, normally PriceCeiling of the candidates.
func DefaultSearchFilters(maxPrice float64) Filters {
	return Filters{
		Category:    AllCategories,
		PriceRange:  &Range{Min: 0, Max: maxPrice},
		MinRating:   0,
		InStockOnly: false,
		SortBy:      SortRelevance,
	}
}

// DefaultDealsFilters returns the deals page defaults.
func DefaultDealsFilters() Filters {
	return Filters{
		Category:      AllCategories,
		DiscountRange: &Range{Min: 10, Max: 90},
		MinRating:     0,
		InStockOnly:   true,
		SortBy:        SortDiscountHigh,
	}
}

// Discount computes the derived discount percentage,
// round((1 - price/originalPrice) * 100). It is 0 when no valid original
// price exists (absent, or not greater than the current price).
func Discount(price float64, originalPrice *float64) int {
	if originalPrice == nil || *originalPrice <= price {
		return 0
	}
	return int(math.Round((1 - price / *originalPrice) * 100))
}

// EligibleDeals returns only items with a strictly positive discount. This
// is the deals eligibility gate, applied before any of the filter controls.
func EligibleDeals(items []ProductView) []ProductView {
	deals := make([]ProductView, 0, len(items))
	for _, p := range items {
		if p.OriginalPrice != nil && *p.OriginalPrice > p.Price {
			deals = append(deals, p)
		}
	}
	return deals
}

// Apply runs the full predicate pass and then the configured sort over a
// candidate list. It never mutates its input; SortRelevance preserves the
// candidate order. All predicates must pass for an item to be included.
func Apply(items []ProductView, f Filters) []ProductView {
	out := make([]ProductView, 0, len(items))
	for _, p := range items {
		if !matches(p, f) {
			continue
		}
		out = append(out, p)
	}
	sortViews(out, f.SortBy)
	return out
}

func matches(p ProductView, f Filters) bool {
	if f.Category != "" && f.Category != AllCategories && p.CategoryName() != f.Category {
		return false
	}
	if f.PriceRange != nil && !f.PriceRange.Contains(p.Price) {
		return false
	}
	if f.DiscountRange != nil && !f.DiscountRange.Contains(float64(Discount(p.Price, p.OriginalPrice))) {
		return false
	}
	if p.Rating < f.MinRating {
		return false
	}
	if f.InStockOnly && !p.InStock {
		return false
	}
	return true
}

func sortViews(items []ProductView, key SortKey) {
	switch key {
	case SortDiscountHigh:
		sort.SliceStable(items, func(i, j int) bool {
			return Discount(items[i].Price, items[i].OriginalPrice) > Discount(items[j].Price, items[j].OriginalPrice)
		})
	case SortDiscountLow:
		sort.SliceStable(items, func(i, j int) bool {
			return Discount(items[i].Price, items[i].OriginalPrice) < Discount(items[j].Price, items[j].OriginalPrice)
		})
	case SortPriceLow:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case SortPriceHigh:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	case SortRating:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Rating > items[j].Rating })
	case SortName:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	case SortNewest:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Created.After(items[j].Created) })
	case SortRelevance:
		// keep the order the search handler returned
	}
}

// CategoryNames returns the "all" sentinel followed by the distinct
// category names present in items, in first-seen order. It must be fed the
// full unfiltered candidate list, not the filtered subset.
func CategoryNames(items []ProductView) []string {
	names := []string{AllCategories}
	seen := make(map[string]bool)
	for _, p := range items {
		name := p.CategoryName()
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// PriceCeiling returns the maximum observed price rounded up to the nearest
// 100-unit boundary, floored at 1000. It sizes the price slider upper bound.
func PriceCeiling(items []ProductView) float64 {
	var max float64
	for _, p := range items {
		if p.Price > max {
			max = p.Price
		}
	}
	ceiling := math.Ceil(max/100) * 100
	if ceiling < 1000 {
		ceiling = 1000
	}
	return ceiling
}

// MaxDiscount returns the highest discount percentage present in items.
func MaxDiscount(items []ProductView) int {
	var max int
	for _, p := range items {
		if d := Discount(p.Price, p.OriginalPrice); d > max {
			max = d
		}
	}
	return max
}
