package catalog

import "time"

// CategoryRef is the resolved category reference attached to a product view.
type CategoryRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ProductView is the outward-facing product payload served by the storefront
// endpoints. Identifiers are plain strings and timestamps are RFC3339 text.
// Category is nil when the reference could not be resolved.
type ProductView struct {
	ID            string       `json:"_id"`
	ProductID     string       `json:"productId"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Price         float64      `json:"price"`
	OriginalPrice *float64     `json:"originalPrice,omitempty"`
	Category      *CategoryRef `json:"category"`
	Brand         string       `json:"brand"`
	Images        []string     `json:"images"`
	Rating        float64      `json:"rating"`
	Reviews       int          `json:"reviews"`
	InStock       bool         `json:"inStock"`
	Features      []string     `json:"features"`
	CreatedAt     string       `json:"createdAt"`
	UpdatedAt     string       `json:"updatedAt"`

	// Created mirrors CreatedAt so ordering never re-parses the text form.
	Created time.Time `json:"-"`
}

// CategoryName returns the resolved category name, or "" when unresolved.
func (p ProductView) CategoryName() string {
	if p.Category != nil {
		return p.Category.Name
	}
	return ""
}
