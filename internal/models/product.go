package models

import (
	"time"

	"github.com/lib/pq"
)

// Product represents a catalog product row.
// Fields are tagged for both DB scanning and JSON serialization.
type Product struct {
	ID            int            `db:"id" json:"id"`
	ProductID     string         `db:"product_id" json:"productId"`
	Name          string         `db:"name" json:"name"`
	Description   string         `db:"description" json:"description"`
	CategoryID    *int           `db:"category_id" json:"categoryId,omitempty"`
	Brand         string         `db:"brand" json:"brand"`
	Features      pq.StringArray `db:"features" json:"features"`
	Price         float64        `db:"price" json:"price"`
	OriginalPrice *float64       `db:"original_price" json:"originalPrice,omitempty"`
	Images        pq.StringArray `db:"images" json:"images"`
	Rating        float64        `db:"rating" json:"rating"`
	Reviews       int            `db:"reviews" json:"reviews"`
	InStock       bool           `db:"in_stock" json:"inStock"`
	IsActive      bool           `db:"is_active" json:"isActive"`
	CreatedAt     time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updatedAt"`

	// Resolved category fields (populated via LEFT JOIN)
	CategoryName *string `db:"category_name" json:"-"`
	CategorySlug *string `db:"category_slug" json:"-"`
}
