package models

import "time"

// Category represents a product category row.
type Category struct {
	ID           int       `db:"id" json:"_id"`
	Name         string    `db:"name" json:"name"`
	Slug         string    `db:"slug" json:"slug"`
	Image        string    `db:"image" json:"image,omitempty"`
	DisplayImage string    `db:"display_image" json:"displayImage,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"-"`
	UpdatedAt    time.Time `db:"updated_at" json:"-"`

	// Derived from current product associations (populated via aggregate)
	ProductCount int `db:"product_count" json:"productCount"`
}
