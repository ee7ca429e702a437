package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/bazarly/storefront_api/internal/models"
)

// CategoryRepository handles data access for categories.
type CategoryRepository struct {
	db *sqlx.DB
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetWithProducts returns categories that currently have at least one
// active product, each annotated with its product count. Categories with
// zero products are excluded by the inner join.
func (r *CategoryRepository) GetWithProducts() ([]models.Category, error) {
	const q = `
        SELECT c.id, c.name, c.slug, c.image, c.display_image,
               c.created_at, c.updated_at,
               COUNT(p.id) AS product_count
        FROM categories c
        JOIN products p ON p.category_id = c.id AND p.is_active = true
        GROUP BY c.id
        HAVING COUNT(p.id) > 0`

	var categories []models.Category
	if err := r.db.Select(&categories, q); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetAll returns every category regardless of product associations,
// for the admin surface.
func (r *CategoryRepository) GetAll() ([]models.Category, error) {
	const q = `
        SELECT c.id, c.name, c.slug, c.image, c.display_image,
               c.created_at, c.updated_at,
               (SELECT COUNT(1) FROM products p
                WHERE p.category_id = c.id AND p.is_active = true) AS product_count
        FROM categories c
        ORDER BY c.name`

	var categories []models.Category
	if err := r.db.Select(&categories, q); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID returns a single category by id.
func (r *CategoryRepository) GetByID(id int) (*models.Category, error) {
	const q = `
        SELECT c.id, c.name, c.slug, c.image, c.display_image,
               c.created_at, c.updated_at, 0 AS product_count
        FROM categories c
        WHERE c.id = $1
        LIMIT 1`

	var c models.Category
	if err := r.db.Get(&c, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &c, nil
}

// Create creates a new category.
func (r *CategoryRepository) Create(category *models.Category) error {
	const q = `
        INSERT INTO categories (name, slug, image, display_image)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRowx(q,
		category.Name,
		category.Slug,
		category.Image,
		category.DisplayImage,
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
}

// Update updates an existing category.
func (r *CategoryRepository) Update(category *models.Category) error {
	const q = `
        UPDATE categories
        SET name = $1, slug = $2, image = $3, display_image = $4, updated_at = NOW()
        WHERE id = $5
        RETURNING updated_at`

	return r.db.QueryRowx(q,
		category.Name,
		category.Slug,
		category.Image,
		category.DisplayImage,
		category.ID,
	).Scan(&category.UpdatedAt)
}

// Delete deletes a category by ID. Products referencing it fall back to a
// null category via the FK's ON DELETE SET NULL.
func (r *CategoryRepository) Delete(id int) error {
	const q = `DELETE FROM categories WHERE id = $1`
	_, err := r.db.Exec(q, id)
	return err
}
