package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/bazarly/storefront_api/internal/models"
)

// productColumns selects product rows together with the resolved category.
const productColumns = `
        SELECT p.id, p.product_id, p.name, p.description, p.category_id,
               p.brand, p.features, p.price, p.original_price, p.images,
               p.rating, p.reviews, p.in_stock, p.is_active,
               p.created_at, p.updated_at,
               c.name AS category_name, c.slug AS category_slug
        FROM products p
        LEFT JOIN categories c ON c.id = p.category_id`

// ProductRepository handles data access for products.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Search returns active products where the query appears as a
// case-insensitive substring of the name, description, productId, resolved
// category name, or any feature entry. Results are newest-first and capped
// at limit. The caller is responsible for rejecting empty queries.
func (r *ProductRepository) Search(query string, limit int) ([]models.Product, error) {
	const q = productColumns + `
        WHERE p.is_active = true
        AND (p.name ILIKE '%' || $1 || '%'
             OR p.description ILIKE '%' || $1 || '%'
             OR p.product_id ILIKE '%' || $1 || '%'
             OR c.name ILIKE '%' || $1 || '%'
             OR EXISTS (SELECT 1 FROM unnest(p.features) AS f WHERE f ILIKE '%' || $1 || '%'))
        ORDER BY p.created_at DESC
        LIMIT $2`

	stmt, err := r.db.Preparex(q)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	var products []models.Product
	if err := stmt.Select(&products, query, limit); err != nil {
		return nil, err
	}
	return products, nil
}

// GetAll returns all active products, newest-first, with an optional
// category slug filter. When categorySlug is empty the filter is ignored.
// A limit of 0 means no cap.
func (r *ProductRepository) GetAll(categorySlug string, limit int) ([]models.Product, error) {
	q := productColumns + `
        WHERE p.is_active = true
        AND ($1 = '' OR c.slug = $1)
        ORDER BY p.created_at DESC`
	args := []interface{}{categorySlug}
	if limit > 0 {
		q += ` LIMIT $2`
		args = append(args, limit)
	}

	var products []models.Product
	if err := r.db.Select(&products, q, args...); err != nil {
		return nil, err
	}
	return products, nil
}

// GetDeals returns active products with a strictly positive discount
// (original_price present and greater than price), newest-first.
func (r *ProductRepository) GetDeals() ([]models.Product, error) {
	const q = productColumns + `
        WHERE p.is_active = true
        AND p.original_price IS NOT NULL
        AND p.original_price > p.price
        ORDER BY p.created_at DESC`

	var products []models.Product
	if err := r.db.Select(&products, q); err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID returns a single product by internal id.
func (r *ProductRepository) GetByID(id int) (*models.Product, error) {
	const q = productColumns + ` WHERE p.id = $1 LIMIT 1`

	var p models.Product
	if err := r.db.Get(&p, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &p, nil
}

// Create creates a new product.
func (r *ProductRepository) Create(product *models.Product) error {
	const q = `
        INSERT INTO products (product_id, name, description, category_id, brand, features,
                              price, original_price, images, rating, reviews, in_stock, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRowx(q,
		product.ProductID,
		product.Name,
		product.Description,
		product.CategoryID,
		product.Brand,
		product.Features,
		product.Price,
		product.OriginalPrice,
		product.Images,
		product.Rating,
		product.Reviews,
		product.InStock,
		product.IsActive,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

// Update updates an existing product.
func (r *ProductRepository) Update(product *models.Product) error {
	const q = `
        UPDATE products
        SET product_id = $1, name = $2, description = $3, category_id = $4,
            brand = $5, features = $6, price = $7, original_price = $8,
            images = $9, rating = $10, reviews = $11, in_stock = $12,
            is_active = $13, updated_at = NOW()
        WHERE id = $14
        RETURNING updated_at`

	return r.db.QueryRowx(q,
		product.ProductID,
		product.Name,
		product.Description,
		product.CategoryID,
		product.Brand,
		product.Features,
		product.Price,
		product.OriginalPrice,
		product.Images,
		product.Rating,
		product.Reviews,
		product.InStock,
		product.IsActive,
		product.ID,
	).Scan(&product.UpdatedAt)
}

// UpdateStatus sets the active flag of a product.
func (r *ProductRepository) UpdateStatus(id int, isActive bool) error {
	const q = `UPDATE products SET is_active = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.Exec(q, id, isActive)
	return err
}

// Delete deletes a product by ID.
func (r *ProductRepository) Delete(id int) error {
	const q = `DELETE FROM products WHERE id = $1`
	_, err := r.db.Exec(q, id)
	return err
}
