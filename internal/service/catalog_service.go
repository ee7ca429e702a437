package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/bazarly/storefront_api/internal/catalog"
	"github.com/bazarly/storefront_api/internal/models"
	"github.com/bazarly/storefront_api/internal/utils"
)

// ProductStore is the read surface the catalog service needs from the
// product repository.
type ProductStore interface {
	Search(query string, limit int) ([]models.Product, error)
	GetAll(categorySlug string, limit int) ([]models.Product, error)
	GetDeals() ([]models.Product, error)
}

// CategoryStore is the read surface for categories.
type CategoryStore interface {
	GetWithProducts() ([]models.Category, error)
}

// CategoryCache caches the storefront category listing.
type CategoryCache interface {
	GetCategories(ctx context.Context) ([]models.Category, bool)
	SetCategories(ctx context.Context, categories []models.Category) error
}

// CatalogService provides the storefront read paths: search, product
// listing and category listing.
type CatalogService struct {
	products    ProductStore
	categories  CategoryStore
	cache       CategoryCache
	searchLimit int
}

// NewCatalogService constructs a CatalogService. cache may be nil, in which
// case category listings always hit the database.
func NewCatalogService(products ProductStore, categories CategoryStore, cache CategoryCache, searchLimit int) *CatalogService {
	if searchLimit <= 0 {
		searchLimit = 20
	}
	if searchLimit > 50 {
		searchLimit = 50
	}
	return &CatalogService{
		products:    products,
		categories:  categories,
		cache:       cache,
		searchLimit: searchLimit,
	}
}

// SearchProducts returns products matching the free-text query. An empty
// or whitespace-only query is rejected before any database work happens.
func (s *CatalogService) SearchProducts(query string) ([]catalog.ProductView, error) {
	if strings.TrimSpace(query) == "" {
		return nil, utils.ErrQueryRequired
	}

	products, err := s.products.Search(query, s.searchLimit)
	if err != nil {
		return nil, err
	}
	return toViews(products), nil
}

// ListProducts returns the general active-product listing, optionally
// narrowed to a category slug and capped at limit (0 means uncapped).
func (s *CatalogService) ListProducts(categorySlug string, limit int) ([]catalog.ProductView, error) {
	products, err := s.products.GetAll(categorySlug, limit)
	if err != nil {
		return nil, err
	}
	return toViews(products), nil
}

// ListCategories returns all categories that have at least one active
// product, each with its product count.
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	if s.cache != nil {
		if categories, ok := s.cache.GetCategories(ctx); ok {
			return categories, nil
		}
	}

	categories, err := s.categories.GetWithProducts()
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetCategories(ctx, categories)
	}
	return categories, nil
}

// toViews flattens product rows into the outward read-model: string ids,
// RFC3339 timestamps, resolved category reference or nil.
func toViews(products []models.Product) []catalog.ProductView {
	views := make([]catalog.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, toView(p))
	}
	return views
}

func toView(p models.Product) catalog.ProductView {
	v := catalog.ProductView{
		ID:            strconv.Itoa(p.ID),
		ProductID:     p.ProductID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Brand:         p.Brand,
		Images:        p.Images,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
		InStock:       p.InStock,
		Features:      p.Features,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     p.UpdatedAt.Format(time.RFC3339),
		Created:       p.CreatedAt,
	}
	if v.Images == nil {
		v.Images = []string{}
	}
	if v.Features == nil {
		v.Features = []string{}
	}
	// Resolve the category reference for display; when the join found
	// nothing the category is presented as absent rather than failing.
	if p.CategoryID != nil && p.CategoryName != nil {
		ref := &catalog.CategoryRef{
			ID:   strconv.Itoa(*p.CategoryID),
			Name: *p.CategoryName,
		}
		if p.CategorySlug != nil {
			ref.Slug = *p.CategorySlug
		}
		v.Category = ref
	}
	return v
}
