package service

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog/log"

	"github.com/bazarly/storefront_api/internal/models"
	"github.com/bazarly/storefront_api/internal/utils"
)

// ProductAdminStore is the write surface for products.
type ProductAdminStore interface {
	GetByID(id int) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	UpdateStatus(id int, isActive bool) error
	Delete(id int) error
}

// CategoryAdminStore is the write surface for categories.
type CategoryAdminStore interface {
	GetAll() ([]models.Category, error)
	GetByID(id int) (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(id int) error
}

// CacheInvalidator drops cached catalog listings after a write.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// CatalogManagementService backs the admin write surface. Every successful
// write invalidates the catalog cache so product counts and deal prices the
// storefront serves stay current.
type CatalogManagementService struct {
	products   ProductAdminStore
	categories CategoryAdminStore
	cache      CacheInvalidator
}

// NewCatalogManagementService constructs a CatalogManagementService.
// cache may be nil.
func NewCatalogManagementService(products ProductAdminStore, categories CategoryAdminStore, cache CacheInvalidator) *CatalogManagementService {
	return &CatalogManagementService{products: products, categories: categories, cache: cache}
}

func (s *CatalogManagementService) GetProduct(id int) (*models.Product, error) {
	p, err := s.products.GetByID(id)
	if err == sql.ErrNoRows {
		return nil, utils.ErrProductNotFound
	}
	return p, err
}

func (s *CatalogManagementService) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := s.products.Create(product); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogManagementService) UpdateProduct(ctx context.Context, product *models.Product) error {
	if _, err := s.GetProduct(product.ID); err != nil {
		return err
	}
	if err := s.products.Update(product); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogManagementService) SetProductStatus(ctx context.Context, id int, isActive bool) error {
	if _, err := s.GetProduct(id); err != nil {
		return err
	}
	if err := s.products.UpdateStatus(id, isActive); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogManagementService) DeleteProduct(ctx context.Context, id int) error {
	if _, err := s.GetProduct(id); err != nil {
		return err
	}
	if err := s.products.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogManagementService) ListCategories() ([]models.Category, error) {
	return s.categories.GetAll()
}

func (s *CatalogManagementService) GetCategory(id int) (*models.Category, error) {
	c, err := s.categories.GetByID(id)
	if err == sql.ErrNoRows {
		return nil, utils.ErrCategoryNotFound
	}
	return c, err
}

func (s *CatalogManagementService) CreateCategory(ctx context.Context, category *models.Category) error {
	if err := s.categories.Create(category); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogManagementService) UpdateCategory(ctx context.Context, category *models.Category) error {
	if _, err := s.GetCategory(category.ID); err != nil {
		return err
	}
	if err := s.categories.Update(category); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogManagementService) DeleteCategory(ctx context.Context, id int) error {
	if _, err := s.GetCategory(id); err != nil {
		return err
	}
	if err := s.categories.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogManagementService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}
