package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/bazarly/storefront_api/internal/models"
	"github.com/bazarly/storefront_api/internal/service"
	"github.com/bazarly/storefront_api/internal/utils"
)

// CatalogManagementHandler backs the JWT-protected admin write surface.
type CatalogManagementHandler struct {
	mgmt *service.CatalogManagementService
}

// NewCatalogManagementHandler constructs a CatalogManagementHandler.
func NewCatalogManagementHandler(mgmt *service.CatalogManagementService) *CatalogManagementHandler {
	return &CatalogManagementHandler{mgmt: mgmt}
}

type productRequest struct {
	ProductID     string   `json:"productId" binding:"required"`
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	CategoryID    *int     `json:"categoryId"`
	Brand         string   `json:"brand"`
	Features      []string `json:"features"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	OriginalPrice *float64 `json:"originalPrice"`
	Images        []string `json:"images"`
	Rating        float64  `json:"rating" binding:"gte=0,lte=5"`
	Reviews       int      `json:"reviews" binding:"gte=0"`
	InStock       *bool    `json:"inStock"`
	IsActive      *bool    `json:"isActive"`
}

func (r *productRequest) toModel() *models.Product {
	p := &models.Product{
		ProductID:     r.ProductID,
		Name:          r.Name,
		Description:   r.Description,
		CategoryID:    r.CategoryID,
		Brand:         r.Brand,
		Features:      r.Features,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Images:        r.Images,
		Rating:        r.Rating,
		Reviews:       r.Reviews,
		InStock:       true,
		IsActive:      true,
	}
	if r.InStock != nil {
		p.InStock = *r.InStock
	}
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
	return p
}

type categoryRequest struct {
	Name         string `json:"name" binding:"required"`
	Slug         string `json:"slug" binding:"required"`
	Image        string `json:"image"`
	DisplayImage string `json:"displayImage"`
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid id")
		return 0, false
	}
	return id, true
}

// CreateProduct handles POST /v1/admin/products.
func (h *CatalogManagementHandler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	product := req.toModel()
	if err := h.mgmt.CreateProduct(c.Request.Context(), product); err != nil {
		log.Error().Err(err).Msg("product create failed")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create product")
		return
	}

	utils.Success(c, 201, "Product created", product)
}

// GetProduct handles GET /v1/admin/products/:id.
func (h *CatalogManagementHandler) GetProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	product, err := h.mgmt.GetProduct(id)
	if err != nil {
		if err == utils.ErrProductNotFound {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to get product")
		return
	}

	utils.Success(c, 200, "Product retrieved", product)
}

// UpdateProduct handles PUT /v1/admin/products/:id.
func (h *CatalogManagementHandler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	product := req.toModel()
	product.ID = id
	if err := h.mgmt.UpdateProduct(c.Request.Context(), product); err != nil {
		if err == utils.ErrProductNotFound {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		log.Error().Err(err).Int("id", id).Msg("product update failed")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update product")
		return
	}

	utils.Success(c, 200, "Product updated", product)
}

// UpdateProductStatus handles PATCH /v1/admin/products/:id/status.
func (h *CatalogManagementHandler) UpdateProductStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		IsActive *bool `json:"isActive" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.mgmt.SetProductStatus(c.Request.Context(), id, *req.IsActive); err != nil {
		if err == utils.ErrProductNotFound {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update product status")
		return
	}

	utils.Success(c, 200, "Product status updated", gin.H{"id": id, "isActive": *req.IsActive})
}

// DeleteProduct handles DELETE /v1/admin/products/:id.
func (h *CatalogManagementHandler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.mgmt.DeleteProduct(c.Request.Context(), id); err != nil {
		if err == utils.ErrProductNotFound {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete product")
		return
	}

	utils.Success(c, 200, "Product deleted", gin.H{"id": id})
}

// ListCategories handles GET /v1/admin/categories (all categories,
// including those without products).
func (h *CatalogManagementHandler) ListCategories(c *gin.Context) {
	categories, err := h.mgmt.ListCategories()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to list categories")
		return
	}

	utils.Success(c, 200, "Categories retrieved", gin.H{"categories": categories})
}

// CreateCategory handles POST /v1/admin/categories.
func (h *CatalogManagementHandler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	category := &models.Category{
		Name:         req.Name,
		Slug:         req.Slug,
		Image:        req.Image,
		DisplayImage: req.DisplayImage,
	}
	if err := h.mgmt.CreateCategory(c.Request.Context(), category); err != nil {
		log.Error().Err(err).Msg("category create failed")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create category")
		return
	}

	utils.Success(c, 201, "Category created", category)
}

// UpdateCategory handles PUT /v1/admin/categories/:id.
func (h *CatalogManagementHandler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	category := &models.Category{
		ID:           id,
		Name:         req.Name,
		Slug:         req.Slug,
		Image:        req.Image,
		DisplayImage: req.DisplayImage,
	}
	if err := h.mgmt.UpdateCategory(c.Request.Context(), category); err != nil {
		if err == utils.ErrCategoryNotFound {
			utils.Error(c, 404, "CATEGORY_NOT_FOUND", "Category not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update category")
		return
	}

	utils.Success(c, 200, "Category updated", category)
}

// DeleteCategory handles DELETE /v1/admin/categories/:id.
func (h *CatalogManagementHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.mgmt.DeleteCategory(c.Request.Context(), id); err != nil {
		if err == utils.ErrCategoryNotFound {
			utils.Error(c, 404, "CATEGORY_NOT_FOUND", "Category not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete category")
		return
	}

	utils.Success(c, 200, "Category deleted", gin.H{"id": id})
}
