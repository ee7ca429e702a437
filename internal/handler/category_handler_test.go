package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/bazarly/storefront_api/internal/models"
)

type stubCategoryLister struct {
	categories []models.Category
	err        error
}

func (s *stubCategoryLister) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories, s.err
}

func categoryRouter(s CategoryLister) *gin.Engine {
	r := gin.New()
	r.GET("/api/categories", NewCategoryHandler(s).GetCategories)
	return r
}

func TestGetCategories_ReturnsListing(t *testing.T) {
	stub := &stubCategoryLister{categories: []models.Category{
		{ID: 1, Name: "Electronics", Slug: "electronics", ProductCount: 12},
		{ID: 2, Name: "Food", Slug: "food", ProductCount: 3},
	}}
	r := categoryRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var categories []models.Category
	if err := json.NewDecoder(w.Body).Decode(&categories); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	if categories[0].ProductCount != 12 {
		t.Errorf("productCount = %d, want 12", categories[0].ProductCount)
	}
}

func TestGetCategories_EmptyListingIsArray(t *testing.T) {
	r := categoryRouter(&stubCategoryLister{})

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != "[]" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}

func TestGetCategories_InternalErrorReturns500(t *testing.T) {
	r := categoryRouter(&stubCategoryLister{err: errors.New("db down")})

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp["error"] == "" {
		t.Error("expected an error message in the response")
	}
}
