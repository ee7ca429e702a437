package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/bazarly/storefront_api/internal/catalog"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubSearcher struct {
	views []catalog.ProductView
	err   error
	calls int
}

func (s *stubSearcher) SearchProducts(query string) ([]catalog.ProductView, error) {
	s.calls++
	return s.views, s.err
}

func searchRouter(s ProductSearcher) *gin.Engine {
	r := gin.New()
	r.GET("/api/search", NewSearchHandler(s).Search)
	return r
}

func TestSearch_MissingQueryReturns400(t *testing.T) {
	stub := &stubSearcher{}
	r := searchRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp["error"] == "" {
		t.Error("expected an error message in the response")
	}
	if stub.calls != 0 {
		t.Errorf("service was called %d times for a missing query", stub.calls)
	}
}

func TestSearch_ReturnsBareArray(t *testing.T) {
	stub := &stubSearcher{views: []catalog.ProductView{
		{ID: "1", ProductID: "PRD-001", Name: "Laptop Pro", Price: 1200},
		{ID: "2", ProductID: "PRD-002", Name: "Laptop Air", Price: 900},
	}}
	r := searchRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=laptop", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var views []catalog.ProductView
	if err := json.NewDecoder(w.Body).Decode(&views); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 products, got %d", len(views))
	}
	if views[0].Name != "Laptop Pro" {
		t.Errorf("unexpected first result: %+v", views[0])
	}
}

func TestSearch_InternalErrorReturns500(t *testing.T) {
	stub := &stubSearcher{err: errors.New("connection refused")}
	r := searchRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=laptop", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp["error"] != "Failed to search products" {
		t.Errorf("unexpected error message: %q", resp["error"])
	}
}
