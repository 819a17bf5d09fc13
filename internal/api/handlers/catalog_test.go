package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/headless-commerce/storefront-gateway/internal/api/handlers"
	appErrors "github.com/headless-commerce/storefront-gateway/internal/errors"
	"github.com/headless-commerce/storefront-gateway/internal/models"
	"github.com/headless-commerce/storefront-gateway/internal/services/mocks"
	"github.com/headless-commerce/storefront-gateway/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListProductsHandler(t *testing.T) {

	t.Run("Query Passed Through, Pagination Echoed", func(t *testing.T) {
		// Arrange
		mockCatalog := new(mocks.CatalogService)
		handler := handlers.NewCatalogHandler(mockCatalog)

		expectedParams := models.ProductQueryParams{
			Search:   "mug",
			Category: "7",
			PerPage:  12,
			Page:     2,
			OrderBy:  "price",
			Order:    "asc",
		}
		list := &models.ProductList{
			Products:   []models.StoreProduct{{ID: 42, Slug: "blue-mug"}},
			Total:      57,
			TotalPages: 5,
		}
		mockCatalog.On("ListProducts", mock.Anything, expectedParams).Return(list, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodGet, "/api/wc/products?search=mug&category=7&per_page=12&page=2&orderby=price&order=asc", nil)

		// Act
		handler.ListProducts().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "57", rr.Header().Get("X-WP-Total"))
		assert.Equal(t, "5", rr.Header().Get("X-WP-TotalPages"))

		var products []models.StoreProduct
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &products))
		require.Len(t, products, 1)
		assert.Equal(t, "blue-mug", products[0].Slug)

		mockCatalog.AssertExpectations(t)
	})

	t.Run("Upstream Failure Propagates", func(t *testing.T) {
		// Arrange
		mockCatalog := new(mocks.CatalogService)
		handler := handlers.NewCatalogHandler(mockCatalog)

		mockCatalog.On("ListProducts", mock.Anything, mock.Anything).
			Return(nil, appErrors.UpstreamError("Maintenance mode", http.StatusServiceUnavailable)).Once()

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodGet, "/api/wc/products", nil)

		// Act
		handler.ListProducts().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		mockCatalog.AssertExpectations(t)
	})
}

func TestGetProductHandler(t *testing.T) {

	t.Run("Found", func(t *testing.T) {
		// Arrange
		mockCatalog := new(mocks.CatalogService)
		handler := handlers.NewCatalogHandler(mockCatalog)

		detail := &models.ProductDetail{
			Product:    &models.RestProduct{ID: 7, Slug: "blue-mug"},
			Variations: []models.RestVariation{{ID: 101}},
		}
		mockCatalog.On("GetProduct", mock.Anything, "blue-mug").Return(detail, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodGet, "/api/wc/products/blue-mug", nil)
		req.SetPathValue("slug", "blue-mug")

		// Act
		handler.GetProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.ProductDetail
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.NotNil(t, got.Product)
		assert.Equal(t, 7, got.Product.ID)

		mockCatalog.AssertExpectations(t)
	})

	t.Run("Unknown Slug Is 404", func(t *testing.T) {
		// Arrange
		mockCatalog := new(mocks.CatalogService)
		handler := handlers.NewCatalogHandler(mockCatalog)

		detail := &models.ProductDetail{Product: nil, Variations: []models.RestVariation{}}
		mockCatalog.On("GetProduct", mock.Anything, "no-such").Return(detail, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodGet, "/api/wc/products/no-such", nil)
		req.SetPathValue("slug", "no-such")

		// Act
		handler.GetProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockCatalog.AssertExpectations(t)
	})
}

func TestListCategoriesHandler(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockCatalog := new(mocks.CatalogService)
		handler := handlers.NewCatalogHandler(mockCatalog)

		list := &models.CategoryList{Categories: []models.Category{{ID: 1, Slug: "mugs"}}}
		mockCatalog.On("ListCategories", mock.Anything).Return(list, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodGet, "/api/wc/categories", nil)

		// Act
		handler.ListCategories().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.CategoryList
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got.Categories, 1)
		assert.Equal(t, "mugs", got.Categories[0].Slug)

		mockCatalog.AssertExpectations(t)
	})
}
