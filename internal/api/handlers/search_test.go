package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/commercekit/storefront/internal/api/handlers"
	"github.com/commercekit/storefront/internal/commerce"
	"github.com/commercekit/storefront/internal/commerce/mocks"
	appErrors "github.com/commercekit/storefront/internal/errors"
	"github.com/commercekit/storefront/internal/testutils"
	"github.com/commercekit/storefront/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T) *web.Renderer {
	t.Helper()

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	return renderer
}

func TestSearch(t *testing.T) {
	t.Run("Renders Results With Filters Applied", func(t *testing.T) {
		// Arrange
		mockProvider := new(mocks.Provider)
		searchHandler := handlers.NewSearchHandler(mockProvider, newRenderer(t))

		products := []commerce.Product{
			{ID: "prod_1", Permalink: "wireless-mouse", Name: "Wireless Mouse", Price: commerce.Price{FormattedWithSymbol: "$29.99"}},
		}
		categories := []commerce.Category{{ID: "cat_1", Slug: "accessories", Name: "Accessories"}}
		sortOptions := []commerce.SortOption{{Key: "price-asc", Name: "Price: Low to high"}}

		mockProvider.On("GetAllProducts", mock.Anything, commerce.ProductFilters{
			Category:    "accessories",
			SortOption:  "price-asc",
			SearchQuery: "mouse",
		}).Return(products, nil).Once()
		mockProvider.On("GetAllCategories", mock.Anything).Return(categories, nil).Once()
		mockProvider.On("GetSortOptions", mock.Anything).Return(sortOptions, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodGet, "/search?q=mouse&category=accessories&sort=price-asc", nil, nil)

		// Act
		searchHandler.Search().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, "Wireless Mouse")
		assert.Contains(t, body, "$29.99")
		assert.Contains(t, body, "Showing 1 results")
		assert.Contains(t, body, "mouse")
		mockProvider.AssertExpectations(t)
	})

	t.Run("Empty Catalog Still Renders", func(t *testing.T) {
		mockProvider := new(mocks.Provider)
		searchHandler := handlers.NewSearchHandler(mockProvider, newRenderer(t))

		mockProvider.On("GetAllProducts", mock.Anything, commerce.ProductFilters{}).Return([]commerce.Product{}, nil).Once()
		mockProvider.On("GetAllCategories", mock.Anything).Return([]commerce.Category{}, nil).Once()
		mockProvider.On("GetSortOptions", mock.Anything).Return([]commerce.SortOption{}, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodGet, "/", nil, nil)

		searchHandler.Search().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Showing 0 results")
		mockProvider.AssertExpectations(t)
	})

	t.Run("Stub Provider Surfaces Not Implemented", func(t *testing.T) {
		mockProvider := new(mocks.Provider)
		searchHandler := handlers.NewSearchHandler(mockProvider, newRenderer(t))

		mockProvider.On("GetAllProducts", mock.Anything, mock.Anything).
			Return(nil, appErrors.NotImplementedError("local commerce provider: GetAllProducts is not yet implemented")).Once()

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodGet, "/", nil, nil)

		searchHandler.Search().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotImplemented, rr.Code)
		assert.Contains(t, rr.Body.String(), "no commerce backend configured")
		mockProvider.AssertExpectations(t)
	})

	t.Run("Backend Failure Renders Error Page", func(t *testing.T) {
		mockProvider := new(mocks.Provider)
		searchHandler := handlers.NewSearchHandler(mockProvider, newRenderer(t))

		mockProvider.On("GetAllProducts", mock.Anything, mock.Anything).
			Return(nil, appErrors.BackendError("commerce backend returned status 500")).Once()

		rr := httptest.NewRecorder()
		req := testutils.NewRequest(http.MethodGet, "/", nil, nil)

		searchHandler.Search().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.Contains(t, rr.Body.String(), "temporarily unavailable")
		mockProvider.AssertExpectations(t)
	})
}
