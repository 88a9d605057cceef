package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/api/handlers"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/catalog"
	appErrors "github.com/Niral-09/herbal-cosmetics-ecommerce/internal/errors"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/services/mocks"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/testutils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListProducts(t *testing.T) {
	t.Run("Success - Query Parameters Are Parsed", func(t *testing.T) {
		// Arrange
		mockCatalog := mocks.NewCatalogService(t)
		handler := handlers.NewCatalogHandler(mockCatalog, catalogConfig())

		matchesQuery := mock.MatchedBy(func(q catalog.Query) bool {
			return q.SearchText == "neem" &&
				q.SortKey == catalog.SortPriceAsc &&
				q.PriceRange.Min.Equal(decimal.NewFromInt(100)) &&
				q.PriceRange.Max.Equal(decimal.NewFromInt(5000)) &&
				assert.ObjectsAreEqual([]string{"hair-care", "skin-care"}, q.Categories) &&
				assert.ObjectsAreEqual([]string{"organic-beauty"}, q.Brands)
		})
		page := &models.ProductPage{Items: []models.Product{{ID: "3", Name: "Organic Neem Shampoo"}}, Total: 1, Page: 2, PageSize: 6, TotalPages: 1}
		mockCatalog.On("ListProducts", mock.Anything, matchesQuery, 2, 6).Return(page, nil).Once()

		req := testutils.NewRequest(http.MethodGet,
			"/api/v1/products?q=neem&sort=price-low&min_price=100&category=hair-care,skin-care&brand=organic-beauty&page=2&page_size=6", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		handler.ListProducts()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		var got models.ProductPage
		resp := decodeResponse(t, recorder, &got)
		assert.True(t, resp.Success)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "3", got.Items[0].ID)
	})

	t.Run("Success - Page Size Is Capped", func(t *testing.T) {
		mockCatalog := mocks.NewCatalogService(t)
		handler := handlers.NewCatalogHandler(mockCatalog, catalogConfig())
		mockCatalog.On("ListProducts", mock.Anything, mock.AnythingOfType("catalog.Query"), 1, 100).
			Return(&models.ProductPage{Items: []models.Product{}}, nil).Once()

		req := testutils.NewRequest(http.MethodGet, "/api/v1/products?page_size=5000", nil, nil)
		recorder := httptest.NewRecorder()

		handler.ListProducts()(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Failure - Invalid Price", func(t *testing.T) {
		// Arrange
		mockCatalog := mocks.NewCatalogService(t)
		handler := handlers.NewCatalogHandler(mockCatalog, catalogConfig())
		req := testutils.NewRequest(http.MethodGet, "/api/v1/products?max_price=cheap", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		handler.ListProducts()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		resp := decodeResponse(t, recorder, nil)
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeBadRequest, resp.Error.Code)
	})

	t.Run("Success - Load More View", func(t *testing.T) {
		// Arrange
		mockCatalog := mocks.NewCatalogService(t)
		handler := handlers.NewCatalogHandler(mockCatalog, catalogConfig())
		page := &models.ProductPage{
			Items:   []models.Product{{ID: "8"}, {ID: "3"}, {ID: "4"}, {ID: "1"}},
			Total:   8,
			Page:    2,
			HasMore: true,
		}
		mockCatalog.On("LoadMore", mock.Anything, mock.AnythingOfType("catalog.Query"), 2, 2).Return(page, nil).Once()

		req := testutils.NewRequest(http.MethodGet, "/api/v1/products?view=more&page=2&page_size=2", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		handler.ListProducts()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		var got models.ProductPage
		decodeResponse(t, recorder, &got)
		assert.Len(t, got.Items, 4)
		assert.True(t, got.HasMore)
	})

	t.Run("Failure - Unknown View", func(t *testing.T) {
		mockCatalog := mocks.NewCatalogService(t)
		handler := handlers.NewCatalogHandler(mockCatalog, catalogConfig())
		req := testutils.NewRequest(http.MethodGet, "/api/v1/products?view=grid", nil, nil)
		recorder := httptest.NewRecorder()

		handler.ListProducts()(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Failure - Invalid Page", func(t *testing.T) {
		mockCatalog := mocks.NewCatalogService(t)
		handler := handlers.NewCatalogHandler(mockCatalog, catalogConfig())
		req := testutils.NewRequest(http.MethodGet, "/api/v1/products?page=0", nil, nil)
		recorder := httptest.NewRecorder()

		handler.ListProducts()(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestGetProduct(t *testing.T) {
	t.Run("Success - Product Found", func(t *testing.T) {
		// Arrange
		mockCatalog := mocks.NewCatalogService(t)
		handler := handlers.NewCatalogHandler(mockCatalog, catalogConfig())
		product := &models.Product{ID: "7", Name: "Rose Water Toner", Price: decimal.RequireFromString("129.99")}
		mockCatalog.On("GetProduct", mock.Anything, "7").Return(product, nil).Once()

		req := testutils.NewRequest(http.MethodGet, "/api/v1/products/7", nil, map[string]string{"id": "7"})
		recorder := httptest.NewRecorder()

		// Act
		handler.GetProduct()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		var got models.Product
		decodeResponse(t, recorder, &got)
		assert.Equal(t, "Rose Water Toner", got.Name)
		assert.True(t, product.Price.Equal(got.Price))
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		mockCatalog := mocks.NewCatalogService(t)
		handler := handlers.NewCatalogHandler(mockCatalog, catalogConfig())
		mockCatalog.On("GetProduct", mock.Anything, "99").Return(nil, appErrors.NotFoundError("Product not found")).Once()

		req := testutils.NewRequest(http.MethodGet, "/api/v1/products/99", nil, map[string]string{"id": "99"})
		recorder := httptest.NewRecorder()

		handler.GetProduct()(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		resp := decodeResponse(t, recorder, nil)
		assert.Equal(t, appErrors.ErrCodeNotFound, resp.Error.Code)
	})

	t.Run("Failure - Source Unavailable", func(t *testing.T) {
		mockCatalog := mocks.NewCatalogService(t)
		handler := handlers.NewCatalogHandler(mockCatalog, catalogConfig())
		mockCatalog.On("GetProduct", mock.Anything, "1").
			Return(nil, appErrors.ThirdPartyError("Failed to load product").WithError(errors.New("timeout"))).Once()

		req := testutils.NewRequest(http.MethodGet, "/api/v1/products/1", nil, map[string]string{"id": "1"})
		recorder := httptest.NewRecorder()

		handler.GetProduct()(recorder, req)

		assert.Equal(t, http.StatusBadGateway, recorder.Code)
	})
}

func TestCatalogMetadata(t *testing.T) {
	t.Run("Success - Featured", func(t *testing.T) {
		mockCatalog := mocks.NewCatalogService(t)
		handler := handlers.NewCatalogHandler(mockCatalog, catalogConfig())
		mockCatalog.On("FeaturedProducts", mock.Anything).Return([]models.Product{{ID: "1"}, {ID: "3"}}, nil).Once()

		recorder := httptest.NewRecorder()
		handler.FeaturedProducts()(recorder, testutils.NewRequest(http.MethodGet, "/api/v1/products/featured", nil, nil))

		var got []models.Product
		decodeResponse(t, recorder, &got)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Len(t, got, 2)
	})

	t.Run("Success - Filters", func(t *testing.T) {
		mockCatalog := mocks.NewCatalogService(t)
		handler := handlers.NewCatalogHandler(mockCatalog, catalogConfig())
		meta := &models.FilterMetadata{Categories: []models.FacetCount{{Value: "skin-care", Count: 4}}}
		mockCatalog.On("FilterOptions", mock.Anything).Return(meta, nil).Once()

		recorder := httptest.NewRecorder()
		handler.FilterOptions()(recorder, testutils.NewRequest(http.MethodGet, "/api/v1/products/filters", nil, nil))

		var got models.FilterMetadata
		decodeResponse(t, recorder, &got)
		require.Len(t, got.Categories, 1)
		assert.Equal(t, 4, got.Categories[0].Count)
	})

	t.Run("Failure - Category Tree Source Error", func(t *testing.T) {
		mockCatalog := mocks.NewCatalogService(t)
		handler := handlers.NewCatalogHandler(mockCatalog, catalogConfig())
		mockCatalog.On("CategoryTree", mock.Anything).Return(nil, appErrors.ThirdPartyError("Failed to load categories")).Once()

		recorder := httptest.NewRecorder()
		handler.CategoryTree()(recorder, testutils.NewRequest(http.MethodGet, "/api/v1/categories/tree", nil, nil))

		assert.Equal(t, http.StatusBadGateway, recorder.Code)
	})
}
