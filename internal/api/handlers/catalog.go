package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/api/middleware"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/catalog"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/config"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/errors"
	service "github.com/Niral-09/herbal-cosmetics-ecommerce/internal/services"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/utils"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/utils/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
	cfg            *config.Catalog
}

func NewCatalogHandler(catalogService service.CatalogService, cfg *config.Catalog) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, cfg: cfg}
}

// ListProducts godoc
//	@Summary		Query the storefront catalog
//	@Description	Filters by search text, price range and facets, then sorts and paginates.
//	@Tags			Products
//	@Produce		json
//	@Param			q			query		string	false	"Search text"
//	@Param			min_price	query		number	false	"Lower price bound (default 0)"
//	@Param			max_price	query		number	false	"Upper price bound (default price ceiling)"
//	@Param			category	query		string	false	"Category slugs, comma separated or repeated"
//	@Param			skin_type	query		string	false	"Skin type tags"
//	@Param			ingredient	query		string	false	"Ingredient tags"
//	@Param			brand		query		string	false	"Brand slugs"
//	@Param			sort		query		string	false	"popularity|price-asc|price-desc|newest|rating|name-asc|name-desc"
//	@Param			page		query		int		false	"Page number (default 1)"
//	@Param			page_size	query		int		false	"Items per page"
//	@Param			view		query		string	false	"page (default) or more for every result up to page"
//	@Success		200			{object}	models.ProductPage
//	@Failure		400			{object}	response.ErrorResponse	"Invalid query parameter"
//	@Router			/api/v1/products [get]
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		q, err := h.parseQuery(r)
		if err != nil {
			logger.Warn("Invalid catalog query", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		page, pageSize, err := pageParams(r, h.cfg.PageSize, h.cfg.MaxPageSize)
		if err != nil {
			logger.Warn("Invalid catalog pagination", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		list := h.catalogService.ListProducts
		switch r.URL.Query().Get("view") {
		case "", "page":
		case "more":
			list = h.catalogService.LoadMore
		default:
			logger.Warn("Invalid catalog view", slog.String("view", r.URL.Query().Get("view")))
			response.Error(w, errors.BadRequestError("Invalid view").WithDetail("view must be page or more"))
			return
		}

		result, err := list(r.Context(), q, page, pageSize)
		if err != nil {
			logger.Error("Failed to list products", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Products listed",
			slog.Int("total", result.Total),
			slog.Int("page", page),
			slog.String("sort", string(q.SortKey)))
		response.Success(w, http.StatusOK, result)
	}
}

func (h *CatalogHandler) parseQuery(r *http.Request) (catalog.Query, error) {
	q := catalog.NewQuery()
	q.PriceRange.Max = h.cfg.Ceiling()

	q.SearchText = strings.TrimSpace(r.URL.Query().Get("q"))
	q.SortKey = catalog.ParseSortKey(r.URL.Query().Get("sort"))
	q.Categories = utils.QueryList(r, "category")
	q.SkinTypes = utils.QueryList(r, "skin_type")
	q.Ingredients = utils.QueryList(r, "ingredient")
	q.Brands = utils.QueryList(r, "brand")

	minPrice, err := utils.QueryDecimal(r, "min_price")
	if err != nil {
		return q, errors.BadRequestError("Invalid price range").WithDetail(err.Error())
	}
	if minPrice != nil {
		q.PriceRange.Min = *minPrice
	}

	maxPrice, err := utils.QueryDecimal(r, "max_price")
	if err != nil {
		return q, errors.BadRequestError("Invalid price range").WithDetail(err.Error())
	}
	if maxPrice != nil {
		q.PriceRange.Max = *maxPrice
	}

	return q, nil
}

// FeaturedProducts godoc
//	@Summary	Featured products for the home page
//	@Tags		Products
//	@Produce	json
//	@Success	200	{array}	models.Product
//	@Router		/api/v1/products/featured [get]
func (h *CatalogHandler) FeaturedProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		products, err := h.catalogService.FeaturedProducts(r.Context())
		if err != nil {
			logger.Error("Failed to load featured products", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

// FilterOptions godoc
//	@Summary	Facet counts and price bounds for the filter sidebar
//	@Tags		Products
//	@Produce	json
//	@Success	200	{object}	models.FilterMetadata
//	@Router		/api/v1/products/filters [get]
func (h *CatalogHandler) FilterOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		meta, err := h.catalogService.FilterOptions(r.Context())
		if err != nil {
			logger.Error("Failed to build filter options", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, meta)
	}
}

// GetProduct godoc
//	@Summary	Get a product by ID
//	@Tags		Products
//	@Produce	json
//	@Param		id	path		string	true	"Product ID"
//	@Success	200	{object}	models.Product
//	@Failure	404	{object}	response.ErrorResponse	"Product not found"
//	@Failure	502	{object}	response.ErrorResponse	"Product source unavailable"
//	@Router		/api/v1/products/{id} [get]
func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := pathValue(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		logger = logger.With(slog.String("productId", id))

		product, err := h.catalogService.GetProduct(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get product", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// CategoryTree godoc
//	@Summary	Category hierarchy with product counts
//	@Tags		Products
//	@Produce	json
//	@Success	200	{array}	models.CategoryNode
//	@Router		/api/v1/categories/tree [get]
func (h *CatalogHandler) CategoryTree() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		tree, err := h.catalogService.CategoryTree(r.Context())
		if err != nil {
			logger.Error("Failed to build category tree", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, tree)
	}
}
