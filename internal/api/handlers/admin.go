package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/api/middleware"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/catalog"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/config"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/errors"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	service "github.com/Niral-09/herbal-cosmetics-ecommerce/internal/services"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/utils"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

var adminSortFields = map[string]catalog.AdminSortField{
	"name":     catalog.AdminSortName,
	"sku":      catalog.AdminSortSKU,
	"category": catalog.AdminSortCategory,
	"price":    catalog.AdminSortPrice,
	"stock":    catalog.AdminSortStock,
	"status":   catalog.AdminSortStatus,
	"rating":   catalog.AdminSortRating,
}

type AdminHandler struct {
	adminService service.AdminService
	validator    *validator.Validate
	cfg          *config.Catalog
}

func NewAdminHandler(adminService service.AdminService, cfg *config.Catalog) *AdminHandler {
	return &AdminHandler{adminService: adminService, validator: validator.New(), cfg: cfg}
}

func parseAdminFilter(r *http.Request) (catalog.AdminFilter, catalog.AdminSort, error) {
	query := r.URL.Query()

	filter := catalog.AdminFilter{
		Search:      strings.TrimSpace(query.Get("search")),
		Category:    query.Get("category"),
		Brand:       query.Get("brand"),
		Status:      models.ProductStatus(query.Get("status")),
		StockStatus: models.StockStatus(query.Get("stock_status")),
	}

	var err error
	if filter.MinPrice, err = utils.QueryDecimal(r, "min_price"); err != nil {
		return filter, catalog.AdminSort{}, errors.BadRequestError("Invalid price filter").WithDetail(err.Error())
	}
	if filter.MaxPrice, err = utils.QueryDecimal(r, "max_price"); err != nil {
		return filter, catalog.AdminSort{}, errors.BadRequestError("Invalid price filter").WithDetail(err.Error())
	}

	sort := catalog.AdminSort{Field: catalog.AdminSortName}
	if raw := strings.ToLower(query.Get("sort")); raw != "" {
		field, ok := adminSortFields[raw]
		if !ok {
			return filter, sort, errors.BadRequestError("Invalid sort field").WithDetail(raw)
		}
		sort.Field = field
	}

	switch strings.ToLower(query.Get("order")) {
	case "", "asc":
	case "desc":
		sort.Descending = true
	default:
		return filter, sort, errors.BadRequestError("Invalid sort order").WithDetail("order must be asc or desc")
	}

	return filter, sort, nil
}

// ListProducts godoc
//	@Summary		List products for the admin console
//	@Description	Search on name, SKU and brand; filter by category, brand, status, stock status and price; sort by any column.
//	@Tags			Admin
//	@Produce		json
//	@Param			search			query		string	false	"Search text"
//	@Param			category		query		string	false	"Category slug"
//	@Param			brand			query		string	false	"Brand slug"
//	@Param			status			query		string	false	"active|inactive|discontinued"
//	@Param			stock_status	query		string	false	"in-stock|low-stock|out-of-stock"
//	@Param			sort			query		string	false	"name|sku|category|price|stock|status|rating"
//	@Param			order			query		string	false	"asc|desc"
//	@Success		200				{object}	models.AdminProductPage
//	@Router			/api/v1/admin/products [get]
func (h *AdminHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		filter, sort, err := parseAdminFilter(r)
		if err != nil {
			logger.Warn("Invalid admin product query", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		page, pageSize, err := pageParams(r, h.cfg.AdminPageSize, h.cfg.MaxPageSize)
		if err != nil {
			response.Error(w, err)
			return
		}

		result, err := h.adminService.ListProducts(r.Context(), filter, sort, page, pageSize)
		if err != nil {
			logger.Error("Failed to list admin products", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, result)
	}
}

// CreateProduct godoc
//	@Summary	Create a product
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		product	body		models.CreateProductRequest	true	"Product details"
//	@Success	201		{object}	models.Product
//	@Failure	400		{object}	response.ErrorResponse	"Validation error"
//	@Failure	405		{object}	response.ErrorResponse	"Product source is read-only"
//	@Failure	409		{object}	response.ErrorResponse	"Duplicate SKU"
//	@Router		/api/v1/admin/products [post]
func (h *AdminHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create product input")
			return
		}

		product, err := h.adminService.CreateProduct(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create product", slog.String("sku", req.SKU), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product created successfully", slog.String("productId", product.ID))
		response.Success(w, http.StatusCreated, product)
	}
}

// UpdateProduct godoc
//	@Summary	Update a product
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Product ID"
//	@Param		product	body		models.UpdateProductRequest	true	"Fields to change"
//	@Success	200		{object}	models.Product
//	@Failure	404		{object}	response.ErrorResponse	"Product not found"
//	@Router		/api/v1/admin/products/{id} [put]
func (h *AdminHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := pathValue(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		logger = logger.With(slog.String("productId", id))

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update product input")
			return
		}

		product, err := h.adminService.UpdateProduct(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update product", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product updated successfully")
		response.Success(w, http.StatusOK, product)
	}
}

// DuplicateProduct godoc
//	@Summary	Copy a product under a new ID and SKU
//	@Tags		Admin
//	@Produce	json
//	@Param		id	path		string	true	"Product ID"
//	@Success	201	{object}	models.Product
//	@Router		/api/v1/admin/products/{id}/duplicate [post]
func (h *AdminHandler) DuplicateProduct() http.HandlerFunc {
	return h.productAction("duplicate", http.StatusCreated, h.adminService.DuplicateProduct)
}

// ArchiveProduct godoc
//	@Summary	Mark a product inactive
//	@Tags		Admin
//	@Produce	json
//	@Param		id	path		string	true	"Product ID"
//	@Success	200	{object}	models.Product
//	@Router		/api/v1/admin/products/{id}/archive [post]
func (h *AdminHandler) ArchiveProduct() http.HandlerFunc {
	return h.productAction("archive", http.StatusOK, h.adminService.ArchiveProduct)
}

func (h *AdminHandler) productAction(action string, status int, fn func(ctx context.Context, id string) (*models.Product, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("action", action))

		id, err := pathValue(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		product, err := fn(r.Context(), id)
		if err != nil {
			logger.Error("Product action failed", slog.String("productId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product action completed", slog.String("productId", product.ID))
		response.Success(w, status, product)
	}
}

// UpdateStock godoc
//	@Summary	Set a product's stock level
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Product ID"
//	@Param		stock	body		models.UpdateStockRequest	true	"New stock level"
//	@Success	200		{object}	models.Product
//	@Router		/api/v1/admin/products/{id}/stock [patch]
func (h *AdminHandler) UpdateStock() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := pathValue(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateStockRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid stock input", slog.String("productId", id))
			return
		}

		product, err := h.adminService.UpdateStock(r.Context(), id, *req.Stock)
		if err != nil {
			logger.Error("Failed to update stock", slog.String("productId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Stock updated", slog.String("productId", id), slog.Int("stock", product.Stock))
		response.Success(w, http.StatusOK, product)
	}
}

// BulkUpdatePrice godoc
//	@Summary	Change the price of many products
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body		models.BulkPriceRequest	true	"Product IDs, mode (percentage|fixed) and value"
//	@Success	200		{object}	models.BulkResult
//	@Router		/api/v1/admin/products/bulk/price [post]
func (h *AdminHandler) BulkUpdatePrice() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.BulkPriceRequest
		h.bulk(w, r, "price", &req, func() (*models.BulkResult, error) {
			return h.adminService.BulkUpdatePrice(r.Context(), &req)
		})
	}
}

// BulkSetCategory godoc
//	@Summary	Move many products to a category
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body		models.BulkCategoryRequest	true	"Product IDs and category"
//	@Success	200		{object}	models.BulkResult
//	@Router		/api/v1/admin/products/bulk/category [post]
func (h *AdminHandler) BulkSetCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.BulkCategoryRequest
		h.bulk(w, r, "category", &req, func() (*models.BulkResult, error) {
			return h.adminService.BulkSetCategory(r.Context(), &req)
		})
	}
}

// BulkSetStatus godoc
//	@Summary	Change the status of many products
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body		models.BulkStatusRequest	true	"Product IDs and status"
//	@Success	200		{object}	models.BulkResult
//	@Router		/api/v1/admin/products/bulk/status [post]
func (h *AdminHandler) BulkSetStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.BulkStatusRequest
		h.bulk(w, r, "status", &req, func() (*models.BulkResult, error) {
			return h.adminService.BulkSetStatus(r.Context(), &req)
		})
	}
}

// BulkDelete godoc
//	@Summary	Delete many products
//	@Tags		Admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body		models.BulkDeleteRequest	true	"Product IDs"
//	@Success	200		{object}	models.BulkResult
//	@Router		/api/v1/admin/products/bulk/delete [post]
func (h *AdminHandler) BulkDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.BulkDeleteRequest
		h.bulk(w, r, "delete", &req, func() (*models.BulkResult, error) {
			return h.adminService.BulkDelete(r.Context(), &req)
		})
	}
}

func (h *AdminHandler) bulk(w http.ResponseWriter, r *http.Request, action string, req any, run func() (*models.BulkResult, error)) {
	logger := middleware.LoggerFromContext(r.Context()).With(slog.String("action", action))

	if !utils.ParseAndValidate(r, w, req, h.validator) {
		logger.Warn("Invalid bulk input")
		return
	}

	result, err := run()
	if err != nil {
		logger.Error("Bulk action failed", slog.String("error", err.Error()))
		response.Error(w, err)
		return
	}

	logger.Info("Bulk action completed", slog.Int("affected", result.Affected))
	response.Success(w, http.StatusOK, result)
}

// Dashboard godoc
//	@Summary	Product counts and low-stock alerts
//	@Tags		Admin
//	@Produce	json
//	@Success	200	{object}	models.Dashboard
//	@Router		/api/v1/admin/dashboard [get]
func (h *AdminHandler) Dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		dashboard, err := h.adminService.Dashboard(r.Context())
		if err != nil {
			logger.Error("Failed to build dashboard", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, dashboard)
	}
}
