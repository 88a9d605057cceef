package service

import (
	"context"
	stdErrors "errors"
	"log/slog"
	"time"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/api/middleware"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/catalog"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/config"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/errors"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/metrics"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	repository "github.com/Niral-09/herbal-cosmetics-ecommerce/internal/repositories"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/source"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Invalidator drops cached catalog reads after a write.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

type AdminService interface {
	ListProducts(ctx context.Context, filter catalog.AdminFilter, sort catalog.AdminSort, page, pageSize int) (*models.AdminProductPage, error)
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error)
	DuplicateProduct(ctx context.Context, id string) (*models.Product, error)
	ArchiveProduct(ctx context.Context, id string) (*models.Product, error)
	UpdateStock(ctx context.Context, id string, stock int) (*models.Product, error)
	BulkUpdatePrice(ctx context.Context, req *models.BulkPriceRequest) (*models.BulkResult, error)
	BulkSetCategory(ctx context.Context, req *models.BulkCategoryRequest) (*models.BulkResult, error)
	BulkSetStatus(ctx context.Context, req *models.BulkStatusRequest) (*models.BulkResult, error)
	BulkDelete(ctx context.Context, req *models.BulkDeleteRequest) (*models.BulkResult, error)
	Dashboard(ctx context.Context) (*models.Dashboard, error)
}

type adminService struct {
	source      source.ProductSource
	repo        repository.ProductRepository
	invalidator Invalidator
	validate    *validator.Validate
	cfg         *config.Catalog
	now         func() time.Time
}

// NewAdminService builds the back-office service. repo is nil when the
// catalog is served by a remote API, which makes every write fail with
// ReadOnlySourceError. invalidator may be nil.
func NewAdminService(src source.ProductSource, repo repository.ProductRepository, invalidator Invalidator, validate *validator.Validate, cfg *config.Catalog) AdminService {
	return &adminService{
		source:      src,
		repo:        repo,
		invalidator: invalidator,
		validate:    validate,
		cfg:         cfg,
		now:         time.Now,
	}
}

func (s *adminService) writable() error {
	if s.repo == nil {
		return errors.ReadOnlySourceError("Products are managed by the remote catalog")
	}

	return nil
}

func (s *adminService) changed(ctx context.Context) {
	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx)
	}
}

func (s *adminService) products(ctx context.Context) ([]models.Product, error) {
	if s.repo != nil {
		products, err := s.repo.ListProducts(ctx)
		if err != nil {
			return nil, errors.DatabaseError("Failed to load products").WithError(err)
		}
		return products, nil
	}

	products, err := s.source.Products(ctx)
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to load products").WithError(err)
	}

	return products, nil
}

func (s *adminService) find(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	return product, nil
}

func (s *adminService) check(p *models.Product) error {
	if err := catalog.Validate(s.validate, p); err != nil {
		return errors.ValidationError("Invalid product").WithDetail(err.Error()).WithError(err)
	}

	return nil
}

// save writes a single edited product.
func (s *adminService) save(ctx context.Context, p *models.Product) error {
	if err := s.check(p); err != nil {
		return err
	}

	if err := s.repo.UpdateProducts(ctx, []models.Product{*p}); err != nil {
		return writeError(err)
	}

	s.changed(ctx)

	return nil
}

func writeError(err error) error {
	switch {
	case stdErrors.Is(err, repository.ErrProductNotFound):
		return errors.NotFoundError("Product not found").WithError(err)
	case stdErrors.Is(err, repository.ErrDuplicateSKU):
		return errors.DuplicateEntryError("A product with this SKU already exists").WithError(err)
	default:
		return errors.DatabaseError("Failed to save product").WithError(err)
	}
}

func (s *adminService) ListProducts(ctx context.Context, filter catalog.AdminFilter, sort catalog.AdminSort, page, pageSize int) (*models.AdminProductPage, error) {
	products, err := s.products(ctx)
	if err != nil {
		return nil, err
	}

	result := catalog.FilterAdmin(products, filter, s.cfg.LowStockThreshold)
	catalog.SortAdmin(result, sort)

	return &models.AdminProductPage{
		Items:      catalog.Page(result, page, pageSize),
		Total:      len(result),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: catalog.TotalPages(len(result), pageSize),
	}, nil
}

func (s *adminService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	if err := s.writable(); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.ProductStatusActive
	}

	now := s.now()
	product := &models.Product{
		ID:            uuid.NewString(),
		Name:          utils.SanitizeText(req.Name),
		SKU:           utils.SanitizeText(req.SKU),
		Category:      utils.SanitizeText(req.Category),
		Brand:         utils.SanitizeText(req.Brand),
		Description:   utils.SanitizeText(req.Description),
		Image:         req.Image,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Stock:         req.Stock,
		Featured:      req.Featured,
		Status:        status,
		SkinTypes:     utils.SanitizeAll(req.SkinTypes),
		Ingredients:   utils.SanitizeAll(req.Ingredients),
		IsNew:         true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	catalog.SyncDiscount(product)

	if err := s.check(product); err != nil {
		return nil, err
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, writeError(err)
	}

	s.changed(ctx)
	middleware.LoggerFromContext(ctx).Info("Product created", slog.String("productId", product.ID), slog.String("sku", product.SKU))

	return product, nil
}

func (s *adminService) UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error) {
	if err := s.writable(); err != nil {
		return nil, err
	}

	product, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = utils.SanitizeText(*req.Name)
	}
	if req.SKU != nil {
		product.SKU = utils.SanitizeText(*req.SKU)
	}
	if req.Category != nil {
		product.Category = utils.SanitizeText(*req.Category)
	}
	if req.Brand != nil {
		product.Brand = utils.SanitizeText(*req.Brand)
	}
	if req.Description != nil {
		product.Description = utils.SanitizeText(*req.Description)
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.OriginalPrice != nil {
		original := *req.OriginalPrice
		product.OriginalPrice = &original
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Featured != nil {
		product.Featured = *req.Featured
	}
	if req.Status != nil {
		product.Status = *req.Status
	}
	if req.SkinTypes != nil {
		product.SkinTypes = utils.SanitizeAll(req.SkinTypes)
	}
	if req.Ingredients != nil {
		product.Ingredients = utils.SanitizeAll(req.Ingredients)
	}

	catalog.SyncDiscount(product)
	product.UpdatedAt = s.now()

	if err := s.save(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *adminService) DuplicateProduct(ctx context.Context, id string) (*models.Product, error) {
	if err := s.writable(); err != nil {
		return nil, err
	}

	product, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	dup := catalog.Duplicate(*product, uuid.NewString(), s.now())

	if err := s.repo.CreateProduct(ctx, &dup); err != nil {
		return nil, writeError(err)
	}

	s.changed(ctx)

	return &dup, nil
}

func (s *adminService) ArchiveProduct(ctx context.Context, id string) (*models.Product, error) {
	if err := s.writable(); err != nil {
		return nil, err
	}

	product, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	archived := catalog.Archive(*product, s.now())
	if err := s.save(ctx, &archived); err != nil {
		return nil, err
	}

	return &archived, nil
}

func (s *adminService) UpdateStock(ctx context.Context, id string, stock int) (*models.Product, error) {
	if err := s.writable(); err != nil {
		return nil, err
	}

	product, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := catalog.SetStock(*product, stock, s.now())
	if err := s.save(ctx, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// bulk runs edit over the whole catalog and stores what it changed.
func (s *adminService) bulk(ctx context.Context, action string, edit func(products []models.Product) ([]models.Product, error)) (*models.BulkResult, error) {
	if err := s.writable(); err != nil {
		return nil, err
	}

	products, err := s.products(ctx)
	if err != nil {
		return nil, err
	}

	changed, err := edit(products)
	if err != nil {
		return nil, err
	}

	if len(changed) > 0 {
		if err := s.repo.UpdateProducts(ctx, changed); err != nil {
			return nil, writeError(err)
		}
		s.changed(ctx)
	}

	metrics.BulkAction(action, len(changed))
	middleware.LoggerFromContext(ctx).Info("Bulk action applied", slog.String("action", action), slog.Int("affected", len(changed)))

	return &models.BulkResult{Action: action, Affected: len(changed)}, nil
}

func (s *adminService) BulkUpdatePrice(ctx context.Context, req *models.BulkPriceRequest) (*models.BulkResult, error) {
	return s.bulk(ctx, "price", func(products []models.Product) ([]models.Product, error) {
		_, changed, err := catalog.BulkUpdatePrice(products, req.IDs, req.Mode, req.Value, s.now())
		if err != nil {
			return nil, errors.BadRequestError("Unknown price update mode").WithError(err)
		}
		return changed, nil
	})
}

func (s *adminService) BulkSetCategory(ctx context.Context, req *models.BulkCategoryRequest) (*models.BulkResult, error) {
	category := utils.SanitizeText(req.Category)

	return s.bulk(ctx, "category", func(products []models.Product) ([]models.Product, error) {
		_, changed := catalog.BulkSetCategory(products, req.IDs, category, s.now())
		return changed, nil
	})
}

func (s *adminService) BulkSetStatus(ctx context.Context, req *models.BulkStatusRequest) (*models.BulkResult, error) {
	return s.bulk(ctx, "status", func(products []models.Product) ([]models.Product, error) {
		_, changed := catalog.BulkSetStatus(products, req.IDs, req.Status, s.now())
		return changed, nil
	})
}

func (s *adminService) BulkDelete(ctx context.Context, req *models.BulkDeleteRequest) (*models.BulkResult, error) {
	if err := s.writable(); err != nil {
		return nil, err
	}

	removed, err := s.repo.DeleteProducts(ctx, req.IDs)
	if err != nil {
		return nil, errors.DatabaseError("Failed to delete products").WithError(err)
	}

	if removed > 0 {
		s.changed(ctx)
	}

	metrics.BulkAction("delete", removed)
	middleware.LoggerFromContext(ctx).Info("Bulk action applied", slog.String("action", "delete"), slog.Int("affected", removed))

	return &models.BulkResult{Action: "delete", Affected: removed}, nil
}

func (s *adminService) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	products, err := s.products(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := catalog.Summarize(products, s.cfg.LowStockThreshold, s.cfg.MinStock)

	return &dashboard, nil
}
