package service

import (
	"context"
	"log/slog"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/api/middleware"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/catalog"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/errors"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/metrics"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/source"
)

type CatalogService interface {
	ListProducts(ctx context.Context, q catalog.Query, page, pageSize int) (*models.ProductPage, error)
	LoadMore(ctx context.Context, q catalog.Query, page, pageSize int) (*models.ProductPage, error)
	FeaturedProducts(ctx context.Context) ([]models.Product, error)
	FilterOptions(ctx context.Context) (*models.FilterMetadata, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CategoryTree(ctx context.Context) ([]models.CategoryNode, error)
}

type catalogService struct {
	source source.ProductSource
}

func NewCatalogService(src source.ProductSource) CatalogService {
	return &catalogService{source: src}
}

// listed loads the storefront-visible products. A failing source is logged
// and reads as an empty catalog.
func (s *catalogService) listed(ctx context.Context, operation string) []models.Product {
	products, err := s.source.Products(ctx)
	if err != nil {
		middleware.LoggerFromContext(ctx).Error("Product source unavailable, serving empty catalog",
			slog.String("operation", operation),
			slog.String("error", err.Error()))
		metrics.CatalogSourceError(operation)

		return []models.Product{}
	}

	return catalog.Listed(products)
}

// ListProducts runs the query and returns the requested 1-based page.
func (s *catalogService) ListProducts(ctx context.Context, q catalog.Query, page, pageSize int) (*models.ProductPage, error) {
	result := catalog.Apply(s.listed(ctx, "list"), q)
	metrics.CatalogQuery(string(q.SortKey))

	items := catalog.Page(result, page, pageSize)
	totalPages := catalog.TotalPages(len(result), pageSize)

	return &models.ProductPage{
		Items:      items,
		Total:      len(result),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}, nil
}

// LoadMore returns every result up to and including page, for the
// storefront's "load more" grid.
func (s *catalogService) LoadMore(ctx context.Context, q catalog.Query, page, pageSize int) (*models.ProductPage, error) {
	result := catalog.Apply(s.listed(ctx, "load_more"), q)
	metrics.CatalogQuery(string(q.SortKey))

	items, hasMore := catalog.Window(result, page, pageSize)

	return &models.ProductPage{
		Items:      items,
		Total:      len(result),
		Page:       max(page, 1),
		PageSize:   pageSize,
		TotalPages: catalog.TotalPages(len(result), pageSize),
		HasMore:    hasMore,
	}, nil
}

func (s *catalogService) FeaturedProducts(ctx context.Context) ([]models.Product, error) {
	return catalog.FeaturedProducts(s.listed(ctx, "featured")), nil
}

func (s *catalogService) FilterOptions(ctx context.Context) (*models.FilterMetadata, error) {
	meta := catalog.Facets(s.listed(ctx, "filters"))

	return &meta, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	products, err := s.source.Products(ctx)
	if err != nil {
		metrics.CatalogSourceError("get")
		return nil, errors.ThirdPartyError("Failed to load product").WithError(err)
	}

	for _, p := range catalog.Listed(products) {
		if p.ID == id {
			return &p, nil
		}
	}

	return nil, errors.NotFoundError("Product not found")
}

func (s *catalogService) CategoryTree(ctx context.Context) ([]models.CategoryNode, error) {
	categories, err := s.source.Categories(ctx)
	if err != nil {
		metrics.CatalogSourceError("categories")
		return nil, errors.ThirdPartyError("Failed to load categories").WithError(err)
	}

	return catalog.BuildCategoryTree(categories, s.listed(ctx, "categories")), nil
}
