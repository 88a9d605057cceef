package source

import (
	"context"
	"log/slog"
	"time"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/cache"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
)

var (
	productsKey   = cache.Key(cache.CatalogKeyPrefix, "products")
	categoriesKey = cache.Key(cache.CategoryKeyPrefix, "all")
)

// Cached serves the catalog from cache and falls through to the wrapped
// source on a miss. Cache failures are logged and never fail a read.
type Cached struct {
	next          ProductSource
	cache         cache.Cache
	productsTTL   time.Duration
	categoriesTTL time.Duration
}

func NewCached(next ProductSource, c cache.Cache, productsTTL, categoriesTTL time.Duration) *Cached {
	return &Cached{
		next:          next,
		cache:         c,
		productsTTL:   productsTTL,
		categoriesTTL: categoriesTTL,
	}
}

func (s *Cached) Products(ctx context.Context) ([]models.Product, error) {
	return readThrough(ctx, s.cache, productsKey, s.productsTTL, s.next.Products)
}

func (s *Cached) Categories(ctx context.Context) ([]models.Category, error) {
	return readThrough(ctx, s.cache, categoriesKey, s.categoriesTTL, s.next.Categories)
}

// Invalidate drops cached catalog data after an admin write.
func (s *Cached) Invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, productsKey, categoriesKey); err != nil {
		slog.WarnContext(ctx, "Failed to invalidate catalog cache", slog.String("error", err.Error()))
	}
}

func readThrough[T any](ctx context.Context, c cache.Cache, key string, ttl time.Duration, load func(context.Context) ([]T, error)) ([]T, error) {
	var cached []T

	found, err := c.Get(ctx, key, &cached)
	if err != nil {
		slog.WarnContext(ctx, "Catalog cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	if found {
		return cached, nil
	}

	fresh, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.Set(ctx, key, fresh, ttl); err != nil {
		slog.WarnContext(ctx, "Catalog cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	return fresh, nil
}
