package cache

import (
	"context"
	"strings"
	"time"
)

// Cache stores JSON values. A ttl <= 0 on Set falls back to the configured
// default.
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

const (
	Namespace         = "herbal"
	CatalogKeyPrefix  = "catalog"
	CategoryKeyPrefix = "categories"
)

// Key joins parts under the storefront namespace, e.g. herbal:catalog:products.
func Key(parts ...string) string {
	return Namespace + ":" + strings.Join(parts, ":")
}
