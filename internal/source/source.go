// Package source loads the catalog from wherever it lives: the bundled mock
// data, the products table, or a remote catalog API.
package source

import (
	"context"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	repository "github.com/Niral-09/herbal-cosmetics-ecommerce/internal/repositories"
)

type ProductSource interface {
	Products(ctx context.Context) ([]models.Product, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

type repositorySource struct {
	repo repository.ProductRepository
}

// FromRepository reads the catalog through a product repository.
func FromRepository(repo repository.ProductRepository) ProductSource {
	return &repositorySource{repo: repo}
}

func (s *repositorySource) Products(ctx context.Context) ([]models.Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *repositorySource) Categories(ctx context.Context) ([]models.Category, error) {
	return s.repo.ListCategories(ctx)
}
