package service_test

import (
	"context"
	"testing"

	appErrors "github.com/Niral-09/herbal-cosmetics-ecommerce/internal/errors"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	repository "github.com/Niral-09/herbal-cosmetics-ecommerce/internal/repositories"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSource struct {
	err error
}

func (f failingSource) Products(context.Context) ([]models.Product, error) {
	return nil, f.err
}

func (f failingSource) Categories(context.Context) ([]models.Category, error) {
	return nil, f.err
}

func mockCatalog() source.ProductSource {
	return source.FromRepository(repository.NewMemoryProductRepo(source.MockProducts(), source.MockCategories()))
}

func productIDs(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func assertAppError(t *testing.T, err error, code string) {
	t.Helper()

	require.Error(t, err)
	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok, "expected *AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)
}
