package repository

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
)

// memoryProductRepo backs the mock catalog source. Products are copied on
// the way in and out so callers never share backing arrays with the store.
type memoryProductRepo struct {
	mu         sync.RWMutex
	products   []models.Product
	categories []models.Category
	now        func() time.Time
}

func NewMemoryProductRepo(products []models.Product, categories []models.Category) ProductRepository {
	return &memoryProductRepo{
		products:   cloneProducts(products),
		categories: slices.Clone(categories),
		now:        time.Now,
	}
}

func cloneProduct(p models.Product) models.Product {
	p.SkinTypes = slices.Clone(p.SkinTypes)
	p.Ingredients = slices.Clone(p.Ingredients)
	p.Variants = slices.Clone(p.Variants)
	if p.OriginalPrice != nil {
		original := *p.OriginalPrice
		p.OriginalPrice = &original
	}
	return p
}

func cloneProducts(products []models.Product) []models.Product {
	out := make([]models.Product, len(products))
	for i, p := range products {
		out[i] = cloneProduct(p)
	}
	return out
}

func (m *memoryProductRepo) indexOf(id string) int {
	return slices.IndexFunc(m.products, func(p models.Product) bool { return p.ID == id })
}

func (m *memoryProductRepo) skuTaken(sku, exceptID string) bool {
	return slices.ContainsFunc(m.products, func(p models.Product) bool {
		return p.ID != exceptID && sku != "" && strings.EqualFold(p.SKU, sku)
	})
}

func (m *memoryProductRepo) ListProducts(_ context.Context) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return cloneProducts(m.products), nil
}

func (m *memoryProductRepo) GetProductByID(_ context.Context, id string) (*models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}

	p := cloneProduct(m.products[i])
	return &p, nil
}

func (m *memoryProductRepo) CreateProduct(_ context.Context, product *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOf(product.ID) >= 0 || m.skuTaken(product.SKU, "") {
		return fmt.Errorf("%w: %s", ErrDuplicateSKU, product.SKU)
	}

	now := m.now()
	product.CreatedAt = now
	product.UpdatedAt = now

	m.products = append(m.products, cloneProduct(*product))

	return nil
}

func (m *memoryProductRepo) UpdateProducts(_ context.Context, products []models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	positions := make([]int, len(products))

	for k, p := range products {
		i := m.indexOf(p.ID)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrProductNotFound, p.ID)
		}
		if m.skuTaken(p.SKU, p.ID) {
			return fmt.Errorf("%w: %s", ErrDuplicateSKU, p.SKU)
		}
		positions[k] = i
	}

	for k, i := range positions {
		m.products[i] = cloneProduct(products[k])
	}

	return nil
}

func (m *memoryProductRepo) DeleteProducts(_ context.Context, ids []string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	before := len(m.products)
	m.products = slices.DeleteFunc(m.products, func(p models.Product) bool {
		return slices.Contains(ids, p.ID)
	})

	return before - len(m.products), nil
}

func (m *memoryProductRepo) ListCategories(_ context.Context) ([]models.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.categories), nil
}

type memoryOrderRepo struct {
	mu       sync.RWMutex
	byNumber map[string]models.Order
}

func NewMemoryOrderRepo() OrderRepository {
	return &memoryOrderRepo{byNumber: make(map[string]models.Order)}
}

func (m *memoryOrderRepo) CreateOrder(_ context.Context, order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byNumber[order.OrderNumber]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateOrder, order.OrderNumber)
	}

	stored := *order
	stored.Items = slices.Clone(order.Items)
	m.byNumber[order.OrderNumber] = stored

	return nil
}

func (m *memoryOrderRepo) GetOrderByNumber(_ context.Context, number string) (*models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	order, ok := m.byNumber[number]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, number)
	}

	order.Items = slices.Clone(order.Items)
	return &order, nil
}

func (m *memoryOrderRepo) LatestOrderNumber(_ context.Context, prefix string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	latest := ""
	for number := range m.byNumber {
		if !strings.HasPrefix(number, prefix) {
			continue
		}
		if len(number) > len(latest) || (len(number) == len(latest) && number > latest) {
			latest = number
		}
	}

	return latest, nil
}
