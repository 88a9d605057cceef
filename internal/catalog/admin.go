package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	"github.com/shopspring/decimal"
)

// DefaultLowStockThreshold separates "low-stock" from "in-stock".
const DefaultLowStockThreshold = 10

type AdminFilter struct {
	Search      string
	Category    string
	Brand       string
	Status      models.ProductStatus
	StockStatus models.StockStatus
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
}

type AdminSortField string

const (
	AdminSortName     AdminSortField = "name"
	AdminSortSKU      AdminSortField = "sku"
	AdminSortCategory AdminSortField = "category"
	AdminSortPrice    AdminSortField = "price"
	AdminSortStock    AdminSortField = "stock"
	AdminSortStatus   AdminSortField = "status"
	AdminSortRating   AdminSortField = "rating"
)

type AdminSort struct {
	Field      AdminSortField
	Descending bool
}

// StockStatusOf buckets a stock level; threshold is the highest "low" stock.
func StockStatusOf(stock, threshold int) models.StockStatus {
	switch {
	case stock <= 0:
		return models.StockStatusOutOfStock
	case stock <= threshold:
		return models.StockStatusLowStock
	default:
		return models.StockStatusInStock
	}
}

// FilterAdmin applies the back-office table filters. Every empty field is ignored.
func FilterAdmin(products []models.Product, f AdminFilter, lowStockThreshold int) []models.Product {
	needle := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]models.Product, 0, len(products))

	for _, p := range products {
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.SKU), needle) &&
			!strings.Contains(strings.ToLower(p.Brand), needle) {
			continue
		}

		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}

		if f.Brand != "" && !strings.EqualFold(p.Brand, f.Brand) {
			continue
		}

		if f.Status != "" && p.Status != f.Status {
			continue
		}

		if f.StockStatus != "" && StockStatusOf(p.Stock, lowStockThreshold) != f.StockStatus {
			continue
		}

		if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
			continue
		}

		if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
			continue
		}

		out = append(out, p)
	}

	return out
}

// SortAdmin orders the back-office table in place. String columns compare
// case-insensitively; unknown fields sort by name.
func SortAdmin(products []models.Product, s AdminSort) {
	compare := adminComparator(s.Field)

	slices.SortStableFunc(products, func(a, b models.Product) int {
		if s.Descending {
			return compare(&b, &a)
		}
		return compare(&a, &b)
	})
}

func adminComparator(field AdminSortField) func(a, b *models.Product) int {
	switch field {
	case AdminSortSKU:
		return func(a, b *models.Product) int { return foldCompare(a.SKU, b.SKU) }
	case AdminSortCategory:
		return func(a, b *models.Product) int { return foldCompare(a.Category, b.Category) }
	case AdminSortPrice:
		return func(a, b *models.Product) int { return a.Price.Cmp(b.Price) }
	case AdminSortStock:
		return func(a, b *models.Product) int { return cmp.Compare(a.Stock, b.Stock) }
	case AdminSortStatus:
		return func(a, b *models.Product) int { return foldCompare(string(a.Status), string(b.Status)) }
	case AdminSortRating:
		return func(a, b *models.Product) int { return cmp.Compare(a.Rating, b.Rating) }
	default:
		return func(a, b *models.Product) int { return foldCompare(a.Name, b.Name) }
	}
}

func foldCompare(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
