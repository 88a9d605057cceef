package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Apply filters and orders products for q. The input slice is left untouched
// and the result never aliases it.
func Apply(products []models.Product, q Query) []models.Product {
	result := make([]models.Product, 0, len(products))

	if q.PriceRange.Empty() {
		return result
	}

	needle := strings.ToLower(strings.TrimSpace(q.SearchText))

	for _, p := range products {
		if matches(&p, needle, q) {
			result = append(result, p)
		}
	}

	Sort(result, q.SortKey)

	return result
}

func matches(p *models.Product, needle string, q Query) bool {
	if needle != "" && !matchesText(p, needle) {
		return false
	}

	if !q.PriceRange.Contains(p.Price) {
		return false
	}

	if len(q.Categories) > 0 && !containsFold(q.Categories, p.Category) {
		return false
	}

	if len(q.Brands) > 0 && !containsFold(q.Brands, p.Brand) {
		return false
	}

	if len(q.SkinTypes) > 0 && !intersects(q.SkinTypes, p.SkinTypes) {
		return false
	}

	if len(q.Ingredients) > 0 && !intersects(q.Ingredients, p.Ingredients) {
		return false
	}

	return true
}

func matchesText(p *models.Product, needle string) bool {
	for _, field := range []string{p.Name, p.Category, p.Brand, p.SKU} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}

	return false
}

func containsFold(set []string, value string) bool {
	return slices.ContainsFunc(set, func(s string) bool {
		return strings.EqualFold(s, value)
	})
}

func intersects(wanted, tags []string) bool {
	for _, tag := range tags {
		if containsFold(wanted, tag) {
			return true
		}
	}

	return false
}

// Sort orders products in place. The sort is stable so equal keys keep
// their incoming order.
func Sort(products []models.Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return a.Price.Cmp(b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return b.Price.Cmp(a.Price)
		})
	case SortRating:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	case SortNewest:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return cmp.Compare(boolRank(b.IsNew), boolRank(a.IsNew))
		})
	case SortNameAsc, SortNameDesc:
		// Collators keep internal buffers, so each call gets its own.
		c := collate.New(language.English, collate.IgnoreCase)
		sign := 1
		if key == SortNameDesc {
			sign = -1
		}
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return sign * c.CompareString(a.Name, b.Name)
		})
	default:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return cmp.Compare(b.ReviewCount, a.ReviewCount)
		})
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}

	return 0
}
