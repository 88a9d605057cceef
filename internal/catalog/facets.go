package catalog

import (
	"slices"
	"strings"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	"github.com/shopspring/decimal"
)

// Facets counts the filter options present in products.
func Facets(products []models.Product) models.FilterMetadata {
	categories := map[string]int{}
	brands := map[string]int{}
	skinTypes := map[string]int{}
	ingredients := map[string]int{}

	meta := models.FilterMetadata{}

	for i, p := range products {
		categories[p.Category]++

		if p.Brand != "" {
			brands[p.Brand]++
		}

		for _, s := range uniqueFold(p.SkinTypes) {
			skinTypes[s]++
		}

		for _, s := range uniqueFold(p.Ingredients) {
			ingredients[s]++
		}

		if p.InStock() {
			meta.Availability.InStock++
		} else {
			meta.Availability.OutOfStock++
		}

		if i == 0 || p.Price.LessThan(meta.MinPrice) {
			meta.MinPrice = p.Price
		}

		if i == 0 || p.Price.GreaterThan(meta.MaxPrice) {
			meta.MaxPrice = p.Price
		}
	}

	if len(products) == 0 {
		meta.MinPrice = decimal.Zero
		meta.MaxPrice = decimal.Zero
	}

	meta.Categories = toFacetCounts(categories)
	meta.Brands = toFacetCounts(brands)
	meta.SkinTypes = toFacetCounts(skinTypes)
	meta.Ingredients = toFacetCounts(ingredients)

	return meta
}

func uniqueFold(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))

	for _, v := range values {
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}

	return out
}

func toFacetCounts(counts map[string]int) []models.FacetCount {
	out := make([]models.FacetCount, 0, len(counts))
	for value, n := range counts {
		out = append(out, models.FacetCount{Value: value, Count: n})
	}

	slices.SortFunc(out, func(a, b models.FacetCount) int {
		return strings.Compare(a.Value, b.Value)
	})

	return out
}

// FeaturedProducts keeps the active featured products in their incoming order.
func FeaturedProducts(products []models.Product) []models.Product {
	out := make([]models.Product, 0)

	for _, p := range products {
		if p.Featured && isListed(&p) {
			out = append(out, p)
		}
	}

	return out
}

// Listed drops products the storefront must not show.
func Listed(products []models.Product) []models.Product {
	out := make([]models.Product, 0, len(products))

	for _, p := range products {
		if isListed(&p) {
			out = append(out, p)
		}
	}

	return out
}

func isListed(p *models.Product) bool {
	return p.Status == "" || p.Status == models.ProductStatusActive
}

// BuildCategoryTree nests a flat category list by parent id. Product counts
// include every descendant. Categories whose parent is unknown become roots.
func BuildCategoryTree(categories []models.Category, products []models.Product) []models.CategoryNode {
	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c.ID] = true
	}

	children := map[string][]models.Category{}
	var roots []models.Category

	for _, c := range categories {
		if c.ParentID == "" || !known[c.ParentID] || c.ParentID == c.ID {
			roots = append(roots, c)
			continue
		}
		children[c.ParentID] = append(children[c.ParentID], c)
	}

	direct := map[string]int{}
	for _, p := range products {
		direct[strings.ToLower(p.Category)]++
	}

	visited := map[string]bool{}

	var build func(c models.Category) models.CategoryNode
	build = func(c models.Category) models.CategoryNode {
		visited[c.ID] = true
		node := models.CategoryNode{Category: c}
		node.ProductCount = direct[strings.ToLower(c.Slug)]

		for _, child := range children[c.ID] {
			if visited[child.ID] {
				continue
			}
			childNode := build(child)
			node.ProductCount += childNode.ProductCount
			node.Children = append(node.Children, childNode)
		}

		return node
	}

	tree := make([]models.CategoryNode, 0, len(roots))
	for _, root := range roots {
		tree = append(tree, build(root))
	}

	return tree
}
