package catalog_test

import (
	"slices"
	"testing"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/catalog"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortKey(t *testing.T) {
	tests := map[string]catalog.SortKey{
		"price-asc":  catalog.SortPriceAsc,
		"price-low":  catalog.SortPriceAsc,
		"PRICE-HIGH": catalog.SortPriceDesc,
		"name-az":    catalog.SortNameAsc,
		"name-za":    catalog.SortNameDesc,
		"rating":     catalog.SortRating,
		"newest":     catalog.SortNewest,
		"":           catalog.SortPopularity,
		"bestseller": catalog.SortPopularity,
	}

	for in, want := range tests {
		assert.Equal(t, want, catalog.ParseSortKey(in), "input %q", in)
	}
}

func TestApply(t *testing.T) {
	t.Run("Success - No Filters Returns A Permutation", func(t *testing.T) {
		// Arrange
		products := herbalCatalog()
		sortKeys := []catalog.SortKey{
			catalog.SortPopularity, catalog.SortPriceAsc, catalog.SortPriceDesc,
			catalog.SortNewest, catalog.SortRating, catalog.SortNameAsc, catalog.SortNameDesc,
		}

		for _, key := range sortKeys {
			q := catalog.NewQuery()
			q.SortKey = key

			// Act
			result := catalog.Apply(products, q)

			// Assert
			assert.ElementsMatch(t, ids(products), ids(result), "sort key %s", key)
		}
	})

	t.Run("Success - Default Sort Is Popularity", func(t *testing.T) {
		// Act
		result := catalog.Apply(herbalCatalog(), catalog.NewQuery())

		// Assert
		assert.Equal(t, []string{"8", "3", "4", "7", "1", "2", "5", "6"}, ids(result))
	})

	t.Run("Success - Unknown Sort Key Falls Back To Popularity", func(t *testing.T) {
		q := catalog.NewQuery()
		q.SortKey = "bestseller"

		result := catalog.Apply(herbalCatalog(), q)

		assert.Equal(t, ids(catalog.Apply(herbalCatalog(), catalog.NewQuery())), ids(result))
	})

	t.Run("Success - Category Facet", func(t *testing.T) {
		// Arrange
		q := catalog.NewQuery()
		q.Categories = []string{"skin-care"}
		q.SortKey = catalog.SortPriceAsc

		// Act
		result := catalog.Apply(herbalCatalog(), q)

		// Assert
		assert.Equal(t, []string{"7", "4", "2", "1"}, ids(result))
		for _, p := range result {
			assert.Equal(t, "skin-care", p.Category)
		}
	})

	t.Run("Success - Facets OR Within And AND Across", func(t *testing.T) {
		// Arrange
		q := catalog.NewQuery()
		q.Categories = []string{"skin-care", "personal-hygiene"}
		q.SkinTypes = []string{"normal"}

		// Act
		result := catalog.Apply(herbalCatalog(), q)

		// Assert
		assert.ElementsMatch(t, []string{"2", "6", "7"}, ids(result))
	})

	t.Run("Success - Ingredient And Brand Facets", func(t *testing.T) {
		q := catalog.NewQuery()
		q.Ingredients = []string{"coconut-oil", "neem"}
		q.Brands = []string{"organic-beauty"}

		result := catalog.Apply(herbalCatalog(), q)

		assert.ElementsMatch(t, []string{"3", "8"}, ids(result))
	})

	t.Run("Success - Search Is Case Insensitive Across Fields", func(t *testing.T) {
		tests := map[string][]string{
			"  NEEM ":    {"3"},
			"hair-care":  {"8", "3", "5"},
			"pure-herbs": {"4", "7"},
			"hc-hyg":     {"6"},
			"":           {"8", "3", "4", "7", "1", "2", "5", "6"},
		}

		for text, want := range tests {
			q := catalog.NewQuery()
			q.SearchText = text

			assert.Equal(t, want, ids(catalog.Apply(herbalCatalog(), q)), "search %q", text)
		}
	})

	t.Run("Success - Price Bounds Are Inclusive", func(t *testing.T) {
		// Arrange
		q := catalog.NewQuery()
		q.PriceRange = catalog.PriceRange{Min: price("179.99"), Max: price("249.99")}

		// Act
		result := catalog.Apply(herbalCatalog(), q)

		// Assert
		require.NotEmpty(t, result)
		for _, p := range result {
			assert.True(t, q.PriceRange.Contains(p.Price), "product %s out of range", p.ID)
		}
		assert.ElementsMatch(t, []string{"2", "3", "4", "5", "8"}, ids(result))
	})

	t.Run("Edge Case - Min Above Max Is Empty", func(t *testing.T) {
		q := catalog.NewQuery()
		q.PriceRange = catalog.PriceRange{Min: decimal.NewFromInt(300), Max: decimal.NewFromInt(100)}

		result := catalog.Apply(herbalCatalog(), q)

		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("Edge Case - Empty Input", func(t *testing.T) {
		result := catalog.Apply(nil, catalog.NewQuery())

		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("Success - Input Is Not Mutated", func(t *testing.T) {
		// Arrange
		products := herbalCatalog()
		before := ids(products)
		q := catalog.NewQuery()
		q.SortKey = catalog.SortNameDesc

		// Act
		result := catalog.Apply(products, q)
		result[0].Name = "changed"

		// Assert
		assert.Equal(t, before, ids(products))
		for _, p := range products {
			assert.NotEqual(t, "changed", p.Name)
		}
	})

	t.Run("Success - Price Asc Reverses Price Desc", func(t *testing.T) {
		asc := catalog.NewQuery()
		asc.SortKey = catalog.SortPriceAsc
		desc := catalog.NewQuery()
		desc.SortKey = catalog.SortPriceDesc

		ascIDs := ids(catalog.Apply(herbalCatalog(), asc))
		descIDs := ids(catalog.Apply(herbalCatalog(), desc))
		slices.Reverse(descIDs)

		assert.Equal(t, ascIDs, descIDs)
	})

	t.Run("Success - Newest Keeps Relative Order", func(t *testing.T) {
		q := catalog.NewQuery()
		q.SortKey = catalog.SortNewest

		result := catalog.Apply(herbalCatalog(), q)

		assert.Equal(t, []string{"1", "3", "6", "8", "2", "4", "5", "7"}, ids(result))
	})

	t.Run("Success - Name Sort Ignores Case", func(t *testing.T) {
		// Arrange
		products := []models.Product{
			{ID: "a", Name: "rose Water Toner"},
			{ID: "b", Name: "Aloe Gel"},
			{ID: "c", Name: "neem Soap"},
		}
		asc := catalog.NewQuery()
		asc.SortKey = catalog.SortNameAsc
		desc := catalog.NewQuery()
		desc.SortKey = catalog.SortNameDesc

		// Act & Assert
		assert.Equal(t, []string{"b", "c", "a"}, ids(catalog.Apply(products, asc)))
		assert.Equal(t, []string{"a", "c", "b"}, ids(catalog.Apply(products, desc)))
	})

	t.Run("Success - Rating Sort Is Stable", func(t *testing.T) {
		q := catalog.NewQuery()
		q.SortKey = catalog.SortRating

		result := catalog.Apply(herbalCatalog(), q)

		assert.Equal(t, []string{"8", "3", "5", "1", "7", "4", "2", "6"}, ids(result))
	})

	t.Run("Success - Deterministic", func(t *testing.T) {
		q := catalog.NewQuery()
		q.SearchText = "herbal"

		assert.Equal(t, catalog.Apply(herbalCatalog(), q), catalog.Apply(herbalCatalog(), q))
	})
}
