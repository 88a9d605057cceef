// Package catalog holds the pure storefront and back-office product logic:
// filtering, sorting, pagination, facets and bulk edits. Nothing here does I/O.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

type SortKey string

const (
	SortPopularity SortKey = "popularity"
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortNewest     SortKey = "newest"
	SortRating     SortKey = "rating"
	SortNameAsc    SortKey = "name-asc"
	SortNameDesc   SortKey = "name-desc"
)

var sortAliases = map[string]SortKey{
	"popularity": SortPopularity,
	"price-asc":  SortPriceAsc,
	"price-low":  SortPriceAsc,
	"price-desc": SortPriceDesc,
	"price-high": SortPriceDesc,
	"newest":     SortNewest,
	"rating":     SortRating,
	"name-asc":   SortNameAsc,
	"name-az":    SortNameAsc,
	"name-desc":  SortNameDesc,
	"name-za":    SortNameDesc,
}

// ParseSortKey maps storefront sort identifiers to a SortKey.
// Anything unrecognised falls back to popularity.
func ParseSortKey(s string) SortKey {
	if key, ok := sortAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return key
	}

	return SortPopularity
}

// DefaultPriceCeiling is the upper bound of the price slider.
var DefaultPriceCeiling = decimal.NewFromInt(5000)

// PriceRange is inclusive on both ends.
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

func (r PriceRange) Contains(price decimal.Decimal) bool {
	return price.GreaterThanOrEqual(r.Min) && price.LessThanOrEqual(r.Max)
}

func (r PriceRange) Empty() bool {
	return r.Min.GreaterThan(r.Max)
}

// Query describes one storefront listing request. Facets are OR within a
// facet and AND across facets; an empty facet does not restrict.
type Query struct {
	SearchText  string     `json:"search_text"`
	PriceRange  PriceRange `json:"price_range"`
	Categories  []string   `json:"categories"`
	SkinTypes   []string   `json:"skin_types"`
	Ingredients []string   `json:"ingredients"`
	Brands      []string   `json:"brands"`
	SortKey     SortKey    `json:"sort_key"`
}

// NewQuery returns the query used before the shopper touches any control.
func NewQuery() Query {
	return Query{
		PriceRange: PriceRange{Min: decimal.Zero, Max: DefaultPriceCeiling},
		SortKey:    SortPopularity,
	}
}
