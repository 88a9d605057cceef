package catalog_test

import (
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	"github.com/shopspring/decimal"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

// herbalCatalog mirrors the storefront's eight item mock catalog.
func herbalCatalog() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Herbal Aloe Vera Face Cream", SKU: "HC-SKN-001", Category: "skin-care", Brand: "herbal-essence", Price: price("299.99"), OriginalPrice: ptr(price("399.99")), DiscountPercent: 25, Stock: 45, Rating: 4.5, ReviewCount: 128, IsNew: true, Featured: true, Status: models.ProductStatusActive, SkinTypes: []string{"dry", "sensitive"}, Ingredients: []string{"aloe-vera"}},
		{ID: "2", Name: "Natural Turmeric Body Lotion", SKU: "HC-SKN-002", Category: "skin-care", Brand: "nature-care", Price: price("249.99"), OriginalPrice: ptr(price("329.99")), DiscountPercent: 24, Stock: 8, Rating: 4.3, ReviewCount: 95, Status: models.ProductStatusActive, SkinTypes: []string{"dry", "normal"}, Ingredients: []string{"turmeric"}},
		{ID: "3", Name: "Organic Neem Shampoo", SKU: "HC-HAR-001", Category: "hair-care", Brand: "organic-beauty", Price: price("199.99"), Stock: 60, Rating: 4.7, ReviewCount: 203, IsNew: true, Featured: true, Status: models.ProductStatusActive, Ingredients: []string{"neem"}},
		{ID: "4", Name: "Tea Tree Oil Face Wash", SKU: "HC-SKN-003", Category: "skin-care", Brand: "pure-herbs", Price: price("179.99"), Stock: 0, Rating: 4.4, ReviewCount: 156, Status: models.ProductStatusActive, SkinTypes: []string{"oily", "combination"}, Ingredients: []string{"tea-tree"}},
		{ID: "5", Name: "Coconut Oil Hair Mask", SKU: "HC-HAR-002", Category: "hair-care", Brand: "nature-care", Price: price("229.99"), OriginalPrice: ptr(price("279.99")), DiscountPercent: 18, Stock: 3, Rating: 4.6, ReviewCount: 89, Status: models.ProductStatusActive, Ingredients: []string{"coconut-oil"}},
		{ID: "6", Name: "Herbal Soap Collection", SKU: "HC-HYG-001", Category: "personal-hygiene", Brand: "herbal-essence", Price: price("149.99"), Stock: 120, Rating: 4.2, ReviewCount: 67, IsNew: true, Status: models.ProductStatusInactive, SkinTypes: []string{"normal"}, Ingredients: []string{"neem", "turmeric"}},
		{ID: "7", Name: "Rose Water Toner", SKU: "HC-SKN-004", Category: "skin-care", Brand: "pure-herbs", Price: price("129.99"), Stock: 14, Rating: 4.5, ReviewCount: 142, Status: models.ProductStatusActive, SkinTypes: []string{"sensitive", "normal"}},
		{ID: "8", Name: "Ayurvedic Hair Oil", SKU: "HC-HAR-003", Category: "hair-care", Brand: "organic-beauty", Price: price("189.99"), OriginalPrice: ptr(price("239.99")), DiscountPercent: 21, Stock: 22, Rating: 4.8, ReviewCount: 234, IsNew: true, Featured: true, Status: models.ProductStatusActive, Ingredients: []string{"coconut-oil"}},
	}
}
