package source

import (
	"time"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	"github.com/shopspring/decimal"
)

func inr(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func inrPtr(s string) *decimal.Decimal {
	d := inr(s)
	return &d
}

// seededAt is the creation time given to every bundled product.
var seededAt = time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

// MockCategories returns the storefront's top level categories.
func MockCategories() []models.Category {
	return []models.Category{
		{ID: "skin-care", Name: "Skin Care", Slug: "skin-care"},
		{ID: "hair-care", Name: "Hair Care", Slug: "hair-care"},
		{ID: "personal-hygiene", Name: "Personal Hygiene", Slug: "personal-hygiene"},
		{ID: "natural-makeup", Name: "Natural Makeup", Slug: "natural-makeup"},
	}
}

// MockProducts returns the bundled eight product catalog.
func MockProducts() []models.Product {
	products := []models.Product{
		{
			ID: "1", Name: "Herbal Aloe Vera Face Cream", SKU: "HC-SKN-001", Category: "skin-care", Brand: "herbal-essence",
			Description:   "A nourishing face cream enriched with pure aloe vera extract, perfect for daily moisturizing and skin protection.",
			Image:         "https://images.unsplash.com/photo-1556228720-195a672e8a03?w=400&h=400&fit=crop",
			Price:         inr("299.99"),
			OriginalPrice: inrPtr("399.99"), DiscountPercent: 25,
			Stock: 45, Rating: 4.5, ReviewCount: 128, IsNew: true, Featured: true,
			SkinTypes:   []string{"dry", "sensitive"},
			Ingredients: []string{"aloe-vera"},
			Variants:    []models.Variant{{Label: "50ml", Price: inr("299.99")}, {Label: "100ml", Price: inr("499.99")}, {Label: "200ml", Price: inr("799.99")}},
		},
		{
			ID: "2", Name: "Natural Turmeric Body Lotion", SKU: "HC-SKN-002", Category: "skin-care", Brand: "nature-care",
			Description:   "Luxurious body lotion infused with turmeric and natural oils to brighten and nourish your skin.",
			Image:         "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400&h=400&fit=crop",
			Price:         inr("249.99"),
			OriginalPrice: inrPtr("329.99"), DiscountPercent: 24,
			Stock: 8, Rating: 4.3, ReviewCount: 95,
			SkinTypes:   []string{"dry", "normal"},
			Ingredients: []string{"turmeric"},
			Variants:    []models.Variant{{Label: "200ml", Price: inr("249.99")}, {Label: "400ml", Price: inr("449.99")}},
		},
		{
			ID: "3", Name: "Organic Neem Shampoo", SKU: "HC-HAR-001", Category: "hair-care", Brand: "organic-beauty",
			Description: "Gentle cleansing shampoo with neem extract that helps control dandruff and promotes healthy hair growth.",
			Image:       "https://images.unsplash.com/photo-1527799820374-dcf8d9d4a388?w=400&h=400&fit=crop",
			Price:       inr("199.99"),
			Stock:       60, Rating: 4.7, ReviewCount: 203, IsNew: true, Featured: true,
			Ingredients: []string{"neem"},
			Variants:    []models.Variant{{Label: "250ml", Price: inr("199.99")}, {Label: "500ml", Price: inr("349.99")}},
		},
		{
			ID: "4", Name: "Tea Tree Oil Face Wash", SKU: "HC-SKN-003", Category: "skin-care", Brand: "pure-herbs",
			Description: "Deep cleansing face wash with tea tree oil, perfect for oily and acne-prone skin.",
			Image:       "https://images.unsplash.com/photo-1556228578-8c89e6adf883?w=400&h=400&fit=crop",
			Price:       inr("179.99"),
			Stock:       0, Rating: 4.4, ReviewCount: 156,
			SkinTypes:   []string{"oily", "combination"},
			Ingredients: []string{"tea-tree"},
			Variants:    []models.Variant{{Label: "100ml", Price: inr("179.99")}, {Label: "200ml", Price: inr("299.99")}},
		},
		{
			ID: "5", Name: "Coconut Oil Hair Mask", SKU: "HC-HAR-002", Category: "hair-care", Brand: "nature-care",
			Description:   "Intensive hair treatment mask with pure coconut oil and natural proteins for deep nourishment and repair.",
			Image:         "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400&h=400&fit=crop",
			Price:         inr("229.99"),
			OriginalPrice: inrPtr("279.99"), DiscountPercent: 18,
			Stock: 3, Rating: 4.6, ReviewCount: 89,
			Ingredients: []string{"coconut-oil"},
			Variants:    []models.Variant{{Label: "150ml", Price: inr("229.99")}, {Label: "300ml", Price: inr("399.99")}},
		},
		{
			ID: "6", Name: "Herbal Soap Collection", SKU: "HC-HYG-001", Category: "personal-hygiene", Brand: "herbal-essence",
			Description: "Set of 3 handmade herbal soaps with different natural ingredients for various skin needs.",
			Image:       "https://images.unsplash.com/photo-1556228720-195a672e8a03?w=400&h=400&fit=crop",
			Price:       inr("149.99"),
			Stock:       120, Rating: 4.2, ReviewCount: 67, IsNew: true,
			SkinTypes:   []string{"normal", "sensitive"},
			Ingredients: []string{"neem", "turmeric"},
			Variants:    []models.Variant{{Label: "3 x 100g", Price: inr("149.99")}, {Label: "6 x 100g", Price: inr("279.99")}},
		},
		{
			ID: "7", Name: "Rose Water Toner", SKU: "HC-SKN-004", Category: "skin-care", Brand: "pure-herbs",
			Description: "Pure rose water toner that refreshes and balances your skin's pH while providing natural hydration.",
			Image:       "https://images.unsplash.com/photo-1527799820374-dcf8d9d4a388?w=400&h=400&fit=crop",
			Price:       inr("129.99"),
			Stock:       14, Rating: 4.5, ReviewCount: 142,
			SkinTypes:   []string{"sensitive", "normal"},
			Variants:    []models.Variant{{Label: "100ml", Price: inr("129.99")}, {Label: "200ml", Price: inr("219.99")}},
		},
		{
			ID: "8", Name: "Ayurvedic Hair Oil", SKU: "HC-HAR-003", Category: "hair-care", Brand: "organic-beauty",
			Description:   "Traditional Ayurvedic hair oil blend with 12 natural herbs for stronger, healthier hair growth.",
			Image:         "https://images.unsplash.com/photo-1556228578-8c89e6adf883?w=400&h=400&fit=crop",
			Price:         inr("189.99"),
			OriginalPrice: inrPtr("239.99"), DiscountPercent: 21,
			Stock: 22, Rating: 4.8, ReviewCount: 234, IsNew: true, Featured: true,
			Ingredients: []string{"coconut-oil"},
			Variants:    []models.Variant{{Label: "100ml", Price: inr("189.99")}, {Label: "200ml", Price: inr("329.99")}},
		},
	}

	for i := range products {
		products[i].Status = models.ProductStatusActive
		products[i].CreatedAt = seededAt
		products[i].UpdatedAt = seededAt
	}

	return products
}
