package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductStatus string

const (
	ProductStatusActive       ProductStatus = "active"
	ProductStatusInactive     ProductStatus = "inactive"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

type Variant struct {
	Label string          `json:"label" validate:"required"`
	Price decimal.Decimal `json:"price"`
}

// Product is the catalog entity shared by the storefront and the admin console.
type Product struct {
	ID              string           `json:"id" validate:"required"`
	Name            string           `json:"name" validate:"required,max=200"`
	SKU             string           `json:"sku" validate:"max=64"`
	Category        string           `json:"category" validate:"required"`
	Brand           string           `json:"brand"`
	Description     string           `json:"description,omitempty"`
	Image           string           `json:"image,omitempty"`
	Price           decimal.Decimal  `json:"price"`
	OriginalPrice   *decimal.Decimal `json:"original_price,omitempty"`
	DiscountPercent int              `json:"discount_percent,omitempty" validate:"gte=0,lte=100"`
	Stock           int              `json:"stock" validate:"gte=0"`
	Rating          float64          `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount     int              `json:"review_count" validate:"gte=0"`
	IsNew           bool             `json:"is_new"`
	Featured        bool             `json:"featured"`
	Status          ProductStatus    `json:"status" validate:"omitempty,oneof=active inactive discontinued"`
	SkinTypes       []string         `json:"skin_types,omitempty"`
	Ingredients     []string         `json:"ingredients,omitempty"`
	Variants        []Variant        `json:"variants,omitempty" validate:"omitempty,dive"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func (p *Product) InStock() bool {
	return p.Stock > 0
}

type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ParentID string `json:"parent_id,omitempty"`
}

type CategoryNode struct {
	Category
	ProductCount int            `json:"product_count"`
	Children     []CategoryNode `json:"children,omitempty"`
}

type ProductPage struct {
	Items      []Product `json:"items"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
	HasMore    bool      `json:"has_more"`
}

// FacetCount is a filter option with the number of matching products.
type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

type Availability struct {
	InStock    int `json:"in_stock"`
	OutOfStock int `json:"out_of_stock"`
}

type FilterMetadata struct {
	Categories   []FacetCount    `json:"categories"`
	Brands       []FacetCount    `json:"brands"`
	SkinTypes    []FacetCount    `json:"skin_types"`
	Ingredients  []FacetCount    `json:"ingredients"`
	Availability Availability    `json:"availability"`
	MinPrice     decimal.Decimal `json:"min_price"`
	MaxPrice     decimal.Decimal `json:"max_price"`
}

type CreateProductRequest struct {
	Name          string           `json:"name" validate:"required,min=3,max=200"`
	SKU           string           `json:"sku" validate:"required,min=3,max=64"`
	Category      string           `json:"category" validate:"required"`
	Brand         string           `json:"brand" validate:"required"`
	Description   string           `json:"description,omitempty" validate:"max=2000"`
	Image         string           `json:"image,omitempty" validate:"omitempty,url"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Stock         int              `json:"stock" validate:"gte=0"`
	Featured      bool             `json:"featured"`
	Status        ProductStatus    `json:"status,omitempty" validate:"omitempty,oneof=active inactive discontinued"`
	SkinTypes     []string         `json:"skin_types,omitempty"`
	Ingredients   []string         `json:"ingredients,omitempty"`
}

type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty" validate:"omitempty,min=3,max=200"`
	SKU           *string          `json:"sku,omitempty" validate:"omitempty,min=3,max=64"`
	Category      *string          `json:"category,omitempty"`
	Brand         *string          `json:"brand,omitempty"`
	Description   *string          `json:"description,omitempty" validate:"omitempty,max=2000"`
	Image         *string          `json:"image,omitempty" validate:"omitempty,url"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Stock         *int             `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Featured      *bool            `json:"featured,omitempty"`
	Status        *ProductStatus   `json:"status,omitempty" validate:"omitempty,oneof=active inactive discontinued"`
	SkinTypes     []string         `json:"skin_types,omitempty"`
	Ingredients   []string         `json:"ingredients,omitempty"`
}

type UpdateStockRequest struct {
	Stock *int `json:"stock" validate:"required,gte=0"`
}
