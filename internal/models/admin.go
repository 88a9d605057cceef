package models

import "github.com/shopspring/decimal"

type PriceUpdateMode string

const (
	PriceUpdatePercentage PriceUpdateMode = "percentage"
	PriceUpdateFixed      PriceUpdateMode = "fixed"
)

type BulkPriceRequest struct {
	IDs   []string        `json:"ids" validate:"required,min=1,dive,required"`
	Mode  PriceUpdateMode `json:"mode" validate:"required,oneof=percentage fixed"`
	Value decimal.Decimal `json:"value"`
}

type BulkCategoryRequest struct {
	IDs      []string `json:"ids" validate:"required,min=1,dive,required"`
	Category string   `json:"category" validate:"required"`
}

type BulkStatusRequest struct {
	IDs    []string      `json:"ids" validate:"required,min=1,dive,required"`
	Status ProductStatus `json:"status" validate:"required,oneof=active inactive discontinued"`
}

type BulkDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

type BulkResult struct {
	Action   string `json:"action"`
	Affected int    `json:"affected"`
}

type StockStatus string

const (
	StockStatusInStock    StockStatus = "in-stock"
	StockStatusLowStock   StockStatus = "low-stock"
	StockStatusOutOfStock StockStatus = "out-of-stock"
)

type LowStockLevel string

const (
	LowStockOut      LowStockLevel = "out-of-stock"
	LowStockCritical LowStockLevel = "critical"
	LowStockLow      LowStockLevel = "low"
	LowStockNormal   LowStockLevel = "normal"
)

type LowStockAlert struct {
	ProductID string        `json:"product_id"`
	Name      string        `json:"name"`
	SKU       string        `json:"sku"`
	Stock     int           `json:"stock"`
	MinStock  int           `json:"min_stock"`
	Level     LowStockLevel `json:"level"`
}

type Dashboard struct {
	TotalProducts  int             `json:"total_products"`
	ActiveProducts int             `json:"active_products"`
	LowStockCount  int             `json:"low_stock_count"`
	OutOfStock     int             `json:"out_of_stock"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	Alerts         []LowStockAlert `json:"alerts"`
}

type AdminProductPage struct {
	Items      []Product `json:"items"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
}
