package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem snapshots the product at add time; the unit price is never re-read.
type CartItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand,omitempty"`
	Image     string          `json:"image,omitempty"`
	Variant   string          `json:"variant,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Stock     int             `json:"stock"`
	Quantity  int             `json:"quantity"`
}

// LineRef identifies a cart or saved line. An empty Variant is the
// product's base option.
type LineRef struct {
	ProductID string `json:"product_id"`
	Variant   string `json:"variant,omitempty"`
}

type SavedItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand,omitempty"`
	Image     string          `json:"image,omitempty"`
	Variant   string          `json:"variant,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Stock     int             `json:"stock"`
	InStock   bool            `json:"in_stock"`
}

type AppliedCoupon struct {
	Code    string `json:"code"`
	Percent int    `json:"percent"`
}

type OrderTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
	Savings  decimal.Decimal `json:"savings"`
}

// FormattedTotals holds the rupee strings shown to shoppers.
type FormattedTotals struct {
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Tax      string `json:"tax"`
	Discount string `json:"discount"`
	Total    string `json:"total"`
	Savings  string `json:"savings"`
}

type CartView struct {
	ID        uuid.UUID       `json:"id"`
	Items     []CartItem      `json:"items"`
	Saved     []SavedItem     `json:"saved"`
	Coupon    *AppliedCoupon  `json:"coupon,omitempty"`
	ItemCount int             `json:"item_count"`
	Totals    OrderTotals     `json:"totals"`
	Display   FormattedTotals `json:"display"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Variant   string `json:"variant,omitempty" validate:"max=64"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" validate:"required,max=32"`
}

type CouponResponse struct {
	Code           string          `json:"code"`
	Percent        int             `json:"percent"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Message        string          `json:"message"`
	Cart           *CartView       `json:"cart"`
}
