package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
)

type PaymentMethod string

const (
	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodNetBanking PaymentMethod = "netbanking"
	PaymentMethodWallet     PaymentMethod = "wallet"
	PaymentMethodCOD        PaymentMethod = "cod"
)

type ShippingAddress struct {
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,numeric,len=10"`
	Address  string `json:"address" validate:"required,max=300"`
	City     string `json:"city" validate:"required,max=100"`
	State    string `json:"state" validate:"required,max=100"`
	Pincode  string `json:"pincode" validate:"required,numeric,len=6"`
}

type CheckoutRequest struct {
	ShippingAddress ShippingAddress `json:"shipping_address" validate:"required"`
	PaymentMethod   PaymentMethod   `json:"payment_method" validate:"required,oneof=card upi netbanking wallet cod"`
}

type Order struct {
	ID              uuid.UUID       `json:"id"`
	OrderNumber     string          `json:"order_number"`
	CartID          uuid.UUID       `json:"cart_id"`
	Status          OrderStatus     `json:"status"`
	Items           []CartItem      `json:"items"`
	Coupon          *AppliedCoupon  `json:"coupon,omitempty"`
	Totals          OrderTotals     `json:"totals"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	PlacedAt        time.Time       `json:"placed_at"`
}
