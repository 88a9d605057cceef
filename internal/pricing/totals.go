// Package pricing computes order totals and resolves coupon codes.
package pricing

import (
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	"github.com/shopspring/decimal"
)

type LineItem struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// Policy carries the store rules for one computation. DiscountAmount is an
// absolute amount supplied by the caller, usually from ApplyCoupon.
type Policy struct {
	FreeShippingThreshold decimal.Decimal
	FlatShippingFee       decimal.Decimal
	TaxRate               decimal.Decimal
	DiscountAmount        decimal.Decimal
}

func DefaultPolicy() Policy {
	return Policy{
		FreeShippingThreshold: decimal.NewFromInt(500),
		FlatShippingFee:       decimal.NewFromInt(50),
		TaxRate:               decimal.RequireFromString("0.18"),
		DiscountAmount:        decimal.Zero,
	}
}

func (p Policy) WithDiscount(amount decimal.Decimal) Policy {
	p.DiscountAmount = amount
	return p
}

type Totals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
	Savings  decimal.Decimal
}

func Subtotal(items []LineItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return subtotal
}

// ComputeTotals prices a set of line items. Tax is levied on the subtotal
// before any discount, and nothing is rounded.
func ComputeTotals(items []LineItem, policy Policy) Totals {
	subtotal := Subtotal(items)

	shipping := policy.FlatShippingFee
	waived := subtotal.GreaterThanOrEqual(policy.FreeShippingThreshold)
	if waived {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(policy.TaxRate)
	discount := policy.DiscountAmount

	savings := discount
	if waived {
		savings = savings.Add(policy.FlatShippingFee)
	}

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Discount: discount,
		Total:    subtotal.Add(shipping).Add(tax).Sub(discount),
		Savings:  savings,
	}
}

// Rounded rounds each figure to paise for display.
func (t Totals) Rounded() Totals {
	return Totals{
		Subtotal: t.Subtotal.Round(2),
		Shipping: t.Shipping.Round(2),
		Tax:      t.Tax.Round(2),
		Discount: t.Discount.Round(2),
		Total:    t.Total.Round(2),
		Savings:  t.Savings.Round(2),
	}
}

func (t Totals) Model() models.OrderTotals {
	return models.OrderTotals{
		Subtotal: t.Subtotal,
		Shipping: t.Shipping,
		Tax:      t.Tax,
		Discount: t.Discount,
		Total:    t.Total,
		Savings:  t.Savings,
	}
}

func (t Totals) Formatted() models.FormattedTotals {
	return models.FormattedTotals{
		Subtotal: FormatINR(t.Subtotal),
		Shipping: FormatINR(t.Shipping),
		Tax:      FormatINR(t.Tax),
		Discount: FormatINR(t.Discount),
		Total:    FormatINR(t.Total),
		Savings:  FormatINR(t.Savings),
	}
}
