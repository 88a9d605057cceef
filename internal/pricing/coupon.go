package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCoupon = errors.New("invalid coupon code")
	ErrEmptyCoupon   = fmt.Errorf("%w: code is empty", ErrInvalidCoupon)
)

// CouponTable maps upper-cased codes to whole percent discounts.
type CouponTable map[string]int

// NewCouponTable normalises codes and rejects percents outside 0..100.
func NewCouponTable(codes map[string]int) (CouponTable, error) {
	table := make(CouponTable, len(codes))

	for code, percent := range codes {
		key := normalizeCode(code)
		if key == "" {
			return nil, errors.New("coupon code must not be blank")
		}

		if percent < 0 || percent > 100 {
			return nil, fmt.Errorf("coupon %s: percent %d outside 0..100", key, percent)
		}

		table[key] = percent
	}

	return table, nil
}

func DefaultCoupons() CouponTable {
	return CouponTable{
		"SAVE10":   10,
		"FIRST20":  20,
		"HERBAL15": 15,
		"HERBAL10": 10,
	}
}

type Coupon struct {
	Code    string
	Percent int
}

func (t CouponTable) Lookup(code string) (Coupon, error) {
	key := normalizeCode(code)
	if key == "" {
		return Coupon{}, ErrEmptyCoupon
	}

	percent, ok := t[key]
	if !ok {
		return Coupon{}, fmt.Errorf("%w: %s", ErrInvalidCoupon, key)
	}

	return Coupon{Code: key, Percent: percent}, nil
}

type CouponResult struct {
	Success        bool
	Coupon         Coupon
	DiscountAmount decimal.Decimal
	Message        string
}

// DiscountFor is subtotal × percent / 100, unrounded.
func DiscountFor(subtotal decimal.Decimal, percent int) decimal.Decimal {
	return subtotal.Mul(decimal.NewFromInt(int64(percent))).Div(decimal.NewFromInt(100))
}

// ApplyCoupon resolves code against table. Matching is exact apart from case
// and surrounding whitespace.
func ApplyCoupon(table CouponTable, code string, subtotal decimal.Decimal) (CouponResult, error) {
	coupon, err := table.Lookup(code)
	if err != nil {
		return CouponResult{Success: false, Message: CouponErrorMessage(err)}, err
	}

	discount := DiscountFor(subtotal, coupon.Percent)

	return CouponResult{
		Success:        true,
		Coupon:         coupon,
		DiscountAmount: discount,
		Message:        fmt.Sprintf("Coupon %s applied! You saved %s", coupon.Code, FormatINR(discount)),
	}, nil
}

// CouponErrorMessage is the shopper-facing text for a failed lookup.
func CouponErrorMessage(err error) string {
	if errors.Is(err, ErrEmptyCoupon) {
		return "Please enter a promo code"
	}

	return "Invalid promo code. Please try again."
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
