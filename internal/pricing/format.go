package pricing

import "github.com/shopspring/decimal"

const currencySymbol = "₹"

// FormatINR renders an amount as rupees with two decimals, e.g. ₹1238.95.
func FormatINR(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-" + currencySymbol + amount.Neg().StringFixed(2)
	}

	return currencySymbol + amount.StringFixed(2)
}
