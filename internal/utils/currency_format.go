package utils

import "github.com/shopspring/decimal"

// FormatAmount renders a monetary amount with the precision configured for
// its currency. Zero-decimal currencies such as XOF are rendered without a
// fractional part.
func FormatAmount(amount decimal.Decimal, precision int) string {
	if precision < 0 {
		precision = 2
	}
	return amount.StringFixed(int32(precision))
}

// RoundAmount rounds a monetary amount half-up to the given precision.
func RoundAmount(amount decimal.Decimal, precision int) decimal.Decimal {
	if precision < 0 {
		precision = 2
	}
	return amount.Round(int32(precision))
}
