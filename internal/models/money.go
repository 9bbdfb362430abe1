package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits carried by every monetary value.
const MoneyScale = 2

var (
	ErrAmountPrecision = errors.New("amount has more than two decimal places")
	ErrInvalidMoney    = errors.New("invalid monetary amount")
)

// HasMoneyPrecision reports whether d carries at most MoneyScale fractional digits.
func HasMoneyPrecision(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(MoneyScale))
}

// ParseMoney parses a decimal string, rejecting values with more than two
// fractional digits instead of rounding them.
func ParseMoney(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, ErrInvalidMoney
	}
	if !HasMoneyPrecision(d) {
		return decimal.Zero, ErrAmountPrecision
	}
	return d, nil
}

// RoundMoney rounds half-up to MoneyScale digits.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}

// FormatMoney renders an amount as #,##0.00 wrapped in the currency symbol
// and suffix, e.g. "$1,234.50" or "1,234.50 coins".
func FormatMoney(amount decimal.Decimal, symbol, suffix string) string {
	fixed := amount.Abs().StringFixed(MoneyScale)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(symbol)
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	if suffix != "" {
		b.WriteByte(' ')
		b.WriteString(suffix)
	}
	return b.String()
}
