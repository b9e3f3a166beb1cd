package rate

import (
	"fmt"
	"fxrates/internal/domain"
	"strings"

	"github.com/shopspring/decimal"
)

// Period names a historical window; see PeriodDays.
type Period string

// DefaultPeriod is used when a historical request names no period.
const DefaultPeriod Period = "1w"

var periodDays = map[Period]int{
	"1w":  7,
	"1m":  30,
	"1y":  365,
	"5y":  365 * 5,
	"10y": 365 * 10,
}

// PeriodDays returns the window length in days or domain.ErrInvalidPeriod.
func PeriodDays(p Period) (int, error) {
	days, ok := periodDays[p]
	if !ok {
		return 0, fmt.Errorf("%w: %q, expected one of 1w, 1m, 1y, 5y, 10y", domain.ErrInvalidPeriod, string(p))
	}
	return days, nil
}

// ParseCode normalizes a request parameter, falling back when it is blank.
func ParseCode(raw string, fallback domain.CurrencyCode) (domain.CurrencyCode, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	return domain.ParseCurrencyCode(raw)
}

// Amounts are bounded so a short query string cannot expand into a huge number.
const (
	maxAmountExponent = 64
	maxAmountDigits   = 64
)

// ParseAmount parses a non-negative decimal amount without going through binary floats.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, raw)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, raw)
	}
	if exp := amount.Exponent(); exp > maxAmountExponent || exp < -maxAmountExponent || amount.NumDigits() > maxAmountDigits {
		return decimal.Zero, fmt.Errorf("%w: %q is out of range", domain.ErrInvalidAmount, raw)
	}
	return amount, nil
}
