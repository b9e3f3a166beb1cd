package domain

import (
	"fmt"
	"strings"
)

// CurrencyCode is an upper-case three letter currency identifier like "USD".
type CurrencyCode string

const (
	USD CurrencyCode = "USD"
	EUR CurrencyCode = "EUR"
)

// ParseCurrencyCode trims and upper-cases raw and checks it is made of exactly 3 ASCII letters.
// No registry lookup happens here: unknown codes only fail once a rate is resolved.
func ParseCurrencyCode(raw string) (CurrencyCode, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, raw)
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, raw)
		}
	}
	return CurrencyCode(code), nil
}

func (c CurrencyCode) String() string { return string(c) }

type Currency struct {
	Code     CurrencyCode
	Name     string
	IsActive bool
}
