package domain

import "errors"

var (
	ErrUnknownCurrency  = errors.New("unknown currency")
	ErrInvalidCurrency  = errors.New("currency code must be exactly 3 letters")
	ErrNoDataAvailable  = errors.New("no exchange rate data available")
	ErrInvalidPeriod    = errors.New("invalid period")
	ErrInvalidAmount    = errors.New("amount must be a non-negative decimal number")
	ErrStoreUnavailable = errors.New("rate store unavailable")
	ErrCacheUnavailable = errors.New("cache unavailable")
	ErrInvalidSnapshot  = errors.New("invalid rate snapshot")
)
