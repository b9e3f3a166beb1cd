package domain

import (
	"fmt"
	"maps"
	"math"
)

// RateSnapshot holds one day of rates quoted against Anchor.
// Rates never contains Anchor itself and every value is positive and finite.
type RateSnapshot struct {
	Date   Date
	Anchor CurrencyCode
	Rates  map[CurrencyCode]float64
}

// NewRateSnapshot normalizes codes and enforces the snapshot invariants.
// It is the only way snapshots enter the system, both when loading and when reading the store.
func NewRateSnapshot(date Date, anchor string, rates map[string]float64) (RateSnapshot, error) {
	anchorCode, err := ParseCurrencyCode(anchor)
	if err != nil {
		return RateSnapshot{}, fmt.Errorf("%w: %s: anchor: %w", ErrInvalidSnapshot, date, err)
	}

	normalized := make(map[CurrencyCode]float64, len(rates))
	for raw, value := range rates {
		code, err := ParseCurrencyCode(raw)
		if err != nil {
			return RateSnapshot{}, fmt.Errorf("%w: %s: %w", ErrInvalidSnapshot, date, err)
		}
		if code == anchorCode {
			return RateSnapshot{}, fmt.Errorf("%w: %s: rates contain anchor %s", ErrInvalidSnapshot, date, code)
		}
		if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
			return RateSnapshot{}, fmt.Errorf("%w: %s: rate for %s must be positive and finite, got %v", ErrInvalidSnapshot, date, code, value)
		}
		if _, dup := normalized[code]; dup {
			return RateSnapshot{}, fmt.Errorf("%w: %s: duplicate code %s", ErrInvalidSnapshot, date, code)
		}
		normalized[code] = value
	}

	return RateSnapshot{Date: date, Anchor: anchorCode, Rates: normalized}, nil
}

// Has reports whether code can be resolved against the snapshot.
func (s RateSnapshot) Has(code CurrencyCode) bool {
	if code == s.Anchor {
		return true
	}
	_, ok := s.Rates[code]
	return ok
}

// RatesCopy returns a copy of Rates that callers may modify.
func (s RateSnapshot) RatesCopy() map[CurrencyCode]float64 {
	return maps.Clone(s.Rates)
}
