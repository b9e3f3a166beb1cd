package rate

import (
	"fmt"
	"fxrates/internal/domain"
)

// RateBetween returns how many units of to one unit of from buys on the snapshot date.
func RateBetween(s domain.RateSnapshot, from, to domain.CurrencyCode) (float64, error) {
	if from == to {
		return 1.0, nil
	}
	if from == s.Anchor {
		return lookup(s, to)
	}
	fromRate, err := lookup(s, from)
	if err != nil {
		return 0, err
	}
	if to == s.Anchor {
		return 1 / fromRate, nil
	}
	toRate, err := lookup(s, to)
	if err != nil {
		return 0, err
	}
	return toRate / fromRate, nil
}

// Rebase re-expresses the snapshot rates against newAnchor.
// The result never contains newAnchor and includes the old anchor when they differ.
func Rebase(s domain.RateSnapshot, newAnchor domain.CurrencyCode) (map[domain.CurrencyCode]float64, error) {
	if newAnchor == s.Anchor {
		return s.RatesCopy(), nil
	}
	anchorRate, err := lookup(s, newAnchor)
	if err != nil {
		return nil, err
	}

	rebased := make(map[domain.CurrencyCode]float64, len(s.Rates))
	for code, value := range s.Rates {
		if code == newAnchor {
			continue
		}
		rebased[code] = value / anchorRate
	}
	rebased[s.Anchor] = 1 / anchorRate
	return rebased, nil
}

func lookup(s domain.RateSnapshot, code domain.CurrencyCode) (float64, error) {
	v, ok := s.Rates[code]
	if !ok {
		return 0, fmt.Errorf("%w: %s is not quoted on %s", domain.ErrUnknownCurrency, code, s.Date)
	}
	return v, nil
}
