package rate

import (
	"fxrates/internal/domain"

	"github.com/shopspring/decimal"
)

// SnapshotView is the public shape of the latest and previous endpoints.
type SnapshotView struct {
	Date  domain.Date                     `json:"date"`
	Base  domain.CurrencyCode             `json:"base"`
	Rates map[domain.CurrencyCode]float64 `json:"rates"`
}

type HistoricalPoint struct {
	Date domain.Date `json:"date"`
	Rate float64     `json:"rate"`
}

type HistoricalView struct {
	From   domain.CurrencyCode `json:"from"`
	To     domain.CurrencyCode `json:"to"`
	Period Period              `json:"period"`
	Data   []HistoricalPoint   `json:"data"`
}

type ConversionView struct {
	From   domain.CurrencyCode `json:"from"`
	To     domain.CurrencyCode `json:"to"`
	Amount Decimal             `json:"amount"`
	Rate   float64             `json:"rate"`
	Result Decimal             `json:"result"`
	Date   domain.Date         `json:"date"`
}

type CurrencyView struct {
	Code domain.CurrencyCode `json:"code"`
	Name string              `json:"name"`
}

// Decimal encodes as a bare JSON number with every significant digit kept.
type Decimal struct {
	decimal.Decimal
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Decimal) UnmarshalJSON(data []byte) error {
	return d.Decimal.UnmarshalJSON(data)
}

func projectSnapshot(s domain.RateSnapshot, base domain.CurrencyCode) (SnapshotView, error) {
	rates, err := Rebase(s, base)
	if err != nil {
		return SnapshotView{}, err
	}
	return SnapshotView{Date: s.Date, Base: base, Rates: rates}, nil
}

func projectCurrencies(currencies []domain.Currency) []CurrencyView {
	views := make([]CurrencyView, 0, len(currencies))
	for _, c := range currencies {
		views = append(views, CurrencyView{Code: c.Code, Name: c.Name})
	}
	return views
}
