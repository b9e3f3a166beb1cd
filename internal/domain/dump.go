package domain

// RateDump is the layout of a historical rates export: one anchor and a rates map per ISO date.
type RateDump struct {
	Base  string                        `json:"base"`
	Rates map[string]map[string]float64 `json:"rates"`
}
