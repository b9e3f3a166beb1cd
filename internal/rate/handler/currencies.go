package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// ListCurrencies godoc
// @Summary Active currencies
// @Tags Currencies
// @Produce json
// @Success 200 {array} rate.CurrencyView
// @Failure 500 {object} errorResponse
// @Router /currencies [get]
func (h *Handler) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	currencies, err := h.service.ListCurrencies(r.Context())
	if err != nil {
		writeServiceError(w, err, logrus.Fields{"handler": "ListCurrencies"})
		return
	}
	writeJSON(w, http.StatusOK, currencies)
}

// CurrencyNames godoc
// @Summary Active currency names by code
// @Tags Currencies
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} errorResponse
// @Router /currencies/codes_and_names [get]
func (h *Handler) CurrencyNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.service.CurrencyNames(r.Context())
	if err != nil {
		writeServiceError(w, err, logrus.Fields{"handler": "CurrencyNames"})
		return
	}
	writeJSON(w, http.StatusOK, names)
}
