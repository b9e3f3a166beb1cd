package handler

import (
	"fxrates/internal/domain"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

const defaultAmount = "1.0"

// Convert godoc
// @Summary Convert an amount
// @Description Converts amount of from into to at the most recent rate. Never cached.
// @Tags Exchange rates
// @Produce json
// @Param amount query string false "Decimal amount" default(1.0)
// @Param from query string false "Source currency" default(USD)
// @Param to query string false "Target currency" default(EUR)
// @Success 200 {object} rate.ConversionView
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /exchange-rates/convert [get]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	codes, err := codeParams(r, codeParam{"from", domain.USD}, codeParam{"to", domain.EUR})
	if err != nil {
		writeServiceError(w, err, nil)
		return
	}
	amount := strings.TrimSpace(r.URL.Query().Get("amount"))
	if amount == "" {
		amount = defaultAmount
	}

	view, err := h.service.Convert(r.Context(), amount, codes[0], codes[1])
	if err != nil {
		writeServiceError(w, err, logrus.Fields{"handler": "Convert", "from": codes[0], "to": codes[1]})
		return
	}
	writeJSON(w, http.StatusOK, view)
}
