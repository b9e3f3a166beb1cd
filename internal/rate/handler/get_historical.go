package handler

import (
	"fxrates/internal/domain"
	"fxrates/internal/rate"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// GetHistorical godoc
// @Summary Historical series
// @Description Daily from/to rates for the period ending at the most recent stored day
// @Tags Exchange rates
// @Produce json
// @Param from query string false "Source currency" default(USD)
// @Param to query string false "Target currency" default(EUR)
// @Param period query string false "Window" Enums(1w, 1m, 1y, 5y, 10y) default(1w)
// @Success 200 {object} rate.HistoricalView
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /exchange-rates/historical [get]
func (h *Handler) GetHistorical(w http.ResponseWriter, r *http.Request) {
	codes, err := codeParams(r, codeParam{"from", domain.USD}, codeParam{"to", domain.EUR})
	if err != nil {
		writeServiceError(w, err, nil)
		return
	}
	period := rate.Period(strings.TrimSpace(r.URL.Query().Get("period")))
	if period == "" {
		period = rate.DefaultPeriod
	}

	view, err := h.service.GetHistorical(r.Context(), codes[0], codes[1], period)
	if err != nil {
		writeServiceError(w, err, logrus.Fields{"handler": "GetHistorical", "from": codes[0], "to": codes[1], "period": period})
		return
	}
	writeJSON(w, http.StatusOK, view)
}
