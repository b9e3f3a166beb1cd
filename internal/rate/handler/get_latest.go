package handler

import (
	"fxrates/internal/domain"
	"net/http"

	"github.com/sirupsen/logrus"
)

// GetLatest godoc
// @Summary Latest rates
// @Description Rates of the most recent day, expressed against the requested base currency
// @Tags Exchange rates
// @Produce json
// @Param base query string false "Base currency" default(USD)
// @Success 200 {object} rate.SnapshotView
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /exchange-rates/latest [get]
func (h *Handler) GetLatest(w http.ResponseWriter, r *http.Request) {
	codes, err := codeParams(r, codeParam{"base", domain.USD})
	if err != nil {
		writeServiceError(w, err, nil)
		return
	}

	view, err := h.service.GetLatest(r.Context(), codes[0])
	if err != nil {
		writeServiceError(w, err, logrus.Fields{"handler": "GetLatest", "base": codes[0]})
		return
	}
	writeJSON(w, http.StatusOK, view)
}
