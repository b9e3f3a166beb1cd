package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fxrates/internal/domain"
	"fxrates/internal/rate"
	"net/http"

	"github.com/sirupsen/logrus"
)

type RateService interface {
	GetLatest(ctx context.Context, base domain.CurrencyCode) (rate.SnapshotView, error)
	GetPrevious(ctx context.Context, base domain.CurrencyCode) (rate.SnapshotView, error)
	GetHistorical(ctx context.Context, from, to domain.CurrencyCode, period rate.Period) (rate.HistoricalView, error)
	Convert(ctx context.Context, amount string, from, to domain.CurrencyCode) (rate.ConversionView, error)
	ListCurrencies(ctx context.Context) ([]rate.CurrencyView, error)
	CurrencyNames(ctx context.Context) (map[domain.CurrencyCode]string, error)
}

type Handler struct {
	service RateService
}

func NewRateHandler(service RateService) *Handler {
	return &Handler{service: service}
}

// Error kinds reported to clients.
const (
	KindInvalidCurrency  = "InvalidCurrency"
	KindUnknownCurrency  = "UnknownCurrency"
	KindInvalidPeriod    = "InvalidPeriod"
	KindInvalidAmount    = "InvalidAmount"
	KindNoDataAvailable  = "NoDataAvailable"
	KindStoreUnavailable = "StoreUnavailable"
)

type errorResponse struct {
	Kind  string `json:"kind" example:"UnknownCurrency"`
	Error string `json:"error" example:"unknown currency: AUD is not quoted on 2024-01-02"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, statusCode int, kind, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{Kind: kind, Error: errorMsg})
}

// writeServiceError maps domain errors onto HTTP statuses; anything unrecognized is a store failure.
func writeServiceError(w http.ResponseWriter, err error, fields logrus.Fields) {
	switch {
	case errors.Is(err, domain.ErrInvalidCurrency):
		writeError(w, http.StatusBadRequest, KindInvalidCurrency, err.Error())
	case errors.Is(err, domain.ErrUnknownCurrency):
		writeError(w, http.StatusBadRequest, KindUnknownCurrency, err.Error())
	case errors.Is(err, domain.ErrInvalidPeriod):
		writeError(w, http.StatusBadRequest, KindInvalidPeriod, err.Error())
	case errors.Is(err, domain.ErrInvalidAmount):
		writeError(w, http.StatusBadRequest, KindInvalidAmount, err.Error())
	case errors.Is(err, domain.ErrNoDataAvailable):
		writeError(w, http.StatusNotFound, KindNoDataAvailable, "no exchange rate data available")
	default:
		msg := "ups, couldn't reach the rate store this time"
		logrus.WithError(err).WithFields(fields).Error(msg)
		writeError(w, http.StatusInternalServerError, KindStoreUnavailable, msg)
	}
}

// codeParams reads currency query parameters, each falling back to its default when absent.
func codeParams(r *http.Request, params ...codeParam) ([]domain.CurrencyCode, error) {
	query := r.URL.Query()
	codes := make([]domain.CurrencyCode, 0, len(params))
	for _, p := range params {
		code, err := rate.ParseCode(query.Get(p.name), p.fallback)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}

type codeParam struct {
	name     string
	fallback domain.CurrencyCode
}
