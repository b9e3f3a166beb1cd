package api

import (
	_ "fxrates/docs"
	"fxrates/internal/metrics"
	"fxrates/internal/rate/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(rateHandler *handler.Handler, m *metrics.Metrics, gatherer prometheus.Gatherer) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	router.Group(func(r chi.Router) {
		r.Use(m.Middleware)

		r.Route("/exchange-rates", func(r chi.Router) {
			r.Get("/latest", rateHandler.GetLatest)
			r.Get("/previous", rateHandler.GetPrevious)
			r.Get("/historical", rateHandler.GetHistorical)
			r.Get("/convert", rateHandler.Convert)
		})
		r.Get("/currencies", rateHandler.ListCurrencies)
		r.Get("/currencies/codes_and_names", rateHandler.CurrencyNames)
	})
	return router
}
