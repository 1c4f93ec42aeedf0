package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/DanielPopoola/payment-forwarding-gateway/internal/api"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/infrastructure/metrics"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/interfaces/rest/middleware"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	RequestTimeout time.Duration
	Document       *openapi3.T
}

// New builds the HTTP routes. Payment routes are served both at the root and
// under /api.
func New(h *handlers.Handlers, m *metrics.Metrics, opts Options, logger *slog.Logger) (http.Handler, error) {
	validate, err := middleware.RequestValidator(opts.Document, logger)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Metrics(m))
	r.Use(middleware.Recovery(logger))

	r.Get("/healthz", h.Health)
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(api.Document())
	})

	payments := func(r chi.Router) {
		r.Use(middleware.Timeout(opts.RequestTimeout))
		r.Use(validate)
		r.Post("/payments", h.SubmitPayment)
		r.Get("/payments/{id}", h.GetPayment)
	}

	r.Group(payments)
	r.Route("/api", payments)

	return r, nil
}
