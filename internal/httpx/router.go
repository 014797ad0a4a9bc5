// Package httpx is the HTTP surface of the pickup service: routing, wire
// DTOs, boundary validation, and the mapping of domain errors to status
// codes.
package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jcmexdev/saltyeast-pickup/internal/httpx/middlewares"
)

func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middlewares.Trace)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Metrics)

	r.Get("/health", handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/locations", handler.ListLocations)
	r.Get("/menu", handler.GetMenu)
	r.Post("/quote", handler.CreateQuote)
	r.Post("/orders", handler.CreateOrder)
	r.Get("/orders/{id}", handler.GetOrder)
	return r
}
