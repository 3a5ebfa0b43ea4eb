// TMDB Backend - Movie Dataset Reporting API
// Copyright 2026 Ramon A. (RamonAl201187)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/RamonAl201187/tmdb-backend

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/RamonAl201187/tmdb-backend/internal/config"
	"github.com/RamonAl201187/tmdb-backend/internal/middleware"
)

// Router wires the handlers into a chi mux.
type Router struct {
	handler *Handler
	config  *config.Config
}

// NewRouter creates a Router for the given handler and configuration.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	return &Router{
		handler: handler,
		config:  cfg,
	}
}

// Setup configures all routes and middleware and returns the root handler.
//
// CORS applies to the /api subtree only, matching the original surface:
// the index and metrics endpoints are same-origin infrastructure.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.AccessLog)

	r.Get("/", router.handler.Index)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: router.config.Security.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
			MaxAge:         router.config.Security.CORSMaxAge,
		}))
		r.Use(middleware.PrometheusMetrics)
		r.Use(router.rateLimit())

		r.Route("/reportes", func(r chi.Router) {
			r.Get("/top_generos", router.handler.TopGenres)
			r.Get("/top_directores_ingresos", router.handler.TopDirectorsRevenue)
			r.Get("/search", router.handler.Search)
			r.Get("/stats", router.handler.Stats)
		})
	})

	return r
}

// rateLimit returns the IP rate limiting middleware, or a no-op when
// disabled in config.
func (router *Router) rateLimit() func(http.Handler) http.Handler {
	if router.config.RateLimit.Disabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		router.config.RateLimit.Requests,
		router.config.RateLimit.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
	)
}
