// TMDB Backend - Movie Dataset Reporting API
// Copyright 2026 Ramon A. (RamonAl201187)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/RamonAl201187/tmdb-backend

// Package api provides the HTTP handlers and routing for the reporting
// endpoints.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_reports.go: the four report endpoints
//   - handlers_health.go: the static index endpoint
//   - helpers.go: shared response and parameter helpers
//   - router.go: chi route setup with CORS, rate limiting, and metrics
package api

import (
	"github.com/RamonAl201187/tmdb-backend/internal/config"
	"github.com/RamonAl201187/tmdb-backend/internal/database"
)

// Handler holds the dependencies of the reporting endpoints. The store is an
// interface so tests can inject fakes; all handler state is read-only after
// construction, so a single Handler serves concurrent requests.
type Handler struct {
	store  database.MovieStore
	config *config.Config
}

// NewHandler creates the API handler bound to the given store and
// configuration.
func NewHandler(store database.MovieStore, cfg *config.Config) *Handler {
	return &Handler{
		store:  store,
		config: cfg,
	}
}
