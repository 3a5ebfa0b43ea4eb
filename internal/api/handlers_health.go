// TMDB Backend - Movie Dataset Reporting API
// Copyright 2026 Ramon A. (RamonAl201187)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/RamonAl201187/tmdb-backend

package api

import (
	"net/http"

	"github.com/RamonAl201187/tmdb-backend/internal/models"
)

// Index serves the static status payload at the root path.
//
// The db_connected flag is unconditionally true and never probes the store;
// this mirrors the original deployment exactly and is documented as a known
// limitation. Store reachability is verified once at startup instead.
//
// Method: GET
// Path: /
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.IndexStatus{
		Status:      "API running",
		DBConnected: true,
	})
}
