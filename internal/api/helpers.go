// TMDB Backend - Movie Dataset Reporting API
// Copyright 2026 Ramon A. (RamonAl201187)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/RamonAl201187/tmdb-backend

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/RamonAl201187/tmdb-backend/internal/logging"
	"github.com/RamonAl201187/tmdb-backend/internal/models"
)

// sanitizeLogValue replaces control characters so attacker-supplied strings
// cannot forge log entries.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON writes payload as the response body. Success payloads are the
// bare report shapes; there is no response envelope in this API.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// respondError writes the {"error": message} payload every non-200 response
// carries.
func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if status >= http.StatusInternalServerError {
		logging.Ctx(r.Context()).Error().
			Int("status", status).
			Str("path", r.URL.Path).
			Str("error", sanitizeLogValue(message)).
			Msg("Request failed")
	}

	respondJSON(w, status, models.ErrorResponse{Error: message})
}

// getIntParam extracts an integer query parameter, falling back to
// defaultValue when the parameter is absent or unparsable.
func getIntParam(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}
