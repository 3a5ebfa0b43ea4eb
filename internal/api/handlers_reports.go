// TMDB Backend - Movie Dataset Reporting API
// Copyright 2026 Ramon A. (RamonAl201187)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/RamonAl201187/tmdb-backend

package api

import (
	"net/http"

	"github.com/RamonAl201187/tmdb-backend/internal/models"
	"github.com/RamonAl201187/tmdb-backend/internal/reports"
)

// All four report handlers follow the same pattern: parse and clamp query
// parameters, build the pipeline, run it against the store, and write the
// rows as the bare response body. Any store failure becomes a 500 with the
// underlying error's message; no partial results are returned.

// TopGenres returns the movie count per genre.
//
// Method: GET
// Path: /api/reportes/top_generos
// Params: limit (default 10, clamped 1-50), sort (asc ascending, anything
// else descending)
func (h *Handler) TopGenres(w http.ResponseWriter, r *http.Request) {
	limit := reports.ClampLimit(
		getIntParam(r, "limit", reports.DefaultGenreLimit),
		reports.MinLimit, reports.MaxGenreLimit,
	)
	direction := reports.SortDirection(r.URL.Query().Get("sort"))

	rows := make([]models.GenreCount, 0, limit)
	if err := h.store.Aggregate(r.Context(), "top_genres", reports.TopGenres(limit, direction), &rows); err != nil {
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, rows)
}

// TopDirectorsRevenue returns the summed revenue per director.
//
// Method: GET
// Path: /api/reportes/top_directores_ingresos
// Params: limit (default 5, clamped 1-30), sort (asc ascending, anything
// else descending)
func (h *Handler) TopDirectorsRevenue(w http.ResponseWriter, r *http.Request) {
	limit := reports.ClampLimit(
		getIntParam(r, "limit", reports.DefaultDirectorLimit),
		reports.MinLimit, reports.MaxDirectorLimit,
	)
	direction := reports.SortDirection(r.URL.Query().Get("sort"))

	rows := make([]models.DirectorRevenue, 0, limit)
	if err := h.store.Aggregate(r.Context(), "top_directors", reports.TopDirectors(limit, direction), &rows); err != nil {
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, rows)
}

// Search runs two independent searches for the same term: genre names and
// director names, both case-insensitive pattern matches.
//
// Method: GET
// Path: /api/reportes/search
// Params: q (required; missing or empty is a 400 and no query is executed)
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondError(w, r, http.StatusBadRequest, "Parámetro 'q' requerido")
		return
	}

	genres := make([]models.GenreCount, 0, reports.SearchLimit)
	if err := h.store.Aggregate(r.Context(), "search_genres", reports.GenreSearch(query), &genres); err != nil {
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	directors := make([]models.DirectorRevenue, 0, reports.SearchLimit)
	if err := h.store.Aggregate(r.Context(), "search_directors", reports.DirectorSearch(query), &directors); err != nil {
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, models.SearchResponse{
		Genres:    genres,
		Directors: directors,
	})
}

// countResult decodes the single document a $count stage emits.
type countResult struct {
	Total int64 `bson:"total"`
}

// Stats returns summary statistics: total documents, distinct genre names,
// and the single top-revenue director (null when no directing credits exist).
//
// Method: GET
// Path: /api/reportes/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	totalMovies, err := h.store.CountMovies(r.Context())
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	// An empty collection produces no $count document at all
	var genreCounts []countResult
	if err := h.store.Aggregate(r.Context(), "distinct_genres", reports.DistinctGenreCount(), &genreCounts); err != nil {
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	var totalGenres int64
	if len(genreCounts) > 0 {
		totalGenres = genreCounts[0].Total
	}

	var topDirectors []models.TopDirector
	if err := h.store.Aggregate(r.Context(), "top_director", reports.TopDirector(), &topDirectors); err != nil {
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	var topDirector *models.TopDirector
	if len(topDirectors) > 0 {
		topDirector = &topDirectors[0]
	}

	respondJSON(w, http.StatusOK, models.StatsSummary{
		TotalMovies: totalMovies,
		TotalGenres: totalGenres,
		TopDirector: topDirector,
	})
}
