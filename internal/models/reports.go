// TMDB Backend - Movie Dataset Reporting API
// Copyright 2026 Ramon A. (RamonAl201187)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/RamonAl201187/tmdb-backend

package models

// Report rows are request-scoped: each one is produced by a single aggregation
// run and discarded after the response is written. The JSON field names are
// part of the public API contract and must not be translated.

// GenreCount is one row of the top-genres report.
type GenreCount struct {
	Name  string `bson:"_id" json:"nombre"`
	Count int64  `bson:"conteo" json:"conteo"`
}

// DirectorRevenue is one row of the top-directors-by-revenue report.
type DirectorRevenue struct {
	Director     string  `bson:"_id" json:"director"`
	TotalRevenue float64 `bson:"ingresos_totales" json:"ingresos_totales"`
}

// TopDirector is the stats payload's single top-revenue director. It keeps
// the raw grouped document shape (_id as the key field) on the wire.
type TopDirector struct {
	Name         string  `bson:"_id" json:"_id"`
	TotalRevenue float64 `bson:"ingresos_totales" json:"ingresos_totales"`
}

// SearchResponse bundles the two independent search result sets.
type SearchResponse struct {
	Genres    []GenreCount      `json:"genres"`
	Directors []DirectorRevenue `json:"directors"`
}

// StatsSummary is the /api/reportes/stats payload. TopDirector is null when
// the collection holds no directing credits.
type StatsSummary struct {
	TotalMovies int64        `json:"total_movies"`
	TotalGenres int64        `json:"total_genres"`
	TopDirector *TopDirector `json:"top_director"`
}

// IndexStatus is the static health payload served at the root path.
// It intentionally never probes the store; the flag mirrors the original
// deployment's behavior and is documented as a known limitation.
type IndexStatus struct {
	Status      string `json:"status"`
	DBConnected bool   `json:"db_connected"`
}

// ErrorResponse is the error payload shape for every non-200 response.
// Clients must not assume the message is stable or machine-parseable.
type ErrorResponse struct {
	Error string `json:"error"`
}
