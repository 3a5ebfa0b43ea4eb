// TMDB Backend - Movie Dataset Reporting API
// Copyright 2026 Ramon A. (RamonAl201187)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/RamonAl201187/tmdb-backend

// Package reports builds the aggregation pipelines behind the reporting
// endpoints. Builders are pure functions over validated parameters; the
// grouping, summing, and sorting itself is delegated to MongoDB.
package reports

// Per-endpoint limit bounds and defaults.
const (
	MinLimit = 1

	DefaultGenreLimit = 10
	MaxGenreLimit     = 50

	DefaultDirectorLimit = 5
	MaxDirectorLimit     = 30

	// SearchLimit caps both result sets of the search endpoint.
	SearchLimit = 10
)

// Sort directions in MongoDB's convention.
const (
	Ascending  = 1
	Descending = -1
)

// ClampLimit constrains limit into the inclusive [minimum, maximum] range.
func ClampLimit(limit, minimum, maximum int) int {
	if limit < minimum {
		return minimum
	}
	if limit > maximum {
		return maximum
	}
	return limit
}

// SortDirection maps a sort query parameter to a direction. Only the literal
// string "asc" selects ascending order; every other value, including absence
// and garbage, silently falls back to descending. This fallback is a
// deliberate compatibility requirement, not a validation gap to close.
func SortDirection(sort string) int {
	if sort == "asc" {
		return Ascending
	}
	return Descending
}
