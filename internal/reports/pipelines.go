// TMDB Backend - Movie Dataset Reporting API
// Copyright 2026 Ramon A. (RamonAl201187)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/RamonAl201187/tmdb-backend

package reports

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// directorJob is the exact, case-sensitive crew job that identifies a
// directing credit.
const directorJob = "Director"

// TopGenres counts movies per genre: each movie's genres array is unwound so
// every genre becomes its own row, rows are grouped by genre name, and groups
// are sorted by count in the given direction and truncated to limit.
func TopGenres(limit, direction int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$genres"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$genres.name"},
			{Key: "conteo", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "conteo", Value: direction}}}},
		{{Key: "$limit", Value: limit}},
	}
}

// TopDirectors sums movie revenue per director. The crew array is unwound,
// rows are filtered to directing credits, and each credit contributes the
// parent movie's full revenue to the director's total. A movie listed twice
// for the same director therefore counts twice; that matches the source data
// semantics and must not be deduplicated here.
func TopDirectors(limit, direction int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$crew"}},
		{{Key: "$match", Value: bson.D{{Key: "crew.job", Value: directorJob}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$crew.name"},
			{Key: "ingresos_totales", Value: bson.D{{Key: "$sum", Value: "$revenue"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "ingresos_totales", Value: direction}}}},
		{{Key: "$limit", Value: limit}},
	}
}

// GenreSearch counts movies per genre whose name matches query as a
// case-insensitive pattern, descending by count, capped at SearchLimit.
func GenreSearch(query string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$genres"}},
		{{Key: "$match", Value: bson.D{
			{Key: "genres.name", Value: primitive.Regex{Pattern: query, Options: "i"}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$genres.name"},
			{Key: "conteo", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "conteo", Value: Descending}}}},
		{{Key: "$limit", Value: SearchLimit}},
	}
}

// DirectorSearch sums revenue per director whose name matches query as a
// case-insensitive pattern, descending by total, capped at SearchLimit.
// The job filter stays an exact match; only the name match is a pattern.
func DirectorSearch(query string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$crew"}},
		{{Key: "$match", Value: bson.D{
			{Key: "crew.job", Value: directorJob},
			{Key: "crew.name", Value: primitive.Regex{Pattern: query, Options: "i"}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$crew.name"},
			{Key: "ingresos_totales", Value: bson.D{{Key: "$sum", Value: "$revenue"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "ingresos_totales", Value: Descending}}}},
		{{Key: "$limit", Value: SearchLimit}},
	}
}

// DistinctGenreCount counts distinct genre names across the collection.
// The result is a single document {total: n}, or no documents at all when
// the collection is empty.
func DistinctGenreCount() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$genres"}},
		{{Key: "$group", Value: bson.D{{Key: "_id", Value: "$genres.name"}}}},
		{{Key: "$count", Value: "total"}},
	}
}

// TopDirector returns the single highest-revenue director pipeline.
func TopDirector() mongo.Pipeline {
	return TopDirectors(1, Descending)
}
