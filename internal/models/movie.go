// TMDB Backend - Movie Dataset Reporting API
// Copyright 2026 Ramon A. (RamonAl201187)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/RamonAl201187/tmdb-backend

// Package models defines the movie document shape and the report row types
// returned by the reporting endpoints.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Movie is the TMDB movie document as stored in the movies collection.
// Documents are externally owned; this service never mutates them. Only the
// fields touched by the aggregation pipelines are mapped here.
type Movie struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title   string             `bson:"title,omitempty" json:"title,omitempty"`
	Genres  []Genre            `bson:"genres,omitempty" json:"genres,omitempty"`
	Crew    []CrewMember       `bson:"crew,omitempty" json:"crew,omitempty"`
	Revenue float64            `bson:"revenue,omitempty" json:"revenue,omitempty"`
}

// Genre is one entry of a movie's genres array.
type Genre struct {
	Name string `bson:"name" json:"name"`
}

// CrewMember is one entry of a movie's crew array. Job holds the credit
// name exactly as TMDB records it ("Director", "Producer", ...).
type CrewMember struct {
	Name string `bson:"name" json:"name"`
	Job  string `bson:"job" json:"job"`
}
