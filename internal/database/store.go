// TMDB Backend - Movie Dataset Reporting API
// Copyright 2026 Ramon A. (RamonAl201187)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/RamonAl201187/tmdb-backend

// Package database provides the document store client for the movies
// collection.
//
// Handlers depend on the MovieStore interface rather than the concrete Mongo
// client, so tests can inject fakes. The connection is opened once at startup
// and shared read-only across requests; the mongo driver's client is safe for
// concurrent use and no additional locking is layered on top.
package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// MovieStore is the contract the request handlers need from the document
// store: aggregation pipeline execution and unconditional document counting.
type MovieStore interface {
	// Aggregate runs the pipeline against the movies collection and decodes
	// every result document into results, which must be a pointer to a slice.
	// operation names the query for logging and metrics.
	Aggregate(ctx context.Context, operation string, pipeline mongo.Pipeline, results interface{}) error

	// CountMovies returns the unconditional document count of the collection.
	CountMovies(ctx context.Context) (int64, error)
}

// QueryError is the single broad error kind for any store failure:
// connectivity loss, malformed pipeline, or an unexpected result shape.
// No distinction is made between transient and permanent failures and no
// retry is performed; the handler boundary converts it to a 500 response.
type QueryError struct {
	Operation string
	Err       error
}

// Error returns only the underlying message, which is what the error payload
// carries on the wire. The operation name stays in logs and metrics.
func (e *QueryError) Error() string {
	return e.Err.Error()
}

// Unwrap exposes the underlying driver error.
func (e *QueryError) Unwrap() error {
	return e.Err
}
