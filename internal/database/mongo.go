// TMDB Backend - Movie Dataset Reporting API
// Copyright 2026 Ramon A. (RamonAl201187)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/RamonAl201187/tmdb-backend

package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/RamonAl201187/tmdb-backend/internal/config"
	"github.com/RamonAl201187/tmdb-backend/internal/logging"
	"github.com/RamonAl201187/tmdb-backend/internal/metrics"
)

// Mongo is the MongoDB-backed MovieStore.
type Mongo struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// Connect opens the client, verifies the deployment is reachable with a
// primary-read ping, and binds the movies collection. The ping bounds startup
// failure time; after startup no per-request timeout is enforced by this
// layer (driver defaults apply).
func Connect(ctx context.Context, cfg config.MongoConfig) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		// Best effort: the client may hold partial connection state
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	logging.Info().
		Str("database", cfg.Database).
		Str("collection", cfg.Collection).
		Msg("Connected to MongoDB")

	return &Mongo{
		client:     client,
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Aggregate implements MovieStore.
func (m *Mongo) Aggregate(ctx context.Context, operation string, pipeline mongo.Pipeline, results interface{}) error {
	start := time.Now()

	cursor, err := m.collection.Aggregate(ctx, pipeline)
	if err == nil {
		err = cursor.All(ctx, results)
	}

	metrics.RecordQuery(operation, time.Since(start), err)

	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Str("operation", operation).Msg("Aggregation failed")
		return &QueryError{Operation: operation, Err: err}
	}
	return nil
}

// CountMovies implements MovieStore.
func (m *Mongo) CountMovies(ctx context.Context) (int64, error) {
	start := time.Now()

	count, err := m.collection.CountDocuments(ctx, bson.D{})

	metrics.RecordQuery("count_movies", time.Since(start), err)

	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("Count failed")
		return 0, &QueryError{Operation: "count_movies", Err: err}
	}
	return count, nil
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
