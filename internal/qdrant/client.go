// Package qdrant wraps the official Qdrant Go client behind a small
// interface scoped to what the knowledge index needs: collection lifecycle,
// batched upserts and filtered similarity search.
package qdrant

import (
	"context"
)

// Client provides a unified interface to the Qdrant vector database.
type Client interface {
	// Collection operations
	CreateCollection(ctx context.Context, name string, vectorSize uint64) error
	DeleteCollection(ctx context.Context, name string) error
	CollectionExists(ctx context.Context, name string) (bool, error)
	PointCount(ctx context.Context, name string) (uint64, error)

	// Point operations
	Upsert(ctx context.Context, collection string, points []*Point) error
	Search(ctx context.Context, collection string, vector []float32, limit uint64, filter *Filter) ([]*ScoredPoint, error)

	// Health
	Health(ctx context.Context) error

	// Close closes the client connection
	Close() error
}

// Point represents a vector point. IDs are numeric: the index derives them
// from document ids so that re-upserting a document overwrites its point.
type Point struct {
	ID      uint64
	Vector  []float32
	Payload map[string]string
}

// ScoredPoint represents a search result with similarity score.
type ScoredPoint struct {
	Point
	Score float32
}

// Filter represents a payload filter for search operations.
type Filter struct {
	Must []Condition
}

// Condition matches a payload field against an exact keyword value.
type Condition struct {
	Field string
	Match string
}
