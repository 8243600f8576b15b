// Package cats defines the read-only boundary to the café's resident cat
// records. The retrieval engine never writes cats; it only reads a snapshot
// to synthesize per-cat knowledge documents.
package cats

import "context"

// Cat is a lightweight descriptor of one resident cat.
//
// This mirrors the fields the entity layer exposes; the retrieval engine
// treats it as immutable.
type Cat struct {
	// ID is the entity identifier, stable across snapshots.
	ID int64

	// Name is the cat's display name.
	Name string

	// Breed is the breed label (e.g. "Siamese", "Maine Coon").
	Breed string

	// Age in whole years.
	Age int

	// Color is the coat color.
	Color string

	// Description is optional free text about the cat.
	Description string

	// Mood is the current mood keyword (happy, content, grumpy, ...).
	Mood string
}

// Source provides the current cat snapshot.
//
// Implementations live outside this module (the entity layer). A Source that
// fails is tolerated: callers degrade to static content only.
type Source interface {
	// All returns every resident cat.
	All(ctx context.Context) ([]Cat, error)
}

// FixtureSource is a Source backed by an in-memory slice. Used in tests and
// for running the engine without the entity layer.
type FixtureSource struct {
	Cats []Cat
}

// All returns the fixture cats.
func (s *FixtureSource) All(ctx context.Context) ([]Cat, error) {
	return s.Cats, nil
}
