// Package vectorstore maintains the knowledge collection in Qdrant: point
// lifecycle, batched indexing and similarity search over embedded documents.
package vectorstore

import (
	"context"
	"errors"
	"fmt"
	"hash/crc32"
	"sort"

	"go.uber.org/zap"

	"github.com/whiskerwonders/whiskerbase/internal/knowledge"
	"github.com/whiskerwonders/whiskerbase/internal/logging"
	"github.com/whiskerwonders/whiskerbase/internal/qdrant"
)

var (
	// ErrInvalidConfig indicates invalid configuration.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEmbeddingFailed indicates embedding generation failure.
	ErrEmbeddingFailed = errors.New("failed to generate embeddings")
)

// Embedder generates vector embeddings from text. Documents and queries may
// be embedded with different model hints but share dimensionality.
type Embedder interface {
	// Embed generates an embedding for one document text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedQuery generates an embedding for a search query.
	EmbedQuery(ctx context.Context, text string) ([]float32, error)

	// EmbedDocuments generates embeddings for multiple texts,
	// preserving input order.
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
}

// Config holds configuration for the knowledge index.
type Config struct {
	// CollectionName is the Qdrant collection holding the corpus.
	// Default: "cat_cafe_knowledge"
	CollectionName string `koanf:"collection_name"`

	// VectorSize is the embedding dimensionality. Must match the embedder.
	// Default: 768
	VectorSize uint64 `koanf:"vector_size"`

	// UpsertChunkSize bounds how many points go into one upsert request.
	// Default: 100
	UpsertChunkSize int `koanf:"upsert_chunk_size"`
}

// ApplyDefaults sets default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.CollectionName == "" {
		c.CollectionName = "cat_cafe_knowledge"
	}
	if c.VectorSize == 0 {
		c.VectorSize = 768
	}
	if c.UpsertChunkSize == 0 {
		c.UpsertChunkSize = 100
	}
}

// Validate validates the configuration.
func (c Config) Validate() error {
	if c.CollectionName == "" {
		return fmt.Errorf("%w: collection name required", ErrInvalidConfig)
	}
	if c.VectorSize == 0 {
		return fmt.Errorf("%w: vector size required", ErrInvalidConfig)
	}
	if c.UpsertChunkSize <= 0 {
		return fmt.Errorf("%w: upsert chunk size must be positive", ErrInvalidConfig)
	}
	return nil
}

// Index is the similarity store for knowledge documents.
type Index struct {
	client   qdrant.Client
	embedder Embedder
	config   Config
	logger   *logging.Logger
}

// NewIndex creates an Index over the given Qdrant client and embedder.
func NewIndex(client qdrant.Client, embedder Embedder, config Config, logger *logging.Logger) (*Index, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: qdrant client required", ErrInvalidConfig)
	}
	if embedder == nil {
		return nil, fmt.Errorf("%w: embedder required", ErrInvalidConfig)
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	config.ApplyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Index{
		client:   client,
		embedder: embedder,
		config:   config,
		logger:   logger.Named("vectorstore"),
	}, nil
}

// CollectionName returns the configured collection name.
func (ix *Index) CollectionName() string {
	return ix.config.CollectionName
}

// EnsureCollection creates the collection if it does not already exist.
// Idempotent.
func (ix *Index) EnsureCollection(ctx context.Context) error {
	exists, err := ix.client.CollectionExists(ctx, ix.config.CollectionName)
	if err != nil {
		return fmt.Errorf("checking collection: %w", err)
	}
	if exists {
		return nil
	}

	if err := ix.client.CreateCollection(ctx, ix.config.CollectionName, ix.config.VectorSize); err != nil {
		return fmt.Errorf("creating collection: %w", err)
	}

	ix.logger.Info(ctx, "collection created",
		zap.String("collection", ix.config.CollectionName),
		zap.Uint64("vector_size", ix.config.VectorSize),
	)
	return nil
}

// Reset deletes and recreates the collection. Used only for explicit
// re-indexing; a missing collection is not an error.
func (ix *Index) Reset(ctx context.Context) error {
	if err := ix.client.DeleteCollection(ctx, ix.config.CollectionName); err != nil {
		ix.logger.Debug(ctx, "delete before reset failed, continuing",
			zap.String("collection", ix.config.CollectionName),
			zap.Error(err),
		)
	}
	return ix.EnsureCollection(ctx)
}

// IndexDocument embeds and upserts a single document.
func (ix *Index) IndexDocument(ctx context.Context, doc knowledge.Document) error {
	vector, err := ix.embedder.Embed(ctx, doc.Content)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEmbeddingFailed, err)
	}

	point := &qdrant.Point{
		ID:      pointID(doc.ID),
		Vector:  vector,
		Payload: encodePayload(doc),
	}

	if err := ix.client.Upsert(ctx, ix.config.CollectionName, []*qdrant.Point{point}); err != nil {
		return fmt.Errorf("upserting point: %w", err)
	}
	return nil
}

// ProgressFunc reports indexing progress; called once per document as its
// embedding completes, before the containing chunk is flushed.
type ProgressFunc func(current, total int)

// IndexDocuments embeds all documents in one batch call and upserts the
// points in chunks to bound request size.
func (ix *Index) IndexDocuments(ctx context.Context, docs []knowledge.Document, onProgress ProgressFunc) error {
	if len(docs) == 0 {
		return nil
	}

	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Content
	}

	vectors, err := ix.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEmbeddingFailed, err)
	}

	points := make([]*qdrant.Point, len(docs))
	for i, doc := range docs {
		points[i] = &qdrant.Point{
			ID:      pointID(doc.ID),
			Vector:  vectors[i],
			Payload: encodePayload(doc),
		}
		if onProgress != nil {
			onProgress(i+1, len(docs))
		}
	}

	for start := 0; start < len(points); start += ix.config.UpsertChunkSize {
		end := min(start+ix.config.UpsertChunkSize, len(points))
		if err := ix.client.Upsert(ctx, ix.config.CollectionName, points[start:end]); err != nil {
			return fmt.Errorf("upserting points %d-%d: %w", start, end-1, err)
		}
	}

	ix.logger.Info(ctx, "documents indexed",
		zap.String("collection", ix.config.CollectionName),
		zap.Int("count", len(docs)),
	)
	return nil
}

// Search embeds the query and returns the most similar documents, optionally
// restricted to one category. A failing index surfaces the error; callers
// decide whether to fall back.
func (ix *Index) Search(ctx context.Context, query string, limit int, category string) ([]SearchHit, error) {
	vector, err := ix.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmbeddingFailed, err)
	}

	var filter *qdrant.Filter
	if category != "" {
		filter = &qdrant.Filter{
			Must: []qdrant.Condition{{Field: payloadCategory, Match: category}},
		}
	}

	points, err := ix.client.Search(ctx, ix.config.CollectionName, vector, uint64(limit), filter)
	if err != nil {
		return nil, fmt.Errorf("searching collection: %w", err)
	}

	hits := make([]SearchHit, len(points))
	for i, p := range points {
		hits[i] = decodeHit(p.Payload, p.Score)
	}
	return hits, nil
}

// SearchCategories runs one search per category and returns the union sorted
// by descending score.
func (ix *Index) SearchCategories(ctx context.Context, query string, categories []string, limitPerCategory int) ([]SearchHit, error) {
	var hits []SearchHit
	for _, category := range categories {
		categoryHits, err := ix.Search(ctx, query, limitPerCategory, category)
		if err != nil {
			return nil, err
		}
		hits = append(hits, categoryHits...)
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})
	return hits, nil
}

// Initialized reports whether the collection exists and holds points. Any
// failure reads as uninitialized; an unreachable index is operationally the
// same as no index.
func (ix *Index) Initialized(ctx context.Context) bool {
	return ix.Count(ctx) > 0
}

// Count returns the collection's point count, or 0 on any failure.
func (ix *Index) Count(ctx context.Context) int {
	count, err := ix.client.PointCount(ctx, ix.config.CollectionName)
	if err != nil {
		ix.logger.Debug(ctx, "point count unavailable",
			zap.String("collection", ix.config.CollectionName),
			zap.Error(err),
		)
		return 0
	}
	return int(count)
}

// pointID derives the numeric point id from a document id. CRC-32 is fast
// and deterministic, so re-indexing a document always overwrites the same
// point. Collisions between distinct ids are possible and accepted.
func pointID(documentID string) uint64 {
	return uint64(crc32.ChecksumIEEE([]byte(documentID)))
}
