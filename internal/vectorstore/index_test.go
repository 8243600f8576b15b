package vectorstore

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whiskerwonders/whiskerbase/internal/knowledge"
	"github.com/whiskerwonders/whiskerbase/internal/qdrant"
)

// fakeClient is an in-memory qdrant.Client.
type fakeClient struct {
	collections map[string]map[uint64]*qdrant.Point
	upserts     int
	failAll     bool
	searchHits  []*qdrant.ScoredPoint
}

func newFakeClient() *fakeClient {
	return &fakeClient{collections: make(map[string]map[uint64]*qdrant.Point)}
}

func (f *fakeClient) CreateCollection(ctx context.Context, name string, vectorSize uint64) error {
	if f.failAll {
		return errors.New("unavailable")
	}
	if _, ok := f.collections[name]; ok {
		return errors.New("already exists")
	}
	f.collections[name] = make(map[uint64]*qdrant.Point)
	return nil
}

func (f *fakeClient) DeleteCollection(ctx context.Context, name string) error {
	if f.failAll {
		return errors.New("unavailable")
	}
	if _, ok := f.collections[name]; !ok {
		return errors.New("not found")
	}
	delete(f.collections, name)
	return nil
}

func (f *fakeClient) CollectionExists(ctx context.Context, name string) (bool, error) {
	if f.failAll {
		return false, errors.New("unavailable")
	}
	_, ok := f.collections[name]
	return ok, nil
}

func (f *fakeClient) PointCount(ctx context.Context, name string) (uint64, error) {
	if f.failAll {
		return 0, errors.New("unavailable")
	}
	points, ok := f.collections[name]
	if !ok {
		return 0, errors.New("not found")
	}
	return uint64(len(points)), nil
}

func (f *fakeClient) Upsert(ctx context.Context, collection string, points []*qdrant.Point) error {
	if f.failAll {
		return errors.New("unavailable")
	}
	target, ok := f.collections[collection]
	if !ok {
		return errors.New("not found")
	}
	f.upserts++
	for _, p := range points {
		target[p.ID] = p
	}
	return nil
}

func (f *fakeClient) Search(ctx context.Context, collection string, vector []float32, limit uint64, filter *qdrant.Filter) ([]*qdrant.ScoredPoint, error) {
	if f.failAll {
		return nil, errors.New("unavailable")
	}
	hits := f.searchHits
	if filter != nil && len(filter.Must) > 0 {
		var filtered []*qdrant.ScoredPoint
		for _, hit := range hits {
			if hit.Payload[filter.Must[0].Field] == filter.Must[0].Match {
				filtered = append(filtered, hit)
			}
		}
		hits = filtered
	}
	if uint64(len(hits)) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

func (f *fakeClient) Health(ctx context.Context) error { return nil }
func (f *fakeClient) Close() error                     { return nil }

// fakeEmbedder returns constant-dimension vectors without a network.
type fakeEmbedder struct {
	err error
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []float32{1, 0, 0}, nil
}

func (f *fakeEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []float32{0, 1, 0}, nil
}

func (f *fakeEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{1, 0, 0}
	}
	return vectors, nil
}

func newTestIndex(t *testing.T, client qdrant.Client, cfg Config) *Index {
	t.Helper()
	index, err := NewIndex(client, &fakeEmbedder{}, cfg, nil)
	require.NoError(t, err)
	return index
}

func TestPointID_Deterministic(t *testing.T) {
	assert.Equal(t, pointID("wisdom_1"), pointID("wisdom_1"))
	assert.NotEqual(t, pointID("wisdom_1"), pointID("wisdom_2"))
}

func TestIndexDocument_IdempotentUpsert(t *testing.T) {
	client := newFakeClient()
	index := newTestIndex(t, client, Config{CollectionName: "kb"})
	ctx := context.Background()

	require.NoError(t, index.EnsureCollection(ctx))

	doc := knowledge.Document{ID: "wisdom_1", Content: "patience", Category: knowledge.CategoryWisdom}
	require.NoError(t, index.IndexDocument(ctx, doc))
	require.NoError(t, index.IndexDocument(ctx, doc))

	// Same document id always maps to the same point.
	assert.Equal(t, 1, index.Count(ctx))
}

func TestEnsureCollection_Idempotent(t *testing.T) {
	client := newFakeClient()
	index := newTestIndex(t, client, Config{CollectionName: "kb"})
	ctx := context.Background()

	require.NoError(t, index.EnsureCollection(ctx))
	require.NoError(t, index.EnsureCollection(ctx))
	assert.Len(t, client.collections, 1)
}

func TestReset_RecreatesEmptyCollection(t *testing.T) {
	client := newFakeClient()
	index := newTestIndex(t, client, Config{CollectionName: "kb"})
	ctx := context.Background()

	docs := make([]knowledge.Document, 10)
	for i := range docs {
		docs[i] = knowledge.Document{
			ID:       fmt.Sprintf("doc_%d", i),
			Content:  fmt.Sprintf("content %d", i),
			Category: knowledge.CategoryWisdom,
		}
	}

	require.NoError(t, index.Reset(ctx))
	require.NoError(t, index.IndexDocuments(ctx, docs, nil))
	assert.Equal(t, 10, index.Count(ctx))

	require.NoError(t, index.Reset(ctx))
	assert.Equal(t, 0, index.Count(ctx))
}

func TestReset_ToleratesMissingCollection(t *testing.T) {
	client := newFakeClient()
	index := newTestIndex(t, client, Config{CollectionName: "kb"})

	// Nothing to delete yet; reset must still create the collection.
	require.NoError(t, index.Reset(context.Background()))
	assert.Len(t, client.collections, 1)
}

func TestIndexDocuments_ChunksUpserts(t *testing.T) {
	client := newFakeClient()
	index := newTestIndex(t, client, Config{CollectionName: "kb", UpsertChunkSize: 100})
	ctx := context.Background()
	require.NoError(t, index.EnsureCollection(ctx))

	docs := make([]knowledge.Document, 250)
	for i := range docs {
		docs[i] = knowledge.Document{
			ID:       fmt.Sprintf("doc_%d", i),
			Content:  "text",
			Category: knowledge.CategoryCare,
		}
	}

	var progress []int
	onProgress := func(current, total int) {
		assert.Equal(t, 250, total)
		progress = append(progress, current)
	}

	require.NoError(t, index.IndexDocuments(ctx, docs, onProgress))

	assert.Equal(t, 3, client.upserts, "250 points at chunk size 100 should take 3 upserts")
	assert.Equal(t, 250, index.Count(ctx))
	require.Len(t, progress, 250)
	assert.Equal(t, 1, progress[0])
	assert.Equal(t, 250, progress[249])
}

func TestIndexDocuments_EmptyCorpus(t *testing.T) {
	client := newFakeClient()
	index := newTestIndex(t, client, Config{CollectionName: "kb"})

	require.NoError(t, index.IndexDocuments(context.Background(), nil, nil))
	assert.Zero(t, client.upserts)
}

func TestIndexDocuments_EmbeddingFailure(t *testing.T) {
	client := newFakeClient()
	index, err := NewIndex(client, &fakeEmbedder{err: errors.New("quota exceeded")}, Config{CollectionName: "kb"}, nil)
	require.NoError(t, err)

	err = index.IndexDocuments(context.Background(), []knowledge.Document{
		{ID: "doc_0", Content: "text", Category: knowledge.CategoryCare},
	}, nil)
	assert.ErrorIs(t, err, ErrEmbeddingFailed)
}

func TestSearch_CategoryFilter(t *testing.T) {
	client := newFakeClient()
	client.searchHits = []*qdrant.ScoredPoint{
		{Point: qdrant.Point{ID: 1, Payload: encodePayload(knowledge.Document{
			ID: "cafe_1", Content: "hours", Category: knowledge.CategoryCafe,
			Keywords: []string{"hours", "open"},
			Metadata: map[string]string{"type": "cafe_info"},
		})}, Score: 0.9},
		{Point: qdrant.Point{ID: 2, Payload: encodePayload(knowledge.Document{
			ID: "care_1", Content: "play", Category: knowledge.CategoryCare,
		})}, Score: 0.8},
	}
	index := newTestIndex(t, client, Config{CollectionName: "kb"})

	hits, err := index.Search(context.Background(), "when are you open", 5, knowledge.CategoryCafe)
	require.NoError(t, err)

	require.Len(t, hits, 1)
	hit := hits[0]
	assert.Equal(t, "cafe_1", hit.DocumentID)
	assert.Equal(t, knowledge.CategoryCafe, hit.Category)
	assert.Equal(t, []string{"hours", "open"}, hit.Keywords)
	assert.Equal(t, "cafe_info", hit.Metadata["type"])
	assert.InDelta(t, 0.9, hit.Score, 1e-6)
}

func TestSearchCategories_SortsByScore(t *testing.T) {
	client := newFakeClient()
	client.searchHits = []*qdrant.ScoredPoint{
		{Point: qdrant.Point{ID: 1, Payload: encodePayload(knowledge.Document{
			ID: "wisdom_1", Content: "a", Category: knowledge.CategoryWisdom,
		})}, Score: 0.4},
		{Point: qdrant.Point{ID: 2, Payload: encodePayload(knowledge.Document{
			ID: "emotion_1", Content: "b", Category: knowledge.CategoryEmotions,
		})}, Score: 0.95},
	}
	index := newTestIndex(t, client, Config{CollectionName: "kb"})

	hits, err := index.SearchCategories(context.Background(), "query",
		[]string{knowledge.CategoryWisdom, knowledge.CategoryEmotions}, 2)
	require.NoError(t, err)

	require.Len(t, hits, 2)
	assert.Equal(t, "emotion_1", hits[0].DocumentID)
	assert.Equal(t, "wisdom_1", hits[1].DocumentID)
}

func TestSearch_EmbeddingFailure(t *testing.T) {
	client := newFakeClient()
	index, err := NewIndex(client, &fakeEmbedder{err: errors.New("no key")}, Config{CollectionName: "kb"}, nil)
	require.NoError(t, err)

	_, err = index.Search(context.Background(), "query", 5, "")
	assert.ErrorIs(t, err, ErrEmbeddingFailed)
}

func TestInitialized_And_Count(t *testing.T) {
	client := newFakeClient()
	index := newTestIndex(t, client, Config{CollectionName: "kb"})
	ctx := context.Background()

	// No collection: reads as uninitialized, count 0, no error surfaced.
	assert.False(t, index.Initialized(ctx))
	assert.Zero(t, index.Count(ctx))

	require.NoError(t, index.EnsureCollection(ctx))
	assert.False(t, index.Initialized(ctx), "empty collection is not initialized")

	require.NoError(t, index.IndexDocument(ctx, knowledge.Document{
		ID: "wisdom_0", Content: "text", Category: knowledge.CategoryWisdom,
	}))
	assert.True(t, index.Initialized(ctx))
	assert.Equal(t, 1, index.Count(ctx))

	// An unreachable index reads as uninitialized.
	client.failAll = true
	assert.False(t, index.Initialized(ctx))
	assert.Zero(t, index.Count(ctx))
}

func TestPayloadRoundTrip(t *testing.T) {
	doc := knowledge.Document{
		ID:       "cat_7",
		Content:  "Mochi is a 3-year-old cream Ragdoll.",
		Category: knowledge.CategoryCatProfile,
		Keywords: []string{"mochi", "ragdoll", "cream"},
		Metadata: map[string]string{"type": "cat_profile", "cat_name": "Mochi"},
	}

	hit := decodeHit(encodePayload(doc), 0.5)

	assert.Equal(t, doc, hit.Document())
	assert.True(t, hit.Relevant(0.5))
	assert.False(t, hit.Relevant(0.7))
}
