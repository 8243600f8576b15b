package indexer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whiskerwonders/whiskerbase/internal/knowledge"
	"github.com/whiskerwonders/whiskerbase/internal/vectorstore"
)

type fakeCorpus struct {
	docs []knowledge.Document
}

func (f *fakeCorpus) Documents(ctx context.Context) []knowledge.Document {
	return f.docs
}

type fakeStore struct {
	ensured  int
	resets   int
	indexed  []knowledge.Document
	indexErr error
	resetErr error
}

func (f *fakeStore) EnsureCollection(ctx context.Context) error { f.ensured++; return nil }

func (f *fakeStore) Reset(ctx context.Context) error {
	f.resets++
	if f.resetErr != nil {
		return f.resetErr
	}
	f.indexed = nil
	return nil
}

func (f *fakeStore) IndexDocuments(ctx context.Context, docs []knowledge.Document, onProgress vectorstore.ProgressFunc) error {
	if f.indexErr != nil {
		return f.indexErr
	}
	for i := range docs {
		if onProgress != nil {
			onProgress(i+1, len(docs))
		}
	}
	f.indexed = append(f.indexed, docs...)
	return nil
}

func (f *fakeStore) Count(ctx context.Context) int { return len(f.indexed) }

func testCorpus() *fakeCorpus {
	return &fakeCorpus{docs: []knowledge.Document{
		{ID: "wisdom_0", Content: "a", Category: knowledge.CategoryWisdom},
		{ID: "wisdom_1", Content: "b", Category: knowledge.CategoryWisdom},
		{ID: "cafe_0", Content: "c", Category: knowledge.CategoryCafe},
		{ID: "cat_1", Content: "d", Category: knowledge.CategoryCatProfile},
	}}
}

func TestRun_IndexesCorpus(t *testing.T) {
	store := &fakeStore{}
	var calls int
	opts := Options{OnProgress: func(current, total int) { calls++ }}

	report, err := Run(context.Background(), testCorpus(), store, opts, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 4, report.Indexed)
	assert.False(t, report.DryRun)
	assert.Equal(t, 1, store.ensured)
	assert.Zero(t, store.resets)
	assert.Equal(t, 4, calls)

	assert.Equal(t, []CategoryCount{
		{Category: knowledge.CategoryCafe, Count: 1},
		{Category: knowledge.CategoryCatProfile, Count: 1},
		{Category: knowledge.CategoryWisdom, Count: 2},
	}, report.ByCategory)
}

func TestRun_DryRunLeavesIndexUntouched(t *testing.T) {
	store := &fakeStore{}

	report, err := Run(context.Background(), testCorpus(), store, Options{DryRun: true}, nil)
	require.NoError(t, err)

	assert.True(t, report.DryRun)
	assert.Equal(t, 4, report.Total)
	assert.Zero(t, report.Indexed)
	assert.Zero(t, store.ensured)
	assert.Zero(t, store.resets)
	assert.Empty(t, store.indexed)
}

func TestRun_ResetRecreatesCollection(t *testing.T) {
	store := &fakeStore{indexed: []knowledge.Document{{ID: "stale_0"}}}

	report, err := Run(context.Background(), testCorpus(), store, Options{Reset: true}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, store.resets)
	assert.Zero(t, store.ensured, "reset already creates the collection")
	assert.Equal(t, 4, report.Indexed, "stale points do not survive a reset")
}

func TestRun_EmptyCorpus(t *testing.T) {
	store := &fakeStore{}

	report, err := Run(context.Background(), &fakeCorpus{}, store, Options{}, nil)
	require.NoError(t, err)

	assert.Zero(t, report.Total)
	assert.Empty(t, report.ByCategory)
	assert.Zero(t, store.ensured, "empty corpus never touches the index")
}

func TestRun_ResetFailureAborts(t *testing.T) {
	store := &fakeStore{resetErr: errors.New("qdrant unreachable")}

	_, err := Run(context.Background(), testCorpus(), store, Options{Reset: true}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resetting collection")
	assert.Empty(t, store.indexed)
}

func TestRun_IndexFailureAborts(t *testing.T) {
	store := &fakeStore{indexErr: errors.New("quota exceeded")}

	report, err := Run(context.Background(), testCorpus(), store, Options{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "indexing documents")
	assert.Equal(t, 4, report.Total, "report still describes the corpus")
}
