// Package indexer implements the one-shot job that synchronizes the vector
// index with the current knowledge corpus. Operator-triggered, never run per
// request.
package indexer

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/whiskerwonders/whiskerbase/internal/knowledge"
	"github.com/whiskerwonders/whiskerbase/internal/logging"
	"github.com/whiskerwonders/whiskerbase/internal/vectorstore"
)

// Corpus supplies the documents to index, implemented by knowledge.Base.
type Corpus interface {
	Documents(ctx context.Context) []knowledge.Document
}

// Store is the index surface the job writes to, implemented by
// vectorstore.Index.
type Store interface {
	EnsureCollection(ctx context.Context) error
	Reset(ctx context.Context) error
	IndexDocuments(ctx context.Context, docs []knowledge.Document, onProgress vectorstore.ProgressFunc) error
	Count(ctx context.Context) int
}

// Options controls a job run.
type Options struct {
	// Reset deletes and recreates the collection before indexing.
	Reset bool

	// DryRun reports what would be indexed without touching the index.
	DryRun bool

	// OnProgress receives per-document progress during indexing.
	OnProgress vectorstore.ProgressFunc
}

// CategoryCount is one row of the per-category breakdown.
type CategoryCount struct {
	Category string
	Count    int
}

// Report summarizes a job run.
type Report struct {
	// Total is the corpus size at the time of the run.
	Total int

	// ByCategory breaks the corpus down per category, sorted by name.
	ByCategory []CategoryCount

	// Indexed is the index's point count after the run. Zero for dry runs.
	Indexed int

	// DryRun records whether the index was left untouched.
	DryRun bool
}

// Run executes the indexing job. Failures abort the job; points already
// flushed stay in the index, and re-running (or running with Reset) is the
// recovery path.
func Run(ctx context.Context, corpus Corpus, store Store, opts Options, logger *logging.Logger) (Report, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.Named("indexer")

	docs := corpus.Documents(ctx)

	report := Report{
		Total:      len(docs),
		ByCategory: countByCategory(docs),
		DryRun:     opts.DryRun,
	}

	if len(docs) == 0 {
		logger.Warn(ctx, "no documents in the knowledge base, nothing to index")
		return report, nil
	}

	if opts.DryRun {
		logger.Info(ctx, "dry run, index untouched", zap.Int("total", report.Total))
		return report, nil
	}

	if opts.Reset {
		logger.Info(ctx, "resetting collection before indexing")
		if err := store.Reset(ctx); err != nil {
			return report, fmt.Errorf("resetting collection: %w", err)
		}
	} else {
		if err := store.EnsureCollection(ctx); err != nil {
			return report, fmt.Errorf("initializing collection: %w", err)
		}
	}

	if err := store.IndexDocuments(ctx, docs, opts.OnProgress); err != nil {
		return report, fmt.Errorf("indexing documents: %w", err)
	}

	report.Indexed = store.Count(ctx)
	logger.Info(ctx, "indexing complete",
		zap.Int("total", report.Total),
		zap.Int("indexed", report.Indexed),
	)
	return report, nil
}

func countByCategory(docs []knowledge.Document) []CategoryCount {
	counts := make(map[string]int)
	for _, doc := range docs {
		counts[doc.Category]++
	}

	rows := make([]CategoryCount, 0, len(counts))
	for category, count := range counts {
		rows = append(rows, CategoryCount{Category: category, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Category < rows[j].Category
	})
	return rows
}
