// Package retriever turns free-text queries into ranked grounding context,
// preferring vector similarity search and falling back to lexical scoring
// over the in-memory corpus.
package retriever

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/whiskerwonders/whiskerbase/internal/cats"
	"github.com/whiskerwonders/whiskerbase/internal/knowledge"
	"github.com/whiskerwonders/whiskerbase/internal/logging"
	"github.com/whiskerwonders/whiskerbase/internal/vectorstore"
)

// ErrVectorUnavailable signals that the vector path cannot serve this call
// and the lexical path should be used instead. It is never returned to
// callers of Retrieve and friends.
var ErrVectorUnavailable = errors.New("vector search unavailable")

// DefaultLimit is the document cap when the caller does not specify one.
const DefaultLimit = 5

// therapyLimit caps the combined fan-out result for advisory sessions.
const therapyLimit = 5

// Index is the vector search surface the retriever consumes, implemented by
// vectorstore.Index.
type Index interface {
	Search(ctx context.Context, query string, limit int, category string) ([]vectorstore.SearchHit, error)
	SearchCategories(ctx context.Context, query string, categories []string, limitPerCategory int) ([]vectorstore.SearchHit, error)
	Initialized(ctx context.Context) bool
}

// Retriever is the single entry point for knowledge retrieval.
type Retriever struct {
	base   *knowledge.Base
	index  Index
	logger *logging.Logger
}

// New creates a Retriever over the knowledge base. index may be nil, in
// which case every call uses the lexical path.
func New(base *knowledge.Base, index Index, logger *logging.Logger) *Retriever {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Retriever{
		base:   base,
		index:  index,
		logger: logger.Named("retriever"),
	}
}

// VectorSearchAvailable reports whether an index is configured and holds
// points.
func (r *Retriever) VectorSearchAvailable(ctx context.Context) bool {
	return r.index != nil && r.index.Initialized(ctx)
}

// Retrieve returns up to limit documents relevant to the query, optionally
// restricted to the given categories. Retrieval never fails: a degraded
// vector path falls back to lexical scoring, and a query matching nothing
// yields an empty result.
func (r *Retriever) Retrieve(ctx context.Context, query string, limit int, categories []string) knowledge.Result {
	if limit <= 0 {
		limit = DefaultLimit
	}

	if r.VectorSearchAvailable(ctx) {
		result, err := r.tryVector(ctx, query, limit, categories)
		if err == nil {
			return result
		}
		r.logger.Warn(ctx, "vector retrieval degraded to lexical",
			zap.Error(err),
		)
	}

	return r.lexical(ctx, query, limit, categories)
}

// tryVector attempts the vector path. Any failure comes back as an error
// wrapping ErrVectorUnavailable so the caller branches explicitly instead of
// papering over it.
func (r *Retriever) tryVector(ctx context.Context, query string, limit int, categories []string) (knowledge.Result, error) {
	var (
		hits []vectorstore.SearchHit
		err  error
	)

	if len(categories) > 0 {
		perCategory := (limit + len(categories) - 1) / len(categories)
		hits, err = r.index.SearchCategories(ctx, query, categories, perCategory)
		if len(hits) > limit {
			hits = hits[:limit]
		}
	} else {
		hits, err = r.index.Search(ctx, query, limit, "")
	}
	if err != nil {
		return knowledge.Result{}, fmt.Errorf("%w: %v", ErrVectorUnavailable, err)
	}

	return hitsToResult(query, hits), nil
}

// lexical scores every corpus document against the query and keeps the
// strictly positive scores, highest first.
func (r *Retriever) lexical(ctx context.Context, query string, limit int, categories []string) knowledge.Result {
	docs := r.base.Documents(ctx)
	if len(categories) > 0 {
		filtered := make([]knowledge.Document, 0, len(docs))
		for _, doc := range docs {
			if containsString(categories, doc.Category) {
				filtered = append(filtered, doc)
			}
		}
		docs = filtered
	}

	type scored struct {
		doc   knowledge.Document
		score float64
	}

	var matches []scored
	for _, doc := range docs {
		if score := doc.Relevance(query); score > 0 {
			matches = append(matches, scored{doc, score})
		}
	}

	// Stable: ties keep corpus order.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	result := knowledge.Result{
		Query:     query,
		Documents: make([]knowledge.Document, len(matches)),
		Scores:    make([]float64, len(matches)),
	}
	for i, m := range matches {
		result.Documents[i] = m.doc
		result.Scores[i] = m.score
	}
	return result
}

// RetrieveForTherapy fans the query out across the advisory categories:
// emotional support first, then wisdom, plus breed background when a cat is
// attending the session. The combined list is deduplicated by document id.
func (r *Retriever) RetrieveForTherapy(ctx context.Context, query string, cat *cats.Cat) knowledge.Result {
	if r.VectorSearchAvailable(ctx) {
		result, err := r.therapyVector(ctx, query, cat)
		if err == nil {
			return result
		}
		r.logger.Warn(ctx, "therapy vector retrieval degraded to lexical",
			zap.Error(err),
		)
	}

	return r.therapyLexical(ctx, query, cat)
}

func (r *Retriever) therapyVector(ctx context.Context, query string, cat *cats.Cat) (knowledge.Result, error) {
	categories := []string{knowledge.CategoryEmotions, knowledge.CategoryWisdom}
	if cat != nil {
		categories = append(categories, knowledge.CategoryBreeds)
	}

	hits, err := r.index.SearchCategories(ctx, query, categories, 2)
	if err != nil {
		return knowledge.Result{}, fmt.Errorf("%w: %v", ErrVectorUnavailable, err)
	}

	if cat != nil {
		breedHits, err := r.index.Search(ctx, cat.Breed, 1, knowledge.CategoryBreeds)
		if err != nil {
			return knowledge.Result{}, fmt.Errorf("%w: %v", ErrVectorUnavailable, err)
		}
		hits = append(hits, breedHits...)
	}

	// Dedup by document id, first occurrence wins.
	seen := make(map[string]bool, len(hits))
	unique := hits[:0]
	for _, hit := range hits {
		if !seen[hit.DocumentID] {
			seen[hit.DocumentID] = true
			unique = append(unique, hit)
		}
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Score > unique[j].Score
	})
	if len(unique) > therapyLimit {
		unique = unique[:therapyLimit]
	}

	return hitsToResult(query, unique), nil
}

func (r *Retriever) therapyLexical(ctx context.Context, query string, cat *cats.Cat) knowledge.Result {
	emotional := r.lexical(ctx, query, 2, []string{knowledge.CategoryEmotions})
	wisdom := r.lexical(ctx, query, 2, []string{knowledge.CategoryWisdom})

	combined := append([]knowledge.Document{}, emotional.Documents...)
	combined = append(combined, wisdom.Documents...)

	if cat != nil {
		breed := r.lexical(ctx, cat.Breed, 1, []string{knowledge.CategoryBreeds})
		combined = append(combined, breed.Documents...)
	}

	// Dedup by id; first occurrence wins, preserving the emotions-first
	// priority order.
	seen := make(map[string]bool, len(combined))
	unique := combined[:0]
	for _, doc := range combined {
		if !seen[doc.ID] {
			seen[doc.ID] = true
			unique = append(unique, doc)
		}
	}
	if len(unique) > therapyLimit {
		unique = unique[:therapyLimit]
	}

	// Scores from independent searches are not comparable; omit them.
	return knowledge.Result{
		Query:     query,
		Documents: unique,
	}
}

// RetrieveCafeInfo answers visitor questions from the café and care sets.
func (r *Retriever) RetrieveCafeInfo(ctx context.Context, query string) knowledge.Result {
	return r.Retrieve(ctx, query, 3, []string{knowledge.CategoryCafe, knowledge.CategoryCare})
}

// FormatAsContext renders a result as the grounding block spliced into the
// generation prompt. An empty result formats as the empty string so the
// generator proceeds ungrounded.
func FormatAsContext(result knowledge.Result) string {
	if result.IsEmpty() {
		return ""
	}

	var b strings.Builder
	b.WriteString("Relevant knowledge to incorporate in your response:\n\n")
	for _, doc := range result.Documents {
		fmt.Fprintf(&b, "[%s]: %s\n\n", capitalize(doc.Category), doc.Content)
	}
	return b.String()
}

func hitsToResult(query string, hits []vectorstore.SearchHit) knowledge.Result {
	result := knowledge.Result{
		Query:     query,
		Documents: make([]knowledge.Document, len(hits)),
		Scores:    make([]float64, len(hits)),
	}
	for i, hit := range hits {
		result.Documents[i] = hit.Document()
		result.Scores[i] = float64(hit.Score)
	}
	return result
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
