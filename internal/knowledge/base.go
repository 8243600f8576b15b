package knowledge

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/whiskerwonders/whiskerbase/internal/cats"
	"github.com/whiskerwonders/whiskerbase/internal/logging"
)

// Base is the process-lifetime document corpus.
//
// The corpus is built lazily on first access, exactly once per Base instance:
// the static topical sets plus one profile document per resident cat. If the
// cat snapshot is unavailable the Base still initializes with the static
// categories only.
type Base struct {
	source cats.Source
	logger *logging.Logger

	once sync.Once
	docs []Document
}

// NewBase creates a Base reading cat profiles from source. A nil source
// yields a static-only corpus.
func NewBase(source cats.Source, logger *logging.Logger) *Base {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Base{
		source: source,
		logger: logger.Named("knowledge"),
	}
}

// Documents returns the full corpus, building it on first call.
func (b *Base) Documents(ctx context.Context) []Document {
	b.once.Do(func() { b.build(ctx) })
	return b.docs
}

// ByCategory returns the corpus documents with the given category.
func (b *Base) ByCategory(ctx context.Context, category string) []Document {
	var out []Document
	for _, doc := range b.Documents(ctx) {
		if doc.Category == category {
			out = append(out, doc)
		}
	}
	return out
}

func (b *Base) build(ctx context.Context) {
	b.docs = staticDocuments()

	if b.source == nil {
		return
	}

	residents, err := b.source.All(ctx)
	if err != nil {
		// The entity layer may be down during setup; static content is
		// enough to answer with.
		b.logger.Warn(ctx, "cat snapshot unavailable, using static corpus only",
			zap.Error(err),
		)
		return
	}

	for _, cat := range residents {
		b.docs = append(b.docs, profileDocument(cat))
	}

	b.logger.Info(ctx, "knowledge base initialized",
		zap.Int("documents", len(b.docs)),
		zap.Int("cat_profiles", len(residents)),
	)
}

// profileDocument synthesizes one retrievable document from a cat record.
func profileDocument(cat cats.Cat) Document {
	description := cat.Description
	if description == "" {
		description = "A wonderful cafe cat."
	}

	content := fmt.Sprintf(
		"%s is a %d-year-old %s %s. %s %s is currently feeling %s. When interacting with %s, expect %s.",
		cat.Name, cat.Age, cat.Color, cat.Breed,
		description,
		cat.Name, cat.Mood,
		cat.Name, moodExpectation(cat.Mood),
	)

	return Document{
		ID:       fmt.Sprintf("cat_%d", cat.ID),
		Content:  content,
		Category: CategoryCatProfile,
		Keywords: []string{
			strings.ToLower(cat.Name),
			strings.ToLower(cat.Breed),
			strings.ToLower(cat.Color),
			cat.Mood,
		},
		Metadata: map[string]string{
			"type":     "cat_profile",
			"cat_id":   fmt.Sprintf("%d", cat.ID),
			"cat_name": cat.Name,
			"breed":    cat.Breed,
			"mood":     cat.Mood,
		},
	}
}

// moodExpectation maps a mood keyword to the tone visitors should expect.
func moodExpectation(mood string) string {
	switch mood {
	case "happy":
		return "energetic, positive responses full of enthusiasm and joy"
	case "content":
		return "calm, thoughtful advice delivered with peaceful wisdom"
	case "grumpy":
		return "blunt but caring honesty with a touch of sass"
	case "upset":
		return "empathetic understanding from someone who knows struggle"
	case "hungry":
		return "advice peppered with food metaphors and treat references"
	case "sleepy":
		return "gentle, dreamy wisdom with a relaxed, soothing tone"
	default:
		return "unique insights based on their current mood"
	}
}
