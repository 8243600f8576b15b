// Package knowledge holds the retrievable document corpus for the café's
// advisory features: static topical content plus per-cat profiles synthesized
// from the live cat snapshot.
package knowledge

import (
	"strings"
	"unicode"
)

// Document categories. Closed set; used for lexical bonus scoring and for
// vector payload filtering.
const (
	CategoryWisdom     = "wisdom"
	CategoryCafe       = "cafe"
	CategoryCare       = "care"
	CategoryEmotions   = "emotions"
	CategoryBreeds     = "breeds"
	CategoryCatProfile = "cat_profile"
)

// Document is one retrievable unit of text.
//
// Documents are immutable once built; the corpus is rebuilt from static
// definitions plus the cat snapshot on every process start.
type Document struct {
	// ID is unique within the corpus (e.g. "wisdom_3", "cat_12").
	ID string

	// Content is the retrievable text. Never empty.
	Content string

	// Category is one of the Category* constants.
	Category string

	// Keywords are lowercase hints used for lexical boosting.
	Keywords []string

	// Metadata carries auxiliary attributes (source type, cat id, ...).
	Metadata map[string]string
}

// Relevance scores the document against a free-text query using keyword and
// substring matching. Pure function of the two texts; zero means no overlap.
//
// Weights: 3.0 per keyword found in the query, 1.0 per query token found in
// the content, 2.0 if the query mentions the category name.
func (d Document) Relevance(query string) float64 {
	query = strings.ToLower(query)
	score := 0.0

	for _, kw := range d.Keywords {
		if strings.Contains(query, strings.ToLower(kw)) {
			score += 3.0
		}
	}

	content := strings.ToLower(d.Content)
	for _, word := range tokenize(query) {
		if strings.Contains(content, word) {
			score += 1.0
		}
	}

	if strings.Contains(query, strings.ToLower(d.Category)) {
		score += 2.0
	}

	return score
}

// tokenize lowercases, strips punctuation and drops tokens of length <= 2.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
	words := fields[:0]
	for _, w := range fields {
		if len(w) > 2 {
			words = append(words, w)
		}
	}
	return words
}
