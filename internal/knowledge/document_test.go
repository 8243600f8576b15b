package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocument_Relevance(t *testing.T) {
	doc := Document{
		ID:       "emotion_2",
		Content:  "Loneliness is tough, even for independent cats. Connection matters.",
		Category: CategoryEmotions,
		Keywords: []string{"lonely", "alone", "isolated"},
	}

	tests := []struct {
		name  string
		query string
		want  float64
	}{
		{
			name:  "no overlap",
			query: "what time is breakfast",
			want:  0,
		},
		{
			name: "keyword match",
			// "lonely" keyword -> 3.0; no query token appears in the content
			query: "I feel so lonely today",
			want:  3.0,
		},
		{
			name: "category mention",
			// no keywords, no content tokens, category "emotions" in query -> 2.0
			query: "emotions",
			want:  2.0,
		},
		{
			name: "short tokens dropped",
			// "is" (len 2) would match content but is below the token length cutoff
			query: "is it",
			want:  0,
		},
		{
			name: "content token match",
			// "connection" token in content -> 1.0
			query: "need some connection",
			want:  1.0,
		},
		{
			name:  "case insensitive",
			query: "LONELY",
			want:  3.0, // keyword match despite the casing
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, doc.Relevance(tt.query))
		})
	}
}

func TestDocument_RelevanceDeterministic(t *testing.T) {
	doc := Document{
		ID:       "wisdom_0",
		Content:  "A warm lap is worth a thousand words.",
		Category: CategoryWisdom,
		Keywords: []string{"comfort", "warmth", "lonely"},
	}

	query := "I need some comfort and warmth"
	first := doc.Relevance(query)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, doc.Relevance(query))
	}
	assert.Greater(t, first, 0.0)
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "strips punctuation and short words",
			text: "I'm anxious, really anxious!",
			want: []string{"anxious", "really", "anxious"},
		},
		{
			name: "lowercases",
			text: "Whiskers KNOW",
			want: []string{"whiskers", "know"},
		},
		{
			name: "empty",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenize(tt.text))
		})
	}
}
