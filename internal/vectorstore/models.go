package vectorstore

import (
	"encoding/json"
	"strings"

	"github.com/whiskerwonders/whiskerbase/internal/knowledge"
)

// SearchHit is one similarity-search match. Scores follow the collection's
// cosine metric: higher means more similar.
type SearchHit struct {
	DocumentID string
	Content    string
	Category   string
	Score      float32
	Metadata   map[string]string
	Keywords   []string
}

// Document converts the hit back into a knowledge document. This is an
// adapter over the stored payload, not a new identity.
func (h SearchHit) Document() knowledge.Document {
	return knowledge.Document{
		ID:       h.DocumentID,
		Content:  h.Content,
		Category: h.Category,
		Keywords: h.Keywords,
		Metadata: h.Metadata,
	}
}

// Relevant reports whether the hit's similarity meets the given threshold.
func (h SearchHit) Relevant(threshold float32) bool {
	return h.Score >= threshold
}

// Payload field names stored per point.
const (
	payloadDocumentID = "document_id"
	payloadContent    = "content"
	payloadCategory   = "category"
	payloadKeywords   = "keywords"
	payloadMetadata   = "metadata"
)

// encodePayload flattens a document into the string payload stored alongside
// its vector. Keywords are comma-joined and metadata JSON-encoded so the
// payload stays a flat string map.
func encodePayload(doc knowledge.Document) map[string]string {
	metadata := "{}"
	if len(doc.Metadata) > 0 {
		if enc, err := json.Marshal(doc.Metadata); err == nil {
			metadata = string(enc)
		}
	}

	return map[string]string{
		payloadDocumentID: doc.ID,
		payloadContent:    doc.Content,
		payloadCategory:   doc.Category,
		payloadKeywords:   strings.Join(doc.Keywords, ","),
		payloadMetadata:   metadata,
	}
}

// decodeHit rebuilds a SearchHit from a point payload.
func decodeHit(payload map[string]string, score float32) SearchHit {
	hit := SearchHit{
		DocumentID: payload[payloadDocumentID],
		Content:    payload[payloadContent],
		Category:   payload[payloadCategory],
		Score:      score,
	}

	if kw := payload[payloadKeywords]; kw != "" {
		hit.Keywords = strings.Split(kw, ",")
	}

	if meta := payload[payloadMetadata]; meta != "" {
		var decoded map[string]string
		if err := json.Unmarshal([]byte(meta), &decoded); err == nil {
			hit.Metadata = decoded
		}
	}

	return hit
}
