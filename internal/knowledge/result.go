package knowledge

// Result is the outcome of one retrieval call: the matched documents in
// relevance order, with their scores when the scores are comparable.
//
// Scores is either empty or parallel to Documents. It is left empty when hits
// from heterogeneous searches were combined and their scores cannot be
// compared.
type Result struct {
	Query     string
	Documents []Document
	Scores    []float64
}

// IsEmpty reports whether no documents matched.
func (r Result) IsEmpty() bool {
	return len(r.Documents) == 0
}

// Len returns the number of matched documents.
func (r Result) Len() int {
	return len(r.Documents)
}

// Contents returns just the document texts, in relevance order.
func (r Result) Contents() []string {
	out := make([]string, len(r.Documents))
	for i, doc := range r.Documents {
		out[i] = doc.Content
	}
	return out
}

// TopDocument returns the most relevant document, or false if none matched.
func (r Result) TopDocument() (Document, bool) {
	if len(r.Documents) == 0 {
		return Document{}, false
	}
	return r.Documents[0], true
}

// ByCategory filters the matched documents to one category, preserving order.
func (r Result) ByCategory(category string) []Document {
	var out []Document
	for _, doc := range r.Documents {
		if doc.Category == category {
			out = append(out, doc)
		}
	}
	return out
}
