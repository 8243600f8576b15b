// Package embeddings provides embedding generation via the Google generative
// language API.
package embeddings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	// ErrMissingAPIKey indicates no API credential is configured. Unlike a
	// service failure, this is fatal to every embedding-dependent operation.
	ErrMissingAPIKey = errors.New("embedding API key not configured")

	// ErrEmptyInput indicates empty or nil input texts.
	ErrEmptyInput = errors.New("empty or nil input texts")

	// ErrEmbeddingFailed indicates the upstream call failed.
	ErrEmbeddingFailed = errors.New("embedding generation failed")

	// ErrInvalidResponse indicates the upstream response is missing the
	// expected vector field.
	ErrInvalidResponse = errors.New("invalid embedding API response")
)

// Task types steering the model: documents and queries are embedded with
// different hints but share dimensionality.
const (
	taskDocument = "RETRIEVAL_DOCUMENT"
	taskQuery    = "RETRIEVAL_QUERY"
)

const (
	defaultModel   = "text-embedding-004"
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultTimeout = 30 * time.Second

	// dimension is the vector size produced by text-embedding-004.
	dimension = 768
)

// Config holds configuration for the embedding service.
type Config struct {
	// APIKey is the Google generative language API key. Required.
	APIKey string

	// Model is the embedding model name. Default: text-embedding-004.
	Model string

	// BaseURL overrides the API endpoint. Used in tests.
	BaseURL string

	// Timeout bounds each HTTP call. Default: 30s.
	Timeout time.Duration
}

// ApplyDefaults sets default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Model == "" {
		c.Model = defaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
}

// Service generates text embeddings. It distinguishes document embedding
// (indexing) from query embedding (search) via the model's task type.
type Service struct {
	config Config
	client *http.Client
}

// NewService creates a new embedding service with the given configuration.
// The API key is not validated here; calls fail with ErrMissingAPIKey when it
// is absent, so a Service can be constructed in degraded deployments where
// only the lexical retrieval path runs.
func NewService(config Config) *Service {
	config.ApplyDefaults()
	return &Service{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// Dimension returns the vector size this service produces.
func (s *Service) Dimension() int {
	return dimension
}

// Model returns the model name in use.
func (s *Service) Model() string {
	return s.config.Model
}

// content is the request text wrapper used by the generative language API.
type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// embedRequest is the body for the embedContent endpoint.
type embedRequest struct {
	Model    string  `json:"model"`
	Content  content `json:"content"`
	TaskType string  `json:"taskType"`
}

type embedResponse struct {
	Embedding *struct {
		Values []float32 `json:"values"`
	} `json:"embedding"`
}

type batchEmbedRequest struct {
	Requests []embedRequest `json:"requests"`
}

type batchEmbedResponse struct {
	Embeddings []struct {
		Values []float32 `json:"values"`
	} `json:"embeddings"`
}

// Embed generates an embedding for a single document text.
func (s *Service) Embed(ctx context.Context, text string) ([]float32, error) {
	return s.embed(ctx, text, taskDocument)
}

// EmbedQuery generates an embedding for a search query. The query task type
// produces vectors tuned for retrieval lookups rather than indexing.
func (s *Service) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return s.embed(ctx, text, taskQuery)
}

func (s *Service) embed(ctx context.Context, text, taskType string) ([]float32, error) {
	if s.config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if text == "" {
		return nil, fmt.Errorf("%w: text cannot be empty", ErrEmptyInput)
	}

	body := embedRequest{
		Model:    "models/" + s.config.Model,
		Content:  content{Parts: []part{{Text: text}}},
		TaskType: taskType,
	}

	url := fmt.Sprintf("%s/models/%s:embedContent?key=%s", s.config.BaseURL, s.config.Model, s.config.APIKey)

	var resp embedResponse
	if err := s.post(ctx, url, body, &resp); err != nil {
		return nil, err
	}

	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("%w: missing embedding values", ErrInvalidResponse)
	}

	return resp.Embedding.Values, nil
}

// EmbedDocuments generates embeddings for multiple texts in one batch call.
// The returned slice preserves input order.
func (s *Service) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	if s.config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if len(texts) == 0 {
		return nil, fmt.Errorf("%w: texts cannot be empty", ErrEmptyInput)
	}

	requests := make([]embedRequest, len(texts))
	for i, text := range texts {
		requests[i] = embedRequest{
			Model:    "models/" + s.config.Model,
			Content:  content{Parts: []part{{Text: text}}},
			TaskType: taskDocument,
		}
	}

	url := fmt.Sprintf("%s/models/%s:batchEmbedContents?key=%s", s.config.BaseURL, s.config.Model, s.config.APIKey)

	var resp batchEmbedResponse
	if err := s.post(ctx, url, batchEmbedRequest{Requests: requests}, &resp); err != nil {
		return nil, err
	}

	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("%w: got %d embeddings for %d texts", ErrInvalidResponse, len(resp.Embeddings), len(texts))
	}

	vectors := make([][]float32, len(resp.Embeddings))
	for i, e := range resp.Embeddings {
		if len(e.Values) == 0 {
			return nil, fmt.Errorf("%w: empty embedding at index %d", ErrInvalidResponse, i)
		}
		vectors[i] = e.Values
	}

	return vectors, nil
}

func (s *Service) post(ctx context.Context, url string, reqBody, respBody any) error {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEmbeddingFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: status %d: %s", ErrEmbeddingFailed, resp.StatusCode, string(detail))
	}

	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return nil
}
