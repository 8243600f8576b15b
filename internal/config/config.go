// Package config provides configuration loading for the knowledge engine.
package config

import (
	"fmt"

	"github.com/whiskerwonders/whiskerbase/internal/logging"
	"github.com/whiskerwonders/whiskerbase/internal/qdrant"
	"github.com/whiskerwonders/whiskerbase/internal/vectorstore"
)

// Config is the root configuration.
type Config struct {
	Logging   logging.Config      `koanf:"logging"`
	Embedding EmbeddingConfig     `koanf:"embedding"`
	Qdrant    qdrant.ClientConfig `koanf:"qdrant"`
	Index     vectorstore.Config  `koanf:"index"`
}

// EmbeddingConfig configures the embedding service.
type EmbeddingConfig struct {
	// APIKey is the Google generative language API key.
	APIKey Secret `koanf:"api_key"`

	// Model is the embedding model. Default: text-embedding-004.
	Model string `koanf:"model"`

	// BaseURL overrides the API endpoint.
	BaseURL string `koanf:"base_url"`

	// Timeout bounds each embedding call. Default: 30s.
	Timeout Duration `koanf:"timeout"`
}

// applyDefaults fills in defaults for missing values.
func applyDefaults(cfg *Config) {
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = logging.NewDefaultConfig().Format
	}
	cfg.Qdrant.ApplyDefaults()
	cfg.Index.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Qdrant.Validate(); err != nil {
		return fmt.Errorf("qdrant: %w", err)
	}
	if err := c.Index.Validate(); err != nil {
		return fmt.Errorf("index: %w", err)
	}
	return nil
}
