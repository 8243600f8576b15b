package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const maxConfigFileSize = 1024 * 1024 // 1MB

// Load reads configuration from a YAML file, then overrides with environment
// variables.
//
// Precedence (highest to lowest):
//  1. Environment variables (QDRANT_HOST, EMBEDDING_API_KEY, ...)
//  2. YAML config file, when configPath is non-empty and the file exists
//  3. Hardcoded defaults
//
// Environment variables map to config keys by splitting on the first
// underscore: EMBEDDING_API_KEY -> embedding.api_key,
// INDEX_COLLECTION_NAME -> index.collection_name.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if configPath != "" {
		if info, err := os.Stat(configPath); err == nil {
			if info.Size() > maxConfigFileSize {
				return nil, fmt.Errorf("config file %s exceeds %d bytes", configPath, maxConfigFileSize)
			}
			content, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
			}
		}
	}

	if err := k.Load(env.Provider("", ".", envToKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// envToKey maps an environment variable name to a config key. The section is
// everything before the first underscore, the field keeps its underscores:
// QDRANT_REQUEST_TIMEOUT -> qdrant.request_timeout.
func envToKey(s string) string {
	lower := strings.ToLower(s)
	parts := strings.SplitN(lower, "_", 2)
	if len(parts) == 1 {
		return lower
	}
	return parts[0] + "." + parts[1]
}
