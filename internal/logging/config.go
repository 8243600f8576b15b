package logging

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum level to emit.
	Level zapcore.Level `koanf:"level"`

	// Format selects the encoder: "json" or "console".
	Format string `koanf:"format"`

	// Caller enables caller annotation on log entries.
	Caller bool `koanf:"caller"`

	// Fields are constant fields attached to every entry.
	Fields map[string]string `koanf:"fields"`
}

// NewDefaultConfig returns config with production-ready defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Level:  zapcore.InfoLevel,
		Format: "json",
		Caller: true,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	switch c.Format {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("invalid log format %q (want json or console)", c.Format)
	}
}
