package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// PlaceholderAPIKey is the value shipped in the sample .env file.
const PlaceholderAPIKey = "your-gemini-api-key-here"

type Config struct {
	Port             string   `env:"PORT" envDefault:"5001" validate:"required,numeric"`
	GeminiAPIKey     string   `env:"GEMINI_API_KEY"`
	ViteGeminiAPIKey string   `env:"VITE_GEMINI_API_KEY"`
	MaxFileSizeMB    int64    `env:"MAX_FILE_SIZE_MB" envDefault:"10" validate:"gt=0"`
	LogLevel         string   `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*" validate:"min=1"`
}

// LoadConfig reads .env files from the working directory and its parent,
// then parses and validates the process environment.
func LoadConfig(logger *zap.Logger) (*Config, error) {
	for _, path := range []string{".env", "../.env"} {
		if err := godotenv.Load(path); err != nil {
			logger.Debug("No .env file loaded", zap.String("path", path))
		}
	}

	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Credential returns the Gemini API key. GEMINI_API_KEY is checked before
// VITE_GEMINI_API_KEY; empty and placeholder values are skipped.
func (c *Config) Credential() (string, bool) {
	for _, candidate := range []string{c.GeminiAPIKey, c.ViteGeminiAPIKey} {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" || candidate == PlaceholderAPIKey {
			continue
		}
		return candidate, true
	}
	return "", false
}
