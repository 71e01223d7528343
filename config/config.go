package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the ambient settings for template assembly
type Config struct {
	Environment      string
	PlaceholderStart string
	PlaceholderEnd   string
	StrictValidation bool
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file if not in production
	// We don't return error here because in production .env might not exist
	// and we rely on system environment variables
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:      env,
		PlaceholderStart: os.Getenv("PLACEHOLDER_START"),
		PlaceholderEnd:   os.Getenv("PLACEHOLDER_END"),
		StrictValidation: os.Getenv("STRICT_TEMPLATE_VALIDATION") == "true",
	}

	// Set defaults. The platform's authored-template convention uses single
	// curly braces around inline example values.
	if cfg.PlaceholderStart == "" {
		cfg.PlaceholderStart = "{"
	}
	if cfg.PlaceholderEnd == "" {
		cfg.PlaceholderEnd = "}"
	}

	return cfg, nil
}
