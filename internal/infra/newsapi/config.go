package newsapi

import (
	"fmt"
	"os"
	"time"

	"newskeep/pkg/config"
)

const (
	// DefaultBaseURL is the public NewsAPI endpoint. Overridable for
	// compatible providers and for tests.
	DefaultBaseURL = "https://newsapi.org"

	// DefaultTimeout bounds a single provider call.
	DefaultTimeout = 10 * time.Second
)

// Config holds the provider connection settings.
type Config struct {
	// APIKey authenticates requests to the provider.
	// Loaded from NEWS_API_KEY. Required.
	APIKey string

	// BaseURL is the provider origin, without a trailing slash.
	// Loaded from NEWS_API_BASE_URL. Default: https://newsapi.org.
	BaseURL string

	// Timeout is the maximum duration for a single provider call.
	// Loaded from NEWS_API_TIMEOUT. Default: 10s.
	Timeout time.Duration
}

// LoadConfig reads provider settings from environment variables and
// validates them.
func LoadConfig() (Config, error) {
	cfg := Config{
		APIKey:  os.Getenv("NEWS_API_KEY"),
		BaseURL: config.GetEnvString("NEWS_API_BASE_URL", DefaultBaseURL),
		Timeout: config.GetEnvDuration("NEWS_API_TIMEOUT", DefaultTimeout),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration and returns an error if invalid.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("NEWS_API_KEY is required")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("news provider base URL cannot be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("news provider timeout must be positive, got %v", c.Timeout)
	}
	return nil
}
