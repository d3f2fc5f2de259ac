package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	API     APIConfig
	HTTP    HTTPConfig
	Metrics MetricsConfig
}

type APIConfig struct {
	// BaseURL is the versioned API root, e.g. https://host/api/v1.
	// The transactions resource lives under it.
	BaseURL      string
	SessionToken string
}

type HTTPConfig struct {
	// Timeout of 0 means no request timeout; a hung request is then only
	// bounded by the caller's context.
	Timeout   time.Duration
	UserAgent string
}

type MetricsConfig struct {
	Enabled bool
}

// Load reads the client configuration from the environment. A local .env
// file is applied first when present.
func Load() (*Config, error) {
	// best effort: a missing .env file is not an error
	_ = godotenv.Load()

	config := &Config{
		API: APIConfig{
			BaseURL:      getEnv("SPENDTRACK_API_URL", ""),
			SessionToken: getEnv("SPENDTRACK_SESSION_TOKEN", ""),
		},
		HTTP: HTTPConfig{
			Timeout:   getDurationEnv("SPENDTRACK_HTTP_TIMEOUT", 0),
			UserAgent: getEnv("SPENDTRACK_USER_AGENT", "spendtrack-client"),
		},
		Metrics: MetricsConfig{
			Enabled: getBoolEnv("SPENDTRACK_METRICS_ENABLED", false),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("SPENDTRACK_API_URL must be set")
	}
	if _, err := url.ParseRequestURI(c.API.BaseURL); err != nil {
		return fmt.Errorf("SPENDTRACK_API_URL is not a valid URL: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
