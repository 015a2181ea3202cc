package config

import (
	"os"
	"time"
)

// OracleConfig holds configuration for the text-generation oracle.
type OracleConfig struct {
	APIKey    string `json:"-"` // Never serialize
	BaseURL   string `json:"baseUrl"`
	Model     string `json:"model"`
	TimeoutMS int    `json:"timeoutMs"`
}

// DefaultOracleConfig returns the default oracle configuration.
func DefaultOracleConfig() *OracleConfig {
	return &OracleConfig{
		APIKey:    os.Getenv("OPENAI_API_KEY"),
		BaseURL:   os.Getenv("ORACLE_BASE_URL"), // empty uses the provider default
		Model:     getEnvOrDefault("ORACLE_MODEL", "gpt-4o"),
		TimeoutMS: 30000, // the oracle round trip dominates request latency
	}
}

// IsEnabled returns true if the oracle API is configured.
func (c *OracleConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// Timeout returns the per-call deadline for oracle requests.
func (c *OracleConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
