// Package config loads runtime configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings.
type Config struct {
	// Port is the HTTP listen port.
	Port string

	// Currency is the display currency symbol. Display only, never used
	// in computation.
	Currency string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// LogFormat is "tint" for colored terminal output or "json".
	LogFormat string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment
// variables win over it.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:      getEnv("PORT", "8080"),
		Currency:  getEnv("CURRENCY", "₹"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "tint"),
	}
}

// Validate returns an error describing the first invalid setting.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port %q: must be a number", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}
	if c.Currency == "" {
		return fmt.Errorf("currency symbol must not be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
