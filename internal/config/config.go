package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the application configuration surface.
type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// CatalogConfig holds catalog database options.
type CatalogConfig struct {
	DBPath   string
	DealerID string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are acceptable when configuration comes from the
		// environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Catalog: CatalogConfig{
			DBPath:   getenvWithDefault("CATALOG_DB_PATH", "./paintquote.db"),
			DealerID: getenvWithDefault("DEALER_ID", "default"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}
	if c.Catalog.DBPath == "" {
		return errors.New("CATALOG_DB_PATH must be provided")
	}
	if c.Catalog.DealerID == "" {
		return errors.New("DEALER_ID must be provided")
	}
	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
