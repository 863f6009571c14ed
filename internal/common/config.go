// Package common provides shared utilities for stockfolio
package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for both stockfolio services.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Gains   GainsConfig   `toml:"gains"`
	Storage StorageConfig `toml:"storage"`
	Clients ClientsConfig `toml:"clients"`
	Logging LoggingConfig `toml:"logging"`
}

// ServerConfig holds the stock records service HTTP configuration.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// GainsConfig holds the capital gains service HTTP configuration and the
// base URL of the stock records service it aggregates.
type GainsConfig struct {
	Host          string `toml:"host"`
	Port          int    `toml:"port"`
	StocksBaseURL string `toml:"stocks_base_url"`
}

// StorageConfig holds SurrealDB connection configuration.
// Table is the collection holding stock position records.
type StorageConfig struct {
	Address   string `toml:"address"`
	Namespace string `toml:"namespace"`
	Database  string `toml:"database"`
	Table     string `toml:"table"`
	Username  string `toml:"username"`
	Password  string `toml:"password"`
}

// ClientsConfig holds API client configurations.
type ClientsConfig struct {
	Ninja NinjaConfig `toml:"ninja"`
}

// NinjaConfig holds api-ninjas stock price API configuration.
type NinjaConfig struct {
	BaseURL   string `toml:"base_url"`
	APIKey    string `toml:"api_key"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration.
func (c *NinjaConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// NewDefaultConfig returns a Config with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8000,
		},
		Gains: GainsConfig{
			Host:          "0.0.0.0",
			Port:          8080,
			StocksBaseURL: "http://localhost:8000",
		},
		Storage: StorageConfig{
			Address:   "ws://localhost:8020/rpc",
			Namespace: "stockfolio",
			Database:  "stocksdb",
			Table:     "stocks",
			Username:  "root",
			Password:  "root",
		},
		Clients: ClientsConfig{
			Ninja: NinjaConfig{
				BaseURL:   "https://api.api-ninjas.com/v1/stockprice",
				RateLimit: 10,
				Timeout:   "30s",
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config.
// COLLECTION_NAME and NINJA_API_KEY are unprefixed so existing deployment
// manifests keep working.
func applyEnvOverrides(config *Config) {
	if port := os.Getenv("STOCKFOLIO_STOCKS_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if port := os.Getenv("STOCKFOLIO_GAINS_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Gains.Port = p
		}
	}

	if url := os.Getenv("STOCKFOLIO_STOCKS_BASE_URL"); url != "" {
		config.Gains.StocksBaseURL = url
	}

	if addr := os.Getenv("STOCKFOLIO_STORE_ADDRESS"); addr != "" {
		config.Storage.Address = addr
	}

	if table := os.Getenv("COLLECTION_NAME"); table != "" {
		config.Storage.Table = table
	}

	if key := os.Getenv("NINJA_API_KEY"); key != "" {
		config.Clients.Ninja.APIKey = key
	}

	if level := os.Getenv("STOCKFOLIO_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}
