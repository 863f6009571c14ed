package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 8080, cfg.Gains.Port)
	assert.Equal(t, "http://localhost:8000", cfg.Gains.StocksBaseURL)
	assert.Equal(t, "ws://localhost:8020/rpc", cfg.Storage.Address)
	assert.Equal(t, "stocks", cfg.Storage.Table)
	assert.Equal(t, "https://api.api-ninjas.com/v1/stockprice", cfg.Clients.Ninja.BaseURL)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/stockfolio.toml")
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server.Port)
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stockfolio.toml")
	content := `
[server]
port = 9100

[gains]
stocks_base_url = "http://stocks:9100"

[storage]
table = "positions"

[clients.ninja]
timeout = "5s"

[logging]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "http://stocks:9100", cfg.Gains.StocksBaseURL)
	assert.Equal(t, "positions", cfg.Storage.Table)
	assert.Equal(t, 5*time.Second, cfg.Clients.Ninja.GetTimeout())
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched sections keep their defaults.
	assert.Equal(t, 8080, cfg.Gains.Port)
	assert.Equal(t, "ws://localhost:8020/rpc", cfg.Storage.Address)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\nport = "), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("STOCKFOLIO_STOCKS_PORT", "5683")
	t.Setenv("STOCKFOLIO_GAINS_PORT", "5684")
	t.Setenv("STOCKFOLIO_STOCKS_BASE_URL", "http://stocks:5683")
	t.Setenv("STOCKFOLIO_STORE_ADDRESS", "ws://surrealdb:8000/rpc")
	t.Setenv("COLLECTION_NAME", "stocks_test")
	t.Setenv("NINJA_API_KEY", "test-key")
	t.Setenv("STOCKFOLIO_LOG_LEVEL", "warn")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 5683, cfg.Server.Port)
	assert.Equal(t, 5684, cfg.Gains.Port)
	assert.Equal(t, "http://stocks:5683", cfg.Gains.StocksBaseURL)
	assert.Equal(t, "ws://surrealdb:8000/rpc", cfg.Storage.Address)
	assert.Equal(t, "stocks_test", cfg.Storage.Table)
	assert.Equal(t, "test-key", cfg.Clients.Ninja.APIKey)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadConfig_EnvIgnoresBadPort(t *testing.T) {
	t.Setenv("STOCKFOLIO_STOCKS_PORT", "not-a-port")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server.Port)
}

func TestNinjaConfigGetTimeout_InvalidFallsBack(t *testing.T) {
	c := NinjaConfig{Timeout: "soon"}
	assert.Equal(t, 30*time.Second, c.GetTimeout())
}
