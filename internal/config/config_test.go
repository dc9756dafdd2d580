package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("API_TIMEOUT", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DISPLAY_TIMEZONE", "UTC")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := LoadConfig("8080")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, time.Duration(0), cfg.API.Timeout)
	assert.Equal(t, APIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultTimeLayout, cfg.Display.TimeLayout)
	assert.Equal(t, time.UTC, cfg.Display.Location)
	assert.False(t, cfg.DB.Enabled())
	if Development {
		assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	} else {
		assert.Empty(t, cfg.CORS.AllowedOrigins)
	}
	assert.Equal(t, 100, cfg.Limit.RPS)
}

func TestLoadConfig_CORSOrigins(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "http://localhost:8080, https://proxy.example.com,")

	cfg, err := LoadConfig("1212")
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:8080", "https://proxy.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfig_Database(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "proxy")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_NAME", "logs")
	t.Setenv("DB_SSLMODE", "")

	cfg, err := LoadConfig("1212")
	require.NoError(t, err)

	assert.True(t, cfg.DB.Enabled())
	assert.Equal(t, "host=db port=6543 user=proxy password=secret dbname=logs sslmode=disable", cfg.DB.DSN)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"API_TIMEOUT":      "soon",
		"DISPLAY_TIMEZONE": "Mars/Olympus",
		"REDIS_DB":         "zero",
		"RATE_LIMIT_RPS":   "fast",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := LoadConfig("8080")
			assert.ErrorContains(t, err, key)
		})
	}
}

func TestAPIConfig_Origin(t *testing.T) {
	same := APIConfig{selfPort: "9000"}
	assert.Equal(t, "http://localhost:9000", same.Origin())

	remote := APIConfig{BaseURL: "http://localhost:1212/", selfPort: "9000"}
	assert.Equal(t, "http://localhost:1212", remote.Origin())
}
