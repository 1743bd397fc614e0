package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalogConfig_Defaults(t *testing.T) {
	t.Setenv("SEED_FILE", "catalog.yaml")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("METRICS_ENABLED", "")
	t.Setenv("METRICS_PORT", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "")

	cfg, err := LoadCatalogConfig()
	require.NoError(t, err)

	assert.Equal(t, &CatalogConfig{
		SeedFile:        "catalog.yaml",
		LogLevel:        "info",
		LogFormat:       "json",
		MetricsEnabled:  false,
		MetricsPort:     9090,
		ShutdownTimeout: 5 * time.Second,
	}, cfg)
}

func TestLoadCatalogConfig_FromEnv(t *testing.T) {
	t.Setenv("SEED_FILE", "/etc/catalog/seed.yaml")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("METRICS_ENABLED", "true")
	t.Setenv("METRICS_PORT", "9191")
	t.Setenv("SHUTDOWN_TIMEOUT", "10s")

	cfg, err := LoadCatalogConfig()
	require.NoError(t, err)

	assert.Equal(t, "/etc/catalog/seed.yaml", cfg.SeedFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, 9191, cfg.MetricsPort)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadCatalogConfig_LogLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		t.Run(level, func(t *testing.T) {
			t.Setenv("SEED_FILE", "catalog.yaml")
			t.Setenv("LOG_LEVEL", level)

			cfg, err := LoadCatalogConfig()
			require.NoError(t, err)
			assert.Equal(t, level, cfg.LogLevel)
		})
	}
}

func TestLoadCatalogConfig_MissingSeed(t *testing.T) {
	t.Setenv("SEED_FILE", "")

	cfg, err := LoadCatalogConfig()
	assert.ErrorIs(t, err, ErrSeedFileRequired)
	assert.Nil(t, cfg)
}

func TestLoadCatalogConfig_InvalidValuesFallBack(t *testing.T) {
	tests := []struct {
		name        string
		port        string
		timeout     string
		wantPort    int
		wantTimeout time.Duration
	}{
		{"port not a number", "abc", "", 9090, 5 * time.Second},
		{"port out of range", "70000", "", 9090, 5 * time.Second},
		{"negative port", "-1", "", 9090, 5 * time.Second},
		{"timeout too long", "", "2h", 9090, 5 * time.Second},
		{"timeout too short", "", "10ms", 9090, 5 * time.Second},
		{"timeout unparseable", "", "soon", 9090, 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SEED_FILE", "catalog.yaml")
			t.Setenv("METRICS_PORT", tt.port)
			t.Setenv("SHUTDOWN_TIMEOUT", tt.timeout)

			cfg, err := LoadCatalogConfig()
			require.NoError(t, err)
			assert.Equal(t, tt.wantPort, cfg.MetricsPort)
			assert.Equal(t, tt.wantTimeout, cfg.ShutdownTimeout)
		})
	}
}
