package config

import (
	"errors"
	"log/slog"
	"time"
)

// ErrSeedFileRequired is returned by LoadCatalogConfig when SEED_FILE is unset.
var ErrSeedFileRequired = errors.New("SEED_FILE is required")

const (
	defaultMetricsPort     = 9090
	defaultShutdownTimeout = 5 * time.Second
)

// CatalogConfig holds the settings of the catalog command.
type CatalogConfig struct {
	SeedFile        string
	LogLevel        string
	LogFormat       string
	MetricsEnabled  bool
	MetricsPort     int
	ShutdownTimeout time.Duration
}

// LoadCatalogConfig reads the catalog configuration from the environment.
//
// Environment variables:
//   - SEED_FILE: path of the YAML seed document (required)
//   - LOG_LEVEL: debug, info, warn or error (default: info)
//   - LOG_FORMAT: json or text (default: json)
//   - METRICS_ENABLED: serve /metrics after loading (default: false)
//   - METRICS_PORT: port of the metrics server (default: 9090)
//   - SHUTDOWN_TIMEOUT: grace period for the metrics server (default: 5s)
//
// Invalid optional values fall back to their defaults with a warning.
func LoadCatalogConfig() (*CatalogConfig, error) {
	cfg := &CatalogConfig{
		SeedFile:       GetEnvString("SEED_FILE", ""),
		LogLevel:       GetEnvString("LOG_LEVEL", "info"),
		LogFormat:      GetEnvString("LOG_FORMAT", "json"),
		MetricsEnabled: GetEnvBool("METRICS_ENABLED", false),
	}
	if cfg.SeedFile == "" {
		return nil, ErrSeedFileRequired
	}

	port := GetEnvInt("METRICS_PORT", defaultMetricsPort)
	if port <= 0 || port > 65535 {
		slog.Warn("invalid METRICS_PORT, using default",
			slog.Int("value", port),
			slog.Int("default", defaultMetricsPort))
		port = defaultMetricsPort
	}
	cfg.MetricsPort = port

	timeout := GetEnvDuration("SHUTDOWN_TIMEOUT", defaultShutdownTimeout)
	if err := ValidateDurationRange(timeout, time.Second, time.Minute); err != nil {
		slog.Warn("invalid SHUTDOWN_TIMEOUT, using default",
			slog.String("value", timeout.String()),
			slog.String("default", defaultShutdownTimeout.String()),
			slog.String("error", err.Error()))
		timeout = defaultShutdownTimeout
	}
	cfg.ShutdownTimeout = timeout

	return cfg, nil
}
