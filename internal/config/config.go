// Package config provides centralized configuration management for Qiming.
// Values layer as: built-in defaults, then an optional YAML config file,
// then QIMING_* environment variables and bound flags.
package config

import (
	"time"

	"github.com/qiminglab/qiming/internal/core/cache"
	"github.com/qiminglab/qiming/internal/core/engine"
)

// Config is the complete application configuration.
type Config struct {
	Server  ServerConfig         `mapstructure:"server"`
	Store   StoreConfig          `mapstructure:"store"`
	Cache   cache.RegistryConfig `mapstructure:"cache"`
	Engine  engine.Config        `mapstructure:"engine"`
	Logging LoggingConfig        `mapstructure:"logging"`
	Metrics MetricsConfig        `mapstructure:"metrics"`
	Health  HealthConfig         `mapstructure:"health"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// StoreConfig contains dictionary database configuration for libsql/Turso.
// Driver "memory" serves the embedded seed without a database.
type StoreConfig struct {
	Driver    string `mapstructure:"driver"`
	Path      string `mapstructure:"path"`
	URL       string `mapstructure:"url"`
	AuthToken string `mapstructure:"auth_token"`
}

// LoggingConfig contains logging configuration. Level accepts trace, debug,
// info, warn, error.
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Profile string `mapstructure:"profile"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

// HealthConfig contains health check configuration.
type HealthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}
