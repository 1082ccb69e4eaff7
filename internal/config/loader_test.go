package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// resetLoader clears the shared viper instance and the cached config so
// each test observes a clean load.
func resetLoader(t *testing.T) {
	t.Helper()
	viper.Reset()
	configMu.Lock()
	appConfig = nil
	configMu.Unlock()
	t.Cleanup(func() {
		viper.Reset()
		configMu.Lock()
		appConfig = nil
		configMu.Unlock()
	})
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	resetLoader(t)

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
	require.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)

	require.Equal(t, "memory", cfg.Store.Driver)

	require.Equal(t, 512, cfg.Cache.Chart.MaxSize)
	require.Equal(t, time.Hour, cfg.Cache.Chart.TTL)
	require.Equal(t, 4096, cfg.Cache.Score.MaxSize)
	require.Equal(t, 15*time.Minute, cfg.Cache.Score.TTL)

	require.Equal(t, 200, cfg.Engine.Generator.PoolCap)
	require.Equal(t, 55, cfg.Engine.Generator.ScoreFloor)
	require.Equal(t, 50, cfg.Engine.Generator.MaxResultsCap)

	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "SIMPLE", cfg.Logging.Profile)

	require.True(t, cfg.Metrics.Enabled)
	require.Equal(t, 9090, cfg.Metrics.Port)
	require.True(t, cfg.Health.Enabled)
}

func TestLoadFromFile(t *testing.T) {
	resetLoader(t)

	path := writeConfigFile(t, `
server:
  host: 127.0.0.1
  port: 9001
  read_timeout: 45s
store:
  driver: libsql
  path: /var/lib/qiming/dict.db
cache:
  score:
    max_size: 64
    ttl: 90m
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, 9001, cfg.Server.Port)
	require.Equal(t, 45*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, "libsql", cfg.Store.Driver)
	require.Equal(t, "/var/lib/qiming/dict.db", cfg.Store.Path)
	require.Equal(t, 64, cfg.Cache.Score.MaxSize)
	require.Equal(t, 90*time.Minute, cfg.Cache.Score.TTL)
	require.Equal(t, "debug", cfg.Logging.Level)

	// Untouched keys keep their defaults.
	require.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	require.Equal(t, 2048, cfg.Cache.Grid.MaxSize)
	require.Equal(t, 10, cfg.Engine.Generator.DefaultMaxResults)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	resetLoader(t)
	t.Setenv("QIMING_SERVER_PORT", "9999")
	t.Setenv("QIMING_SERVER_READ_TIMEOUT", "5s")
	t.Setenv("QIMING_STORE_DRIVER", "libsql")
	t.Setenv("QIMING_LOGGING_LEVEL", "trace")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, 9999, cfg.Server.Port)
	require.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, "libsql", cfg.Store.Driver)
	require.Equal(t, "trace", cfg.Logging.Level)
}

func TestEnvironmentBeatsConfigFile(t *testing.T) {
	resetLoader(t)
	t.Setenv("QIMING_SERVER_PORT", "7070")

	path := writeConfigFile(t, "server:\n  port: 9001\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 7070, cfg.Server.Port)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	resetLoader(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedFileFails(t *testing.T) {
	resetLoader(t)

	path := writeConfigFile(t, "server: [not a map\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestGetReturnsLastLoad(t *testing.T) {
	resetLoader(t)

	path := writeConfigFile(t, "server:\n  port: 8181\n")
	_, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 8181, Get().Server.Port)
}

func TestGetWithoutLoadFallsBackToDefaults(t *testing.T) {
	resetLoader(t)

	cfg := Get()
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "memory", cfg.Store.Driver)
}
