package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

var (
	appConfig *Config
	configMu  sync.RWMutex
)

// envPrefix namespaces environment overrides, e.g. QIMING_SERVER_PORT.
const envPrefix = "QIMING"

// Load reads configuration: built-in defaults, then the optional config
// file, then environment variables. Safe to call multiple times; the last
// successful load becomes the current config.
func Load(cfgFile string) (*Config, error) {
	v := viper.GetViper()
	applyDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$XDG_CONFIG_HOME/qiming")
		v.AddConfigPath("$HOME/.config/qiming")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); cfgFile != "" || !notFound {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		// No config file is fine; defaults and env apply.
	}

	cfg := &Config{}
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(cfg, decodeHook); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	configMu.Lock()
	appConfig = cfg
	configMu.Unlock()
	return cfg, nil
}

// Get returns the current configuration, loading defaults when Load has not
// run yet.
func Get() *Config {
	configMu.RLock()
	cfg := appConfig
	configMu.RUnlock()
	if cfg != nil {
		return cfg
	}

	loaded, err := Load("")
	if err != nil {
		// Defaults alone always decode; reaching here means a broken
		// config file, which callers surface via Load.
		return &Config{}
	}
	return loaded
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 120*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("store.driver", "memory")
	v.SetDefault("store.path", "")
	v.SetDefault("store.url", "")

	v.SetDefault("cache.chart.max_size", 512)
	v.SetDefault("cache.chart.ttl", time.Hour)
	v.SetDefault("cache.grid.max_size", 2048)
	v.SetDefault("cache.grid.ttl", 30*time.Minute)
	v.SetDefault("cache.phonetic.max_size", 2048)
	v.SetDefault("cache.phonetic.ttl", 30*time.Minute)
	v.SetDefault("cache.score.max_size", 4096)
	v.SetDefault("cache.score.ttl", 15*time.Minute)
	v.SetDefault("cache.character.max_size", 8192)
	v.SetDefault("cache.character.ttl", 2*time.Hour)

	v.SetDefault("engine.generator.pool_cap", 200)
	v.SetDefault("engine.generator.pair_multiple", 8)
	v.SetDefault("engine.generator.score_floor", 55)
	v.SetDefault("engine.generator.default_max_results", 10)
	v.SetDefault("engine.generator.max_results_cap", 50)
	v.SetDefault("engine.generator.workers", 8)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.profile", "SIMPLE")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", 9090)

	v.SetDefault("health.enabled", true)
}
