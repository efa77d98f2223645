// Package config loads the declarative, JSON-shaped key/value tree that
// configures the pipeline, via viper — the parser itself is the external
// collaborator spec.md names as out of scope; this package only defines the
// recognized keys, their defaults, and the typed shape the rest of the
// system consumes.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// FileSinkConfig describes one entry in sinks.files[]. Format selects the
// on-disk encoding: "json" for one JSON object per line, anything else
// (including omitted) for the mandated bracketed line format.
type FileSinkConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
	Format  string `mapstructure:"format"`
}

// FileSourceConfig describes sources.file.
type FileSourceConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Path        string `mapstructure:"path"`
	ParseRateMs int    `mapstructure:"parse_rate_ms"`
	Policy      string `mapstructure:"policy"`
}

// SocketSourceConfig describes sources.socket.
type SocketSourceConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	IP          string `mapstructure:"ip"`
	Port        int    `mapstructure:"port"`
	ParseRateMs int    `mapstructure:"parse_rate_ms"`
	Policy      string `mapstructure:"policy"`
}

// SomeIPSourceConfig describes sources.someip.
type SomeIPSourceConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ParseRateMs int    `mapstructure:"parse_rate_ms"`
	Policy      string `mapstructure:"policy"`
}

// Config is the fully-resolved, typed configuration tree.
type Config struct {
	LogManager struct {
		BufferCapacity  int `mapstructure:"buffer_capacity"`
		ThreadPoolSize  int `mapstructure:"thread_pool_size"`
		SinkFlushRateMs int `mapstructure:"sink_flush_rate_ms"`
	} `mapstructure:"log_manager"`

	Sinks struct {
		Console struct {
			Enabled bool `mapstructure:"enabled"`
		} `mapstructure:"console"`
		Files []FileSinkConfig `mapstructure:"files"`
	} `mapstructure:"sinks"`

	Sources struct {
		File   FileSourceConfig   `mapstructure:"file"`
		Socket SocketSourceConfig `mapstructure:"socket"`
		SomeIP SomeIPSourceConfig `mapstructure:"someip"`
	} `mapstructure:"sources"`
}

// SinkFlushInterval converts the configured millisecond period to a
// time.Duration for the writer goroutine.
func (c Config) SinkFlushInterval() time.Duration {
	return time.Duration(c.LogManager.SinkFlushRateMs) * time.Millisecond
}

// Load reads the JSON-shaped config file at path, applying spec.md §6's
// defaults for every key the file omits. Unknown keys are ignored, which
// is viper's default behavior for undeclared keys.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("log_manager.buffer_capacity", 100)
	v.SetDefault("log_manager.thread_pool_size", 2)
	v.SetDefault("log_manager.sink_flush_rate_ms", 500)

	v.SetDefault("sinks.console.enabled", false)

	v.SetDefault("sources.file.enabled", false)
	v.SetDefault("sources.file.parse_rate_ms", 1000)
	v.SetDefault("sources.file.policy", "cpu")

	v.SetDefault("sources.socket.enabled", false)
	v.SetDefault("sources.socket.ip", "127.0.0.1")
	v.SetDefault("sources.socket.port", 12345)
	v.SetDefault("sources.socket.parse_rate_ms", 1000)
	v.SetDefault("sources.socket.policy", "ram")

	v.SetDefault("sources.someip.enabled", false)
	v.SetDefault("sources.someip.parse_rate_ms", 1000)
	v.SetDefault("sources.someip.policy", "gpu")

	if err := v.ReadInConfig(); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
