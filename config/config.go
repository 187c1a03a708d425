package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Database   DatabaseConfig
	Player     PlayerConfig
	Media      MediaConfig
	RateLimit  RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// DatabaseConfig configures the embedded sqlite store.
type DatabaseConfig struct {
	Path string
}

// PlayerConfig tunes the playback position tracker.
type PlayerConfig struct {
	PollInterval  time.Duration
	SeekIncrement time.Duration
}

// MediaConfig configures audio metadata probing.
type MediaConfig struct {
	ProbeTimeout time.Duration
	CacheSize    int
}

// RateLimitConfig configures the per-client API rate limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/listenote/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/listenote/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Database.Path = viper.GetString("database.path")
	if dbPath := viper.GetString("listenote_db_path"); dbPath != "" {
		cfg.Database.Path = dbPath
	}

	cfg.Player.PollInterval = viper.GetDuration("player.poll_interval")
	cfg.Player.SeekIncrement = viper.GetDuration("player.seek_increment")

	cfg.Media.ProbeTimeout = viper.GetDuration("media.probe_timeout")
	cfg.Media.CacheSize = viper.GetInt("media.cache_size")

	cfg.RateLimit.RequestsPerSecond = viper.GetFloat64("rate_limit.requests_per_second")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	if cfg.Database.Path == "" {
		return nil, fmt.Errorf("database.path must not be empty")
	}
	if cfg.Player.PollInterval <= 0 {
		return nil, fmt.Errorf("player.poll_interval must be positive, got %s", cfg.Player.PollInterval)
	}
	if cfg.Player.SeekIncrement <= 0 {
		return nil, fmt.Errorf("player.seek_increment must be positive, got %s", cfg.Player.SeekIncrement)
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("database.path", "listenote.db")
	viper.SetDefault("player.poll_interval", "100ms")
	viper.SetDefault("player.seek_increment", "3s")
	viper.SetDefault("media.probe_timeout", "5s")
	viper.SetDefault("media.cache_size", 128)
	viper.SetDefault("rate_limit.requests_per_second", 50)
	viper.SetDefault("rate_limit.burst", 100)
}
