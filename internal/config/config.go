package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	MongoDB   MongoDBConfig   `mapstructure:"mongodb"`
	OpenMeteo OpenMeteoConfig `mapstructure:"open_meteo"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	GinMode        string        `mapstructure:"gin_mode"` // debug, release, test
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

// MongoDBConfig holds the forecast store connection settings
type MongoDBConfig struct {
	URL            string        `mapstructure:"url"`
	Database       string        `mapstructure:"database"`
	Collection     string        `mapstructure:"collection"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

// OpenMeteoConfig holds settings for the upstream forecast API
type OpenMeteoConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
	Breaker BreakerConfig `mapstructure:"breaker"`
}

// BreakerConfig tunes the circuit breaker around upstream calls
type BreakerConfig struct {
	MaxRequests      uint32        `mapstructure:"max_requests"`      // requests allowed while half-open
	Interval         time.Duration `mapstructure:"interval"`          // closed-state counter reset period
	Timeout          time.Duration `mapstructure:"timeout"`           // open-state duration
	FailureThreshold uint32        `mapstructure:"failure_threshold"` // consecutive failures before opening
}

// Load reads configuration from .env, an optional config file and environment variables.
// Environment variables use the key path with dots replaced by underscores,
// e.g. MONGODB_URL or OPEN_METEO_BASE_URL.
func Load() (*Config, error) {
	// A missing .env is fine, the real environment still applies
	_ = godotenv.Load()

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.weatherapp")

	setDefaults(v)

	// Read from environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.gin_mode", "release")
	v.SetDefault("server.request_timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("mongodb.url", "mongodb://localhost:27017")
	v.SetDefault("mongodb.database", "weather")
	v.SetDefault("mongodb.collection", "forecasts")
	v.SetDefault("mongodb.connect_timeout", 10*time.Second)

	v.SetDefault("open_meteo.base_url", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("open_meteo.timeout", 10*time.Second)
	v.SetDefault("open_meteo.breaker.max_requests", 1)
	v.SetDefault("open_meteo.breaker.interval", 60*time.Second)
	v.SetDefault("open_meteo.breaker.timeout", 30*time.Second)
	v.SetDefault("open_meteo.breaker.failure_threshold", 5)
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
