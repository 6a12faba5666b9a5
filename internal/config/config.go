package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	daberr "github.com/KirkDiggler/daybreak/internal/errors"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	LogLevel    slog.Level
	Redis       RedisConfig
}

// RedisConfig holds Redis-specific configuration. With neither URL nor Addr
// set the engine runs on in-memory repositories.
type RedisConfig struct {
	URL      string
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether a Redis server was configured
func (c RedisConfig) Enabled() bool {
	return c.URL != "" || c.Addr != ""
}

// Options builds client options, preferring the URL
func (c RedisConfig) Options() (*redis.Options, error) {
	if c.URL != "" {
		opts, err := redis.ParseURL(c.URL)
		if err != nil {
			return nil, daberr.WrapWithCode(err, daberr.CodeConfiguration, "invalid REDIS_URL")
		}
		return opts, nil
	}
	if c.Addr == "" {
		return nil, daberr.Configurationf("redis is not configured")
	}
	return &redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	}, nil
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	db, err := getEnvAsIntOrDefault("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
		Redis: RedisConfig{
			URL:      os.Getenv("REDIS_URL"),
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       db,
		},
	}

	return cfg, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, daberr.Configurationf("%s must be a number, got %q", key, value)
	}
	return intValue, nil
}
