package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	DefaultSessionTTL = time.Hour
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost        string
	ServerPort        string
	RedisURL          string
	PostgresURL       string
	BasicAuthUsername string
	BasicAuthPassword string
	Token             string
	Prefork           bool
	SessionTTL        time.Duration
}

// LoadServerConfig loads configuration from environment variables.
// Redis and Postgres are optional, without them sessions are kept in memory and results are not recorded.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerHost:        getEnvMust("FLIPPY_SERVER_HOST"),
		ServerPort:        getEnvMust("FLIPPY_SERVER_PORT"),
		RedisURL:          os.Getenv("FLIPPY_REDIS_URL"),
		PostgresURL:       os.Getenv("FLIPPY_POSTGRES_URL"),
		BasicAuthUsername: getEnvMust("FLIPPY_BASIC_AUTH_USER"),
		BasicAuthPassword: getEnvMust("FLIPPY_BASIC_AUTH_PASS"),
		Token:             getEnvMust("FLIPPY_TOKEN"),
		Prefork:           getEnvBool("FLIPPY_PREFORK", false),
		SessionTTL:        getEnvDuration("FLIPPY_SESSION_TTL", DefaultSessionTTL),
	}
}

// Validate checks combinations of settings. Forked processes do not share memory, so
// prefork needs sessions in Redis.
func (c *ServerConfig) Validate() error {
	if c.Prefork && c.RedisURL == "" {
		return errors.New("FLIPPY_PREFORK requires FLIPPY_REDIS_URL, sessions would not be shared between processes")
	}

	if c.SessionTTL <= 0 {
		return errors.New("session TTL must be positive")
	}

	return nil
}

type ArenaConfig struct {
	// Seed is used for the random and greedy players, zero means seeding from the clock.
	Seed int64
}

func LoadArenaConfig() *ArenaConfig {
	return &ArenaConfig{
		Seed: getEnvInt64("FLIPPY_ARENA_SEED", 0),
	}
}

// ClientConfig configures the game client of the play command.
type ClientConfig struct {
	// ServerURL is the base URL of the server, empty means playing locally
	ServerURL string

	// Token is sent as x-token header, it is only needed for the stats endpoint
	Token string
}

func LoadClientConfig() *ClientConfig {
	return &ClientConfig{
		ServerURL: os.Getenv("FLIPPY_SERVER_URL"),
		Token:     os.Getenv("FLIPPY_TOKEN"),
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	if value != "true" && value != "false" {
		slog.Error("Cannot load environment variable, it must be \"true\" or \"false\"", "key", key, "value", value)
		os.Exit(1)
	}

	return value == "true"
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		slog.Error("Cannot load environment variable, it must be a positive duration", "key", key, "value", value)
		os.Exit(1)
	}

	return duration
}

func getEnvInt64(key string, fallback int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		slog.Error("Cannot load environment variable, it must be an integer", "key", key, "value", value)
		os.Exit(1)
	}

	return parsed
}
