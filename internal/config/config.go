// Package config reads server settings from the environment, with an
// optional .env file for local development.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"resume-builder/internal/usecase"
)

type Config struct {
	Port           string
	RedisAddr      string
	RedisDB        int
	ChromePath     string
	AutosaveWindow time.Duration
}

// Load reads .env when present, then the process environment. Missing
// values fall back to development defaults; malformed values are
// logged and replaced by the default rather than aborting startup.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		ChromePath:     os.Getenv("CHROME_PATH"),
		AutosaveWindow: getEnvDuration("AUTOSAVE_WINDOW", usecase.DefaultAutosaveWindow),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("ignoring malformed env value", "key", key, "value", v)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("ignoring malformed env value", "key", key, "value", v)
		return fallback
	}
	return d
}
