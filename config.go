package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds every runtime setting. Values come from the environment, with
// a .env file loaded first by godotenv.
type Config struct {
	Port      string
	Env       string
	LogLevel  string
	StaticDir string

	CorpusFile          string
	MatchSuggestions    int
	FallbackSuggestions int
	ChatTimeout         time.Duration

	AnalyticsDBPath    string
	AnalyticsRetention time.Duration
	HashSalt           string

	AdminUsername string
	AdminPassword string

	MetricsNamespace string
}

// LoadConfig reads environment variables and applies defaults.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:             envOrDefault("PORT", "8080"),
		Env:              envOrDefault("APP_ENV", "development"),
		LogLevel:         envOrDefault("LOG_LEVEL", "info"),
		StaticDir:        trimmedEnv("STATIC_DIR"),
		CorpusFile:       trimmedEnv("FAQ_CORPUS_FILE"),
		AnalyticsDBPath:  trimmedEnv("ANALYTICS_DB_PATH"),
		HashSalt:         trimmedEnv("ANALYTICS_HASH_SALT"),
		AdminUsername:    envOrDefault("ADMIN_USERNAME", "admin"),
		AdminPassword:    os.Getenv("ADMIN_PASSWORD"),
		MetricsNamespace: envOrDefault("METRICS_NAMESPACE", "portfolio_chat"),
	}

	var err error
	if cfg.MatchSuggestions, err = intFromEnv("CHAT_MATCH_SUGGESTIONS", 3); err != nil {
		return Config{}, err
	}
	if cfg.FallbackSuggestions, err = intFromEnv("CHAT_FALLBACK_SUGGESTIONS", 5); err != nil {
		return Config{}, err
	}
	if cfg.ChatTimeout, err = durationFromEnv("CHAT_TIMEOUT", 30*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.AnalyticsRetention, err = durationFromEnv("ANALYTICS_RETENTION", 365*24*time.Hour); err != nil {
		return Config{}, err
	}

	if cfg.MatchSuggestions <= 0 || cfg.FallbackSuggestions <= 0 {
		return Config{}, fmt.Errorf("suggestion counts must be positive")
	}
	if cfg.ChatTimeout <= 0 {
		return Config{}, fmt.Errorf("CHAT_TIMEOUT must be positive")
	}
	if cfg.AnalyticsRetention < 24*time.Hour {
		return Config{}, fmt.Errorf("ANALYTICS_RETENTION must be at least 24h")
	}
	return cfg, nil
}

// Production reports whether the service runs with production defaults.
func (c Config) Production() bool {
	return strings.EqualFold(c.Env, "production")
}

// AnalyticsEnabled reports whether chat events are recorded.
func (c Config) AnalyticsEnabled() bool {
	return c.AnalyticsDBPath != ""
}

func envOrDefault(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func trimmedEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := trimmedEnv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s parse error: %w", key, err)
	}
	return d, nil
}

func intFromEnv(key string, fallback int) (int, error) {
	v := trimmedEnv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s parse error: %w", key, err)
	}
	return n, nil
}
