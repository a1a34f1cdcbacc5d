package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env      string // "development", "production", etc.
	LogLevel string

	// Server
	Port        string
	GreetName   string // Name used by the liveness greeting at "/"
	CORSOrigins string // Comma-separated allowed origins
	// ExposeErrors returns the raw pipeline error as the /data 500 body.
	ExposeErrors bool

	// Upstream CMS
	CMSBaseURL string
	CMSToken   string
	CMSTimeout time.Duration
	CMSLogCurl bool

	// Cache
	CacheTTL        time.Duration
	RedisURL        string // Empty uses the in-process store
	RefreshInterval time.Duration
	RefreshOnStart  bool

	// Lookup tables
	LookupFile string
}

// Default origins allowed to call the menu API.
const defaultCORSOrigins = "https://the-absolute-journey.webflow.io,http://localhost,https://www.theabsolutejourney.com"

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:          getEnv("ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Port:         getEnv("PORT", "3000"),
		GreetName:    getEnv("NAME", "World"),
		CORSOrigins:  getEnv("CORS_ORIGINS", defaultCORSOrigins),
		ExposeErrors: getBool("EXPOSE_ERRORS", true),

		CMSBaseURL: getEnv("CMS_BASE_URL", "https://api.webflow.com/v2"),
		CMSToken:   getEnv("WEBFLOW_AUTH_KEY", ""),
		CMSTimeout: getDuration("CMS_TIMEOUT", 15*time.Second),
		CMSLogCurl: getBool("CMS_LOG_CURL", true),

		CacheTTL:        getDuration("CACHE_TTL", 15*time.Minute),
		RedisURL:        getEnv("REDIS_URL", ""),
		RefreshInterval: getDuration("REFRESH_INTERVAL", 10*time.Minute),
		RefreshOnStart:  getBool("REFRESH_ON_START", true),

		LookupFile: getEnv("LOOKUP_FILE", "lookups.yaml"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return d
}

// ListenAddr returns the address the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return ":" + c.Port
}

// AllowedOrigins splits CORSOrigins into a trimmed list.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// SlogLevel converts LogLevel into a slog.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
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
