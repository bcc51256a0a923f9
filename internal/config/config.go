package config

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Provider exposes the application settings. Handlers and services depend on
// this interface rather than on Config so tests can substitute their own values.
type Provider interface {
	GetServerAddr() string
	GetSessionSecret() string
	GetAppTTL() time.Duration
	GetMaxVisitors() int
	GetSubmitDelay() time.Duration
	GetRedirectDelay() time.Duration
	GetSubmitRateLimit() int
	GetContentFile() string
	GetContentWatch() bool
	GetAssetsMode() string
	GetAssetsDir() string
	GetLogFormat() string
	GetLogLevel() slog.Level
	GetTracingEnabled() bool
	GetTracingServiceName() string
	GetTracingZipkinURL() string
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr      string
	SessionSecret   string
	AppTTL          time.Duration
	MaxVisitors     int
	SubmitDelay     time.Duration
	RedirectDelay   time.Duration
	SubmitRateLimit int

	// ContentFile optionally replaces the embedded section copy.
	ContentFile  string
	ContentWatch bool

	// AssetsMode is "embed" (default) or "disk"; disk serves AssetsDir for live editing.
	AssetsMode string
	AssetsDir  string

	LogFormat string
	LogLevel  slog.Level

	TracingEnabled     bool
	TracingServiceName string
	TracingZipkinURL   string
}

const devSessionSecret = "life-heroes-development-secret!!"

// New loads configuration from environment variables, reading a .env file first if present.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env files.
func FromEnv() *Config {
	cfg := &Config{
		ServerAddr:         getString("SERVER_ADDR", ":8080"),
		SessionSecret:      getString("SESSION_SECRET", ""),
		AppTTL:             getDuration("APP_TTL", 30*time.Minute),
		MaxVisitors:        getInt("APP_MAX_VISITORS", 10000),
		SubmitDelay:        getDuration("SUBMIT_DELAY", 2000*time.Millisecond),
		RedirectDelay:      getDuration("REDIRECT_DELAY", 1500*time.Millisecond),
		SubmitRateLimit:    getInt("SUBMIT_RATE_LIMIT", 10),
		ContentFile:        getString("CONTENT_FILE", ""),
		ContentWatch:       getBool("CONTENT_WATCH", false),
		AssetsMode:         getString("APP_ASSETS", "embed"),
		AssetsDir:          getString("ASSETS_DIR", "web/static"),
		LogFormat:          getString("LOG_FORMAT", "text"),
		LogLevel:           getLevel("LOG_LEVEL", slog.LevelInfo),
		TracingEnabled:     getBool("TRACING_ENABLED", false),
		TracingServiceName: getString("TRACING_SERVICE_NAME", "life-heroes"),
		TracingZipkinURL:   getString("TRACING_ZIPKIN_URL", "http://localhost:9411/api/v2/spans"),
	}

	if cfg.SessionSecret == "" {
		log.Println("SESSION_SECRET is not set, using the development secret")
		cfg.SessionSecret = devSessionSecret
	}

	return cfg
}

func (c *Config) GetServerAddr() string           { return c.ServerAddr }
func (c *Config) GetSessionSecret() string        { return c.SessionSecret }
func (c *Config) GetAppTTL() time.Duration        { return c.AppTTL }
func (c *Config) GetMaxVisitors() int             { return c.MaxVisitors }
func (c *Config) GetSubmitDelay() time.Duration   { return c.SubmitDelay }
func (c *Config) GetRedirectDelay() time.Duration { return c.RedirectDelay }
func (c *Config) GetSubmitRateLimit() int         { return c.SubmitRateLimit }
func (c *Config) GetContentFile() string          { return c.ContentFile }
func (c *Config) GetContentWatch() bool           { return c.ContentWatch }
func (c *Config) GetAssetsMode() string           { return c.AssetsMode }
func (c *Config) GetAssetsDir() string            { return c.AssetsDir }
func (c *Config) GetLogFormat() string            { return c.LogFormat }
func (c *Config) GetLogLevel() slog.Level         { return c.LogLevel }
func (c *Config) GetTracingEnabled() bool         { return c.TracingEnabled }
func (c *Config) GetTracingServiceName() string   { return c.TracingServiceName }
func (c *Config) GetTracingZipkinURL() string     { return c.TracingZipkinURL }

func getString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		log.Printf("Invalid value %q for %s, using %d", raw, key, fallback)
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("Invalid value %q for %s, using %t", raw, key, fallback)
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v < 0 {
		log.Printf("Invalid duration %q for %s, using %s", raw, key, fallback)
		return fallback
	}
	return v
}

func getLevel(key string, fallback slog.Level) slog.Level {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(raw)); err != nil {
		log.Printf("Invalid log level %q for %s, using %s", raw, key, fallback)
		return fallback
	}
	return lvl
}
