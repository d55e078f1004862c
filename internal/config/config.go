// Package config loads the dashboard API settings from the environment and
// an optional .env file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
)

// Config holds the service settings.
type Config struct {
	AppName      string
	Env          string // local | production | testing
	Port         string
	LogLevel     string // debug | info | warn | error
	LogFormat    string // text | json
	MaxBodyBytes int64
	SchemaDir    string // empty means the embedded schemas
}

// Load reads .env (or the given files) if present, then populates a Config
// from environment variables, falling back to defaults.
func Load(envFiles ...string) (*Config, error) {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production.
	_ = godotenv.Load(files...)

	maxBody, err := envInt("MAX_BODY_BYTES", 1<<20)
	if err != nil {
		return nil, err
	}

	c := &Config{
		AppName:      env("APP_NAME", "dashboard-api"),
		Env:          env("APP_ENV", "local"),
		Port:         env("APP_PORT", "8080"),
		LogLevel:     strings.ToLower(env("LOG_LEVEL", "info")),
		LogFormat:    strings.ToLower(env("LOG_FORMAT", "text")),
		MaxBodyBytes: maxBody,
		SchemaDir:    env("SCHEMA_DIR", ""),
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.AppName, validation.Required),
		validation.Field(&c.Env, validation.Required, validation.In("local", "production", "testing")),
		validation.Field(&c.Port, validation.Required, validation.By(isPort)),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.LogFormat, validation.In("text", "json")),
		validation.Field(&c.MaxBodyBytes, validation.Required, validation.Min(int64(1))),
	)
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Level maps LogLevel to a slog level.
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func isPort(v any) error {
	n, err := strconv.Atoi(v.(string))
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("must be a port number between 1 and 65535")
	}
	return nil
}

func env(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int64) (int64, error) {
	v := env(key, "")
	if v == "" {
		return defaultVal, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}
