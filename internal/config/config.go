package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// Record store
	DataBackend  string // file | sqlite | memory
	StatePath    string
	SQLiteDBPath string

	// Optional JSON file of budgets applied once, when the persisted
	// state has none. Budgets are data-only; nothing enforces them.
	BudgetSeedPath string

	// Insight service (OpenAI-compatible). No retry is performed; the
	// timeout is the only failure-handling knob.
	OpenAIAPIKey   string
	OpenAIBaseURL  string
	InsightModel   string
	InsightTimeout time.Duration

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8080"),

		DataBackend:    getEnv("DATA_BACKEND", "file"),
		StatePath:      getEnv("STATE_PATH", "./data/state.json"),
		SQLiteDBPath:   getEnv("SQLITE_DB_PATH", "./data/zenwallet.db"),
		BudgetSeedPath: getEnv("BUDGET_SEED_PATH", ""),

		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:  getEnv("OPENAI_BASE_URL", ""),
		InsightModel:   getEnv("INSIGHT_MODEL", "gpt-4o-mini"),
		InsightTimeout: getEnvDuration("INSIGHT_TIMEOUT", 30*time.Second),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case "file", "sqlite", "memory":
	default:
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of [file sqlite memory]", c.DataBackend))
	}

	if c.DataBackend == "file" {
		if c.StatePath == "" {
			errors = append(errors, "state path cannot be empty when using file backend")
		} else if err := ensureDir(c.StatePath); err != nil {
			errors = append(errors, fmt.Sprintf("cannot create state directory for '%s': %v", c.StatePath, err))
		}
	}

	if c.DataBackend == "sqlite" {
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else if err := ensureDir(c.SQLiteDBPath); err != nil {
			errors = append(errors, fmt.Sprintf("cannot create SQLite database directory for '%s': %v", c.SQLiteDBPath, err))
		}
	}

	if c.OpenAIAPIKey != "" && strings.TrimSpace(c.InsightModel) == "" {
		errors = append(errors, "insight model cannot be empty when an API key is configured")
	}

	if c.InsightTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid insight timeout %v: must be at least 1 second", c.InsightTimeout))
	} else if c.InsightTimeout > 10*time.Minute {
		errors = append(errors, fmt.Sprintf("invalid insight timeout %v: must be at most 10 minutes", c.InsightTimeout))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// InsightsEnabled reports whether an insight client can be built.
func (c *Config) InsightsEnabled() bool {
	return c.OpenAIAPIKey != ""
}

// SlogLevel maps the configured level string onto slog levels.
func (c *Config) SlogLevel() slog.Level {
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

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
