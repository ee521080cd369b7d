package config

import (
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	dir := t.TempDir()
	return &Config{
		Port:           "8080",
		DataBackend:    "file",
		StatePath:      filepath.Join(dir, "state.json"),
		SQLiteDBPath:   filepath.Join(dir, "zenwallet.db"),
		InsightModel:   "gpt-4o-mini",
		InsightTimeout: 30 * time.Second,
		LogLevel:       "info",
	}
}

func TestValidateOK(t *testing.T) {
	if err := validConfig(t).Validate(); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Port = "nope" }},
		{"port out of range", func(c *Config) { c.Port = "70000" }},
		{"bad backend", func(c *Config) { c.DataBackend = "sheets" }},
		{"empty state path", func(c *Config) { c.StatePath = "" }},
		{"timeout too small", func(c *Config) { c.InsightTimeout = 100 * time.Millisecond }},
		{"timeout too large", func(c *Config) { c.InsightTimeout = time.Hour }},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }},
		{"key without model", func(c *Config) { c.OpenAIAPIKey = "sk-x"; c.InsightModel = " " }},
	}
	for _, tc := range cases {
		c := validConfig(t)
		tc.mutate(c)
		if err := c.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestValidateAggregatesErrors(t *testing.T) {
	c := validConfig(t)
	c.Port = "x"
	c.LogLevel = "y"
	err := c.Validate()
	if err == nil {
		t.Fatalf("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "invalid port") || !strings.Contains(msg, "invalid log level") {
		t.Fatalf("expected both problems reported, got: %s", msg)
	}
}

func TestSlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		c := &Config{LogLevel: in}
		if got := c.SlogLevel(); got != want {
			t.Fatalf("%s: got %v", in, got)
		}
	}
}

func TestInsightsEnabled(t *testing.T) {
	c := validConfig(t)
	if c.InsightsEnabled() {
		t.Fatalf("insights should be disabled without an API key")
	}
	c.OpenAIAPIKey = "sk-test"
	if !c.InsightsEnabled() {
		t.Fatalf("insights should be enabled with an API key")
	}
}
