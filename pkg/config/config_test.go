package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	errs "signalhub/pkg/errors"
)

// TestLoadConfig tests loading default config
func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("Failed to load default config: %v", err)
	}
	if cfg == nil {
		t.Fatal("Config is nil")
	}
}

// TestLoadConfigDefaults tests default values are set
func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Address == "" {
		t.Error("Address should not be empty")
	}
	if cfg.WebSocket.SendBuffer < 1 {
		t.Error("Send buffer should default to a positive value")
	}
	if cfg.WebSocket.ReadLimit < 1 {
		t.Error("Read limit should default to a positive value")
	}
}

// TestLoadConfigFromFile tests YAML file loading
func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("address: \":9000\"\nlogging:\n  level: debug\nwebsocket:\n  send_buffer: 64\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config file: %v", err)
	}
	if cfg.Address != ":9000" {
		t.Errorf("Expected address :9000, got %s", cfg.Address)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.Logging.Level)
	}
	if cfg.WebSocket.SendBuffer != 64 {
		t.Errorf("Expected send buffer 64, got %d", cfg.WebSocket.SendBuffer)
	}
	// Unset keys keep their defaults
	if cfg.WebSocket.PongTimeout != 60 {
		t.Errorf("Expected default pong timeout 60, got %d", cfg.WebSocket.PongTimeout)
	}
}

// TestEnvOverrides tests environment variable overrides
func TestEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":7777")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Address != ":7777" {
		t.Errorf("Expected env-overridden address :7777, got %s", cfg.Address)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Expected env-overridden log level warn, got %s", cfg.Logging.Level)
	}
}

// TestValidateRejectsBadValues tests validation failures
func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ServerConfig)
	}{
		{"empty address", func(c *ServerConfig) { c.Address = "" }},
		{"bad log level", func(c *ServerConfig) { c.Logging.Level = "verbose" }},
		{"zero read limit", func(c *ServerConfig) { c.WebSocket.ReadLimit = 0 }},
		{"zero send buffer", func(c *ServerConfig) { c.WebSocket.SendBuffer = 0 }},
		{"pong below write", func(c *ServerConfig) { c.WebSocket.PongTimeout = c.WebSocket.WriteTimeout }},
	}

	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(cfg)
		err := cfg.Validate()
		if err == nil {
			t.Errorf("%s: expected validation error", tc.name)
			continue
		}
		if !errors.Is(err, errs.ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", tc.name, err)
		}
	}
}

// TestConfigString tests String() method
func TestConfigString(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.String() == "" {
		t.Error("String() should not return empty string")
	}
}
