package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	errs "signalhub/pkg/errors"
)

// ServerConfig represents server configuration
type ServerConfig struct {
	Address   string          `yaml:"address"`
	Logging   LoggingConfig   `yaml:"logging"`
	WebSocket WebSocketConfig `yaml:"websocket"`
}

// LoggingConfig represents logging settings
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// WebSocketConfig represents websocket transport settings
type WebSocketConfig struct {
	// ReadLimit caps the size of a single inbound frame in bytes
	ReadLimit int64 `yaml:"read_limit_bytes"`
	// SendBuffer is the per-client outbound message buffer size
	SendBuffer int `yaml:"send_buffer"`
	// WriteTimeout bounds each outbound write, in seconds
	WriteTimeout int `yaml:"write_timeout_seconds"`
	// PongTimeout is how long to wait for a pong before declaring the
	// peer dead, in seconds. Pings are sent at 9/10 of this interval.
	PongTimeout int `yaml:"pong_timeout_seconds"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *ServerConfig {
	return &ServerConfig{
		Address: ":8081",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		WebSocket: WebSocketConfig{
			ReadLimit:    64 * 1024, // enough for SDP payloads
			SendBuffer:   256,
			WriteTimeout: 10,
			PongTimeout:  60,
		},
	}
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*ServerConfig, error) {
	config := DefaultConfig()

	// Load from file if provided
	if configPath != "" {
		if err := loadFromFile(configPath, config); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Override with environment variables
	applyEnvOverrides(config)

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(path string, config *ServerConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, config)
}

// applyEnvOverrides applies environment variable overrides
func applyEnvOverrides(config *ServerConfig) {
	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		config.Address = addr
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		config.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		config.Logging.Format = logFormat
	}

	if sendBuffer := os.Getenv("WS_SEND_BUFFER"); sendBuffer != "" {
		if val, err := strconv.Atoi(sendBuffer); err == nil {
			config.WebSocket.SendBuffer = val
		}
	}

	if readLimit := os.Getenv("WS_READ_LIMIT_BYTES"); readLimit != "" {
		if val, err := strconv.ParseInt(readLimit, 10, 64); err == nil {
			config.WebSocket.ReadLimit = val
		}
	}
}

// Validate validates the configuration
func (c *ServerConfig) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("%w: server address cannot be empty", errs.ErrInvalidConfig)
	}

	if !isValidLogLevel(c.Logging.Level) {
		return fmt.Errorf("%w: invalid log level: %s", errs.ErrInvalidConfig, c.Logging.Level)
	}

	if c.WebSocket.ReadLimit < 1 {
		return fmt.Errorf("%w: websocket read limit must be positive", errs.ErrInvalidConfig)
	}

	if c.WebSocket.SendBuffer < 1 {
		return fmt.Errorf("%w: websocket send buffer must be at least 1", errs.ErrInvalidConfig)
	}

	if c.WebSocket.WriteTimeout < 1 {
		return fmt.Errorf("%w: websocket write timeout must be positive", errs.ErrInvalidConfig)
	}

	if c.WebSocket.PongTimeout <= c.WebSocket.WriteTimeout {
		return fmt.Errorf("%w: pong timeout must exceed write timeout", errs.ErrInvalidConfig)
	}

	return nil
}

// isValidLogLevel checks if the log level is valid
func isValidLogLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

// WriteWait returns the write timeout as a duration
func (c WebSocketConfig) WriteWait() time.Duration {
	return time.Duration(c.WriteTimeout) * time.Second
}

// PongWait returns the pong timeout as a duration
func (c WebSocketConfig) PongWait() time.Duration {
	return time.Duration(c.PongTimeout) * time.Second
}

// String returns a string representation of the configuration (for logging)
func (c *ServerConfig) String() string {
	return fmt.Sprintf("Config{Address: %s, LogLevel: %s, SendBuffer: %d}",
		c.Address, c.Logging.Level, c.WebSocket.SendBuffer)
}
