// Package config loads service configuration from an optional YAML file with
// environment variable overrides. The session signing key is deliberately not
// part of this file; it is read only from the environment by the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/accesshub"
	ConfigFileName    = "accesshub.yml"
)

// Config holds all service settings.
type Config struct {
	// BindAddress is the interface the HTTP server listens on.
	BindAddress string `yaml:"bind_address"`

	// Port is the HTTP server port.
	Port string `yaml:"port"`

	// SessionTokenTTL is the session token validity window in minutes.
	SessionTokenTTL int `yaml:"session_token_ttl"`

	// DefaultAccessLevels is assigned to catalog entries created without an
	// explicit access-level set.
	DefaultAccessLevels []string `yaml:"default_access_levels"`

	// LogLevel is the logrus level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

func newDefault() *Config {
	return &Config{
		BindAddress:         "0.0.0.0",
		Port:                "8080",
		SessionTokenTTL:     480,
		DefaultAccessLevels: []string{"Read", "Write", "Admin"},
		LogLevel:            "info",
		sources:             make(map[string]string),
	}
}

// Load loads configuration from file and environment variables. Environment
// variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("ACCESSHUB_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"bind_address", "port", "session_token_ttl",
		"default_access_levels", "log_level",
	}
}

func (c *Config) applyFileConfig(file *Config) {
	if file.BindAddress != "" {
		c.BindAddress = file.BindAddress
		c.sources["bind_address"] = "file"
	}
	if file.Port != "" {
		c.Port = file.Port
		c.sources["port"] = "file"
	}
	if file.SessionTokenTTL != 0 {
		c.SessionTokenTTL = file.SessionTokenTTL
		c.sources["session_token_ttl"] = "file"
	}
	if len(file.DefaultAccessLevels) > 0 {
		c.DefaultAccessLevels = file.DefaultAccessLevels
		c.sources["default_access_levels"] = "file"
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
		c.sources["log_level"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("BIND_ADDRESS"); val != "" {
		c.BindAddress = val
		c.sources["bind_address"] = "environment"
	}
	if val := os.Getenv("PORT"); val != "" {
		c.Port = val
		c.sources["port"] = "environment"
	}
	if val := os.Getenv("ACCESSHUB_SESSION_TOKEN_TTL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.SessionTokenTTL = i
			c.sources["session_token_ttl"] = "environment"
		}
	}
	if val := os.Getenv("ACCESSHUB_DEFAULT_ACCESS_LEVELS"); val != "" {
		c.DefaultAccessLevels = splitAndTrim(val)
		c.sources["default_access_levels"] = "environment"
	}
	if val := os.Getenv("ACCESSHUB_LOG_LEVEL"); val != "" {
		c.LogLevel = val
		c.sources["log_level"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file.
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute.
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// TokenTTL returns the session token TTL as a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.SessionTokenTTL) * time.Minute
}

// Addr returns the bind address and port joined for http.Server.
func (c *Config) Addr() string {
	return c.BindAddress + ":" + c.Port
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.SessionTokenTTL <= 0 {
		return fmt.Errorf("session_token_ttl must be positive, got %d", c.SessionTokenTTL)
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if len(c.DefaultAccessLevels) == 0 {
		return fmt.Errorf("default_access_levels must not be empty")
	}
	return nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
