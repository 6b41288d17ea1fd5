// Package config loads the server configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the merged server configuration
type Config struct {
	UniFi   UniFiConfig   `yaml:"unifi"`
	Logging LoggingConfig `yaml:"logging"`
}

// UniFiConfig holds the connection settings for the UniFi Network
// Integration API. APIURL and APIKey are required; the server refuses to
// start without them.
type UniFiConfig struct {
	APIURL    string `yaml:"apiUrl"`
	APIKey    string `yaml:"apiKey"`
	VerifySSL bool   `yaml:"verifySsl"`
	Timeout   string `yaml:"timeout"`
}

type LoggingConfig struct {
	Level      string `yaml:"level"`
	ShowCaller bool   `yaml:"showCaller"`
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "unifi-mcp", "config.yaml")
}

// Load reads configuration from the config file (UNIFI_MCP_CONFIG or the
// default path), then applies environment overrides. A missing file is not
// an error; missing credentials are caught later by Validate.
func Load() (*Config, error) {
	cfg := &Config{
		UniFi: UniFiConfig{
			VerifySSL: true,
			Timeout:   "30s",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}

	path := os.Getenv("UNIFI_MCP_CONFIG")
	if path == "" {
		path = DefaultPath()
	}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides file values with environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("UNIFI_API_URL"); v != "" {
		c.UniFi.APIURL = v
	}
	if v := os.Getenv("UNIFI_API_KEY"); v != "" {
		c.UniFi.APIKey = v
	}
	if v := os.Getenv("UNIFI_VERIFY_SSL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.UniFi.VerifySSL = b
		}
	}
	if v := os.Getenv("UNIFI_MCP_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the startup-fatal requirements: the API base URL and key
// must both be configured.
func (c *Config) Validate() error {
	if c.UniFi.APIURL == "" {
		return fmt.Errorf("unifi API URL not configured (set unifi.apiUrl or UNIFI_API_URL)")
	}
	if c.UniFi.APIKey == "" {
		return fmt.Errorf("unifi API key not configured (set unifi.apiKey or UNIFI_API_KEY)")
	}
	return nil
}
