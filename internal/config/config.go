package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds application configuration
type Config struct {
	ServerURL             string `json:"server_url"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
	LogLevel              string `json:"log_level"`
}

// Environment variables that override the config file.
const (
	EnvServerURL = "RESUME_ANALYZER_SERVER_URL"
	EnvTimeout   = "RESUME_ANALYZER_TIMEOUT_SECONDS"
	EnvLogLevel  = "RESUME_ANALYZER_LOG_LEVEL"
)

// DefaultConfig returns a new config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:             "http://localhost:8000",
		RequestTimeoutSeconds: 60,
		LogLevel:              "info",
	}
}

// GetConfigPath returns the path to the configuration file
// On Windows: %APPDATA%/ResumeAnalyzer/config.json
// On Unix: ~/.config/ResumeAnalyzer/config.json
func GetConfigPath() (string, error) {
	var configDir string

	if os.Getenv("APPDATA") != "" {
		// Windows
		configDir = filepath.Join(os.Getenv("APPDATA"), "ResumeAnalyzer")
	} else {
		// Unix-like systems
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config", "ResumeAnalyzer")
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.json"), nil
}

// Load loads configuration from the default config path and applies
// environment overrides on top.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	config, err := LoadFrom(configPath)
	if err != nil {
		return nil, err
	}

	config.ApplyEnvOverrides()
	return config, nil
}

// LoadFrom loads configuration from a specific path
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Save saves the configuration to the default config path
func (c *Config) Save() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	return c.SaveTo(configPath)
}

// SaveTo saves the configuration to a specific path
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("server_url is required")
	}

	parsed, err := url.Parse(c.ServerURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("server_url must be an absolute URL: %q", c.ServerURL)
	}

	if c.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("request_timeout_seconds must be positive")
	}

	return nil
}

// ApplyEnvOverrides replaces config values with environment variables where
// set. Callers load .env files (godotenv) before this runs.
func (c *Config) ApplyEnvOverrides() {
	if serverURL := os.Getenv(EnvServerURL); serverURL != "" {
		c.ServerURL = serverURL
	}
	if timeout := os.Getenv(EnvTimeout); timeout != "" {
		if seconds, err := strconv.Atoi(timeout); err == nil && seconds > 0 {
			c.RequestTimeoutSeconds = seconds
		}
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
}
