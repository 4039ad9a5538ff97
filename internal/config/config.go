// Package config layers JobDesk configuration: built-in defaults, then an
// optional YAML file, then JOBDESK_* environment variables. Command-line
// flags are applied last by the callers.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds settings shared by the server and the CLI.
type Config struct {
	Addr           string `yaml:"addr"`             // Listen address (server only)
	APIBaseURL     string `yaml:"api_base_url"`     // Job portal API root
	DBPath         string `yaml:"db_path"`          // SQLite path, empty means ~/.jobdesk/jobdesk.db
	LogLevel       string `yaml:"log_level"`        // debug, info, warn, error
	LogFormat      string `yaml:"log_format"`       // text, json
	GoogleClientID string `yaml:"google_client_id"` // Enables the Google sign-in button when set
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Addr:       ":8080",
		APIBaseURL: "http://localhost:8000/api",
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load builds the effective configuration. When path is empty the default
// file ~/.jobdesk/config.yaml is used if it exists; a missing default file
// is not an error, a missing explicit file is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = defaultPath()
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			if explicit || !os.IsNotExist(err) {
				return cfg, err
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// ResolveDBPath returns the configured database path, creating
// ~/.jobdesk on demand when no explicit path is set.
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	dir := filepath.Join(home, ".jobdesk")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return filepath.Join(dir, "jobdesk.db"), nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	setFromEnv(&c.Addr, "JOBDESK_ADDR")
	setFromEnv(&c.APIBaseURL, "JOBDESK_API_URL")
	setFromEnv(&c.DBPath, "JOBDESK_DB")
	setFromEnv(&c.LogLevel, "JOBDESK_LOG_LEVEL")
	setFromEnv(&c.LogFormat, "JOBDESK_LOG_FORMAT")
	setFromEnv(&c.GoogleClientID, "JOBDESK_GOOGLE_CLIENT_ID")
}

func setFromEnv(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func defaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jobdesk", "config.yaml")
}
