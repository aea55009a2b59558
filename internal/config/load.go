package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file looked for in the working directory
// when no --config flag is given.
const DefaultConfigFile = "provision.yaml"

// LoadFile reads and parses the configuration from a YAML file, applies
// environment overrides and defaults, and validates the result.
func LoadFile(path string) (*Config, error) {
	// #nosec G304 - path comes from the --config flag
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	cfg.ApplyEnv()
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Load resolves the configuration for a run. If path is empty and the
// default config file does not exist, an empty config seeded only from the
// environment is returned; missing required values are then collected
// interactively or reported, not failed here.
func Load(path string) (*Config, error) {
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}
	if path == "" {
		cfg := &Config{}
		cfg.ApplyEnv()
		cfg.ApplyDefaults()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
		return cfg, nil
	}
	return LoadFile(path)
}

// ApplyEnv overrides config fields from environment variables. Set variables
// win over file values so unattended runs can inject credentials without
// writing them to disk.
//
// Recognized variables: APP_DOMAIN, APP_REPO_URL, APP_BRANCH, SECRET_KEY,
// GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET, DB_ENGINE, DB_NAME, DB_USER,
// DB_PASSWORD.
func (c *Config) ApplyEnv() {
	setFromEnv(&c.Domain, "APP_DOMAIN")
	setFromEnv(&c.RepoURL, "APP_REPO_URL")
	setFromEnv(&c.Branch, "APP_BRANCH")
	setFromEnv(&c.SecretKey, "SECRET_KEY")
	setFromEnv(&c.OAuth.ClientID, "GOOGLE_CLIENT_ID")
	setFromEnv(&c.OAuth.ClientSecret, "GOOGLE_CLIENT_SECRET")
	setFromEnv(&c.Database.Engine, "DB_ENGINE")
	setFromEnv(&c.Database.Name, "DB_NAME")
	setFromEnv(&c.Database.User, "DB_USER")
	setFromEnv(&c.Database.Password, "DB_PASSWORD")
}

func setFromEnv(dst *string, envVar string) {
	if val := os.Getenv(envVar); val != "" {
		*dst = val
	}
}
