// Package config handles the CLI's client configuration file and the server's
// environment settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the client-side configuration stored at ~/.giglog/config.yml.
// When ServerURL and Token are set the timer commands talk to that server;
// otherwise they use the local database.
type Config struct {
	ServerURL string `yaml:"server_url,omitempty"`
	Token     string `yaml:"token,omitempty"`
	Email     string `yaml:"email,omitempty"`
}

// Remote reports whether the CLI is logged in to a server.
func (c *Config) Remote() bool {
	return c.ServerURL != "" && c.Token != ""
}

// Path returns the config file location. GIGLOG_CONFIG overrides the default
// ~/.giglog/config.yml.
func Path() (string, error) {
	if custom := os.Getenv("GIGLOG_CONFIG"); custom != "" {
		return custom, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".giglog", "config.yml"), nil
}

// Load reads the config file. A missing file is not an error; it yields the
// zero config (local mode).
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Save writes the config file, creating its directory if needed. The file
// holds a token, so it is not group or world readable.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ServerAddr returns the listen address for the API server. Environment is
// loaded from a .env file when one is present.
func ServerAddr() string {
	_ = godotenv.Load()

	port := os.Getenv("GIGLOG_PORT")
	if port == "" {
		port = "8080"
	}
	return ":" + port
}
