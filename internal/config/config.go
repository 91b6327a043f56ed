// Package config loads the finbook configuration: a YAML file with
// environment overrides. A .env file in the working directory is honored
// when present.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the top-level finbook.yaml configuration.
type Config struct {
	// DataFile is the registry snapshot path.
	DataFile string `yaml:"data_file"`
	// SessionFile remembers the logged-in user between invocations.
	SessionFile string `yaml:"session_file"`
	// RecentLimit caps the `finbook list` output.
	RecentLimit int `yaml:"recent_limit"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DataFile:    "ledger.yaml",
		SessionFile: ".finbook-session",
		RecentLimit: 50,
	}
}

// Load reads a config file and applies environment overrides. A missing
// file yields the defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	// .env is optional; absence is not an error.
	_ = godotenv.Load()
	applyEnv(cfg)

	if cfg.RecentLimit <= 0 {
		cfg.RecentLimit = Default().RecentLimit
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("FINBOOK_DATA_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("FINBOOK_SESSION_FILE"); v != "" {
		cfg.SessionFile = v
	}
	if v := os.Getenv("FINBOOK_RECENT_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RecentLimit = n
		}
	}
}
